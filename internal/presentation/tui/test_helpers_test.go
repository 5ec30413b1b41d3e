package tui

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"redgal/internal/application/settings"
	"redgal/internal/application/usecase"
	"redgal/internal/domain/gallery"
	"redgal/internal/domain/media"
)

type stubListingFetcher struct {
	mock.Mock
	page gallery.Page
	err  error
}

func (s *stubListingFetcher) FetchListing(_ context.Context, key gallery.Listing, limit, count int, after string) (gallery.Page, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(key, limit, count, after)
		page, _ := args.Get(0).(gallery.Page)
		return page, args.Error(1)
	}
	return s.page, s.err
}

type stubListingStore struct {
	names []string
}

func (s *stubListingStore) Add(name string) error {
	s.names = append(s.names, name)
	return nil
}

func (s *stubListingStore) Remove(index int) error {
	if index < 0 || index >= len(s.names) {
		return errors.New("invalid index")
	}
	s.names = append(s.names[:index], s.names[index+1:]...)
	return nil
}

func testSettings() settings.Settings {
	return settings.Settings{
		Subreddits:    []string{"pics"},
		DefaultSort:   "hot",
		DefaultPeriod: "week",
		KeyMap: settings.KeyMapConfig{
			Up: "k", Down: "j", Left: "h", Right: "l",
			UpPage: "ctrl+u", DownPage: "ctrl+d",
			Top: "g", Bottom: "G",
			Open: "enter", Back: "esc", Quit: "q",
			NextPost: "right,.", PrevPost: "left,comma",
			AddListing: "a", RemoveListing: "x", OpenBrowser: "o",
			LoadMore: "m", Refresh: "r",
			CycleSort: "s", CyclePeriod: "p",
		},
		API: settings.APIConfig{PageLimit: 25},
	}
}

func newTestModel(cfg settings.Settings, fetcher usecase.ListingFetcher) *Model {
	browse := usecase.NewBrowseService(fetcher, cfg.API.PageLimit, nil)
	resolver := media.NewResolver(media.Config{EmbedParent: "localhost", NitterHost: "nitter.net"})
	return NewModel(cfg, browse, resolver, &stubListingStore{names: cfg.Subreddits})
}

func testPage(titles ...string) gallery.Page {
	posts := make([]gallery.Post, 0, len(titles))
	for _, title := range titles {
		posts = append(posts, gallery.Post{
			Title:     title,
			URL:       "https://i.redd.it/x.png",
			Thumbnail: "https://i.redd.it/x.png",
			Permalink: "https://old.reddit.com/r/pics/comments/1/x/",
		})
	}
	return gallery.Page{Posts: posts, After: "t3_more"}
}
