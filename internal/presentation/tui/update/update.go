// Package update holds UI update logic for the TUI.
package update

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"redgal/internal/application/usecase"
	"redgal/internal/domain/gallery"
	"redgal/internal/domain/media"
	"redgal/internal/presentation/tui/intent"
	"redgal/internal/presentation/tui/presenter"
	"redgal/internal/presentation/tui/state"
)

// ListingStore abstracts persistence of the configured subreddits.
type ListingStore interface {
	Add(name string) error
	Remove(index int) error
}

// Deps groups external dependencies for updates.
type Deps struct {
	Browse      *usecase.BrowseService
	Resolver    *media.Resolver
	Listings    ListingStore
	OpenBrowser func(string) error
}

// PageFetchedMsg is emitted after fetching one listing page.
type PageFetchedMsg struct {
	Req  usecase.PageRequest
	Page gallery.Page
	Err  error
}

// FetchPageCmd creates a command to fetch a listing page.
func FetchPageCmd(browse *usecase.BrowseService, req usecase.PageRequest) tea.Cmd {
	return func() tea.Msg {
		page, err := browse.FetchPage(context.Background(), req)
		return PageFetchedMsg{Req: req, Page: page, Err: err}
	}
}

// StartFetch asks the pager for the next page request and turns it
// into a command. It returns nil when no fetch should happen, which
// covers an in-flight request, a previous error, and an exhausted
// listing.
func StartFetch(s *state.ModelState, deps Deps) tea.Cmd {
	req, ok := s.Pager.BeginFetch()
	if !ok {
		return nil
	}
	if len(s.Pager.Posts()) == 0 {
		s.Loading = true
	}
	return tea.Batch(s.Spinner.Tick, FetchPageCmd(deps.Browse, req))
}

// HandlePageFetchedMsg folds a fetched page into the pager and
// refreshes the post list. Stale results are dropped.
func HandlePageFetchedMsg(s *state.ModelState, msg PageFetchedMsg, deps Deps) {
	if !s.Pager.ApplyResult(msg.Req, msg.Page, msg.Err) {
		return
	}
	s.Loading = false
	if msg.Err != nil {
		s.Err = msg.Err
		if s.Session == state.ViewerView {
			s.Session = state.GalleryView
		}
		return
	}
	s.Err = nil
	presenter.ApplyPostList(&s.PostList, s.Pager.Key(), s.Pager.Posts())
	UpdateListSizes(s)
	if s.Session == state.ViewerView {
		RefreshViewer(s, deps)
	}
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.AddListingView {
		return handleAddListingView(s, msg, deps)
	}
	if s.Session == state.RemoveListingView {
		return handleRemoveListingView(s, msg, deps)
	}
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if parsed.Type == intent.Quit {
		if s.Session == state.ViewerView {
			// Inside the viewer, quit backs out instead of exiting.
			closeViewer(s)
			return nil, true
		}
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	}

	switch s.Session {
	case state.ListingView:
		return handleListingViewIntent(s, parsed, deps)
	case state.GalleryView:
		return handleGalleryViewIntent(s, parsed, deps)
	case state.ViewerView:
		return handleViewerViewIntent(s, parsed, deps)
	default:
		return nil, false
	}
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateListSizes(s)
}

func handleAddListingView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		input := s.TextInput.Value()
		s.TextInput.Reset()
		s.Session = state.ListingView
		if input == "" {
			return nil, true
		}
		key, err := usecase.ParseListing(input, s.Pager.Key().Sort, s.Pager.Key().Period)
		if err != nil {
			s.Err = err
			return nil, true
		}
		if deps.Listings != nil {
			if err := deps.Listings.Add(key.Subreddit); err != nil {
				s.Err = err
				return nil, true
			}
		}
		s.Listings = append(s.Listings, key)
		presenter.ApplySidebar(&s.Sidebar, s.Listings)
		s.Sidebar.Select(len(s.Listings) - 1)
		UpdateListSizes(s)
		return switchListing(s, key, deps), true
	case "esc":
		s.TextInput.Reset()
		s.Session = state.ListingView
		return nil, true
	}

	var cmd tea.Cmd
	s.TextInput, cmd = s.TextInput.Update(msg)
	return cmd, true
}

func handleRemoveListingView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		s.Session = state.ListingView
		item, ok := selectedSidebarItem(s)
		if !ok || len(s.Listings) <= 1 {
			return nil, true
		}
		idx := item.Index
		if idx < 0 || idx >= len(s.Listings) {
			return nil, true
		}
		if deps.Listings != nil {
			if err := deps.Listings.Remove(idx); err != nil {
				s.Err = err
				return nil, true
			}
		}
		removed := s.Listings[idx]
		s.Listings = append(s.Listings[:idx], s.Listings[idx+1:]...)
		presenter.ApplySidebar(&s.Sidebar, s.Listings)
		if idx >= len(s.Listings) {
			idx = len(s.Listings) - 1
		}
		s.Sidebar.Select(idx)
		UpdateListSizes(s)
		if removed.Subreddit == s.Pager.Key().Subreddit {
			cmd := switchListing(s, s.Listings[idx], deps)
			s.Session = state.ListingView
			return cmd, true
		}
		return nil, true
	case "n", "N", "esc", "q", "Q":
		s.Session = state.ListingView
		return nil, true
	}
	return nil, true
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func handleListingViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Open:
		if item, ok := selectedSidebarItem(s); ok {
			s.Session = state.GalleryView
			if item.Key == s.Pager.Key() && len(s.Pager.Posts()) > 0 {
				return nil, true
			}
			return switchListing(s, item.Key, deps), true
		}
		return nil, true
	case intent.AddListing:
		s.Session = state.AddListingView
		s.TextInput.Reset()
		return textinput.Blink, true
	case intent.RemoveListing:
		// The last subreddit cannot be removed.
		if _, ok := selectedSidebarItem(s); ok && len(s.Listings) > 1 {
			s.Session = state.RemoveListingView
		}
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	}
	return nil, false
}

func handleGalleryViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Back:
		s.Session = state.ListingView
		return nil, true
	case intent.Open:
		if item, ok := selectedPostItem(s); ok {
			s.Viewer.Open(item.Index)
			s.Session = state.ViewerView
			RefreshViewer(s, deps)
		}
		return nil, true
	case intent.OpenBrowser:
		if item, ok := selectedPostItem(s); ok {
			_ = deps.OpenBrowser(item.Post.Permalink)
		}
		return nil, true
	case intent.LoadMore:
		return StartFetch(s, deps), true
	case intent.Refresh:
		return refreshListing(s, deps), true
	case intent.CycleSort:
		key := s.Pager.Key()
		key.Sort = nextSort(key.Sort)
		return switchListing(s, key, deps), true
	case intent.CyclePeriod:
		key := s.Pager.Key()
		if key.Sort != "top" && key.Sort != "controversial" {
			return nil, true
		}
		key.Period = nextPeriod(key.Period)
		return switchListing(s, key, deps), true
	case intent.AddListing:
		s.Session = state.AddListingView
		s.TextInput.Reset()
		return textinput.Blink, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	}
	return nil, false
}

func handleViewerViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.NextPost, intent.Open:
		prefetch := s.Viewer.Next(len(s.Pager.Posts()))
		RefreshViewer(s, deps)
		if prefetch {
			return StartFetch(s, deps), true
		}
		return nil, true
	case intent.PrevPost:
		if s.Viewer.Previous() {
			closeViewer(s)
			return nil, true
		}
		RefreshViewer(s, deps)
		return nil, true
	case intent.Back:
		closeViewer(s)
		return nil, true
	case intent.OpenBrowser:
		if post, ok := viewedPost(s); ok {
			_ = deps.OpenBrowser(post.Permalink)
		}
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	}
	return nil, false
}

func switchListing(s *state.ModelState, key gallery.Listing, deps Deps) tea.Cmd {
	s.Pager.Reset(key)
	s.Err = nil
	s.Viewer.Close()
	s.PostList.ResetSelected()
	s.PostList.ResetFilter()
	presenter.ApplyPostList(&s.PostList, key, nil)
	s.Session = state.GalleryView
	return StartFetch(s, deps)
}

func refreshListing(s *state.ModelState, deps Deps) tea.Cmd {
	s.Pager.Refresh()
	s.Err = nil
	s.Viewer.Close()
	presenter.ApplyPostList(&s.PostList, s.Pager.Key(), nil)
	return StartFetch(s, deps)
}

// RefreshViewer re-renders the viewer viewport for the current post.
func RefreshViewer(s *state.ModelState, deps Deps) {
	post, ok := viewedPost(s)
	if !ok {
		return
	}
	s.PostList.Select(s.Viewer.Index())
	resolution := deps.Resolver.Resolve(post)
	s.Viewport.SetContent(buildViewerContentForWidth(post, resolution, viewerWrapWidth(s)))
	s.Viewport.GotoTop()
}

func closeViewer(s *state.ModelState) {
	s.Viewer.Close()
	s.Session = state.GalleryView
}

func viewedPost(s *state.ModelState) (gallery.Post, bool) {
	posts := s.Pager.Posts()
	if !s.Viewer.IsOpen(len(posts)) {
		return gallery.Post{}, false
	}
	return posts[s.Viewer.Index()], true
}

func selectedSidebarItem(s *state.ModelState) (*presenter.Item, bool) {
	if s == nil {
		return nil, false
	}
	item, ok := s.Sidebar.SelectedItem().(*presenter.Item)
	if !ok || item == nil {
		return nil, false
	}
	return item, true
}

func selectedPostItem(s *state.ModelState) (*presenter.Item, bool) {
	if s == nil {
		return nil, false
	}
	item, ok := s.PostList.SelectedItem().(*presenter.Item)
	if !ok || item == nil {
		return nil, false
	}
	return item, true
}

var sortOrder = []string{"hot", "new", "top", "rising", "controversial"}

var periodOrder = []string{"hour", "day", "week", "month", "year", "all"}

func nextSort(current string) string {
	return nextInCycle(sortOrder, current)
}

func nextPeriod(current string) string {
	return nextInCycle(periodOrder, current)
}

func nextInCycle(cycle []string, current string) string {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}
