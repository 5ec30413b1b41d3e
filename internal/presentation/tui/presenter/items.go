// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/samber/lo"

	"redgal/internal/domain/gallery"
)

// Item is a view model for list items.
type Item struct {
	TitleText string
	Meta      string
	Post      gallery.Post
	Key       gallery.Listing
	IsListing bool
	Index     int
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.TitleText }

// Title returns the item title.
func (i *Item) Title() string { return i.TitleText }

// Description returns the metadata line for list display.
func (i *Item) Description() string { return i.Meta }

// FormatScore renders a post score the way Reddit renders it, with
// scores of a thousand and up shortened to "1.2k".
func FormatScore(score int) string {
	if score >= 10000 {
		return fmt.Sprintf("%dk", score/1000)
	}
	if score >= 1000 {
		return fmt.Sprintf("%.1fk", float64(score)/1000)
	}
	return strconv.Itoa(score)
}

// BuildSidebarItems builds list items for the subreddit sidebar.
func BuildSidebarItems(listings []gallery.Listing) []list.Item {
	return lo.Map(listings, func(key gallery.Listing, i int) list.Item {
		return &Item{
			TitleText: fmt.Sprintf("%d. %s", i+1, key.String()),
			Key:       key,
			IsListing: true,
			Index:     i,
		}
	})
}

// ApplySidebar updates the sidebar list model with listing items.
func ApplySidebar(model *list.Model, listings []gallery.Listing) {
	model.SetItems(BuildSidebarItems(listings))
}

// BuildPostListItems builds list items for gallery posts.
func BuildPostListItems(posts []gallery.Post) []list.Item {
	return lo.Map(posts, func(p gallery.Post, i int) list.Item {
		return &Item{
			TitleText: p.Title,
			Meta:      postMeta(p),
			Post:      p,
			Index:     i,
		}
	})
}

// ApplyPostList updates the post list and title for a listing.
func ApplyPostList(model *list.Model, key gallery.Listing, posts []gallery.Post) {
	model.SetItems(BuildPostListItems(posts))
	model.Title = key.String()
}

func postMeta(p gallery.Post) string {
	return fmt.Sprintf("▲ %s · %d comments · u/%s · %s",
		FormatScore(p.Score), p.NumComments, p.Author, p.Domain)
}
