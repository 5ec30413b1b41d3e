package listview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ListingItem interface for items that can be rendered by ListingDelegate.
type ListingItem interface {
	list.Item
	Title() string
}

// ListingDelegate handles rendering of sidebar listing items.
type ListingDelegate struct {
	Styles list.DefaultItemStyles
	Theme  lipgloss.Color
}

// NewListingDelegate creates a new ListingDelegate.
func NewListingDelegate(themeColor lipgloss.Color) *ListingDelegate {
	return &ListingDelegate{
		Styles: list.NewDefaultItemStyles(),
		Theme:  themeColor,
	}
}

// Height returns the height of the item.
func (d ListingDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d ListingDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d ListingDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d ListingDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(ListingItem)
	if !ok {
		return
	}

	title := i.Title()

	if index == m.Index() {
		title = d.Styles.SelectedTitle.Render(title)
	} else {
		title = d.Styles.NormalTitle.Render(title)
	}

	_, _ = fmt.Fprint(w, title)
}
