// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"redgal/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	ListingView Session = iota
	GalleryView
	ViewerView
	AddListingView
	RemoveListingView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	UpPage        key.Binding
	DownPage      key.Binding
	Top           key.Binding
	Bottom        key.Binding
	Open          key.Binding
	Back          key.Binding
	Quit          key.Binding
	NextPost      key.Binding
	PrevPost      key.Binding
	AddListing    key.Binding
	RemoveListing key.Binding
	OpenBrowser   key.Binding
	LoadMore      key.Binding
	Refresh       key.Binding
	CycleSort     key.Binding
	CyclePeriod   key.Binding
	Help          key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.Back, k.Open}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Top, k.Bottom, k.UpPage, k.DownPage},
		{k.Open, k.Back, k.Quit},
		{k.NextPost, k.PrevPost, k.OpenBrowser},
		{k.AddListing, k.RemoveListing, k.LoadMore, k.Refresh},
		{k.CycleSort, k.CyclePeriod, k.Help},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Up)...),
			key.WithHelp(cfg.Up, "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Down)...),
			key.WithHelp(cfg.Down, "down"),
		),
		Left: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Left)...),
			key.WithHelp(cfg.Left, "back/listings"),
		),
		Right: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Right)...),
			key.WithHelp(cfg.Right, "open"),
		),
		UpPage: key.NewBinding(
			key.WithKeys(splitKeys(cfg.UpPage)...),
			key.WithHelp(cfg.UpPage, "pgup"),
		),
		DownPage: key.NewBinding(
			key.WithKeys(splitKeys(cfg.DownPage)...),
			key.WithHelp(cfg.DownPage, "pgdn"),
		),
		Top: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Top)...),
			key.WithHelp(cfg.Top, "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Bottom)...),
			key.WithHelp(cfg.Bottom, "bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Open)...),
			key.WithHelp(cfg.Open, "open"),
		),
		Back: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Back)...),
			key.WithHelp(cfg.Back, "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		),
		NextPost: key.NewBinding(
			key.WithKeys(splitKeys(cfg.NextPost)...),
			key.WithHelp(cfg.NextPost, "next post"),
		),
		PrevPost: key.NewBinding(
			key.WithKeys(splitKeys(cfg.PrevPost)...),
			key.WithHelp(cfg.PrevPost, "prev post"),
		),
		AddListing: key.NewBinding(
			key.WithKeys(splitKeys(cfg.AddListing)...),
			key.WithHelp(cfg.AddListing, "add subreddit"),
		),
		RemoveListing: key.NewBinding(
			key.WithKeys(splitKeys(cfg.RemoveListing)...),
			key.WithHelp(cfg.RemoveListing, "remove subreddit"),
		),
		OpenBrowser: key.NewBinding(
			key.WithKeys(splitKeys(cfg.OpenBrowser)...),
			key.WithHelp(cfg.OpenBrowser, "browser"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys(splitKeys(cfg.LoadMore)...),
			key.WithHelp(cfg.LoadMore, "load more"),
		),
		Refresh: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Refresh)...),
			key.WithHelp(cfg.Refresh, "refresh"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys(splitKeys(cfg.CycleSort)...),
			key.WithHelp(cfg.CycleSort, "sort"),
		),
		CyclePeriod: key.NewBinding(
			key.WithKeys(splitKeys(cfg.CyclePeriod)...),
			key.WithHelp(cfg.CyclePeriod, "period"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		// The separator itself cannot appear literally, so it gets a name.
		if keyName == "comma" {
			keyName = ","
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
