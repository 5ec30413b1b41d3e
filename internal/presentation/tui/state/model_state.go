// Package state holds UI state types for the TUI.
package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"redgal/internal/application/usecase"
	"redgal/internal/domain/gallery"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session   Session
	Sidebar   list.Model
	PostList  list.Model
	TextInput textinput.Model
	Viewport  viewport.Model
	Help      help.Model
	Spinner   spinner.Model
	Loading   bool
	Keys      KeyMap
	Width     int
	Height    int
	Listings  []gallery.Listing
	Pager     *usecase.Pager
	Viewer    Viewer
	Err       error
	Previous  Session
}
