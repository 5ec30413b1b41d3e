// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"redgal/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	AddListing
	RemoveListing
	Open
	Back
	Refresh
	NextPost
	PrevPost
	OpenBrowser
	LoadMore
	CycleSort
	CyclePeriod
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.AddListing):
		return Intent{Type: AddListing}
	case key.Matches(msg, keys.RemoveListing):
		return Intent{Type: RemoveListing}
	case key.Matches(msg, keys.NextPost):
		return Intent{Type: NextPost}
	case key.Matches(msg, keys.PrevPost):
		return Intent{Type: PrevPost}
	case key.Matches(msg, keys.OpenBrowser):
		return Intent{Type: OpenBrowser}
	case key.Matches(msg, keys.LoadMore):
		return Intent{Type: LoadMore}
	case key.Matches(msg, keys.CycleSort):
		return Intent{Type: CycleSort}
	case key.Matches(msg, keys.CyclePeriod):
		return Intent{Type: CyclePeriod}
	case key.Matches(msg, keys.Right) || key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Left) || key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.Refresh):
		return Intent{Type: Refresh}
	default:
		return Intent{Type: None}
	}
}
