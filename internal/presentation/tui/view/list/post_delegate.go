// Package listview provides list item delegates for the view layer.
package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PostItem interface for items that can be rendered by PostDelegate.
type PostItem interface {
	list.Item
	Title() string
	Description() string
}

// PostDelegate handles rendering of gallery post items.
type PostDelegate struct {
	Styles list.DefaultItemStyles
	Meta   lipgloss.Color
}

// NewPostDelegate creates a new PostDelegate.
func NewPostDelegate(metaColor lipgloss.Color) *PostDelegate {
	return &PostDelegate{
		Styles: withItemPadding(list.NewDefaultItemStyles()),
		Meta:   metaColor,
	}
}

// Height returns the height of the item.
func (d *PostDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d *PostDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d *PostDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *PostDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(PostItem)
	if !ok {
		return
	}

	titleStyle := itemStyle(d.Styles, m, index)
	title := truncateItemText(m, titleStyle, i.Title())

	metaStyle := d.Styles.NormalDesc.Foreground(d.Meta)
	if index == m.Index() {
		metaStyle = d.Styles.SelectedDesc
	}
	meta := truncateItemText(m, metaStyle, i.Description())

	renderItemText(w, titleStyle, title)
	_, _ = io.WriteString(w, "\n")
	renderItemText(w, metaStyle, meta)
}
