// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"

	"redgal/internal/presentation/tui/components/header"
	main_view "redgal/internal/presentation/tui/components/main"
	"redgal/internal/presentation/tui/components/modal"
	"redgal/internal/presentation/tui/components/sidebar"
	"redgal/internal/presentation/tui/metrics"
	"redgal/internal/presentation/tui/presenter"
	"redgal/internal/presentation/tui/state"
	"redgal/internal/presentation/tui/textutil"
	"redgal/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Sidebar: m.buildSidebarProps(),
		Header:  m.buildHeaderProps(),
		Main:    m.buildMainProps(),
		Modal:   m.buildModalProps(),
		Footer:  m.buildFooterProps(),
	}
}

func (m *Model) buildSidebarProps() sidebar.Props {
	return sidebar.Props{
		View:   m.state.Sidebar.View(),
		Width:  m.state.Sidebar.Width(),
		Height: m.state.Sidebar.Height(),
		Active: m.state.Session == state.ListingView,
		Title:  "Subreddits",
	}
}

func (m *Model) buildHeaderProps() header.Props {
	visible := headerVisible(m.state)
	var link string

	if visible {
		sidebarWidth := m.state.Width / 3
		mainWidth := m.state.Width - sidebarWidth - metrics.SidebarRightBorderWidth
		availableWidth := mainWidth - metrics.HeaderWidthPadding

		if item, ok := m.state.PostList.SelectedItem().(*presenter.Item); ok && !item.IsListing {
			link = headerLine(item.Post.URL, availableWidth)
		}
	}

	return header.Props{
		Visible: visible,
		Link:    link,
		Listing: m.state.Pager.Key().String(),
	}
}

func (m *Model) buildMainProps() main_view.Props {
	var body string
	switch {
	case m.state.Loading:
		body = fmt.Sprintf("\n\n   %s Loading %s...", m.state.Spinner.View(), m.state.Pager.Key().String())
	case m.state.Session == state.ViewerView:
		body = m.state.Viewport.View()
	case m.state.Session == state.GalleryView || m.state.Session == state.ListingView:
		body = m.state.PostList.View()
	default:
		body = ""
	}
	if m.state.Err != nil && m.state.Session != state.ViewerView && !m.state.Loading {
		body = fmt.Sprintf("Error: %v\n\n%s", m.state.Err, body)
	}

	headerHeight := 0
	if headerVisible(m.state) {
		headerHeight = metrics.HeaderLines
	}

	return main_view.Props{
		Width:  m.state.PostList.Width(),
		Height: m.state.PostList.Height() + headerHeight,
		Header: "", // Will be filled by Render using HeaderProps
		Body:   body,
	}
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Session == state.AddListingView {
		return modal.Props{
			Visible: true,
			Kind:    modal.AddListing,
			Body: fmt.Sprintf(
				"Enter subreddit:\n\n%s\n\n(esc to cancel)",
				m.state.TextInput.View(),
			),
			Width:  m.state.Width,
			Height: m.state.Height,
		}
	}
	if m.state.Session == state.RemoveListingView {
		name := ""
		if item, ok := m.state.Sidebar.SelectedItem().(*presenter.Item); ok && item != nil {
			name = item.Key.String()
		}
		return modal.Props{
			Visible: true,
			Kind:    modal.RemoveListing,
			Body:    fmt.Sprintf("Remove %s?\n\n(y/n)", name),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Session, len(m.state.Pager.Posts()), m.state.Pager.HasMore(), helpText)
}

func headerVisible(st *state.ModelState) bool {
	if st == nil {
		return false
	}
	switch st.Session {
	case state.GalleryView, state.ViewerView:
		return true
	default:
		return false
	}
}

func headerLine(text string, width int) string {
	return textutil.Truncate(textutil.SingleLine(text), width)
}
