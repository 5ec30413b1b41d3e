package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"redgal/internal/application/settings"
	"redgal/internal/application/usecase"
	"redgal/internal/domain/gallery"
	"redgal/internal/domain/media"
	"redgal/internal/presentation/tui/presenter"
	"redgal/internal/presentation/tui/state"
	"redgal/internal/presentation/tui/update"
	"redgal/internal/presentation/tui/view"
	listview "redgal/internal/presentation/tui/view/list"
)

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	browse   usecase.BrowseService
	resolver *media.Resolver
	listings update.ListingStore
	state    *state.ModelState
}

// NewModel creates a new application model.
func NewModel(cfg settings.Settings, browse usecase.BrowseService, resolver *media.Resolver, listings update.ListingStore) *Model {
	return &Model{
		settings: cfg,
		browse:   browse,
		resolver: resolver,
		listings: listings,
		state:    newModelState(cfg),
	}
}

// Init initializes the model and kicks off the first listing fetch.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.state.Spinner.Tick,
		textinput.Blink,
		update.StartFetch(m.state, m.deps()),
	)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.UpdateListSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.PageFetchedMsg:
		update.HandlePageFetchedMsg(m.state, msg, m.deps())
	}

	if m.state.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch m.state.Session {
	case state.ListingView:
		m.state.Sidebar, cmd = m.state.Sidebar.Update(msg)
		cmds = append(cmds, cmd)
	case state.GalleryView:
		prevIdx := m.state.PostList.Index()
		m.state.PostList, cmd = m.state.PostList.Update(msg)
		cmds = append(cmds, cmd)
		if m.state.PostList.Index() != prevIdx && nearEndOfList(m.state) {
			cmds = append(cmds, update.StartFetch(m.state, m.deps()))
		}
	case state.ViewerView:
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Browse:      &m.browse,
		Resolver:    m.resolver,
		Listings:    m.listings,
		OpenBrowser: openBrowser,
	}
}

// nearEndOfList reports whether the gallery cursor has scrolled into
// the lookahead window at the end of the loaded posts.
func nearEndOfList(s *state.ModelState) bool {
	total := len(s.PostList.Items())
	return total > 0 && s.PostList.Index() > total-state.LookaheadWindow
}

func newModelState(cfg settings.Settings) *state.ModelState {
	listings := cfg.Listings()
	initial := gallery.Listing{Subreddit: "all", Sort: cfg.DefaultSort, Period: cfg.DefaultPeriod}
	if len(listings) > 0 {
		initial = listings[0]
	}

	st := &state.ModelState{
		Session:   state.GalleryView,
		Sidebar:   newSidebarList(cfg),
		PostList:  newPostList(cfg),
		TextInput: newTextInput(),
		Viewport:  newViewport(),
		Help:      help.New(),
		Spinner:   newSpinner(),
		Keys:      state.NewKeyMap(cfg.KeyMap),
		Listings:  listings,
		Pager:     usecase.NewPager(initial, cfg.API.PageLimit),
		Viewer:    state.NewViewer(),
	}

	st.Sidebar.KeyMap.PrevPage = st.Keys.UpPage
	st.Sidebar.KeyMap.NextPage = st.Keys.DownPage
	st.PostList.KeyMap.PrevPage = st.Keys.UpPage
	st.PostList.KeyMap.NextPage = st.Keys.DownPage

	presenter.ApplySidebar(&st.Sidebar, st.Listings)
	presenter.ApplyPostList(&st.PostList, initial, nil)

	return st
}

func newSidebarList(cfg settings.Settings) list.Model {
	l := list.New([]list.Item{}, listview.NewListingDelegate(lipgloss.Color(cfg.Theme.PostMeta)), 0, 0)
	l.Title = "Subreddits"
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.DisableQuitKeybindings()
	return l
}

func newPostList(cfg settings.Settings) list.Model {
	l := list.New([]list.Item{}, listview.NewPostDelegate(lipgloss.Color(cfg.Theme.PostMeta)), 0, 0)
	l.Title = "Posts"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "subreddit name (e.g. pics)"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	return vp
}
