package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/reel/internal/catalog"
	"github.com/five82/reel/internal/favorites"
	"github.com/five82/reel/internal/prefs"
)

// Tab identifies one of the two list views.
type Tab int

const (
	TabHome Tab = iota
	TabFavorites
)

func (t Tab) String() string {
	if t == TabFavorites {
		return "Favorites"
	}
	return "Home"
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Catalog   *catalog.Catalog
	Favorites *favorites.Store
	Logger    *zap.Logger
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Dependencies
	catalog   *catalog.Catalog
	favorites *favorites.Store
	logger    *zap.Logger
	prefsPath string

	// UI state
	keys   keyMap
	help   help.Model
	theme  Theme
	tab    Tab
	width  int
	height int
	ready  bool

	// views[TabHome] lists the catalog, views[TabFavorites] the store.
	views [2]*listView

	// Detail pane
	showDetail     bool
	detailViewport viewport.Model
	detailMovieID  string

	// Help overlay
	showHelp bool

	// Fed by the store subscription; shown in the header.
	activity *activity

	// Cancels the store subscriptions registered in New.
	unsubscribe []func()
}

// activity remembers the most recent favorites change.
type activity struct {
	last favorites.Change
	seen bool
}

// New creates the Bubble Tea model. Catalog and Favorites are required.
func New(opts Options) (Model, error) {
	if opts.Catalog == nil {
		return Model{}, errors.New("ui requires a catalog")
	}
	if opts.Favorites == nil {
		return Model{}, errors.New("ui requires a favorites store")
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		catalog:   opts.Catalog,
		favorites: opts.Favorites,
		logger:    logger,
		prefsPath: prefsPath,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     GetTheme(themeName),
		tab:       TabHome,
		activity:  &activity{},
	}
	m.views[TabHome] = newListView("Home", "The catalog is empty.", opts.Catalog.All)
	m.views[TabFavorites] = newListView("Favorites",
		"No favorites yet. Press space on the Home tab to add one.", opts.Favorites.All)
	m.applyHelpStyles()

	m.subscribe()
	return m, nil
}

// subscribe wires the model to store changes. The favorites view keeps its
// cursor in range when rows disappear, and the header records the change.
func (m *Model) subscribe() {
	favs := m.views[TabFavorites]
	act := m.activity
	store := m.favorites
	logger := m.logger

	clampFavs := store.Subscribe(func(favorites.Change) {
		favs.clamp(store.Len())
	})
	recordChange := store.Subscribe(func(c favorites.Change) {
		act.last = c
		act.seen = true
		logger.Info("favorites changed",
			zap.String("movie_id", c.Movie.ID),
			zap.Bool("favorite", c.Favorite),
			zap.Int("count", store.Len()),
		)
	})
	m.unsubscribe = []func(){clampFavs, recordChange}
}

// Close detaches the model from the favorites store. The store may outlive the
// model; call Close once the model is no longer rendered.
func (m Model) Close() {
	for _, cancel := range m.unsubscribe {
		cancel()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.initDetailViewport()
		}
		m.ready = true
		m.updateDetailViewport()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.PrevTab):
		// Two tabs: forward and backward land on the same one.
		m.switchTab(1 - m.tab)

	case key.Matches(msg, m.keys.TabHome):
		m.switchTab(TabHome)

	case key.Matches(msg, m.keys.TabFavorites):
		m.switchTab(TabFavorites)

	case key.Matches(msg, m.keys.ToggleFavorite):
		m.toggleSelected()

	case key.Matches(msg, m.keys.ToggleDetail):
		m.showDetail = !m.showDetail
		m.updateDetailViewport()

	case key.Matches(msg, m.keys.Up):
		m.activeView().move(-1)
		m.updateDetailViewport()

	case key.Matches(msg, m.keys.Down):
		m.activeView().move(1)
		m.updateDetailViewport()

	case key.Matches(msg, m.keys.Top):
		m.activeView().top()
		m.updateDetailViewport()

	case key.Matches(msg, m.keys.Bottom):
		m.activeView().bottom()
		m.updateDetailViewport()

	case key.Matches(msg, m.keys.DetailDown):
		if m.showDetail {
			m.detailViewport.HalfViewDown()
		}

	case key.Matches(msg, m.keys.DetailUp):
		if m.showDetail {
			m.detailViewport.HalfViewUp()
		}
	}

	return m, nil
}

func (m *Model) activeView() *listView {
	return m.views[m.tab]
}

func (m *Model) switchTab(tab Tab) {
	m.tab = tab
	m.updateDetailViewport()
}

// toggleSelected flips the favorite state of the movie under the cursor.
func (m *Model) toggleSelected() {
	movie, ok := m.activeView().selected()
	if !ok {
		return
	}
	m.favorites.Toggle(movie)
	m.updateDetailViewport()
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyHelpStyles()
	m.updateDetailViewport()
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

func (m *Model) applyHelpStyles() {
	styles := m.theme.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.Ellipsis = styles.FaintText
	m.help.Styles.FullKey = styles.WarningText
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
}

// renderMain renders header, content and command bar.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	return b.String()
}

// renderContent renders the active list and, when open, the detail pane.
func (m Model) renderContent() string {
	contentHeight := max(m.height-chromeHeight, boxBorderRows+1)
	listWidth, detailWidth := m.paneWidths()

	// The list always has focus; the detail pane only follows the cursor.
	view := m.activeView()
	rows := view.render(m.theme, listWidth-2, contentHeight-boxBorderRows, m.theme.FocusBg, m.favorites.IsFavorite)
	listPane := m.renderTitledBox(view.heading(), rows, listWidth, contentHeight, true)

	if detailWidth == 0 {
		return listPane
	}

	detailPane := m.renderTitledBox("Details", m.detailViewport.View(), detailWidth, contentHeight, false)
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// renderCommandBar renders the short key help on the surface color.
func (m Model) renderCommandBar() string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		MaxWidth(m.width).
		Padding(0, 1).
		Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// Run starts the Bubble Tea program and blocks until the user quits or
// opts.Context is cancelled.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		m.logger.Info("ui stopped", zap.Error(ctx.Err()))
		return nil
	}
	return err
}
