package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ghseek/internal/config"
	"ghseek/internal/domain"
	"ghseek/internal/eventbus"
	"ghseek/internal/logger"
	"ghseek/internal/ui/commands"
	"ghseek/internal/ui/handlers"
	"ghseek/internal/ui/input"
	"ghseek/internal/ui/logic"
	"ghseek/internal/ui/state"
	"ghseek/internal/ui/viewmodels"
	"ghseek/internal/ui/views"
)

// statusDuration is how long a status line message stays visible
const statusDuration = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	log    logger.Logger

	// UI-specific state not in AppState
	width       int
	height      int
	keys        KeyMap
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	regulator    *input.Regulator       // debounced, validated query input
	navigator    *logic.Navigator       // selection and viewport handler
	sentinel     logic.Sentinel         // visibility of the last row
	renderer     *views.Renderer        // view renderer
	viewModel    *viewmodels.ViewModel  // view model for rendering
	eventHandler *handlers.EventHandler // event processing handler
	cmdExecutor  *commands.Executor     // command executor
	extOps       *ExternalOps           // pager and browser

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, log logger.Logger) *Model {
	if log == nil {
		log = logger.Nop()
	}
	appState := state.NewAppState()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		bus:       bus,
		config:    cfg,
		state:     appState,
		log:       log,
		keys:      DefaultKeyMap(cfg.UI.OpenLinks),
		spinner:   sp,
		regulator: input.New(cfg.Search.MinQueryLength, cfg.Debounce()),
		navigator: logic.NewNavigator(),
		renderer:  views.NewRenderer(),
		extOps:    NewExternalOps(),
	}
	m.spinner.Style = m.renderer.Styles().StatusLoading
	m.cmdExecutor = commands.NewExecutor(appState, bus)
	m.eventHandler = handlers.NewEventHandler(appState, log)
	m.viewModel = viewmodels.NewViewModel(appState)
	m.updateViewportHeight()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.extOps.SetProgram(p)
}

// SetQuery fills the input with query. A valid query is settled right away
// and fetched when the program starts.
func (m *Model) SetQuery(query string) {
	if m.regulator.Prime(query) {
		m.state.Settle(query)
	}
	m.syncInput()
}

// State exposes the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.fetchFirstPage())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.updateViewportHeight()
		return m, m.checkSentinel()

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case input.SettleMsg:
		value, ok := m.regulator.Fire(msg)
		if !ok {
			return m, nil
		}
		return m, m.settle(value)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// handleKey processes key presses. Bindings come first, everything else
// edits the query.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.syncNavigatorState()
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.MoveUp()
		return m.checkSentinel()

	case key.Matches(msg, m.keys.Down):
		m.syncNavigatorState()
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.MoveDown()
		return m.checkSentinel()

	case key.Matches(msg, m.keys.PageUp):
		m.syncNavigatorState()
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.PageUp()
		return m.checkSentinel()

	case key.Matches(msg, m.keys.PageDown):
		m.syncNavigatorState()
		m.state.SelectedIndex, m.state.ViewportOffset = m.navigator.PageDown()
		return m.checkSentinel()

	case key.Matches(msg, m.keys.Open):
		user, ok := m.selectedUser()
		if !ok {
			return nil
		}
		return m.openProfile(user.HTMLURL)

	case key.Matches(msg, m.keys.Details):
		user, ok := m.selectedUser()
		if !ok {
			return nil
		}
		return m.showPager("details", views.RenderUserDetails(user))

	case key.Matches(msg, m.keys.Help):
		return m.showPager("help", views.RenderHelpContent(m.keys.HelpSections()))

	case key.Matches(msg, m.keys.LoadMore):
		return m.cmdExecutor.ExecuteFetchNext()

	case key.Matches(msg, m.keys.DismissToast):
		m.dismissToast(0)
		return m.checkSentinel()

	case key.Matches(msg, m.keys.Clear):
		if m.state.Toast != nil {
			m.dismissToast(0)
			return m.checkSentinel()
		}
		m.clear()
		return nil
	}

	cmd := m.regulator.Update(msg)
	m.syncInput()
	// An empty value settles without a delay window
	if m.regulator.Value() == "" && m.state.SettledQuery != "" {
		return tea.Batch(cmd, m.settle(""))
	}
	return cmd
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case toastExpiredMsg:
		m.dismissToast(msg.id)
		return m, m.checkSentinel()

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			m.log.Warnf("%s pager failed: %v", msg.what, msg.err)
			return m, m.setStatus(fmt.Sprintf("Could not open %s: %v", msg.what, msg.err))
		}
		return m, nil

	case browserOpenedMsg:
		if msg.err != nil {
			m.log.Warnf("opening %s failed: %v", msg.url, msg.err)
			return m, m.setStatus(fmt.Sprintf("Could not open browser: %v", msg.err))
		}
		m.log.Debugf("opened %s", msg.url)
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		// Cursor blink and other text input messages
		cmd := m.regulator.Update(msg)
		return m, cmd
	}
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	out := m.eventHandler.HandleEvent(event)
	if !out.Applied || !out.Current {
		return nil
	}
	if out.Toast != "" {
		return m.showToast(out.Toast)
	}
	return m.checkSentinel()
}

// settle switches the shown result set to query and fetches its first page
// unless it is cached already.
func (m *Model) settle(query string) tea.Cmd {
	if m.state.Settle(query) {
		m.log.Infof("query settled: %q", query)
		m.sentinel.Detach()
	}
	cmd := m.fetchFirstPage()
	return tea.Batch(cmd, m.checkSentinel())
}

// fetchFirstPage requests page 1 of the settled query when nothing is cached
func (m *Model) fetchFirstPage() tea.Cmd {
	r := m.state.Current()
	if r == nil || len(r.Pages) > 0 {
		return nil
	}
	return m.cmdExecutor.ExecuteFetchNext()
}

// clear resets the query and discards every cached result
func (m *Model) clear() {
	m.regulator.Clear()
	m.cmdExecutor.ExecuteClear()
	m.sentinel.Detach()
	m.syncInput()
	m.log.Infof("search cleared")
}

// checkSentinel observes the last row and requests the next page when it
// has just become visible.
func (m *Model) checkSentinel() tea.Cmd {
	users := m.state.Users()
	if len(users) == 0 {
		m.sentinel.Detach()
		return nil
	}
	m.syncNavigatorState()

	last := users[len(users)-1]
	m.sentinel.Observe(fmt.Sprintf("%d:%d", len(users), last.ID))
	if !m.sentinel.Update(m.navigator.LastVisible()) {
		return nil
	}
	if !m.state.CanAutoFetchNext() {
		return nil
	}
	m.log.Debugf("last row visible, loading more for %q", m.state.SettledQuery)
	return m.cmdExecutor.ExecuteFetchNext()
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		len(m.state.Users()),
	)
	m.state.SelectedIndex = m.navigator.GetSelectedIndex()
	m.state.ViewportOffset = m.navigator.GetViewportOffset()
}

// syncInput copies the input state into AppState
func (m *Model) syncInput() {
	m.state.RawQuery = m.regulator.Value()
	m.state.ValidationError = m.regulator.ValidationError()
}

// updateViewportHeight calculates the list height from the terminal size
func (m *Model) updateViewportHeight() {
	m.state.ViewportHeight = views.ListHeight(m.height, m.state.Toast != nil)
}

func (m *Model) selectedUser() (user domain.User, ok bool) {
	users := m.state.Users()
	if m.state.SelectedIndex < 0 || m.state.SelectedIndex >= len(users) {
		return user, false
	}
	return users[m.state.SelectedIndex], true
}

// showToast displays an error notification and schedules its dismissal
func (m *Model) showToast(message string) tea.Cmd {
	id := m.state.ShowToast(message)
	m.updateViewportHeight()
	m.syncNavigatorState()
	return tea.Tick(m.config.ToastDuration(), func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// dismissToast hides the toast; a non-zero id only hides the toast it belongs to
func (m *Model) dismissToast(id int) {
	m.state.DismissToast(id)
	m.updateViewportHeight()
}

// setStatus shows a message in place of the help line for a while
func (m *Model) setStatus(message string) tea.Cmd {
	m.state.StatusMessage = message
	return tea.Tick(statusDuration, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// showPager returns a command that shows content in the ov pager
func (m *Model) showPager(what, content string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return pagerMsg{what: what, err: fmt.Errorf("program not set")}
		}
		// Pause rendering while the pager owns the terminal
		m.program.Send(pauseRenderingMsg{})

		err := m.extOps.ShowInPager(content)

		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{what: what, err: err}
	}
}

// openProfile returns a command that opens url in the system browser
func (m *Model) openProfile(url string) tea.Cmd {
	return func() tea.Msg {
		return browserOpenedMsg{url: url, err: m.extOps.OpenURL(url)}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	m.syncNavigatorState()
	start, end := m.navigator.VisibleRange()

	vs := m.viewModel.BuildViewState(m.regulator.TextInput().View(), m.spinner.View(), m.keys, start, end)
	return m.renderer.Render(vs)
}
