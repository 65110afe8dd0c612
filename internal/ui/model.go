package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"selectree/internal/config"
	"selectree/internal/domain"
	"selectree/internal/eventbus"
	"selectree/internal/logic"
	"selectree/internal/options"
	"selectree/internal/ui/input"
	inputtypes "selectree/internal/ui/input/types"
	"selectree/internal/ui/services/navigation"
	"selectree/internal/ui/services/search"
	"selectree/internal/ui/services/selection"
	"selectree/internal/ui/views"
)

// lines used by everything but the option rows
const chromeHeight = 8

// Model is the dropdown widget
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	title  string

	// value the widget is bound to
	store        logic.ValueStore
	storeVersion uint64

	root       *options.OptionList
	selection  *selection.Service
	search     *search.Service
	navigation *navigation.Service

	// UI-specific state
	width         int
	height        int
	help          help.Model
	statusMessage string
	inPagerMode   bool // tracks if we're currently in pager mode
	submitted     bool

	inputHandler *input.Handler
	inputContext *input.ModelContext
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the dropdown over cfg's options. The initial selection
// comes from store; query, when not blank, is applied as the first filter.
func NewModel(bus eventbus.EventBus, cfg *config.Config, store logic.ValueStore, title, query string) *Model {
	if bus == nil {
		bus = eventbus.NullBus{}
	}

	root := options.NewOptionList(cfg.Options)
	logic.Pull(store, root)
	// the highlight prefers a selected option
	root.Highlight()

	m := &Model{
		bus:          bus,
		config:       cfg,
		title:        title,
		store:        store,
		storeVersion: store.Version(),
		root:         root,
		help:         help.New(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(inputtypes.DefaultKeyMap()),
	}

	m.selection = selection.NewService(bus, root, cfg.Multiple)
	m.search = search.NewService(bus, root, cfg.UISettings.Suggestions)
	if query != "" {
		m.search.Apply(query)
	}

	m.navigation = navigation.NewService(bus, root)
	m.navigation.SetSkipGroups(cfg.UISettings.SkipGroups)
	m.navigation.SetHideDisabled(!cfg.UISettings.ShowDisabled)
	m.navigation.SetViewportHeight(cfg.UISettings.Height)

	m.inputContext = &input.ModelContext{
		Selection:  m.selection,
		Search:     m.search,
		Navigation: m.navigation,
	}

	log.Printf("Dropdown created with %d options, value %v", domain.CountOptions(cfg.Options), root.Value())
	bus.Publish(eventbus.OptionsLoadedEvent{Count: domain.CountOptions(cfg.Options)})
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Submitted reports whether the user confirmed the selection
func (m *Model) Submitted() bool {
	return m.submitted
}

// Value returns the selected values
func (m *Model) Value() []string {
	return m.selection.Value()
}

// Root returns the option tree behind the widget
func (m *Model) Root() *options.OptionList {
	return m.root
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		// Handle input through the handler
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		if ev, ok := msg.Event.(eventbus.ErrorEvent); ok {
			m.statusMessage = ev.Message
			return m, clearStatusAfter(3 * time.Second)
		}
		return m, nil

	case ValueChangedMsg:
		m.pullStoreValue()
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.bus.Publish(eventbus.ErrorEvent{Message: "Help pager failed", Err: msg.err})
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}
	return m, nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigation.Navigate(navigation.Direction(a.Direction))

	case inputtypes.ToggleSelectAction:
		if m.selection.Toggle(m.navigation.Highlighted()) {
			m.pushStoreValue()
		}

	case inputtypes.SelectAllAction:
		if m.selection.SelectAllShown() {
			m.pushStoreValue()
		}

	case inputtypes.DeselectAllAction:
		if m.selection.Clear() {
			m.pushStoreValue()
		}

	case inputtypes.SubmitAction:
		return m.submit()

	case inputtypes.UpdateTextAction:
		m.applyFilter(a.Text)

	case inputtypes.SubmitTextAction:
		m.applyFilter(a.Text)

	case inputtypes.CancelTextAction, inputtypes.ClearFilterAction:
		m.applyFilter("")

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.statusMessage = "Help pager is not available"
			return clearStatusAfter(3 * time.Second)
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent(m.inputHandler.Keys()))

	case inputtypes.QuitAction:
		log.Printf("Dropdown closed without submitting (force=%v)", a.Force)
		return tea.Quit
	}
	return nil
}

// submit confirms the selection. In single mode enter on an unselected
// option selects it first.
func (m *Model) submit() tea.Cmd {
	if !m.selection.Multiple() {
		if h := m.navigation.Highlighted(); selection.Selectable(h) && !h.Selected() {
			m.selection.Select(h)
			m.pushStoreValue()
		}
	}

	m.submitted = true
	value := m.selection.Value()
	log.Printf("Value submitted: %v", value)
	m.bus.Publish(eventbus.ValueSubmittedEvent{Value: value})
	return tea.Quit
}

func (m *Model) applyFilter(query string) {
	m.search.Apply(query)
	m.navigation.Sync()
}

func (m *Model) pushStoreValue() {
	logic.Push(m.store, m.root)
	m.storeVersion = m.store.Version()
}

func (m *Model) pullStoreValue() {
	if m.store.Version() == m.storeVersion {
		return
	}
	m.storeVersion = m.store.Version()
	if options.EqualValues(m.selection.Value(), m.store.Value()) {
		return
	}
	m.selection.SetValue(m.store.Value())
	m.navigation.Sync()
	// the highlight follows an external selection
	if selected := m.root.GetSelected(); len(selected) > 0 {
		m.navigation.MoveToOption(selected[0])
	}
}

func (m *Model) updateViewportHeight() {
	height := m.config.UISettings.Height
	if m.height > 0 {
		height = min(height, m.height-chromeHeight)
	}
	m.navigation.SetViewportHeight(height)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	rows := m.navigation.Rows()
	visible := m.navigation.VisibleRows()
	offset := m.navigation.GetViewportOffset()

	selected := m.root.GetSelected()
	labels := make([]string, 0, len(selected))
	for _, o := range selected {
		labels = append(labels, o.DisplayLabel())
	}

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         m.title,
		Placeholder:   m.config.Placeholder,
		Rows:          visible,
		Cursor:        m.navigation.Highlighted(),
		RowsAbove:     offset,
		RowsBelow:     len(rows) - offset - len(visible),
		Multiple:      m.selection.Multiple(),
		Value:         labels,
		FilterQuery:   m.search.Query(),
		Filtering:     m.inputHandler.GetMode() == inputtypes.ModeFilter,
		AnyShown:      m.search.AnyShown(),
		Suggestions:   m.search.Suggestions(),
		StatusMessage: m.statusMessage,
		HelpModel:     m.help,
		Keys:          m.inputHandler.Keys(),
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		state.FilterInput = ti.View()
	}

	return m.renderer.Render(state)
}
