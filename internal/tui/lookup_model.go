package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/wxlookup/internal/logging"
	"github.com/rshade/wxlookup/internal/weather"
)

// InputPlaceholder is shown in the empty identifier input.
const InputPlaceholder = "Enter Weather Data ID"

// Default dimensions for the lookup model.
const (
	lookupDefaultWidth  = 80
	lookupDefaultHeight = 20
	inputCharLimit      = 256
	inputMinWidth       = 10
	inputChrome         = 4 // border plus padding
	buttonReserve       = 16
)

// Key names handled by the lookup model.
const (
	keyEnter    = "enter"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyEsc      = "esc"
	keyCtrlC    = "ctrl+c"
	keySpace    = " "
	keySpaceAlt = "space"
)

// focusTarget is the control that receives key input.
type focusTarget int

const (
	focusInput focusTarget = iota
	focusButton
)

// LookupState is a snapshot of the lookup controller state.
// Result and Err are never both set once a lookup has completed, and Loading
// is true only between dispatch and completion.
type LookupState struct {
	Identifier string
	Loading    bool
	Result     *weather.Payload
	Err        string
}

// lookupResultMsg is sent when a lookup request resolves.
type lookupResultMsg struct {
	id      string
	payload *weather.Payload
	err     error
}

// LookupModel is the Bubble Tea model for the interactive weather lookup.
// It owns the identifier input, the loading flag and the last outcome, and
// allows one request in flight at a time.
type LookupModel struct {
	ctx     context.Context
	fetcher weather.Fetcher

	input   textinput.Model
	spinner spinner.Model
	focus   focusTarget

	loading bool
	result  *weather.Payload
	errMsg  string

	width    int
	height   int
	quitting bool
}

// NewLookupModel creates a LookupModel that resolves identifiers with fetcher.
// The input starts focused and empty.
func NewLookupModel(ctx context.Context, fetcher weather.Fetcher) *LookupModel {
	ti := textinput.New()
	ti.Placeholder = InputPlaceholder
	ti.CharLimit = inputCharLimit
	ti.Prompt = ""
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorSpinner)

	m := &LookupModel{
		ctx:     ctx,
		fetcher: fetcher,
		input:   ti,
		spinner: sp,
		focus:   focusInput,
		width:   lookupDefaultWidth,
		height:  lookupDefaultHeight,
	}
	m.resizeInput()
	return m
}

// SetIdentifier replaces the identifier verbatim.
func (m *LookupModel) SetIdentifier(id string) {
	m.input.SetValue(id)
}

// State returns a snapshot of the controller state.
func (m *LookupModel) State() LookupState {
	return LookupState{
		Identifier: m.input.Value(),
		Loading:    m.loading,
		Result:     m.result,
		Err:        m.errMsg,
	}
}

// CanLookup reports whether a lookup may be dispatched: the identifier is
// non-empty and no lookup is in flight. The button is disabled otherwise.
func (m *LookupModel) CanLookup() bool {
	return !m.loading && m.input.Value() != ""
}

// Init initializes the model.
func (m *LookupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *LookupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInput()
		return m, nil

	case lookupResultMsg:
		m.handleLookupComplete(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyMsg processes keyboard input.
func (m *LookupModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyCtrlC, keyEsc:
		m.quitting = true
		return m, tea.Quit

	case keyTab, keyShiftTab:
		m.toggleFocus()
		return m, nil

	case keyEnter:
		return m, m.TriggerLookup()

	case keySpace, keySpaceAlt:
		if m.focus == focusButton {
			return m, m.TriggerLookup()
		}
	}

	if m.focus != focusInput {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *LookupModel) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusButton
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

// TriggerLookup dispatches a lookup for the current identifier.
//
// It is a no-op returning nil when the identifier is empty or a lookup is in
// flight. Otherwise it sets the loading flag, clears the previous result and
// error, and returns the command that performs the request.
func (m *LookupModel) TriggerLookup() tea.Cmd {
	if !m.CanLookup() {
		return nil
	}

	m.loading = true
	m.result = nil
	m.errMsg = ""

	// Capture references before the command runs off the event loop.
	id := m.input.Value()
	fetcher := m.fetcher
	ctx := logging.ContextWithTraceID(m.ctx, logging.NewTraceID())

	logging.FromContext(ctx).Debug().
		Str("component", "tui").
		Str("identifier", id).
		Str("trace_id", logging.TraceIDFromContext(ctx)).
		Msg("lookup dispatched")

	lookup := func() tea.Msg {
		payload, err := fetcher.Lookup(ctx, id)
		return lookupResultMsg{id: id, payload: payload, err: err}
	}
	return tea.Batch(lookup, m.spinner.Tick)
}

// handleLookupComplete stores the outcome and releases the loading flag on
// every path.
func (m *LookupModel) handleLookupComplete(msg lookupResultMsg) {
	defer func() { m.loading = false }()

	log := logging.FromContext(m.ctx).With().Str("component", "tui").Str("identifier", msg.id).Logger()
	if msg.err != nil {
		m.result = nil
		m.errMsg = weather.Message(msg.err)
		log.Warn().Err(msg.err).Msg("lookup failed")
		return
	}

	m.errMsg = ""
	m.result = msg.payload
	log.Debug().Str("render", weather.Render(msg.payload).Kind.String()).Msg("lookup completed")
}

// View renders the current view.
func (m *LookupModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Weather Lookup"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderControls())
	sb.WriteString("\n")

	if m.errMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(RenderError(m.errMsg))
		sb.WriteString("\n")
	}

	if m.result != nil {
		if out := RenderWeather(weather.Render(m.result), m.width); out != "" {
			sb.WriteString("\n")
			sb.WriteString(out)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(RenderLookupHelp())
	return sb.String()
}

// renderControls renders the input box and the button side by side.
func (m *LookupModel) renderControls() string {
	input := InputStyle.Render(m.input.View())
	button := RenderButton(m.loading, !m.CanLookup(), m.focus == focusButton)
	if m.loading {
		button = lipgloss.JoinHorizontal(lipgloss.Center, button, " ", m.spinner.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, input, " ", button)
}

func (m *LookupModel) resizeInput() {
	w := min(m.width, cardMaxWidth+cardChrome) - buttonReserve - inputChrome
	m.input.Width = max(w, inputMinWidth)
}
