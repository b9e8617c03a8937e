// Package tui provides a Bubble Tea terminal UI for the dungeon. The
// game core runs in a command goroutine and talks to the model through
// a buffering host, so blocking prompts (portal passwords, quit
// confirmation) become modal input states instead of freezing the UI.
package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jboenig/AdventureGame/engine"
)

// Host implements the game's host interfaces for the TUI. Output is
// buffered under a mutex until the model drains it; prompts are
// bridged to the Update loop through the program's Send.
type Host struct {
	mu      sync.Mutex
	pending string
	lines   []string
	exit    bool

	send    func(tea.Msg)
	answers chan string
}

// NewHost creates an unwired host. Run wires send before the program
// starts.
func NewHost() *Host {
	return &Host{answers: make(chan string)}
}

// Print buffers game text, splitting embedded newlines.
func (h *Host) Print(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending += msg
	for {
		idx := strings.IndexByte(h.pending, '\n')
		if idx < 0 {
			return
		}
		h.lines = append(h.lines, h.pending[:idx])
		h.pending = h.pending[idx+1:]
	}
}

// Println buffers one line of game text.
func (h *Host) Println(msg string) {
	h.Print(msg + "\n")
}

// Clear is a no-op: the viewport keeps its scrollback.
func (h *Host) Clear() {}

// Drain returns and clears all buffered lines.
func (h *Host) Drain() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pending != "" {
		h.lines = append(h.lines, h.pending)
		h.pending = ""
	}
	out := h.lines
	h.lines = nil
	return out
}

// Ask blocks the game goroutine until the player answers the modal
// prompt.
func (h *Host) Ask(title, question string) string {
	if h.send == nil {
		return ""
	}
	h.send(promptMsg{title: title, question: question})
	return <-h.answers
}

// Confirm asks a yes/no question through the modal prompt.
func (h *Host) Confirm(title, question string) bool {
	if h.send == nil {
		return false
	}
	h.send(promptMsg{title: title, question: question, yesNo: true})
	answer := <-h.answers
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
}

// PlayEffect drops the cue: the TUI has no sound device.
func (h *Host) PlayEffect(string) {}
func (h *Host) StartLoop(string)  {}
func (h *Host) StopLoop(string)   {}

// Exit records the core's exit request for the model to act on.
func (h *Host) Exit() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.exit = true
}

func (h *Host) takeExit() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := h.exit
	h.exit = false
	return v
}

// rawLine stores an unstyled output line with its classification, so
// the narrative can be re-wrapped and re-styled on resize.
type rawLine struct {
	text    string
	kind    lineKind
	isInput bool // echoed player input
}

// promptMsg asks the model to collect a line for the game goroutine.
type promptMsg struct {
	title    string
	question string
	yesNo    bool
}

// commandDoneMsg reports that a game command finished executing.
type commandDoneMsg struct {
	input string // echoed player input (empty for the intro)
	valid bool
}

// Model is the Bubble Tea model for the dungeon TUI.
type Model struct {
	game *engine.Game
	host *Host

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine

	width    int
	height   int
	ready    bool
	busy     bool // a game command is executing
	quitting bool
	lastCmd  string

	prompting  *promptMsg // modal prompt from the game goroutine
	restartAsk string     // play-again question after death or escape
}

// New creates a TUI model hosting a fresh game.
func New(builder engine.Builder, seed int64) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	host := NewHost()
	return Model{
		game:    engine.New(builder, host, host, host, host, seed),
		host:    host,
		input:   ti,
		history: NewHistory(100),
	}
}

// Run starts the Bubble Tea program.
func Run(builder engine.Builder, seed int64) error {
	m := New(builder, seed)
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.host.send = p.Send
	_, err := p.Run()
	return err
}

// Init produces the intro text and the first room description.
func (m Model) Init() tea.Cmd {
	g := m.game
	return tea.Batch(textinput.Blink, func() tea.Msg {
		g.DisplayIntro()
		g.DescribeCurrentRoom()
		return commandDoneMsg{valid: true}
	})
}

// Update handles key presses, window resizes, prompts and game output.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if m.modal() {
				return m, nil
			}
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.modal() {
				return m, nil
			}
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case promptMsg:
		prompt := msg
		m.prompting = &prompt
		m.appendLines([]string{"", promptLabel(prompt)})

	case commandDoneMsg:
		return m.handleCommandDone(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) modal() bool {
	return m.prompting != nil || m.restartAsk != ""
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if m.prompting != nil {
		m.prompting = nil
		m.host.answers <- line
		return m, nil
	}

	if m.restartAsk != "" {
		m.restartAsk = ""
		if strings.HasPrefix(strings.ToLower(line), "y") {
			return m.restart()
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.busy || line == "" {
		return m, nil
	}

	m.history.Push(line)
	m.history.ResetCursor()

	lower := strings.ToLower(line)
	if lower == "again" || lower == "g" {
		if m.lastCmd == "" {
			m.appendLines([]string{"Nothing to repeat."})
			return m, nil
		}
		line = m.lastCmd
	} else {
		m.lastCmd = line
	}

	m.busy = true
	g := m.game
	return m, func() tea.Msg {
		valid := g.Execute(line)
		return commandDoneMsg{input: line, valid: valid}
	}
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	m.busy = true
	g := m.game
	return m, func() tea.Msg {
		g.Reset()
		g.DisplayIntro()
		g.DescribeCurrentRoom()
		return commandDoneMsg{valid: true}
	}
}

// handleCommandDone drains the game's output into the narrative and
// checks for exit, death and escape.
func (m Model) handleCommandDone(msg commandDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false

	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{text: "> " + msg.input, isInput: true})
	}
	lines := m.host.Drain()
	if !msg.valid {
		lines = append(lines, "That is not a valid command - type help for a list of commands")
	}
	m.appendLines(lines)

	if m.host.takeExit() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.game.State() {
	case engine.StateDead:
		m.restartAsk = "one ticket to a r movie pls - play again (Y/N)?"
		m.appendLines([]string{"", m.restartAsk})
	case engine.StateEscaped:
		m.restartAsk = "Congratulations, you've escaped! Play again?"
		m.appendLines([]string{"", m.restartAsk})
	}

	return m, nil
}

// appendLines adds classified lines to the narrative and refreshes
// the viewport.
func (m *Model) appendLines(lines []string) {
	for _, line := range lines {
		m.rawLines = append(m.rawLines, rawLine{text: line, kind: classifyLine(line)})
	}
	m.refreshViewport()
}

// refreshViewport re-wraps and re-styles all raw lines at the current
// width.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := rl.text
		if rl.kind != kindMap {
			wrapped = wordwrap.String(rl.text, width)
		}

		if rl.isInput {
			styled = append(styled, stylePlayerInput.Render(wrapped))
		} else {
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// View renders the full layout: viewport, status bar, input line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.renderInput()
}

func (m Model) renderInput() string {
	if m.busy {
		return styleSystem.Render("...")
	}
	if m.prompting != nil {
		return styleDialogue.Render(promptLabel(*m.prompting)) + " " + m.input.View()
	}
	if m.restartAsk != "" {
		return styleDialogue.Render("(Y/N)") + " " + m.input.View()
	}
	return m.input.View()
}

func promptLabel(p promptMsg) string {
	q := strings.TrimSpace(p.question)
	if p.yesNo {
		return q + " (Y/N)"
	}
	return q
}

// viewportKeyMap disables Up/Down in the viewport; those drive the
// command history.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
