// Package tui implements the interactive inspector: an inspect tab with
// completion-assisted expression input, and a watch tab whose entries
// refresh on an interval.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/FrancisEgan/turtledebug/inspect"
	"github.com/FrancisEgan/turtledebug/session"
	"github.com/FrancisEgan/turtledebug/watch"
)

// Env is the capability the inspector needs from the inspected
// environment.
type Env interface {
	inspect.Env

	Globals() []string
}

const evalPrompt = "➜ "

// chromeRows is the number of fixed rows surrounding the viewport:
// tab bar, input line, completion bar, and status bar.
const chromeRows = 4

const defaultWidth = 80

// tickMsg drives the watch auto-refresh interval.
type tickMsg time.Time

// model is the Bubble Tea model for the inspector.
type model struct {
	env  Env
	sess session.Session
	pol  inspect.Policy

	input textinput.Model
	view  viewport.Model

	list    *watch.List
	results []watch.Result
	sel     int // selected watch entry index

	matches   fuzzy.Matches // current fuzzy match results
	wordStart int           // byte offset of current word start
	wordEnd   int           // byte offset of current word end
	suggIdx   int           // next candidate to insert when tab-cycling

	output []string // rendered lines of the last inspected value
	plain  []string // undecorated copy for the clipboard

	status   string
	width    int
	quitting bool
}

// Run drives the inspector until the user quits and returns the session
// state to persist.
func Run(ctx context.Context, env Env, sess session.Session) (session.Session, error) {
	m := newModel(env, sess)

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return sess, err
	}

	if fm, ok := final.(model); ok {
		return fm.snapshot(), nil
	}

	return sess, nil
}

func newModel(env Env, sess session.Session) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.CharLimit = 1024
	ti.Width = defaultWidth
	ti.SetValue(sess.LastInput)

	if sess.ActiveTab != session.TabWatch {
		sess.ActiveTab = session.TabInspect

		ti.Focus()
	}

	width, height := sess.Window.Width, sess.Window.Height
	if width <= 0 || height <= 0 {
		width, height = defaultWidth, 24
	}

	return model{
		env:   env,
		sess:  sess,
		pol:   inspect.DefaultPolicy(),
		input: ti,
		view:  viewport.New(width, max(1, height-chromeRows)),
		list:  sess.WatchList(),
		width: width,
	}
}

// snapshot folds the live UI state back into the session record.
func (m model) snapshot() session.Session {
	s := m.sess
	s.LastInput = m.input.Value()
	s.SetWatchList(m.list)

	return s
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tickCmd())
}

// tickCmd schedules the next auto-refresh, or nothing when disabled.
func (m model) tickCmd() tea.Cmd {
	if !m.sess.AutoRefresh {
		return nil
	}

	return tea.Tick(m.sess.Interval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.sess.Window.Width = msg.Width
		m.sess.Window.Height = msg.Height
		m.input.Width = msg.Width - len([]rune(evalPrompt)) - 2
		m.view.Width = msg.Width
		m.view.Height = max(1, msg.Height-chromeRows)
		m.syncView()

		return m, nil

	case tickMsg:
		if m.sess.AutoRefresh {
			m.refresh()
		}

		return m, m.tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true

		return m, tea.Quit

	case "tab":
		// Tab completes on the inspect tab when candidates are visible,
		// and switches tabs otherwise.
		if m.sess.ActiveTab == session.TabInspect && len(m.matches) > 0 {
			m.acceptMatch()

			return m, nil
		}

		return m.toggleTab()

	case "shift+tab":
		return m.toggleTab()
	}

	if m.sess.ActiveTab == session.TabWatch {
		return m.handleWatchKey(msg)
	}

	return m.handleInspectKey(msg)
}

func (m model) handleInspectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.evaluate()

		return m, nil

	case "ctrl+y":
		m.copyPlain(m.plain)

		return m, nil

	case "ctrl+w":
		m.addWatch(strings.TrimSpace(m.input.Value()))

		return m, nil

	case "pgup", "pgdown":
		var cmd tea.Cmd

		m.view, cmd = m.view.Update(msg)

		return m, cmd
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.refreshMatches()

	return m, cmd
}

func (m model) handleWatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true

		return m, tea.Quit

	case "up", "k":
		if m.sel > 0 {
			m.sel--
		}

		m.syncView()

	case "down", "j":
		if m.sel < m.list.Len()-1 {
			m.sel++
		}

		m.syncView()

	case "a":
		m.addWatch(strings.TrimSpace(m.input.Value()))

	case "d":
		if m.list.RemoveAt(m.sel) {
			if m.sel >= m.list.Len() && m.sel > 0 {
				m.sel--
			}

			m.refresh()
		}

	case " ":
		if m.list.ToggleAt(m.sel) {
			m.refresh()
		}

	case "r":
		m.refresh()
		m.status = "refreshed"

	case "t":
		m.sess.AutoRefresh = !m.sess.AutoRefresh
		if m.sess.AutoRefresh {
			m.status = "auto-refresh on"

			return m, m.tickCmd()
		}

		m.status = "auto-refresh off"

	case "y":
		if m.sel < len(m.results) {
			r := m.results[m.sel]
			m.copyPlain(append([]string{r.Name + " ="}, r.Plain...))
		}
	}

	return m, nil
}

// toggleTab switches between the inspect and watch tabs, moving input
// focus accordingly.
func (m model) toggleTab() (tea.Model, tea.Cmd) {
	if m.sess.ActiveTab == session.TabInspect {
		m.sess.ActiveTab = session.TabWatch
		m.input.Blur()
		m.matches = nil
		m.refresh()

		return m, nil
	}

	m.sess.ActiveTab = session.TabInspect
	m.syncView()

	return m, m.input.Focus()
}

// evaluate resolves the current input expression and renders it into
// the viewport.
func (m *model) evaluate() {
	expr := strings.TrimSpace(m.input.Value())
	if expr == "" {
		m.status = "type an expression to inspect"

		return
	}

	m.sess.LastInput = m.input.Value()

	v, found := inspect.Resolve(m.env, expr)
	if !found {
		m.output = []string{watch.NotFound}
		m.plain = []string{watch.NotFound}
	} else {
		m.output = m.pol.Decorated(v, 0)
		m.plain = m.pol.Plain(v, 0)
	}

	m.status = ""
	m.matches = nil
	m.syncView()
}

// refresh re-resolves every watch entry and rebuilds the viewport.
func (m *model) refresh() {
	m.results = m.list.Refresh(m.env, m.pol)
	m.syncView()
}

// refreshMatches recomputes the completion candidates for the input and
// restarts tab-cycling.
func (m *model) refreshMatches() {
	m.matches, m.wordStart, m.wordEnd = computeMatches(
		m.env, m.input.Value(), m.input.Position(),
	)
	m.suggIdx = 0
}

// acceptMatch replaces the word at the cursor with the next candidate.
// Repeated presses cycle through the match list; any other edit restarts
// the cycle.
func (m *model) acceptMatch() {
	if len(m.matches) == 0 {
		return
	}

	repl := m.matches[m.suggIdx%len(m.matches)].Str
	m.suggIdx++

	val := m.input.Value()

	m.input.SetValue(val[:m.wordStart] + repl + val[m.wordEnd:])
	m.input.SetCursor(m.wordStart + len(repl))
	m.wordEnd = m.wordStart + len(repl)
}

// addWatch appends an expression to the watch list. Duplicates are a
// no-op by design.
func (m *model) addWatch(expr string) {
	if expr == "" {
		m.status = "nothing to watch"

		return
	}

	if !m.list.Add(expr) {
		m.status = "already watching " + expr

		return
	}

	m.status = "watching " + expr
	m.refresh()
}

// copyPlain exports the undecorated lines to the system clipboard.
func (m *model) copyPlain(lines []string) {
	if len(lines) == 0 {
		m.status = "nothing to copy"

		return
	}

	if err := clipboard.WriteAll(strings.Join(lines, "\n")); err != nil {
		m.status = errorStyle.Render("clipboard: " + err.Error())

		return
	}

	m.status = fmt.Sprintf("copied %d line(s)", len(lines))
}

// syncView rebuilds the viewport content for the active tab.
func (m *model) syncView() {
	if m.sess.ActiveTab == session.TabInspect {
		m.view.SetContent(strings.Join(m.output, "\n"))

		return
	}

	var b strings.Builder

	for i, r := range m.results {
		marker := "▼ "
		if r.Collapsed {
			marker = "▶ "
		}

		header := marker + r.Name
		if i == m.sel {
			header = selectedStyle.Render(header)
		} else {
			header = entryStyle.Render(header)
		}

		b.WriteString(header)
		b.WriteString("\n")

		if !r.Collapsed {
			for _, line := range r.Decorated {
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
	}

	m.view.SetContent(b.String())
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.tabBar())
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.sess.ActiveTab == session.TabInspect && len(m.matches) > 0 {
		sel := 0
		if m.suggIdx > 0 {
			sel = (m.suggIdx - 1) % len(m.matches)
		}

		b.WriteString(renderCandidateBar(m.matches, sel, m.width))
	}

	b.WriteString("\n")

	b.WriteString(m.view.View())
	b.WriteString("\n")

	b.WriteString(m.statusBar())

	return b.String()
}

func (m model) tabBar() string {
	inspectTab := tabStyle.Render("inspect")
	watchTab := tabStyle.Render(fmt.Sprintf("watch (%d)", m.list.Len()))

	if m.sess.ActiveTab == session.TabInspect {
		inspectTab = activeTabStyle.Render("inspect")
	} else {
		watchTab = activeTabStyle.Render(fmt.Sprintf("watch (%d)", m.list.Len()))
	}

	return inspectTab + " " + watchTab
}

func (m model) statusBar() string {
	if m.status != "" {
		return statusStyle.Render(m.status)
	}

	hint := "enter eval · tab complete/switch · ctrl+w watch · ctrl+y copy"
	if m.sess.ActiveTab == session.TabWatch {
		hint = "a add · d del · space fold · r refresh · t auto · y copy · q quit"
	}

	return hintStyle.Render(hint)
}
