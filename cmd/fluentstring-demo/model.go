package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/fluentstring"
	"github.com/iw2rmb/fluentstring/cond"
)

const (
	separator     = ", "
	reserveStep   = 1024
	logHeight     = 8
	defaultWidth  = 60
	maxTokenWidth = 24
)

type Config struct {
	// MaxCapacity bounds the joined list's buffer. default: 256
	MaxCapacity int
	Style       Style
	KeyMap      KeyMap
}

type model struct {
	keys  KeyMap
	style Style

	token  fluentstring.String
	joined fluentstring.String

	log    viewport.Model
	lines  []string
	status string
}

func newModel(cfg Config) model {
	if cfg.MaxCapacity == 0 {
		cfg.MaxCapacity = 256
	}
	if cfg.KeyMap.Quit.Keys() == nil {
		cfg.KeyMap = DefaultKeyMap()
	}
	return model{
		keys:   cfg.KeyMap,
		style:  cfg.Style,
		token:  fluentstring.New("", fluentstring.Options{}),
		joined: fluentstring.WithCapacity(16, fluentstring.Options{MaxCapacity: cfg.MaxCapacity}),
		log:    viewport.New(defaultWidth, logHeight),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.log.Width = max(msg.Width-m.style.Log.GetHorizontalFrameSize(), 1)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Commit):
		m.commit()
	case key.Matches(msg, m.keys.Backspace):
		m.token = m.token.TruncateIf(cond.CutLastGrapheme)
	case key.Matches(msg, m.keys.DropLast):
		m.joined = m.joined.TruncateIf(cond.CutAfterLast[fluentstring.String](separator))
		m.record("truncate_if(cut after last %q)", separator)
	case key.Matches(msg, m.keys.Clear):
		_ = m.joined.Mut().Clear()
		_ = m.token.Mut().Clear()
		m.record("clear")
	case key.Matches(msg, m.keys.Shrink):
		m.joined = m.joined.ShrinkToFit()
		m.record("shrink_to_fit")
	case key.Matches(msg, m.keys.Reserve):
		next, err := m.joined.TryReserve(reserveStep)
		m.joined = next
		if err != nil {
			m.fail(err)
			return m, nil
		}
		m.record("try_reserve(%d)", reserveStep)
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		fits := cond.RuneFitsWidth[fluentstring.String](maxTokenWidth)
		for _, r := range msg.Runes {
			m.token = m.token.PushIf(r, fits)
		}
	}
	return m, nil
}

// commit appends the pending token to the joined list, separated from the
// previous one, unless the list's capacity limit would be exceeded.
func (m *model) commit() {
	m.token = m.token.TruncateIf(cond.TrimTrailingSpace)
	if m.token.IsEmpty() {
		return
	}
	tok := m.token.String()

	need := len(tok)
	if !m.joined.IsEmpty() {
		need += len(separator)
	}
	if _, err := m.joined.Mut().TryReserve(need); err != nil {
		m.fail(err)
		return
	}

	_ = m.joined.Mut().
		PushStrIf(separator, cond.NeitherEmpty).
		PushStr(tok)
	_ = m.token.Mut().Clear()
	m.record("push_str(%q)", tok)
}

func (m *model) record(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	line += fmt.Sprintf("  len=%d cap=%d", m.joined.Len(), m.joined.Cap())
	m.lines = append(m.lines, line)
	m.log.SetContent(strings.Join(m.lines, "\n"))
	m.log.GotoBottom()
	m.status = ""
}

func (m *model) fail(err error) {
	m.status = err.Error()
}

func (m model) View() string {
	var sb strings.Builder

	sb.WriteString(m.style.Title.Render("fluentstring demo"))
	sb.WriteString("\n\n")

	sb.WriteString(m.style.Label.Render("list  "))
	sb.WriteString(m.style.Joined.Render(m.joined.String()))
	sb.WriteByte('\n')

	sb.WriteString(m.style.Label.Render("token "))
	sb.WriteString(m.style.Token.Render(m.token.String()))
	sb.WriteString(m.style.Cursor.Render(" "))
	sb.WriteByte('\n')

	sb.WriteString(m.style.Stats.Render(fmt.Sprintf("len=%d cap=%d", m.joined.Len(), m.joined.Cap())))
	sb.WriteByte('\n')

	if m.status != "" {
		sb.WriteString(m.style.Error.Render(m.status))
		sb.WriteByte('\n')
	}

	sb.WriteString(m.style.Log.Render(m.log.View()))
	sb.WriteByte('\n')
	sb.WriteString(m.helpView())
	return sb.String()
}

func (m model) helpView() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.style.Help.Render(strings.Join(parts, " • "))
}
