// Package shell is the interactive renderer loop around the edit-buffer
// core: a github.com/charmbracelet/bubbletea tea.Model that owns an
// *edit.State, translates key presses into the core's edit operations, and
// renders its advisory bundle. It is intentionally thin — the "renderer"
// and "keystroke translator" spec.md leaves out of the core's scope — so
// none of its logic is part of the tested core contract.
package shell

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ilya-bobyr/icp/internal/command"
	"github.com/ilya-bobyr/icp/internal/edit"
)

var (
	hintInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))
	hintErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	inlineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	suggestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Italic(true)
)

// Model wraps an *edit.State as a bubbletea program.
type Model struct {
	state    *edit.State
	width    int
	quitting bool
}

// New returns a Model driving state.
func New(state *edit.State) Model {
	return Model{state: state}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.state.Execute()
		case tea.KeyBackspace:
			m.state.Backspace()
		case tea.KeyDelete:
			m.state.DeleteForward()
		case tea.KeyLeft:
			m.state.CursorLeft()
		case tea.KeyRight:
			m.state.CursorRight()
		case tea.KeyHome, tea.KeyCtrlA:
			m.state.CursorStart()
		case tea.KeyEnd, tea.KeyCtrlE:
			m.state.CursorEnd()
		case tea.KeyUp:
			m.state.HistoryPrev()
		case tea.KeyDown:
			m.state.HistoryNext()
		case tea.KeyTab:
			m.state.Complete()
		case tea.KeyCtrlU:
			m.state.EraseToStart()
		case tea.KeySpace:
			m.state.Insert(' ')
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.state.Insert(r)
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.state.CurrentPrompt())
	b.WriteString(m.state.Input())

	adv := m.state.Advisory()
	if adv.InlineHint != nil {
		b.WriteString(inlineStyle.Render(*adv.InlineHint))
	}

	if adv.EndOfLineHint != nil {
		style := hintInfoStyle
		if adv.EndOfLineHint.Kind == command.Error {
			style = hintErrorStyle
		}
		b.WriteString("  ")
		b.WriteString(style.Render(adv.EndOfLineHint.Text))
	}

	if len(adv.Suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(suggestStyle.Render(strings.Join(adv.Suggestions, "  ")))
	}

	return b.String()
}
