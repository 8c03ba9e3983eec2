package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grovekit/grove/pkg/git"
)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	branchStyle = lipgloss.NewStyle().Bold(true)
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// selectModel represents the Bubble Tea model for worktree selection.
type selectModel struct {
	choices  []git.Worktree
	filtered []git.Worktree
	cursor   int
	filter   string
	selected *git.Worktree
	quitting bool
}

// initialSelectModel creates a new select model.
func initialSelectModel(choices []git.Worktree) selectModel {
	return selectModel{
		choices:  choices,
		filtered: choices,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyInput(msg)
	}
	return m, nil
}

// handleKeyInput processes key input and returns the updated model and command.
func (m *selectModel) handleKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
			selected := m.filtered[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
		return m, nil
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "ctrl+n":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.updateFiltered()
		}
	case "esc":
		m.filter = ""
		m.updateFiltered()
	default:
		if len(key) == 1 {
			m.filter += key
			m.updateFiltered()
		}
	}

	return m, nil
}

// updateFiltered updates the filtered choices based on the current filter.
func (m *selectModel) updateFiltered() {
	if m.filter == "" {
		m.filtered = m.choices
	} else {
		filterLower := strings.ToLower(m.filter)
		m.filtered = nil
		for _, choice := range m.choices {
			if strings.Contains(strings.ToLower(choice.Branch), filterLower) {
				m.filtered = append(m.filtered, choice)
			}
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var s strings.Builder

	s.WriteString("? Choose a worktree:  [Use arrows to move, type to filter]\n\n")

	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	for i, choice := range m.filtered {
		cursor := " "
		line := fmt.Sprintf("%s %s", branchStyle.Render(choice.Branch), pathStyle.Render(choice.Path))
		if m.cursor == i {
			cursor = cursorStyle.Render(">")
		}
		s.WriteString(fmt.Sprintf("%s %s\n", cursor, line))
	}

	s.WriteString("\nPress Enter to select, Ctrl+C or q to quit")
	if m.filter != "" {
		s.WriteString(", Esc to clear filter")
	}

	return s.String()
}

// selectWorktreeBubbleTea runs the Bubble Tea program for worktree selection.
func selectWorktreeBubbleTea(candidates []git.Worktree) (*git.Worktree, error) {
	p := tea.NewProgram(initialSelectModel(candidates))

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}

	// User quit without selecting: cancellation, not an error
	return model.selected, nil
}
