package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// Item is one selectable entry. Label is what the filter matches on and
// what is rendered; Value is returned to the caller.
type Item struct {
	Label string
	Value string
}

// PickResult holds the outcome of a picker run.
type PickResult struct {
	Cancelled bool
	Item      Item
}

const maxVisible = 10

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

// itemSource implements fuzzy.Source over item labels.
type itemSource []Item

func (s itemSource) String(i int) string { return s[i].Label }
func (s itemSource) Len() int            { return len(s) }

type pickerModel struct {
	title    string
	items    []Item
	input    textinput.Model
	filtered []fuzzy.Match
	cursor   int

	done      bool
	cancelled bool
	choice    Item
}

func newPickerModel(title string, items []Item) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "> "
	ti.Focus()

	m := pickerModel{
		title: title,
		items: items,
		input: ti,
	}
	m.applyFilter()
	return m
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			if len(m.filtered) > 0 {
				m.choice = m.items[m.filtered[m.cursor].Index]
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

func (m *pickerModel) applyFilter() {
	query := m.input.Value()
	if query == "" {
		// No filter: everything matches in original order.
		m.filtered = make([]fuzzy.Match, len(m.items))
		for i := range m.items {
			m.filtered[i] = fuzzy.Match{Str: m.items[i].Label, Index: i}
		}
	} else {
		m.filtered = fuzzy.FindFrom(query, itemSource(m.items))
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

func (m pickerModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.input.View() + "\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("no matches") + "\n")
		return b.String()
	}

	start, end := visibleRange(m.cursor, len(m.filtered))
	for i := start; i < end; i++ {
		label := m.items[m.filtered[i].Index].Label
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> ") + selectedStyle.Render(label) + "\n")
		} else {
			b.WriteString("  " + label + "\n")
		}
	}

	if len(m.filtered) > maxVisible {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.filtered))) + "\n")
	}

	return b.String()
}

// visibleRange keeps the cursor inside a maxVisible-sized window.
func visibleRange(cursor, total int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}
	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	if start+maxVisible > total {
		start = total - maxVisible
	}
	return start, start + maxVisible
}

// Pick runs the interactive picker and returns the selected item.
func Pick(title string, items []Item) (PickResult, error) {
	p := tea.NewProgram(newPickerModel(title, items))
	finalModel, err := p.Run()
	if err != nil {
		return PickResult{}, err
	}

	m := finalModel.(pickerModel)
	if m.cancelled {
		return PickResult{Cancelled: true}, nil
	}
	return PickResult{Item: m.choice}, nil
}
