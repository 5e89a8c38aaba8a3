package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qa/internal/domain"
)

// Answerer is the TUI-facing subset of the pipeline.
type Answerer interface {
	Answer(question string) ([]domain.ResultInfo, error)
}

// Model is the Bubble Tea model for the interactive question prompt.
type Model struct {
	pipeline Answerer
	input    textinput.Model
	viewport viewport.Model
	results  []domain.ResultInfo
	status   string
	cursor   int
	ready    bool
}

// New creates the interactive model. header describes the loaded corpus.
func New(pipeline Answerer, header string) Model {
	ti := textinput.New()
	ti.Prompt = "? "
	ti.Placeholder = "Type a question and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{pipeline: pipeline, input: ti, viewport: vp, status: header}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + qh + 1 // header + status + query box + spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderResults())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				results, err := m.pipeline.Answer(q)
				if err != nil {
					m.status = "Error: " + err.Error()
					m.results = nil
				} else if len(results) == 0 {
					m.status = fmt.Sprintf("No answers for %q", q)
					m.results = nil
				} else {
					m.status = fmt.Sprintf("%d answer(s) for %q", len(results), q)
					m.results = results
					m.cursor = 0
				}
				m.viewport.SetContent(m.renderResults())
				return m, nil
			}
		case "down":
			if len(m.results) > 0 {
				m.cursor = (m.cursor + 1) % len(m.results)
				m.viewport.SetContent(m.renderResults())
				return m, nil
			}
		case "up":
			if len(m.results) > 0 {
				m.cursor = (m.cursor - 1 + len(m.results)) % len(m.results)
				m.viewport.SetContent(m.renderResults())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt, the answer list and the status line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("QA")
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) renderResults() string {
	if len(m.results) == 0 {
		return "No answers yet."
	}
	var b strings.Builder
	for i, r := range m.results {
		line := fmt.Sprintf("[%-5s] %s  (%.3f)", r.DocumentID, r.Answer, r.Score)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
