// Package tui is the terminal presentation layer: a full-screen Bubble
// Tea quiz when stdout is a terminal, and a plain line-mode presenter
// otherwise.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/benbenti/PhotoID/internal/app"
	"github.com/benbenti/PhotoID/internal/domain"
)

type quizPhase int

const (
	phaseAsking quizPhase = iota
	phaseFeedback
	phaseSummary
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	rightStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	wrongStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

type questionMsg struct {
	question domain.Question
	preview  string
	err      error
}

type summaryMsg struct {
	percent  int
	answered bool
}

// QuizModel drives one quiz session through the terminal.
type QuizModel struct {
	session *app.Session
	input   textinput.Model

	phase    quizPhase
	question domain.Question
	preview  string
	feedback domain.Feedback
	percent  int
	answered bool
	err      error

	width  int
	height int
}

// NewQuizModel wraps a prepared session in a Bubble Tea model.
func NewQuizModel(session *app.Session) *QuizModel {
	input := textinput.New()
	input.Placeholder = "type a name"
	input.Focus()
	input.CharLimit = 64
	input.Width = 32

	return &QuizModel{
		session: session,
		input:   input,
		width:   80,
		height:  24,
	}
}

func (m *QuizModel) Init() tea.Cmd {
	m.session.Start()
	return tea.Batch(textinput.Blink, m.nextQuestion())
}

func (m *QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		return m, nil

	case questionMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.phase = phaseAsking
		m.question = msg.question
		m.preview = msg.preview
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	case summaryMsg:
		m.phase = phaseSummary
		m.percent = msg.percent
		m.answered = msg.answered
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.phase {
		case phaseAsking:
			if msg.Type == tea.KeyEnter {
				fb, err := m.session.Answer(m.input.Value())
				if err != nil {
					m.err = err
					return m, tea.Quit
				}
				m.phase = phaseFeedback
				m.feedback = fb
				return m, nil
			}
		case phaseFeedback:
			return m, m.nextQuestion()
		case phaseSummary:
			return m, tea.Quit
		}
	}

	if m.phase == phaseAsking {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *QuizModel) View() string {
	var b strings.Builder
	switch m.phase {
	case phaseAsking:
		header := fmt.Sprintf("Question %d on %d", m.session.QuestionNumber(), m.session.Total())
		b.WriteString(titleStyle.Render(header))
		b.WriteString("\n\n")
		if m.preview != "" {
			b.WriteString(m.preview)
			b.WriteString("\n")
		}
		b.WriteString(subtleStyle.Render(truncate(m.question.Photo, m.width-2)))
		b.WriteString("\n\n")
		b.WriteString(promptStyle.Render("Who is this?"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
	case phaseFeedback:
		style := wrongStyle
		if m.feedback.Correct {
			style = rightStyle
		}
		b.WriteString(style.Render(m.feedback.Text()))
		b.WriteString("\n\n")
		b.WriteString(subtleStyle.Render("press any key to continue"))
	case phaseSummary:
		b.WriteString(summaryStyle.Render("Test finished!"))
		b.WriteString("\n")
		if m.answered {
			b.WriteString(fmt.Sprintf("Your overall success rate is %d%%", m.percent))
		} else {
			b.WriteString("No questions were answered.")
		}
		b.WriteString("\n\n")
		b.WriteString(subtleStyle.Render("press any key to exit"))
	}
	b.WriteString("\n")
	return b.String()
}

// Err reports a failure that ended the program early.
func (m *QuizModel) Err() error { return m.err }

func (m *QuizModel) nextQuestion() tea.Cmd {
	return func() tea.Msg {
		q, ok := m.session.Advance()
		if !ok {
			percent, answered := m.session.SuccessRate()
			return summaryMsg{percent: percent, answered: answered}
		}
		preview, err := RenderPhoto(q.Photo, m.width-4, m.height-10)
		if err != nil {
			// Undecodable photos degrade to showing the path only.
			preview = ""
		}
		return questionMsg{question: q, preview: preview}
	}
}

// RunQuiz runs the session in a full-screen terminal program.
func RunQuiz(session *app.Session) error {
	model := NewQuizModel(session)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*QuizModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
