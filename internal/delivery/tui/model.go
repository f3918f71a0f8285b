// Package tui provides the Bubble Tea terminal front-end.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aliskhannn/sunhwa-master/internal/domain/entities"
	"github.com/aliskhannn/sunhwa-master/internal/service"
)

// refocusDelay defers focusing the input until the next word has rendered.
const refocusDelay = 10 * time.Millisecond

type focusMsg struct{}

// Model implements the Bubble Tea purification trainer.
type Model struct {
	ctx               context.Context
	controller        *service.Controller
	pointsPerQuestion int

	menu   []menuItem
	cursor int
	errMsg string

	input      textinput.Model
	list       viewport.Model
	confirming bool

	width  int
	height int
}

// NewModel constructs the UI on the home screen.
func NewModel(ctx context.Context, controller *service.Controller, pointsPerQuestion int) *Model {
	input := textinput.New()
	input.Placeholder = "순화어를 입력하고 엔터"
	input.CharLimit = 64
	input.Width = 30

	return &Model{
		ctx:               ctx,
		controller:        controller,
		pointsPerQuestion: pointsPerQuestion,
		menu:              homeMenu(),
		input:             input,
		list:              viewport.New(80, 20),
	}
}

// StartAt opens the model directly on a session, skipping the home screen.
func (m *Model) StartAt(mode entities.Mode, category entities.Category) error {
	return m.start(mode, category)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.controller.Active() {
		return textinput.Blink
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.Width = msg.Width
		m.list.Height = max(msg.Height-4, 1)
		return m, nil
	case focusMsg:
		return m, m.input.Focus()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.confirming {
			return m.updateConfirm(msg)
		}
		if !m.controller.Active() {
			return m.updateHome(msg)
		}
		if msg.Type == tea.KeyEsc {
			return m.leave()
		}
		return m.updateSession(msg)
	}
	return m, nil
}

func (m *Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.menu)-1 {
			m.cursor++
		}
	case "enter":
		item := m.menu[m.cursor]
		if err := m.start(item.mode, item.category); err != nil {
			return m, nil
		}
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirming = false
		m.reset()
	case "n", "N", "esc":
		m.confirming = false
	}
	return m, nil
}

func (m *Model) updateSession(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.controller.Session()

	if s.Mode == entities.ModeStudy {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if s.Finished {
		if msg.Type == tea.KeyEnter {
			m.reset()
		}
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		return m.enter(s)
	}

	// The input is read-only while practice feedback is shown.
	if s.Feedback.Shown {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.controller.SetInput(m.input.Value())
	return m, cmd
}

func (m *Model) enter(s *entities.Session) (tea.Model, tea.Cmd) {
	if s.Mode == entities.ModePractice && s.Feedback.Shown {
		m.controller.Advance()
		return m.moved(s)
	}

	before := s.Index
	if _, ok := m.controller.Submit(m.input.Value()); !ok {
		return m, nil
	}

	if s.Mode == entities.ModeTest && (s.Index != before || s.Finished) {
		return m.moved(s)
	}
	return m, nil
}

// moved clears the input after the session position changed and schedules
// the deferred refocus.
func (m *Model) moved(s *entities.Session) (tea.Model, tea.Cmd) {
	m.input.Reset()
	m.input.Blur()
	if s.Finished {
		return m, nil
	}
	return m, tea.Tick(refocusDelay, func(time.Time) tea.Msg { return focusMsg{} })
}

func (m *Model) leave() (tea.Model, tea.Cmd) {
	if m.controller.NeedsConfirmation() {
		m.confirming = true
		return m, nil
	}
	m.reset()
	return m, nil
}

func (m *Model) start(mode entities.Mode, category entities.Category) error {
	if err := m.controller.Start(m.ctx, mode, category); err != nil {
		if errors.Is(err, service.ErrNoWords) {
			m.errMsg = "선택한 분류에 단어가 없습니다."
		} else {
			m.errMsg = err.Error()
		}
		return err
	}

	m.errMsg = ""
	m.input.Reset()
	m.input.Focus()

	s := m.controller.Session()
	if s.Mode == entities.ModeStudy {
		m.list.SetContent(RenderList(s))
		m.list.GotoTop()
	}
	return nil
}

func (m *Model) reset() {
	m.controller.Reset()
	m.input.Reset()
	m.input.Blur()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.confirming {
		return renderConfirm()
	}

	s := m.controller.Session()
	if s == nil {
		return renderHome(m.menu, m.cursor, m.errMsg)
	}

	switch s.Mode {
	case entities.ModeStudy:
		return renderListHeader(s) + "\n" + m.list.View() + "\n" + renderListFooter()
	case entities.ModePractice:
		if s.Finished {
			return renderPracticeSummary(s)
		}
		return renderPractice(s, m.input.View())
	case entities.ModeTest:
		if s.Finished {
			return renderTestSummary(s, m.pointsPerQuestion)
		}
		return renderTest(s, m.input.View())
	}
	return ""
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
