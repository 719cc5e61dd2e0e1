package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/chaoskit/internal/dynamo"
	"github.com/san-kum/chaoskit/internal/integrators"
)

const historyCapacity = 600

type TickMsg time.Time

// Model advances a system in real time and charts one coordinate.
type Model struct {
	sys       dynamo.System
	stepper   dynamo.Stepper
	state     dynamo.State
	t, dt     float64
	axis      int
	modelName string
	running   bool
	history   []float64
}

func NewModel(sys dynamo.System, x0 dynamo.State, dt float64, axis int, modelName string) Model {
	return Model{
		sys:       sys,
		stepper:   integrators.NewRK4(),
		state:     x0.Clone(),
		dt:        dt,
		axis:      axis,
		modelName: modelName,
		running:   true,
		history:   make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case TickMsg:
		if m.running {
			// Several substeps per frame keeps playback near real time.
			for i := 0; i < 4; i++ {
				m.state = m.stepper.Step(m.sys, m.state, m.t, m.dt)
				m.t += m.dt
			}
			m.history = append(m.history, m.state[m.axis])
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("chaoskit live — %s", m.modelName)))
	sb.WriteString("\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(14),
			asciigraph.Width(72),
			asciigraph.Caption(fmt.Sprintf("x%d(t)", m.axis)))
		sb.WriteString(graphStyle.Render(chart))
		sb.WriteString("\n")
	}

	sb.WriteString(labelStyle.Render("t"))
	sb.WriteString(valueStyle.Render(fmt.Sprintf("%.2f", m.t)))
	sb.WriteString("\n")
	for i, v := range m.state {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("x%d", i)))
		sb.WriteString(valueStyle.Render(fmt.Sprintf("%+.4f", v)))
		sb.WriteString("\n")
	}

	status := "running"
	if !m.running {
		status = "paused"
	}
	sb.WriteString(helpStyle.Render(fmt.Sprintf("[space] pause/resume  [q] quit — %s", status)))
	sb.WriteString("\n")

	return sb.String()
}

// Run starts the live view and blocks until quit.
func Run(sys dynamo.System, x0 dynamo.State, dt float64, axis int, modelName string) error {
	p := tea.NewProgram(NewModel(sys, x0, dt, axis, modelName))
	_, err := p.Run()
	return err
}
