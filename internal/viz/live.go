package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/jehanzebchaudhry/stoptime/internal/galerkin"
)

const (
	liveWidth  = 72
	liveHeight = 16
)

type TickMsg time.Time

// Model sweeps through a solved trajectory, revealing it sample by
// sample and flagging the threshold crossing when the sweep reaches it.
type Model struct {
	sol      *galerkin.Solution
	crossing *galerkin.Crossing
	target   float64

	samples  []float64
	times    []float64
	revealed int
	running  bool
}

// NewModel pre-samples the trajectory; crossing may be nil when the
// trajectory never reaches the target.
func NewModel(sol *galerkin.Solution, crossing *galerkin.Crossing, target float64) Model {
	samples := Sample(sol, liveWidth)
	t0, t1 := sol.Mesh.Start(), sol.Mesh.End()
	times := make([]float64, len(samples))
	for i := range times {
		times[i] = t0 + (t1-t0)*float64(i)/float64(len(samples)-1)
	}
	return Model{
		sol:      sol,
		crossing: crossing,
		target:   target,
		samples:  samples,
		times:    times,
		revealed: 2,
		running:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.revealed = 2
			m.running = true
		}
	case TickMsg:
		if m.running && m.revealed < len(m.samples) {
			m.revealed++
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	t := m.times[m.revealed-1]
	y := m.samples[m.revealed-1]

	graph := GraphStyle.Render(plotRevealed(m.samples[:m.revealed]))

	status := [][2]string{
		{"t", FormatFloat(t)},
		{"y(t)", FormatFloat(y)},
		{"target", FormatFloat(m.target)},
	}
	if m.crossing != nil && t >= m.crossing.Time {
		status = append(status, [2]string{"stopping time", FormatFloat(m.crossing.Time)})
	}

	state := "running"
	if !m.running {
		state = "paused"
	}
	if m.revealed == len(m.samples) {
		state = "done"
	}

	return HeaderStyle.Render("stoptime sweep") + "\n" +
		graph + "\n\n" +
		Summary(status) +
		Subtle.Render(fmt.Sprintf("[%s]  space pause · r reset · q quit", state)) + "\n"
}

func plotRevealed(data []float64) string {
	if len(data) < 2 {
		return ""
	}
	return asciigraph.Plot(data, asciigraph.Height(liveHeight), asciigraph.Width(liveWidth))
}

// RunLive starts the interactive sweep viewer.
func RunLive(sol *galerkin.Solution, crossing *galerkin.Crossing, target float64) error {
	p := tea.NewProgram(NewModel(sol, crossing, target))
	_, err := p.Run()
	return err
}
