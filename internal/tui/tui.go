// Package tui renders a live progress view of a running search using
// Bubble Tea, polling the underlying solver in small step batches so the
// view stays responsive.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rdiggins/lifesearch/pkg/lifesearch"
)

const batchStep = 1 << 12

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type tickMsg time.Time

type model struct {
	world   *lifesearch.World
	maxStep *uint64
	ctx     context.Context
	cancel  context.CancelFunc
	status  lifesearch.Status
	done    bool
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tick(), m.step())
}

func tick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type stepResult lifesearch.Status

func (m model) step() tea.Cmd {
	return func() tea.Msg {
		batch := uint64(batchStep)
		if m.maxStep != nil && *m.maxStep < batch {
			batch = *m.maxStep
		}
		status := m.world.Search(m.ctx, &batch)
		return stepResult(status)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			m.done = true
			return m, tea.Quit
		}
	case stepResult:
		m.status = lifesearch.Status(msg)
		if m.status == lifesearch.StatusSearching && (m.maxStep == nil || m.world.Stats().Steps < *m.maxStep) {
			return m, m.step()
		}
		m.done = true
		return m, tea.Quit
	case tickMsg:
		if m.done {
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	stats := m.world.Stats()
	header := titleStyle.Render(fmt.Sprintf("lifesearch — %s", m.status))
	body := dimStyle.Render(fmt.Sprintf(
		"steps %d  backtracks %d  conflicts %d  max trail %d",
		stats.Steps, stats.Backtracks, m.world.Conflicts(), stats.MaxTrailSize,
	))
	if m.status == lifesearch.StatusFound {
		cfg := m.world.Config()
		var pattern string
		for t := 0; t < cfg.Period; t++ {
			pattern += m.world.PlaintextGen(t) + "\n"
		}
		return header + "\n" + body + "\n\n" + pattern
	}
	return header + "\n" + body + "\n"
}

// Run drives w's search to completion (Found or None), to an interrupt,
// or, when maxStep is set, until at least *maxStep steps have run (checked
// between batches, so the last batch may overshoot), rendering progress as
// it goes, and returns the final status.
func Run(w *lifesearch.World, maxStep *uint64) (lifesearch.Status, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m := model{world: w, maxStep: maxStep, ctx: ctx, cancel: cancel, status: lifesearch.StatusInitial}
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return lifesearch.StatusInitial, err
	}
	return final.(model).status, nil
}
