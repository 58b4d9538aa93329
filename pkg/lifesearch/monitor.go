package lifesearch

// SearchMonitor accumulates statistics across one World's lifetime,
// mirroring the node/backtrack/depth counters a constraint solver
// typically exposes to a caller polling for progress.
type SearchMonitor struct {
	Steps        uint64
	Backtracks   uint64
	MaxTrailSize int
}

func (m *SearchMonitor) recordStep() { m.Steps++ }

func (m *SearchMonitor) recordBacktrack() { m.Backtracks++ }

func (m *SearchMonitor) recordTrailSize(n int) {
	if n > m.MaxTrailSize {
		m.MaxTrailSize = n
	}
}
