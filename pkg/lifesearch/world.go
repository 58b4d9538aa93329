package lifesearch

import (
	"context"
	"log/slog"
	"math/rand"
)

// Status is the outcome of a Search call.
type Status int

const (
	StatusInitial Status = iota
	StatusFound
	StatusNone
	StatusSearching
	StatusPaused
)

func (s Status) String() string {
	switch s {
	case StatusInitial:
		return "initial"
	case StatusFound:
		return "found"
	case StatusNone:
		return "none"
	case StatusSearching:
		return "searching"
	case StatusPaused:
		return "paused"
	default:
		return "status(?)"
	}
}

// World is one solver instance: the spacetime cell graph, the rule engine
// that drives deduction over it, and the trail that makes the search
// reversible. It is not safe for concurrent use; Search holds exclusive
// mutable access to the whole graph for its duration, per the
// single-threaded concurrency model.
type World struct {
	cfg    Config
	engine ruleEngine
	cells  []cell

	kind SearchOrderKind

	trail      []trailEntry
	checkIndex int
	next       cellID // next_unknown cursor into the branching chain
	chainHead  cellID

	conflicts    uint64
	liveCount    []int
	maxCellCount *int

	rng     *rand.Rand
	logger  *slog.Logger
	monitor *SearchMonitor
	status  Status
}

// Build validates cfg and constructs a ready World, per the cell graph
// construction algorithm in the component design.
func Build(cfg Config) (*World, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var base ruleEngine
	switch cfg.Rule.Kind {
	case RuleTotalistic:
		base = newTotalisticEngine(cfg.Rule)
	case RuleNonTotalistic:
		base = newNtlifeEngine(cfg.Rule)
	}
	var engine ruleEngine = base
	if cfg.isGenRule() {
		engine = newGenEngine(base, cfg.Rule.Gen)
	}

	w := &World{
		cfg:       cfg,
		engine:    engine,
		next:      outOfWorld,
		chainHead: outOfWorld,
		liveCount: make([]int, cfg.Period),
		rng:       rand.New(rand.NewSource(cfg.RandomSeed)),
		logger:    slog.Default(),
		monitor:   &SearchMonitor{},
		status:    StatusInitial,
	}
	if cfg.MaxCellCount != nil {
		v := *cfg.MaxCellCount
		w.maxCellCount = &v
	}

	w.cells = buildCells(&w.cfg, engine, w.background)

	w.kind = cfg.SearchOrder
	if w.kind == SearchOrderAuto {
		w.kind = autoSearchOrder(&w.cfg)
	}
	hasB0 := engine.hasB0()
	for i := range w.cells {
		w.cells[i].isFront = isFront(&w.cfg, w.kind, hasB0, w.cells[i].coord)
	}

	if cfg.DiagonalWidth != nil {
		d := *cfg.DiagonalWidth
		for y := 0; y < cfg.Height; y++ {
			for x := 0; x < cfg.Width; x++ {
				if abs(x-y) < d {
					continue
				}
				for t := 0; t < cfg.Period; t++ {
					id := cellID(coordIndex(&w.cfg, x, y, t))
					if !w.setCell(id, Dead, reason{kind: reasonKnown}) {
						return nil, newConfigError("diagonal_width", ErrConfig)
					}
				}
			}
		}
	}

	for _, kc := range cfg.KnownCells {
		id := cellID(coordIndex(&w.cfg, kc.Coord.X, kc.Coord.Y, kc.Coord.T))
		if !w.setCell(id, kc.State, reason{kind: reasonKnown}) {
			return nil, newConfigError("known_cells", ErrConfig)
		}
	}

	w.buildChain()

	return w, nil
}

// buildChain lays out the fixed branching order over every cell still
// unknown after construction-time forcing.
func (w *World) buildChain() {
	coords := buildSearchOrder(&w.cfg)
	var head, tail cellID = outOfWorld, outOfWorld
	order := int32(0)
	for _, co := range coords {
		id := cellID(coordIndex(&w.cfg, co.X, co.Y, co.T))
		if w.cells[id].state != Unknown {
			continue
		}
		w.cells[id].order = order
		order++
		w.cells[id].next = outOfWorld
		if tail == outOfWorld {
			head = id
		} else {
			w.cells[tail].next = id
		}
		tail = id
	}
	w.chainHead = head
	w.next = head
}

// background is the state an out-of-world read returns for generation t:
// always Dead unless the rule has B0, in which case it alternates by
// generation parity (Dead/Alive, or Dead/Dying(gen-1) for a Generations
// rule whose survive set also contains 8).
func (w *World) background(t int) State {
	if !w.engine.hasB0() {
		return Dead
	}
	if t%2 == 0 {
		return Dead
	}
	if w.cfg.isGenRule() && w.cfg.Rule.hasS8() {
		return Dying(w.engine.genCount() - 1)
	}
	return Alive
}

// succState reads the current (possibly background) state of id's
// successor without forcing anything.
func (w *World) succState(id cellID) State {
	c := &w.cells[id]
	if c.succ == outOfWorld {
		return w.background(w.nextGen(c.coord.T))
	}
	return w.cells[c.succ].state
}

func (w *World) nextGen(t int) int {
	t++
	if t >= w.cfg.Period {
		return 0
	}
	return t
}

// forceSucc sets id's successor to want, or checks it against the
// background when the successor falls outside the world.
func (w *World) forceSucc(id cellID, want State) bool {
	c := &w.cells[id]
	if c.succ == outOfWorld {
		return w.background(w.nextGen(c.coord.T)) == want
	}
	return w.setCell(c.succ, want, reason{kind: reasonDeduce})
}

// setCell implements §4.5's set_cell: assigns state to a (necessarily
// unknown) cell, updates its own descriptor and every descriptor that
// references it (its eight neighbors and its predecessor's successor
// slot), pushes the trail entry, and checks the live-cell ceiling.
func (w *World) setCell(id cellID, state State, r reason) bool {
	c := &w.cells[id]
	if c.state != Unknown {
		return c.state == state
	}

	code := w.engine.selfCode(state)
	c.state = state
	c.desc = w.engine.updateDesc(c.desc, posSelf, code)
	for i, n := range c.nbhd {
		if n == outOfWorld {
			continue
		}
		opp := 7 - i
		w.cells[n].desc = w.engine.updateDesc(w.cells[n].desc, opp, code)
	}
	if c.pred != outOfWorld {
		w.cells[c.pred].desc = w.engine.updateDesc(w.cells[c.pred].desc, posSucc, code)
	}

	w.trail = append(w.trail, trailEntry{cell: id, reason: r})
	w.monitor.recordTrailSize(len(w.trail))

	if state == Alive {
		t := c.coord.T
		w.liveCount[t]++
		if w.maxCellCount != nil && w.liveCount[t] > *w.maxCellCount {
			w.logger.Debug("conflict", "coord", c.coord, "reason", r, "step", w.monitor.Steps)
			return false
		}
	}
	return true
}

// clearCell reverses setCell: restores the cell and every descriptor that
// referenced it to unknown, and rewinds the branching cursor if this cell
// sits earlier in the chain than where the cursor currently is.
func (w *World) clearCell(id cellID) {
	c := &w.cells[id]
	if c.state == Alive {
		w.liveCount[c.coord.T]--
	}
	c.state = Unknown
	c.desc = w.engine.updateDesc(c.desc, posSelf, codeUnknown)
	for i, n := range c.nbhd {
		if n == outOfWorld {
			continue
		}
		opp := 7 - i
		w.cells[n].desc = w.engine.updateDesc(w.cells[n].desc, opp, codeUnknown)
	}
	if c.pred != outOfWorld {
		w.cells[c.pred].desc = w.engine.updateDesc(w.cells[c.pred].desc, posSucc, codeUnknown)
	}
	if c.order >= 0 && (w.next == outOfWorld || c.order < w.cells[w.next].order) {
		w.next = id
	}
}

// consistify10 runs consistify on id, its predecessor, and its eight
// neighbors: the full set of descriptors id's own assignment could have
// changed.
func (w *World) consistify10(id cellID) bool {
	c := &w.cells[id]
	if !w.engine.consistify(w, id) {
		return false
	}
	if c.pred != outOfWorld {
		if !w.engine.consistify(w, c.pred) {
			return false
		}
	}
	for _, n := range c.nbhd {
		if n == outOfWorld {
			continue
		}
		if !w.engine.consistify(w, n) {
			return false
		}
	}
	return true
}

// proceed drains the trail from checkIndex: for each entry, propagates
// its state to symmetry twins, then runs consistify10 on it.
func (w *World) proceed() bool {
	for w.checkIndex < len(w.trail) {
		id := w.trail[w.checkIndex].cell
		state := w.cells[id].state
		for _, s := range w.cells[id].sym {
			if w.cells[s].state != Unknown {
				if w.cells[s].state != state {
					return false
				}
			} else if !w.setCell(s, state, reason{kind: reasonDeduce}) {
				return false
			}
		}
		if !w.consistify10(id) {
			return false
		}
		w.checkIndex++
	}
	return true
}

// retreat pops the trail, clearing cells, until it finds a Decide or
// TryAnother entry whose alternative state it can commit to, or exhausts
// the trail.
func (w *World) retreat() bool {
	for len(w.trail) > 0 {
		top := w.trail[len(w.trail)-1]
		w.trail = w.trail[:len(w.trail)-1]
		w.logger.Debug("backtrack", "coord", w.cells[top.cell].coord, "reason", top.reason, "step", w.monitor.Steps)

		switch top.reason.kind {
		case reasonKnown:
			w.trail = append(w.trail, top)
			w.checkIndex = len(w.trail)
			return false

		case reasonDeduce:
			w.clearCell(top.cell)
			w.checkIndex = len(w.trail)

		case reasonDecide:
			old := int(w.cells[top.cell].state)
			w.clearCell(top.cell)
			w.checkIndex = len(w.trail)
			if w.cfg.isGenRule() {
				next := State((old + 1) % w.engine.genCount())
				if w.setCell(top.cell, next, reason{kind: reasonTryAnother, n: w.engine.genCount() - 2}) {
					return true
				}
			} else {
				if w.setCell(top.cell, flipBinary(State(old)), reason{kind: reasonDeduce}) {
					return true
				}
			}

		case reasonTryAnother:
			old := int(w.cells[top.cell].state)
			w.clearCell(top.cell)
			w.checkIndex = len(w.trail)
			next := State((old + 1) % w.engine.genCount())
			r := reason{kind: reasonDeduce}
			if top.reason.n > 1 {
				r = reason{kind: reasonTryAnother, n: top.reason.n - 1}
			}
			if w.setCell(top.cell, next, r) {
				return true
			}
		}
	}
	w.checkIndex = 0
	w.next = w.chainHead
	return false
}

func flipBinary(s State) State {
	if s == Dead {
		return Alive
	}
	return Dead
}

// goStep repeatedly proceeds and retreats until proceed succeeds (return
// true) or retreat is exhausted (return false), counting every iteration
// as one step and every failed proceed as a conflict.
func (w *World) goStep(step *uint64) bool {
	for {
		*step++
		w.monitor.recordStep()
		if w.proceed() {
			return true
		}
		w.conflicts++
		w.monitor.recordBacktrack()
		coord := Coord{}
		if w.checkIndex < len(w.trail) {
			coord = w.cells[w.trail[w.checkIndex].cell].coord
		}
		w.logger.Debug("conflict", "coord", coord, "conflicts", w.conflicts, "step", w.monitor.Steps)
		if !w.retreat() {
			return false
		}
	}
}

// decide chooses the next unknown cell from the branching chain (skipping
// any the chain's static order already determined by deduction) and
// assigns it a state. ok is only meaningful when found is true.
func (w *World) decide() (ok, found bool) {
	id := w.next
	for id != outOfWorld && w.cells[id].state != Unknown {
		id = w.cells[id].next
	}
	if id == outOfWorld {
		w.next = outOfWorld
		return false, false
	}
	w.next = w.cells[id].next
	state := w.pickState(id)
	r := reason{kind: reasonDecide}
	ok = w.setCell(id, state, r)
	w.logger.Debug("decide", "coord", w.cells[id].coord, "reason", r, "step", w.monitor.Steps)
	return ok, true
}

func (w *World) pickState(id cellID) State {
	c := &w.cells[id]
	switch w.cfg.NewState {
	case ChooseAlive:
		return flipBinary(w.background(c.coord.T))
	case ChooseRandom:
		return State(w.rng.Intn(w.engine.genCount()))
	default:
		return w.background(c.coord.T)
	}
}

// Search runs decide/proceed/backtrack until a result is found, the
// search space is exhausted, max_step is reached, or ctx is cancelled.
// After any return, every invariant in §3.4 holds.
func (w *World) Search(ctx context.Context, maxStep *uint64) Status {
	var step uint64
	if w.next == outOfWorld {
		if !w.retreat() {
			w.status = StatusNone
			return StatusNone
		}
	}
	for w.goStep(&step) {
		select {
		case <-ctx.Done():
			w.status = StatusPaused
			return StatusPaused
		default:
		}

		if ok, found := w.decide(); found {
			if !ok {
				if !w.retreat() {
					w.status = StatusNone
					return StatusNone
				}
			}
		} else {
			if !w.isBoring() {
				if w.cfg.ReduceMax {
					lc := w.CellCount() - 1
					w.maxCellCount = &lc
				}
				w.status = StatusFound
				return StatusFound
			}
			if !w.retreat() {
				w.status = StatusNone
				return StatusNone
			}
		}

		if maxStep != nil && step > *maxStep {
			w.status = StatusSearching
			return StatusSearching
		}
	}
	w.status = StatusNone
	return StatusNone
}

// GetCellState returns the state of the cell at coord.
func (w *World) GetCellState(coord Coord) (State, error) {
	if coord.X < 0 || coord.X >= w.cfg.Width || coord.Y < 0 || coord.Y >= w.cfg.Height || coord.T < 0 || coord.T >= w.cfg.Period {
		return Unknown, &OutOfBoundsError{Coord: coord}
	}
	return w.cells[coordIndex(&w.cfg, coord.X, coord.Y, coord.T)].state, nil
}

// CellCountGen returns the number of known living cells in generation t
// (dying cells do not count, for Generations rules).
func (w *World) CellCountGen(t int) int {
	if t < 0 || t >= len(w.liveCount) {
		return 0
	}
	return w.liveCount[t]
}

// CellCount returns the minimum live-cell count over all generations.
func (w *World) CellCount() int {
	min := w.liveCount[0]
	for _, c := range w.liveCount[1:] {
		if c < min {
			min = c
		}
	}
	return min
}

// Conflicts returns the number of conflicts encountered so far; it never
// decreases across the lifetime of a World.
func (w *World) Conflicts() uint64 { return w.conflicts }

// SetMaxCellCount changes the live-cell ceiling; it is the only parameter
// that may change during a search.
func (w *World) SetMaxCellCount(v *int) {
	if v == nil {
		w.maxCellCount = nil
		return
	}
	c := *v
	w.maxCellCount = &c
}

// Config returns the configuration this World was built from.
func (w *World) Config() *Config { return &w.cfg }

// Stats returns the accumulated search statistics.
func (w *World) Stats() SearchMonitor { return *w.monitor }

// IsGenRule reports whether this world's rule is a Generations rule.
func (w *World) IsGenRule() bool { return w.cfg.isGenRule() }

// IsB0Rule reports whether the rule's birth set contains 0.
func (w *World) IsB0Rule() bool { return w.engine.hasB0() }
