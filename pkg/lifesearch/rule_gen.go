package lifesearch

// genEngine wraps a binary rule engine (totalistic or non-totalistic) and
// reinterprets its flags for Generations rules, where a cell that fails to
// survive does not die outright but passes through dying states
// Dying(2)..Dying(gen-1) before reaching Dead, and only the Alive state
// counts toward a neighbor's alive count.
type genEngine struct {
	base ruleEngine
	gen  int
}

func newGenEngine(base ruleEngine, gen int) *genEngine {
	return &genEngine{base: base, gen: gen}
}

func (e *genEngine) hasB0() bool   { return e.base.hasB0() }
func (e *genEngine) genCount() int { return e.gen }

// genCode is the binary view a Generations state presents to the wrapped
// engine: only Alive counts as alive. Dead and every dying state count as
// dead, since Generations rules sum only truly-alive neighbors.
func genCode(s State) stateCode {
	switch {
	case s == Unknown:
		return codeUnknown
	case s == Alive:
		return codeAlive
	default:
		return codeDead
	}
}

func (e *genEngine) newDesc(self State) desc {
	return e.base.newDesc(stateOfCode(genCode(self)))
}

// stateOfCode is a throwaway State carrying only the binary information
// codeOf/genCode can recover; newDesc/updateDesc on the wrapped engine
// only ever re-derive the 2-bit code from it.
func stateOfCode(c stateCode) State {
	switch c {
	case codeDead:
		return Dead
	case codeAlive:
		return Alive
	default:
		return Unknown
	}
}

func (e *genEngine) updateDesc(d desc, pos int, newCode stateCode) desc {
	return e.base.updateDesc(d, pos, newCode)
}

func (e *genEngine) lookupFlags(d desc) ImplFlags       { return e.base.lookupFlags(d) }
func (e *genEngine) lookupNbhd(d desc, i int) stateCode { return e.base.lookupNbhd(d, i) }
func (e *genEngine) selfCode(s State) stateCode         { return genCode(s) }

func (e *genEngine) consistify(w *World, id cellID) bool {
	c := &w.cells[id]
	self := c.state

	if self.IsDying() {
		return e.consistifyDying(w, id, self)
	}

	flags := e.base.lookupFlags(c.desc)
	if flags&FlagConflict != 0 {
		return false
	}

	switch {
	case self == Dead:
		if !e.consistifySuccFromFlags(w, id, flags) {
			return false
		}
	case self == Alive:
		if flags&FlagSuccAlive != 0 {
			if !w.forceSucc(id, Alive) {
				return false
			}
		} else if flags&FlagSuccDead != 0 {
			// An alive cell that fails to survive becomes the first
			// dying state, never Dead outright.
			if !w.forceSucc(id, Dying(2)) {
				return false
			}
		}
	case self == Unknown:
		if !e.consistifySelfFromSucc(w, id, flags) {
			return false
		}
	}

	if flags&FlagNbhdAlive != 0 {
		for i, n := range c.nbhd {
			if n == outOfWorld || w.cells[n].state != Unknown {
				continue
			}
			if e.base.lookupNbhd(c.desc, i) != codeUnknown || flags&FlagNbhd != 0 {
				if !w.setCell(n, Alive, reason{kind: reasonDeduce}) {
					return false
				}
			}
		}
	}
	return true
}

// consistifySuccFromFlags handles the self == Dead case: the successor,
// if forced, is exactly Dead or Alive (a dead cell never transitions
// straight into a dying state).
func (e *genEngine) consistifySuccFromFlags(w *World, id cellID, flags ImplFlags) bool {
	if flags&FlagSuccAlive != 0 {
		return w.forceSucc(id, Alive)
	}
	if flags&FlagSuccDead != 0 {
		return w.forceSucc(id, Dead)
	}
	return true
}

// consistifySelfFromSucc handles self == Unknown, where the successor
// cell may already be known; it runs the six-case table from the
// Generations overlay design.
func (e *genEngine) consistifySelfFromSucc(w *World, id cellID, flags ImplFlags) bool {
	succState := w.succState(id)
	switch {
	case succState == Unknown:
		return true
	case succState == Dead:
		if flags&FlagSelfAlive != 0 {
			return w.setCell(id, Dying(e.gen-1), reason{kind: reasonDeduce})
		}
		return true
	case succState == Alive:
		if flags&FlagSelfDead != 0 {
			return w.setCell(id, Dead, reason{kind: reasonDeduce})
		}
		if flags&FlagSelfAlive != 0 {
			return w.setCell(id, Alive, reason{kind: reasonDeduce})
		}
		return true
	default: // succState is a dying state j >= 2
		j := int(succState)
		return w.setCell(id, State(j-1), reason{kind: reasonDeduce})
	}
}

// consistifyDying handles a cell already known to be dying: its successor
// is deterministic, Dying((i+1) mod gen), independent of neighbors.
func (e *genEngine) consistifyDying(w *World, id cellID, self State) bool {
	i := int(self)
	next := State((i + 1) % e.gen)
	return w.forceSucc(id, next)
}
