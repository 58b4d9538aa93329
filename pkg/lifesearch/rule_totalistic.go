package lifesearch

// Totalistic descriptors pack aaaa (dead-neighbor count, 4 bits) · eeee
// (alive-neighbor count, 4 bits) · ii (successor code, 2 bits) · kk (self
// code, 2 bits) into the low 12 bits of a desc, matching the table size of
// 4096 entries given in the component design.
const (
	totalisticBits = 12
	totalisticSize = 1 << totalisticBits
)

func totalisticDesc(dead, alive int, succ, self stateCode) desc {
	return desc(dead)<<8 | desc(alive)<<4 | desc(succ)<<2 | desc(self)
}

func totalisticUnpack(d desc) (dead, alive int, succ, self stateCode) {
	return int(d>>8) & 0xF, int(d>>4) & 0xF, stateCode(d>>2) & 0x3, stateCode(d) & 0x3
}

// totalisticEngine implements ruleEngine for Life-like totalistic rules
// (birth/survive sets over alive-neighbor counts 0..8).
type totalisticEngine struct {
	birth, survive [9]bool
	gen            int
	table          [totalisticSize]ImplFlags
}

func newTotalisticEngine(spec RuleSpec) *totalisticEngine {
	e := &totalisticEngine{gen: spec.Gen}
	for _, b := range spec.Birth {
		if b >= 0 && b <= 8 {
			e.birth[b] = true
		}
	}
	for _, s := range spec.Survive {
		if s >= 0 && s <= 8 {
			e.survive[s] = true
		}
	}
	e.buildTable()
	return e
}

func (e *totalisticEngine) hasB0() bool  { return e.birth[0] }
func (e *totalisticEngine) genCount() int { return e.gen }

func (e *totalisticEngine) newDesc(self State) desc {
	return totalisticDesc(0, 0, codeUnknown, codeOf(self))
}

func (e *totalisticEngine) updateDesc(d desc, pos int, newCode stateCode) desc {
	dead, alive, succ, self := totalisticUnpack(d)
	switch {
	case pos == posSelf:
		self = newCode
	case pos == posSucc:
		succ = newCode
	default:
		// A neighbor moving out of "unknown" decrements aaaa/eeee's
		// implicit unknown share by incrementing the matching known
		// counter; callers only ever call this once per neighbor, when
		// it becomes known, so no decrement path is needed here.
		if newCode == codeDead {
			dead++
		} else if newCode == codeAlive {
			alive++
		}
	}
	return totalisticDesc(dead, alive, succ, self)
}

// buildTable runs the five phases from the rule-implication-table design:
// base facts for fully-known neighborhoods, induction over descriptors
// with progressively more unknown neighbors, conflict marking, and the
// self/neighbor implication passes. Phases 3 and 4 fall out of the same
// pass as phase 1 (both interrogate the same fully-known base case), and
// phases 2 and 5 share inductiveFlags, so the loop below has two stages:
// baseFlags for fully-known neighborhoods and inductiveFlags for the rest.
func (e *totalisticEngine) buildTable() {
	for unk := 0; unk <= 8; unk++ {
		for alive := 0; alive+unk <= 8; alive++ {
			dead := 8 - unk - alive
			for kk := stateCode(0); kk < 3; kk++ {
				for ii := stateCode(0); ii < 3; ii++ {
					var flags ImplFlags
					if unk == 0 {
						flags = e.baseFlags(alive, kk, ii)
					} else {
						flags = e.inductiveFlags(dead, alive, kk, ii)
					}
					e.table[totalisticDesc(dead, alive, ii, kk)] = flags
				}
			}
		}
	}
}

// selfCandidates lists which concrete self states are compatible with kk.
func selfCandidates(kk stateCode) []bool {
	switch kk {
	case codeDead:
		return []bool{false}
	case codeAlive:
		return []bool{true}
	default:
		return []bool{false, true}
	}
}

func (e *totalisticEngine) succForced(selfAlive bool, alive int) bool {
	if selfAlive {
		return e.survive[alive]
	}
	return e.birth[alive]
}

// baseFlags handles a fully-known neighborhood (phase 1), folding in the
// conflict marking (phase 3) and self implication (phase 4) passes since
// both only ever examine this same base case.
func (e *totalisticEngine) baseFlags(alive int, kk, ii stateCode) ImplFlags {
	var flags ImplFlags
	candidates := selfCandidates(kk)
	forced := map[bool]bool{}
	for _, sv := range candidates {
		forced[e.succForced(sv, alive)] = true
	}
	if len(forced) == 1 {
		var succAlive bool
		for v := range forced {
			succAlive = v
		}
		if succAlive {
			flags |= FlagSuccAlive
		} else {
			flags |= FlagSuccDead
		}
		if ii == codeAlive && !succAlive {
			flags |= FlagConflict
		}
		if ii == codeDead && succAlive {
			flags |= FlagConflict
		}
	}
	if ii != codeUnknown && kk == codeUnknown {
		wantAlive := ii == codeAlive
		var matching []bool
		for _, sv := range candidates {
			if e.succForced(sv, alive) == wantAlive {
				matching = append(matching, sv)
			}
		}
		switch len(matching) {
		case 0:
			flags |= FlagConflict
		case 1:
			if matching[0] {
				flags |= FlagSelfAlive
			} else {
				flags |= FlagSelfDead
			}
		}
	}
	return flags
}

// inductiveFlags handles a neighborhood with at least one unknown slot
// (phase 2 for SUCC/SELF propagation, phase 5 for NBHD), by comparing the
// two already-computed table entries obtained by resolving one unknown
// neighbor to dead or to alive.
func (e *totalisticEngine) inductiveFlags(dead, alive int, kk, ii stateCode) ImplFlags {
	asDead := e.table[totalisticDesc(dead+1, alive, ii, kk)]
	asAlive := e.table[totalisticDesc(dead, alive+1, ii, kk)]
	deadConflict := asDead&FlagConflict != 0
	aliveConflict := asAlive&FlagConflict != 0

	var flags ImplFlags
	switch {
	case deadConflict && aliveConflict:
		flags |= FlagConflict
	case deadConflict && !aliveConflict:
		flags |= FlagNbhdAlive
	case !deadConflict && aliveConflict:
		flags |= FlagNbhdDead
	default:
		if s := asDead & FlagSucc; s != 0 && s == asAlive&FlagSucc {
			flags |= s
		}
		if s := asDead & FlagSelf; s != 0 && s == asAlive&FlagSelf {
			flags |= s
		}
	}
	return flags
}

func (e *totalisticEngine) lookupFlags(d desc) ImplFlags { return e.table[d] }

func (e *totalisticEngine) lookupNbhd(d desc, _ int) stateCode {
	f := e.table[d]
	switch {
	case f&FlagNbhdAlive != 0:
		return codeAlive
	case f&FlagNbhdDead != 0:
		return codeDead
	default:
		return codeUnknown
	}
}

func (e *totalisticEngine) consistify(w *World, id cellID) bool {
	c := &w.cells[id]
	flags := e.table[c.desc]
	if flags&FlagConflict != 0 {
		return false
	}
	if flags&FlagSuccAlive != 0 {
		if !w.forceSucc(id, Alive) {
			return false
		}
	} else if flags&FlagSuccDead != 0 {
		if !w.forceSucc(id, Dead) {
			return false
		}
	}
	if c.state == Unknown {
		if flags&FlagSelfAlive != 0 {
			if !w.setCell(id, Alive, reason{kind: reasonDeduce}) {
				return false
			}
		} else if flags&FlagSelfDead != 0 {
			if !w.setCell(id, Dead, reason{kind: reasonDeduce}) {
				return false
			}
		}
	}
	if flags&FlagNbhd != 0 {
		want := Alive
		if flags&FlagNbhdDead != 0 {
			want = Dead
		}
		for _, n := range c.nbhd {
			if n == outOfWorld {
				continue
			}
			if w.cells[n].state == Unknown {
				if !w.setCell(n, want, reason{kind: reasonDeduce}) {
					return false
				}
			}
		}
	}
	return true
}

func (e *totalisticEngine) selfCode(s State) stateCode { return codeOf(s) }
