package lifesearch

// Non-totalistic descriptors generalize the totalistic layout: instead of
// a dead/alive count pair, each of the eight neighbor positions keeps its
// own 2-bit code, because Hensel-notation birth/survive sets test the
// exact 8-bit neighbor configuration, not just how many neighbors are
// alive. That is sixteen bits of neighbor state plus the same two-bit
// ii/kk pair the totalistic descriptor carries, for twenty bits total —
// the table is addressed by all twenty, the same way the totalistic
// table's 4096 entries already fold ii/kk into its twelve.
const (
	ntlifeBits = 20
	ntlifeSize = 1 << ntlifeBits
)

func ntlifeDesc(pos [8]stateCode, succ, self stateCode) desc {
	var d desc
	for i, c := range pos {
		d |= desc(c) << uint(2*i)
	}
	d |= desc(succ) << 16
	d |= desc(self) << 18
	return d
}

func ntlifeUnpack(d desc) (pos [8]stateCode, succ, self stateCode) {
	for i := range pos {
		pos[i] = stateCode(d>>uint(2*i)) & 0x3
	}
	succ = stateCode(d>>16) & 0x3
	self = stateCode(d>>18) & 0x3
	return
}

// ntEntry is one implication-table slot: the shared conflict/succ/self
// flags plus a per-position force, packed two bits per position in the
// same dead/alive/unknown encoding as stateCode.
type ntEntry struct {
	flags     ImplFlags
	nbhdForce uint16
}

func (e ntEntry) forceAt(i int) stateCode {
	return stateCode(e.nbhdForce>>uint(2*i)) & 0x3
}

func withForce(e ntEntry, i int, code stateCode) ntEntry {
	e.nbhdForce &^= 0x3 << uint(2*i)
	e.nbhdForce |= uint16(code) << uint(2*i)
	return e
}

// ntlifeEngine implements ruleEngine for non-totalistic (Hensel-notation)
// rules: birth/survive are sets of 8-bit Moore neighbor-configuration
// codes rather than alive-neighbor counts.
type ntlifeEngine struct {
	birth, survive [256]bool
	gen            int
	table          []ntEntry
}

func newNtlifeEngine(spec RuleSpec) *ntlifeEngine {
	e := &ntlifeEngine{gen: spec.Gen, table: make([]ntEntry, ntlifeSize)}
	for _, b := range spec.Birth {
		if b >= 0 && b <= 0xFF {
			e.birth[b] = true
		}
	}
	for _, s := range spec.Survive {
		if s >= 0 && s <= 0xFF {
			e.survive[s] = true
		}
	}
	e.buildTable()
	return e
}

func (e *ntlifeEngine) hasB0() bool   { return e.birth[0] }
func (e *ntlifeEngine) genCount() int { return e.gen }

func (e *ntlifeEngine) newDesc(self State) desc {
	var pos [8]stateCode
	for i := range pos {
		pos[i] = codeUnknown
	}
	return ntlifeDesc(pos, codeUnknown, codeOf(self))
}

func (e *ntlifeEngine) updateDesc(d desc, pos int, newCode stateCode) desc {
	positions, succ, self := ntlifeUnpack(d)
	switch {
	case pos == posSelf:
		self = newCode
	case pos == posSucc:
		succ = newCode
	default:
		positions[pos] = newCode
	}
	return ntlifeDesc(positions, succ, self)
}

// unknownPositions returns the indices still coded codeUnknown.
func unknownPositions(pos [8]stateCode) []int {
	var u []int
	for i, c := range pos {
		if c == codeUnknown {
			u = append(u, i)
		}
	}
	return u
}

func maskOf(pos [8]stateCode) int {
	m := 0
	for i, c := range pos {
		if c == codeAlive {
			m |= 1 << uint(i)
		}
	}
	return m
}

func (e *ntlifeEngine) buildTable() {
	// Process in order of ascending number of unknown positions so every
	// induction step only reads already-computed entries.
	for unk := 0; unk <= 8; unk++ {
		forEachPositionCombo(unk, func(pos [8]stateCode) {
			for kk := stateCode(0); kk < 3; kk++ {
				for ii := stateCode(0); ii < 3; ii++ {
					var entry ntEntry
					if unk == 0 {
						entry = e.baseEntry(pos, kk, ii)
					} else {
						entry = e.inductiveEntry(pos, kk, ii)
					}
					e.table[ntlifeDesc(pos, ii, kk)] = entry
				}
			}
		})
	}
}

// forEachPositionCombo invokes f once for every assignment of the eight
// position codes with exactly unk of them codeUnknown and the rest split
// between codeDead and codeAlive.
func forEachPositionCombo(unk int, f func(pos [8]stateCode)) {
	var rec func(i, remainingUnknown int, pos [8]stateCode)
	rec = func(i, remainingUnknown int, pos [8]stateCode) {
		if i == 8 {
			if remainingUnknown == 0 {
				f(pos)
			}
			return
		}
		if remainingUnknown > 0 {
			p2 := pos
			p2[i] = codeUnknown
			rec(i+1, remainingUnknown-1, p2)
		}
		for _, c := range [2]stateCode{codeDead, codeAlive} {
			p2 := pos
			p2[i] = c
			rec(i+1, remainingUnknown, p2)
		}
	}
	rec(0, unk, [8]stateCode{})
}

func (e *ntlifeEngine) baseEntry(pos [8]stateCode, kk, ii stateCode) ntEntry {
	mask := maskOf(pos)
	var entry ntEntry
	candidates := selfCandidates(kk)
	forced := map[bool]bool{}
	for _, sv := range candidates {
		if sv {
			forced[e.survive[mask]] = true
		} else {
			forced[e.birth[mask]] = true
		}
	}
	if len(forced) == 1 {
		var succAlive bool
		for v := range forced {
			succAlive = v
		}
		if succAlive {
			entry.flags |= FlagSuccAlive
		} else {
			entry.flags |= FlagSuccDead
		}
		if (ii == codeAlive && !succAlive) || (ii == codeDead && succAlive) {
			entry.flags |= FlagConflict
		}
	}
	if ii != codeUnknown && kk == codeUnknown {
		wantAlive := ii == codeAlive
		var matching []bool
		for _, sv := range candidates {
			got := e.birth[mask]
			if sv {
				got = e.survive[mask]
			}
			if got == wantAlive {
				matching = append(matching, sv)
			}
		}
		switch len(matching) {
		case 0:
			entry.flags |= FlagConflict
		case 1:
			if matching[0] {
				entry.flags |= FlagSelfAlive
			} else {
				entry.flags |= FlagSelfDead
			}
		}
	}
	return entry
}

func (e *ntlifeEngine) inductiveEntry(pos [8]stateCode, kk, ii stateCode) ntEntry {
	unknowns := unknownPositions(pos)
	i := unknowns[0]
	asDead, asAlive := pos, pos
	asDead[i], asAlive[i] = codeDead, codeAlive
	eDead := e.table[ntlifeDesc(asDead, ii, kk)]
	eAlive := e.table[ntlifeDesc(asAlive, ii, kk)]
	deadConflict := eDead.flags&FlagConflict != 0
	aliveConflict := eAlive.flags&FlagConflict != 0

	var entry ntEntry
	switch {
	case deadConflict && aliveConflict:
		entry.flags |= FlagConflict
	case deadConflict && !aliveConflict:
		entry = withForce(entry, i, codeAlive)
	case !deadConflict && aliveConflict:
		entry = withForce(entry, i, codeDead)
	default:
		if s := eDead.flags & FlagSucc; s != 0 && s == eAlive.flags&FlagSucc {
			entry.flags |= s
		}
		if s := eDead.flags & FlagSelf; s != 0 && s == eAlive.flags&FlagSelf {
			entry.flags |= s
		}
		// Forces already known for positions other than i carry through
		// unchanged from either branch (both branches only add forces at
		// position i, which starts unforced at this level).
		entry.nbhdForce = eDead.nbhdForce
	}
	return entry
}

func (e *ntlifeEngine) lookupFlags(d desc) ImplFlags { return e.table[d].flags }

func (e *ntlifeEngine) lookupNbhd(d desc, i int) stateCode { return e.table[d].forceAt(i) }

func (e *ntlifeEngine) consistify(w *World, id cellID) bool {
	c := &w.cells[id]
	entry := e.table[c.desc]
	if entry.flags&FlagConflict != 0 {
		return false
	}
	if entry.flags&FlagSuccAlive != 0 {
		if !w.forceSucc(id, Alive) {
			return false
		}
	} else if entry.flags&FlagSuccDead != 0 {
		if !w.forceSucc(id, Dead) {
			return false
		}
	}
	if c.state == Unknown {
		if entry.flags&FlagSelfAlive != 0 {
			if !w.setCell(id, Alive, reason{kind: reasonDeduce}) {
				return false
			}
		} else if entry.flags&FlagSelfDead != 0 {
			if !w.setCell(id, Dead, reason{kind: reasonDeduce}) {
				return false
			}
		}
	}
	for i, n := range c.nbhd {
		force := entry.forceAt(i)
		if force == codeUnknown || n == outOfWorld {
			continue
		}
		if w.cells[n].state == Unknown {
			want := Dead
			if force == codeAlive {
				want = Alive
			}
			if !w.setCell(n, want, reason{kind: reasonDeduce}) {
				return false
			}
		}
	}
	return true
}

func (e *ntlifeEngine) selfCode(s State) stateCode { return codeOf(s) }
