package lifesearch

// isBoring runs the non-triviality checks of §4.8 against a fully-known
// world: an empty pattern, a smaller true period than the one configured,
// a fully dead front while NonEmptyFront is set (see frontViolated), or
// (when enabled) a stricter symmetry than the one configured.
func (w *World) isBoring() bool {
	if w.isEmpty() {
		return true
	}
	if w.hasSmallerPeriod() {
		return true
	}
	if w.frontViolated() {
		return true
	}
	if w.cfg.ReduceOnlyExclusion && w.satisfiesStricterSymmetry() {
		return true
	}
	return false
}

// frontViolated reports whether the non_empty_front constraint is active,
// a front is actually defined for this configuration, and every front
// cell nonetheless came out dead.
func (w *World) frontViolated() bool {
	if !w.cfg.NonEmptyFront {
		return false
	}
	sawFront := false
	for i := range w.cells {
		if !w.cells[i].isFront {
			continue
		}
		sawFront = true
		if w.cells[i].state != Dead {
			return false
		}
	}
	return sawFront
}

func (w *World) isEmpty() bool {
	for i := range w.cells {
		if w.cells[i].state != Dead {
			return false
		}
	}
	return true
}

// hasSmallerPeriod checks every proper divisor tp of the configured period
// for a simple-translation sub-period: state(x,y,t) == state(x+ddx,y+ddy,
// t+tp) for every t in range. This only recognizes sub-periods compatible
// with the identity transform; a true smaller period that only appears
// after applying a non-identity transform at its own boundary is not
// detected, a deliberate simplification recorded in the design notes.
func (w *World) hasSmallerPeriod() bool {
	for tp := 1; tp < w.cfg.Period; tp++ {
		if w.cfg.Period%tp != 0 {
			continue
		}
		if w.matchesSubPeriod(tp) {
			return true
		}
	}
	return false
}

func (w *World) matchesSubPeriod(tp int) bool {
	scale := w.cfg.Period / tp
	if w.cfg.Transform != TransformId {
		return false
	}
	if w.cfg.Dx%scale != 0 || w.cfg.Dy%scale != 0 {
		return false
	}
	ddx, ddy := w.cfg.Dx/scale, w.cfg.Dy/scale

	for y := 0; y < w.cfg.Height; y++ {
		for x := 0; x < w.cfg.Width; x++ {
			nx, ny := x+ddx, y+ddy
			if !inWorld(&w.cfg, nx, ny) {
				return false
			}
			for t := 0; t < w.cfg.Period-tp; t++ {
				a := w.cells[coordIndex(&w.cfg, x, y, t)].state
				b := w.cells[coordIndex(&w.cfg, nx, ny, t+tp)].state
				if a != b {
					return false
				}
			}
		}
	}
	return true
}

// strongerSymmetries lists, for each symmetry, the groups that properly
// contain it; satisfying one of them unasked makes the configured
// symmetry redundant.
var strongerSymmetries = map[Symmetry][]Symmetry{
	SymmetryC1:     {SymmetryC2, SymmetryC4, SymmetryD2Row, SymmetryD2Col, SymmetryD2Diag, SymmetryD2Anti},
	SymmetryC2:     {SymmetryC4, SymmetryD4Plus, SymmetryD4X},
	SymmetryD2Row:  {SymmetryD4Plus},
	SymmetryD2Col:  {SymmetryD4Plus},
	SymmetryD2Diag: {SymmetryD4X},
	SymmetryD2Anti: {SymmetryD4X},
	SymmetryD4Plus: {SymmetryD8},
	SymmetryD4X:    {SymmetryD8},
	SymmetryC4:     {SymmetryD8},
}

func (w *World) satisfiesStricterSymmetry() bool {
	for _, stricter := range strongerSymmetries[w.cfg.Symmetry] {
		if stricter.requiresSquare() && w.cfg.Width != w.cfg.Height {
			continue
		}
		if w.matchesSymmetry(stricter) {
			return true
		}
	}
	return false
}

func (w *World) matchesSymmetry(sym Symmetry) bool {
	orbits := buildOrbits(&w.cfg, symmetryGenerators(sym))
	for pt, orbit := range orbits {
		if len(orbit) < 2 {
			continue
		}
		for t := 0; t < w.cfg.Period; t++ {
			base := w.cells[coordIndex(&w.cfg, pt.x, pt.y, t)].state
			for _, q := range orbit {
				if q == pt {
					continue
				}
				if w.cells[coordIndex(&w.cfg, q.x, q.y, t)].state != base {
					return false
				}
			}
		}
	}
	return true
}
