package lifesearch

// buildSearchOrder returns the sequence of coordinates to branch on, in
// the order the solver should visit them. World.buildChain links the
// still-unknown cells in this same order, and the branching cursor walks
// the chain forward from its head (the first coordinate returned here).
func buildSearchOrder(cfg *Config) []Coord {
	kind := cfg.SearchOrder
	if kind == SearchOrderAuto {
		kind = autoSearchOrder(cfg)
	}
	switch kind {
	case SearchOrderRow:
		return rowFirstOrder(cfg)
	case SearchOrderColumn:
		return columnFirstOrder(cfg)
	case SearchOrderDiagonal:
		return diagonalOrder(cfg)
	case SearchOrderFromVec:
		return append([]Coord(nil), cfg.SearchOrderVec...)
	default:
		return rowFirstOrder(cfg)
	}
}

// autoSearchOrder implements the §4.6 heuristic: wider-than-tall worlds
// search column first, taller-than-wide worlds search row first, and
// square worlds prefer the diagonal when it is geometrically available,
// falling back to whichever of row/column matches the translation's
// dominant axis.
func autoSearchOrder(cfg *Config) SearchOrderKind {
	switch {
	case cfg.Width > cfg.Height:
		return SearchOrderColumn
	case cfg.Width < cfg.Height:
		return SearchOrderRow
	default:
		if cfg.DiagonalWidth != nil {
			return SearchOrderDiagonal
		}
		dx, dy := abs(cfg.Dx), abs(cfg.Dy)
		if dx >= dy {
			return SearchOrderColumn
		}
		return SearchOrderRow
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func rowFirstOrder(cfg *Config) []Coord {
	xStart := 0
	if cfg.Symmetry.fixesColumnHalf() {
		xStart = cfg.Width / 2
	}
	var out []Coord
	for y := 0; y < cfg.Height; y++ {
		for x := xStart; x < cfg.Width; x++ {
			for t := 0; t < cfg.Period; t++ {
				out = append(out, Coord{X: x, Y: y, T: t})
			}
		}
	}
	return out
}

func columnFirstOrder(cfg *Config) []Coord {
	yStart := 0
	if cfg.Symmetry.fixesRowHalf() {
		yStart = cfg.Height / 2
	}
	var out []Coord
	for x := 0; x < cfg.Width; x++ {
		for y := yStart; y < cfg.Height; y++ {
			for t := 0; t < cfg.Period; t++ {
				out = append(out, Coord{X: x, Y: y, T: t})
			}
		}
	}
	return out
}

// diagonalOrder traverses anti-diagonals of the (necessarily square)
// world, restricting to the half above the main diagonal when a
// diagonal-reflecting symmetry already fixes the other half.
func diagonalOrder(cfg *Config) []Coord {
	n := cfg.Width
	half := cfg.Symmetry == SymmetryD2Diag || cfg.Symmetry == SymmetryD2Anti ||
		cfg.Symmetry == SymmetryD4X || cfg.Symmetry == SymmetryD8
	var out []Coord
	for d := 0; d < 2*n-1; d++ {
		for x := 0; x < n; x++ {
			y := d - x
			if y < 0 || y >= n {
				continue
			}
			if half && y > x {
				continue
			}
			for t := 0; t < cfg.Period; t++ {
				out = append(out, Coord{X: x, Y: y, T: t})
			}
		}
	}
	return out
}

// isFront reports whether coord lies on the search order's front, per the
// representative rules in §4.6. Returns false unconditionally when no
// front is defined for this configuration (FromVec order, or any
// configuration with known cells), which disables the non-empty-front
// constraint rather than erroring — an intentionally preserved quirk, see
// the design notes on this open question.
func isFront(cfg *Config, kind SearchOrderKind, ruleHasB0 bool, coord Coord) bool {
	if kind == SearchOrderFromVec || len(cfg.KnownCells) > 0 {
		return false
	}
	switch kind {
	case SearchOrderRow:
		return rowFront(cfg, ruleHasB0, coord)
	case SearchOrderColumn:
		return columnFront(cfg, ruleHasB0, coord)
	case SearchOrderDiagonal:
		return diagonalFront(cfg, coord)
	default:
		return true
	}
}

func rowFront(cfg *Config, ruleHasB0 bool, coord Coord) bool {
	if cfg.Symmetry.fixesColumnHalf() {
		return true
	}
	if cfg.Transform != TransformId && cfg.Transform != TransformFlipCol {
		return true
	}
	if cfg.DiagonalWidth != nil {
		return true
	}
	if !ruleHasB0 && cfg.Dx == 0 && cfg.Dy >= 0 {
		y := cfg.Dy - 1
		if y < 0 {
			y = 0
		}
		return coord.Y == y && coord.T == 0 && coord.X >= cfg.Width/2
	}
	return coord.Y == 0
}

func columnFront(cfg *Config, ruleHasB0 bool, coord Coord) bool {
	if cfg.Symmetry.fixesRowHalf() {
		return true
	}
	if cfg.Transform != TransformId && cfg.Transform != TransformFlipRow {
		return true
	}
	if cfg.DiagonalWidth != nil {
		return true
	}
	if !ruleHasB0 && cfg.Dy == 0 && cfg.Dx >= 0 {
		x := cfg.Dx - 1
		if x < 0 {
			x = 0
		}
		return coord.X == x && coord.T == 0 && coord.Y >= cfg.Height/2
	}
	return coord.X == 0
}

func diagonalFront(cfg *Config, coord Coord) bool {
	symmetric := cfg.Symmetry == SymmetryD2Diag || cfg.Symmetry == SymmetryD2Anti ||
		cfg.Symmetry == SymmetryD4X || cfg.Symmetry == SymmetryD8
	if !symmetric {
		return true
	}
	x := cfg.Dx - 1
	if x < 0 {
		x = 0
	}
	return coord.X == x && coord.T == 0
}
