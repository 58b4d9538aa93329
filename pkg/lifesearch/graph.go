package lifesearch

// coordIndex maps a coordinate to its slot in a flat W*H*P cell slice.
func coordIndex(cfg *Config, x, y, t int) int {
	return (y*cfg.Width+x)*cfg.Period + t
}

func inWorld(cfg *Config, x, y int) bool {
	return x >= 0 && x < cfg.Width && y >= 0 && y < cfg.Height
}

// moore lists the eight neighbor offsets in the fixed order cells.go's
// dirNW..dirSE constants index into.
var moore = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// transformPoint applies one of the eight symmetries of the square (or,
// for Id/FlipRow/FlipCol, the rectangle) to a coordinate. R90/R270/
// FlipDiag/FlipAnti assume cfg.Width == cfg.Height, already enforced by
// Config.validate.
func transformPoint(t Transform, x, y, w, h int) (int, int) {
	switch t {
	case TransformId:
		return x, y
	case TransformR90:
		return w - 1 - y, x
	case TransformR180:
		return w - 1 - x, h - 1 - y
	case TransformR270:
		return y, w - 1 - x
	case TransformFlipRow:
		return x, h - 1 - y
	case TransformFlipCol:
		return w - 1 - x, y
	case TransformFlipDiag:
		return y, x
	case TransformFlipAnti:
		return w - 1 - y, w - 1 - x
	default:
		return x, y
	}
}

// symmetryGenerators lists the transforms that generate the requested
// symmetry subgroup; buildOrbits closes them into full orbits.
func symmetryGenerators(s Symmetry) []Transform {
	switch s {
	case SymmetryC1:
		return nil
	case SymmetryC2:
		return []Transform{TransformR180}
	case SymmetryC4:
		return []Transform{TransformR90}
	case SymmetryD2Row:
		return []Transform{TransformFlipRow}
	case SymmetryD2Col:
		return []Transform{TransformFlipCol}
	case SymmetryD2Diag:
		return []Transform{TransformFlipDiag}
	case SymmetryD2Anti:
		return []Transform{TransformFlipAnti}
	case SymmetryD4Plus:
		return []Transform{TransformFlipRow, TransformFlipCol}
	case SymmetryD4X:
		return []Transform{TransformFlipDiag, TransformFlipAnti}
	case SymmetryD8:
		return []Transform{TransformR90, TransformFlipRow}
	default:
		return nil
	}
}

type point struct{ x, y int }

// buildOrbits computes, for every (x,y) in the world, the set of points
// sharing its symmetry orbit under the group generated by gens. BFS over
// forward application of the generators is enough to find a whole finite
// orbit even though only one direction of each generator is applied,
// because the orbit is closed under composition and a generating set's
// closure already reaches every element reachable by any sequence of the
// generators or their inverses.
func buildOrbits(cfg *Config, gens []Transform) map[point][]point {
	orbits := make(map[point][]point)
	if len(gens) == 0 {
		return orbits
	}
	visited := make(map[point]bool)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			start := point{x, y}
			if visited[start] {
				continue
			}
			orbit := []point{start}
			seen := map[point]bool{start: true}
			frontier := []point{start}
			for len(frontier) > 0 {
				var next []point
				for _, p := range frontier {
					for _, g := range gens {
						nx, ny := transformPoint(g, p.x, p.y, cfg.Width, cfg.Height)
						np := point{nx, ny}
						if !seen[np] {
							seen[np] = true
							orbit = append(orbit, np)
							next = append(next, np)
						}
					}
				}
				frontier = next
			}
			for _, p := range orbit {
				visited[p] = true
				orbits[p] = orbit
			}
		}
	}
	return orbits
}

// buildCells allocates and wires the spacetime graph: every cell's
// initial descriptor, its predecessor/successor link across the period
// boundary (with translation and transform applied at the wrap), its
// eight same-generation Moore neighbors, and its symmetry twins. Forcing
// known_cells and diagonal_width, and building the branching chain, is
// left to Build since both need the solver's setCell machinery.
func buildCells(cfg *Config, engine ruleEngine, bg func(t int) State) []cell {
	w, h, p := cfg.Width, cfg.Height, cfg.Period
	cells := make([]cell, w*h*p)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for t := 0; t < p; t++ {
				idx := coordIndex(cfg, x, y, t)
				cells[idx] = cell{
					coord: Coord{X: x, Y: y, T: t},
					state: Unknown,
					desc:  engine.newDesc(Unknown),
					pred:  outOfWorld,
					succ:  outOfWorld,
					next:  outOfWorld,
					order: -1,
				}
				for i := range cells[idx].nbhd {
					cells[idx].nbhd[i] = outOfWorld
				}
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for t := 0; t < p; t++ {
				id := cellID(coordIndex(cfg, x, y, t))

				nextT := t + 1
				if t+1 < p {
					succID := cellID(coordIndex(cfg, x, y, t+1))
					cells[id].succ = succID
					cells[succID].pred = id
				} else {
					nextT = 0
					tx, ty := transformPoint(cfg.Transform, x, y, w, h)
					tx += cfg.Dx
					ty += cfg.Dy
					if inWorld(cfg, tx, ty) {
						succID := cellID(coordIndex(cfg, tx, ty, 0))
						cells[id].succ = succID
						cells[succID].pred = id
					} else {
						cells[id].desc = engine.updateDesc(cells[id].desc, posSucc, engine.selfCode(bg(nextT)))
					}
				}

				for i, off := range moore {
					nx, ny := x+off[0], y+off[1]
					if inWorld(cfg, nx, ny) {
						cells[id].nbhd[i] = cellID(coordIndex(cfg, nx, ny, t))
					} else {
						cells[id].desc = engine.updateDesc(cells[id].desc, i, engine.selfCode(bg(t)))
					}
				}
			}
		}
	}

	orbits := buildOrbits(cfg, symmetryGenerators(cfg.Symmetry))
	for pt, orbit := range orbits {
		if len(orbit) < 2 {
			continue
		}
		for t := 0; t < p; t++ {
			self := cellID(coordIndex(cfg, pt.x, pt.y, t))
			for _, q := range orbit {
				if q == pt {
					continue
				}
				cells[self].sym = append(cells[self].sym, cellID(coordIndex(cfg, q.x, q.y, t)))
			}
		}
	}

	return cells
}
