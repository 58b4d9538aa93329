package lifesearch

import "fmt"

// Transform is applied to the world at the period boundary, composed with
// the translation (Dx, Dy). R90, R270, F\, and F/ require a square world.
type Transform int

const (
	TransformId Transform = iota
	TransformR90
	TransformR180
	TransformR270
	TransformFlipRow  // F-
	TransformFlipCol  // F|
	TransformFlipDiag // F\
	TransformFlipAnti // F/
)

func (t Transform) requiresSquare() bool {
	switch t {
	case TransformR90, TransformR270, TransformFlipDiag, TransformFlipAnti:
		return true
	default:
		return false
	}
}

func (t Transform) String() string {
	switch t {
	case TransformId:
		return "Id"
	case TransformR90:
		return "R90"
	case TransformR180:
		return "R180"
	case TransformR270:
		return "R270"
	case TransformFlipRow:
		return "F-"
	case TransformFlipCol:
		return "F|"
	case TransformFlipDiag:
		return `F\`
	case TransformFlipAnti:
		return "F/"
	default:
		return "Transform(?)"
	}
}

// Symmetry is the subgroup of translation-then-rotation symmetries the
// pattern must respect. D2\, D2/, D4X, and D8 require a square world.
type Symmetry int

const (
	SymmetryC1 Symmetry = iota
	SymmetryC2
	SymmetryC4
	SymmetryD2Row  // D2-
	SymmetryD2Col  // D2|
	SymmetryD2Diag // D2\
	SymmetryD2Anti // D2/
	SymmetryD4Plus // D4+ (D2- and D2|)
	SymmetryD4X    // D4X (D2\ and D2/)
	SymmetryD8
)

func (s Symmetry) requiresSquare() bool {
	switch s {
	case SymmetryC4, SymmetryD2Diag, SymmetryD2Anti, SymmetryD4X, SymmetryD8:
		return true
	default:
		return false
	}
}

// fixesColumnHalf reports whether this symmetry already determines the
// right half of the world from the left half, letting a row-major search
// order skip the redundant half.
func (s Symmetry) fixesColumnHalf() bool {
	switch s {
	case SymmetryD2Col, SymmetryD4Plus, SymmetryD4X, SymmetryD8:
		return true
	default:
		return false
	}
}

func (s Symmetry) fixesRowHalf() bool {
	switch s {
	case SymmetryD2Row, SymmetryD4Plus, SymmetryD4X, SymmetryD8:
		return true
	default:
		return false
	}
}

func (s Symmetry) String() string {
	names := [...]string{"C1", "C2", "C4", "D2-", "D2|", `D2\`, "D2/", "D4+", "D4X", "D8"}
	if int(s) < len(names) {
		return names[s]
	}
	return "Symmetry(?)"
}

// NewState selects how decide() picks a state for a newly branched cell.
type NewState int

const (
	ChooseDead NewState = iota
	ChooseAlive
	ChooseRandom
)

// SearchOrderKind names one of the four fixed branching orders. Zero value
// means "auto-select" (see autoSearchOrder).
type SearchOrderKind int

const (
	SearchOrderAuto SearchOrderKind = iota
	SearchOrderRow
	SearchOrderColumn
	SearchOrderDiagonal
	SearchOrderFromVec
)

// RuleKind distinguishes the two descriptor families.
type RuleKind int

const (
	RuleTotalistic RuleKind = iota
	RuleNonTotalistic
)

// RuleSpec is the already-parsed rule: a birth/survive set (the bit set's
// members are read as neighbor-alive counts for totalistic rules, or as
// 8-bit Moore neighbor-configuration codes for non-totalistic rules) plus
// a generation count. Gen == 2 selects the plain, non-Generations variant.
// Parsing a rule string (B3/S23, Hensel notation, a /C suffix) is an
// external collaborator's job; this package only consumes the triple.
type RuleSpec struct {
	Kind    RuleKind
	Birth   []int
	Survive []int
	Gen     int
}

func (r RuleSpec) hasB0() bool {
	for _, b := range r.Birth {
		if b == 0 {
			return true
		}
	}
	return false
}

func (r RuleSpec) hasS8() bool {
	for _, s := range r.Survive {
		if s == 8 {
			return true
		}
	}
	return false
}

// KnownCell fixes one cell to a state before the search begins.
type KnownCell struct {
	Coord Coord
	State State
}

// Config fully describes a search. Build validates it and constructs a
// ready World.
type Config struct {
	Width, Height, Period int
	Dx, Dy                int
	Transform             Transform
	Symmetry              Symmetry
	SearchOrder           SearchOrderKind
	// SearchOrderVec supplies the explicit coordinate list for
	// SearchOrderFromVec; ignored otherwise.
	SearchOrderVec []Coord

	NewState NewState
	// RandomSeed seeds the RNG consulted by ChooseRandom; fixed so that
	// runs are reproducible.
	RandomSeed int64

	MaxCellCount         *int
	ReduceMax            bool
	NonEmptyFront        bool
	ReduceOnlyExclusion  bool
	KnownCells           []KnownCell
	DiagonalWidth        *int

	Rule RuleSpec
}

// validate checks every invariant §7 assigns to ConfigError, returning the
// first violation found.
func (c *Config) validate() error {
	if c.Width <= 0 {
		return newConfigError("width", fmt.Errorf("must be positive, got %d", c.Width))
	}
	if c.Height <= 0 {
		return newConfigError("height", fmt.Errorf("must be positive, got %d", c.Height))
	}
	if c.Period <= 0 {
		return newConfigError("period", fmt.Errorf("must be positive, got %d", c.Period))
	}
	if c.Transform.requiresSquare() && c.Width != c.Height {
		return newConfigError("transform", fmt.Errorf("%s requires a square world, got %dx%d", c.Transform, c.Width, c.Height))
	}
	if c.Symmetry.requiresSquare() && c.Width != c.Height {
		return newConfigError("symmetry", fmt.Errorf("%s requires a square world, got %dx%d", c.Symmetry, c.Width, c.Height))
	}
	if c.SearchOrder == SearchOrderDiagonal && c.Width != c.Height {
		return newConfigError("search_order", fmt.Errorf("diagonal search order requires a square world, got %dx%d", c.Width, c.Height))
	}
	if c.SearchOrder == SearchOrderFromVec && len(c.SearchOrderVec) == 0 {
		return newConfigError("search_order", fmt.Errorf("from_vec search order requires a non-empty vector"))
	}
	gen := c.Rule.Gen
	if gen < 2 {
		return newConfigError("rule.gen", fmt.Errorf("must be >= 2, got %d", gen))
	}
	for _, kc := range c.KnownCells {
		if kc.Coord.X < 0 || kc.Coord.X >= c.Width || kc.Coord.Y < 0 || kc.Coord.Y >= c.Height || kc.Coord.T < 0 || kc.Coord.T >= c.Period {
			return newConfigError("known_cells", fmt.Errorf("%s is out of bounds", kc.Coord))
		}
		if int(kc.State) >= gen {
			return newConfigError("known_cells", fmt.Errorf("%s: state ordinal %d >= gen %d", kc.Coord, kc.State, gen))
		}
	}
	if c.DiagonalWidth != nil && *c.DiagonalWidth < 0 {
		return newConfigError("diagonal_width", fmt.Errorf("must be non-negative, got %d", *c.DiagonalWidth))
	}
	return nil
}

func (c *Config) isGenRule() bool { return c.Rule.Gen > 2 }
