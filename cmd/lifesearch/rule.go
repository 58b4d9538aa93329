package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rdiggins/lifesearch/pkg/lifesearch"
)

// parseRule parses a subset of the B/S rule-string notation: plain
// totalistic digits (B3/S23), an optional /gen suffix (B3/S23/3) for
// Generations rules, and Hensel neighbor-configuration letters after a
// digit (B2n3/S23) to select a non-totalistic rule. This is a CLI-local
// convenience, not part of the solving library: parsing the full Hensel
// grammar is an external collaborator's job there.
func parseRule(s string) (lifesearch.RuleSpec, error) {
	parts := strings.Split(s, "/")
	if len(parts) < 2 {
		return lifesearch.RuleSpec{}, fmt.Errorf("rule %q: expected B.../S...", s)
	}
	bPart, sPart := parts[0], parts[1]
	if !strings.HasPrefix(bPart, "B") || !strings.HasPrefix(sPart, "S") {
		return lifesearch.RuleSpec{}, fmt.Errorf("rule %q: expected B before birth digits and S before survive digits", s)
	}
	bPart, sPart = bPart[1:], sPart[1:]

	nonTotalistic := strings.ContainsAny(bPart+sPart, "abcdefghijklmnopqrstuvwxyz")

	gen := 2
	if len(parts) >= 3 {
		g, err := strconv.Atoi(parts[2])
		if err != nil {
			return lifesearch.RuleSpec{}, fmt.Errorf("rule %q: bad generation count: %w", s, err)
		}
		gen = g
	}

	spec := lifesearch.RuleSpec{Gen: gen}
	if nonTotalistic {
		spec.Kind = lifesearch.RuleNonTotalistic
		birth, err := parseHenselDigits(bPart)
		if err != nil {
			return lifesearch.RuleSpec{}, fmt.Errorf("rule %q: birth: %w", s, err)
		}
		survive, err := parseHenselDigits(sPart)
		if err != nil {
			return lifesearch.RuleSpec{}, fmt.Errorf("rule %q: survive: %w", s, err)
		}
		spec.Birth, spec.Survive = birth, survive
	} else {
		spec.Kind = lifesearch.RuleTotalistic
		spec.Birth = parseDigits(bPart)
		spec.Survive = parseDigits(sPart)
	}
	return spec, nil
}

func parseDigits(s string) []int {
	var out []int
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, int(r-'0'))
		}
	}
	return out
}

// parseHenselDigits expands a birth or survive part into the 8-bit
// neighbor masks it selects. A digit with no letters selects every mask
// with that many alive neighbors; letters after a digit keep only the
// masks whose henselLetter class is one of them. There is no full
// canonical letter table: henselLetter only ever yields "n" or "c", so
// any other letter selects no mask.
func parseHenselDigits(s string) ([]int, error) {
	var masks []int
	i := 0
	for i < len(s) {
		if s[i] < '0' || s[i] > '8' {
			return nil, fmt.Errorf("expected a digit, got %q", s[i])
		}
		count := int(s[i] - '0')
		i++
		var letters []byte
		for i < len(s) && s[i] >= 'a' && s[i] <= 'z' {
			letters = append(letters, s[i])
			i++
		}
		if len(letters) == 0 {
			masks = append(masks, allMasksOfCount(count)...)
			continue
		}
		for _, m := range allMasksOfCount(count) {
			for _, l := range letters {
				if henselLetter(count, m) == l {
					masks = append(masks, m)
				}
			}
		}
	}
	return masks, nil
}

func allMasksOfCount(count int) []int {
	var out []int
	for m := 0; m < 256; m++ {
		if popcount(m) == count {
			out = append(out, m)
		}
	}
	return out
}

func popcount(m int) int {
	n := 0
	for m != 0 {
		n += m & 1
		m >>= 1
	}
	return n
}

// henselLetter classifies an 8-bit neighbor mask (bit i set means the
// library's Moore position i, NW,N,NE,W,E,SW,S,SE, is alive) by whether
// its alive neighbors form one contiguous run around the ring
// N,NE,E,SE,S,SW,W,NW: a contiguous run (and the empty and full masks)
// is "n", and every other mask is "c".
func henselLetter(count int, mask int) byte {
	if count == 0 || count == 8 {
		return 'n'
	}
	ring := 0
	for k, i := range [8]int{1, 2, 4, 7, 6, 5, 3, 0} {
		if mask&(1<<uint(i)) != 0 {
			ring |= 1 << uint(k)
		}
	}
	if isRotationallyContiguous(ring) {
		return 'n'
	}
	return 'c'
}

func isRotationallyContiguous(mask int) bool {
	count := popcount(mask)
	if count == 0 {
		return true
	}
	doubled := mask | (mask << 8)
	for start := 0; start < 8; start++ {
		run := 0
		ok := true
		for i := 0; i < 8; i++ {
			bit := (doubled >> uint(start+i)) & 1
			if i < count {
				if bit == 0 {
					ok = false
					break
				}
				run++
			} else if bit == 1 {
				ok = false
				break
			}
		}
		if ok && run == count {
			return true
		}
	}
	return false
}

func parseTransform(s string) (lifesearch.Transform, error) {
	switch strings.ToLower(s) {
	case "id", "":
		return lifesearch.TransformId, nil
	case "r90":
		return lifesearch.TransformR90, nil
	case "r180":
		return lifesearch.TransformR180, nil
	case "r270":
		return lifesearch.TransformR270, nil
	case "f-", "fliprow":
		return lifesearch.TransformFlipRow, nil
	case "f|", "flipcol":
		return lifesearch.TransformFlipCol, nil
	case `f\`, "flipdiag":
		return lifesearch.TransformFlipDiag, nil
	case "f/", "flipanti":
		return lifesearch.TransformFlipAnti, nil
	default:
		return 0, fmt.Errorf("unknown transform %q", s)
	}
}

func parseSymmetry(s string) (lifesearch.Symmetry, error) {
	switch strings.ToUpper(s) {
	case "C1", "":
		return lifesearch.SymmetryC1, nil
	case "C2":
		return lifesearch.SymmetryC2, nil
	case "C4":
		return lifesearch.SymmetryC4, nil
	case "D2-":
		return lifesearch.SymmetryD2Row, nil
	case "D2|":
		return lifesearch.SymmetryD2Col, nil
	case `D2\`:
		return lifesearch.SymmetryD2Diag, nil
	case "D2/":
		return lifesearch.SymmetryD2Anti, nil
	case "D4+":
		return lifesearch.SymmetryD4Plus, nil
	case "D4X":
		return lifesearch.SymmetryD4X, nil
	case "D8":
		return lifesearch.SymmetryD8, nil
	default:
		return 0, fmt.Errorf("unknown symmetry %q", s)
	}
}

func parseSearchOrder(s string) (lifesearch.SearchOrderKind, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return lifesearch.SearchOrderAuto, nil
	case "row":
		return lifesearch.SearchOrderRow, nil
	case "column":
		return lifesearch.SearchOrderColumn, nil
	case "diagonal":
		return lifesearch.SearchOrderDiagonal, nil
	default:
		return 0, fmt.Errorf("unknown search order %q", s)
	}
}

func parseNewState(s string) (lifesearch.NewState, error) {
	switch strings.ToLower(s) {
	case "dead", "":
		return lifesearch.ChooseDead, nil
	case "alive":
		return lifesearch.ChooseAlive, nil
	case "random":
		return lifesearch.ChooseRandom, nil
	default:
		return 0, fmt.Errorf("unknown new-state %q", s)
	}
}
