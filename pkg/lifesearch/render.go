package lifesearch

import (
	"fmt"
	"strings"
)

// RLEGen renders generation t as a Run Length Encoded pattern body
// (without the header line), using "o" for alive, "b" for dead, and a
// capital letter for each dying state (Dying(2) is "A", Dying(3) is "B",
// and so on); "$" ends a row and "!"
// ends the pattern. Unknown cells render as "?", which is not valid RLE
// but is useful for inspecting a search in progress.
func (w *World) RLEGen(t int) string {
	var sb strings.Builder
	for y := 0; y < w.cfg.Height; y++ {
		runChar := byte(0)
		runLen := 0
		flush := func() {
			if runLen == 0 {
				return
			}
			if runLen > 1 {
				fmt.Fprintf(&sb, "%d", runLen)
			}
			sb.WriteByte(runChar)
			runLen = 0
		}
		for x := 0; x < w.cfg.Width; x++ {
			ch := rleChar(w.cells[coordIndex(&w.cfg, x, y, t)].state)
			if ch == runChar {
				runLen++
				continue
			}
			flush()
			runChar = ch
			runLen = 1
		}
		flush()
		if y < w.cfg.Height-1 {
			sb.WriteByte('$')
		}
	}
	sb.WriteByte('!')
	return sb.String()
}

func rleChar(s State) byte {
	switch {
	case s == Unknown:
		return '?'
	case s == Dead:
		return 'b'
	case s == Alive:
		return 'o'
	default:
		return byte('A' + int(s) - 2)
	}
}

// PlaintextGen renders generation t in the older "plaintext" format: "."
// for dead, "O" for alive, "*" for any dying state, one line per row.
func (w *World) PlaintextGen(t int) string {
	var sb strings.Builder
	for y := 0; y < w.cfg.Height; y++ {
		for x := 0; x < w.cfg.Width; x++ {
			switch s := w.cells[coordIndex(&w.cfg, x, y, t)].state; {
			case s == Unknown:
				sb.WriteByte('?')
			case s == Dead:
				sb.WriteByte('.')
			case s == Alive:
				sb.WriteByte('O')
			default:
				sb.WriteByte('*')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
