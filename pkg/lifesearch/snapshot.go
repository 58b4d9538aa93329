package lifesearch

import "encoding/json"

// Snapshot is a serializable checkpoint of a World's search progress,
// sufficient to resume a paused search from exactly where it left off.
// The format is JSON rather than a bespoke binary layout: persistence is
// an external collaborator's concern (a CLI's "resume" subcommand), not
// part of the solving algorithm itself, and JSON keeps that collaborator
// free to inspect or hand-edit a paused search.
type Snapshot struct {
	Config     Config             `json:"config"`
	Trail      []SnapshotEntry    `json:"trail"`
	CheckIndex int                `json:"check_index"`
	Conflicts  uint64             `json:"conflicts"`
	Status     Status             `json:"status"`
}

// SnapshotEntry is one trail entry in portable form: a coordinate rather
// than a cellID, since cellID is only stable within one World's own
// cells slice.
type SnapshotEntry struct {
	Coord       Coord  `json:"coord"`
	State       State  `json:"state"`
	ReasonKind  int    `json:"reason_kind"`
	ReasonN     int    `json:"reason_n,omitempty"`
}

// Save captures the current trail as a replayable Snapshot.
func (w *World) Save() Snapshot {
	snap := Snapshot{
		Config:     w.cfg,
		CheckIndex: w.checkIndex,
		Conflicts:  w.conflicts,
		Status:     w.status,
	}
	for _, e := range w.trail {
		c := w.cells[e.cell]
		snap.Trail = append(snap.Trail, SnapshotEntry{
			Coord:      c.coord,
			State:      c.state,
			ReasonKind: int(e.reason.kind),
			ReasonN:    e.reason.n,
		})
	}
	return snap
}

// Marshal encodes the snapshot as JSON.
func (s Snapshot) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

// LoadSnapshot rebuilds a World from JSON bytes produced by Marshal,
// replaying the recorded trail in order. A snapshot that replays a state
// ordinal the world's Config doesn't support, or addresses a cell
// outside it, fails with LoadError.
func LoadSnapshot(data []byte) (*World, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return Restore(snap)
}

// Restore rebuilds a World from an already-decoded Snapshot.
func Restore(snap Snapshot) (*World, error) {
	w, err := Build(snap.Config)
	if err != nil {
		return nil, err
	}
	for _, e := range snap.Trail {
		if e.Coord.X < 0 || e.Coord.X >= w.cfg.Width ||
			e.Coord.Y < 0 || e.Coord.Y >= w.cfg.Height ||
			e.Coord.T < 0 || e.Coord.T >= w.cfg.Period {
			return nil, &LoadError{Coord: e.Coord, Msg: "out of bounds"}
		}
		if int(e.State) >= w.engine.genCount() {
			return nil, &LoadError{Coord: e.Coord, Msg: "state ordinal exceeds gen"}
		}
		id := cellID(coordIndex(&w.cfg, e.Coord.X, e.Coord.Y, e.Coord.T))
		if w.cells[id].state != Unknown {
			if w.cells[id].state != e.State {
				return nil, &LoadError{Coord: e.Coord, Msg: "contradicts an earlier entry"}
			}
			continue
		}
		r := reason{kind: reasonKind(e.ReasonKind), n: e.ReasonN}
		if !w.setCell(id, e.State, r) {
			return nil, &LoadError{Coord: e.Coord, Msg: "conflicts with an earlier entry"}
		}
		if !w.proceed() {
			return nil, &LoadError{Coord: e.Coord, Msg: "replays to a conflict"}
		}
	}
	w.checkIndex = snap.CheckIndex
	w.conflicts = snap.Conflicts
	w.status = snap.Status
	return w, nil
}
