package lifesearch

import "errors"

// Sentinel errors identify the taxonomy callers can match against with
// errors.Is; concrete failures are the typed errors below, which carry the
// offending coordinate or field and Unwrap to their sentinel.
var (
	// ErrConfig marks an invalid configuration: zero dimensions, a
	// transform or symmetry that requires a square world applied to a
	// non-square one, or contradictory known cells.
	ErrConfig = errors.New("invalid configuration")

	// ErrOutOfBounds marks a coordinate outside [0,W)x[0,H)x[0,P).
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrLoad marks a snapshot that cannot be replayed: it addresses a
	// cell that does not exist, assigns a state with ordinal >= gen, or
	// contradicts an earlier entry in the same snapshot.
	ErrLoad = errors.New("invalid snapshot")

	// errConflict is internal and no function returns it: the solver
	// reports a conflict as a false result from setCell/consistify, which
	// the search loop turns into a backtrack.
	errConflict = errors.New("conflict")
)

// ConfigError reports why Build rejected a Config.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return "lifesearch: config: " + e.Field + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

func newConfigError(field string, err error) *ConfigError {
	return &ConfigError{Field: field, Err: err}
}

// OutOfBoundsError reports a coordinate rejected by a read-only lookup.
type OutOfBoundsError struct {
	Coord Coord
}

func (e *OutOfBoundsError) Error() string {
	return "lifesearch: " + e.Coord.String() + " is out of bounds"
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// LoadError reports why Snapshot replay failed.
type LoadError struct {
	Coord Coord
	Msg   string
}

func (e *LoadError) Error() string {
	return "lifesearch: load: " + e.Coord.String() + ": " + e.Msg
}

func (e *LoadError) Unwrap() error { return ErrLoad }
