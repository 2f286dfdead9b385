package dpll

import "time"

// Status is the final verdict of a solve.
type Status byte

const (
	// StatusSat means a satisfying assignment was found.
	StatusSat Status = iota
	// StatusUnsat means the search space was exhausted without a model.
	StatusUnsat
	// StatusTimeout means a budget ran out before a definitive answer.
	// It is the only status whose verdict is not guaranteed.
	StatusTimeout
)

func (s Status) String() string {
	switch s {
	case StatusSat:
		return "SAT"
	case StatusUnsat:
		return "UNSAT"
	case StatusTimeout:
		return "TIMEOUT"
	default:
		panic("invalid status")
	}
}

// MarshalText serializes the status as its string form, so a Result encodes
// to a flat record with a readable status field.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Stats collects the cost counters of one whole solve, across every restart.
type Stats struct {
	Decisions     uint64        `json:"decisions"`
	Propagations  uint64        `json:"propagations"`
	Conflicts     uint64        `json:"conflicts"`
	Restarts      uint64        `json:"restarts"`
	PeakDepth     int           `json:"peakDepth"`
	DepthExceeded bool          `json:"depthExceeded"`
	FinalP        float64       `json:"finalP"`
	Elapsed       time.Duration `json:"elapsed"`
}

// Result is the outcome of one solve invocation. Model is present iff the
// status is StatusSat and maps every variable 1..NumVars to its value.
type Result struct {
	Status Status       `json:"status"`
	Model  map[int]bool `json:"model,omitempty"`
	Stats  Stats        `json:"stats"`
}
