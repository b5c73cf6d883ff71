package sat

import (
	"errors"
	"time"
)

// ErrTimeout reports that a solver process exceeded its wall-clock limit.
// A timeout is inconclusive: it must never be interpreted as unsatisfiable.
var ErrTimeout = errors.New("solver timed out")

const DefaultTimeout = 5 * time.Minute

type SATSolver interface {
	Solve(SAT) (SATSolution, error) // Returns a solution of the SAT instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}
