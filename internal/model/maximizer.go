package model

import (
	"errors"
	"fmt"
	"log"

	"stilllife/internal/sat"
)

// ErrVerification reports a decoded solution that fails the independent
// still-life recheck. It signals an encoder defect, so the whole search must
// abort instead of narrowing bounds over garbage.
var ErrVerification = errors.New("decoded solution is not a still-life")

type Maximizer interface {
	// Returns the densest still-life of an n x n grid. A nil solution means
	// no feasible target was found, which is unreachable under a correct
	// encoder since the all-dead grid is a valid still-life.
	Maximize(n int) (Solution, error)

	// Re-checks a solution against the still-life rule
	Verify(n int, alive Solution) bool
}

func NewMaximizer(solver sat.SATSolver) Maximizer {
	return &satMaximizer{solver: solver}
}

type satMaximizer struct {
	solver sat.SATSolver
}

// Maximize binary-searches the alive-cell count over [0, n*n]. Probes are
// strictly sequential: each probe's outcome decides the next bounds, and the
// (low, high, best) triple is the only state carried across probes.
func (maximizer *satMaximizer) Maximize(n int) (Solution, error) {
	if n < 0 {
		return nil, fmt.Errorf("grid size must be non-negative: %v", n)
	}

	low, high := 0, n*n
	var best Solution
	found := false
	iterations := 0

	for low <= high {
		mid := (low + high) / 2
		iterations++
		log.Printf("iteration %v: probing %v alive cells (range [%v, %v])", iterations, mid, low, high)

		alive, satisfiable, err := maximizer.probe(n, mid)
		if errors.Is(err, ErrVerification) {
			return nil, err
		} else if err != nil {
			// Timeouts, invocation failures and parse failures degrade the
			// probe to unsatisfiable; the search itself carries on
			log.Printf("probe with %v alive cells treated as UNSAT: %v", mid, err)
			high = mid - 1
			continue
		}

		if satisfiable && len(alive) == mid {
			best = alive
			found = true
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	log.Printf("binary search finished after %v iterations", iterations)

	if !found {
		// The all-dead grid is always a still-life, so landing here means
		// every probe failed, the 0-cell one included
		return nil, nil
	}
	return best, nil
}

func (maximizer *satMaximizer) Verify(n int, alive Solution) bool {
	return verifyStillLife(n, alive)
}

// probe builds and solves a fresh formula requiring a still-life with
// exactly target alive cells
func (maximizer *satMaximizer) probe(n, target int) (Solution, bool, error) {
	builder := NewBuilder()
	indexer := NewIndexer()

	builder.AddComment("%vx%v still-life, exactly %v alive cells", n, n, target)

	// Register every cell up front: the cardinality constraint reads the
	// full primary-variable set
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			indexer.Variable(builder, row, col)
		}
	}

	encodeStillLife(builder, indexer, n)
	exactlyK(builder, indexer.All(), target)

	solution, err := maximizer.solver.Solve(builder.SAT())
	if err != nil {
		return nil, false, err
	} else if solution == nil { // Unsatisfiable
		return nil, false, nil
	}

	alive := decodeSolution(solution, indexer)
	if !verifyStillLife(n, alive) {
		return nil, false, fmt.Errorf("%w: probe for %v alive cells decoded %v", ErrVerification, target, alive)
	}

	return alive, true, nil
}
