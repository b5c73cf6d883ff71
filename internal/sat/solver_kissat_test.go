package sat

import (
	"math/rand/v2"
	"os/exec"
	"testing"
)

func TestKissatSatisfiable(t *testing.T) {
	if _, err := exec.LookPath(getExecutablePath(kissatName)); err != nil {
		t.Skipf("kissat is not installed: %v", err)
	}

	solver := NewKissatSolver(DefaultTimeout)
	unsatisfiableCount := 0

	for range 10 {
		literals := uint64(rand.IntN(100) + 1)
		clauses := rand.IntN(200) + 1
		instance := GenerateSATInstance(literals, clauses)

		solution, err := solver.Solve(instance)
		if err != nil {
			t.Errorf("an error occurred while solving a SAT instance: %v", err)
		}

		if solution == nil {
			unsatisfiableCount++
			// Cross-check the UNSAT verdict against the local reference solver
			if reference := LocalSolve(instance); reference != nil {
				t.Error("kissat reported UNSAT on a satisfiable instance")
			}
			continue
		}

		if !AssertSATSolution(instance, solution) {
			t.Error("Wrong answer")
		}
	}

	t.Logf("Unsatisfiable instances: %v", unsatisfiableCount)
}
