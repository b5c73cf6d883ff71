package sat

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const cryptominisatName = "cryptominisat"

type cryptominisatSolver struct {
	timeout time.Duration
}

func NewCryptominisatSolver(timeout time.Duration) SATSolver {
	return &cryptominisatSolver{timeout: timeout}
}

func (solver *cryptominisatSolver) Solve(sat SAT) (SATSolution, error) {
	dimacs := sat.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	ctx, cancel := context.WithTimeout(context.Background(), solver.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, getExecutablePath(cryptominisatName), "--verb", "0")
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into cryptominisat's standard input

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, ErrTimeout // Partial output from the killed process is discarded
	}

	// The verdict comes from the output tokens, not the exit code
	switch statusFromOutput(stdOut.String()) {
	case statusUnsatisfiable:
		return nil, nil
	case statusSatisfiable:
		solution, parseErr := parseSolution(stdOut.String())
		if parseErr != nil {
			return nil, fmt.Errorf("cannot parse cryptominisat model: %v", parseErr)
		}
		return solution, nil
	}

	if err != nil {
		return nil, fmt.Errorf("an error occurred during cryptominisat execution: %v : %v", err.Error(), stderr.String())
	}
	return nil, fmt.Errorf("no SATISFIABLE/UNSATISFIABLE token found in cryptominisat output")
}
