package sat

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const cadicalName = "cadical"

type cadicalSolver struct {
	timeout time.Duration
}

func NewCadicalSolver(timeout time.Duration) SATSolver {
	return &cadicalSolver{timeout: timeout}
}

func (solver *cadicalSolver) Solve(sat SAT) (SATSolution, error) {
	dimacs := sat.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	ctx, cancel := context.WithTimeout(context.Background(), solver.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, getExecutablePath(cadicalName), "-q")
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into cadical's standard input

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
			return nil, fmt.Errorf("cannot parse cadical model: %v", parseErr)
		}
		return solution, nil
	}

	if err != nil {
		return nil, fmt.Errorf("an error occurred during cadical execution: %v : %v", err.Error(), stderr.String())
	}
	return nil, fmt.Errorf("no SATISFIABLE/UNSATISFIABLE token found in cadical output")
}
