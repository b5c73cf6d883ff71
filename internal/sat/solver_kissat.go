package sat

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const kissatName = "kissat"

type kissatSolver struct {
	timeout time.Duration
}

func NewKissatSolver(timeout time.Duration) SATSolver {
	return &kissatSolver{timeout: timeout}
}

func (solver *kissatSolver) Solve(sat SAT) (SATSolution, error) {
	dimacs := sat.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	ctx, cancel := context.WithTimeout(context.Background(), solver.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, getExecutablePath(kissatName), "-q", "--relaxed")
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into kissat's standard input

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
			return nil, fmt.Errorf("cannot parse kissat model: %v", parseErr)
		}
		return solution, nil
	}

	if err != nil {
		return nil, fmt.Errorf("an error occurred during kissat execution: %v : %v", err.Error(), stderr.String())
	}
	return nil, fmt.Errorf("no SATISFIABLE/UNSATISFIABLE token found in kissat output")
}
