package sat

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

const glucoseName = "glucose"

// glucoseSolver drives glucose through temporary files: the CNF is written
// to an input file and the model is read back from a result file. Both files
// are scoped to a single invocation and removed on every exit path.
type glucoseSolver struct {
	timeout time.Duration
}

func NewGlucoseSolver(timeout time.Duration) SATSolver {
	return &glucoseSolver{timeout: timeout}
}

func (solver *glucoseSolver) Solve(sat SAT) (SATSolution, error) {
	dimacs := sat.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	// Create a temporary file to hold the DIMACS content
	inputTempFile, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(inputTempFile.Name()) // Ensure the file is removed after execution

	outputTempFile, err := os.CreateTemp("", "glucose_output-*.out")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(outputTempFile.Name()) // Ensure the file is removed after execution

	// Write the DIMACS content to the temporary file
	if _, err := inputTempFile.WriteString(dimacs); err != nil {
		return nil, fmt.Errorf("failed to write DIMACS to temporary file: %v", err)
	}
	if err := inputTempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), solver.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, getExecutablePath(glucoseName), "-verb=0", inputTempFile.Name(), outputTempFile.Name())

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, ErrTimeout // Partial output from the killed process is discarded
	}

	output, readErr := os.ReadFile(outputTempFile.Name()) // Read the result file
	if readErr != nil {
		return nil, fmt.Errorf("failed to read output file: %v", readErr)
	}

	// The verdict comes from the output tokens, not the exit code. Glucose
	// prints its status line to stdout and writes the model (or UNSAT) to
	// the result file, so both are scanned.
	switch statusFromOutput(stdOut.String() + "\n" + string(output)) {
	case statusUnsatisfiable:
		return nil, nil
	case statusSatisfiable:
		solution, parseErr := parseSolution(string(output))
		if parseErr != nil {
			return nil, fmt.Errorf("cannot parse glucose model: %v", parseErr)
		}
		return solution, nil
	}

	if err != nil {
		return nil, fmt.Errorf("an error occurred during glucose execution: %v : %v", err.Error(), stderr.String())
	}
	return nil, fmt.Errorf("no SATISFIABLE/UNSATISFIABLE token found in glucose output")
}
