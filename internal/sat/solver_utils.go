package sat

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ConfigPath points to an optional JSON file mapping solver names to executable paths
var ConfigPath = "config.json"

type status int

const (
	statusUnknown status = iota
	statusSatisfiable
	statusUnsatisfiable
)

// statusFromOutput determines the solver verdict by scanning for the
// UNSATISFIABLE/SATISFIABLE tokens. Exit codes are deliberately not
// consulted. Tokens are matched as whole fields since UNSATISFIABLE
// contains SATISFIABLE as a substring.
func statusFromOutput(solverOutput string) status {
	for _, line := range strings.Split(solverOutput, "\n") {
		for _, field := range strings.Fields(line) {
			switch field {
			case "UNSATISFIABLE", "UNSAT":
				return statusUnsatisfiable
			case "SATISFIABLE", "SAT":
				return statusSatisfiable
			}
		}
	}
	return statusUnknown
}

// parseSolution extracts the model from solver output: whitespace-separated
// signed integers terminated by 0, spread over lines optionally prefixed
// with "v ". A token that is not a signed integer is reported as an error,
// never a panic, so one garbled model cannot take the whole search down.
func parseSolution(solverOutput string) (SATSolution, error) {
	tokens := lo.Reduce(
		lo.Filter(strings.Split(solverOutput, "\n"), isModelLine),
		func(values []string, line string, _ int) []string {
			line = strings.TrimSpace(strings.TrimPrefix(line, "v"))
			return append(values, strings.Fields(line)...)
		},
		[]string{},
	)

	// Keep literals up to the terminating 0
	var solution SATSolution = make(SATSolution, 0, len(tokens))
	for _, token := range tokens {
		value, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid literal %q in solver output: %v", token, err)
		}
		if value == 0 {
			break
		}
		solution = append(solution, value)
	}
	return solution, nil
}

func isModelLine(line string, _ int) bool {
	if len(line) == 0 {
		return false
	}
	if line[0] == 'v' {
		return true
	}
	first := rune(line[0])
	return unicode.IsDigit(first) || (first == '-' && len(line) > 1 && unicode.IsDigit(rune(line[1])))
}

// getExecutablePath resolves a solver executable through config.json,
// falling back to the bare name so PATH lookup still applies without a config
func getExecutablePath(solver string) string {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return solver
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		log.Fatalf("cannot read config.json file: %v", err)
	}

	var config map[string]string
	mapstructure.Decode(inputJson, &config)

	path, ok := config[solver]
	if !ok {
		return solver
	}
	return path
}
