package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"stilllife/internal/model"
	"stilllife/internal/sat"
)

var (
	validSolvers = []string{"kissat", "cadical", "cryptominisat", "glucose"}
	solvers      = map[string]func(time.Duration) sat.SATSolver{
		"kissat":        sat.NewKissatSolver,
		"cadical":       sat.NewCadicalSolver,
		"cryptominisat": sat.NewCryptominisatSolver,
		"glucose":       sat.NewGlucoseSolver,
	}
)

type result struct {
	N          int            `json:"n"`
	AliveCells model.Solution `json:"aliveCells"`
	Density    float64        `json:"density"`
}

func main() {
	// Define arguments
	nPtr := flag.Int("n", 0, "Grid size (the still-life is searched on an n x n grid)")
	filePathPtr := flag.String("file", "", `Path to a JSON instance descriptor of the form {"n": <size>}; mutually exclusive with -n`)
	solverPtr := flag.String("solver", "kissat", "SAT-Solver to use. Allowed values are: \"kissat\", \"cadical\", \"cryptominisat\", \"glucose\", where \"kissat\" is the default")
	timeoutPtr := flag.Duration("timeout", sat.DefaultTimeout, "Wall-clock limit per solver invocation; a timed-out probe is treated as unsatisfiable")
	configPathPtr := flag.String("config", "config.json", "Path to an optional JSON file mapping solver names to executable paths")
	outFilePathPtr := flag.String("out", "", "Path to a file where the result will be written as JSON; if empty, only the rendered grid is printed")
	flag.Parse()

	n := *nPtr
	solverStr := strings.ToLower(*solverPtr)
	sat.ConfigPath = *configPathPtr

	// Validate arguments
	if *filePathPtr != "" {
		if n != 0 {
			log.Fatal("specify either -n or -file, not both")
		}
		instance, err := model.InstanceFromJson(*filePathPtr)
		if err != nil {
			log.Fatalf("cannot parse instance file: %v", err)
		}
		n = instance.N
	}
	if n <= 0 {
		log.Fatalf("grid size must be a positive integer: %v", n)
	} else if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if *timeoutPtr <= 0 {
		log.Fatalf("timeout must be positive: %v", *timeoutPtr)
	}

	// Initialize engines
	solver := solvers[solverStr](*timeoutPtr)
	maximizer := model.NewMaximizer(solver)

	// Search for the densest still-life
	start := time.Now()
	best, err := maximizer.Maximize(n)
	if err != nil {
		log.Fatalf("an error occurred during the search: %v", err)
	} else if best == nil {
		// Unreachable under a correct encoder: the all-dead grid is feasible
		fmt.Println("No still-life found")
		os.Exit(20)
	}

	density := model.Density(n, best)

	fmt.Printf("Optimal still-life with %v alive cells found in %v:\n\n", len(best), time.Since(start).Round(time.Millisecond))
	fmt.Println(model.Render(n, best))
	fmt.Printf("Alive cells: %v\n", best)
	fmt.Printf("Density: %.2f%%\n", 100*density)

	// Marshal the result into json when an output file is requested
	if *outFilePathPtr != "" {
		resultJson, err := json.Marshal(result{N: n, AliveCells: best, Density: density})
		if err != nil {
			log.Fatalf("an error occurred while building output json: %v", err)
		}
		if err := os.WriteFile(*outFilePathPtr, resultJson, 0666); err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}
}
