package model

import (
	"stilllife/internal/sat"
)

// localSolver satisfies sat.SATSolver with the in-process reference solver,
// so encoder tests run without any external binary installed
type localSolver struct{}

func (solver localSolver) Solve(instance sat.SAT) (sat.SATSolution, error) {
	return sat.LocalSolve(instance), nil
}

// mintLiterals allocates m fresh primary variables on the builder
func mintLiterals(builder *Builder, m int) []int64 {
	literals := make([]int64, m)
	for i := range literals {
		literals[i] = builder.NewVariable()
	}
	return literals
}

// pin adds unit clauses fixing each literal to the corresponding pattern bit
func pin(builder *Builder, literals []int64, pattern int) {
	for i, literal := range literals {
		if pattern>>i&1 == 1 {
			builder.AddClause(literal)
		} else {
			builder.AddClause(-literal)
		}
	}
}

func countPositives(solution sat.SATSolution, literals []int64) int {
	positives := make(map[int64]bool, len(solution))
	for _, literal := range solution {
		if literal > 0 {
			positives[literal] = true
		}
	}

	count := 0
	for _, literal := range literals {
		if positives[literal] {
			count++
		}
	}
	return count
}

// formulaSatisfied evaluates clauses under a full assignment of their variables
func formulaSatisfied(clauses [][]int64, assignment func(variable int64) bool) bool {
	for _, clause := range clauses {
		satisfied := false
		for _, literal := range clause {
			variable := literal
			if variable < 0 {
				variable = -variable
			}
			if assignment(variable) == (literal > 0) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
