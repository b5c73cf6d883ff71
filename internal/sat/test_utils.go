package sat

import (
	"math/rand/v2"

	"github.com/crillab/gophersat/solver"
)

func GenerateSATInstance(literals uint64, clauses int) SAT {
	satInstance := SAT{
		Variables: literals,
		Clauses:   make([][]int64, clauses),
	}

	for i := range clauses {
		satInstance.Clauses[i] = make([]int64, 0, literals)
		for j := range literals {
			if rand.Float32() < 0.5 {
				var sign int64 = 1
				if rand.Float32() < 0.5 {
					sign = -1
				}
				satInstance.Clauses[i] = append(satInstance.Clauses[i], sign*(1+int64(j)))
			}
		}

		if len(satInstance.Clauses[i]) == 0 {
			var sign int64 = 1
			if rand.Float32() < 0.5 {
				sign = -1
			}
			satInstance.Clauses[i] = append(satInstance.Clauses[i], sign*(1+rand.Int64N(int64(literals))))
		}
	}

	return satInstance
}

func AssertSATSolution(satInstance SAT, satSolution SATSolution) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[int64]bool)
	for _, literal := range satSolution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for _, clause := range satInstance.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
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

// LocalSolve solves an instance in-process with gophersat so encoder tests
// never depend on an installed external binary. It returns a complete
// assignment over variables 1..Variables when the instance is satisfiable
// and nil otherwise. Variables the clauses never mention come back positive.
func LocalSolve(instance SAT) SATSolution {
	solution := make(SATSolution, 0, instance.Variables)

	if len(instance.Clauses) == 0 {
		for variable := int64(1); variable <= int64(instance.Variables); variable++ {
			solution = append(solution, variable)
		}
		return solution
	}

	clauses := make([][]int, len(instance.Clauses))
	for i, clause := range instance.Clauses {
		clauses[i] = make([]int, len(clause))
		for j, literal := range clause {
			clauses[i][j] = int(literal)
		}
	}

	gophersat := solver.New(solver.ParseSlice(clauses))
	if gophersat.Solve() != solver.Sat {
		return nil
	}

	// The model only covers variables the clauses mention
	model := gophersat.Model()
	for variable := int64(1); variable <= int64(instance.Variables); variable++ {
		value := true
		if int(variable) <= len(model) {
			value = model[variable-1]
		}
		if value {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}

	return solution
}
