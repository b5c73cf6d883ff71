package model

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"

	"stilllife/internal/sat"
)

// recordingSolver captures each probe's formula comment before delegating
type recordingSolver struct {
	comments []string
	solve    func(sat.SAT) (sat.SATSolution, error)
}

func (solver *recordingSolver) Solve(instance sat.SAT) (sat.SATSolution, error) {
	solver.comments = append(solver.comments, instance.Comments[0])
	return solver.solve(instance)
}

func TestMaximizeThreeByThree(t *testing.T) {
	g := NewWithT(t)

	maximizer := NewMaximizer(localSolver{})
	best, err := maximizer.Maximize(3)

	// On a 3x3 grid the optimum is 6 alive cells, e.g.
	//   # # .
	//   # . #
	//   . # #
	// Cells outside the grid do not exist, so the border cells only count
	// their in-grid neighbors.
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(best).To(HaveLen(6))
	g.Expect(maximizer.Verify(3, best)).To(BeTrue())
}

func TestThreeByThreeSevenAliveIsUnsatisfiable(t *testing.T) {
	g := NewWithT(t)

	// Tightness of the 3x3 optimum: no still-life with 7 alive cells exists
	builder := NewBuilder()
	indexer := NewIndexer()
	for row := range 3 {
		for col := range 3 {
			indexer.Variable(builder, row, col)
		}
	}
	encodeStillLife(builder, indexer, 3)
	exactlyK(builder, indexer.All(), 7)

	g.Expect(sat.LocalSolve(builder.SAT())).To(BeNil())
}

func TestMaximizeTrivialSizes(t *testing.T) {
	g := NewWithT(t)
	maximizer := NewMaximizer(localSolver{})

	for _, n := range []int{0, 1} {
		best, err := maximizer.Maximize(n)

		g.Expect(err).NotTo(HaveOccurred(), "n=%v", n)
		g.Expect(best).NotTo(BeNil(), "n=%v", n)
		g.Expect(best).To(BeEmpty(), "n=%v", n)
	}
}

func TestMaximizeNegativeSize(t *testing.T) {
	g := NewWithT(t)

	maximizer := NewMaximizer(localSolver{})
	best, err := maximizer.Maximize(-1)

	g.Expect(err).To(HaveOccurred())
	g.Expect(best).To(BeNil())
}

func TestUnsatProbeNarrowsBounds(t *testing.T) {
	g := NewWithT(t)

	solver := &recordingSolver{
		solve: func(sat.SAT) (sat.SATSolution, error) { return nil, nil },
	}
	maximizer := NewMaximizer(solver)

	best, err := maximizer.Maximize(3)

	// Every probe reports UNSAT, so the high bound halves down to below zero
	// and nothing is ever recorded
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(best).To(BeNil())
	g.Expect(solver.comments).To(Equal([]string{
		"3x3 still-life, exactly 4 alive cells",
		"3x3 still-life, exactly 1 alive cells",
		"3x3 still-life, exactly 0 alive cells",
	}))
}

func TestTimeoutDegradesProbe(t *testing.T) {
	g := NewWithT(t)

	solver := &recordingSolver{
		solve: func(sat.SAT) (sat.SATSolution, error) { return nil, sat.ErrTimeout },
	}
	maximizer := NewMaximizer(solver)

	best, err := maximizer.Maximize(3)

	// A timeout is inconclusive: the probe degrades to UNSAT but the search
	// continues instead of aborting
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(best).To(BeNil())
	g.Expect(solver.comments).To(HaveLen(3))
}

func TestVerificationFailureAborts(t *testing.T) {
	g := NewWithT(t)

	// A solver claiming (0,0) and (0,1) are alive in a 2x2 grid: both cells
	// have a single live neighbor, so the decoded solution is no still-life
	solver := &recordingSolver{
		solve: func(sat.SAT) (sat.SATSolution, error) {
			return sat.SATSolution{1, 2, -3, -4}, nil
		},
	}
	maximizer := NewMaximizer(solver)

	best, err := maximizer.Maximize(2)

	g.Expect(errors.Is(err, ErrVerification)).To(BeTrue())
	g.Expect(best).To(BeNil())
	g.Expect(solver.comments).To(HaveLen(1)) // The search aborts at the first probe
}
