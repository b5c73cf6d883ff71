package sat

import (
	"fmt"
	"strings"
)

type SATSolution []int64

type SAT struct {
	Comments  []string
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	for _, comment := range s.Comments {
		fmt.Fprintf(&builder, "c %s\n", comment)
	}
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
