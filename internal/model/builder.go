package model

import (
	"fmt"

	"stilllife/internal/sat"
)

// Builder accumulates the variables and clauses of one probe's formula. Each
// probe owns a fresh Builder, so auxiliary-variable counters never leak from
// one formula into another.
type Builder struct {
	variables uint64
	clauses   [][]int64
	comments  []string
}

func NewBuilder() *Builder {
	return &Builder{}
}

// NewVariable allocates the next unused variable id, starting at 1
func (builder *Builder) NewVariable() int64 {
	builder.variables++
	return int64(builder.variables)
}

func (builder *Builder) AddClause(literals ...int64) {
	builder.clauses = append(builder.clauses, literals)
}

func (builder *Builder) AddComment(format string, args ...any) {
	builder.comments = append(builder.comments, fmt.Sprintf(format, args...))
}

// AddContradiction forces the formula unsatisfiable through a fresh variable
// asserted in both polarities. An empty clause line would express the same
// thing but is not accepted by every DIMACS consumer.
func (builder *Builder) AddContradiction() {
	variable := builder.NewVariable()
	builder.AddClause(variable)
	builder.AddClause(-variable)
}

func (builder *Builder) Variables() uint64 {
	return builder.variables
}

func (builder *Builder) Clauses() int {
	return len(builder.clauses)
}

func (builder *Builder) SAT() sat.SAT {
	return sat.SAT{
		Comments:  builder.comments,
		Variables: builder.variables,
		Clauses:   builder.clauses,
	}
}
