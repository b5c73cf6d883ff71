package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stilllife/internal/sat"
)

func TestBuilderAllocatesSequentialVariables(t *testing.T) {
	builder := NewBuilder()

	assert.Equal(t, int64(1), builder.NewVariable())
	assert.Equal(t, int64(2), builder.NewVariable())
	assert.Equal(t, uint64(2), builder.Variables())
}

func TestBuilderContradiction(t *testing.T) {
	// A contradiction is a fresh variable asserted in both polarities, never
	// an empty clause line
	builder := NewBuilder()
	builder.NewVariable()
	builder.AddContradiction()

	instance := builder.SAT()
	assert.Equal(t, uint64(2), instance.Variables)
	assert.Equal(t, [][]int64{{2}, {-2}}, instance.Clauses)
	assert.Nil(t, sat.LocalSolve(instance))
}

func TestBuilderSATSnapshot(t *testing.T) {
	builder := NewBuilder()
	x := builder.NewVariable()
	y := builder.NewVariable()
	builder.AddClause(x, -y)
	builder.AddComment("probe %v", 7)

	instance := builder.SAT()
	assert.Equal(t, uint64(2), instance.Variables)
	assert.Equal(t, [][]int64{{1, -2}}, instance.Clauses)
	assert.Equal(t, []string{"probe 7"}, instance.Comments)
}
