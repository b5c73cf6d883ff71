package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexerAllocatesInFirstCallOrder(t *testing.T) {
	// Arrange
	builder := NewBuilder()
	indexer := NewIndexer()

	// Act
	first := indexer.Variable(builder, 2, 1)
	second := indexer.Variable(builder, 0, 0)
	repeated := indexer.Variable(builder, 2, 1)

	// Assert
	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
	assert.Equal(t, first, repeated)
	assert.Equal(t, []int64{1, 2}, indexer.All())
}

func TestIndexerRoundTrip(t *testing.T) {
	const n = 5

	builder := NewBuilder()
	indexer := NewIndexer()

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			indexer.Variable(builder, row, col)
		}
	}

	for _, variable := range indexer.All() {
		row, col, ok := indexer.Cell(variable)
		assert.True(t, ok)
		assert.Equal(t, variable, indexer.Variable(builder, row, col))
	}
}

func TestIndexerAuxiliaryHasNoCell(t *testing.T) {
	builder := NewBuilder()
	indexer := NewIndexer()

	indexer.Variable(builder, 0, 0)
	indexer.Variable(builder, 0, 1)
	auxiliary := builder.NewVariable()

	_, _, ok := indexer.Cell(auxiliary)
	assert.False(t, ok)

	_, _, ok = indexer.Cell(0)
	assert.False(t, ok)

	_, _, ok = indexer.Cell(-3)
	assert.False(t, ok)
}
