package model

import "math/bits"

// The still-life rule per cell: exactly 3 live neighbors force the cell
// alive, exactly 2 leave it unconstrained, any other count forces it dead.
// Border cells simply have fewer neighbors; absent neighbors are omitted
// from the pattern, never modeled as forced-dead phantom cells.

// encodeStillLife emits the transition constraints for every cell of the
// n x n grid. All cells must already be registered with the indexer.
func encodeStillLife(builder *Builder, indexer Indexer, n int) {
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			cellVar := indexer.Variable(builder, row, col)

			neighborVars := make([]int64, 0, 8)
			for _, neighbor := range neighbors(n, row, col) {
				neighborVars = append(neighborVars, indexer.Variable(builder, neighbor[0], neighbor[1]))
			}

			encodeCellConstraint(builder, cellVar, neighborVars)
		}
	}
}

// encodeCellConstraint enumerates all 2^d truth patterns of the cell's d
// present neighbors. A pattern with popcount 3 yields a clause that is false
// only when the neighbors match the pattern and the cell is dead; popcount 2
// yields nothing; every other popcount yields the analogous clause forcing
// the cell dead.
func encodeCellConstraint(builder *Builder, cellVar int64, neighborVars []int64) {
	d := len(neighborVars)

	for pattern := 0; pattern < 1<<d; pattern++ {
		count := bits.OnesCount(uint(pattern))
		if count == 2 {
			continue
		}

		clause := make([]int64, 0, d+1)
		for i, neighborVar := range neighborVars {
			if pattern>>i&1 == 1 {
				clause = append(clause, -neighborVar)
			} else {
				clause = append(clause, neighborVar)
			}
		}

		if count == 3 {
			clause = append(clause, cellVar)
		} else {
			clause = append(clause, -cellVar)
		}
		builder.AddClause(clause...)
	}
}

// neighbors returns the in-bounds Moore neighborhood of a cell
func neighbors(n, row, col int) [][2]int {
	result := make([][2]int, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := row+dr, col+dc
			if nr >= 0 && nr < n && nc >= 0 && nc < n {
				result = append(result, [2]int{nr, nc})
			}
		}
	}
	return result
}
