package model

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"stilllife/internal/sat"
)

// Solution is the set of alive cells of a still-life, sorted row-major
type Solution [][2]int

// decodeSolution keeps the positive primary literals of a model and maps
// them back to cells through the indexer. Auxiliary literals are dropped.
func decodeSolution(solution sat.SATSolution, indexer Indexer) Solution {
	alive := make(Solution, 0, len(solution))
	for _, literal := range solution {
		if literal <= 0 {
			continue
		}
		if row, col, ok := indexer.Cell(literal); ok {
			alive = append(alive, [2]int{row, col})
		}
	}

	slices.SortFunc(alive, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})
	return alive
}

// verifyStillLife recomputes every cell's live-neighbor count from the alive
// set and re-checks the survival predicate. It shares nothing with the
// encoder beyond the neighborhood definition, so an encoder defect cannot
// vouch for itself.
func verifyStillLife(n int, alive Solution) bool {
	aliveSet := make(map[[2]int]bool, len(alive))
	for _, cell := range alive {
		if cell[0] < 0 || cell[0] >= n || cell[1] < 0 || cell[1] >= n {
			return false
		}
		aliveSet[cell] = true
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			count := lo.CountBy(neighbors(n, row, col), func(neighbor [2]int) bool {
				return aliveSet[neighbor]
			})
			cellAlive := aliveSet[[2]int{row, col}]

			if count == 3 && !cellAlive { // Birth: the configuration would gain a cell
				return false
			}
			if count != 2 && count != 3 && cellAlive { // Under/overpopulation: the configuration would lose a cell
				return false
			}
		}
	}
	return true
}

// Render draws the grid with '#' for alive cells and '.' for dead ones
func Render(n int, alive Solution) string {
	grid := make([][]byte, n)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(".", n))
	}
	for _, cell := range alive {
		grid[cell[0]][cell[1]] = '#'
	}

	var builder strings.Builder
	for _, row := range grid {
		builder.Write(row)
		builder.WriteByte('\n')
	}
	return builder.String()
}

// Density is the alive-cell fraction of the grid
func Density(n int, alive Solution) float64 {
	if n == 0 {
		return 0
	}
	return float64(len(alive)) / float64(n*n)
}
