package model

// Indexer is a bijection between grid cells and the formula's primary
// variables. Auxiliary variables minted by the cardinality encoding have no
// cell mapping, so the inverse lookup is defined for primary variables only.
type Indexer interface {
	// Returns the variable of a cell, allocating the next sequential id on first sight
	Variable(builder *Builder, row, col int) int64
	// Returns the cell of a primary variable; ok is false for auxiliary variables
	Cell(variable int64) (row, col int, ok bool)
	// Returns every primary variable in allocation order
	All() []int64
}

func NewIndexer() Indexer {
	return &gridIndexer{
		ids: make(map[[2]int]int64),
	}
}

// gridIndexer keeps an arena of cells indexed by (variable id - 1) plus a
// reverse map for the get-or-create path.
type gridIndexer struct {
	cells [][2]int
	ids   map[[2]int]int64
}

func (indexer *gridIndexer) Variable(builder *Builder, row, col int) int64 {
	key := [2]int{row, col}
	if id, ok := indexer.ids[key]; ok {
		return id
	}

	id := builder.NewVariable()
	indexer.ids[key] = id
	indexer.cells = append(indexer.cells, key)
	return id
}

func (indexer *gridIndexer) Cell(variable int64) (row, col int, ok bool) {
	if variable < 1 || variable > int64(len(indexer.cells)) {
		return 0, 0, false
	}
	cell := indexer.cells[variable-1]
	if indexer.ids[cell] != variable { // Interleaved auxiliary allocation broke the arena contract
		return 0, 0, false
	}
	return cell[0], cell[1], true
}

func (indexer *gridIndexer) All() []int64 {
	variables := make([]int64, len(indexer.cells))
	for i, cell := range indexer.cells {
		variables[i] = indexer.ids[cell]
	}
	return variables
}
