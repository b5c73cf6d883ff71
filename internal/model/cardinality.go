package model

// Cardinality constraints over a literal list are encoded with a sequential
// counter ("ladder") network: auxiliary variables s[i][j] mean "at least j of
// the first i literals are true". The network needs O(m*k) variables and
// clauses, against the exponential blowup of enumerating subsets.
//
// Out-of-range bounds (k < 0 or k > m) are not reported as errors; the
// formula is forced unsatisfiable instead, so the solver answers UNSAT and
// the driver narrows its bounds the same way it would for any infeasible
// target.

// exactlyK constrains exactly k of the literals to be true
func exactlyK(builder *Builder, literals []int64, k int) {
	m := len(literals)

	if k < 0 || k > m {
		builder.AddContradiction()
		return
	}
	if k == 0 {
		for _, literal := range literals {
			builder.AddClause(-literal)
		}
		return
	}
	if k == m {
		for _, literal := range literals {
			builder.AddClause(literal)
		}
		return
	}

	s := buildPrefixCounter(builder, literals, k+2)

	builder.AddClause(s[m][k])    // At least k literals are true
	builder.AddClause(-s[m][k+1]) // NOT at least k+1 literals are true
}

// atMostK constrains at most k of the literals to be true
func atMostK(builder *Builder, literals []int64, k int) {
	m := len(literals)

	if k < 0 || k > m {
		builder.AddContradiction()
		return
	}

	s := buildPrefixCounter(builder, literals, k+2)

	builder.AddClause(-s[m][k+1]) // NOT at least k+1 literals are true
}

// atLeastK constrains at least k of the literals to be true
func atLeastK(builder *Builder, literals []int64, k int) {
	m := len(literals)

	if k <= 0 {
		return // Trivially satisfied
	}
	if k > m {
		builder.AddContradiction()
		return
	}
	if k == 1 {
		builder.AddClause(literals...) // Plain disjunction
		return
	}

	s := buildPrefixCounter(builder, literals, k+1)

	builder.AddClause(s[m][k]) // At least k literals are true
}

// buildPrefixCounter emits the ladder network over the given literals and
// returns the prefix-count table s, with s[i][j] for i = 0..m and
// j = 0..width-1. Every s[i][j] is freshly minted: the table is owned by a
// single constraint and never aliased across calls, since the inductive
// equivalence only holds when each variable denotes one fixed prefix-count
// predicate.
func buildPrefixCounter(builder *Builder, literals []int64, width int) [][]int64 {
	m := len(literals)

	s := make([][]int64, m+1)
	for i := range s {
		s[i] = make([]int64, width)
	}

	// Base row: with 0 literals considered, "at least 0" holds and
	// "at least j > 0" does not
	for j := 0; j < width; j++ {
		s[0][j] = builder.NewVariable()
	}
	builder.AddClause(s[0][0])
	for j := 1; j < width; j++ {
		builder.AddClause(-s[0][j])
	}

	for i := 1; i <= m; i++ {
		for j := 0; j < width; j++ {
			s[i][j] = builder.NewVariable()

			if j == 0 {
				// "At least 0 of the first i literals" is always true
				builder.AddClause(s[i][j])
				continue
			}

			x := literals[i-1]

			// s[i][j] <-> s[i-1][j] OR (x AND s[i-1][j-1])

			// Direction 1: s[i][j] -> s[i-1][j] OR (x AND s[i-1][j-1])
			builder.AddClause(-s[i][j], s[i-1][j], x)
			builder.AddClause(-s[i][j], s[i-1][j], s[i-1][j-1])

			// Direction 2: s[i-1][j] -> s[i][j]
			builder.AddClause(-s[i-1][j], s[i][j])
			// x AND s[i-1][j-1] -> s[i][j]
			builder.AddClause(-x, -s[i-1][j-1], s[i][j])
		}
	}

	return s
}
