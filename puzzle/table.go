package puzzle

// Solver solves one part of one day. It owns its input and reports the
// answer itself.
type Solver func(input string)

// Table holds one solver per day and part, indexed [day-1][part-1].
// A nil entry is a solver that has not been written yet.
type Table [Days][Parts]Solver

// Lookup returns the solver for c. The coordinate must already be valid.
func (t *Table) Lookup(c Coordinate) Solver {
	return t[c.Day-1][c.Part-1]
}

// Fill returns a table with every entry produced by fn.
func Fill(fn func(c Coordinate) Solver) Table {
	var t Table
	for d := range Days {
		for p := range Parts {
			t[d][p] = fn(Coordinate{Day: d + 1, Part: p + 1})
		}
	}
	return t
}
