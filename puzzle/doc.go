// Package puzzle defines the data model shared between a caller's solver
// table and the runner: the day:part coordinate, the input mode, the 25×2
// selector table and the example scraped from a puzzle page.
package puzzle
