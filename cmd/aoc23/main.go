// Command aoc23 runs Advent of Code 2023 solutions.
//
// Usage:
//
//	aoc23 <day>:<part> [real|example]
//
// This build ships probe solvers that only describe their input, which is
// handy for checking the session cookie, the cache and the example scraper
// before any real solution exists.
package main

import (
	"github.com/vk/aocrun/runner"
)

func main() {
	runner.Main(2023, days)
}
