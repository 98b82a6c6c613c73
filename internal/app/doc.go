// Package app contains the core runner logic. It wires the input provider,
// the benchmark loop and the reporter together for one invocation,
// decoupled from process concerns like exit codes.
package app
