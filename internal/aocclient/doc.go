// Package aocclient retrieves puzzle inputs and puzzle pages from
// adventofcode.com, caching them on disk, and scrapes the example data and
// expected answers out of the puzzle text.
package aocclient
