// Package hcl implements config.Loader for HCL files.
//
// A runner configuration looks like:
//
//	session_file = "~/.config/aoc/session"
//	cache_dir    = ".aoc-cache"
//	timeout      = "15s"
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
// Expressions may call env("NAME") to read the process environment, along
// with the trimspace and lower string functions.
package hcl
