// Package config defines the format-agnostic runner settings together with
// the Loader interface that fills them from a configuration file.
//
// Settings is the single source of truth for the fetch client, the logger
// and the input cache. Concrete loaders, such as the HCL one, live in
// separate packages.
package config
