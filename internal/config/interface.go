package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration at path and returns it merged over
	// Defaults. A path that does not exist yields the defaults unchanged.
	Load(ctx context.Context, path string) (*Settings, error)
}
