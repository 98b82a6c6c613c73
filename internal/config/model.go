package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Environment variables understood by the runner.
const (
	EnvConfig  = "AOC_CONFIG"
	EnvSession = "AOC_SESSION"
	EnvRepeat  = "AOC_REPEAT"
)

// DefaultFile is looked up in the working directory when EnvConfig is unset.
const DefaultFile = "aoc.hcl"

// Settings holds everything the runner needs besides the command line.
type Settings struct {
	// Session is the adventofcode.com session cookie value.
	Session     string
	SessionFile string
	CacheDir    string
	BaseURL     string
	Timeout     time.Duration
	UserAgent   string

	LogLevel  string
	LogFormat string
}

// Defaults returns the settings used when no file overrides them.
func Defaults() *Settings {
	cacheDir := ".aoc-cache"
	if dir, err := os.UserCacheDir(); err == nil {
		cacheDir = filepath.Join(dir, "aocrun")
	}
	return &Settings{
		CacheDir:  cacheDir,
		BaseURL:   "https://adventofcode.com",
		Timeout:   30 * time.Second,
		UserAgent: "github.com/vk/aocrun",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Validate checks the values a file is allowed to set.
func (s *Settings) Validate() error {
	var errs []error
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", s.LogLevel))
	}
	if s.LogFormat != "text" && s.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", s.LogFormat))
	}
	if s.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", s.Timeout))
	}
	if s.BaseURL == "" {
		errs = append(errs, errors.New("base_url cannot be empty"))
	}
	return errors.Join(errs...)
}

// ResolveSession returns the session cookie: the configured value, then
// the environment, then the contents of SessionFile. An empty result with a
// nil error means no session is available.
func (s *Settings) ResolveSession(getenv func(string) string) (string, error) {
	if v := strings.TrimSpace(s.Session); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(getenv(EnvSession)); v != "" {
		return v, nil
	}
	if s.SessionFile == "" {
		return "", nil
	}
	b, err := os.ReadFile(expandHome(s.SessionFile))
	if err != nil {
		return "", fmt.Errorf("failed to read session file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// Path returns the configuration file to load.
func Path(getenv func(string) string) string {
	if p := getenv(EnvConfig); p != "" {
		return p
	}
	return DefaultFile
}

func expandHome(p string) string {
	rest, ok := strings.CutPrefix(p, "~/")
	if !ok {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, rest)
}
