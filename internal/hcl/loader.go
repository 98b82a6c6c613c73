package hcl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/aocrun/internal/config"
	"github.com/vk/aocrun/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	getenv func(string) string
}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL configuration loader. getenv backs the env()
// function available to expressions.
func NewLoader(getenv func(string) string) *Loader {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &Loader{getenv: getenv}
}

// fileRoot is the schema of a runner configuration file.
type fileRoot struct {
	Session     *string   `hcl:"session,optional"`
	SessionFile *string   `hcl:"session_file,optional"`
	CacheDir    *string   `hcl:"cache_dir,optional"`
	BaseURL     *string   `hcl:"base_url,optional"`
	Timeout     *string   `hcl:"timeout,optional"`
	UserAgent   *string   `hcl:"user_agent,optional"`
	Log         *logBlock `hcl:"log,block"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load parses the file at path and merges it over config.Defaults.
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	settings := config.Defaults()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// It's not an error if the configured file doesn't exist.
			logger.Debug("No configuration file found, using defaults.", "path", path)
			return settings, nil
		}
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, l.evalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	if err := l.merge(settings, &root); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	logger.Debug("Configuration loaded.", "path", path, "cache_dir", settings.CacheDir, "base_url", settings.BaseURL)
	return settings, nil
}

func (l *Loader) merge(s *config.Settings, root *fileRoot) error {
	setString(&s.Session, root.Session)
	setString(&s.SessionFile, root.SessionFile)
	setString(&s.CacheDir, root.CacheDir)
	setString(&s.BaseURL, root.BaseURL)
	setString(&s.UserAgent, root.UserAgent)
	if root.Timeout != nil {
		d, err := time.ParseDuration(*root.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		s.Timeout = d
	}
	if root.Log != nil {
		setString(&s.LogLevel, root.Log.Level)
		setString(&s.LogFormat, root.Log.Format)
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// evalContext exposes env() and a few string helpers to expressions.
func (l *Loader) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: functions(l.getenv),
	}
}
