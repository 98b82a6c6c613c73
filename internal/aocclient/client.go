package aocclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vk/aocrun/internal/config"
	"github.com/vk/aocrun/internal/ctxlog"
	"github.com/vk/aocrun/puzzle"
)

// ErrNoSession is returned when a request needs the session cookie and
// none is configured.
var ErrNoSession = fmt.Errorf("no session cookie configured (set %s or session_file)", config.EnvSession)

// StatusError reports a non-200 response.
type StatusError struct {
	URL    string
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bad status fetching %s: %s", e.URL, e.Status)
}

// Client talks to adventofcode.com. The zero value is not usable; use New.
type Client struct {
	http      *http.Client
	baseURL   string
	session   func() (string, error)
	userAgent string
	cacheDir  string
}

// New creates a client from the runner settings. The session cookie is
// resolved through getenv on the first request that needs it, so cached
// data can be served without one.
func New(s *config.Settings, getenv func(string) string) *Client {
	return &Client{
		http:    NewHTTPClient(s.Timeout),
		baseURL: strings.TrimRight(s.BaseURL, "/"),
		session: sync.OnceValues(func() (string, error) {
			return s.ResolveSession(getenv)
		}),
		userAgent: s.UserAgent,
		cacheDir:  s.CacheDir,
	}
}

// NewHTTPClient returns the *http.Client used for all requests.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        4,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// Input returns the personal puzzle input for the given day, from the cache
// when possible.
func (c *Client) Input(ctx context.Context, year, day int) (string, error) {
	logger := ctxlog.FromContext(ctx).With("year", year, "day", day)
	path := c.cachePath(year, day, "input")

	if b, ok := c.load(path); ok {
		logger.Debug("Cache hit for real input.", "path", path)
		return string(b), nil
	}

	logger.Debug("Fetching real input.")
	body, err := c.get(ctx, fmt.Sprintf("%s/%d/day/%d/input", c.baseURL, year, day))
	if err != nil {
		return "", err
	}
	c.store(ctx, path, body)
	return string(body), nil
}

// Example scrapes the example for the given day from the puzzle page. The
// page is only cached once it contains both parts.
func (c *Client) Example(ctx context.Context, year, day, part int) (*puzzle.ExampleResult, error) {
	logger := ctxlog.FromContext(ctx).With("year", year, "day", day, "part", part)
	path := c.cachePath(year, day, "html")

	if b, ok := c.load(path); ok {
		logger.Debug("Cache hit for puzzle page.", "path", path)
		ex, _, err := parsePage(bytes.NewReader(b))
		return ex, err
	}

	logger.Debug("Fetching puzzle page.")
	body, err := c.get(ctx, fmt.Sprintf("%s/%d/day/%d", c.baseURL, year, day))
	if err != nil {
		return nil, err
	}

	ex, parts, err := parsePage(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if parts >= 2 {
		c.store(ctx, path, body)
	} else if part == 2 {
		logger.Warn("Part two is not unlocked yet, using the part one example.")
	}
	return ex, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	session, err := c.session()
	if err != nil {
		return nil, err
	}
	if session == "" {
		return nil, ErrNoSession
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, Status: resp.Status, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

func (c *Client) cachePath(year, day int, ext string) string {
	return filepath.Join(c.cacheDir, fmt.Sprint(year), fmt.Sprintf("%d.%s", day, ext))
}

// load reads a cache entry. An empty cache directory disables the cache
// rather than resolving entries against the working directory.
func (c *Client) load(path string) ([]byte, bool) {
	if c.cacheDir == "" {
		return nil, false
	}
	b, err := os.ReadFile(path)
	return b, err == nil
}

// store writes a cache entry. Failures only cost a refetch next time.
func (c *Client) store(ctx context.Context, path string, body []byte) {
	logger := ctxlog.FromContext(ctx)
	if c.cacheDir == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		logger.Warn("Failed to create cache directory.", "path", path, "error", err)
		return
	}
	if err := os.WriteFile(path, body, 0o600); err != nil {
		logger.Warn("Failed to write cache entry.", "path", path, "error", err)
		return
	}
	logger.Debug("Cached response.", "path", path, "bytes", len(body))
}
