package aocclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vk/aocrun/internal/config"
	"github.com/vk/aocrun/puzzle"
)

// fakeSite serves puzzle pages and inputs and counts the requests it got.
type fakeSite struct {
	hits    atomic.Int32
	session string
	pages   map[string]string
}

func (f *fakeSite) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.hits.Add(1)
	c, err := r.Cookie("session")
	if err != nil || c.Value != f.session {
		http.Error(w, "Puzzle inputs differ by user.", http.StatusBadRequest)
		return
	}
	if r.Header.Get("User-Agent") != "aocrun-test" {
		http.Error(w, "missing user agent", http.StatusForbidden)
		return
	}
	body, ok := f.pages[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	_, _ = w.Write([]byte(body))
}

func newTestClient(t *testing.T, site *fakeSite, session string) (*Client, string) {
	t.Helper()
	srv := httptest.NewServer(site)
	t.Cleanup(srv.Close)

	cacheDir := t.TempDir()
	client := New(&config.Settings{
		BaseURL:   srv.URL + "/",
		Timeout:   5 * time.Second,
		UserAgent: "aocrun-test",
		CacheDir:  cacheDir,
	}, func(k string) string {
		if k == config.EnvSession {
			return session
		}
		return ""
	})
	t.Cleanup(func() { _ = client.Close() })
	return client, cacheDir
}

func TestInput_FetchesThenServesFromCache(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	site := &fakeSite{session: "s3cret", pages: map[string]string{"/2023/day/3/input": "467..114..\n"}}
	client, cacheDir := newTestClient(t, site, "s3cret")

	// --- Act ---
	first, err := client.Input(context.Background(), 2023, 3)
	require.NoError(t, err)
	second, err := client.Input(context.Background(), 2023, 3)
	require.NoError(t, err)

	// --- Assert ---
	require.Equal(t, "467..114..\n", first)
	require.Equal(t, first, second)
	require.EqualValues(t, 1, site.hits.Load(), "second call should be served from the cache")

	cached, err := os.ReadFile(filepath.Join(cacheDir, "2023", "3.input"))
	require.NoError(t, err)
	require.Equal(t, first, string(cached))
}

func TestInput_Errors(t *testing.T) {
	t.Parallel()

	t.Run("no session", func(t *testing.T) {
		t.Parallel()
		site := &fakeSite{session: "s3cret"}
		client, _ := newTestClient(t, site, "")

		_, err := client.Input(context.Background(), 2023, 3)

		require.ErrorIs(t, err, ErrNoSession)
		require.Zero(t, site.hits.Load(), "no request should be made without a session")
	})

	t.Run("bad status", func(t *testing.T) {
		t.Parallel()
		site := &fakeSite{session: "s3cret"}
		client, _ := newTestClient(t, site, "wrong")

		_, err := client.Input(context.Background(), 2023, 3)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr), "expected *StatusError, got %v", err)
		require.Equal(t, http.StatusBadRequest, statusErr.Code)
		require.NotErrorIs(t, err, puzzle.ErrNoExample)
	})
}

func TestExample_CachesOnlyCompletePages(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	site := &fakeSite{session: "s3cret", pages: map[string]string{
		"/2023/day/1": page(partOneArticle),
		"/2023/day/2": page(partOneArticle, partTwoOwnData),
	}}
	client, cacheDir := newTestClient(t, site, "s3cret")
	ctx := context.Background()

	// --- Act ---
	locked, err := client.Example(ctx, 2023, 1, 2)
	require.NoError(t, err)
	_, err = client.Example(ctx, 2023, 1, 2)
	require.NoError(t, err)

	full, err := client.Example(ctx, 2023, 2, 2)
	require.NoError(t, err)
	_, err = client.Example(ctx, 2023, 2, 1)
	require.NoError(t, err)

	// --- Assert ---
	require.Equal(t, "1abc2\npqr3stu8vwx\n", locked.Input(2), "locked part two falls back to base data")
	require.Equal(t, "two1nine\neightwothree\n", full.Input(2))
	require.EqualValues(t, 3, site.hits.Load(), "only the complete page should be cached")

	_, err = os.Stat(filepath.Join(cacheDir, "2023", "1.html"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(cacheDir, "2023", "2.html"))
	require.NoError(t, err)
}

func TestExample_ParseFailureIsDistinct(t *testing.T) {
	t.Parallel()

	site := &fakeSite{session: "s3cret", pages: map[string]string{"/2023/day/9": "<p>maintenance</p>"}}
	client, _ := newTestClient(t, site, "s3cret")

	_, err := client.Example(context.Background(), 2023, 9, 1)

	require.ErrorIs(t, err, puzzle.ErrNoExample)
}

func TestInput_EmptyCacheDirDisablesCache(t *testing.T) {
	// --- Arrange ---
	workDir := t.TempDir()
	t.Chdir(workDir)
	require.NoError(t, os.MkdirAll("2023", 0o700))
	require.NoError(t, os.WriteFile(filepath.Join("2023", "1.input"), []byte("stray file"), 0o600))

	site := &fakeSite{session: "s3cret", pages: map[string]string{"/2023/day/1/input": "real input\n"}}
	srv := httptest.NewServer(site)
	t.Cleanup(srv.Close)
	client := New(&config.Settings{
		BaseURL:   srv.URL,
		Timeout:   5 * time.Second,
		UserAgent: "aocrun-test",
		Session:   "s3cret",
	}, func(string) string { return "" })
	t.Cleanup(func() { _ = client.Close() })

	// --- Act ---
	text, err := client.Input(context.Background(), 2023, 1)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "real input\n", text)
	require.EqualValues(t, 1, site.hits.Load())

	stray, err := os.ReadFile(filepath.Join(workDir, "2023", "1.input"))
	require.NoError(t, err)
	require.Equal(t, "stray file", string(stray), "nothing should be written without a cache directory")
}
