package techpage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/3-lines-studio/techpage/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNewDefaultRoutes(t *testing.T) {
	app, err := New(nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"/technologies", "/technologies/plain"}, app.Routes())
}

func TestNewNormalizesRoutes(t *testing.T) {
	app, err := New([]Route{Page("/about/stack/")})
	require.NoError(t, err)

	assert.Equal(t, []string{"/about/stack"}, app.Routes())
}

func TestNewRejectsInvalidRoute(t *testing.T) {
	_, err := New([]Route{Page("technologies")})
	assert.ErrorIs(t, err, core.ErrInvalidRoute)

	_, err = New([]Route{Page("/technologies?x=1")})
	assert.ErrorIs(t, err, core.ErrInvalidRoute)
}

func TestNewRejectsWhitespaceRoute(t *testing.T) {
	for _, pattern := range []string{"/about us", "/tech\tx"} {
		app, err := New([]Route{Page(pattern)})
		assert.ErrorIs(t, err, core.ErrInvalidRoute, "pattern %q", pattern)
		assert.Nil(t, app)
	}
}

func TestNewRejectsDuplicateRoute(t *testing.T) {
	_, err := New([]Route{Page("/technologies"), Page("/technologies/")})
	assert.True(t, errors.Is(err, ErrDuplicateRoute), "expected ErrDuplicateRoute, got %v", err)
}

func TestWrapNilRouterPanics(t *testing.T) {
	app, err := New(nil)
	require.NoError(t, err)

	assert.Panics(t, func() { app.Wrap(nil) })
}

func TestHandlerServesBothVariants(t *testing.T) {
	defer goleak.VerifyNone(t)

	app, err := New(nil)
	require.NoError(t, err)

	srv := httptest.NewServer(app.Handler())
	defer srv.Close()

	linked := get(t, srv, "/technologies")
	assert.Contains(t, linked, `<a href="https://www.python.org/downloads/release/python-390/" class="textLink">Python 3.9</a>`)

	plain := get(t, srv, "/technologies/plain")
	assert.Contains(t, plain, `<li class="textItem">Python 3.9</li>`)
	assert.NotContains(t, plain, "<a ")

	resp, err := srv.Client().Get(srv.URL + "/missing")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPageOptions(t *testing.T) {
	catalog, err := core.NewCatalog(
		Technology{Name: "Go", Version: "1.25", Link: "https://go.dev/"},
		Technology{Name: "SQLite"},
	)
	require.NoError(t, err)

	app, err := New([]Route{
		Page("/stack",
			WithCatalog(catalog),
			WithMeta(PageMeta{Title: "Stack", Description: "Our stack", OGTitle: "Stack"}),
			WithHeading("Stack", "Used here:"),
		),
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stack", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Stack</title>")
	assert.Contains(t, body, `<h2 class="subtitle">Used here:</h2>`)
	assert.Contains(t, body, `<li class="textItem">SQLite</li>`)
	assert.Equal(t, 2, strings.Count(body, "<li "))
}

func TestWrapCustomRouter(t *testing.T) {
	app, err := New(nil)
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := app.Wrap(mux)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/technologies", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExportMatchesServedPages(t *testing.T) {
	app, err := New(nil)
	require.NoError(t, err)

	dir := t.TempDir()
	files, err := app.Export(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, files, 2)

	handler := app.Handler()
	for i, route := range app.Routes() {
		assert.Equal(t, core.ExportFilePath(dir, route), files[i].Path)
		assert.Equal(t, FileCreated, files[i].Status)

		data, err := os.ReadFile(files[i].Path)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, route, nil))
		assert.Equal(t, rec.Body.String(), string(data))
	}

	_, err = os.Stat(filepath.Join(dir, "technologies", "plain", "index.html"))
	assert.NoError(t, err)
}

func get(t *testing.T, srv *httptest.Server, path string) string {
	t.Helper()

	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode, "GET %s", path)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
