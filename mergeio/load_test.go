package mergeio

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/openapi-merge/mergeconfig"
	"github.com/erraggy/openapi-merge/oaserrors"
)

const minimalDoc = `
openapi: 3.0.3
info:
  title: Test
  version: "1.0"
paths:
  /ping:
    get:
      responses:
        "200":
          description: ok
`

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalDoc), 0o644))

	doc, err := Load(0, mergeconfig.InputConfig{InputFile: path})
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, 1, doc.Paths.Len())
}

func TestLoadFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(minimalDoc))
	}))
	defer srv.Close()

	doc, err := Load(0, mergeconfig.InputConfig{InputURL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, "Test", doc.Info.Title)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := Load(2, mergeconfig.InputConfig{InputFile: "/nonexistent/api.yaml"})
	var unreachable *oaserrors.InputUnreachableError
	require.ErrorAs(t, err, &unreachable)
	assert.Equal(t, 2, unreachable.InputIndex)
}

func TestLoadUnparseable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o644))

	_, err := Load(0, mergeconfig.InputConfig{InputFile: path})
	var unparseable *oaserrors.InputUnparseableError
	require.ErrorAs(t, err, &unparseable)
}

func TestLoadUnsupportedVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "v2.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openapi: 3.1.0\ninfo:\n  title: x\n  version: \"1\"\npaths: {}\n"), 0o644))

	_, err := Load(0, mergeconfig.InputConfig{InputFile: path})
	var unsupported *oaserrors.UnsupportedVersionError
	require.ErrorAs(t, err, &unsupported)
}
