package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunm-dev/cipherpost/internal/crypto"
	"github.com/arjunm-dev/cipherpost/internal/repositories"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	repos, err := repositories.New(t.TempDir())
	require.NoError(t, err)
	return SetupRouter(repos, crypto.New(t.TempDir()))
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("health", func(t *testing.T) {
		rec := do(http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("register and fetch key end to end", func(t *testing.T) {
		rec := do(http.MethodPost, "/user/register", `{"username":"alice","publicKey":"PEM"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = do(http.MethodGet, "/user/alice", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "PEM")
	})

	t.Run("send and fetch messages end to end", func(t *testing.T) {
		rec := do(http.MethodPost, "/message/send", `{"to":"bob","from":"alice","encrypted":"X","encryptedKey":"Y"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(http.MethodGet, "/message/bob", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"encrypted":"X"`)
	})

	t.Run("wrong method on known path", func(t *testing.T) {
		rec := do(http.MethodGet, "/message/send", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

		rec = do(http.MethodDelete, "/user/register", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := do(http.MethodGet, "/unknown", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Route not found")
	})
}
