package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunm-dev/cipherpost/internal/crypto"
)

func newPayloadHandler(t *testing.T) *PayloadHandler {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, crypto.GenerateKeyPair(dir, 2048))
	return NewPayloadHandler(crypto.New(dir))
}

func TestEncryptDecryptEndpoints(t *testing.T) {
	h := newPayloadHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/encrypt", strings.NewReader(`{"message":"secret"}`))
	rec := httptest.NewRecorder()
	h.Encrypt(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodePayload(t, rec)
	data, ok := payload.Data.(map[string]any)
	require.True(t, ok)

	encrypted, ok := data["encryptedMessage"].(string)
	require.True(t, ok)
	require.NotEmpty(t, encrypted)

	body := fmt.Sprintf(`{"encryptedMessage":%q}`, encrypted)
	req = httptest.NewRequest(http.MethodPost, "/decrypt", strings.NewReader(body))
	rec = httptest.NewRecorder()
	h.Decrypt(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	payload = decodePayload(t, rec)
	data, ok = payload.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "secret", data["decryptedMessage"])
}

func TestEncrypt_BadInput(t *testing.T) {
	h := newPayloadHandler(t)

	t.Run("empty message", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/encrypt", strings.NewReader(`{"message":""}`))
		rec := httptest.NewRecorder()

		h.Encrypt(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/encrypt", nil)
		rec := httptest.NewRecorder()

		h.Encrypt(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestEncrypt_MissingKeys(t *testing.T) {
	h := NewPayloadHandler(crypto.New(t.TempDir()))

	req := httptest.NewRequest(http.MethodPost, "/encrypt", strings.NewReader(`{"message":"secret"}`))
	rec := httptest.NewRecorder()

	h.Encrypt(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
