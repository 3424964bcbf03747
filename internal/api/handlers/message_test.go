package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	repos := newRepos(t)
	h := NewMessageHandler(repos.Messages)

	t.Run("stores message", func(t *testing.T) {
		body := `{"to":"bob","from":"alice","encrypted":"X","encryptedKey":"Y"}`
		req := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Send(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		payload := decodePayload(t, rec)
		assert.True(t, payload.Success)

		data, ok := payload.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "bob", data["to"])
		assert.Equal(t, "alice", data["from"])
		assert.Equal(t, "X", data["encrypted"])
		assert.Equal(t, "Y", data["encryptedKey"])
		assert.NotEmpty(t, data["id"])
	})

	t.Run("missing fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(`{"to":"bob"}`))
		rec := httptest.NewRecorder()

		h.Send(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/send", nil)
		rec := httptest.NewRecorder()

		h.Send(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestGetMessages(t *testing.T) {
	repos := newRepos(t)
	h := NewMessageHandler(repos.Messages)

	for _, body := range []string{
		`{"to":"bob","from":"alice","encrypted":"X","encryptedKey":"Y"}`,
		`{"to":"bob","from":"carol","encrypted":"A","encryptedKey":"B"}`,
		`{"to":"alice","from":"bob","encrypted":"C","encryptedKey":"D"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Send(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	t.Run("messages for recipient", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/bob", nil)
		req.SetPathValue("username", "bob")
		rec := httptest.NewRecorder()

		h.GetMessages(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		payload := decodePayload(t, rec)

		list, ok := payload.Data.([]any)
		require.True(t, ok)
		assert.Len(t, list, 2)
	})

	t.Run("no messages is an empty list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nobody", nil)
		req.SetPathValue("username", "nobody")
		rec := httptest.NewRecorder()

		h.GetMessages(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		payload := decodePayload(t, rec)
		list, ok := payload.Data.([]any)
		require.True(t, ok)
		assert.Empty(t, list)
	})
}
