package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	var got sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient("TOKEN", "42")
	c.baseURL = srv.URL

	require.NoError(t, c.Send("", "retry report"))
	assert.Equal(t, "42", got.ChatID)
	assert.Equal(t, "retry report", got.Text)

	require.NoError(t, c.Send("7", "hello"))
	assert.Equal(t, "7", got.ChatID)
}

func TestClient_SendErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("TOKEN", "42")
	c.baseURL = srv.URL
	assert.Error(t, c.Send("", "x"))

	assert.Error(t, NewClient("TOKEN", "").Send("", "x"))
}
