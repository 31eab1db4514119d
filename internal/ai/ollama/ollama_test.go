package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kiliankoe/storybranch/internal/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteNonStreaming(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"llama3","created_at":"2024-01-01T00:00:00Z","message":{"role":"assistant","content":" Rain hammers the roof. "},"done":true}` + "\n"))
	}))
	defer srv.Close()

	c, err := New(srv.URL+"/v1/", time.Second)
	require.NoError(t, err)
	assert.Equal(t, srv.URL, c.Host)

	out, err := c.Complete(context.Background(), ai.PromptPair("sys", "user"), ai.Options{
		Model:       "llama3",
		Temperature: ai.Float(0.5),
		MaxTokens:   320,
		Seed:        1234,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rain hammers the roof.", out)

	assert.Equal(t, "llama3", got["model"])
	assert.Equal(t, false, got["stream"])
	options, ok := got["options"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 320, options["num_predict"])
	assert.EqualValues(t, 1234, options["seed"])
	assert.EqualValues(t, 0.5, options["temperature"])
}

func TestCompleteErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"model not loaded"}` + "\n"))
	}))
	defer srv.Close()

	c, err := New(srv.URL, time.Second)
	require.NoError(t, err)
	_, err = c.Complete(context.Background(), ai.PromptPair("s", "u"), ai.Options{Model: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestCompleteEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"model":"m","message":{"role":"assistant","content":"   "},"done":true}` + "\n"))
	}))
	defer srv.Close()

	c, err := New(srv.URL, time.Second)
	require.NoError(t, err)
	_, err = c.Complete(context.Background(), ai.PromptPair("s", "u"), ai.Options{Model: "m"})
	assert.ErrorIs(t, err, ai.ErrEmptyResponse)
}
