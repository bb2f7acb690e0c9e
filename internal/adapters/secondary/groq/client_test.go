package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ai-tutor-service/internal/config"
	"ai-tutor-service/internal/core/domain"
)

func newTestClient(url string) *tutorClient {
	return NewTutorClient(&config.TutorConfig{
		Enabled: true,
		URL:     url,
		APIKey:  "test-key",
		Model:   "llama-3.3-70b-versatile",
		Timeout: 5 * time.Second,
	}).(*tutorClient)
}

func TestTutorClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama-3.3-70b-versatile", req.Model)
		assert.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.InDelta(t, 0.2, req.Temperature, 1e-9)
		assert.Equal(t, 200, req.MaxTokens)

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Answer: 4"}},
			},
		})
	}))
	defer srv.Close()

	answer, err := newTestClient(srv.URL).Complete(context.Background(), "system prompt", "What is 2+2?")
	assert.NoError(t, err)
	assert.Equal(t, "Answer: 4", answer)
}

func TestTutorClient_Complete_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, domain.ErrTutorNotAvailable)
}

func TestTutorClient_Complete_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "model overloaded"},
		})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Complete(context.Background(), "s", "u")
	assert.ErrorContains(t, err, "model overloaded")
}

func TestTutorClient_Disabled(t *testing.T) {
	client := NewTutorClient(&config.TutorConfig{Enabled: false})
	assert.False(t, client.IsAvailable())

	_, err := client.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, domain.ErrTutorNotAvailable)
}
