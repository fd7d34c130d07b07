package inference

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"catermatch/config"
	"catermatch/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = map[string]any{
	"type":       "object",
	"properties": map[string]any{"city": map[string]any{"type": "string"}},
}

func newTestClient(t *testing.T, url string, retries int) *OpenAIClient {
	t.Helper()

	client, err := NewOpenAIClient(&config.InferenceConfig{
		BaseURL:           url,
		APIKey:            "sk-test",
		Model:             "test-model",
		Timeout:           2 * time.Second,
		MaxRetries:        retries,
		RequestsPerSecond: 1000,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	client.baseBackoff = time.Millisecond

	return client
}

func writeOutput(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"output": []map[string]any{
			{"type": "reasoning"},
			{
				"type": "message",
				"role": "assistant",
				"content": []map[string]any{
					{"type": "output_text", "text": text},
				},
			},
		},
	})
}

func TestOpenAIClient_InferSendsStrictSchema(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/responses", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		writeOutput(w, `{"city":"Durban"}`)
	}))
	defer server.Close()

	out, err := newTestClient(t, server.URL, 0).Infer(context.Background(), "where is umhlanga", testSchema)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"city": "Durban"}, out)
	assert.Equal(t, "test-model", got["model"])

	format := got["text"].(map[string]any)["format"].(map[string]any)
	assert.Equal(t, "json_schema", format["type"])
	assert.Equal(t, true, format["strict"])
	assert.NotNil(t, format["schema"])

	input := got["input"].([]any)
	require.Len(t, input, 1)
	assert.Equal(t, "where is umhlanga", input[0].(map[string]any)["content"])
}

func TestOpenAIClient_RetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		writeOutput(w, `{"city":"Pretoria"}`)
	}))
	defer server.Close()

	out, err := newTestClient(t, server.URL, 2).Infer(context.Background(), "menlyn", testSchema)
	require.NoError(t, err)

	assert.Equal(t, "Pretoria", out["city"])
	assert.Equal(t, int32(3), calls.Load())
}

func TestOpenAIClient_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL, 1).Infer(context.Background(), "x", testSchema)
	require.Error(t, err)

	httpErr, ok := errors.AsType[*HTTPError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.StatusCode)
	assert.Equal(t, int32(2), calls.Load())
}

func TestOpenAIClient_DoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad schema"}`))
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL, 3).Infer(context.Background(), "x", testSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad schema")
	assert.Equal(t, int32(1), calls.Load())
}

func TestOpenAIClient_RejectsNonJSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeOutput(w, "Durban, probably")
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL, 0).Infer(context.Background(), "x", testSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode inference output")
}

func TestOpenAIClient_Refusal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"output": []map[string]any{{
				"type":    "message",
				"role":    "assistant",
				"content": []map[string]any{{"type": "refusal", "refusal": "cannot help"}},
			}},
		})
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL, 0).Infer(context.Background(), "x", testSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot help")
}

func TestOpenAIClient_StopsOnContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 5)
	client.baseBackoff = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.Infer(ctx, "x", testSchema)
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewOpenAIClient_RequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIClient(&config.InferenceConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
}

func TestRetryAfter(t *testing.T) {
	assert.Equal(t, 3*time.Second, retryAfter("3"))
	assert.Equal(t, maxRetryAfter, retryAfter("120"))
	assert.Zero(t, retryAfter(""))
	assert.Zero(t, retryAfter("Wed, 21 Oct 2015 07:28:00 GMT"))
}
