// Package inference talks to an OpenAI-compatible Responses API for
// structured (JSON schema constrained) output.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"catermatch/config"
	"catermatch/internal/domain/service"
	"catermatch/internal/errors"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL    = "https://api.openai.com"
	defaultModel      = "gpt-4o-mini"
	responsesPath     = "/v1/responses"
	schemaName        = "structured_output"
	maxRetryAfter     = 10 * time.Second
	systemInstruction = "Reply only with a JSON object that satisfies the supplied schema."
)

// HTTPError is a non-2xx reply from the inference API.
type HTTPError struct {
	StatusCode int
	Body       string
	retryAfter time.Duration
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("inference http %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the status is worth another attempt.
func (e *HTTPError) Retryable() bool {
	return e.StatusCode == http.StatusRequestTimeout ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode >= http.StatusInternalServerError
}

// OpenAIClient implements service.StructuredInference over the Responses API.
type OpenAIClient struct {
	logger      *slog.Logger
	httpClient  *http.Client
	limiter     *rate.Limiter
	baseURL     string
	apiKey      string
	model       string
	maxRetries  int
	baseBackoff time.Duration
}

var _ service.StructuredInference = (*OpenAIClient)(nil)

// NewOpenAIClient builds a client from the inference configuration.
func NewOpenAIClient(cfg *config.InferenceConfig, logger *slog.Logger) (*OpenAIClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("inference api key is required for the openai provider")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	burst := max(1, int(cfg.RequestsPerSecond))

	return &OpenAIClient{
		logger:      logger.With(slog.String("component", "inference")),
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		limiter:     rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst),
		baseURL:     baseURL,
		apiKey:      cfg.APIKey,
		model:       model,
		maxRetries:  max(0, cfg.MaxRetries),
		baseBackoff: 500 * time.Millisecond,
	}, nil
}

type responsesRequest struct {
	Model        string         `json:"model"`
	Instructions string         `json:"instructions,omitempty"`
	Input        []inputMessage `json:"input"`
	Text         struct {
		Format map[string]any `json:"format"`
	} `json:"text"`
	Temperature float64 `json:"temperature"`
}

type inputMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responsesResponse struct {
	Output []struct {
		Type    string `json:"type"`
		Role    string `json:"role,omitempty"`
		Content []struct {
			Type    string `json:"type"`
			Text    string `json:"text,omitempty"`
			Refusal string `json:"refusal,omitempty"`
		} `json:"content,omitempty"`
	} `json:"output"`
}

// Infer sends the prompt with a strict json_schema response format and decodes the reply.
func (c *OpenAIClient) Infer(ctx context.Context, prompt string, schema map[string]any) (map[string]any, error) {
	if schema == nil {
		return nil, errors.New("schema is required")
	}

	req := responsesRequest{
		Model:        c.model,
		Instructions: systemInstruction,
		Input:        []inputMessage{{Role: "user", Content: prompt}},
	}
	req.Text.Format = map[string]any{
		"type":   "json_schema",
		"name":   schemaName,
		"schema": schema,
		"strict": true,
	}

	var resp responsesResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}

	text, refusal := outputText(resp)
	if refusal != "" {
		return nil, errors.Errorf("model refused: %s", refusal)
	}

	if strings.TrimSpace(text) == "" {
		return nil, errors.New("no output_text in inference response")
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, errors.Wrap(err, "decode inference output")
	}

	return obj, nil
}

func outputText(resp responsesResponse) (text, refusal string) {
	var out strings.Builder
	for _, item := range resp.Output {
		if item.Type != "message" {
			continue
		}

		for _, part := range item.Content {
			switch part.Type {
			case "output_text":
				out.WriteString(part.Text)
			case "refusal":
				refusal = part.Refusal
			}
		}
	}

	return out.String(), refusal
}

func (c *OpenAIClient) do(ctx context.Context, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "encode inference request")
	}

	backoff := c.baseBackoff
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "inference rate limiter")
		}

		raw, err := c.doOnce(ctx, payload)
		if err == nil {
			if uErr := json.Unmarshal(raw, out); uErr != nil {
				return errors.Wrap(uErr, "decode inference response")
			}

			return nil
		}

		if attempt >= c.maxRetries || !retryable(ctx, err) {
			return err
		}

		sleepFor := jitter(backoff)
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.retryAfter > 0 {
			sleepFor = httpErr.retryAfter
		}

		c.logger.WarnContext(ctx, "Inference request retrying",
			slog.Int("attempt", attempt+1),
			slog.Int("maxRetries", c.maxRetries),
			slog.Duration("sleep", sleepFor),
			slog.Any("error", err),
		)

		timer := time.NewTimer(sleepFor)
		select {
		case <-ctx.Done():
			timer.Stop()

			return errors.WithStack(ctx.Err())
		case <-timer.C:
		}

		backoff *= 2
	}
}

func (c *OpenAIClient) doOnce(ctx context.Context, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+responsesPath, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "build inference request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send inference request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read inference response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(raw),
			retryAfter: retryAfter(resp.Header.Get("Retry-After")),
		}
	}

	return raw, nil
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}

	if httpErr, ok := errors.AsType[*HTTPError](err); ok {
		return httpErr.Retryable()
	}

	if netErr, ok := errors.AsType[net.Error](err); ok {
		return netErr.Timeout()
	}

	return false
}

func retryAfter(header string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || secs <= 0 {
		return 0
	}

	return min(time.Duration(secs)*time.Second, maxRetryAfter)
}

func jitter(base time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}

	delta := float64(base) * 0.2

	return time.Duration(float64(base) - delta + rand.Float64()*2*delta)
}
