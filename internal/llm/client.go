package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// retryBackoff is the pause between generation attempts.
const retryBackoff = 200 * time.Millisecond

// availableTimeout bounds the reachability check.
const availableTimeout = 2 * time.Second

// GenerateRequest holds the parameters for a generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of a generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client provides access to a language model for text generation.
type Client interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the model server is reachable.
	Available(ctx context.Context) bool
}

// ollamaClient implements Client against the Ollama HTTP API.
type ollamaClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOllamaClient creates a Client that talks to a local Ollama instance.
func NewOllamaClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaClient{
		cfg:      cfg,
		http:     &http.Client{},
		observer: observer,
	}
}

// genOptions are the effective parameters for one call: the per-task
// defaults from Config.Tasks with any request overrides applied.
type genOptions struct {
	temperature float64
	maxTokens   int
	timeout     time.Duration
}

func (c *ollamaClient) resolveOptions(req GenerateRequest) genOptions {
	task := c.cfg.Tasks[req.Task]
	opts := genOptions{
		temperature: task.Temperature,
		maxTokens:   task.MaxTokens,
		timeout:     time.Duration(c.cfg.TaskTimeout(req.Task)) * time.Millisecond,
	}
	if req.Temperature != nil {
		opts.temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		opts.maxTokens = *req.MaxTokens
	}
	return opts
}

// ollamaRequest is the JSON body sent to POST /api/generate.
type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// ollamaResponse is the JSON body returned by POST /api/generate (non-streaming).
type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

// statusError is a non-200 reply from the model server.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("ollama status %d: %s", e.code, strings.TrimSpace(e.body))
}

// Generate runs up to 1+MaxRetries attempts, each under its own task
// timeout. A timed-out attempt is retried; only the caller's own context
// expiring stops the loop early.
func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	opts := c.resolveOptions(req)
	body := ollamaRequest{
		Model:  c.cfg.Model,
		System: req.SystemPrompt,
		Prompt: req.UserPrompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: opts.temperature,
			NumPredict:  opts.maxTokens,
		},
	}

	start := time.Now()
	var resp *ollamaResponse
	var err error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			if werr := sleepBackoff(ctx, retryBackoff); werr != nil {
				break
			}
		}
		resp, err = c.attempt(ctx, body, opts.timeout)
		if err == nil || ctx.Err() != nil {
			break
		}
	}
	latency := time.Since(start).Milliseconds()

	if err != nil {
		mapped := classifyError(err)
		c.observer.OnCallComplete(CallEvent{
			Task:      req.Task,
			Model:     c.cfg.Model,
			LatencyMs: latency,
			Success:   false,
			ErrorCode: errorCode(mapped),
		})
		return nil, mapped
	}

	c.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   true,
	})
	return &GenerateResponse{
		Text:      resp.Response,
		Model:     resp.Model,
		LatencyMs: latency,
	}, nil
}

// attempt performs a single generation request under its own timeout.
func (c *ollamaClient) attempt(ctx context.Context, body ollamaRequest, timeout time.Duration) (*ollamaResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/api/generate", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, &statusError{code: httpResp.StatusCode, body: string(respBody)}
	}

	var resp ollamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, availableTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// sleepBackoff waits between attempts, honoring cancellation.
func sleepBackoff(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// classifyError folds the last attempt's error into the package error
// vocabulary. Exhausted retries keep the cause attached.
func classifyError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrTimeout
	case isConnectionError(err):
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
	}
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
