package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/avorobev/chatlog/internal/config"
	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/internal/utils"
)

// UpstreamError reports a non-OK response from the completion API. The status
// code and raw body are preserved so callers can surface them to the user.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion api status %d: %s", e.Status, e.Body)
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string              `json:"model"`
	Messages []completionMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
}

type httpCompletionClient struct {
	client *utils.HTTPClient
	url    string
	key    string
	model  string
	logger *logger.Logger
}

// NewCompletionClient constructs a [CompletionClient] that talks to an
// OpenAI-compatible chat completions endpoint (e.g. the Groq API).
func NewCompletionClient(cfg config.Completion, logger *logger.Logger) CompletionClient {
	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.Timeout)

	return &httpCompletionClient{
		client: client,
		url:    cfg.URL,
		key:    cfg.Key,
		model:  cfg.Model,
		logger: logger,
	}
}

// Complete implements [CompletionClient]. It sends the prompt as a single
// user message and returns the first choice's content.
//
// Only HTTP 200 counts as success; any other status is reported as a
// *[UpstreamError] carrying the raw response body.
func (c *httpCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	body := completionRequest{
		Model:    c.model,
		Messages: []completionMessage{{Role: "user", Content: prompt}},
	}

	var result completionResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(c.key).
		SetBody(body).
		SetResult(&result).
		Post(c.url)
	if err != nil {
		log.Err(err).Str("func", "httpCompletionClient.Complete").Msg("completion request failed")
		return "", fmt.Errorf("completion request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		log.Warn().
			Str("func", "httpCompletionClient.Complete").
			Int("status", resp.StatusCode()).
			Msg("completion api returned non-OK status")
		return "", &UpstreamError{
			Status: resp.StatusCode(),
			Body:   strings.TrimSpace(string(resp.Body())),
		}
	}

	if len(result.Choices) == 0 {
		log.Warn().Str("func", "httpCompletionClient.Complete").Msg("completion response has no choices")
		return "", fmt.Errorf("completion response has no choices")
	}

	return result.Choices[0].Message.Content, nil
}
