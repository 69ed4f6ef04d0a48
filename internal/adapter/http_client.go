package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/avorobev/chatlog/internal/config"
	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/internal/utils"
	"github.com/avorobev/chatlog/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger

	mu           sync.RWMutex
	token        string
	refreshToken string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) setRefreshToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.refreshToken = strings.TrimSpace(token)
}

func (h *httpServerAdapter) currentRefreshToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.refreshToken
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/register and returns the server's acknowledgement.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var result models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/auth/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return result, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login. On success both tokens from the response body are stored:
// the access token for the Authorization header, the refresh token for later
// Refresh calls.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(result.AccessToken)
	h.setRefreshToken(result.RefreshToken)

	return result, nil
}

// Refresh implements [ServerAdapter]. It POSTs the retained refresh token to
// POST /auth/refresh and stores the fresh access token via SetToken.
func (h *httpServerAdapter) Refresh(ctx context.Context) (models.RefreshResponse, error) {
	refreshToken := h.currentRefreshToken()
	if refreshToken == "" {
		return models.RefreshResponse{}, ErrNoRefreshToken
	}

	var result models.RefreshResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		SetResult(&result).
		Post("/auth/refresh")
	if err != nil {
		return models.RefreshResponse{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RefreshResponse{}, err
	}

	h.SetToken(result.AccessToken)
	h.setRefreshToken(result.RefreshToken)

	return result, nil
}

// SendMessage implements [ServerAdapter]. It POSTs the prompt to POST /chat
// and returns the stored prompt/response exchange.
func (h *httpServerAdapter) SendMessage(ctx context.Context, prompt string) (models.ChatResponse, error) {
	var result models.ChatResponse

	resp, err := h.authedRequest(ctx).
		SetBody(models.ChatRequest{Prompt: prompt}).
		SetResult(&result).
		Post("/chat")
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatResponse{}, err
	}

	return result, nil
}

// GetHistory implements [ServerAdapter]. It GETs /chat/history and returns
// the full history, oldest message first.
func (h *httpServerAdapter) GetHistory(ctx context.Context) (models.HistoryResponse, error) {
	var result models.HistoryResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/chat/history")
	if err != nil {
		return models.HistoryResponse{}, fmt.Errorf("get history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HistoryResponse{}, err
	}

	return result, nil
}

// ClearHistory implements [ServerAdapter]. It DELETEs /chat/history.
func (h *httpServerAdapter) ClearHistory(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).
		Delete("/chat/history")
	if err != nil {
		return fmt.Errorf("clear history request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(h.Token())
}
