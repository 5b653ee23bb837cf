package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-cred-pool/internal/config"
	"github.com/MKhiriev/go-cred-pool/internal/logger"
	"github.com/MKhiriev/go-cred-pool/internal/utils"
	"github.com/MKhiriev/go-cred-pool/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

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

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the API key to
// POST /api/admin/auth/login and keeps the bearer token from the
// Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, apiKey string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{APIKey: apiKey}).
		Post("/api/admin/auth/login")
	if err != nil {
		return fmt.Errorf("%w: login request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("%w: login parse bearer token: %w", ErrUnexpectedResponse, err)
	}

	h.SetToken(token)
	h.logger.Debug().Msg("logged in to admin API")
	return nil
}

// BatchAdd implements [ServerAdapter]. It POSTs the batch to
// POST /api/admin/credentials/batch-add.
func (h *httpServerAdapter) BatchAdd(ctx context.Context, req models.BatchAddRequest) (models.BatchAddResult, error) {
	var result models.BatchAddResult

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/admin/credentials/batch-add")
	if err != nil {
		return models.BatchAddResult{}, fmt.Errorf("%w: batch-add request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BatchAddResult{}, err
	}

	if len(result.Results) != result.Total {
		return models.BatchAddResult{}, fmt.Errorf("%w: %d results for %d items", ErrUnexpectedResponse, len(result.Results), result.Total)
	}

	h.logger.Debug().
		Int("total", result.Total).
		Int("succeeded", result.SuccessCount).
		Int("failed", result.FailedCount).
		Msg("batch submitted")

	return result, nil
}

// ListCredentials implements [ServerAdapter]. It calls
// GET /api/admin/credentials.
func (h *httpServerAdapter) ListCredentials(ctx context.Context) (models.CredentialsStatusResponse, error) {
	var status models.CredentialsStatusResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&status).
		Get("/api/admin/credentials")
	if err != nil {
		return models.CredentialsStatusResponse{}, fmt.Errorf("%w: list request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CredentialsStatusResponse{}, err
	}

	return status, nil
}

// GetServerVersion implements [ServerAdapter]. It calls GET /api/version/.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("%w: version request: %w", ErrServerUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
