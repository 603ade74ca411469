// Package api implements the repository interfaces over the upstream JuanTap
// REST API. It is the only place that speaks HTTP to the backend; everything
// above it works with entities.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"juantap/config"
	"juantap/internal/domain/repository"
	"juantap/internal/domain/service"
	"juantap/internal/errors"

	"go.uber.org/fx"
)

const defaultAvatarPath = "/default-avatar.png"

// Client is the shared upstream HTTP client. Repository implementations in
// this package embed it for transport, auth header injection and decoding.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	imageURL    string
	frontendURL string
	session     service.Session
	logger      *slog.Logger
}

// ClientParams holds dependencies for the upstream client, injected by Fx.
type ClientParams struct {
	fx.In

	Config  *config.Config
	Session service.Session
	Logger  *slog.Logger
}

// NewClient creates the shared upstream client.
func NewClient(params ClientParams) *Client {
	upstream := params.Config.Upstream

	return &Client{
		httpClient:  &http.Client{Timeout: upstream.RequestTimeout},
		baseURL:     strings.TrimRight(upstream.APIBaseURL, "/"),
		imageURL:    strings.TrimRight(upstream.ImageBaseURL, "/"),
		frontendURL: strings.TrimRight(upstream.FrontendBaseURL, "/"),
		session:     params.Session,
		logger:      params.Logger,
	}
}

// do issues one request against the upstream and decodes the response body
// into out when out is non-nil. A bearer header is attached whenever the
// session holds a token.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "build upstream request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(repository.ErrUpstream, "%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, method, path); err != nil {
		return err
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(repository.ErrUpstream, "%s %s: decode response: %v", method, path, err)
	}

	return nil
}

func (c *Client) checkStatus(resp *http.Response, method, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	c.logger.Warn("upstream request failed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return errors.WithStack(repository.ErrUnauthorized)
	case http.StatusNotFound:
		return errors.WithStack(repository.ErrTemplateNotFound)
	default:
		return errors.Wrapf(repository.ErrUpstream, "%s %s: status %d", method, path, resp.StatusCode)
	}
}

// absolutizeAvatar normalizes an avatar reference to an absolute URL before
// the value reaches any renderer: absolute URLs pass through, bare storage
// paths are joined onto the image origin, and an empty value resolves to the
// bundled default avatar on the frontend origin.
func (c *Client) absolutizeAvatar(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return c.frontendURL + defaultAvatarPath
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}

	return c.imageURL + "/" + strings.TrimLeft(raw, "/")
}

// decodeList tolerates the two catalog response shapes the upstream emits: a
// bare JSON array, or an object wrapping the array under key.
func decodeList[T any](raw json.RawMessage, key string) ([]T, error) {
	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, errors.Wrap(err, "decode list response")
	}
	inner, ok := wrapped[key]
	if !ok {
		return nil, errors.Errorf("response object has no %q field", key)
	}
	if err := json.Unmarshal(inner, &items); err != nil {
		return nil, errors.Wrapf(err, "decode %q field", key)
	}

	return items, nil
}
