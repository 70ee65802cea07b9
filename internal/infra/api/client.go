// Package api implements the live data source: one HTTP call per repository
// operation against the SmileLink REST backend. Wire decoding lives in the
// entity struct tags; this package owns transport, status mapping, and asset
// URL normalization.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"smilelink/config"
	domainerrors "smilelink/internal/domain/errors"

	"github.com/pkg/errors"
)

// Client is the shared REST transport for every live repository. All
// repositories in this package embed it; construct it once in cmd/.
type Client struct {
	baseURL    string
	assetHost  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds the shared transport. cfg.API.Timeout bounds every call;
// there are no retries at this layer.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.API.BaseURL, "/"),
		assetHost: cfg.API.AssetHost,
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
		logger: logger,
	}
}

// getJSON issues a GET and decodes the 2xx body into out.
// notFound, when non-nil, is returned verbatim for a 404 so each repository
// surfaces its own entity-specific lookup error.
func (c *Client) getJSON(ctx context.Context, path string, out any, notFound domainerrors.AppError) error {
	return c.do(ctx, http.MethodGet, path, nil, out, notFound)
}

// postJSON issues a POST with a JSON body and decodes the 2xx response.
func (c *Client) postJSON(ctx context.Context, path string, body, out any, notFound domainerrors.AppError) error {
	return c.do(ctx, http.MethodPost, path, body, out, notFound)
}

// patchJSON issues a PATCH whose body carries only the fields present in upd
// (pointer fields with omitempty), then decodes the canonical record.
func (c *Client) patchJSON(ctx context.Context, path string, upd, out any, notFound domainerrors.AppError) error {
	return c.do(ctx, http.MethodPatch, path, upd, out, notFound)
}

// deleteJSON issues a DELETE; the backend returns no useful body.
func (c *Client) deleteJSON(ctx context.Context, path string, notFound domainerrors.AppError) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, notFound)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, notFound domainerrors.AppError) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("backend unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err))

		return domainerrors.NewTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return c.statusError(resp, path, notFound)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", method, path)
	}

	return nil
}

// statusError maps a non-2xx response to the error taxonomy, preserving the
// raw status for caller-side branching.
func (c *Client) statusError(resp *http.Response, path string, notFound domainerrors.AppError) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode == http.StatusNotFound && notFound != nil {
		return notFound
	}

	c.logger.Warn("unexpected backend status",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))

	return domainerrors.NewUnexpectedStatusError(resp.StatusCode, string(raw))
}

// NormalizeAssetURL makes a backend-returned asset reference reachable from
// this client: relative paths are prefixed with the backend host, and
// loopback hosts are rewritten to the configured asset host so images work
// from other devices on the network.
func (c *Client) NormalizeAssetURL(raw string) string {
	if raw == "" {
		return raw
	}

	if strings.HasPrefix(raw, "/") {
		return c.serverRoot() + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return raw
	}

	host := parsed.Hostname()
	if c.assetHost != "" && (host == "localhost" || host == "127.0.0.1") {
		port := parsed.Port()
		if port != "" {
			parsed.Host = c.assetHost + ":" + port
		} else {
			parsed.Host = c.assetHost
		}

		return parsed.String()
	}

	return raw
}

// serverRoot strips the API prefix from the base URL, leaving scheme://host[:port].
func (c *Client) serverRoot() string {
	parsed, err := url.Parse(c.baseURL)
	if err != nil {
		return c.baseURL
	}
	parsed.Path = ""
	parsed.RawQuery = ""

	return parsed.String()
}
