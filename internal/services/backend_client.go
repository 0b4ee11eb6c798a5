package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"wanderworld/internal/config"
	"wanderworld/internal/models/catalog_models"
	"wanderworld/pkg/utils"
)

// BackendClient talks to the travel agency backend. Every call is a single
// attempt; retrying is up to the visitor.
type BackendClient interface {
	Seed(ctx context.Context) error
	ListDestinations(ctx context.Context) ([]catalog_models.Destination, error)
	ListPackages(ctx context.Context, destinationSlug string) ([]catalog_models.Package, error)
	SubmitInquiry(ctx context.Context, draft catalog_models.InquiryDraft) error
}

type HTTPBackendClient struct {
	HTTP    *http.Client
	BaseURL string
}

func NewHTTPBackendClient(cfg config.Config) *HTTPBackendClient {
	return &HTTPBackendClient{
		HTTP:    &http.Client{Timeout: cfg.BackendTimeout},
		BaseURL: cfg.BackendURL,
	}
}

var _ BackendClient = (*HTTPBackendClient)(nil)

func (c *HTTPBackendClient) Seed(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/seed", nil, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *HTTPBackendClient) ListDestinations(ctx context.Context) ([]catalog_models.Destination, error) {
	var out []catalog_models.Destination
	if err := c.getJSON(ctx, "/destinations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPackages lists all packages, or only those of destinationSlug when it is
// not empty.
func (c *HTTPBackendClient) ListPackages(ctx context.Context, destinationSlug string) ([]catalog_models.Package, error) {
	var q url.Values
	if destinationSlug != "" {
		q = url.Values{}
		q.Set("destination", destinationSlug)
	}

	var out []catalog_models.Package
	if err := c.getJSON(ctx, "/packages", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPBackendClient) SubmitInquiry(ctx context.Context, draft catalog_models.InquiryDraft) error {
	b, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode inquiry: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPost, "/inquire", nil, bytes.NewReader(b))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *HTTPBackendClient) getJSON(ctx context.Context, path string, q url.Values, out interface{}) error {
	resp, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: %v", utils.ErrBackendDecode, path, err)
	}
	return nil
}

// do sends one request and fails on transport errors and non-2xx statuses.
// On success the caller owns resp.Body.
func (c *HTTPBackendClient) do(ctx context.Context, method, path string, q url.Values, body io.Reader) (*http.Response, error) {
	u := c.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", utils.ErrBackendUnavailable, method, path, err)
	}
	if resp.StatusCode/100 != 2 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s %s: %s", utils.ErrBackendStatus, method, path, resp.Status)
	}
	return resp, nil
}
