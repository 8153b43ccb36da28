// Package client is a typed HTTP client for the public tender listing API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tendersaarthi/tendersaarthi-api/internal/dto"
)

// Client talks to one API base URL such as http://localhost:8080/api/v1.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New builds a client.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is the typed error returned in the response envelope.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *APIError       `json:"error"`
}

// Tenders fetches one listing page. A failed listing returns the partial result alongside the
// APIError so callers can render the empty state with its message.
func (c *Client) Tenders(ctx context.Context, req ListingRequest) (*dto.ListingResult, error) {
	var result dto.ListingResult
	err := c.get(ctx, "/tenders", req.Encode(), &result)
	if err != nil {
		if result.Error == "" {
			result.Error = err.Error()
		}
		return &result, err
	}
	return &result, nil
}

// FilterOptions fetches the facets and price range.
func (c *Client) FilterOptions(ctx context.Context) (*dto.FilterOptions, error) {
	var opts dto.FilterOptions
	if err := c.get(ctx, "/tenders/filters", nil, &opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

// PriceRange converts slider positions to currency bounds.
func (c *Client) PriceRange(ctx context.Context, minPos, maxPos int) (*dto.PriceRangeResponse, error) {
	q := url.Values{}
	q.Set("minPos", strconv.Itoa(minPos))
	q.Set("maxPos", strconv.Itoa(maxPos))

	var out dto.PriceRangeResponse
	if err := c.get(ctx, "/tenders/price-range", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, into interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode %s (status %d): %w", path, resp.StatusCode, err)
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, into); err != nil {
			return fmt.Errorf("decode %s data: %w", path, err)
		}
	}
	if env.Error != nil {
		return env.Error
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return &APIError{Code: http.StatusText(resp.StatusCode), Message: "unexpected status", Status: resp.StatusCode}
	}
	return nil
}
