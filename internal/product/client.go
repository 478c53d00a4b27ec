package product

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrBadStatus   = errors.New("product api bad status")
	ErrUnavailable = errors.New("product api unavailable")
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	if u, err := url.Parse(baseURL); err == nil && u.Scheme != "" && u.Host != "" {
		baseURL = strings.TrimRight(baseURL, "/")
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 3 * time.Second},
	}
}

func (c *Client) List(ctx context.Context) ([]Product, error) {
	var out []Product
	if _, err := c.do(ctx, http.MethodGet, basePath, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id int32) (Product, error) {
	var p Product
	_, err := c.do(ctx, http.MethodGet, Location(id), nil, http.StatusOK, &p)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

// Add submits p and returns the echoed product with its Location header.
func (c *Client) Add(ctx context.Context, p Product) (Product, string, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return Product{}, "", err
	}

	var echoed Product
	resp, err := c.do(ctx, http.MethodPost, basePath, body, http.StatusCreated, &echoed)
	if err != nil {
		return Product{}, "", err
	}
	return echoed, resp.Header.Get("Location"), nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, want int, out any) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case want:
	case http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, ErrNotFound
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status=%d", ErrBadStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, err
	}
	return resp, nil
}
