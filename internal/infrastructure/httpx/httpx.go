package httpx

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxErrorBody = 64 << 10

// Options configures the outbound client.
//
// InsecureSkipVerify disables TLS certificate verification. It exists for
// upstreams reached through intercepting proxies and must stay off otherwise.
type Options struct {
	Timeout            time.Duration
	UserAgent          string
	InsecureSkipVerify bool
}

// Client is a thin wrapper around http.Client that sets a User-Agent and
// decodes JSON bodies. It performs exactly one attempt per call.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

func New(opts Options) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if opts.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in via config
	}
	return &Client{
		HTTP:      &http.Client{Timeout: opts.Timeout, Transport: transport},
		UserAgent: opts.UserAgent,
	}
}

// StatusError is returned when the upstream answers with a non-2xx status.
// Body holds at most the first 64 KiB of the response.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string { return "status " + e.Status }

func (c *Client) DoJSON(ctx context.Context, req *http.Request, out any) error {
	req = req.WithContext(ctx)
	if c.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: body}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
