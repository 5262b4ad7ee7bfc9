package placesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"placehound/internal/session"
)

// Client implements API over HTTP. It holds no request state of its own: the
// session token is read from the store at call time, so a login or logout is
// picked up by the very next request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     session.Store
	log        zerolog.Logger
}

var _ API = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger attaches a logger; by default the client is silent.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithTimeout overrides the default 30s request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a Client against the given base URL. The token store is
// required: it is the only shared mutable state in the system.
func New(baseURL string, tokens session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// authHeader returns the x-access-token header value. An absent token is sent
// as the empty string rather than omitting the header.
func (c *Client) authHeader() string {
	return c.tokens.Token()
}

// do performs one request and decodes the JSON response into result (which
// may be nil when the body is irrelevant). Non-2xx statuses are translated
// into *APIError with the canonical message extraction. There are no retries;
// every call yields exactly one outcome.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, result any) error {
	apiURL := c.baseURL + "/" + path
	if len(params) > 0 {
		apiURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-access-token", c.authHeader())
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration_ms", time.Since(start)).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", ErrBadResponse)
	}
	return nil
}

// errorEnvelope tolerates both envelope shapes the backend has used over
// time: {"message": ...} and {"error": ...}.
type errorEnvelope struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Message != "" {
			apiErr.Message = envelope.Message
		} else {
			apiErr.Message = envelope.Err
		}
	}
	return apiErr
}
