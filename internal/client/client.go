// Package client is the single point of outbound HTTP traffic to the
// MedTracker API. Every adapter method issues exactly one request to one
// fixed route, attaches the session credential when present, and unwraps
// the endpoint's response envelope. On a 401 the client wipes the local
// session and notifies the hosting application; every other failure
// propagates to the caller untouched. There is no retry, no backoff and
// no request deduplication.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/medtracker/medtracker-go/internal/config"
	"github.com/medtracker/medtracker-go/internal/session"
	"github.com/medtracker/medtracker-go/pkg/errors"
	"github.com/medtracker/medtracker-go/pkg/logger"
	"github.com/medtracker/medtracker-go/pkg/metrics"
)

// Client is the configured API client. One instance is created in main
// and injected everywhere; constructing two with different session state
// would produce divergent 401 handling.
type Client struct {
	baseURL string
	httpc   *http.Client
	session *session.Manager
	log     *logger.Logger
	metrics *metrics.Metrics

	onSessionExpired func()
	logRequests      bool
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// WithMetrics attaches a client metric set.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// OnSessionExpired registers the hook invoked after a 401 has wiped the
// session. The hosting application decides what "go to login" means;
// the data layer only reports that it happened.
func OnSessionExpired(fn func()) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

// New creates the API client bound to cfg.BaseURL.
func New(cfg config.APIConfig, sess *session.Manager, log *logger.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: cfg.BaseURL,
		httpc: &http.Client{
			Timeout: cfg.Timeout,
		},
		session:     sess,
		log:         log,
		logRequests: cfg.RequestLogging,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the configured API base address.
func (c *Client) BaseURL() string { return c.baseURL }

// path expands a route template with path-escaped parameters. The
// template doubles as the bounded metrics label for the call.
func path(route string, params ...string) string {
	if len(params) == 0 {
		return route
	}
	args := make([]interface{}, len(params))
	for i, p := range params {
		args[i] = url.PathEscape(p)
	}
	return fmt.Sprintf(route, args...)
}

func withQuery(p string, q url.Values) string {
	if len(q) == 0 {
		return p
	}
	return p + "?" + q.Encode()
}

// newRequest builds the outgoing request: JSON body when in is non-nil,
// bearer credential when the session has one, and a fresh request id.
func (c *Client) newRequest(ctx context.Context, method, p string, in interface{}) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+p, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// send runs the request and applies the response interceptor: 401 wipes
// the session and fires the expiry hook before the error is returned;
// any other non-2xx becomes an APIError. The caller owns the body.
func (c *Client) send(req *http.Request, route string) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpc.Do(req)
	c.observe(req.Method, route, resp, err, time.Since(start))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.expireSession(route)
		defer resp.Body.Close()
		return nil, c.apiError(resp)
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, c.apiError(resp)
	}
	return resp, nil
}

func (c *Client) expireSession(route string) {
	if err := c.session.Clear(); err != nil {
		c.log.Error(err, "failed to clear session after 401", "route", route)
	}
	if c.metrics != nil {
		c.metrics.SessionExpirations.Inc()
	}
	c.log.Warn("session expired", "route", route)
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

func (c *Client) observe(method, route string, resp *http.Response, err error, d time.Duration) {
	status := "error"
	if resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	if c.metrics != nil {
		c.metrics.RequestsTotal.WithLabelValues(method, route, status).Inc()
		c.metrics.RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
	}
	if c.logRequests {
		c.log.Debug("api request", "method", method, "route", route, "status", status, "duration", d.String())
	}
}

// apiError reads the failed response and extracts the server message
// when one is present. The raw body is preserved for the caller.
func (c *Client) apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var envelope struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	message := ""
	if err := json.Unmarshal(body, &envelope); err == nil {
		message = envelope.Message
		if message == "" {
			message = envelope.Error.Message
		}
	}
	return errors.NewAPIError(resp.StatusCode, message, body)
}

// doJSON issues one request and returns the raw JSON body for the
// envelope helpers to unwrap.
func (c *Client) doJSON(ctx context.Context, method, route string, in interface{}, params ...string) (json.RawMessage, error) {
	req, err := c.newRequest(ctx, method, path(route, params...), in)
	if err != nil {
		return nil, err
	}
	resp, err := c.send(req, route)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return json.RawMessage(raw), nil
}

func (c *Client) getJSON(ctx context.Context, route string, params ...string) (json.RawMessage, error) {
	return c.doJSON(ctx, http.MethodGet, route, nil, params...)
}

// getJSONQuery is getJSON with a query string appended after route
// expansion; the metrics label stays the bare route template.
func (c *Client) getJSONQuery(ctx context.Context, route string, q url.Values, params ...string) (json.RawMessage, error) {
	req, err := c.newRequest(ctx, http.MethodGet, withQuery(path(route, params...), q), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.send(req, route)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return json.RawMessage(raw), nil
}

// doBinary issues one request and returns the raw body bytes unchanged.
// Used by the download/view/export endpoints.
func (c *Client) doBinary(ctx context.Context, method, route string, in interface{}, params ...string) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path(route, params...), in)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "*/*")

	resp, err := c.send(req, route)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read binary body: %w", err)
	}
	if c.metrics != nil {
		c.metrics.BytesDownloaded.Add(float64(len(body)))
	}
	return body, nil
}

// doMultipart posts a caller-built multipart payload. The content type
// must come from the caller's multipart writer so the boundary survives;
// the transport must not fall back to JSON.
func (c *Client) doMultipart(ctx context.Context, route string, body io.Reader, contentType string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+route, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.send(req, route)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return json.RawMessage(raw), nil
}
