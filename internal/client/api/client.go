// Package api is the HTTP transport pipeline for the Yuyu platform API
// plus thin wrappers for every endpoint the client consumes.
//
// Every call goes through the same pipeline: attach the bearer token when a
// session holds one, send, unwrap the response envelope, and classify
// failures. Business rejections and transport failures are each surfaced
// exactly once as a transient user-visible message and returned to the
// caller; no retries are attempted at this layer.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yuyuwang/yuyu-cli/internal/common"
	"github.com/yuyuwang/yuyu-cli/internal/logging"
	"github.com/yuyuwang/yuyu-cli/internal/notify"
)

// successCode is the envelope status code that marks business success.
const successCode = 200

// Canned user-facing messages, matching the web client verbatim.
const (
	msgTimeout  = "请求超时，请检查网络连接"
	msgNetwork  = "网络错误，请检查您的网络连接"
	msgUnknown  = "发生未知错误"
	msgRejected = "请求失败"
)

const (
	defaultTimeout = 5 * time.Second
	uploadTimeout  = 5 * time.Minute
)

// TokenSource supplies the current bearer token. An empty string means no
// active session; the Authorization header is then omitted.
type TokenSource interface {
	Token() string
}

// envelope is the wire shape wrapping every API response.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client is the transport pipeline. All endpoint wrappers are methods on it.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	tokens        TokenSource
	sink          notify.Sink
	log           logging.Logger
	timeout       time.Duration
	uploadTimeout time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (e.g. with an
// httptest transport).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithNotifySink routes surfaced failure messages to the given sink.
func WithNotifySink(s notify.Sink) Option {
	return func(c *Client) { c.sink = s }
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithUploadTimeout overrides the extended timeout used by upload calls.
func WithUploadTimeout(d time.Duration) Option {
	return func(c *Client) { c.uploadTimeout = d }
}

// New constructs a Client for the API rooted at baseURL. The tokens source
// is consulted before every request; pass the session store.
func New(baseURL string, tokens TokenSource, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{},
		tokens:        tokens,
		sink:          notify.Stderr(),
		log:           log,
		timeout:       defaultTimeout,
		uploadTimeout: uploadTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request is a logical request descriptor handed to the pipeline.
type request struct {
	method    string
	path      string
	query     url.Values
	body      any               // JSON-encoded when non-nil
	multipart *multipartPayload // mutually exclusive with body
	timeout   time.Duration     // zero means the client default
}

// do runs one request through the pipeline and decodes the envelope payload
// into out (which may be nil when the caller discards the payload).
func (c *Client) do(ctx context.Context, req request, out any) error {
	timeout := req.timeout
	if timeout == 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var bodyReader io.Reader
	contentType := ""
	if req.multipart != nil {
		encoded, ct, err := req.multipart.encode()
		if err != nil {
			return c.surfaceTransport(ctx, msgUnknown, 0, err)
		}
		bodyReader = encoded
		contentType = ct
	} else if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return c.surfaceTransport(ctx, msgUnknown, 0, err)
		}
		bodyReader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, bodyReader)
	if err != nil {
		return c.surfaceTransport(ctx, msgUnknown, 0, err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(); token != "" {
		httpReq.Header.Set(common.AuthorizationHeader, "Bearer "+token)
	}
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		message := classifyNetworkError(err)
		if message == msgNetwork {
			err = errors.Join(common.ErrUnavailable, err)
		}
		return c.surfaceTransport(ctx, message, 0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.surfaceTransport(ctx, classifyNetworkError(err), resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		cause := statusSentinel(resp.StatusCode)
		// Prefer the server-supplied message when the error body still
		// carries an envelope.
		var env envelope
		if jsonErr := json.Unmarshal(raw, &env); jsonErr == nil && env.Message != "" {
			return c.surfaceTransport(ctx, env.Message, resp.StatusCode, cause)
		}
		return c.surfaceTransport(ctx, fmt.Sprintf("%s (HTTP %d)", msgUnknown, resp.StatusCode), resp.StatusCode, cause)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return c.surfaceTransport(ctx, msgUnknown, resp.StatusCode, err)
	}

	if env.Code != successCode {
		message := env.Message
		if message == "" {
			message = msgRejected
		}
		c.sink.Notify(notify.LevelError, message)
		c.log.Warn(ctx, "api request rejected",
			"method", req.method, "path", req.path, "code", env.Code)
		return &APIError{Code: env.Code, Message: message}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return c.surfaceTransport(ctx, msgUnknown, resp.StatusCode, err)
		}
	}
	return nil
}

// surfaceTransport reports a transport-level failure once and wraps it.
func (c *Client) surfaceTransport(ctx context.Context, message string, status int, err error) error {
	c.sink.Notify(notify.LevelError, message)
	c.log.Error(ctx, "api request failed", "status", status, "error", err)
	return &TransportError{Message: message, Status: status, Err: err}
}

// statusSentinel maps notable HTTP statuses to the shared sentinel errors so
// callers can match them with errors.Is through the TransportError wrapper.
func statusSentinel(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	}
	return nil
}

// classifyNetworkError maps a low-level send failure to a user-facing
// message: timeouts and connectivity failures get friendlier wording.
func classifyNetworkError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return msgTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return msgTimeout
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return msgNetwork
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return msgNetwork
	}
	return msgUnknown
}

func pageQuery(q string, page, size int) url.Values {
	values := url.Values{}
	if q != "" {
		values.Set("q", q)
	}
	values.Set("page", fmt.Sprint(page))
	values.Set("size", fmt.Sprint(size))
	return values
}
