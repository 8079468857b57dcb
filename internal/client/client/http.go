package client

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

	"github.com/dmitrijs2005/socialdeck/internal/common"
	"github.com/dmitrijs2005/socialdeck/internal/logging"
)

// ErrMalformedResponse is returned when a successful response lacks the
// fields the endpoint promises.
var ErrMalformedResponse = errors.New("malformed response")

var _ Client = (*HTTPClient)(nil)

// HTTPClient talks to the scheduling API over HTTP/JSON.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient builds a client for baseURL. A zero timeout leaves requests
// bounded only by the caller's context. tokens may be nil when no
// authenticated endpoint will be called.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api base url %q: scheme must be http or https", baseURL)
	}
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}, nil
}

// request describes one API call. Body is JSON-encoded unless it is a
// *formBody, which is sent as-is.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	auth   bool
}

type formBody struct {
	contentType string
	data        *bytes.Buffer
}

func (c *HTTPClient) newRequest(ctx context.Context, r request) (*http.Request, error) {
	u := c.baseURL.JoinPath(r.path)
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch b := r.body.(type) {
	case nil:
	case *formBody:
		body, contentType = b.data, b.contentType
	default:
		buf, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body, contentType = bytes.NewReader(buf), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if r.auth {
		token, ok := "", false
		if c.tokens != nil {
			token, ok = c.tokens.Token(ctx)
		}
		if !ok {
			return nil, ErrNoToken
		}
		req.Header.Set(common.AuthorizationHeaderName, common.BearerValue(token))
	}
	return req, nil
}

// send performs the round trip and returns the status and the raw body.
func (c *HTTPClient) send(ctx context.Context, r request) (int, []byte, error) {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return 0, nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, nil, ctxErr
		}
		return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "api call", "method", r.method, "path", r.path, "status", resp.StatusCode)
	return resp.StatusCode, raw, nil
}

// call sends r and applies the envelope rules: the body must be JSON, the
// status 2xx and success true. The top-level body is decoded into out when
// out is non-nil, even on failure, so callers can inspect extra fields. A
// decode error only counts on success.
func (c *HTTPClient) call(ctx context.Context, r request, out any) (envelope, error) {
	status, raw, err := c.send(ctx, r)
	if err != nil {
		return envelope{}, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		apiErr := &APIError{Status: status}
		if apiErr.Unwrap() != nil {
			return envelope{}, apiErr
		}
		return envelope{}, fmt.Errorf("%w (status %d)", ErrNotJSON, status)
	}

	failed := status < 200 || status > 299 || !env.Success

	// A failure keeps its status and message even when the payload does
	// not match out.
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil && !failed {
			return env, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}

	if failed {
		c.log.Warn(ctx, "api failure", "path", r.path, "status", status, "message", env.Message)
		return env, &APIError{Status: status, Message: env.Message}
	}
	return env, nil
}

// callData is call followed by decoding the data member into out.
func (c *HTTPClient) callData(ctx context.Context, r request, out any) (envelope, error) {
	env, err := c.call(ctx, r, nil)
	if err != nil {
		return env, err
	}
	if !env.hasData() {
		return env, fmt.Errorf("%w: %s %s: no data", ErrMalformedResponse, r.method, r.path)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return env, fmt.Errorf("%w: %s %s: %v", ErrMalformedResponse, r.method, r.path, err)
	}
	return env, nil
}

// Ping checks that the API answers at all. Any response below 500 counts
// as reachable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	status, _, err := c.send(ctx, request{method: http.MethodGet, path: "/api/schedule/options"})
	if err != nil {
		return err
	}
	if status >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d", ErrUnavailable, status)
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
