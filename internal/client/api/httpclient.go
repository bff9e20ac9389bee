package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stadtwache/patrol/internal/common"
	"github.com/stadtwache/patrol/internal/logging"
)

// TokenSource supplies the current bearer token for outbound requests.
// The session manager implements it; an empty string means "no token".
type TokenSource interface {
	Token() string
}

// Recoverer is consulted exactly once when an authenticated request comes
// back 401. It re-validates the session and returns a token to replay the
// request with, or an error when the session is definitively dead.
type Recoverer interface {
	RecoverUnauthorized(ctx context.Context) (string, error)
}

// HTTPClient is the concrete Client talking JSON over HTTP.
type HTTPClient struct {
	baseURL   string
	http      *http.Client
	tokens    TokenSource
	recoverer Recoverer
	log       logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// New returns an HTTPClient for the given base URL. The timeout bounds every
// round-trip, including login and validation calls.
func New(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Bind attaches the session manager as token source and 401 recoverer.
// Called once during app wiring; the client works unauthenticated before.
func (c *HTTPClient) Bind(ts TokenSource, r Recoverer) {
	c.tokens = ts
	c.recoverer = r
}

// send performs one round-trip. The body is marshalled per attempt so a
// replay gets a fresh reader.
func (c *HTTPClient) send(ctx context.Context, method, path string, body any, token string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

// do performs an authenticated or anonymous call and decodes the JSON
// response into out (which may be nil).
//
// A 401 on an authenticated call triggers the recovery protocol: the
// recoverer re-validates the session once, and on success the request is
// replayed exactly once with the recovered token. A 401 on the replay is
// final — there is never a second recovery for the same logical request.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	token := ""
	if authed && c.tokens != nil {
		token = c.tokens.Token()
	}

	resp, err := c.send(ctx, method, path, body, token)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && authed && c.recoverer != nil {
		drain(resp)
		c.log.Warn(ctx, "request unauthorized, attempting session recovery", "method", method, "path", path)

		recovered, rerr := c.recoverer.RecoverUnauthorized(ctx)
		if rerr != nil {
			return ErrUnauthorized
		}

		resp, err = c.send(ctx, method, path, body, recovered)
		if err != nil {
			return err
		}
	}

	return decode(resp, out, authed)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// decode maps the response: 2xx unmarshals into out, everything else becomes
// *APIError carrying the backend's "detail" message when one is present.
//
// A 401 on an authenticated call means the bearer token was rejected and
// becomes ErrUnauthorized. A 401 on an anonymous call (a failed login) is an
// ordinary rejection whose detail must survive for display.
func decode(resp *http.Response, out any, authed bool) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil
	}

	if resp.StatusCode == http.StatusUnauthorized && authed {
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrUnauthorized
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return &APIError{Status: resp.StatusCode, Detail: payload.Detail}
}
