package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"

	"github.com/rshade/licensedesk/internal/logging"
	"github.com/rshade/licensedesk/internal/session"
)

// Headers exchanged with the backend.
const (
	HeaderRequestID  = "X-Request-ID"
	HeaderTraceID    = "X-Trace-ID"
	HeaderAPIVersion = "X-API-Version"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 10 << 20

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	Tokens     session.TokenSource
	MinVersion string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Envelope is the common part of every backend response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (e *Envelope) envelope() *Envelope { return e }

type enveloped interface {
	envelope() *Envelope
}

// Client talks to the licensing backend.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tokens     session.TokenSource
	minVersion *semver.Constraints
	log        zerolog.Logger

	versionOnce    sync.Once
	versionWarning string
}

// New creates a Client.
func New(opts Options) (*Client, error) {
	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url must be absolute, got %q", opts.BaseURL)
	}
	if opts.Tokens == nil {
		return nil, errors.New("token source cannot be nil")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	c := &Client{
		baseURL:    u,
		httpClient: httpClient,
		tokens:     opts.Tokens,
		log:        logging.ComponentLogger(opts.Logger, "api"),
	}

	if opts.MinVersion != "" {
		constraint, verErr := semver.NewConstraint(opts.MinVersion)
		if verErr != nil {
			return nil, fmt.Errorf("parsing min version: %w", verErr)
		}
		c.minVersion = constraint
	}

	return c, nil
}

// VersionWarning returns a message when the backend reported an API version
// outside the configured constraint, or "".
func (c *Client) VersionWarning() string {
	return c.versionWarning
}

// do performs one request and decodes the envelope into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, out enveloped) error {
	token, err := c.tokens.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	// path arrives already escaped; keep RawPath so escaped IDs survive.
	u := *c.baseURL
	u.RawPath = strings.TrimRight(c.baseURL.EscapedPath(), "/") + path
	unescaped, err := url.PathUnescape(u.RawPath)
	if err != nil {
		return &TransportError{Op: "build request", Err: err}
	}
	u.Path = unescaped
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return &TransportError{Op: "build request", Err: err}
	}

	requestID := logging.NewTraceID()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	if traceID := logging.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set(HeaderTraceID, traceID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Ctx(ctx).
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Err(err).
			Msg("request failed")
		return &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug().Ctx(ctx).
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	c.checkVersion(ctx, resp.Header.Get(HeaderAPIVersion))

	if resp.StatusCode == http.StatusUnauthorized {
		if discardErr := c.tokens.Discard(); discardErr != nil {
			c.log.Warn().Ctx(ctx).Err(discardErr).Msg("could not discard rejected token")
		}
		return ErrUnauthorized
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &TransportError{Op: "read response", Err: err}
	}

	decodeErr := json.Unmarshal(body, out)
	env := out.envelope()
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	switch {
	case decodeErr != nil && ok:
		return &TransportError{Op: "decode response", Err: decodeErr}
	case decodeErr != nil || (!ok && env.Message == ""):
		return &BusinessError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	case !ok:
		return &BusinessError{StatusCode: resp.StatusCode, Message: env.Message}
	case !env.Success:
		msg := env.Message
		if msg == "" {
			msg = "request was not successful"
		}
		return &BusinessError{StatusCode: resp.StatusCode, Message: msg}
	}
	return nil
}

// checkVersion compares the backend's advertised API version with the
// configured constraint, once per client.
func (c *Client) checkVersion(ctx context.Context, advertised string) {
	if c.minVersion == nil || advertised == "" {
		return
	}
	c.versionOnce.Do(func() {
		v, err := semver.NewVersion(advertised)
		if err != nil {
			c.versionWarning = fmt.Sprintf("backend reported invalid API version %q", advertised)
		} else if !c.minVersion.Check(v) {
			c.versionWarning = fmt.Sprintf("backend API version %s does not satisfy %s", v, c.minVersion)
		}
		if c.versionWarning != "" {
			c.log.Warn().Ctx(ctx).Str("api_version", advertised).Msg(c.versionWarning)
		}
	})
}
