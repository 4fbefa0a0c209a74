package sleeper

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
)

const (
	defaultBaseURL   = "https://api.sleeper.app/v1"
	defaultCDNURL    = "https://sleepercdn.com"
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "sleeper-league/1.0"
	maxBodyBytes     = 16 << 20
)

// numberAPI keeps integers such as bracket ids exact.
var numberAPI = sonic.Config{UseNumber: true}.Froze()

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	CDNURL     string
	Timeout    time.Duration
	UserAgent  string
	Logger     *logging.Logger
	// Breaker guards every request; nil disables it.
	Breaker *resilience.CircuitBreaker
}

// Client talks to the public, unauthenticated Sleeper API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cdnURL     string
	userAgent  string
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	cdnURL := strings.TrimRight(strings.TrimSpace(cfg.CDNURL), "/")
	if cdnURL == "" {
		cdnURL = defaultCDNURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		cdnURL:     cdnURL,
		userAgent:  userAgent,
		logger:     logger.Named("sleeper"),
		breaker:    cfg.Breaker,
	}
}

// Request describes one call. Path is joined to the base URL unless it is absolute.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
	Header http.Header
}

// Do executes req once and decodes a 2xx body into target when target is non-nil.
// Every failure, including a body that does not decode, is a *TransportError.
func (c *Client) Do(ctx context.Context, req Request, target any) ([]byte, error) {
	raw, _, err := c.execute(ctx, req)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return raw, nil
	}
	if err := numberAPI.Unmarshal(raw, target); err != nil {
		decodeErr := &TransportError{
			Method:     methodOf(req),
			URL:        c.resolveURL(req),
			StatusCode: http.StatusOK,
			Body:       abbreviateBody(raw),
			Err:        crerr.Wrap(err, "decode sleeper payload"),
		}
		c.logger.WarnContext(ctx, "sleeper response decode failed", "url", decodeErr.URL, "error", err)
		return nil, decodeErr
	}
	return raw, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) ([]byte, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Header: http.Header{"Accept": []string{"application/json"}}}, target)
}

func (c *Client) doRaw(ctx context.Context, fullURL string) ([]byte, string, error) {
	return c.execute(ctx, Request{Method: http.MethodGet, Path: fullURL})
}

func (c *Client) execute(ctx context.Context, req Request) ([]byte, string, error) {
	method := methodOf(req)
	fullURL := c.resolveURL(req)

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, "", c.fail(ctx, &TransportError{Method: method, URL: fullURL, Err: crerr.Wrap(err, "build request")})
	}
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	httpReq.Header.Set("User-Agent", c.userAgent)

	done, err := c.breaker.Acquire()
	if err != nil {
		c.logger.WarnContext(ctx, "sleeper request rejected", "url", fullURL, "circuit", c.breaker.State())
		return nil, "", crerr.Wrapf(ErrUnavailable, "sleeper %s %s: %v", method, fullURL, err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		done(ctx.Err() == nil)
		return nil, "", c.fail(ctx, &TransportError{Method: method, URL: fullURL, Err: crerr.Wrap(err, "send request")})
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		done(true)
		return nil, "", c.fail(ctx, &TransportError{Method: method, URL: fullURL, StatusCode: resp.StatusCode, Err: crerr.Wrap(err, "read response body")})
	}
	raw := append([]byte(nil), buf.B...)
	done(upstreamFailed(resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", c.fail(ctx, &TransportError{Method: method, URL: fullURL, StatusCode: resp.StatusCode, Body: abbreviateBody(raw)})
	}

	c.logger.DebugContext(ctx, "sleeper request completed", "url", fullURL, "status", resp.StatusCode, "bytes", len(raw))
	return raw, resp.Header.Get("Content-Type"), nil
}

// upstreamFailed reports statuses that count against the circuit breaker.
// Client errors such as 404 mean the upstream is healthy.
func upstreamFailed(status int) bool {
	return status >= http.StatusInternalServerError || status == http.StatusTooManyRequests
}

func (c *Client) fail(ctx context.Context, err *TransportError) error {
	c.logger.WarnContext(ctx, "sleeper request failed", "url", err.URL, "status", err.StatusCode, "error", err)
	return err
}

func (c *Client) resolveURL(req Request) string {
	fullURL := req.Path
	if !strings.HasPrefix(fullURL, "http://") && !strings.HasPrefix(fullURL, "https://") {
		fullURL = c.baseURL + "/" + strings.TrimLeft(fullURL, "/")
	}
	if encoded := req.Query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}
	return fullURL
}

func methodOf(req Request) string {
	if req.Method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(req.Method)
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func pathEscape(segment string) string {
	return url.PathEscape(strings.TrimSpace(segment))
}

func requireID(kind, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalidInput("%s is required", kind)
	}
	return nil
}
