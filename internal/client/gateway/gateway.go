package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dpbr/dpbr-client/internal/client/config"
	"github.com/dpbr/dpbr-client/internal/client/token"
	"github.com/dpbr/dpbr-client/internal/common"
	"github.com/dpbr/dpbr-client/internal/logging"
	"github.com/go-resty/resty/v2"
)

// Fixed user-facing messages for failures that carry no server text.
const (
	MessageTimeout         = "request timed out, please try again"
	MessageNetwork         = "network error, please try again"
	MessageInvalidResponse = "invalid response from server"
)

// TokenSource yields the stored access token, or "" when there is none.
type TokenSource interface {
	AccessToken(ctx context.Context) string
}

// Request describes one backend call. Method defaults to GET.
type Request struct {
	Method   string
	Endpoint string
	Query    url.Values

	// Body is sent as JSON. Form, when set, wins and is sent
	// form-encoded instead.
	Body any
	Form url.Values

	Headers map[string]string

	// Token overrides the TokenSource for this call. Anonymous suppresses
	// the Authorization header altogether.
	Token     string
	Anonymous bool
}

// Raw is the envelope before the body is decoded.
type Raw struct {
	Success bool
	Status  int
	Body    []byte
	Message string
}

type Option func(*Gateway)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(g *Gateway) { g.hc = hc }
}

// WithClock replaces time.Now for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) { g.now = now }
}

type Gateway struct {
	rc      *resty.Client
	hc      *http.Client
	baseURL string
	prefix  string
	timeout time.Duration
	tokens  TokenSource
	log     logging.Logger
	now     func() time.Time
}

// New validates cfg and builds a Gateway. tokens may be nil.
func New(cfg *config.Config, tokens TokenSource, log logging.Logger, opts ...Option) (*Gateway, error) {
	if cfg == nil {
		return nil, config.ErrBaseURLNotSet
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	if log == nil {
		log = logging.Discard()
	}

	g := &Gateway{
		hc:      &http.Client{},
		baseURL: cfg.BaseURL(),
		prefix:  cfg.Prefix(),
		timeout: cfg.RequestTimeout,
		tokens:  tokens,
		log:     log.With("component", "gateway"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.rc = resty.NewWithClient(g.hc).SetLogger(restyLogger{log: g.log})
	return g, nil
}

// BuildURL joins base URL, prefix and endpoint with exactly one slash at
// each seam.
func (g *Gateway) BuildURL(endpoint string) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return g.baseURL + g.prefix + endpoint
}

// Do performs req and returns the undecoded envelope.
func (g *Gateway) Do(ctx context.Context, req Request) Raw {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	target := g.BuildURL(req.Endpoint)

	r := g.rc.R().SetContext(ctx)
	if req.Form != nil {
		r.SetFormDataFromValues(req.Form)
	} else {
		r.SetHeader("Content-Type", "application/json")
		if req.Body != nil {
			r.SetBody(req.Body)
		}
	}
	for k, v := range req.Headers {
		r.SetHeader(k, v)
	}
	if req.Query != nil {
		r.SetQueryParamsFromValues(req.Query)
	}
	if tok := g.bearer(ctx, req); tok != "" {
		r.SetHeader(common.AuthorizationHeaderName, common.BearerScheme+tok)
	}

	g.log.Debug(ctx, "api request", "method", method, "url", target)

	resp, err := r.Execute(method, target)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			g.log.Warn(ctx, "api request aborted", "method", method, "url", target, "err", err)
			return Raw{Message: MessageTimeout}
		}
		g.log.Warn(ctx, "api request failed", "method", method, "url", target, "err", err)
		return Raw{Message: MessageNetwork}
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		msg := errorMessage(status, resp.Header().Get("Content-Type"), resp.Body())
		g.log.Debug(ctx, "api error response", "method", method, "url", target, "status", status)
		return Raw{Status: status, Message: msg}
	}

	return Raw{Success: true, Status: status, Body: resp.Body()}
}

func (g *Gateway) bearer(ctx context.Context, req Request) string {
	switch {
	case req.Anonymous:
		return ""
	case req.Token != "":
		return req.Token
	case g.tokens == nil:
		return ""
	}

	tok := g.tokens.AccessToken(ctx)
	if tok == "" || !token.Usable(tok, g.now()) {
		return ""
	}
	return tok
}

// restyLogger routes resty's own diagnostics into the client logger. The
// gateway logs outcomes itself, so these stay at debug level.
type restyLogger struct {
	log logging.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Debug(context.Background(), "resty: "+fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Debug(context.Background(), "resty: "+fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug(context.Background(), "resty: "+fmt.Sprintf(format, v...))
}
