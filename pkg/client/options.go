package client

import (
	"io"
	"log/slog"
	"time"

	"github.com/kjanat/restpki/client/pkg/api"
)

const defaultUserAgent = "restpki-go-client"

// Options configures the client behavior.
type Options struct {
	timeout      time.Duration
	httpClient   api.HttpRequestDoer
	maxRetries   int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	userAgent    string
	logger       *slog.Logger
}

func defaultOptions() *Options {
	return &Options{
		timeout:      30 * time.Second,
		maxRetries:   0,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 30 * time.Second,
		userAgent:    defaultUserAgent,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures the client.
type Option func(*Options)

// WithTimeout sets the HTTP request timeout. It has no effect when a custom
// HTTP client is supplied with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.timeout = d
	}
}

// WithHTTPClient replaces the default *http.Client, for custom TLS or proxy
// settings.
func WithHTTPClient(doer api.HttpRequestDoer) Option {
	return func(o *Options) {
		o.httpClient = doer
	}
}

// WithMaxRetries sets the maximum number of retry attempts for 5xx answers.
// Default is 0: finalize calls consume their token, so retries are opt-in.
func WithMaxRetries(n int) Option {
	return func(o *Options) {
		o.maxRetries = n
	}
}

// WithRetryWait sets the min/max retry backoff duration.
// Default is 1s min, 30s max.
func WithRetryWait(min, max time.Duration) Option {
	return func(o *Options) {
		o.retryWaitMin = min
		o.retryWaitMax = max
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *Options) {
		o.userAgent = ua
	}
}

// WithLogger traces every outgoing request at debug level. The access token
// is never logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}
