package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kjanat/restpki/client/pkg/api"
)

// Client is a session with a REST PKI endpoint. It holds the endpoint and
// access token and hands out flow objects that drive individual workflows.
//
// A Client is safe for concurrent use by multiple goroutines. The flow
// objects it creates are not.
//
// Do not copy a Client after first use.
type Client struct {
	endpoint string
	raw      *api.ClientWithResponses
	opts     *Options
	retrier  *Retrier
	presets  *PresetCache
}

// New creates a session with the service at endpointURL, authenticating
// every request with accessToken. No network I/O happens here.
func New(endpointURL, accessToken string, opts ...Option) (*Client, error) {
	if endpointURL == "" {
		return nil, errors.New("endpointURL cannot be empty")
	}
	u, err := url.Parse(endpointURL)
	if err != nil {
		return nil, fmt.Errorf("parse endpointURL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.New("endpointURL must be an absolute http(s) URL")
	}
	if accessToken == "" {
		return nil, errors.New("accessToken cannot be empty")
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	// Validate options
	if options.timeout <= 0 {
		return nil, errors.New("timeout must be positive")
	}
	if options.maxRetries < 0 {
		return nil, errors.New("maxRetries cannot be negative")
	}
	if options.retryWaitMin <= 0 {
		return nil, errors.New("retryWaitMin must be positive")
	}
	if options.retryWaitMax <= 0 {
		return nil, errors.New("retryWaitMax must be positive")
	}
	if options.retryWaitMin >= options.retryWaitMax {
		return nil, errors.New("retryWaitMin must be less than retryWaitMax")
	}

	doer := options.httpClient
	if doer == nil {
		doer = &http.Client{
			Timeout: options.timeout,
		}
	}

	// Pre-allocate auth header to avoid allocation on every request
	authHeader := "Bearer " + accessToken
	logger := options.logger
	userAgent := options.userAgent

	rawClient, err := api.NewClientWithResponses(endpointURL,
		api.WithHTTPClient(doer),
		api.WithRequestEditorFn(func(_ context.Context, req *http.Request) error {
			req.Header.Set("Authorization", authHeader)
			req.Header.Set("Accept", "application/json")
			if userAgent != "" {
				req.Header.Set("User-Agent", userAgent)
			}
			return nil
		}),
		api.WithRequestEditorFn(func(ctx context.Context, req *http.Request) error {
			logger.DebugContext(ctx, "restpki request", "method", req.Method, "url", req.URL.Redacted())
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	c := &Client{
		endpoint: strings.TrimSuffix(endpointURL, "/") + "/",
		raw:      rawClient,
		opts:     options,
		retrier:  newRetrier(options),
	}
	c.presets = newPresetCache(c)
	return c, nil
}

// Endpoint returns the normalized endpoint URL, always ending in a slash.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Transport returns the pre-configured API handle. Requests sent through it
// carry the bearer token and the JSON Accept header.
func (c *Client) Transport() *api.ClientWithResponses {
	return c.raw
}

// Presets returns the session's visual positioning preset cache.
func (c *Client) Presets() *PresetCache {
	return c.presets
}

// NewAuthentication starts a fresh authentication attempt.
func (c *Client) NewAuthentication() *Authentication {
	return &Authentication{client: c}
}

// NewPadesSignatureStarter creates a builder for the first PAdES step.
func (c *Client) NewPadesSignatureStarter() *PadesSignatureStarter {
	return &PadesSignatureStarter{client: c}
}

// NewPadesSignatureFinisher creates the handler for the final PAdES step.
func (c *Client) NewPadesSignatureFinisher() *PadesSignatureFinisher {
	return &PadesSignatureFinisher{client: c}
}

// send performs one API call through the retrier and maps failures onto the
// error taxonomy. The caller still checks the success payload.
func send[T api.Envelope](
	ctx context.Context,
	c *Client,
	op string,
	do func() (*http.Response, error),
	parse func(*http.Response) (T, error),
) (T, error) {
	var out T
	err := c.retrier.Do(ctx, func() error {
		httpResp, err := do()
		if err != nil {
			return &RemoteServiceError{Operation: op, Err: err}
		}
		body, err := io.ReadAll(httpResp.Body)
		_ = httpResp.Body.Close()
		if err != nil {
			return &RemoteServiceError{Operation: op, Err: err}
		}
		httpResp.Body = io.NopCloser(bytes.NewReader(body))

		parsed, err := parse(httpResp)
		if err != nil {
			// An error status whose body is not an error model is still an
			// error status.
			if !isSuccess(httpResp.StatusCode) {
				return &RemoteServiceError{
					Operation:  op,
					StatusCode: httpResp.StatusCode,
					Body:       string(body),
					Err:        newUnexpectedStatusError(httpResp.StatusCode),
				}
			}
			return &DecodingError{Operation: op, Field: "body", Err: err}
		}
		if err := checkStatus(op, parsed); err != nil {
			return err
		}
		out = parsed
		return nil
	})
	return out, err
}
