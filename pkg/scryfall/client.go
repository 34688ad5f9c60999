package scryfall

//
// Context-aware client
//

import (
	"context"
	"time"

	"github.com/mtgkit/scryfall-go/internal/httpapi"
	"github.com/mtgkit/scryfall-go/internal/model"
	"go.opentelemetry.io/otel/trace"
)

// core is the machinery shared by [Client] and [BlockingClient].
type core struct {
	baseURL  string
	endpoint *httpapi.Endpoint
	logBody  bool
	logger   model.Logger
	metrics  *Metrics
	timeout  time.Duration
	tracer   trace.Tracer
}

// newCore creates a core for baseURL.
func newCore(baseURL string, opts ...Option) *core {
	cfg := newConfig(opts...)
	return &core{
		baseURL: baseURL,
		endpoint: &httpapi.Endpoint{
			BaseURL:    baseURL,
			Header:     cfg.header,
			HTTPClient: cfg.httpClient,
			Logger:     cfg.logger,
			UserAgent:  cfg.userAgent,
		},
		logBody: cfg.logBody,
		logger:  cfg.logger,
		metrics: cfg.metrics,
		timeout: cfg.timeout,
		tracer:  cfg.tracerProvider.Tracer(tracerName),
	}
}

// do sends res and decodes the response. The returned error is always
// an [*ErrorBody]. This function is safe for concurrent use.
func do[M any](ctx context.Context, c *core, res Resource[M]) (M, error) {
	spec := Build(res, c.baseURL)
	ctx, span := c.tracer.Start(
		ctx,
		"scryfall "+spec.Name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(spanAttributes(spec)...),
	)
	done := c.metrics.begin(spec.Name)
	c.logger.Debugf("scryfall: %s %s...", spec.Name, spec.URL)

	value, status, err := roundTrip[M](ctx, c, spec)

	done(status)
	endSpan(span, status, err)
	if err != nil {
		c.logger.Debugf("scryfall: %s %s... %s", spec.Name, spec.URL, err.Error())
		return value, err
	}
	c.logger.Debugf("scryfall: %s %s... %d", spec.Name, spec.URL, status)
	return value, nil
}

// roundTrip performs the HTTP round trip and returns the model, the status
// code we observed (or [ClientErrorStatus]) and the error.
func roundTrip[M any](ctx context.Context, c *core, spec RequestSpec) (M, int, error) {
	var zero M
	if spec.Err != nil {
		return zero, ClientErrorStatus, newClientError(spec.Err)
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	desc := spec.descriptor().WithBodyLogging(c.logBody)
	resp, err := httpapi.Call(ctx, desc, c.endpoint)
	if err != nil {
		return zero, ClientErrorStatus, newClientError(err)
	}
	value, err := Decode[M](resp.StatusCode, resp.Body)
	if eb, ok := AsErrorBody(err); ok && eb.IsClientError() {
		return value, ClientErrorStatus, err
	}
	return value, resp.StatusCode, err
}

// Client is the context-aware Scryfall client. Use [Request] or [RequestAsync]
// to send requests. A Client is safe for concurrent use by multiple goroutines.
type Client struct {
	core *core
}

// New creates a [*Client] for [DefaultBaseURL].
func New(opts ...Option) *Client {
	return NewWithBaseURL(DefaultBaseURL, opts...)
}

// NewWithBaseURL is like [New] but uses the given base URL, which is
// useful for testing and for going through a proxy. An invalid base URL
// is not reported here but causes every request to fail with a client error.
func NewWithBaseURL(baseURL string, opts ...Option) *Client {
	return &Client{core: newCore(baseURL, opts...)}
}

// BaseURL returns the base URL used by the client.
func (c *Client) BaseURL() string {
	return c.core.baseURL
}

// CloseIdleConnections closes the idle connections of the underlying HTTP client.
func (c *Client) CloseIdleConnections() {
	c.core.endpoint.HTTPClient.CloseIdleConnections()
}

// Request sends res and returns the model M or an [*ErrorBody]. The calling
// goroutine waits for the response. Canceling ctx interrupts the request
// and produces a client error.
func Request[M any](ctx context.Context, c *Client, res Resource[M]) (M, error) {
	return do(ctx, c.core, res)
}

// Result is the result delivered by [RequestAsync].
type Result[M any] struct {
	// Model is the model, set when Err is nil.
	Model M

	// Err is nil or an [*ErrorBody].
	Err error
}

// RequestAsync is like [Request] but runs in a background goroutine. The
// returned channel receives exactly one [Result] and is then closed.
func RequestAsync[M any](ctx context.Context, c *Client, res Resource[M]) <-chan Result[M] {
	out := make(chan Result[M], 1)
	go func() {
		defer close(out)
		value, err := Request(ctx, c, res)
		out <- Result[M]{Model: value, Err: err}
	}()
	return out
}
