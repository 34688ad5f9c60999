package scryfall

import (
	"net/http"
	"time"

	"github.com/mtgkit/scryfall-go/internal/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is the base URL of the Scryfall API.
const DefaultBaseURL = "https://api.scryfall.com"

// DefaultTimeout is the default timeout of each request.
const DefaultTimeout = 30 * time.Second

// config contains the settings shared by both client flavors.
type config struct {
	header         http.Header
	httpClient     model.HTTPClient
	logBody        bool
	logger         model.Logger
	metrics        *Metrics
	timeout        time.Duration
	tracerProvider trace.TracerProvider
	userAgent      string
}

// newConfig returns the default config modified by opts.
func newConfig(opts ...Option) *config {
	cfg := &config{
		header:         http.Header{},
		httpClient:     nil, // lazily created below
		logBody:        false,
		logger:         model.DiscardLogger,
		metrics:        nil,
		timeout:        DefaultTimeout,
		tracerProvider: nil, // lazily created below
		userAgent:      model.HTTPHeaderUserAgent,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{}
	}
	if cfg.tracerProvider == nil {
		cfg.tracerProvider = otel.GetTracerProvider()
	}
	return cfg
}

// Option configures a client.
type Option func(cfg *config)

// WithHTTPClient sets the HTTP client to use. By default we use a new
// [*http.Client] with the default transport.
func WithHTTPClient(client model.HTTPClient) Option {
	return func(cfg *config) {
		if client != nil {
			cfg.httpClient = client
		}
	}
}

// WithTimeout sets the timeout of each request, including reading the
// response body. A zero or negative value disables the timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) {
		cfg.timeout = timeout
	}
}

// WithLogger sets the logger. By default we discard logs. The
// logger of github.com/apex/log satisfies [model.Logger].
func WithLogger(logger model.Logger) Option {
	return func(cfg *config) {
		cfg.logger = model.ValidLoggerOrDefault(logger)
	}
}

// WithBodyLogging enables logging request and response bodies
// at the debug level.
func WithBodyLogging(enabled bool) Option {
	return func(cfg *config) {
		cfg.logBody = enabled
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cfg *config) {
		cfg.userAgent = ua
	}
}

// WithHeader adds a header to every request. The Accept and User-Agent
// headers are always set by the client and cannot be overridden here.
func WithHeader(key, value string) Option {
	return func(cfg *config) {
		cfg.header.Add(key, value)
	}
}

// WithMetrics records prometheus metrics (see [NewMetrics]).
func WithMetrics(metrics *Metrics) Option {
	return func(cfg *config) {
		cfg.metrics = metrics
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider. By default we
// use the global provider returned by [otel.GetTracerProvider].
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(cfg *config) {
		cfg.tracerProvider = tp
	}
}
