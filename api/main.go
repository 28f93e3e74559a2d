// api is a package containing the Client used to query the REST Countries service.
//
// See https://restcountries.com for more information.
package api

import (
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// BaseURL is the REST Countries v2 endpoint every relative path is appended to.
const BaseURL = "https://restcountries.com/v2/"

const tracerName = "github.com/forestvpn/restcountries/api"

// Client is a structure that wraps resty.Client to query REST Countries.
// It holds configuration only and is safe for concurrent use.
type Client struct {
	rest    *resty.Client
	baseURL string
	logger  logrus.FieldLogger
	metrics *Metrics
	tracer  trace.Tracer
}

// Option configures a Client built by GetApiClient.
type Option func(*Client)

// WithBaseURL points the client at a mirror or a test server. It must end with '/'.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = provider.Tracer(tracerName)
	}
}

// WithRestyClient replaces the underlying transport, e.g. to share a connection pool.
func WithRestyClient(rest *resty.Client) Option {
	return func(c *Client) {
		c.rest = rest
	}
}

// GetApiClient is a factory function that returns a configured Client.
// Without options it talks to BaseURL through a fresh resty client and logs nothing.
func GetApiClient(options ...Option) *Client {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	c := &Client{
		baseURL: BaseURL,
		logger:  silent,
		tracer:  otel.Tracer(tracerName),
	}

	for _, option := range options {
		option(c)
	}

	if c.rest == nil {
		c.rest = resty.New().SetLogger(c.logger)
	}

	return c
}

var defaultClient = GetApiClient()

// Default returns a shared Client with default settings.
func Default() *Client {
	return defaultClient
}
