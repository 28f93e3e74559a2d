package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	errNotArray  = errors.New("response is not a JSON array")
	errNotObject = errors.New("array element is not a JSON object")
)

// fetch sends a GET request for the relative path and decodes the countries in the response.
// It is the single pipeline behind both the blocking and the async query methods.
func (c *Client) fetch(ctx context.Context, path string) ([]Country, error) {
	url := escapeURL(c.baseURL + path)
	log := c.logger.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"method":     http.MethodGet,
		"url":        url,
	})

	ctx, span := c.tracer.Start(ctx, "restcountries.fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.url", url)),
	)
	defer span.End()

	start := time.Now()
	// resty reads the whole body and closes it before returning, on every path.
	resp, err := c.rest.R().SetContext(ctx).Get(url)
	elapsed := time.Since(start)

	if err != nil {
		err = &TransportError{URL: url, Err: err}
		c.fail(span, log, path, outcomeTransportError, elapsed, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))
	log = log.WithFields(logrus.Fields{"status": resp.StatusCode(), "elapsed": elapsed})

	if resp.StatusCode() != http.StatusOK {
		err = &RequestError{URL: url, StatusCode: resp.StatusCode(), Status: resp.Status()}
		c.fail(span, log, path, outcomeRequestFailed, elapsed, err)
		return nil, err
	}

	countries, err := decodeCountries(resp.Body())

	if err != nil {
		err = newDecodeError(url, resp.Body(), err)
		c.fail(span, log, path, outcomeDecodeFailed, elapsed, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("restcountries.count", len(countries)))
	c.metrics.observe(path, outcomeOK, elapsed, len(countries))
	log.WithField("count", len(countries)).Debug("countries decoded")
	return countries, nil
}

func (c *Client) fail(span trace.Span, log logrus.FieldLogger, path string, outcome string, elapsed time.Duration, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, outcome)
	c.metrics.observe(path, outcome, elapsed, 0)
	log.WithError(err).Warn(outcome)
}

// escapeURL percent-encodes the bytes that cannot appear verbatim in a URL,
// such as '%', '#', spaces and non-ASCII, and leaves the delimiters the path
// builders rely on ('/', '?', '&', '=', ';') untouched.
func escapeURL(raw string) string {
	var b strings.Builder

	for i := 0; i < len(raw); i++ {
		ch := raw[i]

		if isURLByte(ch) {
			b.WriteByte(ch)
			continue
		}

		fmt.Fprintf(&b, "%%%02X", ch)
	}

	return b.String()
}

func isURLByte(ch byte) bool {
	switch {
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
		return true
	}
	return strings.IndexByte("-._~:/?[]@!$&'()*+,;=", ch) >= 0
}

// decodeCountries decodes a JSON array of country objects.
// Keys missing from an object leave the matching fields absent.
func decodeCountries(body []byte) ([]Country, error) {
	var elements []*Country

	if err := json.Unmarshal(body, &elements); err != nil {
		return nil, err
	}

	// "null" unmarshals without error but is not an array
	if elements == nil {
		return nil, errNotArray
	}

	countries := make([]Country, len(elements))

	for i, c := range elements {
		if c == nil {
			return nil, fmt.Errorf("element %d: %w", i, errNotObject)
		}

		countries[i] = *c
	}

	return countries, nil
}
