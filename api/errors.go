package api

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrTransportFailure matches errors where no HTTP response was received.
	ErrTransportFailure = errors.New("transport failure")
	// ErrRequestFailed matches errors for responses with a non-OK status.
	ErrRequestFailed = errors.New("request failed")
	// ErrDecodeFailed matches errors for bodies that are not a JSON array of countries.
	ErrDecodeFailed = errors.New("decode failed")
)

// maxExcerpt bounds the body excerpt kept on a DecodeError.
const maxExcerpt = 256

type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: GET %s: %s", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransportFailure
}

// RequestError is returned when upstream answers with a status other than 200 OK.
type RequestError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: GET %s: status %d", e.URL, e.StatusCode)
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

// DecodeError is returned when the response body cannot be decoded.
// Excerpt holds at most the first 256 bytes of the body, cut on a rune boundary.
type DecodeError struct {
	URL     string
	Excerpt string
	Err     error
}

func newDecodeError(url string, body []byte, err error) *DecodeError {
	excerpt := body

	if len(excerpt) > maxExcerpt {
		n := maxExcerpt

		for n > 0 && !utf8.RuneStart(excerpt[n]) {
			n--
		}

		excerpt = excerpt[:n]
	}

	return &DecodeError{URL: url, Excerpt: string(excerpt), Err: err}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed: GET %s: %s (body: %q)", e.URL, e.Err, e.Excerpt)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecodeFailed
}
