// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"io"
	"net/http"
	"strings"
)

// MockRoundTripper returns a fixed HTTP response (or error) for every request.
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// RoundTripFunc adapts a function to [http.RoundTripper], letting tests
// dispatch on the request (URL, headers) when a service chains multiple
// upstream calls.
type RoundTripFunc func(*http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// JSONResponse builds an *http.Response with the given status and JSON body.
func JSONResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// EmptyResponse builds an *http.Response with the given status and no body.
func EmptyResponse(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(bytes.NewReader(nil)),
	}
}

// ClientWith wraps a round tripper in an *http.Client for injection into
// service constructors.
func ClientWith(rt http.RoundTripper) *http.Client {
	return &http.Client{Transport: rt}
}
