// Package testingx contains code useful for testing.
package testingx

import (
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/mtgkit/scryfall-go/internal/runtimex"
)

// MustNewHTTPServer creates a new HTTP server using the given handler. The
// caller MUST call Close when done using the server.
func MustNewHTTPServer(handler http.Handler) *httptest.Server {
	srv := httptest.NewServer(handler)
	runtimex.PanicIfFalse(srv.URL != "", "MustNewHTTPServer: empty URL")
	return srv
}

// MustNewUnreachableURL returns the URL of a server that was listening
// and has been closed, such that connecting to it fails.
func MustNewUnreachableURL() string {
	srv := MustNewHTTPServer(http.NotFoundHandler())
	URL := srv.URL
	srv.Close()
	return URL
}

// HTTPHandlerJSON returns a handler that replies with the given status
// code and body using the application/json content-type.
func HTTPHandlerJSON(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// HTTPHandlerReset returns a handler that closes the underlying
// connection without sending any response.
func HTTPHandlerReset() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hijacker := w.(http.Hijacker)
		conn, _, err := hijacker.Hijack()
		runtimex.PanicOnError(err, "hijacker.Hijack failed")
		if tc, ok := conn.(*net.TCPConn); ok {
			_ = tc.SetLinger(0)
		}
		conn.Close()
	})
}

// RecordedRequest is a request observed by [*HTTPRecorder].
type RecordedRequest struct {
	Method   string
	Path     string
	RawPath  string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// HTTPRecorder is an [http.Handler] that saves each request and then
// delegates to the wrapped Handler.
type HTTPRecorder struct {
	// Handler is the MANDATORY handler producing the response.
	Handler http.Handler

	mu       sync.Mutex
	requests []*RecordedRequest
}

// ServeHTTP implements http.Handler.
func (hr *HTTPRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body := runtimex.Try1(io.ReadAll(r.Body))
	hr.mu.Lock()
	hr.requests = append(hr.requests, &RecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawPath:  r.URL.EscapedPath(),
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})
	hr.mu.Unlock()
	hr.Handler.ServeHTTP(w, r)
}

// Requests returns a copy of the requests seen so far.
func (hr *HTTPRecorder) Requests() []*RecordedRequest {
	hr.mu.Lock()
	defer hr.mu.Unlock()
	out := make([]*RecordedRequest, len(hr.requests))
	copy(out, hr.requests)
	return out
}
