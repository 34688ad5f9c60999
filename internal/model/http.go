package model

//
// HTTP definitions
//

import "net/http"

// HTTPClient is the subset of *http.Client we depend on. Any value with
// a compatible Do method may be used, including instrumented clients and
// test doubles. Implementations MUST be safe for concurrent use.
type HTTPClient interface {
	// Do sends the request and returns the response or an error.
	Do(req *http.Request) (*http.Response, error)

	// CloseIdleConnections closes the idle connections in the pool.
	CloseIdleConnections()
}

// HTTPHeaderUserAgent is the default User-Agent sent to the API. The
// Scryfall documentation asks clients to identify themselves.
const HTTPHeaderUserAgent = "scryfall-go/1.0"
