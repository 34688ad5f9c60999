package scryfall

//
// Blocking client
//

import "context"

// BlockingClient is the Scryfall client for callers that do not use a
// context. Each request blocks until it completes or the timeout configured
// using [WithTimeout] expires. A BlockingClient is safe for concurrent use.
type BlockingClient struct {
	core *core
}

// NewBlocking creates a [*BlockingClient] for [DefaultBaseURL].
func NewBlocking(opts ...Option) *BlockingClient {
	return NewBlockingWithBaseURL(DefaultBaseURL, opts...)
}

// NewBlockingWithBaseURL is like [NewBlocking] but uses the given base URL.
func NewBlockingWithBaseURL(baseURL string, opts ...Option) *BlockingClient {
	return &BlockingClient{core: newCore(baseURL, opts...)}
}

// BaseURL returns the base URL used by the client.
func (c *BlockingClient) BaseURL() string {
	return c.core.baseURL
}

// CloseIdleConnections closes the idle connections of the underlying HTTP client.
func (c *BlockingClient) CloseIdleConnections() {
	c.core.endpoint.HTTPClient.CloseIdleConnections()
}

// RequestBlocking sends res and returns the model M or an [*ErrorBody].
func RequestBlocking[M any](c *BlockingClient, res Resource[M]) (M, error) {
	return do(context.Background(), c.core, res)
}
