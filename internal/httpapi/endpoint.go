package httpapi

//
// HTTP API Endpoint (e.g., https://api.scryfall.com)
//

import (
	"net/http"

	"github.com/mtgkit/scryfall-go/internal/model"
)

// Endpoint models an HTTP endpoint on which you can call
// several HTTP APIs (e.g., https://api.scryfall.com)
// using a given HTTP client.
type Endpoint struct {
	// BaseURL is the MANDATORY endpoint base URL. We will honour the
	// path of this URL and prepend it to the actual path specified inside
	// a |Descriptor.URLPath|. However, we will always discard any query
	// that may have been set in the BaseURL. The only query parameters
	// will be the ones in |Descriptor.URLQuery|.
	BaseURL string

	// Header contains OPTIONAL headers added to every request.
	Header http.Header

	// HTTPClient is the MANDATORY HTTP client to use.
	HTTPClient model.HTTPClient

	// Logger is the MANDATORY logger to use.
	Logger model.Logger

	// UserAgent is the OPTIONAL user agent to use.
	UserAgent string
}
