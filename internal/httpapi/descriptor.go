package httpapi

//
// HTTP API descriptor (e.g., GET /cards/search?q=c:red)
//

import (
	"net/http"
	"net/url"
)

// Descriptor contains the parameters for calling a given HTTP
// API (e.g., GET /cards/search).
//
// The zero value of this struct is invalid. Please, fill all the
// fields marked as MANDATORY for correct initialization.
type Descriptor struct {
	// Accept contains the OPTIONAL accept header.
	Accept string

	// ContentType is the OPTIONAL content-type header.
	ContentType string

	// LogBody OPTIONALLY enables logging bodies.
	LogBody bool

	// MaxBodySize is the OPTIONAL maximum response body size. If
	// not set, we use the |DefaultMaxBodySize| constant.
	MaxBodySize int64

	// Method is the MANDATORY request method.
	Method string

	// RequestBody is the OPTIONAL request body.
	RequestBody []byte

	// URLPath is the MANDATORY URL path. Its segments MUST already
	// be escaped, since we append it verbatim to the base URL.
	URLPath string

	// URLQuery is the OPTIONAL query.
	URLQuery url.Values
}

// WithBodyLogging returns a SHALLOW COPY of |Descriptor| with LogBody set to |value|. You SHOULD
// only use this method when initializing the descriptor you want to use.
func (desc *Descriptor) WithBodyLogging(value bool) *Descriptor {
	out := &Descriptor{}
	*out = *desc
	out.LogBody = value
	return out
}

// DefaultMaxBodySize is the default value for the maximum
// body size you can fetch using the httpapi package.
const DefaultMaxBodySize = 1 << 24

// ApplicationJSON is the content-type for JSON
const ApplicationJSON = "application/json"

// NewGETJSONDescriptor is a convenience factory for creating a new descriptor
// that uses the GET method and expects a JSON response.
func NewGETJSONDescriptor(urlPath string, query url.Values) *Descriptor {
	return &Descriptor{
		Accept:      ApplicationJSON,
		ContentType: "",
		LogBody:     false,
		MaxBodySize: DefaultMaxBodySize,
		Method:      http.MethodGet,
		RequestBody: nil,
		URLPath:     urlPath,
		URLQuery:    query,
	}
}

// NewPOSTJSONDescriptor creates a descriptor that POSTs the already
// serialized JSON document |body| and expects a JSON response.
func NewPOSTJSONDescriptor(urlPath string, body []byte) *Descriptor {
	return &Descriptor{
		Accept:      ApplicationJSON,
		ContentType: ApplicationJSON,
		LogBody:     false,
		MaxBodySize: DefaultMaxBodySize,
		Method:      http.MethodPost,
		RequestBody: body,
		URLPath:     urlPath,
		URLQuery:    nil,
	}
}
