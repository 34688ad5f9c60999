package scryfall

//
// Resource descriptors and the request builder.
//

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/mtgkit/scryfall-go/internal/httpapi"
)

// RequestSpec is the concrete HTTP request derived from a [Resource].
type RequestSpec struct {
	// Name is a stable label for the operation (e.g., "cards.search")
	// used in logs, metrics and traces.
	Name string

	// Method is the HTTP method.
	Method string

	// Path is the escaped URL path relative to the base URL.
	Path string

	// Query contains the query parameters. [url.Values.Encode] sorts
	// them by key, hence the resulting URL is deterministic.
	Query url.Values

	// Body is the OPTIONAL serialized JSON body.
	Body []byte

	// URL is the full URL. It is only set by [Build].
	URL string

	// Err is non-nil when the resource cannot be turned into a request
	// (e.g., a [NextCardPage] with an unparseable URL). Clients fail
	// such requests with a client error without any network I/O.
	Err error
}

// descriptor converts the request into an [*httpapi.Descriptor].
func (rs RequestSpec) descriptor() *httpapi.Descriptor {
	if len(rs.Body) > 0 {
		desc := httpapi.NewPOSTJSONDescriptor(rs.Path, rs.Body)
		desc.Method = rs.Method
		desc.URLQuery = rs.Query
		return desc
	}
	desc := httpapi.NewGETJSONDescriptor(rs.Path, rs.Query)
	desc.Method = rs.Method
	return desc
}

// Resource is an API endpoint returning the model M.
//
// The set of resources is closed: it mirrors the endpoints documented by
// Scryfall and only types defined in this package implement it.
type Resource[M any] interface {
	// RequestSpec returns the request for this resource. The URL
	// field is left empty; use [Build] to obtain a complete spec.
	RequestSpec() RequestSpec

	// model binds the resource to M.
	model() M
}

// Build returns the [RequestSpec] for sending res to baseURL. This function
// is pure: the same inputs always produce the same output.
func Build[M any](res Resource[M], baseURL string) RequestSpec {
	spec := res.RequestSpec()
	if spec.Err != nil {
		return spec
	}
	spec.URL = httpapi.ComposeURL(baseURL, spec.Path, spec.Query)
	return spec
}

// resourcePath joins the given segments into an absolute path, escaping
// each segment such that caller-supplied values cannot inject separators,
// a query or dot segments.
func resourcePath(segments ...string) string {
	var sb strings.Builder
	for _, seg := range segments {
		sb.WriteString("/")
		sb.WriteString(escapeSegment(seg))
	}
	return sb.String()
}

// escapeSegment escapes a single path segment. The "." and ".." segments
// are percent-encoded, otherwise servers would resolve them.
func escapeSegment(seg string) string {
	switch seg {
	case ".":
		return "%2E"
	case "..":
		return "%2E%2E"
	default:
		return url.PathEscape(seg)
	}
}

// itoa is a shorthand for strconv.Itoa.
func itoa(v int) string {
	return strconv.Itoa(v)
}

// getSpec returns a GET [RequestSpec].
func getSpec(name string, query url.Values, segments ...string) RequestSpec {
	return RequestSpec{
		Name:   name,
		Method: "GET",
		Path:   resourcePath(segments...),
		Query:  query,
	}
}
