package httpapi

//
// Calling HTTP APIs.
//

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mtgkit/scryfall-go/internal/iox"
)

// joinURLPath appends |resourcePath| to |urlPath|.
func joinURLPath(urlPath, resourcePath string) string {
	if resourcePath == "" {
		if urlPath == "" {
			return "/"
		}
		return urlPath
	}
	if !strings.HasSuffix(urlPath, "/") {
		urlPath += "/"
	}
	resourcePath = strings.TrimPrefix(resourcePath, "/")
	return urlPath + resourcePath
}

// ComposeURL returns the URL obtained by joining |baseURL| with |urlPath|
// and appending the encoded |query|. Any query or fragment in |baseURL| is
// discarded. This function is pure and does not validate its inputs: an
// invalid |baseURL| is detected later, when we create the request.
func ComposeURL(baseURL, urlPath string, query url.Values) string {
	if idx := strings.IndexAny(baseURL, "?#"); idx >= 0 {
		baseURL = baseURL[:idx]
	}
	out := joinURLPath(baseURL, urlPath)
	if len(query) > 0 {
		out += "?" + query.Encode()
	}
	return out
}

// newRequest creates a new http.Request from the given |ctx|, |endpoint|, and |desc|.
func newRequest(ctx context.Context, endpoint *Endpoint, desc *Descriptor) (*http.Request, error) {
	URL := ComposeURL(endpoint.BaseURL, desc.URLPath, desc.URLQuery)
	var reqBody io.Reader
	if len(desc.RequestBody) > 0 {
		reqBody = bytes.NewReader(desc.RequestBody)
		endpoint.Logger.Debugf("httpapi: request body length: %d", len(desc.RequestBody))
		if desc.LogBody {
			endpoint.Logger.Debugf("httpapi: request body: %s", string(desc.RequestBody))
		}
	}
	request, err := http.NewRequestWithContext(ctx, desc.Method, URL, reqBody)
	if err != nil {
		return nil, err
	}
	for key, values := range endpoint.Header {
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}
	if desc.ContentType != "" {
		request.Header.Set("Content-Type", desc.ContentType)
	}
	if desc.Accept != "" {
		request.Header.Set("Accept", desc.Accept)
	}
	if endpoint.UserAgent != "" {
		request.Header.Set("User-Agent", endpoint.UserAgent)
	}
	return request, nil
}

// Response is the raw result of a round trip.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// ContentType is the value of the Content-Type header.
	ContentType string

	// Body is the whole response body.
	Body []byte
}

// docall calls the API represented by the given request |req| on the given |endpoint|
// and returns the response and its body or an error.
func docall(endpoint *Endpoint, desc *Descriptor, request *http.Request) (*Response, error) {
	endpoint.Logger.Debugf("httpapi: %s %s", request.Method, request.URL.String())
	response, err := endpoint.HTTPClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	// Implementation note: always read and log the response body since
	// it's quite useful to see the response JSON on API error.
	maxBodySize := desc.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize // as documented
	}
	data, err := iox.ReadAllLimited(request.Context(), response.Body, maxBodySize)
	if err != nil {
		return nil, err
	}
	endpoint.Logger.Debugf("httpapi: response status: %d", response.StatusCode)
	endpoint.Logger.Debugf("httpapi: response body length: %d bytes", len(data))
	if desc.LogBody {
		endpoint.Logger.Debugf("httpapi: response body: %s", string(data))
	}
	resp := &Response{
		StatusCode:  response.StatusCode,
		ContentType: response.Header.Get("Content-Type"),
		Body:        data,
	}
	if desc.Accept == ApplicationJSON && !isJSONContentType(resp.ContentType) {
		endpoint.Logger.Warnf("httpapi: unexpected content-type: %s", resp.ContentType)
		// fallthrough
	}
	return resp, nil
}

// isJSONContentType returns whether |ctype| is a JSON content-type,
// ignoring parameters such as the charset.
func isJSONContentType(ctype string) bool {
	if idx := strings.Index(ctype, ";"); idx >= 0 {
		ctype = ctype[:idx]
	}
	return strings.TrimSpace(strings.ToLower(ctype)) == ApplicationJSON
}

// Call invokes the API described by |desc| on the given HTTP |endpoint| and
// returns the raw response. This function performs a single attempt and
// returns an error only when we could not obtain a complete response (e.g.,
// invalid URL, DNS, connect, TLS, timeout, body too large or truncated).
//
// Note: a status code >= 400 is NOT an error for this function.
func Call(ctx context.Context, desc *Descriptor, endpoint *Endpoint) (*Response, error) {
	request, err := newRequest(ctx, endpoint, desc)
	if err != nil {
		return nil, err
	}
	return docall(endpoint, desc, request)
}
