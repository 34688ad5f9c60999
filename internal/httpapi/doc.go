// Package httpapi contains code for calling HTTP APIs.
//
// We model HTTP APIs as follows:
//
// 1. [Endpoint] is an API endpoint (e.g., https://api.scryfall.com);
//
// 2. [Descriptor] describes the specific API you want to use (e.g.,
// GET /cards/search with some query);
//
// 3. [Call] performs a single round trip and returns the raw status
// code and body, leaving the interpretation of the body to the caller.
//
// Unlike many HTTP helpers, [Call] does not fail on status codes >= 400
// because the API we talk to sends a JSON document describing the error
// and the caller needs to see it.
package httpapi
