package scryfall

//
// Error objects (see https://scryfall.com/docs/api/errors)
//

import (
	"errors"
	"fmt"
)

const (
	// ClientErrorCode is the code of errors synthesized by this package
	// when we could not obtain or decode a response.
	ClientErrorCode = "CLIENT_ERR"

	// ClientErrorStatus is the status of errors synthesized by this
	// package. It lies outside of the range used by the API.
	ClientErrorStatus = 599
)

// ErrorBody is an error returned by the API or synthesized by this
// package. It implements the error interface.
type ErrorBody struct {
	Object   string   `json:"object"`
	Code     string   `json:"code"`
	Status   int      `json:"status"`
	Details  string   `json:"details"`
	Type     string   `json:"type,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

var _ error = &ErrorBody{}

// Error implements error.
func (e *ErrorBody) Error() string {
	return e.Code + ": " + e.Details
}

// IsClientError returns whether this error was synthesized by this package
// rather than returned by the API.
func (e *ErrorBody) IsClientError() bool {
	return e.Code == ClientErrorCode
}

// AsErrorBody returns the [*ErrorBody] wrapped by err, if any.
func AsErrorBody(err error) (*ErrorBody, bool) {
	var body *ErrorBody
	if errors.As(err, &body) {
		return body, true
	}
	return nil, false
}

// newClientError returns a client error describing err.
func newClientError(err error) *ErrorBody {
	return &ErrorBody{
		Object:  "error",
		Code:    ClientErrorCode,
		Status:  ClientErrorStatus,
		Details: err.Error(),
	}
}

// newClientErrorf is like newClientError but formats the details.
func newClientErrorf(format string, v ...any) *ErrorBody {
	return newClientError(fmt.Errorf(format, v...))
}
