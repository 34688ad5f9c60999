package scryfall

//
// Response decoding.
//

import (
	"encoding/json"
	"errors"
	"reflect"
)

// errNullBody indicates that the API returned a JSON null.
var errNullBody = errors.New("scryfall: the response body is null")

// errInvalidErrorBody indicates that the error body lacks the code or the status.
var errInvalidErrorBody = errors.New("scryfall: error body without code or status")

// Decode converts the status code and the body of a response into the
// model M or into an error. The returned error is always an [*ErrorBody].
//
// A 2xx status produces the model, provided that the body is a valid JSON
// document containing all the required fields. Any other status produces the
// [*ErrorBody] sent by the API. A body we cannot decode produces a client
// error (see [ClientErrorCode]). This function never panics.
func Decode[M any](status int, body []byte) (M, error) {
	var zero M
	if status >= 200 && status < 300 {
		model, err := decodeModel[M](body)
		if err != nil {
			return zero, newClientErrorf("decode %d response: %s", status, err.Error())
		}
		return model, nil
	}
	return zero, decodeErrorBody(status, body)
}

// decodeModel unmarshals body into a new M and checks it.
func decodeModel[M any](body []byte) (M, error) {
	var model M
	if err := json.Unmarshal(body, &model); err != nil {
		return model, err
	}
	// Implementation note: "null" is a valid JSON document that leaves a
	// pointer, map or slice nil. We don't want to return nil models.
	if isNil(model) {
		return model, errNullBody
	}
	if v, ok := any(model).(validator); ok {
		if err := v.validate(); err != nil {
			return model, err
		}
	}
	return model, nil
}

// isNil returns whether v is a nil pointer, map, slice or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// decodeErrorBody unmarshals the body of a non-2xx response.
func decodeErrorBody(status int, body []byte) *ErrorBody {
	var eb ErrorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return newClientErrorf("decode %d error body: %s", status, err.Error())
	}
	if eb.Code == "" || eb.Status == 0 {
		return newClientErrorf("decode %d error body: %s", status, errInvalidErrorBody.Error())
	}
	return &eb
}
