package scryfall

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestDecodeSuccess(t *testing.T) {
	body := `{"object":"catalog","uri":"https://api.scryfall.com/catalog/powers","total_values":2,"data":["*","1"]}`
	got, err := Decode[*Catalog](200, []byte(body))
	if err != nil {
		t.Fatal(err)
	}
	expect := &Catalog{
		Object:      "catalog",
		URI:         "https://api.scryfall.com/catalog/powers",
		TotalValues: 2,
		Data:        []string{"*", "1"},
	}
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   *ErrorBody
		// details, when set, is a substring of the expected client error details.
		details string
	}{{
		name:   "API error body",
		status: 404,
		body:   `{"object":"error","code":"not_found","status":404,"details":"No card found with the given ID or set code and collector number."}`,
		want: &ErrorBody{
			Object:  "error",
			Code:    "not_found",
			Status:  404,
			Details: "No card found with the given ID or set code and collector number.",
		},
	}, {
		name:   "API error body with type and warnings",
		status: 400,
		body:   `{"object":"error","code":"bad_request","status":400,"type":"ambiguous","details":"Too many cards match.","warnings":["w1"]}`,
		want: &ErrorBody{
			Object:   "error",
			Code:     "bad_request",
			Status:   400,
			Type:     "ambiguous",
			Details:  "Too many cards match.",
			Warnings: []string{"w1"},
		},
	}, {
		name:    "non-JSON error body",
		status:  502,
		body:    `<html>Bad Gateway</html>`,
		details: "decode 502 error body",
	}, {
		name:    "error body without code",
		status:  500,
		body:    `{"object":"error","status":500}`,
		details: "decode 500 error body",
	}, {
		name:    "error body without status",
		status:  429,
		body:    `{"object":"error","code":"too_many_requests"}`,
		details: "decode 429 error body",
	}, {
		name:    "null error body",
		status:  404,
		body:    `null`,
		details: "decode 404 error body",
	}, {
		name:    "empty success body",
		status:  200,
		body:    ``,
		details: "decode 200 response",
	}, {
		name:    "null success body",
		status:  200,
		body:    `null`,
		details: errNullBody.Error(),
	}, {
		name:    "wrong object type",
		status:  200,
		body:    `{"object":"list","data":[]}`,
		details: errMissingObject.Error(),
	}, {
		name:    "missing data",
		status:  200,
		body:    `{"object":"catalog"}`,
		details: errMissingData.Error(),
	}, {
		name:    "wrong data type",
		status:  200,
		body:    `{"object":"catalog","data":[1,2,3]}`,
		details: "cannot unmarshal number",
	}, {
		name:    "error status with success body",
		status:  500,
		body:    `{"object":"catalog","data":[]}`,
		details: "decode 500 error body",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode[*Catalog](tt.status, []byte(tt.body))
			if got != nil {
				t.Fatal("expected nil model")
			}
			eb, ok := AsErrorBody(err)
			if !ok {
				t.Fatal("expected an *ErrorBody, got", err)
			}
			if tt.want != nil {
				if diff := cmp.Diff(tt.want, eb); diff != "" {
					t.Fatal(diff)
				}
				if eb.IsClientError() {
					t.Fatal("expected an API error")
				}
				return
			}
			if !eb.IsClientError() || eb.Status != ClientErrorStatus || eb.Object != "error" {
				t.Fatal("expected a client error", eb)
			}
			if !strings.Contains(eb.Details, tt.details) {
				t.Fatalf("expected details to contain %q, got %q", tt.details, eb.Details)
			}
		})
	}
}

func TestDecodeRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		decode  func() error
		wantErr error
	}{{
		name: "card without id",
		decode: func() error {
			_, err := Decode[*Card](200, []byte(`{"object":"card","name":"Dusk // Dawn"}`))
			return err
		},
		wantErr: errMissingID,
	}, {
		name: "card without name",
		decode: func() error {
			_, err := Decode[*Card](200, []byte(`{"object":"card","id":"f295b713-1d6a-43fd-910d-fb35414bf58a"}`))
			return err
		},
		wantErr: errMissingName,
	}, {
		name: "card list with an invalid card",
		decode: func() error {
			_, err := Decode[*CardList](200, []byte(`{"object":"list","has_more":false,"data":[{"object":"card"}]}`))
			return err
		},
		wantErr: errMissingID,
	}, {
		name: "set without code",
		decode: func() error {
			_, err := Decode[*Set](200, []byte(`{"object":"set","id":"`+uuid.NewString()+`"}`))
			return err
		},
		wantErr: errMissingCode,
	}, {
		name: "bulk data without type",
		decode: func() error {
			_, err := Decode[*BulkData](200, []byte(`{"object":"bulk_data","id":"`+uuid.NewString()+`"}`))
			return err
		},
		wantErr: errMissingType,
	}, {
		name: "symbol without symbol",
		decode: func() error {
			_, err := Decode[*CardSymbol](200, []byte(`{"object":"card_symbol"}`))
			return err
		},
		wantErr: errMissingSymbol,
	}, {
		name: "mana cost with wrong object",
		decode: func() error {
			_, err := Decode[*ManaCost](200, []byte(`{"object":"card"}`))
			return err
		},
		wantErr: errMissingObject,
	}, {
		name: "ruling without comment",
		decode: func() error {
			_, err := Decode[*Ruling](200, []byte(`{"object":"ruling","source":"wotc"}`))
			return err
		},
		wantErr: errMissingComment,
	}, {
		name: "card id that is not an UUID",
		decode: func() error {
			_, err := Decode[*Card](200, []byte(`{"object":"card","id":"xx","name":"x"}`))
			return err
		},
		wantErr: nil, // any client error
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode()
			eb, ok := AsErrorBody(err)
			if !ok || !eb.IsClientError() || eb.Status != ClientErrorStatus {
				t.Fatal("expected a client error, got", err)
			}
			if tt.wantErr != nil && !strings.Contains(eb.Details, tt.wantErr.Error()) {
				t.Fatalf("expected details to contain %q, got %q", tt.wantErr.Error(), eb.Details)
			}
		})
	}
}

func TestDecodeWithNonPointerModel(t *testing.T) {
	got, err := Decode[map[string]any](200, []byte(`{"is_empty":true}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"is_empty": true}, got); diff != "" {
		t.Fatal(diff)
	}
	if _, err := Decode[map[string]any](200, []byte(`null`)); err == nil {
		t.Fatal("expected an error")
	}
}

func FuzzDecode(f *testing.F) {
	f.Add(200, []byte(`{"object":"card","id":"f295b713-1d6a-43fd-910d-fb35414bf58a","name":"Dusk // Dawn"}`))
	f.Add(404, []byte(`{"object":"error","code":"not_found","status":404,"details":"x"}`))
	f.Add(200, []byte(`{"object":"list","data":[{"object":"card"}]}`))
	f.Add(500, []byte(`null`))
	f.Add(200, []byte(`{"object":"card","released_at":"2022-13-45"}`))
	f.Add(0, []byte{})
	f.Fuzz(func(t *testing.T, status int, body []byte) {
		card, err := Decode[*Card](status, body)
		if (card == nil) == (err == nil) {
			t.Fatal("expected exactly one of model and error")
		}
		if err != nil {
			if _, ok := AsErrorBody(err); !ok {
				t.Fatal("expected an *ErrorBody", err)
			}
		}
		list, err := Decode[*CardList](status, body)
		if (list == nil) == (err == nil) {
			t.Fatal("expected exactly one of model and error")
		}
	})
}
