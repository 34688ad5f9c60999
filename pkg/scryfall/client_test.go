package scryfall

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mtgkit/scryfall-go/internal/testingx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// flavor abstracts over the two client flavors, such that we can
// run the same scenarios with both of them.
type flavor struct {
	name       string
	getCard    func(baseURL string, res Resource[*Card], opts ...Option) (*Card, error)
	searchCard func(baseURL string, res Resource[*CardList], opts ...Option) (*CardList, error)
}

var flavors = []flavor{{
	name: "Client",
	getCard: func(baseURL string, res Resource[*Card], opts ...Option) (*Card, error) {
		return Request(context.Background(), NewWithBaseURL(baseURL, opts...), res)
	},
	searchCard: func(baseURL string, res Resource[*CardList], opts ...Option) (*CardList, error) {
		return Request(context.Background(), NewWithBaseURL(baseURL, opts...), res)
	},
}, {
	name: "Client (async)",
	getCard: func(baseURL string, res Resource[*Card], opts ...Option) (*Card, error) {
		result := <-RequestAsync(context.Background(), NewWithBaseURL(baseURL, opts...), res)
		return result.Model, result.Err
	},
	searchCard: func(baseURL string, res Resource[*CardList], opts ...Option) (*CardList, error) {
		result := <-RequestAsync(context.Background(), NewWithBaseURL(baseURL, opts...), res)
		return result.Model, result.Err
	},
}, {
	name: "BlockingClient",
	getCard: func(baseURL string, res Resource[*Card], opts ...Option) (*Card, error) {
		return RequestBlocking(NewBlockingWithBaseURL(baseURL, opts...), res)
	},
	searchCard: func(baseURL string, res Resource[*CardList], opts ...Option) (*CardList, error) {
		return RequestBlocking(NewBlockingWithBaseURL(baseURL, opts...), res)
	},
}}

// mustBeClientError fails the test unless err is a client error.
func mustBeClientError(t *testing.T, err error) *ErrorBody {
	t.Helper()
	eb, ok := AsErrorBody(err)
	if !ok {
		t.Fatal("expected an *ErrorBody, got", err)
	}
	if !eb.IsClientError() || eb.Status != ClientErrorStatus || eb.Code != ClientErrorCode {
		t.Fatal("expected a client error, got", eb)
	}
	return eb
}

func TestClientScenarios(t *testing.T) {
	cardJSON := string(mustReadFixture(t, "card.json"))
	searchJSON := string(mustReadFixture(t, "search.json"))
	notFoundJSON := string(mustReadFixture(t, "not_found.json"))

	for _, fl := range flavors {
		t.Run(fl.name, func(t *testing.T) {
			t.Run("card by id", func(t *testing.T) {
				recorder := &testingx.HTTPRecorder{Handler: testingx.HTTPHandlerJSON(200, cardJSON)}
				srv := testingx.MustNewHTTPServer(recorder)
				defer srv.Close()

				card, err := fl.getCard(srv.URL, CardByID{ID: "f295b713-1d6a-43fd-910d-fb35414bf58a"})
				if err != nil {
					t.Fatal(err)
				}
				if card.Name != "Dusk // Dawn" {
					t.Fatal("unexpected card", card.Name)
				}
				reqs := recorder.Requests()
				if len(reqs) != 1 {
					t.Fatal("expected one request")
				}
				if diff := cmp.Diff("/cards/f295b713-1d6a-43fd-910d-fb35414bf58a", reqs[0].Path); diff != "" {
					t.Fatal(diff)
				}
			})

			t.Run("not found", func(t *testing.T) {
				srv := testingx.MustNewHTTPServer(testingx.HTTPHandlerJSON(404, notFoundJSON))
				defer srv.Close()

				card, err := fl.getCard(srv.URL, CardByID{ID: "00000000-0000-0000-0000-000000000000"})
				if card != nil {
					t.Fatal("expected nil card")
				}
				expect := &ErrorBody{
					Object:  "error",
					Code:    "not_found",
					Status:  404,
					Details: "No card found with the given ID or set code and collector number.",
				}
				eb, ok := AsErrorBody(err)
				if !ok {
					t.Fatal("expected an *ErrorBody, got", err)
				}
				if diff := cmp.Diff(expect, eb); diff != "" {
					t.Fatal(diff)
				}
			})

			t.Run("search with more pages", func(t *testing.T) {
				recorder := &testingx.HTTPRecorder{Handler: testingx.HTTPHandlerJSON(200, searchJSON)}
				srv := testingx.MustNewHTTPServer(recorder)
				defer srv.Close()

				list, err := fl.searchCard(srv.URL, CardSearch{Query: "c:red pow=3"})
				if err != nil {
					t.Fatal(err)
				}
				if !list.HasMore || list.NextPage == nil || len(list.Data) != 2 {
					t.Fatal("unexpected list", list.HasMore, list.NextPage, len(list.Data))
				}
				if diff := cmp.Diff("q=c%3Ared+pow%3D3", recorder.Requests()[0].RawQuery); diff != "" {
					t.Fatal(diff)
				}

				// follow the next page against the same server
				next, err := fl.searchCard(srv.URL, NextCardPage{URL: *list.NextPage})
				if err != nil {
					t.Fatal(err)
				}
				if len(next.Data) != 2 {
					t.Fatal("unexpected next page")
				}
				reqs := recorder.Requests()
				if diff := cmp.Diff("/cards/search", reqs[1].Path); diff != "" {
					t.Fatal(diff)
				}
				if !strings.Contains(reqs[1].RawQuery, "page=2") {
					t.Fatal("expected page=2 in", reqs[1].RawQuery)
				}
			})

			t.Run("unreachable host", func(t *testing.T) {
				card, err := fl.getCard(testingx.MustNewUnreachableURL(), CardByID{ID: "x"})
				if card != nil {
					t.Fatal("expected nil card")
				}
				mustBeClientError(t, err)
			})

			t.Run("missing required fields", func(t *testing.T) {
				srv := testingx.MustNewHTTPServer(testingx.HTTPHandlerJSON(200, `{"object":"card"}`))
				defer srv.Close()

				card, err := fl.getCard(srv.URL, CardByID{ID: "x"})
				if card != nil {
					t.Fatal("expected nil card")
				}
				mustBeClientError(t, err)
			})

			t.Run("connection reset", func(t *testing.T) {
				srv := testingx.MustNewHTTPServer(testingx.HTTPHandlerReset())
				defer srv.Close()

				_, err := fl.getCard(srv.URL, CardByID{ID: "x"})
				mustBeClientError(t, err)
			})

			t.Run("invalid base URL", func(t *testing.T) {
				_, err := fl.getCard("\t\t\t", CardByID{ID: "x"})
				mustBeClientError(t, err)
			})

			t.Run("invalid next page URL", func(t *testing.T) {
				recorder := &testingx.HTTPRecorder{Handler: testingx.HTTPHandlerJSON(200, searchJSON)}
				srv := testingx.MustNewHTTPServer(recorder)
				defer srv.Close()

				_, err := fl.searchCard(srv.URL, NextCardPage{URL: "://"})
				mustBeClientError(t, err)
				if len(recorder.Requests()) != 0 {
					t.Fatal("expected no requests")
				}
			})

			t.Run("timeout", func(t *testing.T) {
				done := make(chan struct{})
				srv := testingx.MustNewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					select {
					case <-done:
					case <-r.Context().Done():
					}
				}))
				defer srv.Close()
				defer close(done)

				_, err := fl.getCard(srv.URL, CardByID{ID: "x"}, WithTimeout(10*time.Millisecond))
				mustBeClientError(t, err)
			})
		})
	}
}

func TestClientHeaders(t *testing.T) {
	recorder := &testingx.HTTPRecorder{Handler: testingx.HTTPHandlerJSON(200, string(mustReadFixture(t, "collection.json")))}
	srv := testingx.MustNewHTTPServer(recorder)
	defer srv.Close()

	client := NewWithBaseURL(
		srv.URL,
		WithUserAgent("deckbuilder/2.1"),
		WithHeader("X-Request-Source", "tests"),
		WithHeader("Accept", "text/html"),
	)
	res := CardCollection{Identifiers: []CardIdentifier{{Name: "Dusk // Dawn"}, {Name: "Not a real card"}}}
	result, err := Request(context.Background(), client, res)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.NotFound) != 1 {
		t.Fatal("expected one not found identifier")
	}

	req := recorder.Requests()[0]
	if req.Method != "POST" {
		t.Fatal("unexpected method", req.Method)
	}
	expectHeaders := map[string]string{
		"Accept":           "application/json",
		"Content-Type":     "application/json",
		"User-Agent":       "deckbuilder/2.1",
		"X-Request-Source": "tests",
	}
	for key, value := range expectHeaders {
		if diff := cmp.Diff(value, req.Header.Get(key)); diff != "" {
			t.Fatal(key, diff)
		}
	}
	expectBody := `{"identifiers":[{"name":"Dusk // Dawn"},{"name":"Not a real card"}]}`
	if diff := cmp.Diff(expectBody, string(req.Body)); diff != "" {
		t.Fatal(diff)
	}
}

func TestClientDefaultUserAgent(t *testing.T) {
	recorder := &testingx.HTTPRecorder{Handler: testingx.HTTPHandlerJSON(200, string(mustReadFixture(t, "mana_cost.json")))}
	srv := testingx.MustNewHTTPServer(recorder)
	defer srv.Close()

	client := NewBlockingWithBaseURL(srv.URL)
	if _, err := RequestBlocking(client, ParseMana{Cost: "{1}{U}{R}"}); err != nil {
		t.Fatal(err)
	}
	req := recorder.Requests()[0]
	if diff := cmp.Diff("scryfall-go/1.0", req.Header.Get("User-Agent")); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff("", req.Header.Get("Content-Type")); diff != "" {
		t.Fatal(diff)
	}
}

func TestRequestWithCanceledContext(t *testing.T) {
	srv := testingx.MustNewHTTPServer(testingx.HTTPHandlerJSON(200, string(mustReadFixture(t, "card.json"))))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := NewWithBaseURL(srv.URL)

	t.Run("Request", func(t *testing.T) {
		card, err := Request(ctx, client, CardByID{ID: "x"})
		if card != nil {
			t.Fatal("expected nil card")
		}
		eb := mustBeClientError(t, err)
		if !strings.Contains(eb.Details, context.Canceled.Error()) {
			t.Fatal("unexpected details", eb.Details)
		}
	})

	t.Run("RequestAsync", func(t *testing.T) {
		results := RequestAsync(ctx, client, CardByID{ID: "x"})
		result := <-results
		mustBeClientError(t, result.Err)
		if _, ok := <-results; ok {
			t.Fatal("expected the channel to be closed")
		}
	})
}

func TestClientIsSafeForConcurrentUse(t *testing.T) {
	srv := testingx.MustNewHTTPServer(testingx.HTTPHandlerJSON(200, string(mustReadFixture(t, "card.json"))))
	defer srv.Close()
	client := NewWithBaseURL(srv.URL)
	defer client.CloseIdleConnections()

	const count = 8
	errch := make(chan error, count)
	wg := &sync.WaitGroup{}
	for idx := 0; idx < count; idx++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := Request(context.Background(), client, CardByCode{Set: "clb", Number: "691"})
			errch <- err
		}()
	}
	wg.Wait()
	close(errch)
	for err := range errch {
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestClientMetrics(t *testing.T) {
	notFoundJSON := string(mustReadFixture(t, "not_found.json"))
	srv := testingx.MustNewHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/sets/bro" {
			testingx.HTTPHandlerJSON(200, `{"object":"set","id":"4219a14e-6701-4ddd-a185-21dc054ab19b","code":"bro"}`).ServeHTTP(w, r)
			return
		}
		testingx.HTTPHandlerJSON(404, notFoundJSON).ServeHTTP(w, r)
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	client := NewBlockingWithBaseURL(srv.URL, WithMetrics(metrics))

	if _, err := RequestBlocking(client, SetByCode{Code: "bro"}); err != nil {
		t.Fatal(err)
	}
	if _, err := RequestBlocking(client, SetByCode{Code: "xxx"}); err == nil {
		t.Fatal("expected an error")
	}
	if _, err := RequestBlocking(client, NextCardPage{}); err == nil {
		t.Fatal("expected an error")
	}

	expect := map[[2]string]float64{
		{"sets.by_code", "200"}:    1,
		{"sets.by_code", "404"}:    1,
		{"cards.next_page", "599"}: 1,
	}
	for labels, value := range expect {
		got := testutil.ToFloat64(metrics.requestsTotal.WithLabelValues(labels[0], labels[1]))
		if got != value {
			t.Fatal(labels, "expected", value, "got", got)
		}
	}
	if got := testutil.ToFloat64(metrics.requestsInflight); got != 0 {
		t.Fatal("expected no inflight requests, got", got)
	}
	if count := testutil.CollectAndCount(metrics.requestDurationSeconds); count != 2 {
		t.Fatal("expected two duration series, got", count)
	}
}

func TestNilMetricsAreValid(t *testing.T) {
	var metrics *Metrics
	done := metrics.begin("cards.by_id")
	done(200)
}

func TestClientTracing(t *testing.T) {
	srv := testingx.MustNewHTTPServer(testingx.HTTPHandlerJSON(404, string(mustReadFixture(t, "not_found.json"))))
	defer srv.Close()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	client := NewWithBaseURL(srv.URL, WithTracerProvider(tp))
	_, err := Request(context.Background(), client, CardByID{ID: "x"})
	if err == nil {
		t.Fatal("expected an error")
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatal("expected one span, got", len(spans))
	}
	span := spans[0]
	if diff := cmp.Diff("scryfall cards.by_id", span.Name()); diff != "" {
		t.Fatal(diff)
	}
	if span.Status().Code != codes.Error {
		t.Fatal("expected error status")
	}
	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	if got := attrs["http.response.status_code"].AsInt64(); got != 404 {
		t.Fatal("unexpected status code", got)
	}
	if got := attrs["url.full"].AsString(); got != srv.URL+"/cards/x" {
		t.Fatal("unexpected URL", got)
	}
	if got := attrs["http.request.method"].AsString(); got != "GET" {
		t.Fatal("unexpected method", got)
	}
}

func TestAsErrorBody(t *testing.T) {
	t.Run("with wrapped error body", func(t *testing.T) {
		eb := newClientError(errors.New("mocked error"))
		wrapped := errors.Join(errors.New("context"), eb)
		got, ok := AsErrorBody(wrapped)
		if !ok || got != eb {
			t.Fatal("expected to find the error body")
		}
		if diff := cmp.Diff("CLIENT_ERR: mocked error", got.Error()); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with other errors", func(t *testing.T) {
		if _, ok := AsErrorBody(errors.New("mocked error")); ok {
			t.Fatal("expected false")
		}
		if _, ok := AsErrorBody(nil); ok {
			t.Fatal("expected false")
		}
	})
}
