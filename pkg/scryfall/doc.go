// Package scryfall is a client for the Scryfall API (https://scryfall.com/docs/api).
//
// Each supported endpoint is a descriptor type implementing [Resource]. The
// type parameter of [Resource] names the model the endpoint returns, so the
// compiler picks the right model for you:
//
//	client := scryfall.New()
//	card, err := scryfall.Request(ctx, client, scryfall.CardByID{ID: "f295b713-1d6a-43fd-910d-fb35414bf58a"})
//
// Every failure is returned as an [*ErrorBody]. Errors reported by the API
// are returned verbatim. Any other failure (DNS, connect, TLS, timeout, or a
// body we cannot decode) is folded into a client error whose code is
// [ClientErrorCode] and whose status is [ClientErrorStatus].
//
// [Client] is the context-aware flavor: [Request] parks the calling goroutine
// while waiting for I/O and honours context cancellation, while [RequestAsync]
// returns a channel that receives the result. [BlockingClient] offers the same
// contract without a context, bounded only by the configured timeout.
//
// This package does not cache, retry, rate limit or paginate on your behalf.
// To fetch the next page of a [CardList], use [NextCardPage].
package scryfall
