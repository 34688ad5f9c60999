package scryfall

//
// Card endpoints (see https://scryfall.com/docs/api/cards)
//

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/mtgkit/scryfall-go/internal/runtimex"
)

// CardByID is GET /cards/:id.
type CardByID struct {
	ID string
}

var _ Resource[*Card] = CardByID{}

// RequestSpec implements Resource.
func (r CardByID) RequestSpec() RequestSpec {
	return getSpec("cards.by_id", nil, "cards", r.ID)
}

func (CardByID) model() *Card { return nil }

// CardByCode is GET /cards/:code/:number(/:lang).
type CardByCode struct {
	Set    string
	Number string

	// Lang is the OPTIONAL language code (e.g., "ja").
	Lang string
}

var _ Resource[*Card] = CardByCode{}

// RequestSpec implements Resource.
func (r CardByCode) RequestSpec() RequestSpec {
	segments := []string{"cards", r.Set, r.Number}
	if r.Lang != "" {
		segments = append(segments, r.Lang)
	}
	return getSpec("cards.by_code", nil, segments...)
}

func (CardByCode) model() *Card { return nil }

// CardByArenaID is GET /cards/arena/:id.
type CardByArenaID struct {
	ID int
}

var _ Resource[*Card] = CardByArenaID{}

// RequestSpec implements Resource.
func (r CardByArenaID) RequestSpec() RequestSpec {
	return getSpec("cards.by_arena_id", nil, "cards", "arena", itoa(r.ID))
}

func (CardByArenaID) model() *Card { return nil }

// CardByMTGOID is GET /cards/mtgo/:id.
type CardByMTGOID struct {
	ID int
}

var _ Resource[*Card] = CardByMTGOID{}

// RequestSpec implements Resource.
func (r CardByMTGOID) RequestSpec() RequestSpec {
	return getSpec("cards.by_mtgo_id", nil, "cards", "mtgo", itoa(r.ID))
}

func (CardByMTGOID) model() *Card { return nil }

// CardByMultiverseID is GET /cards/multiverse/:id.
type CardByMultiverseID struct {
	ID int
}

var _ Resource[*Card] = CardByMultiverseID{}

// RequestSpec implements Resource.
func (r CardByMultiverseID) RequestSpec() RequestSpec {
	return getSpec("cards.by_multiverse_id", nil, "cards", "multiverse", itoa(r.ID))
}

func (CardByMultiverseID) model() *Card { return nil }

// CardByTCGPlayerID is GET /cards/tcgplayer/:id.
type CardByTCGPlayerID struct {
	ID int
}

var _ Resource[*Card] = CardByTCGPlayerID{}

// RequestSpec implements Resource.
func (r CardByTCGPlayerID) RequestSpec() RequestSpec {
	return getSpec("cards.by_tcgplayer_id", nil, "cards", "tcgplayer", itoa(r.ID))
}

func (CardByTCGPlayerID) model() *Card { return nil }

// CardByCardmarketID is GET /cards/cardmarket/:id.
type CardByCardmarketID struct {
	ID int
}

var _ Resource[*Card] = CardByCardmarketID{}

// RequestSpec implements Resource.
func (r CardByCardmarketID) RequestSpec() RequestSpec {
	return getSpec("cards.by_cardmarket_id", nil, "cards", "cardmarket", itoa(r.ID))
}

func (CardByCardmarketID) model() *Card { return nil }

// CardNamed is GET /cards/named. When Exact is set we perform an exact
// lookup, otherwise a fuzzy lookup using Fuzzy.
type CardNamed struct {
	Exact string
	Fuzzy string

	// Set OPTIONALLY restricts the lookup to a set code.
	Set string
}

var _ Resource[*Card] = CardNamed{}

// RequestSpec implements Resource.
func (r CardNamed) RequestSpec() RequestSpec {
	query := url.Values{}
	if r.Exact != "" {
		query.Set("exact", r.Exact)
	} else {
		query.Set("fuzzy", r.Fuzzy)
	}
	if r.Set != "" {
		query.Set("set", r.Set)
	}
	return getSpec("cards.named", query, "cards", "named")
}

func (CardNamed) model() *Card { return nil }

// RandomCard is GET /cards/random. Query OPTIONALLY filters the
// candidate cards using the full text search syntax.
type RandomCard struct {
	Query string
}

var _ Resource[*Card] = RandomCard{}

// RequestSpec implements Resource.
func (r RandomCard) RequestSpec() RequestSpec {
	var query url.Values
	if r.Query != "" {
		query = url.Values{"q": {r.Query}}
	}
	return getSpec("cards.random", query, "cards", "random")
}

func (RandomCard) model() *Card { return nil }

// UniqueMode is the strategy for omitting similar cards from a search.
type UniqueMode string

// The available unique modes. The API default is [UniqueCards].
const (
	UniqueCards  = UniqueMode("cards")
	UniqueArt    = UniqueMode("art")
	UniquePrints = UniqueMode("prints")
)

// SortOrder is the sort order of a search.
type SortOrder string

// The available sort orders. The API default is [OrderName].
const (
	OrderName      = SortOrder("name")
	OrderSet       = SortOrder("set")
	OrderReleased  = SortOrder("released")
	OrderRarity    = SortOrder("rarity")
	OrderColor     = SortOrder("color")
	OrderUSD       = SortOrder("usd")
	OrderTix       = SortOrder("tix")
	OrderEUR       = SortOrder("eur")
	OrderCMC       = SortOrder("cmc")
	OrderPower     = SortOrder("power")
	OrderToughness = SortOrder("toughness")
	OrderEDHREC    = SortOrder("edhrec")
	OrderPenny     = SortOrder("penny")
	OrderArtist    = SortOrder("artist")
	OrderReview    = SortOrder("review")
)

// SortDir is the direction of a sort.
type SortDir string

// The available sort directions.
const (
	DirAuto = SortDir("auto")
	DirAsc  = SortDir("asc")
	DirDesc = SortDir("desc")
)

// CardSearch is GET /cards/search. The Query uses the Scryfall full
// text search syntax and is sent verbatim. The zero value of every
// other field means "use the API default" and is not sent.
type CardSearch struct {
	Query               string
	Unique              UniqueMode
	Order               SortOrder
	Dir                 SortDir
	IncludeExtras       bool
	IncludeMultilingual bool
	IncludeVariations   bool
	Page                int
}

var _ Resource[*CardList] = CardSearch{}

// RequestSpec implements Resource.
func (r CardSearch) RequestSpec() RequestSpec {
	query := url.Values{"q": {r.Query}}
	if r.Unique != "" {
		query.Set("unique", string(r.Unique))
	}
	if r.Order != "" {
		query.Set("order", string(r.Order))
	}
	if r.Dir != "" {
		query.Set("dir", string(r.Dir))
	}
	if r.IncludeExtras {
		query.Set("include_extras", "true")
	}
	if r.IncludeMultilingual {
		query.Set("include_multilingual", "true")
	}
	if r.IncludeVariations {
		query.Set("include_variations", "true")
	}
	if r.Page > 0 {
		query.Set("page", itoa(r.Page))
	}
	return getSpec("cards.search", query, "cards", "search")
}

func (CardSearch) model() *CardList { return nil }

// NextCardPage fetches the page of results pointed to by the next_page
// field of a [CardList]. We only honour the path and the query of URL and
// send them to the client's base URL, so mocks and proxies keep working.
type NextCardPage struct {
	URL string
}

var _ Resource[*CardList] = NextCardPage{}

// RequestSpec implements Resource.
func (r NextCardPage) RequestSpec() RequestSpec {
	spec := RequestSpec{Name: "cards.next_page", Method: "GET"}
	URL, err := url.Parse(r.URL)
	if err != nil {
		spec.Err = err
		return spec
	}
	if URL.Path == "" {
		spec.Err = fmt.Errorf("scryfall: next page URL without path: %q", r.URL)
		return spec
	}
	spec.Path = URL.EscapedPath()
	query := URL.Query()
	if len(query) > 0 {
		spec.Query = query
	}
	return spec
}

func (NextCardPage) model() *CardList { return nil }

// CardAutocomplete is GET /cards/autocomplete.
type CardAutocomplete struct {
	Query         string
	IncludeExtras bool
}

var _ Resource[*Catalog] = CardAutocomplete{}

// RequestSpec implements Resource.
func (r CardAutocomplete) RequestSpec() RequestSpec {
	query := url.Values{"q": {r.Query}}
	if r.IncludeExtras {
		query.Set("include_extras", "true")
	}
	return getSpec("cards.autocomplete", query, "cards", "autocomplete")
}

func (CardAutocomplete) model() *Catalog { return nil }

// CardIdentifier identifies a card in a [CardCollection] request. Set
// exactly one of the documented combinations, for example ID, Name, or
// Set plus CollectorNumber.
type CardIdentifier struct {
	ID              string `json:"id,omitempty"`
	MTGOID          int    `json:"mtgo_id,omitempty"`
	MultiverseID    int    `json:"multiverse_id,omitempty"`
	OracleID        string `json:"oracle_id,omitempty"`
	IllustrationID  string `json:"illustration_id,omitempty"`
	Name            string `json:"name,omitempty"`
	Set             string `json:"set,omitempty"`
	CollectorNumber string `json:"collector_number,omitempty"`
}

// CardCollection is POST /cards/collection. The API accepts at
// most 75 identifiers per request.
type CardCollection struct {
	Identifiers []CardIdentifier
}

var _ Resource[*CardCollectionResult] = CardCollection{}

// cardCollectionRequest is the body of a [CardCollection] request.
type cardCollectionRequest struct {
	Identifiers []CardIdentifier `json:"identifiers"`
}

// RequestSpec implements Resource.
func (r CardCollection) RequestSpec() RequestSpec {
	identifiers := r.Identifiers
	if identifiers == nil {
		identifiers = []CardIdentifier{}
	}
	// marshaling a struct containing only strings and ints cannot fail
	body := runtimex.Try1(json.Marshal(&cardCollectionRequest{Identifiers: identifiers}))
	return RequestSpec{
		Name:   "cards.collection",
		Method: "POST",
		Path:   resourcePath("cards", "collection"),
		Body:   body,
	}
}

func (CardCollection) model() *CardCollectionResult { return nil }
