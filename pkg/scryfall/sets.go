package scryfall

//
// Sets (see https://scryfall.com/docs/api/sets)
//

import (
	"errors"

	"github.com/google/uuid"
)

// Set is a group of related cards.
type Set struct {
	Object        string    `json:"object"`
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	MTGOCode      string    `json:"mtgo_code,omitempty"`
	ArenaCode     string    `json:"arena_code,omitempty"`
	TCGPlayerID   *int      `json:"tcgplayer_id,omitempty"`
	Name          string    `json:"name"`
	SetType       string    `json:"set_type"`
	ReleasedAt    *Date     `json:"released_at,omitempty"`
	BlockCode     string    `json:"block_code,omitempty"`
	Block         string    `json:"block,omitempty"`
	ParentSetCode string    `json:"parent_set_code,omitempty"`
	CardCount     int       `json:"card_count"`
	PrintedSize   *int      `json:"printed_size,omitempty"`
	Digital       bool      `json:"digital"`
	FoilOnly      bool      `json:"foil_only"`
	NonfoilOnly   bool      `json:"nonfoil_only"`
	ScryfallURI   string    `json:"scryfall_uri"`
	URI           string    `json:"uri"`
	IconSVGURI    string    `json:"icon_svg_uri"`
	SearchURI     string    `json:"search_uri"`
}

var errMissingCode = errors.New("scryfall: missing set code")

func (s *Set) validate() error {
	switch {
	case s == nil:
		return errNilModel
	case s.Object != "set":
		return errMissingObject
	case s.ID == uuid.Nil:
		return errMissingID
	case s.Code == "":
		return errMissingCode
	default:
		return nil
	}
}

// AllSets is GET /sets.
type AllSets struct{}

var _ Resource[*SetList] = AllSets{}

// RequestSpec implements Resource.
func (AllSets) RequestSpec() RequestSpec {
	return getSpec("sets.list", nil, "sets")
}

func (AllSets) model() *SetList { return nil }

// SetByCode is GET /sets/:code. Since the API serves the same object
// by code and by id, Code may also be the set's Scryfall id.
type SetByCode struct {
	Code string
}

var _ Resource[*Set] = SetByCode{}

// RequestSpec implements Resource.
func (r SetByCode) RequestSpec() RequestSpec {
	return getSpec("sets.by_code", nil, "sets", r.Code)
}

func (SetByCode) model() *Set { return nil }

// SetByTCGPlayerID is GET /sets/tcgplayer/:id.
type SetByTCGPlayerID struct {
	ID int
}

var _ Resource[*Set] = SetByTCGPlayerID{}

// RequestSpec implements Resource.
func (r SetByTCGPlayerID) RequestSpec() RequestSpec {
	return getSpec("sets.by_tcgplayer_id", nil, "sets", "tcgplayer", itoa(r.ID))
}

func (SetByTCGPlayerID) model() *Set { return nil }
