package scryfall

//
// Rulings (see https://scryfall.com/docs/api/rulings)
//

import (
	"errors"

	"github.com/google/uuid"
)

// Ruling is an Oracle ruling, Wizards of the Coast set release
// notes, or a Scryfall note.
type Ruling struct {
	Object      string    `json:"object"`
	OracleID    uuid.UUID `json:"oracle_id"`
	Source      string    `json:"source"`
	PublishedAt Date      `json:"published_at"`
	Comment     string    `json:"comment"`
}

var errMissingComment = errors.New("scryfall: missing ruling comment")

func (r *Ruling) validate() error {
	switch {
	case r == nil:
		return errNilModel
	case r.Object != "ruling":
		return errMissingObject
	case r.Comment == "":
		return errMissingComment
	default:
		return nil
	}
}

// RulingsByCardID is GET /cards/:id/rulings.
type RulingsByCardID struct {
	ID string
}

var _ Resource[*RulingList] = RulingsByCardID{}

// RequestSpec implements Resource.
func (r RulingsByCardID) RequestSpec() RequestSpec {
	return getSpec("rulings.by_id", nil, "cards", r.ID, "rulings")
}

func (RulingsByCardID) model() *RulingList { return nil }

// RulingsByCode is GET /cards/:code/:number/rulings.
type RulingsByCode struct {
	Set    string
	Number string
}

var _ Resource[*RulingList] = RulingsByCode{}

// RequestSpec implements Resource.
func (r RulingsByCode) RequestSpec() RequestSpec {
	return getSpec("rulings.by_code", nil, "cards", r.Set, r.Number, "rulings")
}

func (RulingsByCode) model() *RulingList { return nil }

// RulingsByArenaID is GET /cards/arena/:id/rulings.
type RulingsByArenaID struct {
	ID int
}

var _ Resource[*RulingList] = RulingsByArenaID{}

// RequestSpec implements Resource.
func (r RulingsByArenaID) RequestSpec() RequestSpec {
	return getSpec("rulings.by_arena_id", nil, "cards", "arena", itoa(r.ID), "rulings")
}

func (RulingsByArenaID) model() *RulingList { return nil }

// RulingsByMTGOID is GET /cards/mtgo/:id/rulings.
type RulingsByMTGOID struct {
	ID int
}

var _ Resource[*RulingList] = RulingsByMTGOID{}

// RequestSpec implements Resource.
func (r RulingsByMTGOID) RequestSpec() RequestSpec {
	return getSpec("rulings.by_mtgo_id", nil, "cards", "mtgo", itoa(r.ID), "rulings")
}

func (RulingsByMTGOID) model() *RulingList { return nil }

// RulingsByMultiverseID is GET /cards/multiverse/:id/rulings.
type RulingsByMultiverseID struct {
	ID int
}

var _ Resource[*RulingList] = RulingsByMultiverseID{}

// RequestSpec implements Resource.
func (r RulingsByMultiverseID) RequestSpec() RequestSpec {
	return getSpec("rulings.by_multiverse_id", nil, "cards", "multiverse", itoa(r.ID), "rulings")
}

func (RulingsByMultiverseID) model() *RulingList { return nil }
