package scryfall

//
// Card symbols (see https://scryfall.com/docs/api/card-symbols)
//

import (
	"errors"
	"net/url"
)

// CardSymbol is a symbol that may appear in mana costs or rules text.
type CardSymbol struct {
	Object             string   `json:"object"`
	Symbol             string   `json:"symbol"`
	SVGURI             string   `json:"svg_uri,omitempty"`
	LooseVariant       *string  `json:"loose_variant"`
	English            string   `json:"english"`
	Transposable       bool     `json:"transposable"`
	RepresentsMana     bool     `json:"represents_mana"`
	AppearsInManaCosts bool     `json:"appears_in_mana_costs"`
	ManaValue          *float64 `json:"mana_value,omitempty"`
	CMC                *float64 `json:"cmc,omitempty"`
	Hybrid             bool     `json:"hybrid"`
	Phyrexian          bool     `json:"phyrexian"`
	Funny              bool     `json:"funny"`
	Colors             []Color  `json:"colors"`
	GathererAlternates []string `json:"gatherer_alternates"`
}

var errMissingSymbol = errors.New("scryfall: missing symbol")

func (cs *CardSymbol) validate() error {
	switch {
	case cs == nil:
		return errNilModel
	case cs.Object != "card_symbol":
		return errMissingObject
	case cs.Symbol == "":
		return errMissingSymbol
	default:
		return nil
	}
}

// ManaCost is the result of parsing a mana cost with [ParseMana].
type ManaCost struct {
	Object       string  `json:"object"`
	Cost         string  `json:"cost"`
	CMC          float64 `json:"cmc"`
	Colors       []Color `json:"colors"`
	Colorless    bool    `json:"colorless"`
	Monocolored  bool    `json:"monocolored"`
	Multicolored bool    `json:"multicolored"`
}

func (mc *ManaCost) validate() error {
	switch {
	case mc == nil:
		return errNilModel
	case mc.Object != "mana_cost":
		return errMissingObject
	default:
		return nil
	}
}

// AllCardSymbols is GET /symbology.
type AllCardSymbols struct{}

var _ Resource[*CardSymbolList] = AllCardSymbols{}

// RequestSpec implements Resource.
func (AllCardSymbols) RequestSpec() RequestSpec {
	return getSpec("symbology.list", nil, "symbology")
}

func (AllCardSymbols) model() *CardSymbolList { return nil }

// ParseMana is GET /symbology/parse-mana?cost=:cost. The cost is sent
// verbatim (e.g., "{2}{W}{W}" or "2ww"); the API does the parsing.
type ParseMana struct {
	Cost string
}

var _ Resource[*ManaCost] = ParseMana{}

// RequestSpec implements Resource.
func (r ParseMana) RequestSpec() RequestSpec {
	query := url.Values{"cost": {r.Cost}}
	return getSpec("symbology.parse_mana", query, "symbology", "parse-mana")
}

func (ParseMana) model() *ManaCost { return nil }
