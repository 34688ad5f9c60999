package scryfall

//
// Catalogs (see https://scryfall.com/docs/api/catalogs)
//

// Catalog is a list of strings, such as card names or creature types.
type Catalog struct {
	Object      string   `json:"object"`
	URI         string   `json:"uri,omitempty"`
	TotalValues int      `json:"total_values"`
	Data        []string `json:"data"`
}

func (c *Catalog) validate() error {
	switch {
	case c == nil:
		return errNilModel
	case c.Object != "catalog":
		return errMissingObject
	case c.Data == nil:
		return errMissingData
	default:
		return nil
	}
}

// CatalogName is the name of a catalog.
type CatalogName string

// The catalogs available through [CatalogByName].
const (
	CatalogCardNames         = CatalogName("card-names")
	CatalogArtistNames       = CatalogName("artist-names")
	CatalogWordBank          = CatalogName("word-bank")
	CatalogSupertypes        = CatalogName("supertypes")
	CatalogCardTypes         = CatalogName("card-types")
	CatalogArtifactTypes     = CatalogName("artifact-types")
	CatalogBattleTypes       = CatalogName("battle-types")
	CatalogCreatureTypes     = CatalogName("creature-types")
	CatalogEnchantmentTypes  = CatalogName("enchantment-types")
	CatalogLandTypes         = CatalogName("land-types")
	CatalogPlaneswalkerTypes = CatalogName("planeswalker-types")
	CatalogSpellTypes        = CatalogName("spell-types")
	CatalogPowers            = CatalogName("powers")
	CatalogToughnesses       = CatalogName("toughnesses")
	CatalogLoyalties         = CatalogName("loyalties")
	CatalogWatermarks        = CatalogName("watermarks")
	CatalogKeywordAbilities  = CatalogName("keyword-abilities")
	CatalogKeywordActions    = CatalogName("keyword-actions")
	CatalogAbilityWords      = CatalogName("ability-words")
	CatalogFlavorWords       = CatalogName("flavor-words")
)

// CatalogNames lists every known [CatalogName].
var CatalogNames = []CatalogName{
	CatalogCardNames,
	CatalogArtistNames,
	CatalogWordBank,
	CatalogSupertypes,
	CatalogCardTypes,
	CatalogArtifactTypes,
	CatalogBattleTypes,
	CatalogCreatureTypes,
	CatalogEnchantmentTypes,
	CatalogLandTypes,
	CatalogPlaneswalkerTypes,
	CatalogSpellTypes,
	CatalogPowers,
	CatalogToughnesses,
	CatalogLoyalties,
	CatalogWatermarks,
	CatalogKeywordAbilities,
	CatalogKeywordActions,
	CatalogAbilityWords,
	CatalogFlavorWords,
}

// CatalogByName is GET /catalog/:name.
type CatalogByName struct {
	Name CatalogName
}

var _ Resource[*Catalog] = CatalogByName{}

// RequestSpec implements Resource.
func (r CatalogByName) RequestSpec() RequestSpec {
	return getSpec("catalog.by_name", nil, "catalog", string(r.Name))
}

func (CatalogByName) model() *Catalog { return nil }
