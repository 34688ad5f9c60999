package scryfall

//
// Card objects (see https://scryfall.com/docs/api/cards)
//

import (
	"errors"

	"github.com/google/uuid"
)

// Legality is the legality of a card in a format.
type Legality string

// The legality values used by the API.
const (
	LegalityLegal      = Legality("legal")
	LegalityNotLegal   = Legality("not_legal")
	LegalityRestricted = Legality("restricted")
	LegalityBanned     = Legality("banned")
)

// Legalities maps a format name (e.g., "commander") to the legality of
// a card in that format. We use a map because formats come and go.
type Legalities map[string]Legality

// Card is a single Magic card.
type Card struct {
	// core fields
	Object            string     `json:"object"`
	ID                uuid.UUID  `json:"id"`
	OracleID          *uuid.UUID `json:"oracle_id,omitempty"`
	ArenaID           *int       `json:"arena_id,omitempty"`
	MTGOID            *int       `json:"mtgo_id,omitempty"`
	MTGOFoilID        *int       `json:"mtgo_foil_id,omitempty"`
	MultiverseIDs     []int      `json:"multiverse_ids,omitempty"`
	TCGPlayerID       *int       `json:"tcgplayer_id,omitempty"`
	TCGPlayerEtchedID *int       `json:"tcgplayer_etched_id,omitempty"`
	CardmarketID      *int       `json:"cardmarket_id,omitempty"`
	Lang              string     `json:"lang"`
	Layout            string     `json:"layout"`
	PrintsSearchURI   string     `json:"prints_search_uri"`
	RulingsURI        string     `json:"rulings_uri"`
	ScryfallURI       string     `json:"scryfall_uri"`
	URI               string     `json:"uri"`

	// gameplay fields
	AllParts       []RelatedCard `json:"all_parts,omitempty"`
	CardFaces      []CardFace    `json:"card_faces,omitempty"`
	CMC            float64       `json:"cmc"`
	ColorIdentity  []Color       `json:"color_identity"`
	ColorIndicator []Color       `json:"color_indicator,omitempty"`
	Colors         []Color       `json:"colors,omitempty"`
	Defense        string        `json:"defense,omitempty"`
	EDHRECRank     *int          `json:"edhrec_rank,omitempty"`
	HandModifier   string        `json:"hand_modifier,omitempty"`
	Keywords       []string      `json:"keywords"`
	Legalities     Legalities    `json:"legalities"`
	LifeModifier   string        `json:"life_modifier,omitempty"`
	Loyalty        string        `json:"loyalty,omitempty"`
	ManaCost       string        `json:"mana_cost,omitempty"`
	Name           string        `json:"name"`
	OracleText     string        `json:"oracle_text,omitempty"`
	PennyRank      *int          `json:"penny_rank,omitempty"`
	Power          string        `json:"power,omitempty"`
	ProducedMana   []Color       `json:"produced_mana,omitempty"`
	Reserved       bool          `json:"reserved"`
	Toughness      string        `json:"toughness,omitempty"`
	TypeLine       string        `json:"type_line"`

	// print fields
	Artist          string        `json:"artist,omitempty"`
	ArtistIDs       []uuid.UUID   `json:"artist_ids,omitempty"`
	Booster         bool          `json:"booster"`
	BorderColor     string        `json:"border_color"`
	CardBackID      *uuid.UUID    `json:"card_back_id,omitempty"`
	CollectorNumber string        `json:"collector_number"`
	ContentWarning  bool          `json:"content_warning,omitempty"`
	Digital         bool          `json:"digital"`
	Finishes        []string      `json:"finishes"`
	FlavorName      string        `json:"flavor_name,omitempty"`
	FlavorText      string        `json:"flavor_text,omitempty"`
	Foil            bool          `json:"foil"`
	Nonfoil         bool          `json:"nonfoil"`
	FrameEffects    []string      `json:"frame_effects,omitempty"`
	Frame           string        `json:"frame"`
	FullArt         bool          `json:"full_art"`
	Games           []string      `json:"games"`
	HighresImage    bool          `json:"highres_image"`
	IllustrationID  *uuid.UUID    `json:"illustration_id,omitempty"`
	ImageStatus     string        `json:"image_status"`
	ImageURIs       *ImageURIs    `json:"image_uris,omitempty"`
	Oversized       bool          `json:"oversized"`
	Prices          Prices        `json:"prices"`
	PrintedName     string        `json:"printed_name,omitempty"`
	PrintedText     string        `json:"printed_text,omitempty"`
	PrintedTypeLine string        `json:"printed_type_line,omitempty"`
	Promo           bool          `json:"promo"`
	PromoTypes      []string      `json:"promo_types,omitempty"`
	PurchaseURIs    *PurchaseURIs `json:"purchase_uris,omitempty"`
	Rarity          string        `json:"rarity"`
	RelatedURIs     *RelatedURIs  `json:"related_uris,omitempty"`
	ReleasedAt      Date          `json:"released_at"`
	Reprint         bool          `json:"reprint"`
	ScryfallSetURI  string        `json:"scryfall_set_uri"`
	SetName         string        `json:"set_name"`
	SetSearchURI    string        `json:"set_search_uri"`
	SetType         string        `json:"set_type"`
	SetURI          string        `json:"set_uri"`
	Set             string        `json:"set"`
	SetID           uuid.UUID     `json:"set_id"`
	SecurityStamp   string        `json:"security_stamp,omitempty"`
	StorySpotlight  bool          `json:"story_spotlight"`
	Textless        bool          `json:"textless"`
	Variation       bool          `json:"variation"`
	VariationOf     *uuid.UUID    `json:"variation_of,omitempty"`
	Watermark       string        `json:"watermark,omitempty"`
	Preview         *Preview      `json:"preview,omitempty"`
}

var (
	errNilModel      = errors.New("scryfall: unexpected null model")
	errMissingObject = errors.New("scryfall: unexpected or missing object type")
	errMissingID     = errors.New("scryfall: missing id")
	errMissingName   = errors.New("scryfall: missing name")
)

func (c *Card) validate() error {
	switch {
	case c == nil:
		return errNilModel
	case c.Object != "card":
		return errMissingObject
	case c.ID == uuid.Nil:
		return errMissingID
	case c.Name == "":
		return errMissingName
	default:
		return nil
	}
}

// CardFace is one face of a multiface card.
type CardFace struct {
	Object          string     `json:"object"`
	Artist          string     `json:"artist,omitempty"`
	ArtistID        *uuid.UUID `json:"artist_id,omitempty"`
	CMC             *float64   `json:"cmc,omitempty"`
	ColorIndicator  []Color    `json:"color_indicator,omitempty"`
	Colors          []Color    `json:"colors,omitempty"`
	Defense         string     `json:"defense,omitempty"`
	FlavorName      string     `json:"flavor_name,omitempty"`
	FlavorText      string     `json:"flavor_text,omitempty"`
	IllustrationID  *uuid.UUID `json:"illustration_id,omitempty"`
	ImageURIs       *ImageURIs `json:"image_uris,omitempty"`
	Layout          string     `json:"layout,omitempty"`
	Loyalty         string     `json:"loyalty,omitempty"`
	ManaCost        string     `json:"mana_cost"`
	Name            string     `json:"name"`
	OracleID        *uuid.UUID `json:"oracle_id,omitempty"`
	OracleText      string     `json:"oracle_text,omitempty"`
	Power           string     `json:"power,omitempty"`
	PrintedName     string     `json:"printed_name,omitempty"`
	PrintedText     string     `json:"printed_text,omitempty"`
	PrintedTypeLine string     `json:"printed_type_line,omitempty"`
	Toughness       string     `json:"toughness,omitempty"`
	TypeLine        string     `json:"type_line,omitempty"`
	Watermark       string     `json:"watermark,omitempty"`
}

// RelatedCard is an entry of [Card.AllParts].
type RelatedCard struct {
	Object    string    `json:"object"`
	ID        uuid.UUID `json:"id"`
	Component string    `json:"component"`
	Name      string    `json:"name"`
	TypeLine  string    `json:"type_line"`
	URI       string    `json:"uri"`
}

// ImageURIs contains the URIs of the available card images.
type ImageURIs struct {
	Small      string `json:"small,omitempty"`
	Normal     string `json:"normal,omitempty"`
	Large      string `json:"large,omitempty"`
	PNG        string `json:"png,omitempty"`
	ArtCrop    string `json:"art_crop,omitempty"`
	BorderCrop string `json:"border_crop,omitempty"`
}

// Prices contains the daily price estimates. A nil value means
// that the price is not available.
type Prices struct {
	USD       *string `json:"usd"`
	USDFoil   *string `json:"usd_foil"`
	USDEtched *string `json:"usd_etched"`
	EUR       *string `json:"eur"`
	EURFoil   *string `json:"eur_foil"`
	EUREtched *string `json:"eur_etched,omitempty"`
	Tix       *string `json:"tix"`
}

// PurchaseURIs contains links to online vendors.
type PurchaseURIs struct {
	TCGPlayer   string `json:"tcgplayer,omitempty"`
	Cardmarket  string `json:"cardmarket,omitempty"`
	Cardhoarder string `json:"cardhoarder,omitempty"`
}

// RelatedURIs contains links to other resources about the card.
type RelatedURIs struct {
	Gatherer                  string `json:"gatherer,omitempty"`
	TCGPlayerInfiniteArticles string `json:"tcgplayer_infinite_articles,omitempty"`
	TCGPlayerInfiniteDecks    string `json:"tcgplayer_infinite_decks,omitempty"`
	EDHREC                    string `json:"edhrec,omitempty"`
}

// Preview describes where a card was previewed.
type Preview struct {
	PreviewedAt *Date  `json:"previewed_at,omitempty"`
	SourceURI   string `json:"source_uri,omitempty"`
	Source      string `json:"source,omitempty"`
}
