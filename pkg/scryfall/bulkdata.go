package scryfall

//
// Bulk data (see https://scryfall.com/docs/api/bulk-data)
//

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// BulkData describes a bulk data file. The file itself is available
// at DownloadURI.
type BulkData struct {
	Object          string    `json:"object"`
	ID              uuid.UUID `json:"id"`
	Type            string    `json:"type"`
	UpdatedAt       time.Time `json:"updated_at"`
	URI             string    `json:"uri"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Size            int64     `json:"size,omitempty"`
	CompressedSize  int64     `json:"compressed_size,omitempty"`
	DownloadURI     string    `json:"download_uri"`
	ContentType     string    `json:"content_type"`
	ContentEncoding string    `json:"content_encoding"`
}

var errMissingType = errors.New("scryfall: missing bulk data type")

func (b *BulkData) validate() error {
	switch {
	case b == nil:
		return errNilModel
	case b.Object != "bulk_data":
		return errMissingObject
	case b.ID == uuid.Nil:
		return errMissingID
	case b.Type == "":
		return errMissingType
	default:
		return nil
	}
}

// The bulk data types, usable with [BulkDataByID].
const (
	BulkDataOracleCards   = "oracle_cards"
	BulkDataUniqueArtwork = "unique_artwork"
	BulkDataDefaultCards  = "default_cards"
	BulkDataAllCards      = "all_cards"
	BulkDataRulings       = "rulings"
)

// AllBulkData is GET /bulk-data.
type AllBulkData struct{}

var _ Resource[*BulkDataList] = AllBulkData{}

// RequestSpec implements Resource.
func (AllBulkData) RequestSpec() RequestSpec {
	return getSpec("bulk_data.list", nil, "bulk-data")
}

func (AllBulkData) model() *BulkDataList { return nil }

// BulkDataByID is GET /bulk-data/:id. Since the API serves the same
// object by id and by type, ID may also be a type (e.g., "oracle_cards").
type BulkDataByID struct {
	ID string
}

var _ Resource[*BulkData] = BulkDataByID{}

// RequestSpec implements Resource.
func (r BulkDataByID) RequestSpec() RequestSpec {
	return getSpec("bulk_data.by_id", nil, "bulk-data", r.ID)
}

func (BulkDataByID) model() *BulkData { return nil }
