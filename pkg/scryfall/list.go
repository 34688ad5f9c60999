package scryfall

//
// List objects (see https://scryfall.com/docs/api/lists)
//

import "errors"

// List is a sequence of objects, possibly paginated.
type List[T any] struct {
	Object     string   `json:"object"`
	Data       []T      `json:"data"`
	HasMore    bool     `json:"has_more"`
	NextPage   *string  `json:"next_page,omitempty"`
	TotalCards *int     `json:"total_cards,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

// The lists returned by the API.
type (
	CardList       = List[*Card]
	SetList        = List[*Set]
	BulkDataList   = List[*BulkData]
	CardSymbolList = List[*CardSymbol]
	RulingList     = List[*Ruling]
)

var errMissingData = errors.New("scryfall: missing data")

// validator is implemented by models that can check whether all
// their required fields were present in the response.
type validator interface {
	validate() error
}

func (l *List[T]) validate() error {
	switch {
	case l == nil:
		return errNilModel
	case l.Object != "list":
		return errMissingObject
	case l.Data == nil:
		return errMissingData
	}
	for _, entry := range l.Data {
		if v, ok := any(entry).(validator); ok {
			if err := v.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// CardCollectionResult is the result of a [CardCollection] lookup. Identifiers
// that did not match any card are listed in NotFound.
type CardCollectionResult struct {
	List[*Card]
	NotFound []CardIdentifier `json:"not_found"`
}

func (r *CardCollectionResult) validate() error {
	if r == nil {
		return errNilModel
	}
	return r.List.validate()
}
