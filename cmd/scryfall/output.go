package main

//
// Output formats
//

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/mtgkit/scryfall-go/pkg/scryfall"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// The supported output formats.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// textWidth is the width at which we wrap long text.
const textWidth = 72

// checkOutputFormat returns an error if format is not supported.
func checkOutputFormat(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return errors.Errorf("unsupported output format: %s", format)
	}
}

// emit writes value to w using the given format.
func emit(w io.Writer, format string, value any) error {
	switch format {
	case outputJSON:
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshaling JSON")
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case outputYAML:
		data, err := marshalYAML(value)
		if err != nil {
			return errors.Wrap(err, "marshaling YAML")
		}
		_, err = w.Write(data)
		return err
	default:
		return emitText(w, value)
	}
}

// marshalYAML serializes value as YAML. We go through JSON so that we
// honour the field names and the custom marshalers used by the API models.
func marshalYAML(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	resetStyle(&node)
	return yaml.Marshal(&node)
}

// resetStyle switches node and its children from the JSON flow style
// to the default YAML block style.
func resetStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		resetStyle(child)
	}
}

// emitText writes a human readable summary of value to w.
func emitText(w io.Writer, value any) error {
	var sb strings.Builder
	switch v := value.(type) {
	case *scryfall.Card:
		writeCard(&sb, v)
	case *scryfall.CardList:
		for _, card := range v.Data {
			writeCardLine(&sb, card)
		}
		writePagination(&sb, v)
	case *scryfall.CardCollectionResult:
		for _, card := range v.Data {
			writeCardLine(&sb, card)
		}
		for _, entry := range v.NotFound {
			fmt.Fprintf(&sb, "not found: %s\n", identifierString(entry))
		}
	case *scryfall.Catalog:
		for _, entry := range v.Data {
			fmt.Fprintln(&sb, entry)
		}
	case *scryfall.RulingList:
		for _, ruling := range v.Data {
			fmt.Fprintf(&sb, "%s (%s)\n", ruling.PublishedAt, ruling.Source)
			fmt.Fprintf(&sb, "%s\n\n", indent(wordwrap.WrapString(ruling.Comment, textWidth), "  "))
		}
	case *scryfall.Set:
		writeSetLine(&sb, v)
	case *scryfall.SetList:
		for _, set := range v.Data {
			writeSetLine(&sb, set)
		}
	case *scryfall.CardSymbolList:
		for _, symbol := range v.Data {
			fmt.Fprintf(&sb, "%-10s %s\n", symbol.Symbol, symbol.English)
		}
	case *scryfall.ManaCost:
		fmt.Fprintf(&sb, "%s cmc=%g colors=%s\n", v.Cost, v.CMC, colorsString(v.Colors))
	case *scryfall.BulkData:
		writeBulkDataLine(&sb, v)
	case *scryfall.BulkDataList:
		for _, entry := range v.Data {
			writeBulkDataLine(&sb, entry)
		}
	default:
		return emit(w, outputJSON, value)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeCard writes the details of card.
func writeCard(sb *strings.Builder, card *scryfall.Card) {
	fmt.Fprintf(sb, "%s %s\n", card.Name, card.ManaCost)
	fmt.Fprintf(sb, "%s\n", card.TypeLine)
	if len(card.CardFaces) > 0 && card.OracleText == "" {
		for _, face := range card.CardFaces {
			fmt.Fprintf(sb, "\n%s %s\n", face.Name, face.ManaCost)
			if face.OracleText != "" {
				fmt.Fprintf(sb, "%s\n", wordwrap.WrapString(face.OracleText, textWidth))
			}
		}
	} else if card.OracleText != "" {
		fmt.Fprintf(sb, "%s\n", wordwrap.WrapString(card.OracleText, textWidth))
	}
	if card.Power != "" || card.Toughness != "" {
		fmt.Fprintf(sb, "%s/%s\n", card.Power, card.Toughness)
	}
	if card.Loyalty != "" {
		fmt.Fprintf(sb, "Loyalty: %s\n", card.Loyalty)
	}
	fmt.Fprintf(sb, "%s #%s (%s) %s\n", strings.ToUpper(card.Set), card.CollectorNumber, card.Rarity, card.ReleasedAt)
	if card.Prices.USD != nil {
		fmt.Fprintf(sb, "USD %s\n", *card.Prices.USD)
	}
	fmt.Fprintf(sb, "%s\n", card.ID)
}

// writeCardLine writes a one line summary of card.
func writeCardLine(sb *strings.Builder, card *scryfall.Card) {
	fmt.Fprintf(sb, "%-40s %-6s #%-5s %s\n", card.Name, strings.ToUpper(card.Set), card.CollectorNumber, card.ID)
}

// writePagination writes the pagination status of list.
func writePagination(sb *strings.Builder, list *scryfall.CardList) {
	if list.TotalCards != nil {
		fmt.Fprintf(sb, "\n%d cards", *list.TotalCards)
		if list.HasMore && list.NextPage != nil {
			fmt.Fprint(sb, "; next page:")
		}
		fmt.Fprintln(sb)
	}
	if list.HasMore && list.NextPage != nil {
		fmt.Fprintln(sb, *list.NextPage)
	}
	for _, warning := range list.Warnings {
		fmt.Fprintf(sb, "warning: %s\n", warning)
	}
}

// writeSetLine writes a one line summary of set.
func writeSetLine(sb *strings.Builder, set *scryfall.Set) {
	released := ""
	if set.ReleasedAt != nil {
		released = set.ReleasedAt.String()
	}
	fmt.Fprintf(sb, "%-6s %-10s %-18s %4d  %s\n", set.Code, released, set.SetType, set.CardCount, set.Name)
}

// writeBulkDataLine writes a one line summary of entry.
func writeBulkDataLine(sb *strings.Builder, entry *scryfall.BulkData) {
	fmt.Fprintf(sb, "%-16s %s  %s\n", entry.Type, entry.UpdatedAt.Format("2006-01-02 15:04"), entry.DownloadURI)
}

// identifierString describes a card identifier.
func identifierString(ID scryfall.CardIdentifier) string {
	data, _ := json.Marshal(ID)
	return string(data)
}

// colorsString formats a list of colors (e.g., "UR" or "C").
func colorsString(colors []scryfall.Color) string {
	if len(colors) == 0 {
		return "C"
	}
	var sb strings.Builder
	for _, c := range colors {
		sb.WriteString(string(c))
	}
	return sb.String()
}

// indent prefixes each line of s with prefix.
func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
