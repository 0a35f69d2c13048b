package metadata

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/rickbassham/hotfly/fits"
	"github.com/rickbassham/hotfly/logger"
)

// Keyword is one archived header entry as stored by the metadata source.
type Keyword struct {
	Name    string `yaml:"name" json:"name"`
	Value   string `yaml:"value" json:"value"`
	Type    string `yaml:"type" json:"type"`
	Comment string `yaml:"comment" json:"comment"`
}

const (
	endKeyword    = "END"
	esoLogKeyword = "ESO-LOG"

	headerVersionComment = "ESO Archive header timetag"
)

// sourceOnly are keywords the source carries for bookkeeping; they are never
// written from the source.
var sourceOnly = map[string]bool{
	"HDRVER":   true,
	"CHECKSUM": true,
	"ZHECKSUM": true,
	"END":      true,
	"":         true,
}

// excluded reports whether a source keyword must not become a card, either
// because the file provides it or because it is bookkeeping.
func excluded(name string) bool {
	return sourceOnly[strings.ToUpper(name)] || fits.RetainedKeywords.Has(name)
}

// KindForType maps an archive type letter to a card kind.
func KindForType(t string) fits.Kind {
	switch strings.ToUpper(strings.TrimSpace(t)) {
	case "C", "T":
		return fits.String
	case "B", "L":
		return fits.Boolean
	case "":
		return fits.Unparsed
	default:
		return fits.Numeric
	}
}

// Card converts a source keyword into a card.
func (k Keyword) Card() fits.Card {
	name := strings.TrimSpace(k.Name)
	if name == esoLogKeyword {
		return fits.Card{Keyword: "HISTORY", Kind: fits.FreeText, Value: esoLogKeyword + " " + strings.TrimSpace(k.Value)}
	}

	card := fits.Card{
		Keyword: name,
		Kind:    KindForType(k.Type),
		Value:   k.Value,
		Comment: strings.TrimSpace(k.Comment),
	}
	if card.Kind != fits.String {
		card.Value = strings.TrimSpace(card.Value)
	}
	return card
}

// BuildHeaders turns the ordered keyword list of a file into formatted
// external headers, one per HDU, each terminated by the END card.
//
// Cards too long for one card image are truncated with a warning, or
// rejected with fits.ErrCardTooLong when strict is set.
func BuildHeaders(kws []Keyword, strict bool, log logger.Logger) ([][]string, error) {
	var headers [][]string
	var current []string

	for _, kw := range kws {
		name := strings.TrimSpace(kw.Name)
		if name == endKeyword {
			headers = append(headers, append(current, fits.EndCard))
			current = nil
			continue
		}
		if name != esoLogKeyword && excluded(name) {
			continue
		}

		card := kw.Card()
		image, err := card.FormatStrict()
		if err != nil {
			if strict {
				return nil, errors.Wrapf(err, "hdu %d", len(headers))
			}
			log.Warn("card truncated", "hdu", len(headers), "keyword", name)
			image = card.Format()
		}
		current = append(current, image)
	}

	if len(current) > 0 {
		log.Warn("keywords after last END ignored", "count", len(current))
	}
	return headers, nil
}

// HeaderVersionCard is the HDRVER card recording the archive header version.
func HeaderVersionCard(hdrver string) string {
	return fits.Card{Keyword: "HDRVER", Kind: fits.String, Value: hdrver, Comment: headerVersionComment}.Format()
}

// ProvenanceCard is the COMMENT card recording which tool rewrote the header
// and when.
func ProvenanceCard(tool, version string, now time.Time) string {
	text := fmt.Sprintf("processed by %s version %s on %s UT", tool, version, now.UTC().Format("2006-01-02T15:04:05.000"))
	return fits.Card{Keyword: "COMMENT", Kind: fits.FreeText, Value: text}.Format()
}
