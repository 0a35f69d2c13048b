package fits

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// arcfile marks a primary header that was produced by the archive itself.
// Primary headers without it are wrappers added upstream.
const arcfile = "ARCFILE"

// RetainedKeywords are the structural keywords always taken from the file.
// Everything else in a file header is replaced by the external header.
var RetainedKeywords = newKeywordSet(
	"SIMPLE", "XTENSION", "BITPIX",
	"NAXIS", "NAXIS1", "NAXIS2", "NAXIS3", "NAXIS4", "NAXIS5", "NAXIS6", "NAXIS7", "NAXIS8", "NAXIS9",
	"EXTEND", "PCOUNT", "GCOUNT",
	"TFIELDS", "TTYPE1", "TFORM1",
	"ZIMAGE", "ZCMPTYPE", "ZBITPIX",
	"ZNAXIS", "ZNAXIS1", "ZNAXIS2", "ZNAXIS3", "ZNAXIS4", "ZNAXIS5", "ZNAXIS6", "ZNAXIS7", "ZNAXIS8", "ZNAXIS9",
	"ZTILE1", "ZTILE2", "ZTILE3", "ZTILE4", "ZTILE5", "ZTILE6", "ZTILE7", "ZTILE8", "ZTILE9",
	"ZVAL1", "ZVAL2", "ZVAL3", "ZVAL4", "ZVAL5", "ZVAL6", "ZVAL7", "ZVAL8", "ZVAL9",
	"ZNAME1", "ZNAME2", "ZNAME3", "ZNAME4", "ZNAME5", "ZNAME6", "ZNAME7", "ZNAME8", "ZNAME9",
	"ZMASKCMP", "ZSIMPLE", "ZTENSION", "ZEXTEND", "ZBLOCKED", "ZPCOUNT", "ZGCOUNT",
	"DATASUM", "ZDATASUM",
	"EXTNAME",
)

type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	s := make(keywordSet, len(keywords))
	for _, k := range keywords {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether keyword, compared case-insensitively, is in the set.
func (s keywordSet) Has(keyword string) bool {
	_, ok := s[strings.ToUpper(strings.TrimSpace(keyword))]
	return ok
}

// RunState is the bookkeeping carried from one HDU to the next during a
// single conversion.
type RunState struct {
	// HDU is the external header index the next HDU is merged against.
	HDU int
	// SkippedPrimary is set once a wrapper primary HDU has been passed through.
	SkippedPrimary bool
}

// MergeResult is the merged header of one HDU, without block padding.
type MergeResult struct {
	Cards []string

	// Passthrough is set when the HDU was a wrapper copied from the file.
	Passthrough bool

	Retained    int
	Dropped     int
	External    int
	Synthesized int
}

// Merge builds the output header for the next HDU of a file.
//
// external holds the formatted card images of every external header, each
// ending with EndCard. primaryExtras are inserted before the END card of
// external header 0. state is advanced for the following HDU.
func Merge(state *RunState, fileCards []string, external [][]string, primaryExtras []string) (*MergeResult, error) {
	if state.HDU == 0 && !state.SkippedPrimary && !hasKeyword(fileCards, arcfile) {
		state.SkippedPrimary = true
		return passthrough(fileCards), nil
	}

	n := state.HDU
	if n >= len(external) {
		return nil, errors.Wrapf(ErrHeaderCountMismatch, "index %d, have %d", n, len(external))
	}

	// PCOUNT and GCOUNT must not be in the primary HDU.
	truePrimary := n == 0 && !state.SkippedPrimary

	res := &MergeResult{}
	for _, image := range fileCards {
		if image == EndCard {
			res.appendExternal(external[n], n == 0, primaryExtras)
			continue
		}

		kwd := Keyword(image)
		if !RetainedKeywords.Has(kwd) || (truePrimary && (kwd == "PCOUNT" || kwd == "GCOUNT")) {
			res.Dropped++
			continue
		}

		card, err := ParseCard(image)
		if err != nil {
			return nil, err
		}
		res.Cards = append(res.Cards, card.Format())
		res.Retained++
	}

	state.HDU = n + 1
	return res, nil
}

func (r *MergeResult) appendExternal(external []string, primary bool, extras []string) {
	for _, image := range external {
		if primary && image == EndCard {
			r.Cards = append(r.Cards, extras...)
			r.Synthesized += len(extras)
		}
		r.Cards = append(r.Cards, image)
		r.External++
	}
}

// passthrough copies a wrapper header verbatim, minus its CHECKSUM.
func passthrough(fileCards []string) *MergeResult {
	res := &MergeResult{Passthrough: true}
	for _, image := range fileCards {
		if Keyword(image) == "CHECKSUM" {
			res.Dropped++
			continue
		}
		res.Cards = append(res.Cards, image)
		res.Retained++
	}
	return res
}

// Padding is the number of space bytes that align a header of the given
// card count to a block boundary.
func Padding(cards int) int {
	rem := (cards * CardSize) % BlockSize
	if rem == 0 {
		return 0
	}
	return BlockSize - rem
}

// WriteHeader writes cards followed by their block padding.
func WriteHeader(w io.Writer, cards []string) (int64, error) {
	var written int64
	for _, card := range cards {
		n, err := io.WriteString(w, card)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	n, err := io.WriteString(w, strings.Repeat(" ", Padding(len(cards))))
	written += int64(n)
	return written, err
}
