package metadata

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickbassham/hotfly/fits"
	"github.com/rickbassham/hotfly/logger"
)

func pad(s string) string {
	return s + strings.Repeat(" ", fits.CardSize-len(s))
}

func TestKindForType(t *testing.T) {
	tests := map[string]fits.Kind{
		"C":  fits.String,
		"t":  fits.String,
		"B":  fits.Boolean,
		"L":  fits.Boolean,
		"I":  fits.Numeric,
		"F":  fits.Numeric,
		"D":  fits.Numeric,
		"":   fits.Unparsed,
		"  ": fits.Unparsed,
	}
	for in, want := range tests {
		assert.Equal(t, want, KindForType(in), "type %q", in)
	}
}

func TestKeywordCard(t *testing.T) {
	assert.Equal(t,
		fits.Card{Keyword: "ORIGIN", Kind: fits.String, Value: " ESO", Comment: "site"},
		Keyword{Name: " ORIGIN ", Value: " ESO", Type: "C", Comment: " site "}.Card(),
	)
	assert.Equal(t,
		fits.Card{Keyword: "EXPTIME", Kind: fits.Numeric, Value: "10.5"},
		Keyword{Name: "EXPTIME", Value: " 10.5 ", Type: "F"}.Card(),
	)
	assert.Equal(t,
		fits.Card{Keyword: "HISTORY", Kind: fits.FreeText, Value: "ESO-LOG 12:00:00> START"},
		Keyword{Name: "ESO-LOG", Value: "12:00:00> START"}.Card(),
	)
}

func TestBuildHeaders(t *testing.T) {
	kws := []Keyword{
		{Name: "SIMPLE", Value: "T", Type: "L"},
		{Name: "ORIGIN", Value: "ESO", Type: "C", Comment: "European Southern Observatory"},
		{Name: "EXPTIME", Value: "10.5", Type: "F", Comment: "Integration time"},
		{Name: "ESO-LOG", Value: "12:00:00> START"},
		{Name: "CHECKSUM", Value: "AbCdEfGh", Type: "C"},
		{Name: "HDRVER", Value: "2019-03-22", Type: "C"},
		{Name: " ", Value: "", Type: ""},
		{Name: "END"},
		{Name: "EXTNAME", Value: "CHIP1", Type: "C"},
		{Name: "ZHECKSUM", Value: "x", Type: "C"},
		{Name: "HIERARCH ESO DET CHIP ID", Value: "A", Type: "C"},
		{Name: "END"},
		{Name: "DANGLING", Value: "1", Type: "I"},
	}

	var buf bytes.Buffer
	headers, err := BuildHeaders(kws, false, logger.Text(&buf, slog.LevelWarn))
	require.NoError(t, err)

	require.Len(t, headers, 2)
	assert.Equal(t, []string{
		pad("ORIGIN  = 'ESO     '           / European Southern Observatory"),
		pad("EXPTIME =                 10.5 / Integration time"),
		pad("HISTORY ESO-LOG 12:00:00> START"),
		fits.EndCard,
	}, headers[0])
	assert.Equal(t, []string{
		pad("HIERARCH ESO DET CHIP ID = 'A       '"),
		fits.EndCard,
	}, headers[1])
	assert.Contains(t, buf.String(), "keywords after last END ignored")
}

func TestBuildHeadersLongCard(t *testing.T) {
	kws := []Keyword{
		{Name: "HIERARCH ESO DRS DARKCOR", Value: strings.Repeat("/calib", 10), Type: "C"},
		{Name: "END"},
	}

	var buf bytes.Buffer
	headers, err := BuildHeaders(kws, false, logger.Text(&buf, slog.LevelWarn))
	require.NoError(t, err)
	require.Len(t, headers, 1)
	assert.Len(t, headers[0][0], fits.CardSize)
	assert.Contains(t, buf.String(), "card truncated")

	_, err = BuildHeaders(kws, true, logger.Discard())
	assert.True(t, errors.Is(err, fits.ErrCardTooLong))
}

func TestBuildHeadersEmpty(t *testing.T) {
	headers, err := BuildHeaders(nil, true, logger.Discard())
	require.NoError(t, err)
	assert.Empty(t, headers)

	headers, err = BuildHeaders([]Keyword{{Name: "END"}}, true, logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{fits.EndCard}}, headers)
}

func TestSynthesizedCards(t *testing.T) {
	assert.Equal(t,
		pad("HDRVER  = '2019-03-22T10:11:12.123' / ESO Archive header timetag"),
		HeaderVersionCard("2019-03-22T10:11:12.123"),
	)

	now := time.Date(2026, 10, 19, 14, 0, 0, 123456789, time.FixedZone("CEST", 2*3600))
	assert.Equal(t,
		pad("COMMENT processed by hotfly version 2.0 on 2026-10-19T12:00:00.123 UT"),
		ProvenanceCard("hotfly", "2.0", now),
	)
}
