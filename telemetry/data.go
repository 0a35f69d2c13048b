// Package telemetry captures counters of a header conversion.
//
// The package provides a struct type [Data] that holds all telemetry data of
// one converted file and a [TelemetryHook] to consume it.
package telemetry

import (
	"context"
	"time"

	"github.com/goccy/go-json"
)

// Data is a struct type that holds all telemetry data of a conversion
type Data struct {
	// FileID is the archive identifier of the converted file
	FileID string

	// RunID correlates log records of one conversion
	RunID string

	// HDUs is the number of header data units processed
	HDUs int64

	// HDUsMerged is the number of HDUs merged with an external header
	HDUsMerged int64

	// SkippedPrimary is set when a wrapper primary HDU was passed through
	SkippedPrimary bool

	// CardsRetained is the number of structural cards kept from the file
	CardsRetained int64

	// CardsDropped is the number of file cards replaced by the external header
	CardsDropped int64

	// CardsExternal is the number of cards taken from the external header
	CardsExternal int64

	// CardsSynthesized is the number of HDRVER and provenance cards written
	CardsSynthesized int64

	// DataBlocks is the number of data blocks copied verbatim
	DataBlocks int64

	// InputSize is the number of bytes read
	InputSize int64

	// OutputSize is the number of bytes written
	OutputSize int64

	// Duration is the time the conversion took
	Duration time.Duration

	// LastError is the error that aborted the conversion, if any
	LastError error
}

// String returns a string representation of [Data].
func (d Data) String() string {
	b, _ := json.Marshal(d)
	return string(b)
}

// MarshalJSON implements the [encoding/json.Marshaler] interface.
func (d Data) MarshalJSON() ([]byte, error) {
	var lastError string
	if d.LastError != nil {
		lastError = d.LastError.Error()
	}

	type Alias Data
	return json.Marshal(&struct {
		Duration  int64  `json:"Duration"`
		LastError string `json:"LastError"`
		*Alias
	}{
		Duration:  d.Duration.Microseconds(),
		LastError: lastError,
		Alias:     (*Alias)(&d),
	})
}

// TelemetryHook is a function type that performs operations on [Data]
// after a conversion has finished.
type TelemetryHook func(context.Context, *Data)

// NoopTelemetryHook is a no operation telemetry hook.
func NoopTelemetryHook(ctx context.Context, d *Data) {
	// noop
}
