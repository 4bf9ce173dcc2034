// Package scenario runs the fixed set of conversion demonstrations and
// renders their transcript.
package scenario

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/typecast/core/numeric"
	"github.com/FocuswithJustin/typecast/internal/logging"
)

// Scenario is one demonstration: a constant input, a conversion, and the
// output the conversion is expected to print.
type Scenario struct {
	Name  string                 `json:"name"`
	Input int32                  `json:"input"`
	Kind  numeric.ConversionKind `json:"-"`
	Want  string                 `json:"want"`
}

// Result is the outcome of running a single Scenario.
type Result struct {
	Scenario
	Value numeric.Value
	Err   error
}

// Line renders "<name>: <value>", or "<name>: error: <msg>" on failure.
func (r Result) Line() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: error: %v", r.Name, r.Err)
	}
	return fmt.Sprintf("%s: %s", r.Name, r.Value)
}

// Default returns the demonstration scenarios in presentation order.
func Default() []Scenario {
	return []Scenario{
		{Name: "widen-int-to-long", Input: 10, Kind: numeric.WidenIntToLong, Want: "10"},
		{Name: "widen-int-to-float", Input: 70, Kind: numeric.WidenIntToFloat, Want: "70.0"},
		{Name: "narrow-int-to-byte", Input: 70, Kind: numeric.NarrowIntToByte, Want: "70"},
		{Name: "narrow-int-to-byte-overflow", Input: 255, Kind: numeric.NarrowIntToByte, Want: "-1"},
	}
}

// Run converts every scenario in order. A failing scenario records its error
// and the rest still run. Once ctx is done, the remaining scenarios record
// ctx.Err() instead of converting.
func Run(ctx context.Context, scenarios []Scenario) []Result {
	results := make([]Result, 0, len(scenarios))
	for _, s := range scenarios {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{Scenario: s, Err: err})
			continue
		}

		v, err := numeric.Convert(s.Input, s.Kind)
		logging.Conversion(ctx, s.Kind.String(), s.Input, v.String(), err, "scenario", s.Name)
		results = append(results, Result{Scenario: s, Value: v, Err: err})
	}
	return results
}

// FirstError returns the first recorded error, or nil.
func FirstError(results []Result) error {
	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("scenario %s: %w", r.Name, r.Err)
		}
	}
	return nil
}

// Transcript renders one newline-terminated line per result.
func Transcript(results []Result) []byte {
	var buf bytes.Buffer
	for _, r := range results {
		buf.WriteString(r.Line())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Digest returns the hex BLAKE3-256 digest of the transcript.
func Digest(results []Result) string {
	sum := blake3.Sum256(Transcript(results))
	return hex.EncodeToString(sum[:])
}
