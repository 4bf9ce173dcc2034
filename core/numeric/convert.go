// Package numeric implements the primitive numeric conversions demonstrated by
// typecast: widening an int to long or float, and narrowing an int to byte
// with two's-complement wraparound.
//
// Convert is pure and safe for concurrent use.
package numeric

import (
	"fmt"
	"strconv"

	tcerrors "github.com/FocuswithJustin/typecast/core/errors"
)

// ErrUnsupportedConversion matches every UnsupportedConversionError.
var ErrUnsupportedConversion error = tcerrors.NewUnsupported("conversion", "")

// UnsupportedConversionError is returned for a ConversionKind, or a
// conversion name, outside the supported set.
type UnsupportedConversionError struct {
	Kind ConversionKind // Set when a numeric kind was rejected
	Name string         // Set when a conversion name was rejected
}

func (e *UnsupportedConversionError) Error() string {
	return e.unsupported().Error()
}

func (e *UnsupportedConversionError) unsupported() *tcerrors.UnsupportedError {
	if e.Name != "" {
		return tcerrors.NewUnsupported("conversion", strconv.Quote(e.Name))
	}
	return tcerrors.NewUnsupported("conversion", fmt.Sprintf("kind %d", int(e.Kind)))
}

// Is matches ErrUnsupportedConversion.
func (e *UnsupportedConversionError) Is(target error) bool {
	return target == ErrUnsupportedConversion
}

// Unwrap exposes the generic unsupported-feature error, which in turn
// unwraps to errors.ErrUnsupported.
func (e *UnsupportedConversionError) Unwrap() error {
	return e.unsupported()
}

// Convert applies the conversion rule selected by kind to value.
//
//   - WidenIntToLong keeps the value exactly.
//   - WidenIntToFloat rounds to the nearest float32, ties to even; exact for |value| < 2^24.
//   - NarrowIntToByte keeps the low 8 bits as a signed byte (255 becomes -1).
func Convert(value int32, kind ConversionKind) (Value, error) {
	switch kind {
	case WidenIntToLong:
		return LongValue(int64(value)), nil
	case WidenIntToFloat:
		return FloatValue(float32(value)), nil
	case NarrowIntToByte:
		return ByteValue(narrowToByte(value)), nil
	default:
		return Value{}, &UnsupportedConversionError{Kind: kind}
	}
}

// MustConvert is like Convert but panics on an unsupported kind.
// Use only with one of the declared ConversionKind constants.
func MustConvert(value int32, kind ConversionKind) Value {
	v, err := Convert(value, kind)
	if err != nil {
		panic(err)
	}
	return v
}

// narrowToByte reduces v modulo 256 and reinterprets the residue as signed:
// r = v mod 256 in [0, 256), result = r-256 when r >= 128.
func narrowToByte(v int32) int8 {
	r := ((v % 256) + 256) % 256
	if r >= 128 {
		r -= 256
	}
	return int8(r)
}
