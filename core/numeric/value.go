package numeric

import (
	"math"
	"strconv"
)

// Value is an immutable number tagged with its representation.
// The zero Value has no kind and renders as "<invalid>".
type Value struct {
	kind Kind
	i    int64
	f    float32
}

// IntValue wraps a 32-bit signed integer.
func IntValue(v int32) Value { return Value{kind: KindInt, i: int64(v)} }

// LongValue wraps a 64-bit signed integer.
func LongValue(v int64) Value { return Value{kind: KindLong, i: v} }

// FloatValue wraps a 32-bit float.
func FloatValue(v float32) Value { return Value{kind: KindFloat, f: v} }

// ByteValue wraps an 8-bit signed integer.
func ByteValue(v int8) Value { return Value{kind: KindByte, i: int64(v)} }

// Kind returns the representation of v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v was built by one of the constructors.
func (v Value) IsValid() bool { return v.kind != 0 }

// Int64 returns the integer value of v. Floats truncate toward zero;
// NaN yields 0 and infinities saturate.
func (v Value) Int64() int64 {
	if v.kind != KindFloat {
		return v.i
	}
	f := float64(v.f)
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

// Float32 returns v as a float32, rounding large integers to nearest even.
func (v Value) Float32() float32 {
	if v.kind == KindFloat {
		return v.f
	}
	return float32(v.i)
}

// Equal reports whether v and o have the same kind and the same bits.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == KindFloat {
		return math.Float32bits(v.f) == math.Float32bits(o.f)
	}
	return v.i == o.i
}

// String renders v the way the demonstrator prints it: plain base-10 for
// integer kinds, FormatFloat for floats.
func (v Value) String() string {
	switch v.kind {
	case KindInt, KindLong, KindByte:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return FormatFloat(v.f)
	default:
		return "<invalid>"
	}
}
