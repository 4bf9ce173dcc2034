package numeric

import (
	"fmt"
	"strings"
)

// Kind identifies the representation held by a Value.
type Kind int

// Value representations. The zero Kind is invalid.
const (
	KindInt   Kind = iota + 1 // 32-bit signed integer
	KindLong                  // 64-bit signed integer
	KindFloat                 // 32-bit IEEE-754 float
	KindByte                  // 8-bit signed integer
)

var kindNames = map[Kind]string{
	KindInt:   "int",
	KindLong:  "long",
	KindFloat: "float",
	KindByte:  "byte",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ConversionKind selects the rule Convert applies.
type ConversionKind int

// Supported conversions. The zero ConversionKind is not one of them.
const (
	WidenIntToLong ConversionKind = iota + 1
	WidenIntToFloat
	NarrowIntToByte
)

// conversionKinds is the canonical listing order.
var conversionKinds = []ConversionKind{
	WidenIntToLong,
	WidenIntToFloat,
	NarrowIntToByte,
}

var conversionNames = map[ConversionKind]string{
	WidenIntToLong:  "widen-int-to-long",
	WidenIntToFloat: "widen-int-to-float",
	NarrowIntToByte: "narrow-int-to-byte",
}

var conversionTargets = map[ConversionKind]Kind{
	WidenIntToLong:  KindLong,
	WidenIntToFloat: KindFloat,
	NarrowIntToByte: KindByte,
}

// ConversionKinds returns every supported conversion in a stable order.
func ConversionKinds() []ConversionKind {
	out := make([]ConversionKind, len(conversionKinds))
	copy(out, conversionKinds)
	return out
}

// ParseConversionKind resolves a conversion name such as "narrow-int-to-byte".
// Matching ignores case and surrounding whitespace, and accepts underscores
// in place of hyphens.
func ParseConversionKind(s string) (ConversionKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "_", "-")
	for _, k := range conversionKinds {
		if conversionNames[k] == name {
			return k, nil
		}
	}
	return 0, &UnsupportedConversionError{Name: s}
}

// Valid reports whether k is one of the supported conversions.
func (k ConversionKind) Valid() bool {
	_, ok := conversionNames[k]
	return ok
}

// Source is the representation every conversion starts from.
func (k ConversionKind) Source() Kind {
	return KindInt
}

// Target is the representation the conversion produces, or 0 if k is invalid.
func (k ConversionKind) Target() Kind {
	return conversionTargets[k]
}

// Widening reports whether the target can represent every source value.
// int-to-float counts as widening even though magnitudes beyond 2^24 round.
func (k ConversionKind) Widening() bool {
	return k == WidenIntToLong || k == WidenIntToFloat
}

func (k ConversionKind) String() string {
	if name, ok := conversionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ConversionKind(%d)", int(k))
}
