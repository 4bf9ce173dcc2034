package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Decimal exponents in [plainMinExp, plainMaxExp) print without an exponent.
const (
	plainMinExp = -3
	plainMaxExp = 7
)

// FormatFloat renders f using the shortest decimal that reads back as the
// same float32, always with at least one fractional digit. Magnitudes in
// [1e-3, 1e7) use plain notation ("70.0", "0.001"); everything else uses
// scientific notation with a bare exponent ("1.0E7", "-2.1474836E9", "1.0E-4").
func FormatFloat(f float32) string {
	switch {
	case math.IsNaN(float64(f)):
		return "NaN"
	case math.IsInf(float64(f), 1):
		return "Infinity"
	case math.IsInf(float64(f), -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(float64(f)) {
			return "-0.0"
		}
		return "0.0"
	}

	// Shortest round-trip digits, e.g. "-1.6777216e+07".
	s := strconv.FormatFloat(float64(f), 'e', -1, 32)
	sign := ""
	if s[0] == '-' {
		sign = "-"
		s = s[1:]
	}
	mant, expPart, _ := strings.Cut(s, "e")
	exp, err := strconv.Atoi(expPart)
	if err != nil {
		// strconv always emits a well-formed exponent.
		panic("numeric: malformed float exponent " + expPart)
	}
	digits := strings.Replace(mant, ".", "", 1)

	var b strings.Builder
	b.WriteString(sign)
	if exp >= plainMinExp && exp < plainMaxExp {
		writePlain(&b, digits, exp)
	} else {
		writeScientific(&b, digits, exp)
	}
	return b.String()
}

// writePlain writes d.ddd×10^exp without an exponent.
func writePlain(b *strings.Builder, digits string, exp int) {
	if exp < 0 {
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -exp-1))
		b.WriteString(digits)
		return
	}
	intLen := exp + 1
	if len(digits) <= intLen {
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", intLen-len(digits)))
		b.WriteString(".0")
		return
	}
	b.WriteString(digits[:intLen])
	b.WriteByte('.')
	b.WriteString(digits[intLen:])
}

func writeScientific(b *strings.Builder, digits string, exp int) {
	b.WriteString(digits[:1])
	b.WriteByte('.')
	if len(digits) > 1 {
		b.WriteString(digits[1:])
	} else {
		b.WriteByte('0')
	}
	b.WriteByte('E')
	b.WriteString(strconv.Itoa(exp))
}
