// Package castexpr parses explicit cast expressions such as "(byte) 255" and
// evaluates them with the numeric package.
package castexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/ccoveille/go-safecast"

	tcerrors "github.com/FocuswithJustin/typecast/core/errors"
	"github.com/FocuswithJustin/typecast/core/numeric"
)

// Expr is a parsed cast: an int literal and the conversion its cast selects.
type Expr struct {
	Value int32
	Kind  numeric.ConversionKind
}

// Eval applies the cast.
func (e *Expr) Eval() (numeric.Value, error) {
	return numeric.Convert(e.Value, e.Kind)
}

// String renders the canonical form, e.g. "(byte) 255".
func (e *Expr) String() string {
	return fmt.Sprintf("(%s) %d", e.Kind.Target(), e.Value)
}

// castGrammar is the participle grammar for a single cast expression.
//
//nolint:govet // participle grammar tags are not standard struct tags
type castGrammar struct {
	Type    string `"(" @Ident ")"`
	Literal string `@Int`
}

var castLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var castParser = participle.MustBuild[castGrammar](
	participle.Lexer(castLexer),
	participle.Elide("Whitespace"),
)

// Parse parses s as "(type) integer", where type names the target of one of
// the supported conversions (long, float or byte).
func Parse(s string) (*Expr, error) {
	if strings.TrimSpace(s) == "" {
		return nil, tcerrors.NewParse("cast expression", "", "empty input")
	}

	g, err := castParser.ParseString("", s)
	if err != nil {
		return nil, &tcerrors.ParseError{
			Format:  "cast expression",
			Input:   s,
			Message: err.Error(),
			Err:     err,
		}
	}

	kind, err := kindForTarget(g.Type)
	if err != nil {
		return nil, err
	}

	value, err := parseInt32(g.Literal)
	if err != nil {
		return nil, err
	}

	return &Expr{Value: value, Kind: kind}, nil
}

// kindForTarget maps a target type name to the conversion producing it.
func kindForTarget(name string) (numeric.ConversionKind, error) {
	lower := strings.ToLower(name)
	for _, k := range numeric.ConversionKinds() {
		if k.Target().String() == lower {
			return k, nil
		}
	}
	return 0, &numeric.UnsupportedConversionError{Name: name}
}

// ParseInt32 parses a base-10 literal and rejects values outside int32.
func ParseInt32(s string) (int32, error) {
	return parseInt32(strings.TrimSpace(s))
}

func parseInt32(lit string) (int32, error) {
	wide, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return 0, &tcerrors.ValidationError{
			Field:   "value",
			Value:   lit,
			Message: "not a 64-bit decimal integer",
			Err:     err,
		}
	}
	v, err := safecast.ToInt32(wide)
	if err != nil {
		return 0, &tcerrors.ValidationError{
			Field:   "value",
			Value:   lit,
			Message: "out of int32 range",
			Err:     err,
		}
	}
	return v, nil
}
