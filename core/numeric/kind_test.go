package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tcerrors "github.com/FocuswithJustin/typecast/core/errors"
)

func TestParseConversionKind(t *testing.T) {
	tests := []struct {
		in   string
		want ConversionKind
	}{
		{"widen-int-to-long", WidenIntToLong},
		{"WIDEN_INT_TO_FLOAT", WidenIntToFloat},
		{"  narrow-int-to-byte ", NarrowIntToByte},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseConversionKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseConversionKind("narrow-int-to-short")
		assert.ErrorIs(t, err, ErrUnsupportedConversion)
		assert.ErrorIs(t, err, tcerrors.ErrUnsupported)
		assert.EqualError(t, err, `unsupported conversion: "narrow-int-to-short"`)
	})
}

func TestConversionKindMetadata(t *testing.T) {
	kinds := ConversionKinds()
	assert.Equal(t, []ConversionKind{WidenIntToLong, WidenIntToFloat, NarrowIntToByte}, kinds)

	kinds[0] = 99
	assert.Equal(t, WidenIntToLong, ConversionKinds()[0], "listing must be a copy")

	assert.Equal(t, KindLong, WidenIntToLong.Target())
	assert.Equal(t, KindFloat, WidenIntToFloat.Target())
	assert.Equal(t, KindByte, NarrowIntToByte.Target())
	assert.Equal(t, Kind(0), ConversionKind(0).Target())
	assert.Equal(t, KindInt, NarrowIntToByte.Source())

	assert.True(t, WidenIntToLong.Widening())
	assert.True(t, WidenIntToFloat.Widening())
	assert.False(t, NarrowIntToByte.Widening())

	assert.True(t, NarrowIntToByte.Valid())
	assert.False(t, ConversionKind(0).Valid())

	assert.Equal(t, "narrow-int-to-byte", NarrowIntToByte.String())
	assert.Equal(t, "ConversionKind(9)", ConversionKind(9).String())
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}
