package utils

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		input    string
		expected RGB
		ok       bool
	}{
		{input: "#ffffff", expected: RGB{255, 255, 255}, ok: true},
		{input: "000000", expected: RGB{0, 0, 0}, ok: true},
		{input: "#1A2b3C", expected: RGB{26, 43, 60}, ok: true},
		{input: "#03F", expected: RGB{0, 51, 255}, ok: true},
		{input: "abc", expected: RGB{170, 187, 204}, ok: true},
		{input: "#ggg", ok: false},
		{input: "#12345", ok: false},
		{input: "", ok: false},
		{input: "##fff", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rgb, ok := HexToRGB(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, rgb)
		})
	}
}

func TestParseHex(t *testing.T) {
	rgb, err := ParseHex("#0f0")
	require.NoError(t, err)
	assert.Equal(t, RGB{0, 255, 0}, rgb)

	_, err = ParseHex("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInvalidHexColor)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	value, ok := customErr.GetMetadata(MetaKeyValue)
	assert.True(t, ok)
	assert.Equal(t, "nope", value)
}

func TestRGBToHex(t *testing.T) {
	assert.Equal(t, "#000000", RGBToHex(RGB{0, 0, 0}))
	assert.Equal(t, "#ff8000", RGBToHex(RGB{255, 128, 0}))
	assert.Equal(t, "#0a0b0c", RGB{10, 11, 12}.String())

	rgb, ok := HexToRGB(RGBToHex(RGB{1, 2, 3}))
	assert.True(t, ok)
	assert.Equal(t, RGB{1, 2, 3}, rgb)
}

func TestIsRGBLight(t *testing.T) {
	assert.True(t, IsRGBLight(RGB{255, 255, 255}))
	assert.True(t, IsRGBLight(RGB{255, 255, 0}))
	assert.False(t, IsRGBLight(RGB{0, 0, 0}))
	assert.False(t, IsRGBLight(RGB{0, 0, 255}))
	assert.False(t, IsRGBLight(RGB{180, 180, 180}))
	assert.True(t, IsRGBLight(RGB{190, 190, 190}))
}
