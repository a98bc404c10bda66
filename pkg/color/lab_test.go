package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToLabAnchors(t *testing.T) {
	black, err := HexToLab("#000000")
	require.NoError(t, err)
	assert.InDelta(t, 0, black.L, 0.01)
	assert.InDelta(t, 0, black.A, 0.01)
	assert.InDelta(t, 0, black.B, 0.01)

	white, err := HexToLab("#FFFFFF")
	require.NoError(t, err)
	assert.InDelta(t, 100, white.L, 0.01)
	assert.InDelta(t, 0, white.A, 0.01)
	assert.InDelta(t, 0, white.B, 0.01)
}

func TestHexToLabParsingVariants(t *testing.T) {
	want, err := HexToLab("#FF8800")
	require.NoError(t, err)

	for _, input := range []string{"ff8800", "#ff8800", "FF8800", "#Ff8800"} {
		got, err := HexToLab(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	short, err := HexToLab("#F80")
	require.NoError(t, err)
	assert.Equal(t, want, short)
}

func TestHexToLabMalformed(t *testing.T) {
	for _, input := range []string{"", "#12", "#12345", "red", "#GGGGGG"} {
		_, err := HexToLab(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestDistanceProperties(t *testing.T) {
	a, err := HexToLab("#336699")
	require.NoError(t, err)
	b, err := HexToLab("#996633")
	require.NoError(t, err)

	assert.Zero(t, Distance(a, a))
	assert.Equal(t, Distance(a, b), Distance(b, a))
	assert.Greater(t, Distance(a, b), 0.0)
}

func TestNearbyColorsAreClose(t *testing.T) {
	a, err := HexToLab("#1A73E8")
	require.NoError(t, err)
	b, err := HexToLab("#1A74E9")
	require.NoError(t, err)

	assert.Less(t, Distance(a, b), 1.0)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "#AABBCC", Normalize("#aabbcc"))
	assert.Equal(t, "#AABBCC", Normalize("aabbcc"))
	assert.Equal(t, "#AABBCC", Normalize("#abc"))
	assert.Equal(t, "not-a-color", Normalize("not-a-color"))
}

func TestIsHex(t *testing.T) {
	assert.True(t, IsHex("#123456"))
	assert.True(t, IsHex("abc"))
	assert.False(t, IsHex("#12"))
	assert.False(t, IsHex("zzzzzz"))
}
