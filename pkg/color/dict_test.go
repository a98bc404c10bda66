package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindClosestExactMatch(t *testing.T) {
	d := NewDict()
	d.Add("#FF0000", "colors.red")
	d.Add("#00FF00", "colors.green")

	path, ok := d.FindClosest("#ff0000", DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "colors.red", path)

	// Exact matches win regardless of threshold.
	path, ok = d.FindClosest("FF0000", 0.0001)
	assert.True(t, ok)
	assert.Equal(t, "colors.red", path)
}

func TestFindClosestFuzzyMatch(t *testing.T) {
	d := NewDict()
	d.Add("#1A73E8", "colors.primary")
	d.Add("#FFFFFF", "colors.background")

	// One RGB step away from primary.
	path, ok := d.FindClosest("#1A74E8", DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "colors.primary", path)
}

func TestFindClosestBeyondThreshold(t *testing.T) {
	d := NewDict()
	d.Add("#000000", "colors.black")

	_, ok := d.FindClosest("#FFFFFF", DefaultThreshold)
	assert.False(t, ok)
}

func TestFindClosestEmptyDict(t *testing.T) {
	d := NewDict()
	_, ok := d.FindClosest("#123456", DefaultThreshold)
	assert.False(t, ok)

	var nilDict *Dict
	_, ok = nilDict.FindClosest("#123456", DefaultThreshold)
	assert.False(t, ok)
}

func TestFindClosestMalformedInput(t *testing.T) {
	d := NewDict()
	d.Add("#000000", "colors.black")

	_, ok := d.FindClosest("not-a-color", DefaultThreshold)
	assert.False(t, ok)
}

func TestFindClosestTieBreaksToFirstInserted(t *testing.T) {
	// Two entries pinned to the same Lab point so their distances to any
	// target are exactly equal.
	lab, err := HexToLab("#404040")
	assert.NoError(t, err)
	d := &Dict{
		keys:  []string{"#404040", "#404041"},
		paths: map[string]string{"#404040": "colors.first", "#404041": "colors.second"},
		labs:  map[string]Lab{"#404040": lab, "#404041": lab},
	}

	path, ok := d.FindClosest("#414141", 100)
	assert.True(t, ok)
	assert.Equal(t, "colors.first", path)
}

func TestAddKeepsFirstEntry(t *testing.T) {
	d := NewDict()
	d.Add("#AABBCC", "colors.one")
	d.Add("#aabbcc", "colors.two")

	assert.Equal(t, 1, d.Len())
	path, ok := d.FindClosest("#AABBCC", DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "colors.one", path)
}

func TestEntries(t *testing.T) {
	d := NewDict()
	d.Add("#111111", "colors.a")
	d.Add("#222222", "colors.b")

	entries := d.Entries()
	assert.Equal(t, []Entry{
		{Hex: "#111111", Path: "colors.a"},
		{Hex: "#222222", Path: "colors.b"},
	}, entries)
}
