package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsklimov/figma-rn-sub004/pkg/ir"
)

func node(box ir.Rect, h, v ir.ConstraintType) *ir.CanonicalNode {
	return &ir.CanonicalNode{
		ID:          "n1",
		Box:         box,
		Constraints: ir.Constraints{Horizontal: h, Vertical: v},
	}
}

func TestMapConstraintsScalePercentages(t *testing.T) {
	parent := &ir.Rect{X: 0, Y: 0, Width: 430, Height: 900}
	n := node(ir.Rect{X: 304.28, Y: 0, Width: 125.72, Height: 40}, ir.ConstraintScale, ir.ConstraintStart)

	decl := MapConstraints(n, parent)
	require.NotNil(t, decl)
	require.NotNil(t, decl.Left)
	require.NotNil(t, decl.Width)
	assert.Equal(t, "70.76%", decl.Left.String())
	assert.Equal(t, "29.24%", decl.Width.String())
}

func TestMapConstraintsScaleStripsTrailingZeros(t *testing.T) {
	parent := &ir.Rect{Width: 430, Height: 900}
	n := node(ir.Rect{X: 0, Y: 0, Width: 215, Height: 40}, ir.ConstraintScale, ir.ConstraintStart)

	decl := MapConstraints(n, parent)
	require.NotNil(t, decl)
	assert.Equal(t, "0%", decl.Left.String())
	assert.Equal(t, "50%", decl.Width.String())
}

func TestMapConstraintsEndPinsToOppositeEdge(t *testing.T) {
	parent := &ir.Rect{Width: 430, Height: 900}
	n := node(ir.Rect{X: 390, Y: 0, Width: 24, Height: 24}, ir.ConstraintEnd, ir.ConstraintStart)

	decl := MapConstraints(n, parent)
	require.NotNil(t, decl)
	require.NotNil(t, decl.Right)
	assert.Equal(t, "16", decl.Right.String())
	assert.Equal(t, "24", decl.Width.String())
	assert.Nil(t, decl.Left)
}

func TestMapConstraintsStretch(t *testing.T) {
	parent := &ir.Rect{Width: 400, Height: 900}
	n := node(ir.Rect{X: 20, Y: 100, Width: 360, Height: 50}, ir.ConstraintStretch, ir.ConstraintStart)

	decl := MapConstraints(n, parent)
	require.NotNil(t, decl)
	assert.Equal(t, "20", decl.Left.String())
	assert.Equal(t, "20", decl.Right.String())
	assert.Nil(t, decl.Width)
}

func TestMapConstraintsStartAndCenter(t *testing.T) {
	parent := &ir.Rect{Width: 400, Height: 900}

	for _, c := range []ir.ConstraintType{ir.ConstraintStart, ir.ConstraintCenter} {
		n := node(ir.Rect{X: 30, Y: 60, Width: 100, Height: 40}, c, c)
		decl := MapConstraints(n, parent)
		require.NotNil(t, decl, "constraint %s", c)
		assert.Equal(t, "30", decl.Left.String())
		assert.Equal(t, "100", decl.Width.String())
		assert.Equal(t, "60", decl.Top.String())
		assert.Equal(t, "40", decl.Height.String())
	}
}

func TestMapConstraintsRelativeToParentOrigin(t *testing.T) {
	parent := &ir.Rect{X: 100, Y: 200, Width: 430, Height: 900}
	n := node(ir.Rect{X: 404.28, Y: 200, Width: 125.72, Height: 40}, ir.ConstraintScale, ir.ConstraintStart)

	decl := MapConstraints(n, parent)
	require.NotNil(t, decl)
	assert.Equal(t, "70.76%", decl.Left.String())
}

func TestMapConstraintsNilCases(t *testing.T) {
	parent := &ir.Rect{Width: 430, Height: 900}

	assert.Nil(t, MapConstraints(nil, parent))
	assert.Nil(t, MapConstraints(node(ir.Rect{}, ir.ConstraintStart, ir.ConstraintStart), nil))
	assert.Nil(t, MapConstraints(node(ir.Rect{}, ir.ConstraintNone, ir.ConstraintNone), parent))
}

func TestMapConstraintsMixedAxes(t *testing.T) {
	parent := &ir.Rect{Width: 430, Height: 1000}
	n := node(ir.Rect{X: 0, Y: 960, Width: 215, Height: 20}, ir.ConstraintScale, ir.ConstraintEnd)

	decl := MapConstraints(n, parent)
	require.NotNil(t, decl)
	assert.True(t, decl.Left.Percent)
	assert.False(t, decl.Bottom.Percent)
	assert.Equal(t, "20", decl.Bottom.String())
	assert.Equal(t, "20", decl.Height.String())
}
