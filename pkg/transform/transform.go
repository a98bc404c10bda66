// Package transform converts raw Figma node records into the canonical node
// shape and prunes the resulting tree down to what will actually render.
package transform

import (
	"fmt"
	"math"

	"github.com/itsklimov/figma-rn-sub004/pkg/figma"
	"github.com/itsklimov/figma-rn-sub004/pkg/ir"
)

// Transform converts a raw node tree into a canonical tree. It is total:
// any well-formed raw record is accepted and missing optional fields are
// defaulted. Only a nil root is rejected.
func Transform(raw *figma.RawNode) (*ir.CanonicalNode, error) {
	if raw == nil {
		return nil, fmt.Errorf("transform: nil root document")
	}
	return transformNode(raw), nil
}

func transformNode(raw *figma.RawNode) *ir.CanonicalNode {
	node := &ir.CanonicalNode{
		ID:           raw.ID,
		Name:         raw.Name,
		Type:         raw.Type,
		Visible:      raw.Visible == nil || *raw.Visible,
		StrokeWeight: raw.StrokeWeight,
		CornerRadius: raw.CornerRadius,
		Text:         raw.Characters,
		LayoutMode:   raw.LayoutMode,
		ItemSpacing:  raw.ItemSpacing,
		Padding: ir.Insets{
			Top:    raw.PaddingTop,
			Right:  raw.PaddingRight,
			Bottom: raw.PaddingBottom,
			Left:   raw.PaddingLeft,
		},
	}

	if raw.AbsoluteBoundingBox != nil {
		node.Box = ir.Rect{
			X:      raw.AbsoluteBoundingBox.X,
			Y:      raw.AbsoluteBoundingBox.Y,
			Width:  raw.AbsoluteBoundingBox.Width,
			Height: raw.AbsoluteBoundingBox.Height,
		}
	}

	if raw.Constraints != nil {
		node.Constraints = ir.Constraints{
			Horizontal: horizontalConstraint(raw.Constraints.Horizontal),
			Vertical:   verticalConstraint(raw.Constraints.Vertical),
		}
	}

	for _, p := range raw.Fills {
		node.Fills = append(node.Fills, transformPaint(p))
	}
	for _, p := range raw.Strokes {
		node.Strokes = append(node.Strokes, transformPaint(p))
	}
	for _, e := range raw.Effects {
		node.Effects = append(node.Effects, transformEffect(e))
	}

	if raw.Style != nil {
		node.Typography = &ir.Typography{
			FontFamily:    raw.Style.FontFamily,
			FontSize:      raw.Style.FontSize,
			FontWeight:    int(raw.Style.FontWeight),
			LineHeight:    raw.Style.LineHeightPx,
			LetterSpacing: raw.Style.LetterSpacing,
		}
	}

	for _, child := range raw.Children {
		if child == nil {
			continue
		}
		node.Children = append(node.Children, transformNode(child))
	}

	return node
}

func transformPaint(p figma.Paint) ir.Paint {
	out := ir.Paint{
		Visible: p.Visible == nil || *p.Visible,
		Opacity: 1,
	}
	if p.Opacity != nil {
		out.Opacity = *p.Opacity
	}
	switch p.Type {
	case "SOLID":
		out.Type = ir.PaintSolid
		if p.Color != nil {
			out.Hex = HexFromColor(*p.Color)
		}
	case "IMAGE":
		out.Type = ir.PaintImage
		out.ImageRef = p.ImageRef
	default:
		out.Type = ir.PaintGradient
	}
	return out
}

func transformEffect(e figma.Effect) ir.Effect {
	out := ir.Effect{
		Visible: e.Visible == nil || *e.Visible,
		Blur:    e.Radius,
		Spread:  e.Spread,
	}
	switch e.Type {
	case "DROP_SHADOW":
		out.Type = ir.EffectDropShadow
	case "INNER_SHADOW":
		out.Type = ir.EffectInnerShadow
	default:
		out.Type = ir.EffectBlur
	}
	if e.Offset != nil {
		out.OffsetX = e.Offset.X
		out.OffsetY = e.Offset.Y
	}
	if e.Color != nil {
		out.Hex = HexFromColor(*e.Color)
	}
	return out
}

func horizontalConstraint(v string) ir.ConstraintType {
	switch v {
	case "LEFT":
		return ir.ConstraintStart
	case "RIGHT":
		return ir.ConstraintEnd
	case "CENTER":
		return ir.ConstraintCenter
	case "SCALE":
		return ir.ConstraintScale
	case "LEFT_RIGHT":
		return ir.ConstraintStretch
	}
	return ir.ConstraintNone
}

func verticalConstraint(v string) ir.ConstraintType {
	switch v {
	case "TOP":
		return ir.ConstraintStart
	case "BOTTOM":
		return ir.ConstraintEnd
	case "CENTER":
		return ir.ConstraintCenter
	case "SCALE":
		return ir.ConstraintScale
	case "TOP_BOTTOM":
		return ir.ConstraintStretch
	}
	return ir.ConstraintNone
}

// HexFromColor converts API color channels in [0,1] to an uppercase
// #RRGGBB hex string. Alpha is dropped; paint opacity carries it instead.
func HexFromColor(c figma.Color) string {
	r := int(math.Round(clamp01(c.R) * 255))
	g := int(math.Round(clamp01(c.G) * 255))
	b := int(math.Round(clamp01(c.B) * 255))
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
