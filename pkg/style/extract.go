// Package style converts paint, effect, layout and typography data on
// semantic nodes into style properties. Every extracted visual value is
// simultaneously registered in the running design-token collection, in
// first-seen order, so the token matcher can resolve it later.
package style

import (
	"github.com/itsklimov/figma-rn-sub004/pkg/ir"
)

// ExtractTree extracts styles for every node in the semantic tree,
// including repeater templates, and returns the populated token bundle.
func ExtractTree(root *ir.Node) *ir.DesignTokens {
	tokens := ir.NewDesignTokens()
	root.Walk(func(n *ir.Node) bool {
		n.Style = Extract(n, tokens)
		return true
	})
	return tokens
}

// Extract computes the style properties for a single node and registers
// each tokenizable value in tokens. Pure apart from token registration:
// the same node and token state always produce the same result.
func Extract(node *ir.Node, tokens *ir.DesignTokens) ir.StyleProps {
	src := node.Source
	if src == nil {
		return nil
	}
	props := make(ir.StyleProps)

	extractBackground(src, props, tokens)
	extractBorder(src, props, tokens)
	extractRadius(src, props, tokens)
	extractShadow(src, props, tokens)
	extractLayout(src, props, tokens)

	if node.Kind == ir.KindText && src.Typography != nil {
		node.TypographyKey = extractTypography(*src.Typography, props, tokens)
	}

	if len(props) == 0 {
		return nil
	}
	return props
}

// extractBackground takes the topmost opaque, visible solid paint. Paints
// are ordered back-to-front in the source, so scan from the end.
func extractBackground(src *ir.CanonicalNode, props ir.StyleProps, tokens *ir.DesignTokens) {
	for i := len(src.Fills) - 1; i >= 0; i-- {
		p := src.Fills[i]
		if !p.Visible || p.Opacity == 0 || p.Type != ir.PaintSolid || p.Hex == "" {
			continue
		}
		key := tokens.Colors.Add(p.Hex)
		props["backgroundColor"] = ir.StyleValue{
			Raw:   p.Hex,
			Token: &ir.TokenRef{Category: ir.CategoryColor, Key: key},
		}
		if p.Opacity < 1 {
			props["opacity"] = ir.StyleValue{Raw: ir.FormatNumber(p.Opacity)}
		}
		return
	}
}

// extractBorder derives width, color and style from the first enabled
// stroke.
func extractBorder(src *ir.CanonicalNode, props ir.StyleProps, tokens *ir.DesignTokens) {
	if src.StrokeWeight <= 0 {
		return
	}
	for _, p := range src.Strokes {
		if !p.Visible || p.Type != ir.PaintSolid || p.Hex == "" {
			continue
		}
		key := tokens.Colors.Add(p.Hex)
		props["borderWidth"] = ir.StyleValue{Raw: ir.FormatNumber(src.StrokeWeight)}
		props["borderColor"] = ir.StyleValue{
			Raw:   p.Hex,
			Token: &ir.TokenRef{Category: ir.CategoryColor, Key: key},
		}
		props["borderStyle"] = ir.StyleValue{Raw: "solid"}
		return
	}
}

func extractRadius(src *ir.CanonicalNode, props ir.StyleProps, tokens *ir.DesignTokens) {
	if src.CornerRadius <= 0 {
		return
	}
	key := tokens.Radii.Add(src.CornerRadius)
	props["borderRadius"] = ir.StyleValue{
		Raw:   ir.FormatNumber(src.CornerRadius),
		Token: &ir.TokenRef{Category: ir.CategoryRadius, Key: key},
	}
}

// extractShadow derives the shadow from the first drop-shadow effect. The
// structured key serializes to "offsetX,offsetY,blur,spread" only here, at
// the token boundary.
func extractShadow(src *ir.CanonicalNode, props ir.StyleProps, tokens *ir.DesignTokens) {
	for _, e := range src.Effects {
		if !e.Visible || e.Type != ir.EffectDropShadow {
			continue
		}
		sv := ir.ShadowValue{
			Key: ir.ShadowKey{OffsetX: e.OffsetX, OffsetY: e.OffsetY, Blur: e.Blur, Spread: e.Spread},
			Hex: e.Hex,
		}
		key := tokens.Shadows.Add(sv)
		props["shadow"] = ir.StyleValue{
			Raw:   sv.Key.Canonical(),
			Token: &ir.TokenRef{Category: ir.CategoryShadow, Key: key},
		}
		if e.Hex != "" {
			props["shadowColor"] = ir.StyleValue{Raw: e.Hex}
		}
		return
	}
}

// extractLayout maps auto-layout metadata to flex properties; paddings and
// item spacing register as spacing tokens.
func extractLayout(src *ir.CanonicalNode, props ir.StyleProps, tokens *ir.DesignTokens) {
	if src.LayoutMode == "" {
		return
	}
	dir := "column"
	if src.LayoutMode == "HORIZONTAL" {
		dir = "row"
	}
	props["flexDirection"] = ir.StyleValue{Raw: dir}

	spacing := func(prop string, v float64) {
		if v <= 0 {
			return
		}
		key := tokens.Spacing.Add(v)
		props[prop] = ir.StyleValue{
			Raw:   ir.FormatNumber(v),
			Token: &ir.TokenRef{Category: ir.CategorySpacing, Key: key},
		}
	}
	spacing("paddingTop", src.Padding.Top)
	spacing("paddingRight", src.Padding.Right)
	spacing("paddingBottom", src.Padding.Bottom)
	spacing("paddingLeft", src.Padding.Left)
	spacing("gap", src.ItemSpacing)
}

// extractTypography flattens the font attributes into one typography token
// and mirrors them as individual style properties for the stylesheet.
func extractTypography(t ir.Typography, props ir.StyleProps, tokens *ir.DesignTokens) string {
	key := tokens.Typography.Add(t)
	ref := &ir.TokenRef{Category: ir.CategoryTypography, Key: key}

	if t.FontFamily != "" {
		props["fontFamily"] = ir.StyleValue{Raw: t.FontFamily, Token: ref}
	}
	if t.FontSize > 0 {
		props["fontSize"] = ir.StyleValue{Raw: ir.FormatNumber(t.FontSize)}
	}
	if t.FontWeight > 0 {
		props["fontWeight"] = ir.StyleValue{Raw: ir.FormatNumber(float64(t.FontWeight))}
	}
	if t.LineHeight > 0 {
		props["lineHeight"] = ir.StyleValue{Raw: ir.FormatNumber(t.LineHeight)}
	}
	if t.LetterSpacing != 0 {
		props["letterSpacing"] = ir.StyleValue{Raw: ir.FormatNumber(t.LetterSpacing)}
	}
	return key
}
