package codegen

import (
	"fmt"
	"strings"

	"github.com/itsklimov/figma-rn-sub004/pkg/ir"
)

// styleKeyOrder fixes the emission order of style properties so output is
// stable and reads layout-first, paint-second, type-last.
var styleKeyOrder = []string{
	"flexDirection", "gap",
	"paddingTop", "paddingRight", "paddingBottom", "paddingLeft",
	"backgroundColor", "opacity",
	"borderWidth", "borderColor", "borderStyle", "borderRadius",
	"fontFamily", "fontSize", "fontWeight", "lineHeight", "letterSpacing",
	"shadow",
}

// numericStyleKeys render as bare numbers; everything else is quoted.
var numericStyleKeys = map[string]bool{
	"gap": true, "opacity": true,
	"paddingTop": true, "paddingRight": true, "paddingBottom": true, "paddingLeft": true,
	"borderWidth": true, "borderRadius": true,
	"fontSize": true, "lineHeight": true, "letterSpacing": true,
}

// buildStylesheet renders either a static StyleSheet.create call or a
// theme-parameterized style factory, one entry per named node in tree
// order.
func (g *generator) buildStylesheet() string {
	var entries strings.Builder
	for i, n := range g.names.nodes {
		entries.WriteString(g.styleEntry(g.names.order[i], n))
	}

	var b strings.Builder
	if g.opts.HasProjectTheme {
		b.WriteString("const createStyles = (theme: ReturnType<typeof useTheme>) =>\n")
		b.WriteString("  StyleSheet.create({\n")
		b.WriteString(indent(entries.String(), "    "))
		b.WriteString("  });\n")
	} else {
		fmt.Fprintf(&b, "const %s = StyleSheet.create({\n", g.opts.stylesVar())
		b.WriteString(indent(entries.String(), "  "))
		b.WriteString("});\n")
	}
	return b.String()
}

func (g *generator) styleEntry(name string, n *ir.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: {\n", name)

	g.writePosition(&b, n.Position)
	g.writeTypography(&b, n)

	for _, key := range styleKeyOrder {
		val, ok := n.Style[key]
		if !ok {
			continue
		}
		if g.skipTypographyKey(n, key) {
			continue
		}
		switch key {
		case "shadow":
			g.writeShadow(&b, n, val)
		default:
			g.writeStyleValue(&b, key, val)
		}
	}

	// Anything outside the fixed order still gets emitted, sorted.
	for _, key := range sortedKeys(n.Style) {
		if key == "shadowColor" || inOrder(key) {
			continue
		}
		g.writeStyleValue(&b, key, n.Style[key])
	}

	b.WriteString("},\n")
	return b.String()
}

func inOrder(key string) bool {
	for _, k := range styleKeyOrder {
		if k == key {
			return true
		}
	}
	return false
}

func (g *generator) writePosition(b *strings.Builder, pos *ir.PositionDecl) {
	if pos == nil {
		return
	}
	b.WriteString("  position: 'absolute',\n")
	writeDim := func(prop string, v *ir.PositionValue) {
		if v == nil {
			return
		}
		if v.Percent {
			fmt.Fprintf(b, "  %s: '%s',\n", prop, v.String())
		} else {
			fmt.Fprintf(b, "  %s: %s,\n", prop, v.String())
		}
	}
	writeDim("left", pos.Left)
	writeDim("top", pos.Top)
	writeDim("right", pos.Right)
	writeDim("bottom", pos.Bottom)
	writeDim("width", pos.Width)
	writeDim("height", pos.Height)
}

// writeTypography emits a theme spread when the node's typography resolved
// to a project token; the individual font properties are skipped then.
func (g *generator) writeTypography(b *strings.Builder, n *ir.Node) {
	path, ok := g.resolvedTypography(n)
	if !ok {
		return
	}
	fmt.Fprintf(b, "  ...theme.%s,\n", path)
}

func (g *generator) resolvedTypography(n *ir.Node) (string, bool) {
	if !g.opts.HasProjectTheme || g.mappings == nil || n.TypographyKey == "" {
		return "", false
	}
	path, resolved, ok := g.mappings.Lookup(ir.TokenRef{Category: ir.CategoryTypography, Key: n.TypographyKey})
	if !ok || !resolved {
		return "", false
	}
	return path, true
}

func (g *generator) skipTypographyKey(n *ir.Node, key string) bool {
	switch key {
	case "fontFamily", "fontSize", "fontWeight", "lineHeight", "letterSpacing":
		_, resolved := g.resolvedTypography(n)
		return resolved
	}
	return false
}

// writeStyleValue renders one property line, substituting theme references
// for resolved tokens and marking unresolved ones.
func (g *generator) writeStyleValue(b *strings.Builder, key string, val ir.StyleValue) {
	if val.Token != nil && g.mappings != nil {
		if path, resolved, ok := g.mappings.Lookup(*val.Token); ok && resolved {
			if g.opts.HasProjectTheme {
				fmt.Fprintf(b, "  %s: theme.%s,\n", key, path)
				return
			}
			fmt.Fprintf(b, "  %s: %s,%s\n", key, renderLiteral(key, val.Raw),
				g.todo("use theme token "+path))
			return
		}
		fmt.Fprintf(b, "  %s: %s,%s\n", key, renderLiteral(key, val.Raw),
			g.todo("no matching theme token"))
		return
	}
	fmt.Fprintf(b, "  %s: %s,\n", key, renderLiteral(key, val.Raw))
}

// writeShadow expands the composite shadow value into the react-native
// shadow properties, or a theme spread when the shadow token resolved.
func (g *generator) writeShadow(b *strings.Builder, n *ir.Node, val ir.StyleValue) {
	if g.opts.HasProjectTheme && val.Token != nil && g.mappings != nil {
		if path, resolved, ok := g.mappings.Lookup(*val.Token); ok && resolved {
			fmt.Fprintf(b, "  ...theme.%s,\n", path)
			return
		}
	}

	sv, ok := g.shadowValue(val)
	if !ok {
		return
	}
	if sv.Hex != "" {
		fmt.Fprintf(b, "  shadowColor: '%s',\n", sv.Hex)
	}
	fmt.Fprintf(b, "  shadowOffset: { width: %s, height: %s },\n",
		ir.FormatNumber(sv.Key.OffsetX), ir.FormatNumber(sv.Key.OffsetY))
	fmt.Fprintf(b, "  shadowRadius: %s,\n", ir.FormatNumber(sv.Key.Blur))
	b.WriteString("  shadowOpacity: 1,\n")
	fmt.Fprintf(b, "  elevation: %d,\n", int(sv.Key.Blur))
}

func (g *generator) shadowValue(val ir.StyleValue) (ir.ShadowValue, bool) {
	if val.Token == nil || g.screen.Tokens == nil {
		return ir.ShadowValue{}, false
	}
	return g.screen.Tokens.Shadows.Get(val.Token.Key)
}

func (g *generator) todo(msg string) string {
	if g.opts.SuppressTodos {
		return ""
	}
	return " // TODO: " + msg
}

// renderLiteral renders a raw style value: numeric properties stay bare,
// everything else is single-quoted.
func renderLiteral(key, raw string) string {
	if numericStyleKeys[key] {
		return raw
	}
	return "'" + escapeSingle(raw) + "'"
}
