package codegen

import (
	"fmt"
	"strings"

	"github.com/itsklimov/figma-rn-sub004/pkg/ir"
)

// buildMarkup renders the structural JSX for the whole tree and records
// which react-native elements it used.
func (g *generator) buildMarkup() string {
	g.usedElements = make(map[string]bool)
	return g.renderNode(g.screen.Root, "")
}

// renderNode renders one node. extraAttrs is injected into the opening
// tag (used for the key prop on repeater items).
func (g *generator) renderNode(n *ir.Node, extraAttrs string) string {
	if n == nil {
		return ""
	}
	styleAttr := fmt.Sprintf(" style={%s.%s}", g.opts.stylesVar(), g.styleName(n))

	switch n.Kind {
	case ir.KindText:
		g.usedElements["Text"] = true
		content := jsxText(n.Text)
		if propName, ok := g.props.PropFor(n.ID); ok {
			content = "{" + propName + "}"
		}
		return fmt.Sprintf("<Text%s%s>%s</Text>\n", styleAttr, extraAttrs, content)

	case ir.KindImage:
		g.usedElements["Image"] = true
		source := fmt.Sprintf("{{ uri: '%s' }}", escapeSingle(n.AssetRef))
		if propName, ok := g.props.PropFor(n.ID); ok {
			source = fmt.Sprintf("{{ uri: %s }}", propName)
		}
		return fmt.Sprintf("<Image%s%s source=%s />\n", styleAttr, extraAttrs, source)

	case ir.KindIcon:
		g.usedElements["View"] = true
		return fmt.Sprintf("<View%s%s />\n", styleAttr, extraAttrs)

	case ir.KindButton:
		g.usedElements["TouchableOpacity"] = true
		inner := g.renderChildren(n)
		return fmt.Sprintf("<TouchableOpacity%s%s onPress={() => {}}>\n%s</TouchableOpacity>\n",
			styleAttr, extraAttrs, indent(inner, "  "))

	case ir.KindRepeater:
		return g.renderRepeater(n, styleAttr, extraAttrs)

	default: // Container, Card
		g.usedElements["View"] = true
		if len(n.Children) == 0 {
			return fmt.Sprintf("<View%s%s />\n", styleAttr, extraAttrs)
		}
		inner := g.renderChildren(n)
		return fmt.Sprintf("<View%s%s>\n%s</View>\n", styleAttr, extraAttrs, indent(inner, "  "))
	}
}

func (g *generator) renderChildren(n *ir.Node) string {
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(g.renderNode(c, ""))
	}
	return b.String()
}

// renderRepeater renders the list wrapper and maps the collection prop
// over the single template item.
func (g *generator) renderRepeater(n *ir.Node, styleAttr, extraAttrs string) string {
	g.usedElements["View"] = true

	collection := "items"
	if propName, ok := g.props.PropFor(n.ID); ok {
		collection = propName
	}

	template := g.renderNode(n.Template, " key={index}")
	var b strings.Builder
	fmt.Fprintf(&b, "<View%s%s>\n", styleAttr, extraAttrs)
	fmt.Fprintf(&b, "  {%s.map((item, index) => (\n", collection)
	b.WriteString(indent(template, "    "))
	b.WriteString("  ))}\n")
	b.WriteString("</View>\n")
	return b.String()
}

// jsxText escapes literal text content for safe embedding in JSX.
func jsxText(s string) string {
	if strings.ContainsAny(s, "{}<>") {
		return "{'" + escapeSingle(s) + "'}"
	}
	return s
}

func escapeSingle(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "'", "\\'")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
