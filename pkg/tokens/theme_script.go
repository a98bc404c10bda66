package tokens

import (
	"fmt"
	"strconv"
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/itsklimov/figma-rn-sub004/pkg/parser"
)

// parseScriptTheme extracts token dictionaries from a theme.ts / theme.js
// module by walking its top-level object literals: exported const
// declarations and a default-exported object both count. Only literal
// values survive; computed values, spreads and imports are ignored.
func parseScriptTheme(project *ProjectTokens, data []byte, path string, pm *parser.Manager) error {
	tree, err := pm.ParseFile(data, path)
	if err != nil {
		return err
	}
	defer tree.Close()

	root := tree.RootNode()
	found := false
	for i := uint(0); i < uint(root.ChildCount()); i++ {
		child := root.Child(i)
		switch child.Kind() {
		case "lexical_declaration", "variable_declaration":
			found = collectDeclaration(project, child, data) || found
		case "export_statement":
			found = collectExport(project, child, data) || found
		}
	}
	if !found {
		return fmt.Errorf("tokens: no object literals in %s", path)
	}
	return nil
}

func collectExport(project *ProjectTokens, node *ts.Node, source []byte) bool {
	found := false
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "lexical_declaration", "variable_declaration":
			found = collectDeclaration(project, child, source) || found
		case "object":
			// export default { ... }
			walkTheme(project, "", objectToValue(child, source))
			found = true
		case "satisfies_expression", "as_expression":
			if obj := firstChildOfKind(child, "object"); obj != nil {
				walkTheme(project, "", objectToValue(obj, source))
				found = true
			}
		}
	}
	return found
}

func collectDeclaration(project *ProjectTokens, node *ts.Node, source []byte) bool {
	found := false
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		decl := node.Child(i)
		if decl.Kind() != "variable_declarator" {
			continue
		}
		value := decl.ChildByFieldName("value")
		if value == nil {
			continue
		}
		if value.Kind() == "satisfies_expression" || value.Kind() == "as_expression" {
			value = firstChildOfKind(value, "object")
		}
		if value == nil || value.Kind() != "object" {
			continue
		}
		walkTheme(project, "", objectToValue(value, source))
		found = true
	}
	return found
}

// objectToValue converts an object literal node into the nested map shape
// the JSON walker understands.
func objectToValue(node *ts.Node, source []byte) map[string]any {
	out := make(map[string]any)
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		pair := node.Child(i)
		if pair.Kind() != "pair" {
			continue
		}
		keyNode := pair.ChildByFieldName("key")
		valNode := pair.ChildByFieldName("value")
		if keyNode == nil || valNode == nil {
			continue
		}
		key := pairKey(keyNode, source)
		if key == "" {
			continue
		}
		if v, ok := literalValue(valNode, source); ok {
			out[key] = v
		}
	}
	return out
}

func pairKey(node *ts.Node, source []byte) string {
	switch node.Kind() {
	case "property_identifier", "identifier", "number":
		return node.Utf8Text(source)
	case "string":
		return stringContent(node, source)
	}
	return ""
}

func literalValue(node *ts.Node, source []byte) (any, bool) {
	switch node.Kind() {
	case "object":
		return objectToValue(node, source), true
	case "string", "template_string":
		return stringContent(node, source), true
	case "number":
		f, err := strconv.ParseFloat(node.Utf8Text(source), 64)
		if err != nil {
			return nil, false
		}
		return f, true
	case "unary_expression":
		// Negative numbers: -4.
		text := node.Utf8Text(source)
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	case "satisfies_expression", "as_expression":
		if inner := firstChildOfKind(node, "object"); inner != nil {
			return objectToValue(inner, source), true
		}
	}
	return nil, false
}

func stringContent(node *ts.Node, source []byte) string {
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Kind() == "string_fragment" {
			return child.Utf8Text(source)
		}
	}
	text := node.Utf8Text(source)
	return strings.Trim(text, "\"'`")
}

func firstChildOfKind(node *ts.Node, kind string) *ts.Node {
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		if c := node.Child(i); c.Kind() == kind {
			return c
		}
	}
	return nil
}
