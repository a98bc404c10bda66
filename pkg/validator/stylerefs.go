package validator

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// StyleRef is one styles.<name> member access found in the code.
type StyleRef struct {
	Name   string
	Line   int // 1-based
	Column int // 1-based
}

// styleObjects are the identifiers generated stylesheets are bound to.
// "styles" covers both the static pattern and the themed factory result;
// anything ending in "Styles" covers the componentStyles pattern.
func isStyleObject(name string) bool {
	return name == "styles" || strings.HasSuffix(name, "Styles")
}

// collectStyleRefs walks the AST and returns every member access on a
// style object. Computed access (styles[expr]) cannot be checked
// statically and is skipped.
func collectStyleRefs(node *ts.Node, source []byte) []StyleRef {
	var refs []StyleRef
	walkStyleRefs(node, source, &refs)
	return refs
}

// collectDeclaredStyles returns the entry names of every
// StyleSheet.create({...}) call in the source.
func collectDeclaredStyles(node *ts.Node, source []byte) []string {
	var names []string
	walkDeclaredStyles(node, source, &names)
	return names
}

func walkDeclaredStyles(node *ts.Node, source []byte, names *[]string) {
	if node.Kind() == "call_expression" {
		fn := node.ChildByFieldName("function")
		if fn != nil && fn.Kind() == "member_expression" && fn.Utf8Text(source) == "StyleSheet.create" {
			if args := node.ChildByFieldName("arguments"); args != nil {
				for i := uint(0); i < uint(args.ChildCount()); i++ {
					arg := args.Child(i)
					if arg.Kind() == "object" {
						collectObjectKeys(arg, source, names)
					}
				}
			}
		}
	}
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		walkDeclaredStyles(node.Child(i), source, names)
	}
}

func collectObjectKeys(obj *ts.Node, source []byte, names *[]string) {
	for i := uint(0); i < uint(obj.ChildCount()); i++ {
		pair := obj.Child(i)
		if pair.Kind() != "pair" {
			continue
		}
		if key := pair.ChildByFieldName("key"); key != nil {
			*names = append(*names, key.Utf8Text(source))
		}
	}
}

func walkStyleRefs(node *ts.Node, source []byte, refs *[]StyleRef) {
	if node.Kind() == "member_expression" {
		obj := node.ChildByFieldName("object")
		prop := node.ChildByFieldName("property")
		if obj != nil && prop != nil &&
			obj.Kind() == "identifier" && isStyleObject(obj.Utf8Text(source)) {
			*refs = append(*refs, StyleRef{
				Name:   prop.Utf8Text(source),
				Line:   int(prop.StartPosition().Row) + 1,
				Column: int(prop.StartPosition().Column) + 1,
			})
		}
	}
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		walkStyleRefs(node.Child(i), source, refs)
	}
}
