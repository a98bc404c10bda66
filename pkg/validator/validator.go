// Package validator checks generated component sources before they are
// written out: the code must parse as TSX, and every style reference in
// the markup must exist in the generated stylesheet.
package validator

import (
	"fmt"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/itsklimov/figma-rn-sub004/pkg/parser"
)

// Validator parses generated code and reports violations.
type Validator struct {
	parser *parser.Manager
}

// New creates a validator backed by the shared parser manager.
func New(pm *parser.Manager) *Validator {
	return &Validator{parser: pm}
}

// Result represents the outcome of validating one generated source.
type Result struct {
	Valid      bool
	Violations []Violation
}

// Violation represents a single validation rule violation.
type Violation struct {
	Rule    string // "syntax" or "style-ref"
	Message string
	Line    int // 1-based
	Column  int // 1-based
}

// Validate parses code as TSX and checks its style references against the
// declared style names.
func (v *Validator) Validate(code string, styleNames []string) (*Result, error) {
	source := []byte(code)
	tree, err := v.parser.Parse(source, parser.LanguageTypeScript, true)
	if err != nil {
		return nil, fmt.Errorf("validator: %w", err)
	}
	defer tree.Close()

	return check(tree, source, styleNames), nil
}

// ValidateSource is Validate for files on disk, where the generator's
// style name list is not at hand: the declared names are read from the
// StyleSheet.create call in the code itself.
func (v *Validator) ValidateSource(code string) (*Result, error) {
	source := []byte(code)
	tree, err := v.parser.Parse(source, parser.LanguageTypeScript, true)
	if err != nil {
		return nil, fmt.Errorf("validator: %w", err)
	}
	defer tree.Close()

	declared := collectDeclaredStyles(tree.RootNode(), source)
	return check(tree, source, declared), nil
}

func check(tree *ts.Tree, source []byte, styleNames []string) *Result {
	res := &Result{}
	collectSyntaxErrors(tree.RootNode(), res)

	declared := make(map[string]bool, len(styleNames))
	for _, n := range styleNames {
		declared[n] = true
	}
	for _, ref := range collectStyleRefs(tree.RootNode(), source) {
		if !declared[ref.Name] {
			res.Violations = append(res.Violations, Violation{
				Rule:    "style-ref",
				Message: fmt.Sprintf("style %q is referenced but not defined in the stylesheet", ref.Name),
				Line:    ref.Line,
				Column:  ref.Column,
			})
		}
	}

	res.Valid = len(res.Violations) == 0
	return res
}

// collectSyntaxErrors walks the tree and records ERROR and MISSING nodes.
// Tree-sitter keeps parsing past errors, so one pass finds them all.
func collectSyntaxErrors(node *ts.Node, res *Result) {
	if node.IsError() || node.IsMissing() {
		msg := "syntax error"
		if node.IsMissing() {
			msg = fmt.Sprintf("missing %s", node.Kind())
		}
		res.Violations = append(res.Violations, Violation{
			Rule:    "syntax",
			Message: msg,
			Line:    int(node.StartPosition().Row) + 1,
			Column:  int(node.StartPosition().Column) + 1,
		})
		return
	}
	if !node.HasError() {
		return
	}
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		collectSyntaxErrors(node.Child(i), res)
	}
}
