package classify

import (
	"strings"

	"github.com/itsklimov/figma-rn-sub004/pkg/ir"
)

// Size bounds for the shape heuristics, in design-space pixels.
const (
	iconMaxSize     = 48.0
	buttonMinHeight = 24.0
	buttonMaxHeight = 64.0
)

// vectorTypes are source node types that render pure vector geometry.
var vectorTypes = map[string]bool{
	"VECTOR":            true,
	"BOOLEAN_OPERATION": true,
	"STAR":              true,
	"LINE":              true,
	"ELLIPSE":           true,
	"REGULAR_POLYGON":   true,
}

// isText: the node carries literal text content.
func isText(node *ir.CanonicalNode) bool {
	return node.Type == "TEXT" || node.Text != ""
}

// isImage: a visible fill references an external bitmap, or the node name
// looks like an asset file under the detection config.
func isImage(node *ir.CanonicalNode, cfg AssetConfig) bool {
	for _, p := range node.Fills {
		if p.Visible && p.Type == ir.PaintImage {
			return true
		}
	}
	return cfg.matchesImageName(node.Name)
}

// isIcon: a small, roughly square, vector-only node.
func isIcon(node *ir.CanonicalNode) bool {
	w, h := node.Box.Width, node.Box.Height
	if w == 0 || h == 0 || w > iconMaxSize || h > iconMaxSize {
		return false
	}
	aspect := w / h
	if aspect < 0.5 || aspect > 2 {
		return false
	}
	return vectorOnly(node)
}

func vectorOnly(node *ir.CanonicalNode) bool {
	if len(node.Children) == 0 {
		return vectorTypes[node.Type]
	}
	for _, c := range node.Children {
		if !vectorOnly(c) {
			return false
		}
	}
	return true
}

// isButton: an interactive-shaped container — rounded corners or a
// button-ish name — with a text descendant and a fixed small height.
func isButton(node *ir.CanonicalNode) bool {
	if len(node.Children) == 0 {
		return false
	}
	h := node.Box.Height
	if h < buttonMinHeight || h > buttonMaxHeight {
		return false
	}
	if !hasTextDescendant(node) {
		return false
	}
	return node.CornerRadius > 0 || buttonName(node.Name)
}

func buttonName(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "button") || strings.Contains(n, "btn") ||
		strings.Contains(n, "cta")
}

func hasTextDescendant(node *ir.CanonicalNode) bool {
	for _, c := range node.Children {
		if isText(c) || hasTextDescendant(c) {
			return true
		}
	}
	return false
}

// isCard: a container with a background fill or border and multiple
// heterogeneous children.
func isCard(node *ir.CanonicalNode) bool {
	if len(node.Children) < 2 {
		return false
	}
	decorated := anyVisiblePaint(node.Fills) ||
		(node.StrokeWeight > 0 && anyVisiblePaint(node.Strokes))
	if !decorated {
		return false
	}
	return heterogeneous(node.Children)
}

// heterogeneous: at least two children with distinct structural shapes.
func heterogeneous(children []*ir.CanonicalNode) bool {
	first := shapeSignature(children[0], 2)
	for _, c := range children[1:] {
		if shapeSignature(c, 2) != first {
			return true
		}
	}
	return false
}

// isRepeater: a container whose children are structurally near-identical;
// it collapses to a single template plus a multiplicity.
func isRepeater(node *ir.CanonicalNode) bool {
	if len(node.Children) < 2 {
		return false
	}
	first := shapeSignature(node.Children[0], 3)
	for _, c := range node.Children[1:] {
		if shapeSignature(c, 3) != first {
			return false
		}
	}
	return true
}

// shapeSignature summarizes the structural shape of a subtree down to the
// given depth, ignoring names, text content and exact geometry. Two
// subtrees with the same signature are "near-identical" for repeater and
// heterogeneity checks.
func shapeSignature(node *ir.CanonicalNode, depth int) string {
	if node == nil {
		return ""
	}
	sig := node.Type
	if node.Text != "" {
		sig += "+text"
	}
	if depth == 0 || len(node.Children) == 0 {
		return sig
	}
	sig += "("
	for i, c := range node.Children {
		if i > 0 {
			sig += ","
		}
		sig += shapeSignature(c, depth-1)
	}
	return sig + ")"
}

func anyVisiblePaint(paints []ir.Paint) bool {
	for _, p := range paints {
		if p.Visible {
			return true
		}
	}
	return false
}

func imageRef(node *ir.CanonicalNode) string {
	for _, p := range node.Fills {
		if p.Visible && p.Type == ir.PaintImage && p.ImageRef != "" {
			return p.ImageRef
		}
	}
	return node.Name
}
