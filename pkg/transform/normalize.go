package transform

import "github.com/itsklimov/figma-rn-sub004/pkg/ir"

// Normalize prunes a canonical tree: invisible nodes and zero-area nodes
// are removed, and wrapper nodes whose only purpose is single-child
// grouping collapse into their child. Returns nil when the whole tree is
// eliminated — the caller treats that as "nothing to generate", not an
// error.
func Normalize(node *ir.CanonicalNode) *ir.CanonicalNode {
	if node == nil {
		return nil
	}
	if !node.Visible {
		return nil
	}
	if node.Box.Area() == 0 {
		return nil
	}

	// Children first, so a wrapper sees its surviving child.
	var kept []*ir.CanonicalNode
	for _, child := range node.Children {
		if n := Normalize(child); n != nil {
			kept = append(kept, n)
		}
	}
	node.Children = kept

	if isRedundantWrapper(node) {
		return node.Children[0]
	}
	return node
}

// isRedundantWrapper reports whether a node adds nothing over its single
// child: no paint, no border, no effects, no text.
func isRedundantWrapper(node *ir.CanonicalNode) bool {
	if len(node.Children) != 1 {
		return false
	}
	if node.Text != "" {
		return false
	}
	if node.StrokeWeight > 0 && anyVisible(node.Strokes) {
		return false
	}
	if anyVisible(node.Fills) {
		return false
	}
	for _, e := range node.Effects {
		if e.Visible {
			return false
		}
	}
	return true
}

func anyVisible(paints []ir.Paint) bool {
	for _, p := range paints {
		if p.Visible {
			return true
		}
	}
	return false
}
