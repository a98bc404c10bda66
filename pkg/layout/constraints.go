// Package layout computes per-node positioning declarations from the
// source edge constraints, relative to the parent's bounds.
package layout

import (
	"math"

	"github.com/itsklimov/figma-rn-sub004/pkg/ir"
)

// MapConstraints resolves a node's position against its parent bounds.
// Returns nil when the node has no constraint metadata or no parent bounds
// are supplied (the root) — callers fall back to default positioning.
// The two axes resolve independently, so a node may be percentage-based
// horizontally and pixel-based vertically.
func MapConstraints(node *ir.CanonicalNode, parent *ir.Rect) *ir.PositionDecl {
	if node == nil || parent == nil || node.Constraints.Empty() {
		return nil
	}

	decl := &ir.PositionDecl{}

	relX := node.Box.X - parent.X
	relY := node.Box.Y - parent.Y

	switch node.Constraints.Horizontal {
	case ir.ConstraintScale:
		if parent.Width > 0 {
			decl.Left = ir.Pct(relX / parent.Width * 100)
			decl.Width = ir.Pct(node.Box.Width / parent.Width * 100)
		}
	case ir.ConstraintEnd:
		decl.Right = ir.Px(math.Round(parent.Width - (relX + node.Box.Width)))
		decl.Width = ir.Px(node.Box.Width)
	case ir.ConstraintStretch:
		decl.Left = ir.Px(relX)
		decl.Right = ir.Px(math.Round(parent.Width - (relX + node.Box.Width)))
	case ir.ConstraintStart, ir.ConstraintCenter:
		decl.Left = ir.Px(relX)
		decl.Width = ir.Px(node.Box.Width)
	}

	switch node.Constraints.Vertical {
	case ir.ConstraintScale:
		if parent.Height > 0 {
			decl.Top = ir.Pct(relY / parent.Height * 100)
			decl.Height = ir.Pct(node.Box.Height / parent.Height * 100)
		}
	case ir.ConstraintEnd:
		decl.Bottom = ir.Px(math.Round(parent.Height - (relY + node.Box.Height)))
		decl.Height = ir.Px(node.Box.Height)
	case ir.ConstraintStretch:
		decl.Top = ir.Px(relY)
		decl.Bottom = ir.Px(math.Round(parent.Height - (relY + node.Box.Height)))
	case ir.ConstraintStart, ir.ConstraintCenter:
		decl.Top = ir.Px(relY)
		decl.Height = ir.Px(node.Box.Height)
	}

	return decl
}
