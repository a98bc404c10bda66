// Package classify assigns each canonical node one semantic role. The
// rules are an explicit, ordered set of pure predicates over the node;
// the first match wins and the ordering is a stable contract: a repeater's
// children must never be classified as standalone buttons first.
package classify

import (
	"github.com/itsklimov/figma-rn-sub004/pkg/ir"
	"github.com/itsklimov/figma-rn-sub004/pkg/layout"
)

// Classify builds the semantic tree for a canonical tree. It is
// deterministic and total: a node matching no rule becomes a Container.
func Classify(root *ir.CanonicalNode, cfg AssetConfig) *ir.Node {
	return classifyNode(root, nil, cfg)
}

func classifyNode(node *ir.CanonicalNode, parent *ir.Rect, cfg AssetConfig) *ir.Node {
	if node == nil {
		return nil
	}

	out := &ir.Node{
		ID:       node.ID,
		Name:     node.Name,
		Position: layout.MapConstraints(node, parent),
		Source:   node,
	}

	switch {
	case isText(node):
		out.Kind = ir.KindText
		out.Text = node.Text

	case isImage(node, cfg):
		out.Kind = ir.KindImage
		out.AssetRef = imageRef(node)

	case isIcon(node):
		out.Kind = ir.KindIcon

	case isButton(node):
		out.Kind = ir.KindButton
		out.Children = classifyChildren(node, cfg)

	case isCard(node):
		out.Kind = ir.KindCard
		out.Children = classifyChildren(node, cfg)

	case isRepeater(node):
		out.Kind = ir.KindRepeater
		out.Count = len(node.Children)
		out.Template = classifyNode(node.Children[0], &node.Box, cfg)

	default:
		out.Kind = ir.KindContainer
		out.Children = classifyChildren(node, cfg)
	}

	return out
}

func classifyChildren(node *ir.CanonicalNode, cfg AssetConfig) []*ir.Node {
	var out []*ir.Node
	for _, child := range node.Children {
		if c := classifyNode(child, &node.Box, cfg); c != nil {
			out = append(out, c)
		}
	}
	return out
}
