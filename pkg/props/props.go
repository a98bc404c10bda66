// Package props scans the semantic tree for text and image content that
// should become component inputs. Assignments live in a side table keyed
// by node ID — the tree itself is never mutated — so the extractor's
// output stays independently testable and the IR stays immutable.
package props

import (
	"fmt"

	"github.com/itsklimov/figma-rn-sub004/pkg/ir"
)

// Kind distinguishes what a prop carries.
type Kind string

const (
	KindText       Kind = "text"
	KindImage      Kind = "image"
	KindCollection Kind = "collection"
)

// Prop is one extracted component input with its initial value from the
// design.
type Prop struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
}

// Result is the outcome of one extraction pass.
type Result struct {
	// Props maps generated prop names to their definitions; Order preserves
	// first-assignment order for deterministic code generation.
	Props map[string]Prop `json:"props"`
	Order []string        `json:"order"`

	// ByNode is the side table: node ID → assigned prop name. The code
	// generator consults it instead of annotations on the tree.
	ByNode map[string]string `json:"byNode"`
}

// PropFor returns the prop name assigned to a node, if any.
func (r *Result) PropFor(nodeID string) (string, bool) {
	name, ok := r.ByNode[nodeID]
	return name, ok
}

// Extract walks the tree and assigns prop names to qualifying nodes.
//
// Text and image nodes dedupe on (node name, kind, content): identical
// keys reuse the same prop name. A name collision with different content
// takes an incrementing numeric suffix. Repeaters are a traversal
// boundary: the repeater itself gets a collection-valued prop and its
// template subtree is never descended into, so template content is never
// numbered into the parent's scheme. A consequence is that repeater
// content is also never deduplicated against identical content elsewhere
// in the tree; that isolation is intentional and kept as-is.
func Extract(root *ir.Node) *Result {
	e := &extractor{
		result: &Result{
			Props:  make(map[string]Prop),
			ByNode: make(map[string]string),
		},
		byContent: make(map[string]string),
	}
	e.visit(root)
	return e.result
}

type extractor struct {
	result    *Result
	byContent map[string]string // content key -> prop name
}

func (e *extractor) visit(node *ir.Node) {
	if node == nil {
		return
	}

	switch node.Kind {
	case ir.KindText:
		if node.Text != "" {
			e.assign(node, KindText, node.Text)
		}

	case ir.KindImage:
		if node.AssetRef != "" {
			e.assign(node, KindImage, node.AssetRef)
		}

	case ir.KindRepeater:
		e.assignCollection(node)
		return // boundary: never descend into the template
	}

	for _, child := range node.Children {
		e.visit(child)
	}
}

func (e *extractor) assign(node *ir.Node, kind Kind, value string) {
	contentKey := node.Name + "\x00" + string(kind) + "\x00" + value
	if name, ok := e.byContent[contentKey]; ok {
		e.result.ByNode[node.ID] = name
		return
	}

	name := e.resolveName(BaseName(node.Name), kind, value)
	if _, exists := e.result.Props[name]; !exists {
		e.result.Props[name] = Prop{Kind: kind, Value: value}
		e.result.Order = append(e.result.Order, name)
	}
	e.byContent[contentKey] = name
	e.result.ByNode[node.ID] = name
}

func (e *extractor) assignCollection(node *ir.Node) {
	base := BaseName(node.Name)
	if base == "" || base == "value" {
		base = "items"
	}
	name := e.resolveName(base, KindCollection, "")
	if _, exists := e.result.Props[name]; !exists {
		e.result.Props[name] = Prop{Kind: KindCollection}
		e.result.Order = append(e.result.Order, name)
	}
	e.result.ByNode[node.ID] = name
}

// resolveName walks suffixes until the name is free or the occupant holds
// identical content (in which case sharing it is safe).
func (e *extractor) resolveName(base string, kind Kind, value string) string {
	name := base
	for i := 2; ; i++ {
		existing, taken := e.result.Props[name]
		if !taken {
			return name
		}
		if existing.Kind == kind && existing.Value == value {
			return name
		}
		name = fmt.Sprintf("%s%d", base, i)
	}
}
