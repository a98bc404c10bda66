package ir

// Kind is the semantic role assigned to a node by the classifier.
type Kind string

const (
	KindContainer Kind = "container"
	KindText      Kind = "text"
	KindImage     Kind = "image"
	KindIcon      Kind = "icon"
	KindButton    Kind = "button"
	KindCard      Kind = "card"
	KindRepeater  Kind = "repeater"
)

// PositionValue is one resolved positioning value: either a percentage of
// the parent dimension or an absolute pixel value.
type PositionValue struct {
	Percent bool    `json:"percent,omitempty"`
	Value   float64 `json:"value"`
}

// String renders the value the way the stylesheet expects it: percentages
// carry a "%" suffix and no trailing zeros, pixel values are bare numbers.
func (v PositionValue) String() string {
	if v.Percent {
		return FormatNumber(v.Value) + "%"
	}
	return FormatNumber(v.Value)
}

// Pct builds a percentage value rounded to two decimal places.
func Pct(v float64) *PositionValue {
	return &PositionValue{Percent: true, Value: RoundTo(v, 2)}
}

// Px builds an absolute pixel value.
func Px(v float64) *PositionValue {
	return &PositionValue{Value: v}
}

// PositionDecl is the per-node positioning declaration computed from the
// source constraints. Each axis resolves independently, so a node may mix
// percentage and pixel values.
type PositionDecl struct {
	Left   *PositionValue `json:"left,omitempty"`
	Top    *PositionValue `json:"top,omitempty"`
	Right  *PositionValue `json:"right,omitempty"`
	Bottom *PositionValue `json:"bottom,omitempty"`
	Width  *PositionValue `json:"width,omitempty"`
	Height *PositionValue `json:"height,omitempty"`
}

// TokenRef links a style value to the design-token table entry it was
// registered under during extraction.
type TokenRef struct {
	Category TokenCategory `json:"category"`
	Key      string        `json:"key"`
}

// StyleValue is one extracted style property value. Raw always holds the
// literal; Token is set when the value was also recorded as a design token.
type StyleValue struct {
	Raw   string    `json:"raw"`
	Token *TokenRef `json:"token,omitempty"`
}

// StyleProps maps style property names (backgroundColor, borderRadius, …)
// to their extracted values.
type StyleProps map[string]StyleValue

// Node is one node of the semantic tree: a tagged union over the seven
// kinds, carrying only the fields relevant to its role.
type Node struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Kind     Kind          `json:"kind"`
	Position *PositionDecl `json:"position,omitempty"`
	Style    StyleProps    `json:"style,omitempty"`

	// Text fields.
	Text          string `json:"text,omitempty"`
	TypographyKey string `json:"typographyKey,omitempty"`

	// Image fields.
	AssetRef string `json:"assetRef,omitempty"`

	// Repeater fields. Template is the single item subtree; Count is the
	// multiplicity observed in the source design. The template is classified
	// and styled exactly once and never flattened into the parent.
	Template *Node `json:"template,omitempty"`
	Count    int   `json:"count,omitempty"`

	Children []*Node `json:"children,omitempty"`

	// Source is the canonical node this semantic node was classified from.
	// Later stages (style extraction) read paint and typography data through
	// it; it is excluded from the serialized diagnostic tree.
	Source *CanonicalNode `json:"-"`
}

// Walk visits n and every descendant in depth-first order, including
// repeater templates. The visit function returning false prunes descent.
func (n *Node) Walk(visit func(*Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	if n.Template != nil {
		n.Template.Walk(visit)
	}
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Screen pairs the semantic tree with the token bundle extracted from it.
// This is the serializable output of the front half of the pipeline.
type Screen struct {
	Root   *Node         `json:"root"`
	Tokens *DesignTokens `json:"tokens"`
}
