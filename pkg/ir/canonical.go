// Package ir defines the intermediate representations shared by the
// generation pipeline: the canonical node tree produced by the transformer,
// the semantic node tree produced by the classifier, and the design-token
// tables threaded through style extraction and token matching.
package ir

// Rect is an axis-aligned bounding box in design-space units.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns the rendered area of the box.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// ConstraintType is a per-axis layout rule describing how a node responds
// to parent resizing.
type ConstraintType string

const (
	ConstraintNone    ConstraintType = ""
	ConstraintStart   ConstraintType = "start"   // pinned to left/top edge
	ConstraintEnd     ConstraintType = "end"     // pinned to right/bottom edge
	ConstraintCenter  ConstraintType = "center"  // keeps distance to parent center
	ConstraintScale   ConstraintType = "scale"   // scales with parent dimension
	ConstraintStretch ConstraintType = "stretch" // pinned to both edges
)

// Constraints holds the per-axis edge constraints of a node.
type Constraints struct {
	Horizontal ConstraintType `json:"horizontal,omitempty"`
	Vertical   ConstraintType `json:"vertical,omitempty"`
}

// Empty reports whether no constraint metadata is present on either axis.
func (c Constraints) Empty() bool {
	return c.Horizontal == ConstraintNone && c.Vertical == ConstraintNone
}

// PaintType identifies the kind of a paint entry.
type PaintType string

const (
	PaintSolid    PaintType = "solid"
	PaintImage    PaintType = "image"
	PaintGradient PaintType = "gradient"
)

// Paint is a fill or stroke entry. Solid paints carry an uppercase #RRGGBB
// hex value; image paints carry the external asset reference.
type Paint struct {
	Type     PaintType `json:"type"`
	Hex      string    `json:"hex,omitempty"`
	Opacity  float64   `json:"opacity"`
	Visible  bool      `json:"visible"`
	ImageRef string    `json:"imageRef,omitempty"`
}

// EffectType identifies the kind of a visual effect.
type EffectType string

const (
	EffectDropShadow  EffectType = "drop-shadow"
	EffectInnerShadow EffectType = "inner-shadow"
	EffectBlur        EffectType = "blur"
)

// Effect is a visual effect attached to a node.
type Effect struct {
	Type    EffectType `json:"type"`
	OffsetX float64    `json:"offsetX"`
	OffsetY float64    `json:"offsetY"`
	Blur    float64    `json:"blur"`
	Spread  float64    `json:"spread"`
	Hex     string     `json:"hex,omitempty"`
	Visible bool       `json:"visible"`
}

// Typography is the flattened text style of a text node.
type Typography struct {
	FontFamily    string  `json:"fontFamily"`
	FontSize      float64 `json:"fontSize"`
	FontWeight    int     `json:"fontWeight"`
	LineHeight    float64 `json:"lineHeight"`
	LetterSpacing float64 `json:"letterSpacing"`
}

// Key returns the canonical composite key for this typography value.
// Cross-stage comparison (extraction vs. project theme) happens on this
// string; the struct itself is the source of truth.
func (t Typography) Key() string {
	return t.FontFamily + "/" + FormatNumber(t.FontSize) + "/" +
		FormatNumber(float64(t.FontWeight)) + "/" + FormatNumber(t.LineHeight) + "/" +
		FormatNumber(t.LetterSpacing)
}

// Insets are edge paddings of an auto-layout frame.
type Insets struct {
	Top    float64 `json:"top,omitempty"`
	Right  float64 `json:"right,omitempty"`
	Bottom float64 `json:"bottom,omitempty"`
	Left   float64 `json:"left,omitempty"`
}

// CanonicalNode is the fully-typed node shape after transformation.
// Children are owned exclusively by their parent; the tree has no shared
// or cyclic references.
type CanonicalNode struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Visible      bool            `json:"visible"`
	Box          Rect            `json:"box"`
	Constraints  Constraints     `json:"constraints"`
	Fills        []Paint         `json:"fills,omitempty"`
	Strokes      []Paint         `json:"strokes,omitempty"`
	StrokeWeight float64         `json:"strokeWeight,omitempty"`
	CornerRadius float64         `json:"cornerRadius,omitempty"`
	Effects      []Effect        `json:"effects,omitempty"`
	Text         string          `json:"text,omitempty"`
	Typography   *Typography     `json:"typography,omitempty"`
	LayoutMode   string          `json:"layoutMode,omitempty"`
	Padding      Insets          `json:"padding,omitempty"`
	ItemSpacing  float64         `json:"itemSpacing,omitempty"`
	Children     []*CanonicalNode `json:"children,omitempty"`
}
