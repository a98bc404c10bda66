// Package figma holds the raw node types returned by the Figma REST API and
// a small client for fetching node documents. The rest of the pipeline never
// touches these loosely-typed records directly; the transformer converts
// them into canonical nodes first.
package figma

// Color is an RGBA color with channels in [0,1], as the API returns it.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Vector is a 2D offset.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundingBox is a node's absolute bounding box in the file.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Constraints is the per-axis layout constraint metadata.
// Horizontal is one of LEFT, RIGHT, CENTER, SCALE, LEFT_RIGHT;
// Vertical is one of TOP, BOTTOM, CENTER, SCALE, TOP_BOTTOM.
type Constraints struct {
	Horizontal string `json:"horizontal"`
	Vertical   string `json:"vertical"`
}

// Paint is a fill or stroke entry. Type is SOLID, IMAGE or one of the
// GRADIENT_* variants.
type Paint struct {
	Type     string   `json:"type"`
	Visible  *bool    `json:"visible,omitempty"` // nil means visible
	Opacity  *float64 `json:"opacity,omitempty"` // nil means 1
	Color    *Color   `json:"color,omitempty"`
	ImageRef string   `json:"imageRef,omitempty"`
}

// Effect is a visual effect entry. Type is DROP_SHADOW, INNER_SHADOW,
// LAYER_BLUR or BACKGROUND_BLUR.
type Effect struct {
	Type    string   `json:"type"`
	Visible *bool    `json:"visible,omitempty"`
	Offset  *Vector  `json:"offset,omitempty"`
	Radius  float64  `json:"radius,omitempty"`
	Spread  float64  `json:"spread,omitempty"`
	Color   *Color   `json:"color,omitempty"`
}

// TypeStyle is the typography metadata carried by TEXT nodes.
type TypeStyle struct {
	FontFamily    string  `json:"fontFamily,omitempty"`
	FontSize      float64 `json:"fontSize,omitempty"`
	FontWeight    float64 `json:"fontWeight,omitempty"`
	LineHeightPx  float64 `json:"lineHeightPx,omitempty"`
	LetterSpacing float64 `json:"letterSpacing,omitempty"`
}

// RawNode is one node of the document tree as returned under the API's
// "nodes" response. Every field beyond ID is optional; the transformer
// defaults whatever is missing.
type RawNode struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Type                string       `json:"type"`
	Visible             *bool        `json:"visible,omitempty"` // nil means visible
	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Constraints         *Constraints `json:"constraints,omitempty"`
	Fills               []Paint      `json:"fills,omitempty"`
	Strokes             []Paint      `json:"strokes,omitempty"`
	StrokeWeight        float64      `json:"strokeWeight,omitempty"`
	CornerRadius        float64      `json:"cornerRadius,omitempty"`
	Effects             []Effect     `json:"effects,omitempty"`
	Style               *TypeStyle   `json:"style,omitempty"`
	Characters          string       `json:"characters,omitempty"`

	// Auto-layout metadata (frames only).
	LayoutMode    string  `json:"layoutMode,omitempty"` // HORIZONTAL or VERTICAL
	PaddingLeft   float64 `json:"paddingLeft,omitempty"`
	PaddingRight  float64 `json:"paddingRight,omitempty"`
	PaddingTop    float64 `json:"paddingTop,omitempty"`
	PaddingBottom float64 `json:"paddingBottom,omitempty"`
	ItemSpacing   float64 `json:"itemSpacing,omitempty"`

	Children []*RawNode `json:"children,omitempty"`
}

// NodesResponse is the envelope of GET /v1/files/:key/nodes.
type NodesResponse struct {
	Name  string                   `json:"name"`
	Nodes map[string]*NodeDocument `json:"nodes"`
	Err   string                   `json:"err,omitempty"`
}

// NodeDocument wraps one requested node's document subtree.
type NodeDocument struct {
	Document *RawNode `json:"document"`
}
