package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsklimov/figma-rn-sub004/pkg/ir"
)

func text(id, name, content string) *ir.Node {
	return &ir.Node{ID: id, Name: name, Kind: ir.KindText, Text: content}
}

func image(id, name, ref string) *ir.Node {
	return &ir.Node{ID: id, Name: name, Kind: ir.KindImage, AssetRef: ref}
}

func container(id string, children ...*ir.Node) *ir.Node {
	return &ir.Node{ID: id, Name: id, Kind: ir.KindContainer, Children: children}
}

func TestExtractBasics(t *testing.T) {
	root := container("root",
		text("t1", "Title", "Hello"),
		image("i1", "Avatar", "img-1"),
	)

	r := Extract(root)
	assert.Equal(t, []string{"title", "avatar"}, r.Order)
	assert.Equal(t, Prop{Kind: KindText, Value: "Hello"}, r.Props["title"])
	assert.Equal(t, Prop{Kind: KindImage, Value: "img-1"}, r.Props["avatar"])

	name, ok := r.PropFor("t1")
	require.True(t, ok)
	assert.Equal(t, "title", name)
}

func TestExtractDedupesIdenticalContent(t *testing.T) {
	root := container("root",
		text("t1", "Label", "Hi"),
		text("t2", "Label", "Hi"),
	)

	r := Extract(root)
	assert.Equal(t, []string{"label"}, r.Order)

	n1, _ := r.PropFor("t1")
	n2, _ := r.PropFor("t2")
	assert.Equal(t, n1, n2)
}

func TestExtractCollisionGetsNumericSuffix(t *testing.T) {
	root := container("root",
		text("t1", "Label", "First"),
		text("t2", "Label", "Second"),
		text("t3", "Label", "Third"),
	)

	r := Extract(root)
	assert.Equal(t, []string{"label", "label2", "label3"}, r.Order)
	assert.Equal(t, "First", r.Props["label"].Value)
	assert.Equal(t, "Second", r.Props["label2"].Value)
	assert.Equal(t, "Third", r.Props["label3"].Value)
}

func TestExtractSkipsEmptyContent(t *testing.T) {
	root := container("root",
		text("t1", "Spacer", ""),
		image("i1", "Placeholder", ""),
	)

	r := Extract(root)
	assert.Empty(t, r.Order)
	assert.Empty(t, r.ByNode)
}

func TestExtractRepeaterIsBoundary(t *testing.T) {
	tmpl := container("item",
		text("item-title", "Title", "Row title"),
	)
	list := &ir.Node{
		ID: "list", Name: "Orders", Kind: ir.KindRepeater,
		Template: tmpl, Count: 3,
	}
	root := container("root",
		text("t1", "Title", "Screen title"),
		list,
	)

	r := Extract(root)
	assert.Equal(t, []string{"title", "orders"}, r.Order)
	assert.Equal(t, KindCollection, r.Props["orders"].Kind)

	// Template content never leaks into the parent scheme.
	_, ok := r.PropFor("item-title")
	assert.False(t, ok)
}

func TestExtractCollectionFallbackName(t *testing.T) {
	list := &ir.Node{ID: "list", Name: "###", Kind: ir.KindRepeater}
	r := Extract(container("root", list))
	assert.Equal(t, []string{"items"}, r.Order)
}

func TestExtractNil(t *testing.T) {
	r := Extract(nil)
	assert.Empty(t, r.Order)
}

func TestBaseNameOverrides(t *testing.T) {
	cases := map[string]string{
		"Card Subtitle":    "description",
		"description text": "description",
		"Body copy":        "description",
		"Header Title":     "title",
		"Price tag":        "price",
		"Due Date":         "dateTime",
		"Start time":       "dateTime",
		"Something Else":   "somethingElse",
	}
	for input, want := range cases {
		assert.Equal(t, want, BaseName(input), "input %q", input)
	}
}

func TestIdentifier(t *testing.T) {
	cases := map[string]string{
		"Hero Image":    "heroImage",
		"hero_image":    "heroImage",
		"heroImage":     "heroImage",
		"  Weird--Name": "weirdName",
		"123 things":    "value123Things",
		"###":           "value",
		"":              "value",
	}
	for input, want := range cases {
		assert.Equal(t, want, Identifier(input), "input %q", input)
	}
}
