package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsklimov/figma-rn-sub004/pkg/ir"
	"github.com/itsklimov/figma-rn-sub004/pkg/props"
)

func screenFixture() (*ir.Screen, *props.Result) {
	root := &ir.Node{
		ID: "root", Name: "Screen", Kind: ir.KindContainer,
		Style: ir.StyleProps{
			"backgroundColor": {Raw: "#FFFFFF", Token: &ir.TokenRef{Category: ir.CategoryColor, Key: "color_0"}},
		},
		Children: []*ir.Node{
			{ID: "t1", Name: "Title", Kind: ir.KindText, Text: "Hello"},
			{ID: "i1", Name: "Avatar", Kind: ir.KindImage, AssetRef: "img-1"},
		},
	}
	pr := &props.Result{
		Props: map[string]props.Prop{
			"title":  {Kind: props.KindText, Value: "Hello"},
			"avatar": {Kind: props.KindImage, Value: "img-1"},
		},
		Order:  []string{"title", "avatar"},
		ByNode: map[string]string{"t1": "title", "i1": "avatar"},
	}
	tokens := ir.NewDesignTokens()
	tokens.Colors.Add("#FFFFFF")
	return &ir.Screen{Root: root, Tokens: tokens}, pr
}

func TestGenerateNilScreen(t *testing.T) {
	_, err := Generate(nil, nil, nil, Options{})
	assert.Error(t, err)
	_, err = Generate(&ir.Screen{}, nil, nil, Options{})
	assert.Error(t, err)
}

func TestGenerateBasicComponent(t *testing.T) {
	screen, pr := screenFixture()
	res, err := Generate(screen, ir.NewTokenMappings(), pr, Options{ComponentName: "ProfileCard"})
	require.NoError(t, err)

	code := res.Code
	assert.Contains(t, code, "import React from 'react';")
	assert.Contains(t, code, "import { Image, StyleSheet, Text, View } from 'react-native';")
	assert.Contains(t, code, "export interface ProfileCardProps {")
	assert.Contains(t, code, "title: string;")
	assert.Contains(t, code, "avatar: string;")
	assert.Contains(t, code, "export function ProfileCard({ title, avatar }: ProfileCardProps) {")
	assert.Contains(t, code, "<Text style={styles.title}>{title}</Text>")
	assert.Contains(t, code, "source={{ uri: avatar }}")
	assert.Contains(t, code, "const styles = StyleSheet.create({")
	assert.NotContains(t, code, "useTheme")

	assert.Equal(t, []string{"root", "title", "avatar"}, res.StyleNames)
}

func TestGenerateDeterministic(t *testing.T) {
	screen, pr := screenFixture()
	opts := Options{ComponentName: "ProfileCard"}

	first, err := Generate(screen, ir.NewTokenMappings(), pr, opts)
	require.NoError(t, err)
	second, err := Generate(screen, ir.NewTokenMappings(), pr, opts)
	require.NoError(t, err)
	assert.Equal(t, first.Code, second.Code)
}

func TestGenerateThemedStylesheet(t *testing.T) {
	screen, pr := screenFixture()
	mappings := ir.NewTokenMappings()
	mappings.Colors["color_0"] = "colors.background"
	mappings.Resolved[ir.CategoryColor]["color_0"] = true

	res, err := Generate(screen, mappings, pr, Options{
		ComponentName:    "ProfileCard",
		HasProjectTheme:  true,
		UseThemeHookPath: "../theme",
	})
	require.NoError(t, err)

	code := res.Code
	assert.Contains(t, code, "import { useTheme } from '../theme';")
	assert.Contains(t, code, "const theme = useTheme();")
	assert.Contains(t, code, "const styles = createStyles(theme);")
	assert.Contains(t, code, "const createStyles = (theme: ReturnType<typeof useTheme>) =>")
	assert.Contains(t, code, "backgroundColor: theme.colors.background,")
}

func TestGenerateThemeHookPathDefault(t *testing.T) {
	screen, pr := screenFixture()
	res, err := Generate(screen, ir.NewTokenMappings(), pr, Options{HasProjectTheme: true})
	require.NoError(t, err)
	assert.Contains(t, res.Code, "import { useTheme } from '../theme';")
}

func TestGenerateImportPrefix(t *testing.T) {
	screen, pr := screenFixture()
	res, err := Generate(screen, ir.NewTokenMappings(), pr, Options{
		HasProjectTheme:  true,
		UseThemeHookPath: "theme/hooks",
		ImportPrefix:     "@app/",
	})
	require.NoError(t, err)
	assert.Contains(t, res.Code, "import { useTheme } from '@app/theme/hooks';")
}

func TestGenerateTodoMarkers(t *testing.T) {
	screen, pr := screenFixture()
	mappings := ir.NewTokenMappings()
	mappings.Colors["color_0"] = "#FFFFFF" // unresolved fallback

	res, err := Generate(screen, mappings, pr, Options{})
	require.NoError(t, err)
	assert.Contains(t, res.Code, "// TODO: no matching theme token")

	res, err = Generate(screen, mappings, pr, Options{SuppressTodos: true})
	require.NoError(t, err)
	assert.NotContains(t, res.Code, "// TODO")
}

func TestGenerateComponentStylesPattern(t *testing.T) {
	screen, pr := screenFixture()
	res, err := Generate(screen, ir.NewTokenMappings(), pr, Options{
		ComponentName: "OrderCard",
		StylePattern:  PatternComponentStyles,
	})
	require.NoError(t, err)
	assert.Contains(t, res.Code, "const orderCardStyles = StyleSheet.create({")
	assert.Contains(t, res.Code, "style={orderCardStyles.root}")
}

func TestGenerateRepeater(t *testing.T) {
	root := &ir.Node{
		ID: "root", Name: "Screen", Kind: ir.KindContainer,
		Children: []*ir.Node{
			{
				ID: "list", Name: "Orders", Kind: ir.KindRepeater, Count: 3,
				Template: &ir.Node{
					ID: "item", Name: "Order Card", Kind: ir.KindCard,
					Children: []*ir.Node{
						{ID: "label", Name: "Title", Kind: ir.KindText, Text: "Order"},
					},
				},
			},
		},
	}
	pr := &props.Result{
		Props:  map[string]props.Prop{"orders": {Kind: props.KindCollection}},
		Order:  []string{"orders"},
		ByNode: map[string]string{"list": "orders"},
	}

	res, err := Generate(&ir.Screen{Root: root, Tokens: ir.NewDesignTokens()}, ir.NewTokenMappings(), pr, Options{})
	require.NoError(t, err)

	code := res.Code
	assert.Contains(t, code, "orders: unknown[];")
	assert.Contains(t, code, "{orders.map((item, index) => (")
	assert.Contains(t, code, "key={index}")
	// Template styles are emitted exactly once.
	assert.Equal(t, 1, strings.Count(code, "orderCard: {"))
}

func TestGenerateButtonAndPosition(t *testing.T) {
	root := &ir.Node{
		ID: "root", Name: "Screen", Kind: ir.KindContainer,
		Children: []*ir.Node{
			{
				ID: "btn", Name: "Submit Button", Kind: ir.KindButton,
				Position: &ir.PositionDecl{
					Left:  ir.Pct(70.762790697),
					Width: ir.Pct(29.237209302),
					Top:   ir.Px(24),
				},
				Children: []*ir.Node{
					{ID: "lbl", Name: "Label", Kind: ir.KindText, Text: "Submit"},
				},
			},
		},
	}

	res, err := Generate(&ir.Screen{Root: root, Tokens: ir.NewDesignTokens()}, ir.NewTokenMappings(), nil, Options{})
	require.NoError(t, err)

	code := res.Code
	assert.Contains(t, code, "<TouchableOpacity style={styles.submitButton} onPress={() => {}}>")
	assert.Contains(t, code, "position: 'absolute',")
	assert.Contains(t, code, "left: '70.76%',")
	assert.Contains(t, code, "width: '29.24%',")
	assert.Contains(t, code, "top: 24,")
	assert.Contains(t, code, "<Text style={styles.label}>Submit</Text>")
}

func TestGenerateStyleNameCollisions(t *testing.T) {
	root := &ir.Node{
		ID: "root", Name: "Screen", Kind: ir.KindContainer,
		Children: []*ir.Node{
			{ID: "a", Name: "Box", Kind: ir.KindContainer},
			{ID: "b", Name: "Box", Kind: ir.KindContainer},
		},
	}

	res, err := Generate(&ir.Screen{Root: root, Tokens: ir.NewDesignTokens()}, ir.NewTokenMappings(), nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "box", "box2"}, res.StyleNames)
}
