package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsklimov/figma-rn-sub004/pkg/classify"
	"github.com/itsklimov/figma-rn-sub004/pkg/codegen"
	"github.com/itsklimov/figma-rn-sub004/pkg/figma"
	"github.com/itsklimov/figma-rn-sub004/pkg/tokens"
)

func rawScreen() *figma.RawNode {
	return &figma.RawNode{
		ID: "1:1", Name: "Profile Screen", Type: "FRAME",
		AbsoluteBoundingBox: &figma.BoundingBox{X: 0, Y: 0, Width: 430, Height: 900},
		Fills: []figma.Paint{
			{Type: "SOLID", Color: &figma.Color{R: 1, G: 1, B: 1, A: 1}},
		},
		Children: []*figma.RawNode{
			{
				ID: "1:2", Name: "Title", Type: "TEXT", Characters: "Hello",
				AbsoluteBoundingBox: &figma.BoundingBox{X: 16, Y: 24, Width: 200, Height: 32},
				Fills: []figma.Paint{
					{Type: "SOLID", Color: &figma.Color{R: 0.1, G: 0.1, B: 0.1, A: 1}},
				},
				Style: &figma.TypeStyle{FontFamily: "Inter", FontSize: 24, FontWeight: 700, LineHeightPx: 32},
			},
			{
				ID: "1:3", Name: "Avatar", Type: "RECTANGLE",
				AbsoluteBoundingBox: &figma.BoundingBox{X: 16, Y: 80, Width: 96, Height: 96},
				Fills: []figma.Paint{
					{Type: "IMAGE", ImageRef: "img-1"},
				},
			},
		},
	}
}

func TestRunEndToEnd(t *testing.T) {
	out, err := Run(Input{
		Raw:         rawScreen(),
		Project:     tokens.NewProjectTokens(),
		AssetConfig: classify.DefaultAssetConfig(),
		Codegen:     codegen.Options{ComponentName: "ProfileScreen"},
	}, nil)
	require.NoError(t, err)
	require.False(t, out.Empty)

	assert.Equal(t, []string{"title", "avatar"}, out.Props.Order)

	require.NotNil(t, out.Screen)
	assert.GreaterOrEqual(t, out.Screen.Tokens.Colors.Len(), 1)
	assert.GreaterOrEqual(t, out.Screen.Tokens.Typography.Len(), 1)

	assert.Contains(t, out.Code, "export function ProfileScreen({ title, avatar }: ProfileScreenProps) {")
	assert.Contains(t, out.Code, "<Text style={styles.title}>{title}</Text>")
	assert.Contains(t, out.Code, "source={{ uri: avatar }}")
	assert.Contains(t, out.StyleNames, "root")
}

func TestRunMatchesProjectTheme(t *testing.T) {
	project := tokens.NewProjectTokens()
	project.Colors.Add("#FFFFFF", "colors.background")

	out, err := Run(Input{
		Raw:         rawScreen(),
		Project:     project,
		AssetConfig: classify.DefaultAssetConfig(),
		Codegen: codegen.Options{
			ComponentName:   "ProfileScreen",
			HasProjectTheme: true,
		},
	}, nil)
	require.NoError(t, err)

	assert.Contains(t, out.Code, "theme.colors.background")
	assert.Contains(t, out.Code, "import { useTheme } from '../theme';")
}

func TestRunEmptyTree(t *testing.T) {
	hidden := false
	out, err := Run(Input{
		Raw: &figma.RawNode{
			ID: "1:1", Name: "Screen", Type: "FRAME", Visible: &hidden,
			AbsoluteBoundingBox: &figma.BoundingBox{Width: 430, Height: 900},
		},
		Project:     tokens.NewProjectTokens(),
		AssetConfig: classify.DefaultAssetConfig(),
	}, nil)
	require.NoError(t, err)

	// A hidden root eliminates the whole tree; the run reports nothing
	// to generate rather than failing.
	assert.True(t, out.Empty)
	assert.Empty(t, out.Code)
}

func TestRunNilRoot(t *testing.T) {
	_, err := Run(Input{}, nil)
	assert.Error(t, err)
}
