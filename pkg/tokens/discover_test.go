package tokens

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsklimov/figma-rn-sub004/pkg/color"
	"github.com/itsklimov/figma-rn-sub004/pkg/parser"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscoverThemeFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/theme/colors.ts", "export const colors = {};")
	writeFile(t, dir, "src/theme/spacing.json", "{}")
	writeFile(t, dir, "src/unrelated.ts", "export {};")

	files, err := DiscoverThemeFiles(dir, []string{"src/theme/**/*.{ts,json}"})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Contains(t, files[0], "colors.ts")
	assert.Contains(t, files[1], "spacing.json")
}

func TestDiscoverThemeFilesDefaultGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "theme.json", "{}")

	files, err := DiscoverThemeFiles(dir, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestLoadProjectTokensFromJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "theme.json", `{"colors": {"primary": "#1A73E8"}, "spacing": {"md": 16}}`)

	p, err := LoadProjectTokens(dir, nil, nil, nil)
	require.NoError(t, err)

	path, ok := p.Colors.FindClosest("#1A73E8", color.DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "colors.primary", path)
	assert.Equal(t, "spacing.md", p.Spacing["16"])
}

func TestLoadProjectTokensFromTypeScript(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "theme.ts", `
export const theme = {
  colors: {
    primary: '#1A73E8',
    background: '#FFFFFF',
  },
  spacing: { sm: 8, md: 16 },
  radii: { card: 12 },
  typography: {
    heading: { fontFamily: 'Inter', fontSize: 24, fontWeight: 700, lineHeight: 32 },
  },
};
`)

	pm := parser.NewManager(nil)
	defer pm.Close()

	p, err := LoadProjectTokens(dir, nil, pm, nil)
	require.NoError(t, err)

	path, ok := p.Colors.FindClosest("#1A73E8", color.DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "colors.primary", path)
	assert.Equal(t, "spacing.md", p.Spacing["16"])
	assert.Equal(t, "radii.card", p.Radii["12"])
}

func TestLoadProjectTokensSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "theme.json", "{ broken")
	writeFile(t, dir, "src/theme.json", `{"colors": {"ink": "#000000"}}`)

	p, err := LoadProjectTokens(dir, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Colors.Len())
}

func TestLoadProjectTokensEmptyProject(t *testing.T) {
	p, err := LoadProjectTokens(t.TempDir(), nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, p.Empty())
}
