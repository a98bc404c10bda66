// Package codegen assembles the final component source: structural markup,
// stylesheet and import list composed under one naming and indentation
// discipline. Output is deterministic for a given screen, mapping set and
// options — the regression-baseline workflow depends on that.
package codegen

// StylePattern names the convention for the generated stylesheet variable.
type StylePattern string

const (
	// PatternStyles names the stylesheet "styles" regardless of component.
	PatternStyles StylePattern = "styles"
	// PatternComponentStyles names it "<component>Styles".
	PatternComponentStyles StylePattern = "componentStyles"
)

// Options carries the generation switches and the naming/import-path
// conventions supplied by the project configuration.
type Options struct {
	// ComponentName is the exported component identifier. Defaults to
	// "GeneratedScreen" when empty.
	ComponentName string

	// SuppressTodos omits the placeholder markers emitted for style values
	// that did not resolve to a theme token.
	SuppressTodos bool

	// HasProjectTheme switches from a static StyleSheet.create call to a
	// theme-parameterized style factory consumed through the theme hook.
	HasProjectTheme bool

	// StylePattern selects the stylesheet variable naming convention.
	StylePattern StylePattern

	// UseThemeHookPath is the module path the useTheme hook is imported
	// from when HasProjectTheme is set.
	UseThemeHookPath string

	// ImportPrefix is prepended to relative import paths (e.g. "@app/").
	ImportPrefix string
}

func (o Options) componentName() string {
	if o.ComponentName == "" {
		return "GeneratedScreen"
	}
	return o.ComponentName
}

func (o Options) stylesVar() string {
	if o.StylePattern == PatternComponentStyles {
		name := o.componentName()
		return lowerFirst(name) + "Styles"
	}
	return "styles"
}

func (o Options) themeHookImport() string {
	if o.UseThemeHookPath == "" {
		return ""
	}
	return o.ImportPrefix + o.UseThemeHookPath
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}
