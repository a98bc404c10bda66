package tokens

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/itsklimov/figma-rn-sub004/pkg/parser"
)

// defaultThemeGlobs are tried when the project config names no theme
// sources. They cover the usual places React Native projects keep their
// theme definitions.
var defaultThemeGlobs = []string{
	"theme.{ts,js,json}",
	"src/theme.{ts,js,json}",
	"src/theme/**/*.{ts,js,json}",
	"src/styles/theme*.{ts,js,json}",
}

// DiscoverThemeFiles resolves theme source globs against the project root.
// Results are sorted for deterministic ProjectTokens construction.
func DiscoverThemeFiles(rootDir string, globs []string) ([]string, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("tokens: resolve project root: %w", err)
	}
	if len(globs) == 0 {
		globs = defaultThemeGlobs
	}

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range globs {
		matches, err := doublestar.FilepathGlob(filepath.Join(absRoot, pattern))
		if err != nil {
			return nil, fmt.Errorf("tokens: bad theme glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files, nil
}

// LoadProjectTokens discovers and parses the project's theme sources into
// the per-category value→path dictionaries. A project with no theme
// sources yields an empty (pass-through) token set, not an error.
func LoadProjectTokens(rootDir string, globs []string, pm *parser.Manager, log *slog.Logger) (*ProjectTokens, error) {
	if log == nil {
		log = slog.Default()
	}

	files, err := DiscoverThemeFiles(rootDir, globs)
	if err != nil {
		return nil, err
	}

	project := NewProjectTokens()
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Warn("skipping unreadable theme source", "path", file, "error", err)
			continue
		}
		if err := parseThemeSource(project, data, file, pm); err != nil {
			log.Warn("skipping unparseable theme source", "path", file, "error", err)
			continue
		}
		log.Debug("loaded theme source", "path", file)
	}

	log.Info("project tokens loaded",
		"files", len(files),
		"colors", project.Colors.Len(),
		"spacing", len(project.Spacing),
		"radii", len(project.Radii),
		"typography", len(project.Typography),
		"shadows", len(project.Shadows))

	return project, nil
}

func parseThemeSource(project *ProjectTokens, data []byte, path string, pm *parser.Manager) error {
	switch filepath.Ext(path) {
	case ".json":
		return parseJSONTheme(project, data)
	case ".ts", ".js":
		if pm == nil {
			return fmt.Errorf("tokens: no parser available for %s", path)
		}
		return parseScriptTheme(project, data, path, pm)
	default:
		return fmt.Errorf("tokens: unsupported theme source %s", path)
	}
}
