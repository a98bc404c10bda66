// Package tokens resolves extracted design-token values against a target
// project's theme. The project side is an inverted dictionary per category
// (canonical value → dotted theme path) built once per generation run and
// treated as read-only by the matcher.
package tokens

import (
	"github.com/itsklimov/figma-rn-sub004/pkg/color"
	"github.com/itsklimov/figma-rn-sub004/pkg/ir"
)

// ProjectTokens holds the per-category value→path mappings of the target
// project's theme. Colors key on uppercase hex, spacing and radii on the
// canonical numeric string, typography and shadows on their composite
// keys. A nil or empty category degrades token matching to pass-through,
// never to an error.
type ProjectTokens struct {
	Colors     *color.Dict
	Spacing    map[string]string
	Radii      map[string]string
	Typography map[string]string
	Shadows    map[string]string
}

// NewProjectTokens builds an empty token set.
func NewProjectTokens() *ProjectTokens {
	return &ProjectTokens{
		Colors:     color.NewDict(),
		Spacing:    make(map[string]string),
		Radii:      make(map[string]string),
		Typography: make(map[string]string),
		Shadows:    make(map[string]string),
	}
}

// Empty reports whether no category holds any entry.
func (p *ProjectTokens) Empty() bool {
	if p == nil {
		return true
	}
	return p.Colors.Len() == 0 && len(p.Spacing) == 0 && len(p.Radii) == 0 &&
		len(p.Typography) == 0 && len(p.Shadows) == 0
}

// AddColor registers a theme color under its dotted path.
func (p *ProjectTokens) AddColor(hex, path string) {
	p.Colors.Add(hex, path)
}

// AddSpacing registers a spacing step under its dotted path.
func (p *ProjectTokens) AddSpacing(v float64, path string) {
	p.Spacing[ir.FormatNumber(v)] = path
}

// AddRadius registers a radius step under its dotted path.
func (p *ProjectTokens) AddRadius(v float64, path string) {
	p.Radii[ir.FormatNumber(v)] = path
}

// AddTypography registers a text style under its dotted path.
func (p *ProjectTokens) AddTypography(t ir.Typography, path string) {
	p.Typography[t.Key()] = path
}

// AddShadow registers a shadow under its dotted path.
func (p *ProjectTokens) AddShadow(k ir.ShadowKey, path string) {
	p.Shadows[k.Canonical()] = path
}
