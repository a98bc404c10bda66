package tokens

import (
	"github.com/itsklimov/figma-rn-sub004/pkg/color"
	"github.com/itsklimov/figma-rn-sub004/pkg/ir"
)

// Match resolves every extracted token against the project theme.
//
// Colors route through the perceptual matcher: exact hex match first, then
// nearest Delta-E within colorThreshold; unmatched colors keep their
// literal hex. Spacing and radii match only exactly — those values are
// discrete design-system steps, unlike continuous color space, so a
// nearest-neighbor fallback would silently snap to the wrong step.
// Typography and shadows match by composite key; unmatched typography
// retains its extraction key and unmatched shadows their composite key as
// a fallback label.
//
// Match is deterministic and idempotent: identical inputs always produce
// identical mappings, which the regression-baseline workflow depends on.
func Match(extracted *ir.DesignTokens, project *ProjectTokens, colorThreshold float64) *ir.TokenMappings {
	if colorThreshold <= 0 {
		colorThreshold = color.DefaultThreshold
	}
	out := ir.NewTokenMappings()
	if extracted == nil {
		return out
	}

	for _, key := range extracted.Colors.Keys() {
		hex, _ := extracted.Colors.Get(key)
		if project != nil && project.Colors != nil {
			if path, ok := project.Colors.FindClosest(hex, colorThreshold); ok {
				out.Colors[key] = path
				out.Resolved[ir.CategoryColor][key] = true
				continue
			}
		}
		out.Colors[key] = hex
	}

	matchNumeric(extracted.Spacing, projectCategory(project, ir.CategorySpacing), out, ir.CategorySpacing)
	matchNumeric(extracted.Radii, projectCategory(project, ir.CategoryRadius), out, ir.CategoryRadius)

	for _, key := range extracted.Typography.Keys() {
		t, _ := extracted.Typography.Get(key)
		if project != nil {
			if path, ok := project.Typography[t.Key()]; ok {
				out.Typography[key] = path
				out.Resolved[ir.CategoryTypography][key] = true
				continue
			}
		}
		// Unmatched typography retains the extraction key as its label.
		out.Typography[key] = key
	}

	for _, key := range extracted.Shadows.Keys() {
		s, _ := extracted.Shadows.Get(key)
		composite := s.Key.Canonical()
		if project != nil {
			if path, ok := project.Shadows[composite]; ok {
				out.Shadows[key] = path
				out.Resolved[ir.CategoryShadow][key] = true
				continue
			}
		}
		out.Shadows[key] = composite
	}

	return out
}

func projectCategory(p *ProjectTokens, cat ir.TokenCategory) map[string]string {
	if p == nil {
		return nil
	}
	if cat == ir.CategorySpacing {
		return p.Spacing
	}
	return p.Radii
}

// matchNumeric resolves spacing or radii by exact numeric match; misses
// round-trip to the stringified literal.
func matchNumeric(table *ir.TokenTable[float64], dict map[string]string, out *ir.TokenMappings, cat ir.TokenCategory) {
	dest := out.Spacing
	if cat == ir.CategoryRadius {
		dest = out.Radii
	}
	for _, key := range table.Keys() {
		v, _ := table.Get(key)
		canonical := ir.FormatNumber(v)
		if path, ok := dict[canonical]; ok {
			dest[key] = path
			out.Resolved[cat][key] = true
			continue
		}
		dest[key] = canonical
	}
}
