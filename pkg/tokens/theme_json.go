package tokens

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/itsklimov/figma-rn-sub004/pkg/color"
	"github.com/itsklimov/figma-rn-sub004/pkg/ir"
)

// parseJSONTheme flattens a JSON theme document into the project token
// dictionaries.
func parseJSONTheme(project *ProjectTokens, data []byte) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("tokens: decode JSON theme: %w", err)
	}
	walkTheme(project, "", doc)
	return nil
}

// walkTheme recursively flattens a nested theme value. Leaves categorize
// by shape first (shadow and typography objects), then by value (hex
// strings are colors), then by path (spacing and radius steps). Keys are
// visited in sorted order so repeated loads build identical dictionaries.
func walkTheme(project *ProjectTokens, prefix string, value any) {
	switch v := value.(type) {
	case map[string]any:
		if sk, ok := shadowFromObject(v); ok {
			project.AddShadow(sk, prefix)
			return
		}
		if t, ok := typographyFromObject(v); ok {
			project.AddTypography(t, prefix)
			return
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walkTheme(project, joinPath(prefix, k), v[k])
		}

	case string:
		if isHexColor(v) {
			project.AddColor(v, prefix)
		}

	case float64:
		switch {
		case pathMentions(prefix, "spacing", "space", "gap"):
			project.AddSpacing(v, prefix)
		case pathMentions(prefix, "radius", "radii", "rounding"):
			project.AddRadius(v, prefix)
		}
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func pathMentions(path string, words ...string) bool {
	p := strings.ToLower(path)
	for _, w := range words {
		if strings.Contains(p, w) {
			return true
		}
	}
	return false
}

func isHexColor(s string) bool {
	return strings.HasPrefix(s, "#") && color.IsHex(s)
}

// shadowFromObject recognizes {offsetX, offsetY, blur, spread?} leaves.
func shadowFromObject(m map[string]any) (ir.ShadowKey, bool) {
	ox, okX := numberField(m, "offsetX", "x")
	oy, okY := numberField(m, "offsetY", "y")
	blur, okB := numberField(m, "blur", "blurRadius")
	if !okB || (!okX && !okY) {
		return ir.ShadowKey{}, false
	}
	spread, _ := numberField(m, "spread")
	return ir.ShadowKey{OffsetX: ox, OffsetY: oy, Blur: blur, Spread: spread}, true
}

// typographyFromObject recognizes text-style leaves carrying at least a
// font family and size.
func typographyFromObject(m map[string]any) (ir.Typography, bool) {
	family, okF := m["fontFamily"].(string)
	size, okS := numberField(m, "fontSize")
	if !okF || !okS {
		return ir.Typography{}, false
	}
	weight, _ := numberField(m, "fontWeight")
	lineHeight, _ := numberField(m, "lineHeight")
	letterSpacing, _ := numberField(m, "letterSpacing")
	return ir.Typography{
		FontFamily:    family,
		FontSize:      size,
		FontWeight:    int(weight),
		LineHeight:    lineHeight,
		LetterSpacing: letterSpacing,
	}, true
}

func numberField(m map[string]any, names ...string) (float64, bool) {
	for _, n := range names {
		if v, ok := m[n].(float64); ok {
			return v, true
		}
	}
	return 0, false
}
