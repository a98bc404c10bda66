package codegen

import (
	"fmt"
	"sort"
	"strings"
)

// buildImports renders the import list from what the markup actually
// used. Must run after buildMarkup.
func (g *generator) buildImports() string {
	var b strings.Builder
	b.WriteString("import React from 'react';\n")

	elements := make([]string, 0, len(g.usedElements)+1)
	for el := range g.usedElements {
		elements = append(elements, el)
	}
	elements = append(elements, "StyleSheet")
	sort.Strings(elements)
	fmt.Fprintf(&b, "import { %s } from 'react-native';\n", strings.Join(elements, ", "))

	if g.opts.HasProjectTheme {
		if path := g.opts.themeHookImport(); path != "" {
			fmt.Fprintf(&b, "import { useTheme } from '%s';\n", path)
		}
	}
	return b.String()
}
