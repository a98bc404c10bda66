package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/itsklimov/figma-rn-sub004/pkg/ir"
	"github.com/itsklimov/figma-rn-sub004/pkg/props"
)

// Result is one generated source unit plus the style names it defines.
type Result struct {
	Code       string
	StyleNames []string
}

// Generate renders the component source for a screen. propResult may be
// nil when no prop extraction ran; mappings may be nil, in which case
// every style value renders its literal.
func Generate(screen *ir.Screen, mappings *ir.TokenMappings, propResult *props.Result, opts Options) (*Result, error) {
	if screen == nil || screen.Root == nil {
		return nil, fmt.Errorf("codegen: nothing to generate")
	}
	if opts.HasProjectTheme && opts.UseThemeHookPath == "" {
		// The themed stylesheet references the hook's return type, so a
		// theme always needs an import path to pull useTheme from.
		opts.UseThemeHookPath = "../theme"
	}
	if propResult == nil {
		propResult = &props.Result{
			Props:  map[string]props.Prop{},
			ByNode: map[string]string{},
		}
	}

	g := &generator{
		screen:   screen,
		mappings: mappings,
		props:    propResult,
		opts:     opts,
		names:    assignStyleNames(screen.Root, propResult),
	}

	markup := g.buildMarkup()
	stylesheet := g.buildStylesheet()
	imports := g.buildImports()

	var b strings.Builder
	b.WriteString(imports)
	b.WriteString("\n")
	b.WriteString(g.buildPropsInterface())
	b.WriteString(g.buildComponent(markup))
	b.WriteString("\n")
	b.WriteString(stylesheet)

	return &Result{
		Code:       b.String(),
		StyleNames: g.styleNameOrder(),
	}, nil
}

type generator struct {
	screen   *ir.Screen
	mappings *ir.TokenMappings
	props    *props.Result
	opts     Options

	names *styleNames

	// usedElements records which react-native elements the markup needs,
	// so the import list only pulls what is used.
	usedElements map[string]bool
}

// styleNames maps node IDs to stylesheet entry names, in tree order.
type styleNames struct {
	byNode map[string]string
	order  []string
	nodes  []*ir.Node // same order as `order`
}

// assignStyleNames walks the tree once and gives every node a unique
// stylesheet entry name: "root" for the root, the assigned prop name or
// the normalized node name otherwise, with numeric suffixes on collision.
func assignStyleNames(root *ir.Node, pr *props.Result) *styleNames {
	sn := &styleNames{byNode: make(map[string]string)}
	taken := make(map[string]bool)

	var walk func(n *ir.Node, isRoot bool)
	walk = func(n *ir.Node, isRoot bool) {
		if n == nil {
			return
		}
		base := "root"
		if !isRoot {
			if propName, ok := pr.PropFor(n.ID); ok {
				base = propName
			} else {
				base = props.Identifier(n.Name)
			}
		}
		name := base
		for i := 2; taken[name]; i++ {
			name = fmt.Sprintf("%s%d", base, i)
		}
		taken[name] = true
		sn.byNode[n.ID] = name
		sn.order = append(sn.order, name)
		sn.nodes = append(sn.nodes, n)

		if n.Template != nil {
			walk(n.Template, false)
		}
		for _, c := range n.Children {
			walk(c, false)
		}
	}
	walk(root, true)
	return sn
}

func (g *generator) styleName(n *ir.Node) string {
	return g.names.byNode[n.ID]
}

func (g *generator) styleNameOrder() []string {
	out := make([]string, len(g.names.order))
	copy(out, g.names.order)
	return out
}

// buildPropsInterface renders the exported props interface when any props
// were extracted.
func (g *generator) buildPropsInterface() string {
	if len(g.props.Order) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "export interface %sProps {\n", g.opts.componentName())
	for _, name := range g.props.Order {
		p := g.props.Props[name]
		switch p.Kind {
		case props.KindCollection:
			fmt.Fprintf(&b, "  %s: unknown[];\n", name)
		default:
			fmt.Fprintf(&b, "  %s: string;\n", name)
		}
	}
	b.WriteString("}\n\n")
	return b.String()
}

func (g *generator) buildComponent(markup string) string {
	var b strings.Builder
	name := g.opts.componentName()

	if len(g.props.Order) > 0 {
		fmt.Fprintf(&b, "export function %s({ %s }: %sProps) {\n",
			name, strings.Join(g.props.Order, ", "), name)
	} else {
		fmt.Fprintf(&b, "export function %s() {\n", name)
	}

	if g.opts.HasProjectTheme {
		b.WriteString("  const theme = useTheme();\n")
		fmt.Fprintf(&b, "  const %s = createStyles(theme);\n", g.opts.stylesVar())
	}

	b.WriteString("  return (\n")
	b.WriteString(indent(markup, "    "))
	b.WriteString("  );\n")
	b.WriteString("}\n")
	return b.String()
}

// indent prefixes every non-empty line.
func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	var b strings.Builder
	for _, line := range lines {
		if line != "" {
			b.WriteString(prefix)
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// sortedKeys returns map keys in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
