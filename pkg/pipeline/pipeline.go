// Package pipeline wires the generation stages together: transform,
// normalize, classify, extract styles, match tokens, extract props,
// generate code. Each stage is a pure function of its input plus
// read-only configuration; the pipeline owns no state between runs, so
// concurrent runs need no coordination.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/itsklimov/figma-rn-sub004/pkg/classify"
	"github.com/itsklimov/figma-rn-sub004/pkg/codegen"
	"github.com/itsklimov/figma-rn-sub004/pkg/figma"
	"github.com/itsklimov/figma-rn-sub004/pkg/ir"
	"github.com/itsklimov/figma-rn-sub004/pkg/props"
	"github.com/itsklimov/figma-rn-sub004/pkg/style"
	"github.com/itsklimov/figma-rn-sub004/pkg/tokens"
	"github.com/itsklimov/figma-rn-sub004/pkg/transform"
)

// Input is everything one generation run needs, already resolved in
// memory. Network fetches and file reads happen in the callers.
type Input struct {
	Raw            *figma.RawNode
	Project        *tokens.ProjectTokens
	AssetConfig    classify.AssetConfig
	ColorThreshold float64
	Codegen        codegen.Options
}

// Output is the full result of a run. Empty is set when normalization
// eliminated the whole tree — "nothing to generate" rather than an error.
type Output struct {
	Empty      bool
	Screen     *ir.Screen
	Mappings   *ir.TokenMappings
	Props      *props.Result
	Code       string
	StyleNames []string
}

// Run executes the whole pipeline. The only hard failure is a malformed
// or absent root document; every later stage is total.
func Run(in Input, log *slog.Logger) (*Output, error) {
	if log == nil {
		log = slog.Default()
	}

	canonical, err := transform.Transform(in.Raw)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	normalized := transform.Normalize(canonical)
	if normalized == nil {
		log.Info("normalization removed the whole tree, nothing to generate")
		return &Output{Empty: true}, nil
	}

	root := classify.Classify(normalized, in.AssetConfig)
	designTokens := style.ExtractTree(root)
	screen := &ir.Screen{Root: root, Tokens: designTokens}

	mappings := tokens.Match(designTokens, in.Project, in.ColorThreshold)
	propResult := props.Extract(root)

	result, err := codegen.Generate(screen, mappings, propResult, in.Codegen)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	log.Info("generation complete",
		"component", in.Codegen.ComponentName,
		"props", len(propResult.Order),
		"styles", len(result.StyleNames),
		"colors", designTokens.Colors.Len(),
		"typography", designTokens.Typography.Len())

	return &Output{
		Screen:     screen,
		Mappings:   mappings,
		Props:      propResult,
		Code:       result.Code,
		StyleNames: result.StyleNames,
	}, nil
}
