package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/itsklimov/figma-rn-sub004/pkg/classify"
	"github.com/itsklimov/figma-rn-sub004/pkg/codegen"
	"github.com/itsklimov/figma-rn-sub004/pkg/pipeline"
	"github.com/itsklimov/figma-rn-sub004/pkg/style"
	"github.com/itsklimov/figma-rn-sub004/pkg/transform"
)

func (s *Server) handleGenerateComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nodeID := req.GetString("node_id", "")
	if nodeID == "" {
		return mcp.NewToolResultError("node_id is required"), nil
	}
	fileKey := req.GetString("file_key", s.cfg.FileKey)
	componentName := req.GetString("component_name", s.cfg.ComponentName)

	raw, err := s.client.Node(ctx, fileKey, nodeID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fetch node %s: %v", nodeID, err)), nil
	}

	out, err := pipeline.Run(pipeline.Input{
		Raw:            raw,
		Project:        s.project,
		AssetConfig:    s.assetConfig(),
		ColorThreshold: s.cfg.ColorThreshold,
		Codegen:        s.codegenOptions(componentName),
	}, s.log)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if out.Empty {
		return mcp.NewToolResultText("Node produced no visible content; nothing to generate."), nil
	}

	if s.validator != nil {
		res, verr := s.validator.Validate(out.Code, out.StyleNames)
		if verr != nil {
			s.log.Warn("validation unavailable", "error", verr)
		} else if !res.Valid {
			payload, _ := json.MarshalIndent(res.Violations, "", "  ")
			return mcp.NewToolResultError(fmt.Sprintf("generated code failed validation:\n%s", payload)), nil
		}
	}

	return mcp.NewToolResultText(out.Code), nil
}

func (s *Server) handlePreviewIR(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	nodeID := req.GetString("node_id", "")
	if nodeID == "" {
		return mcp.NewToolResultError("node_id is required"), nil
	}
	fileKey := req.GetString("file_key", s.cfg.FileKey)

	raw, err := s.client.Node(ctx, fileKey, nodeID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fetch node %s: %v", nodeID, err)), nil
	}

	canonical, err := transform.Transform(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	normalized := transform.Normalize(canonical)
	if normalized == nil {
		return mcp.NewToolResultText("Node produced no visible content."), nil
	}
	root := classify.Classify(normalized, s.assetConfig())
	tokens := style.ExtractTree(root)

	payload, err := json.MarshalIndent(map[string]any{
		"root":       root,
		"colors":     tokens.Colors.Values(),
		"typography": tokens.Typography.Values(),
	}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal preview: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) handleListProjectTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, err := json.MarshalIndent(map[string]any{
		"colors":     s.project.Colors.Entries(),
		"spacing":    s.project.Spacing,
		"radii":      s.project.Radii,
		"typography": s.project.Typography,
		"shadows":    s.project.Shadows,
	}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal tokens: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) assetConfig() classify.AssetConfig {
	cfg := classify.DefaultAssetConfig()
	if len(s.cfg.ImageExtensions) > 0 {
		cfg.ImageExtensions = s.cfg.ImageExtensions
	}
	return cfg
}

func (s *Server) codegenOptions(componentName string) codegen.Options {
	pattern := codegen.PatternStyles
	if s.cfg.StylePattern == "componentStyles" {
		pattern = codegen.PatternComponentStyles
	}
	return codegen.Options{
		ComponentName:    componentName,
		StylePattern:     pattern,
		HasProjectTheme:  !s.project.Empty(),
		UseThemeHookPath: s.cfg.UseThemeHookPath,
		ImportPrefix:     s.cfg.ImportPrefix,
		SuppressTodos:    s.cfg.SuppressTodos,
	}
}
