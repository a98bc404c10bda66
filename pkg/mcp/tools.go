package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func generateComponentTool() mcp.Tool {
	return mcp.NewTool("generate_component",
		mcp.WithDescription("Generate a React Native component from a Figma node. Returns the TSX source."),
		mcp.WithString("node_id",
			mcp.Required(),
			mcp.Description("Figma node ID to generate from"),
		),
		mcp.WithString("file_key",
			mcp.Description("Figma file key; defaults to the configured file"),
		),
		mcp.WithString("component_name",
			mcp.Description("Exported component name; derived from config when omitted"),
		),
	)
}

func previewIRTool() mcp.Tool {
	return mcp.NewTool("preview_ir",
		mcp.WithDescription("Fetch a Figma node and return its classified intermediate tree as JSON, without generating code."),
		mcp.WithString("node_id",
			mcp.Required(),
			mcp.Description("Figma node ID to preview"),
		),
		mcp.WithString("file_key",
			mcp.Description("Figma file key; defaults to the configured file"),
		),
	)
}

func listProjectTokensTool() mcp.Tool {
	return mcp.NewTool("list_project_tokens",
		mcp.WithDescription("List the design tokens discovered in the target project's theme files."),
	)
}
