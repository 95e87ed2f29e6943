package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool definitions

var drawToolDef = mcp.NewTool("draw_fortune",
	mcp.WithDescription("Draw one random fortune cookie from the configured collections. Files are weighted by cookie count unless explicit percentages or equal weighting say otherwise."),
	mcp.WithArray("paths",
		mcp.Description("Weighted location tokens, e.g. [\"30%\", \"wisdom\", \"humor\"]. A percentage applies to the location that follows it. Empty means the default collection."),
		mcp.Items(map[string]any{"type": "string"}),
	),
	mcp.WithBoolean("all",
		mcp.Description("Include offensive cookies alongside the normal ones."),
	),
	mcp.WithBoolean("offensive",
		mcp.Description("Draw from offensive cookies only."),
	),
	mcp.WithBoolean("equal",
		mcp.Description("Weight every file equally instead of by cookie count."),
	),
	mcp.WithBoolean("short",
		mcp.Description("Keep only cookies at or under the length threshold."),
	),
	mcp.WithBoolean("long",
		mcp.Description("Keep only cookies over the length threshold."),
	),
	mcp.WithNumber("length",
		mcp.Description("Length threshold in bytes for short/long. Defaults to the configured short length."),
	),
	mcp.WithString("pattern",
		mcp.Description("Regular expression the cookie must match."),
	),
	mcp.WithBoolean("ignore_case",
		mcp.Description("Match the pattern case-insensitively."),
	),
)

var searchToolDef = mcp.NewTool("search_fortunes",
	mcp.WithDescription("List every fortune cookie matching a regular expression, grouped per source file."),
	mcp.WithString("pattern",
		mcp.Description("Regular expression to match."),
		mcp.Required(),
	),
	mcp.WithArray("paths",
		mcp.Description("Weighted location tokens. Empty means the default collection."),
		mcp.Items(map[string]any{"type": "string"}),
	),
	mcp.WithBoolean("all",
		mcp.Description("Include offensive cookies alongside the normal ones."),
	),
	mcp.WithBoolean("offensive",
		mcp.Description("Search offensive cookies only."),
	),
	mcp.WithBoolean("short",
		mcp.Description("Keep only cookies at or under the length threshold."),
	),
	mcp.WithBoolean("long",
		mcp.Description("Keep only cookies over the length threshold."),
	),
	mcp.WithNumber("length",
		mcp.Description("Length threshold in bytes for short/long. Defaults to the configured short length."),
	),
	mcp.WithBoolean("ignore_case",
		mcp.Description("Match the pattern case-insensitively."),
	),
)

var listFilesToolDef = mcp.NewTool("list_fortune_files",
	mcp.WithDescription("Report the resolved draw probability of every collection and file without drawing a cookie."),
	mcp.WithArray("paths",
		mcp.Description("Weighted location tokens. Empty means the default collection."),
		mcp.Items(map[string]any{"type": "string"}),
	),
	mcp.WithBoolean("all",
		mcp.Description("Include offensive cookies alongside the normal ones."),
	),
	mcp.WithBoolean("offensive",
		mcp.Description("List offensive cookies only."),
	),
	mcp.WithBoolean("equal",
		mcp.Description("Weight every file equally instead of by cookie count."),
	),
	mcp.WithBoolean("short",
		mcp.Description("Keep only cookies at or under the length threshold."),
	),
	mcp.WithBoolean("long",
		mcp.Description("Keep only cookies over the length threshold."),
	),
	mcp.WithNumber("length",
		mcp.Description("Length threshold in bytes for short/long. Defaults to the configured short length."),
	),
	mcp.WithString("pattern",
		mcp.Description("Regular expression the counted cookies must match."),
	),
	mcp.WithBoolean("ignore_case",
		mcp.Description("Match the pattern case-insensitively."),
	),
)
