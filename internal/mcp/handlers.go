package mcp

import (
	"context"
	"encoding/json"
	"math/rand/v2"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/fortune/internal/config"
	"github.com/hpungsan/fortune/internal/errors"
	"github.com/hpungsan/fortune/internal/loader"
	"github.com/hpungsan/fortune/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	ld  *loader.Loader
	cfg *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(ld *loader.Loader, cfg *config.Config) *Handlers {
	return &Handlers{ld: ld, cfg: cfg}
}

// Request types for each tool

// DrawRequest represents the arguments for draw_fortune.
type DrawRequest struct {
	Paths      []string `json:"paths,omitempty"`
	All        bool     `json:"all,omitempty"`
	Offensive  bool     `json:"offensive,omitempty"`
	Equal      bool     `json:"equal,omitempty"`
	Short      bool     `json:"short,omitempty"`
	Long       bool     `json:"long,omitempty"`
	Length     int      `json:"length,omitempty"`
	Pattern    string   `json:"pattern,omitempty"`
	IgnoreCase bool     `json:"ignore_case,omitempty"`
}

// SearchRequest represents the arguments for search_fortunes.
type SearchRequest struct {
	Pattern    string   `json:"pattern"`
	Paths      []string `json:"paths,omitempty"`
	All        bool     `json:"all,omitempty"`
	Offensive  bool     `json:"offensive,omitempty"`
	Short      bool     `json:"short,omitempty"`
	Long       bool     `json:"long,omitempty"`
	Length     int      `json:"length,omitempty"`
	IgnoreCase bool     `json:"ignore_case,omitempty"`
}

// ListFilesRequest represents the arguments for list_fortune_files.
type ListFilesRequest struct {
	Paths      []string `json:"paths,omitempty"`
	All        bool     `json:"all,omitempty"`
	Offensive  bool     `json:"offensive,omitempty"`
	Equal      bool     `json:"equal,omitempty"`
	Short      bool     `json:"short,omitempty"`
	Long       bool     `json:"long,omitempty"`
	Length     int      `json:"length,omitempty"`
	Pattern    string   `json:"pattern,omitempty"`
	IgnoreCase bool     `json:"ignore_case,omitempty"`
}

// Handler functions

// HandleDraw handles the draw_fortune tool call.
func (h *Handlers) HandleDraw(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DrawRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	// Tool calls may run concurrently, so each draw gets its own picker.
	p := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	result, err := ops.Draw(h.ld, h.cfg, p, ops.DrawInput{
		Paths:      input.Paths,
		All:        input.All,
		Offensive:  input.Offensive,
		Equal:      input.Equal,
		ShortOnly:  input.Short,
		LongOnly:   input.Long,
		Length:     input.Length,
		Pattern:    input.Pattern,
		IgnoreCase: input.IgnoreCase,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSearch handles the search_fortunes tool call.
func (h *Handlers) HandleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SearchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Match(h.ld, h.cfg, ops.MatchInput{
		Paths:      input.Paths,
		All:        input.All,
		Offensive:  input.Offensive,
		ShortOnly:  input.Short,
		LongOnly:   input.Long,
		Length:     input.Length,
		Pattern:    input.Pattern,
		IgnoreCase: input.IgnoreCase,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleListFiles handles the list_fortune_files tool call.
func (h *Handlers) HandleListFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListFilesRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Inventory(h.ld, h.cfg, ops.InventoryInput{
		Paths:      input.Paths,
		All:        input.All,
		Offensive:  input.Offensive,
		Equal:      input.Equal,
		ShortOnly:  input.Short,
		LongOnly:   input.Long,
		Length:     input.Length,
		Pattern:    input.Pattern,
		IgnoreCase: input.IgnoreCase,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if fErr, ok := err.(*errors.FortuneError); ok {
		errorObj := map[string]any{
			"code":    fErr.Code,
			"message": fErr.Message,
			"status":  fErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like resolved filesystem paths
		if fErr.Code != errors.ErrInternal && fErr.Details != nil {
			errorObj["details"] = fErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
