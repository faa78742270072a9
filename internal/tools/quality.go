package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/raphaelgruber/namesmith/internal/naming"
)

// QualityInput defines the input schema for check_quality.
type QualityInput struct {
	Names []string `json:"names" jsonschema:"Candidate names to test for pronounceability"`
}

// QualityVerdict is the check_quality result for one name.
type QualityVerdict struct {
	Name   string `json:"name"`
	Passes bool   `json:"passes"`
}

// NewQualityHandler creates the check_quality tool handler.
func NewQualityHandler(deps *Dependencies) mcp.ToolHandlerFor[QualityInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input QualityInput) (*mcp.CallToolResult, any, error) {
		if len(input.Names) == 0 {
			return ErrorResult("Names cannot be empty", "Provide at least one name"), nil, nil
		}
		if len(input.Names) > 100 {
			return ErrorResult("At most 100 names per call", "Split the list"), nil, nil
		}

		verdicts := make([]QualityVerdict, len(input.Names))
		for i, name := range input.Names {
			verdicts[i] = QualityVerdict{Name: name, Passes: naming.PassesQualityCheck(name)}
		}
		return JSONResult(verdicts), nil, nil
	}
}

// RootsInput defines the input schema for extract_roots.
type RootsInput struct {
	Keyword string `json:"keyword" jsonschema:"Free text to reduce to root words"`
}

// NewRootsHandler creates the extract_roots tool handler.
func NewRootsHandler(deps *Dependencies) mcp.ToolHandlerFor[RootsInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RootsInput) (*mcp.CallToolResult, any, error) {
		roots := deps.Generation.Generator().Vocabulary().ExtractKeywords(input.Keyword)
		return JSONResult(map[string]any{"keyword": input.Keyword, "roots": roots}), nil, nil
	}
}
