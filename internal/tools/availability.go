package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/raphaelgruber/namesmith/internal/availability"
)

// AvailabilityInput defines the input schema for check_availability.
type AvailabilityInput struct {
	Name  string   `json:"name,omitempty" jsonschema:"Brand name to check"`
	Names []string `json:"names,omitempty" jsonschema:"Several brand names to check in one call"`
	TLDs  []string `json:"tlds,omitempty" jsonschema:"TLDs to check, default com io co ai net app"`
}

// maxNamesPerCall caps the names list of one check_availability call.
const maxNamesPerCall = 50

// namesParallel bounds names checked at once for a names list.
const namesParallel = 4

// NewAvailabilityHandler creates the check_availability tool handler.
func NewAvailabilityHandler(deps *Dependencies) mcp.ToolHandlerFor[AvailabilityInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AvailabilityInput) (*mcp.CallToolResult, any, error) {
		if deps.Checker == nil {
			return ErrorResult("Domain checking is not configured", ""), nil, nil
		}

		tlds := availability.NormalizeTLDs(input.TLDs)

		if len(input.Names) > 0 {
			names := input.Names
			if input.Name != "" {
				names = append([]string{input.Name}, names...)
			}
			if len(names) > maxNamesPerCall {
				return ErrorResult(fmt.Sprintf("Too many names (%d)", len(names)), fmt.Sprintf("Check at most %d names per call", maxNamesPerCall)), nil, nil
			}
			results, err := availability.CheckMany(ctx, deps.Checker, names, tlds, namesParallel)
			if err != nil {
				deps.Logger.Error("availability check failed", "names", len(names), "error", err)
				return ErrorResult("Availability check failed", "Retry later"), nil, nil
			}
			return JSONResult(results), nil, nil
		}
		if input.Name == "" {
			return ErrorResult("No name given", "Pass name or names"), nil, nil
		}

		result, err := deps.Checker.Check(ctx, input.Name, tlds)
		switch {
		case errors.Is(err, availability.ErrInvalidName):
			return ErrorResult("Name has no characters valid in a domain", "Use letters, digits or hyphens"), nil, nil
		case err != nil:
			deps.Logger.Error("availability check failed", "name", input.Name, "error", err)
			return ErrorResult("Availability check failed", "Retry later"), nil, nil
		}
		return JSONResult(result), nil, nil
	}
}
