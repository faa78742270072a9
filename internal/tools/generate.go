package tools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/raphaelgruber/namesmith/internal/naming"
	"github.com/raphaelgruber/namesmith/internal/service"
)

const styleHint = "Use one of: auto, brandable, alternate, compound, real_word, short"

// GenerateInput defines the input schema for generate_names.
type GenerateInput struct {
	Keyword          string   `json:"keyword" jsonschema:"Keyword or short description of the business"`
	Style            string   `json:"style,omitempty" jsonschema:"auto, brandable, alternate, compound, real_word or short. Default auto"`
	Randomness       string   `json:"randomness,omitempty" jsonschema:"low, medium or high. Default medium"`
	Industry         string   `json:"industry,omitempty" jsonschema:"Industry hint for AI generation"`
	Vibe             string   `json:"vibe,omitempty" jsonschema:"Brand vibe hint for AI generation"`
	Country          string   `json:"country,omitempty" jsonschema:"Target market hint for AI generation"`
	AvailabilityMode bool     `json:"availability_mode,omitempty" jsonschema:"Favour coined names likely to have free domains"`
	LocalOnly        bool     `json:"local_only,omitempty" jsonschema:"Skip the AI source and use the procedural engine only"`
	CheckDomains     bool     `json:"check_domains,omitempty" jsonschema:"Check domain availability for every name"`
	TLDs             []string `json:"tlds,omitempty" jsonschema:"TLDs to check, default com io co ai net app"`
}

func (in GenerateInput) options() (service.GenerateOptions, *mcp.CallToolResult) {
	style, err := naming.ParseStyle(in.Style)
	if err != nil {
		return service.GenerateOptions{}, ErrorResult(err.Error(), styleHint)
	}
	randomness, err := naming.ParseRandomness(in.Randomness)
	if err != nil {
		return service.GenerateOptions{}, ErrorResult(err.Error(), "Use low, medium or high")
	}
	return service.GenerateOptions{
		Keyword:          in.Keyword,
		Style:            style,
		Randomness:       randomness,
		Industry:         in.Industry,
		Vibe:             in.Vibe,
		Country:          in.Country,
		AvailabilityMode: in.AvailabilityMode,
		LocalOnly:        in.LocalOnly,
		CheckDomains:     in.CheckDomains,
		TLDs:             in.TLDs,
	}, nil
}

// NewGenerateHandler creates the generate_names tool handler.
func NewGenerateHandler(deps *Dependencies) mcp.ToolHandlerFor[GenerateInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, any, error) {
		opts, bad := input.options()
		if bad != nil {
			return bad, nil, nil
		}
		if opts.CheckDomains && deps.Checker == nil {
			return ErrorResult("Domain checking is not configured", "Retry with check_domains=false"), nil, nil
		}

		result, err := deps.Generation.Generate(ctx, opts)
		if err != nil {
			return generationError(deps, err), nil, nil
		}
		return JSONResult(result), nil, nil
	}
}

// HuntInput defines the input schema for hunt_names.
type HuntInput struct {
	Keyword     string   `json:"keyword" jsonschema:"Keyword or short description of the business"`
	Style       string   `json:"style,omitempty" jsonschema:"auto, brandable, alternate, compound, real_word or short. Default auto"`
	Randomness  string   `json:"randomness,omitempty" jsonschema:"low, medium or high. Default medium"`
	Industry    string   `json:"industry,omitempty" jsonschema:"Industry hint for AI generation"`
	Vibe        string   `json:"vibe,omitempty" jsonschema:"Brand vibe hint for AI generation"`
	TLDs        []string `json:"tlds,omitempty" jsonschema:"TLDs that count as a free domain, default com io co ai net app"`
	Want        int      `json:"want,omitempty" jsonschema:"Names with a free domain to collect, 1-20, default 4"`
	MaxAttempts int      `json:"max_attempts,omitempty" jsonschema:"Generation rounds to try, 1-10, default 5"`
}

// NewHuntHandler creates the hunt_names tool handler.
func NewHuntHandler(deps *Dependencies) mcp.ToolHandlerFor[HuntInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input HuntInput) (*mcp.CallToolResult, any, error) {
		if input.Want < 0 || input.Want > 20 {
			return ErrorResult("Want must be 1-20", "Reduce want value"), nil, nil
		}
		if input.MaxAttempts < 0 || input.MaxAttempts > 10 {
			return ErrorResult("max_attempts must be 1-10", "Reduce max_attempts value"), nil, nil
		}
		opts, bad := GenerateInput{
			Keyword:    input.Keyword,
			Style:      input.Style,
			Randomness: input.Randomness,
			Industry:   input.Industry,
			Vibe:       input.Vibe,
			TLDs:       input.TLDs,
		}.options()
		if bad != nil {
			return bad, nil, nil
		}

		result, err := deps.Generation.Hunt(ctx, service.HuntOptions{
			GenerateOptions: opts,
			Want:            input.Want,
			MaxAttempts:     input.MaxAttempts,
		})
		if err != nil {
			return generationError(deps, err), nil, nil
		}
		return JSONResult(result), nil, nil
	}
}

func generationError(deps *Dependencies, err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, service.ErrEmptyKeyword):
		return ErrorResult("Keyword cannot be empty", `Provide a keyword such as "cloud storage"`)
	case errors.Is(err, service.ErrNoChecker):
		return ErrorResult("Domain checking is not configured", "Use generate_names without check_domains")
	}
	deps.Logger.Error("generation failed", "error", err)
	return ErrorResult("Generation failed", "Retry with local_only=true")
}
