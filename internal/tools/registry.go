package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterAll registers all tools with the MCP server.
// This is called from main after server creation but before Run().
func RegisterAll(server *mcp.Server, deps *Dependencies) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_names",
		Description: "Generate up to 20 ranked brand name candidates for a keyword, optionally with domain availability",
	}, NewGenerateHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "hunt_names",
		Description: "Generate repeatedly until enough names with a free domain are found",
	}, NewHuntHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_quality",
		Description: "Test names against the pronounceability gate (length, vowels, consonant and repeat runs)",
	}, NewQualityHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_roots",
		Description: "Show the root words a keyword is reduced to before generation",
	}, NewRootsHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_availability",
		Description: "Check which domains are free for a brand name, or for a list of names",
	}, NewAvailabilityHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recent_generations",
		Description: "List recent generation runs, newest first",
	}, NewRecentHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_generation",
		Description: "Retrieve one generation run by ID",
	}, NewGetGenerationHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "cached_names",
		Description: "List previously generated names for a keyword, best score first",
	}, NewCachedHandler(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "stats",
		Description: "Runtime statistics: operation timings and the score distribution of returned names",
	}, NewStatsHandler(deps))
}
