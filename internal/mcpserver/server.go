// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasgen's generate pipeline as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/oasgen/oasgen"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasgen MCP server — generates a statically-typed Go client from an OpenAPI 3.x document.

Configuration: All defaults are configurable via OASTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OASTOOLS_CACHE_ENABLED (default: true) — disable spec caching entirely
- OASTOOLS_CACHE_URL_TTL (default: 5m) — cache TTL for URL-fetched specs
- OASTOOLS_CACHE_CONTENT_TTL (default: 15m) — cache TTL for inline content
- OASTOOLS_MAX_INLINE_SIZE (default: 1MiB) — max size of inline content input
- OASTOOLS_ALLOW_PRIVATE_IPS (default: false) — allow URL inputs to resolve to private/loopback IPs

Caching: URL and inline content inputs are cached per session, keyed by URL or a content hash. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasgen", Version: oasgen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate a statically-typed Go client from an OpenAPI 3.x document. Provide the spec as a file path, URL, or inline content (exactly one). Requires output_dir. Returns a manifest of generated files plus type/operation counts.",
	}, handleGenerate)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
