// Command oasgen-mcp runs oasgen's generate pipeline as an MCP server
// over stdio, for AI agents and editors that speak the Model Context
// Protocol instead of invoking the oasgen CLI directly.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oasgen/oasgen/internal/mcpserver"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "oasgen-mcp: %v\n", err)
		os.Exit(1)
	}
}
