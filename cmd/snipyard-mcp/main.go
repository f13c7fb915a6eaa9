package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"snipyard/internal/adapters/filesystem"
	mcpadapter "snipyard/internal/adapters/mcp"
	"snipyard/internal/config"
)

func main() {
	config.Load()

	corpusFlag := flag.String("corpus", config.CorpusPath(), "path to the snippet corpus")
	wikiFlag := flag.String("wiki", config.WikiPath(), "path to the companion corpus")
	contextFlag := flag.String("context", config.Context(), "default language context")
	flag.Parse()

	repo := filesystem.NewRepository(*corpusFlag, *wikiFlag)

	mcpServer := server.NewMCPServer(
		"snipyard-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, *contextFlag, config.MaxDepth())

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("snipyard-mcp: %v", err)
	}
}
