package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"snipyard/internal/application/commands"
	"snipyard/internal/domain"
	"snipyard/internal/ports"
)

// RegisterReadTools adds the snippet tools to the MCP server. All tools are
// read-only with respect to the corpus; resolution is pure text computation.
func RegisterReadTools(s *server.MCPServer, repo ports.SnippetRepository, defaultContext string, maxDepth int) {
	s.AddTool(listTool(), listHandler(repo, defaultContext))
	s.AddTool(resolveTool(), resolveHandler(repo, defaultContext, maxDepth))
	s.AddTool(expandTool(), expandHandler(repo, defaultContext, maxDepth))
}

func contextArg(req mcp.CallToolRequest, fallback string) string {
	if ctx := req.GetString("context", ""); ctx != "" {
		return ctx
	}
	return fallback
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List snippet candidates in the corpus. Each line is the candidate's display label followed by its source location."),
		mcp.WithString("context",
			mcp.Description("Language context filter (defaults to the server's configured context)."),
		),
		mcp.WithString("symbol",
			mcp.Description("Restrict to recipes with this SYMBOL name."),
		),
	)
}

func listHandler(repo ports.SnippetRepository, defaultContext string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListCommand(repo, contextArg(req, defaultContext), req.GetString("symbol", ""))

		candidates, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(candidates) == 0 {
			return mcp.NewToolResultText("No snippets found."), nil
		}

		var sb strings.Builder
		for _, c := range candidates {
			fmt.Fprintf(&sb, "%s\t%s:%d\n", c.Display, c.File, c.Line)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- resolve ---

func resolveTool() mcp.Tool {
	return mcp.NewTool("resolve",
		mcp.WithDescription("Resolve a recipe symbol into its per-destination text, expanding pre/post recipe references recursively."),
		mcp.WithString("symbol",
			mcp.Description("Recipe SYMBOL to resolve"),
			mcp.Required(),
		),
		mcp.WithString("context",
			mcp.Description("Language context filter (defaults to the server's configured context)."),
		),
	)
}

func resolveHandler(repo ports.SnippetRepository, defaultContext string, maxDepth int) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol := req.GetString("symbol", "")
		if symbol == "" {
			return toolError(fmt.Errorf("symbol is required"))
		}

		cmd := commands.NewResolveCommand(repo, contextArg(req, defaultContext), maxDepth)
		cmd.Symbols = []string{symbol}

		m, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if m.Len() == 0 {
			return mcp.NewToolResultText("No matching recipe."), nil
		}
		return mcp.NewToolResultText(formatDestinations(m)), nil
	}
}

// --- expand ---

func expandTool() mcp.Tool {
	return mcp.NewTool("expand",
		mcp.WithDescription("Expand the recipe reference at a cursor position in a line of text: either a (sym sym ...) list or the symbol token under the cursor. Returns the line with the reference replaced by its resolution."),
		mcp.WithString("line",
			mcp.Description("The line of text containing the reference"),
			mcp.Required(),
		),
		mcp.WithNumber("col",
			mcp.Description("0-based cursor column within the line"),
		),
		mcp.WithString("context",
			mcp.Description("Language context filter (defaults to the server's configured context)."),
		),
	)
}

func expandHandler(repo ports.SnippetRepository, defaultContext string, maxDepth int) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		line := req.GetString("line", "")
		col := req.GetInt("col", 0)

		cmd := commands.NewExpandCommand(repo, contextArg(req, defaultContext), maxDepth, line, col)
		res, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		out := res.Line
		if res.Rest.Len() > 0 {
			out += "\n\n" + formatDestinations(res.Rest)
		}
		return mcp.NewToolResultText(out), nil
	}
}

// --- helpers ---

func formatDestinations(m *domain.DestinationMap) string {
	var sb strings.Builder
	for i, dest := range m.Destinations() {
		text, _ := m.Text(dest)
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "--- %s ---\n%s\n", dest, text)
	}
	return sb.String()
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
