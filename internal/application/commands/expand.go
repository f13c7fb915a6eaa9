package commands

import (
	"context"
	"strings"

	"snipyard/internal/application"
	"snipyard/internal/domain"
	"snipyard/internal/ports"
)

// ExpandCommand implements the point-context operation: given a line of
// text and a cursor column, it either expands a literal (sym sym ...) list
// found at the cursor or resolves the single symbol token under it,
// replacing the span with the resolved "here" text.
type ExpandCommand struct {
	repo     ports.SnippetRepository
	Context  string
	MaxDepth int
	Line     string
	Col      int
}

// ExpandResult is the outcome of an expansion at point.
type ExpandResult struct {
	// Line is the input line with the expanded span replaced by the
	// resolution's "here" text.
	Line string

	// Rest holds the resolution's remaining destinations (named files),
	// still to be handed to a sink.
	Rest *domain.DestinationMap
}

// NewExpandCommand creates a new ExpandCommand
func NewExpandCommand(repo ports.SnippetRepository, langContext string, maxDepth int, line string, col int) *ExpandCommand {
	return &ExpandCommand{
		repo:     repo,
		Context:  langContext,
		MaxDepth: maxDepth,
		Line:     line,
		Col:      col,
	}
}

// Execute runs the expand command
func (c *ExpandCommand) Execute(ctx context.Context) (*ExpandResult, error) {
	start, end, symbols := spanAtPoint(c.Line, c.Col)
	if len(symbols) == 0 {
		return nil, application.ErrNoSymbol
	}

	rc := NewResolveCommand(c.repo, c.Context, c.MaxDepth)
	m, err := rc.Resolver().ResolveSymbols(symbols...)
	if err != nil {
		return nil, err
	}

	hereText, _ := m.Take(domain.HereDestination)
	return &ExpandResult{
		Line: c.Line[:start] + hereText + c.Line[end:],
		Rest: m,
	}, nil
}

// spanAtPoint locates what the cursor is on: a parenthesized symbol list
// containing col, or the symbol token around col. It returns the byte span
// [start, end) to replace and the symbols to resolve.
func spanAtPoint(line string, col int) (start, end int, symbols []string) {
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}

	if open := strings.LastIndexByte(line[:min(col+1, len(line))], '('); open >= 0 {
		if close := strings.IndexByte(line[open:], ')'); close >= 0 {
			close += open
			if col <= close {
				return open, close + 1, strings.Fields(line[open+1 : close])
			}
		}
	}

	start, end = col, col
	for start > 0 && isSymbolChar(line[start-1]) {
		start--
	}
	for end < len(line) && isSymbolChar(line[end]) {
		end++
	}
	if start == end {
		return col, col, nil
	}
	return start, end, []string{line[start:end]}
}

func isSymbolChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_':
		return true
	}
	return false
}
