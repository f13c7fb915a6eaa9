package commands

import (
	"context"

	"snipyard/internal/domain"
	"snipyard/internal/ports"
)

// ListCommand indexes the corpus and returns the matching candidates.
type ListCommand struct {
	repo    ports.SnippetRepository
	Context string
	Symbol  string
}

// NewListCommand creates a new ListCommand
func NewListCommand(repo ports.SnippetRepository, langContext, symbol string) *ListCommand {
	return &ListCommand{
		repo:    repo,
		Context: langContext,
		Symbol:  symbol,
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) ([]domain.Candidate, error) {
	return c.repo.Snippets(ports.Query{Context: c.Context, Symbol: c.Symbol})
}
