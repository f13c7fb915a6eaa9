package commands

import (
	"context"

	"snipyard/internal/domain"
	"snipyard/internal/ports"
)

// ResolveCommand expands recipe references into a per-destination map.
// Either Symbols or Candidates may be set; both are processed in order,
// symbols first.
type ResolveCommand struct {
	repo       ports.SnippetRepository
	Context    string
	MaxDepth   int
	Symbols    []string
	Candidates []domain.Candidate
}

// NewResolveCommand creates a new ResolveCommand
func NewResolveCommand(repo ports.SnippetRepository, langContext string, maxDepth int) *ResolveCommand {
	return &ResolveCommand{
		repo:     repo,
		Context:  langContext,
		MaxDepth: maxDepth,
	}
}

// Resolver returns a domain resolver whose symbol lookup re-queries the
// repository with the symbol as filter, so ties all contribute in index
// order and lookup failures read as "no matches".
func (c *ResolveCommand) Resolver() *domain.Resolver {
	r := domain.NewResolver(func(symbol string) []domain.Candidate {
		candidates, err := c.repo.Snippets(ports.Query{Context: c.Context, Symbol: symbol})
		if err != nil {
			return nil
		}
		return candidates
	})
	r.MaxDepth = c.MaxDepth
	return r
}

// Execute runs the resolve command
func (c *ResolveCommand) Execute(ctx context.Context) (*domain.DestinationMap, error) {
	r := c.Resolver()

	m, err := r.ResolveSymbols(c.Symbols...)
	if err != nil {
		return nil, err
	}
	if len(c.Candidates) > 0 {
		rest, err := r.Resolve(c.Candidates...)
		if err != nil {
			return nil, err
		}
		m.Merge(rest)
	}
	return m, nil
}
