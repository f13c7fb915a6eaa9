package ports

import "snipyard/internal/domain"

// Query narrows a snippet index request.
type Query struct {
	// Context is the active language/mode filter. A document or heading is
	// eligible only if it declares no restriction or lists this context.
	Context string

	// Symbol, when non-empty, restricts results to headings whose SYMBOL
	// property equals it exactly.
	Symbol string
}

// SnippetRepository produces recipe candidates from a document corpus.
// Indexing is stateless: every call re-reads the corpus.
type SnippetRepository interface {
	// Snippets returns all matching candidates ordered by document path and
	// source line. Unreadable or malformed documents are skipped.
	Snippets(q Query) ([]domain.Candidate, error)
}
