package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"snipyard/internal/adapters/orgdoc"
	"snipyard/internal/domain"
	"snipyard/internal/ports"
)

// Repository implements ports.SnippetRepository over a corpus directory and
// an optional companion wiki directory.
type Repository struct {
	corpusPath string
	wikiPath   string
}

// Ensure Repository implements SnippetRepository
var _ ports.SnippetRepository = (*Repository)(nil)

// NewRepository creates a new filesystem repository. wikiPath may be empty.
func NewRepository(corpusPath, wikiPath string) *Repository {
	return &Repository{
		corpusPath: expandHome(corpusPath),
		wikiPath:   expandHome(wikiPath),
	}
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return path
}

// Snippets walks the corpus, parses every org document, and returns the
// candidates matching the query. Documents that cannot be read or parsed
// are skipped; only an unreadable corpus root is an error.
func (r *Repository) Snippets(q ports.Query) ([]domain.Candidate, error) {
	if _, err := os.Stat(r.corpusPath); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}

	paths := collectDocuments(r.corpusPath)
	if r.wikiPath != "" {
		// companion corpus is merged only when present
		if _, err := os.Stat(r.wikiPath); err == nil {
			paths = append(paths, collectDocuments(r.wikiPath)...)
		}
	}

	var candidates []domain.Candidate
	for _, path := range paths {
		doc, err := orgdoc.ParseFile(path)
		if err != nil {
			continue
		}
		candidates = append(candidates, indexDocument(doc, q)...)
	}
	return candidates, nil
}

// collectDocuments returns the sorted .org files under root. Walk errors on
// individual entries are skipped.
func collectDocuments(root string) []string {
	var paths []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".org") {
			paths = append(paths, path)
		}
		return nil
	})
	sort.Strings(paths)
	return paths
}

// indexDocument yields the document's candidates under the query: eligible
// headings with at least one qualifying block and no qualifying descendant.
func indexDocument(doc *orgdoc.Document, q ports.Query) []domain.Candidate {
	if !doc.AppliesTo(q.Context) {
		return nil
	}

	var candidates []domain.Candidate
	for _, h := range doc.Headings {
		blocks := qualifyingBlocks(doc, h, q.Context)
		if len(blocks) == 0 {
			continue
		}
		// only innermost headings are indexed: a heading whose descendant
		// also matches would duplicate the descendant's blocks
		if hasQualifyingDescendant(doc, h, q.Context) {
			continue
		}
		if q.Symbol != "" && h.Symbol != q.Symbol {
			continue
		}

		candidates = append(candidates, domain.Candidate{
			Display: buildDisplay(h),
			File:    doc.Path,
			Line:    h.Line,
			Symbol:  h.Symbol,
			Blocks:  blocks,
		})
	}
	return candidates
}

// qualifyingBlocks returns the heading's matching blocks under ctx. A
// heading restricted by an explicit LANG property contributes all of its
// blocks when eligible; otherwise only blocks whose language equals ctx.
func qualifyingBlocks(doc *orgdoc.Document, h *orgdoc.Heading, ctx string) []domain.CodeBlock {
	if !headingEligible(doc, h, ctx) {
		return nil
	}
	if len(h.Langs) > 0 {
		return h.Blocks
	}

	var blocks []domain.CodeBlock
	for _, b := range h.Blocks {
		if b.Language == ctx {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// headingEligible checks the heading's context restriction: its LANG
// property when declared, the document's #+MODE: set otherwise, and no
// restriction at all when neither is present.
func headingEligible(doc *orgdoc.Document, h *orgdoc.Heading, ctx string) bool {
	restriction := h.Langs
	if len(restriction) == 0 {
		restriction = doc.Modes
	}
	if len(restriction) == 0 {
		return true
	}
	for _, lang := range restriction {
		if lang == ctx {
			return true
		}
	}
	return false
}

func hasQualifyingDescendant(doc *orgdoc.Document, h *orgdoc.Heading, ctx string) bool {
	for _, child := range h.Children {
		if len(qualifyingBlocks(doc, child, ctx)) > 0 {
			return true
		}
		if hasQualifyingDescendant(doc, child, ctx) {
			return true
		}
	}
	return false
}

// buildDisplay labels a candidate for the picker: ancestor titles outermost
// first, the heading's own title, the symbol when named, and the source
// line.
func buildDisplay(h *orgdoc.Heading) string {
	parts := append(h.AncestorTitles(), h.Title)
	display := strings.Join(parts, " / ")
	if h.Symbol != "" {
		display += fmt.Sprintf(" (%s)", h.Symbol)
	}
	return fmt.Sprintf("%s :%d", display, h.Line)
}
