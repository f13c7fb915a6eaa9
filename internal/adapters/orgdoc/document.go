package orgdoc

import "snipyard/internal/domain"

// Document is the parsed heading/block tree of one corpus file.
type Document struct {
	Path     string
	Modes    []string   // #+MODE: contexts; empty means unrestricted
	Headings []*Heading // every heading, in source order
}

// Heading is one node of the document tree. Blocks holds only the code
// blocks directly under this heading, never those of nested sub-headings.
type Heading struct {
	Title    string
	Level    int // number of leading stars
	Line     int // 1-based source line
	Symbol   string   // :SYMBOL: property, empty if unnamed
	Langs    []string // :LANG: property contexts; empty means inherit
	Blocks   []domain.CodeBlock
	Parent   *Heading
	Children []*Heading
}

// AppliesTo reports whether the document is eligible under ctx: either it
// declares no #+MODE: restriction or ctx is in the declared set.
func (d *Document) AppliesTo(ctx string) bool {
	if len(d.Modes) == 0 {
		return true
	}
	for _, m := range d.Modes {
		if m == ctx {
			return true
		}
	}
	return false
}

// AncestorTitles returns the titles of this heading's ancestors, outermost
// first, via the backward parent references.
func (h *Heading) AncestorTitles() []string {
	var titles []string
	for cur := h.Parent; cur != nil; cur = cur.Parent {
		titles = append(titles, cur.Title)
	}
	for i, j := 0, len(titles)-1; i < j; i, j = i+1, j-1 {
		titles[i], titles[j] = titles[j], titles[i]
	}
	return titles
}
