package domain

import (
	"errors"
	"fmt"
)

// ErrRecursionLimit reports a pre/post reference chain deeper than the
// resolver's configured limit, the usual symptom of recipes that reference
// each other (directly or mutually) without end.
var ErrRecursionLimit = errors.New("recipe recursion limit exceeded")

// DefaultMaxDepth bounds reference chains unless the caller overrides it.
const DefaultMaxDepth = 100

// Resolver expands candidates into per-destination text. Symbolic pre/post
// references are looked up through Lookup, which re-queries the snippet
// index; a symbol with no matches contributes nothing.
//
// MaxDepth > 0 guards against cyclic reference chains; 0 disables the guard
// and lets a cycle recurse unbounded.
type Resolver struct {
	Lookup   func(symbol string) []Candidate
	MaxDepth int
}

// NewResolver creates a resolver with the default depth guard.
func NewResolver(lookup func(symbol string) []Candidate) *Resolver {
	return &Resolver{Lookup: lookup, MaxDepth: DefaultMaxDepth}
}

// ResolveOne expands a single candidate's blocks.
func (r *Resolver) ResolveOne(c Candidate) (*DestinationMap, error) {
	return r.Resolve(c)
}

// Resolve expands the given candidates in order into one destination map.
func (r *Resolver) Resolve(candidates ...Candidate) (*DestinationMap, error) {
	m := NewDestinationMap()
	for _, c := range candidates {
		if err := r.resolveInto(m, c, 0); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ResolveSymbols looks each symbol up in the index and expands every match,
// in index order. Unknown symbols are skipped.
func (r *Resolver) ResolveSymbols(symbols ...string) (*DestinationMap, error) {
	m := NewDestinationMap()
	for _, sym := range symbols {
		if err := r.expandSymbol(m, sym, 0); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// resolveInto folds one candidate's blocks into m, in block order. Each
// block contributes pre ++ existing ++ raw ++ post to its own destination;
// pre/post references are fully resolved first, so they may also write into
// other destinations before their inline fragment is spliced here.
func (r *Resolver) resolveInto(m *DestinationMap, c Candidate, depth int) error {
	for _, block := range c.Blocks {
		d := ParseDirective(block.Parameters)
		if d.Ignore {
			continue
		}

		pre, err := r.refText(m, d.PreRefs, d.Destination, depth, false)
		if err != nil {
			return err
		}
		post, err := r.refText(m, d.PostRefs, d.Destination, depth, true)
		if err != nil {
			return err
		}

		m.Fold(d.Destination, pre, block.RawText, post)
	}
	return nil
}

// refText resolves a reference list and returns the inline fragment for
// dest: each pre fragment is followed by a newline, each post fragment is
// preceded by one. Text the references produced for other destinations is
// merged into m as a side effect.
func (r *Resolver) refText(m *DestinationMap, refs []string, dest string, depth int, post bool) (string, error) {
	if len(refs) == 0 {
		return "", nil
	}

	text := ""
	for _, sym := range refs {
		sub := NewDestinationMap()
		if err := r.expandSymbol(sub, sym, depth+1); err != nil {
			return "", err
		}

		inline, ok := sub.Take(dest)
		m.Merge(sub)
		if !ok {
			continue
		}
		if post {
			text += "\n" + inline
		} else {
			text += inline + "\n"
		}
	}
	return text, nil
}

func (r *Resolver) expandSymbol(m *DestinationMap, symbol string, depth int) error {
	if r.MaxDepth > 0 && depth > r.MaxDepth {
		return fmt.Errorf("%w: %q", ErrRecursionLimit, symbol)
	}
	if r.Lookup == nil {
		return nil
	}
	for _, c := range r.Lookup(symbol) {
		if err := r.resolveInto(m, c, depth); err != nil {
			return err
		}
	}
	return nil
}
