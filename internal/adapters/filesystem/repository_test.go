package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"snipyard/internal/domain"
	"snipyard/internal/ports"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func snippets(t *testing.T, repo *Repository, q ports.Query) []domain.Candidate {
	t.Helper()
	cands, err := repo.Snippets(q)
	if err != nil {
		t.Fatal(err)
	}
	return cands
}

func TestSnippetsBasicIndexing(t *testing.T) {
	corpus := t.TempDir()
	writeDoc(t, corpus, "greet.org", `* Greetings
** Hello
:PROPERTIES:
:SYMBOL: greet
:END:
#+begin_src python
print("hi")
#+end_src
`)

	repo := NewRepository(corpus, "")
	cands := snippets(t, repo, ports.Query{Context: "python"})

	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d: %+v", len(cands), cands)
	}
	c := cands[0]
	if c.Symbol != "greet" || c.Line != 2 {
		t.Errorf("candidate = %+v", c)
	}
	if c.Display != "Greetings / Hello (greet) :2" {
		t.Errorf("Display = %q", c.Display)
	}
	if len(c.Blocks) != 1 || c.Blocks[0].RawText != `print("hi")` {
		t.Errorf("Blocks = %+v", c.Blocks)
	}
}

func TestSnippetsLanguageFilter(t *testing.T) {
	corpus := t.TempDir()
	writeDoc(t, corpus, "mixed.org", `* Mixed
#+begin_src python
py
#+end_src
#+begin_src go
golang
#+end_src
`)

	repo := NewRepository(corpus, "")
	cands := snippets(t, repo, ports.Query{Context: "go"})

	if len(cands) != 1 || len(cands[0].Blocks) != 1 {
		t.Fatalf("candidates = %+v", cands)
	}
	if cands[0].Blocks[0].RawText != "golang" {
		t.Errorf("block = %+v", cands[0].Blocks[0])
	}
}

func TestSnippetsHeadingLangOverrideTakesAllBlocks(t *testing.T) {
	corpus := t.TempDir()
	writeDoc(t, corpus, "langs.org", `* Tagged
:PROPERTIES:
:LANG: go
:END:
#+begin_src python
py
#+end_src
#+begin_src sh
shell
#+end_src
`)

	repo := NewRepository(corpus, "")

	cands := snippets(t, repo, ports.Query{Context: "go"})
	if len(cands) != 1 || len(cands[0].Blocks) != 2 {
		t.Fatalf("explicit LANG heading must contribute all blocks: %+v", cands)
	}

	if got := snippets(t, repo, ports.Query{Context: "python"}); len(got) != 0 {
		t.Errorf("LANG override must exclude other contexts, got %+v", got)
	}
}

func TestSnippetsModeGate(t *testing.T) {
	corpus := t.TempDir()
	writeDoc(t, corpus, "pyonly.org", `#+MODE: python
* H
#+begin_src python
x
#+end_src
`)

	repo := NewRepository(corpus, "")

	if got := snippets(t, repo, ports.Query{Context: "python"}); len(got) != 1 {
		t.Errorf("declared context should index, got %+v", got)
	}
	if got := snippets(t, repo, ports.Query{Context: "go"}); len(got) != 0 {
		t.Errorf("undeclared context must skip document, got %+v", got)
	}
}

func TestSnippetsInnermostOnly(t *testing.T) {
	corpus := t.TempDir()
	writeDoc(t, corpus, "nested.org", `* Outer
#+begin_src python
outer
#+end_src
** Inner
#+begin_src python
inner
#+end_src
`)

	repo := NewRepository(corpus, "")
	cands := snippets(t, repo, ports.Query{Context: "python"})

	if len(cands) != 1 {
		t.Fatalf("expected only the innermost heading, got %+v", cands)
	}
	if !strings.Contains(cands[0].Display, "Inner") {
		t.Errorf("wrong heading indexed: %q", cands[0].Display)
	}
}

func TestSnippetsSymbolFilter(t *testing.T) {
	corpus := t.TempDir()
	writeDoc(t, corpus, "syms.org", `* One
:PROPERTIES:
:SYMBOL: foo
:END:
#+begin_src python
foo body
#+end_src
* Two
:PROPERTIES:
:SYMBOL: bar
:END:
#+begin_src python
bar body
#+end_src
`)

	repo := NewRepository(corpus, "")

	cands := snippets(t, repo, ports.Query{Context: "python", Symbol: "foo"})
	if len(cands) != 1 || cands[0].Symbol != "foo" {
		t.Fatalf("symbol filter leaked: %+v", cands)
	}

	if got := snippets(t, repo, ports.Query{Context: "python", Symbol: "nope"}); len(got) != 0 {
		t.Errorf("unknown symbol must yield nothing, got %+v", got)
	}
}

func TestSnippetsCompanionWikiMerged(t *testing.T) {
	corpus := t.TempDir()
	wiki := t.TempDir()
	writeDoc(t, corpus, "a.org", "* A\n#+begin_src python\na\n#+end_src\n")
	writeDoc(t, wiki, "w.org", "* W\n#+begin_src python\nw\n#+end_src\n")

	repo := NewRepository(corpus, wiki)
	if got := snippets(t, repo, ports.Query{Context: "python"}); len(got) != 2 {
		t.Errorf("expected corpus+wiki candidates, got %+v", got)
	}

	// missing wiki directory is not an error
	repo = NewRepository(corpus, filepath.Join(wiki, "gone"))
	if got := snippets(t, repo, ports.Query{Context: "python"}); len(got) != 1 {
		t.Errorf("missing wiki must be ignored, got %+v", got)
	}
}

func TestSnippetsSkipsUnreadableDocument(t *testing.T) {
	corpus := t.TempDir()
	writeDoc(t, corpus, "ok.org", "* H\n#+begin_src python\nx\n#+end_src\n")
	// a directory with a .org name is unreadable as a document
	if err := os.MkdirAll(filepath.Join(corpus, "broken.org"), 0755); err != nil {
		t.Fatal(err)
	}

	repo := NewRepository(corpus, "")
	if got := snippets(t, repo, ports.Query{Context: "python"}); len(got) != 1 {
		t.Errorf("unreadable document must be skipped, got %+v", got)
	}
}

func TestSnippetsMissingCorpusIsError(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "absent"), "")
	if _, err := repo.Snippets(ports.Query{Context: "python"}); err == nil {
		t.Error("expected error for unreadable corpus root")
	}
}

func TestSnippetsNoDuplicateAfterInsertingResolution(t *testing.T) {
	corpus := t.TempDir()
	writeDoc(t, corpus, "src.org", `* H
:PROPERTIES:
:SYMBOL: greet
:END:
#+begin_src python
print("hi")
#+end_src
`)

	repo := NewRepository(corpus, "")
	before := snippets(t, repo, ports.Query{Context: "python"})

	// resolve the candidate and prepend its text into the same document:
	// plain code lines author no new heading, so the index must not grow
	resolver := domain.NewResolver(func(symbol string) []domain.Candidate {
		out, _ := repo.Snippets(ports.Query{Context: "python", Symbol: symbol})
		return out
	})
	m, err := resolver.ResolveSymbols("greet")
	if err != nil {
		t.Fatal(err)
	}
	text, _ := m.Text(domain.HereDestination)

	path := filepath.Join(corpus, "src.org")
	old, _ := os.ReadFile(path)
	if err := os.WriteFile(path, []byte(text+"\n"+string(old)), 0644); err != nil {
		t.Fatal(err)
	}

	after := snippets(t, repo, ports.Query{Context: "python"})
	if len(after) != len(before) {
		t.Errorf("candidates went from %d to %d", len(before), len(after))
	}
}
