package orgdoc

import (
	"reflect"
	"testing"
)

const sampleDoc = `#+MODE: python, go

* Snippets
** Greeting
:PROPERTIES:
:SYMBOL: greet
:END:
#+begin_src python
print("hi")
#+end_src
** Farewell
:PROPERTIES:
:SYMBOL: bye
:LANG: python, elisp
:END:
#+begin_src python :file "bye.py" :pre-recipe (greet)
print("bye")
#+end_src
* Notes
No blocks here.
`

func TestParseDocument(t *testing.T) {
	doc := Parse(sampleDoc)

	if !reflect.DeepEqual(doc.Modes, []string{"python", "go"}) {
		t.Errorf("Modes = %v", doc.Modes)
	}
	if len(doc.Headings) != 4 {
		t.Fatalf("expected 4 headings, got %d", len(doc.Headings))
	}

	root := doc.Headings[0]
	if root.Title != "Snippets" || root.Level != 1 || root.Line != 3 {
		t.Errorf("root = %+v", root)
	}
	if len(root.Children) != 2 {
		t.Fatalf("root children = %d", len(root.Children))
	}
	if len(root.Blocks) != 0 {
		t.Errorf("blocks of nested headings leaked into parent: %v", root.Blocks)
	}

	greet := root.Children[0]
	if greet.Symbol != "greet" {
		t.Errorf("greet.Symbol = %q", greet.Symbol)
	}
	if len(greet.Blocks) != 1 || greet.Blocks[0].RawText != `print("hi")` {
		t.Errorf("greet.Blocks = %+v", greet.Blocks)
	}
	if greet.Blocks[0].Language != "python" || greet.Blocks[0].Parameters != "" {
		t.Errorf("greet block header = %+v", greet.Blocks[0])
	}

	bye := root.Children[1]
	if !reflect.DeepEqual(bye.Langs, []string{"python", "elisp"}) {
		t.Errorf("bye.Langs = %v", bye.Langs)
	}
	if got := bye.Blocks[0].Parameters; got != `:file "bye.py" :pre-recipe (greet)` {
		t.Errorf("bye block parameters = %q", got)
	}

	notes := doc.Headings[3]
	if notes.Parent != nil || notes.Title != "Notes" {
		t.Errorf("notes = %+v", notes)
	}
}

func TestParseAncestorTitles(t *testing.T) {
	doc := Parse("* A\n** B\n*** C\n#+begin_src sh\nls\n#+end_src\n")

	c := doc.Headings[2]
	want := []string{"A", "B"}
	if got := c.AncestorTitles(); !reflect.DeepEqual(got, want) {
		t.Errorf("AncestorTitles = %v, want %v", got, want)
	}
}

func TestParseUnclosedBlockRunsToEOF(t *testing.T) {
	doc := Parse("* H\n#+begin_src sh\necho one\necho two")

	h := doc.Headings[0]
	if len(h.Blocks) != 1 {
		t.Fatalf("blocks = %+v", h.Blocks)
	}
	if h.Blocks[0].RawText != "echo one\necho two" {
		t.Errorf("RawText = %q", h.Blocks[0].RawText)
	}
}

func TestParseBlockBeforeFirstHeadingIsDropped(t *testing.T) {
	doc := Parse("#+begin_src sh\nls\n#+end_src\n* H\n")

	for _, h := range doc.Headings {
		if len(h.Blocks) != 0 {
			t.Errorf("stray block attached to %q", h.Title)
		}
	}
}

func TestParseModeOnlyBeforeFirstHeading(t *testing.T) {
	doc := Parse("* H\n#+MODE: python\n")
	if len(doc.Modes) != 0 {
		t.Errorf("late #+MODE: must be ignored, got %v", doc.Modes)
	}
}

func TestAppliesTo(t *testing.T) {
	unrestricted := Parse("* H\n")
	if !unrestricted.AppliesTo("anything") {
		t.Error("document without #+MODE: must apply to every context")
	}

	restricted := Parse("#+MODE: python\n* H\n")
	if !restricted.AppliesTo("python") {
		t.Error("declared context rejected")
	}
	if restricted.AppliesTo("go") {
		t.Error("undeclared context accepted")
	}
}

func TestParseSiblingLevelPopsStack(t *testing.T) {
	doc := Parse("* A\n** B\n** C\n#+begin_src sh\nls\n#+end_src\n")

	c := doc.Headings[2]
	if c.Parent == nil || c.Parent.Title != "A" {
		t.Fatalf("C.Parent = %+v", c.Parent)
	}
	b := doc.Headings[1]
	if len(b.Blocks) != 0 {
		t.Errorf("block attached to wrong sibling: %+v", b.Blocks)
	}
	if len(c.Blocks) != 1 {
		t.Errorf("C.Blocks = %+v", c.Blocks)
	}
}
