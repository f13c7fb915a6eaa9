package commands

import (
	"context"
	"errors"
	"testing"

	"snipyard/internal/application"
	"snipyard/internal/domain"
)

func expandRepo() *fakeRepo {
	return &fakeRepo{candidates: []domain.Candidate{
		{Symbol: "greet", Blocks: []domain.CodeBlock{pyBlock(`print("hi")`, "")}},
		{Symbol: "bye", Blocks: []domain.CodeBlock{pyBlock(`print("bye")`, "")}},
		{Symbol: "filed", Blocks: []domain.CodeBlock{pyBlock("import os", `:file "imports.py"`)}},
	}}
}

func TestExpandSymbolAtPoint(t *testing.T) {
	line := "insert greet here"
	cmd := NewExpandCommand(expandRepo(), "python", domain.DefaultMaxDepth, line, 9)

	res, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Line != `insert print("hi") here` {
		t.Errorf("Line = %q", res.Line)
	}
	if res.Rest.Len() != 0 {
		t.Errorf("unexpected side destinations: %v", res.Rest.Destinations())
	}
}

func TestExpandLiteralListAtPoint(t *testing.T) {
	line := "x (greet bye) y"
	cmd := NewExpandCommand(expandRepo(), "python", domain.DefaultMaxDepth, line, 4)

	res, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := `x print("hi")print("bye") y`
	if res.Line != want {
		t.Errorf("Line = %q, want %q", res.Line, want)
	}
}

func TestExpandRoutesFileDestinations(t *testing.T) {
	line := "filed"
	cmd := NewExpandCommand(expandRepo(), "python", domain.DefaultMaxDepth, line, 2)

	res, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	// the whole resolution went to a file, so the token is simply removed
	if res.Line != "" {
		t.Errorf("Line = %q", res.Line)
	}
	if text, ok := res.Rest.Text("imports.py"); !ok || text != "import os" {
		t.Errorf("imports.py = %q, %v", text, ok)
	}
}

func TestExpandUnknownSymbolReplacesWithNothing(t *testing.T) {
	cmd := NewExpandCommand(expandRepo(), "python", domain.DefaultMaxDepth, "ghost", 0)

	res, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Line != "" {
		t.Errorf("Line = %q", res.Line)
	}
}

func TestExpandNoSymbolAtPoint(t *testing.T) {
	cmd := NewExpandCommand(expandRepo(), "python", domain.DefaultMaxDepth, "   ", 1)

	if _, err := cmd.Execute(context.Background()); !errors.Is(err, application.ErrNoSymbol) {
		t.Fatalf("expected ErrNoSymbol, got %v", err)
	}
}

func TestSpanAtPoint(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		col     int
		start   int
		end     int
		symbols []string
	}{
		{"token middle", "abc def ghi", 5, 4, 7, []string{"def"}},
		{"token start", "abc", 0, 0, 3, []string{"abc"}},
		{"token end", "abc", 3, 0, 3, []string{"abc"}},
		{"list", "x (a b) y", 3, 2, 7, []string{"a", "b"}},
		{"after closed list", "(a) tok", 5, 4, 7, []string{"tok"}},
		{"empty list", "()", 1, 0, 2, nil},
		{"col clamped", "tok", 99, 0, 3, []string{"tok"}},
		{"hyphenated symbol", "my-recipe", 4, 0, 9, []string{"my-recipe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, symbols := spanAtPoint(tt.line, tt.col)
			if start != tt.start || end != tt.end {
				t.Errorf("span = [%d,%d), want [%d,%d)", start, end, tt.start, tt.end)
			}
			if len(symbols) != len(tt.symbols) {
				t.Fatalf("symbols = %v, want %v", symbols, tt.symbols)
			}
			for i := range symbols {
				if symbols[i] != tt.symbols[i] {
					t.Errorf("symbols = %v, want %v", symbols, tt.symbols)
				}
			}
		})
	}
}
