// Package orgdoc parses the org subset snipyard recognizes: a leading
// #+MODE: line, star headings, PROPERTIES drawers with SYMBOL and LANG
// keys, and #+begin_src blocks whose header tail is kept verbatim as the
// block's directive string.
package orgdoc

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"snipyard/internal/domain"
)

var patterns = struct {
	mode       *regexp.Regexp
	heading    *regexp.Regexp
	drawerOpen *regexp.Regexp
	drawerKey  *regexp.Regexp
	drawerEnd  *regexp.Regexp
	srcBegin   *regexp.Regexp
	srcEnd     *regexp.Regexp
}{
	mode:       regexp.MustCompile(`(?i)^#\+MODE:\s*(.*)$`),
	heading:    regexp.MustCompile(`^(\*+)\s+(.+?)\s*$`),
	drawerOpen: regexp.MustCompile(`(?i)^\s*:PROPERTIES:\s*$`),
	drawerKey:  regexp.MustCompile(`^\s*:([A-Za-z][A-Za-z0-9_-]*):\s*(.*?)\s*$`),
	drawerEnd:  regexp.MustCompile(`(?i)^\s*:END:\s*$`),
	srcBegin:   regexp.MustCompile(`(?i)^\s*#\+begin_src(?:\s+(\S+)\s*(.*?))?\s*$`),
	srcEnd:     regexp.MustCompile(`(?i)^\s*#\+end_src\s*$`),
}

// ParseFile reads and parses one document.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	doc := parseLines(lines)
	doc.Path = path
	return doc, nil
}

// Parse parses document text, for callers that already hold the content.
func Parse(text string) *Document {
	return parseLines(strings.Split(text, "\n"))
}

// parseState tracks the open heading stack and the block being collected.
type parseState struct {
	doc     *Document
	stack   []*Heading // open headings, outermost first
	inBlock bool
	lang    string
	params  string
	body    []string
}

func parseLines(lines []string) *Document {
	s := &parseState{doc: &Document{}}

	for i, line := range lines {
		if s.inBlock {
			if patterns.srcEnd.MatchString(line) {
				s.closeBlock()
			} else {
				s.body = append(s.body, line)
			}
			continue
		}

		switch {
		case patterns.heading.MatchString(line):
			m := patterns.heading.FindStringSubmatch(line)
			s.openHeading(len(m[1]), m[2], i+1)

		case patterns.srcBegin.MatchString(line):
			m := patterns.srcBegin.FindStringSubmatch(line)
			s.inBlock = true
			s.lang = m[1]
			s.params = strings.TrimSpace(m[2])
			s.body = nil

		case len(s.doc.Headings) == 0 && patterns.mode.MatchString(line):
			m := patterns.mode.FindStringSubmatch(line)
			s.doc.Modes = splitList(m[1])

		case patterns.drawerOpen.MatchString(line) || patterns.drawerEnd.MatchString(line):
			// drawer delimiters carry no content themselves

		case patterns.drawerKey.MatchString(line):
			m := patterns.drawerKey.FindStringSubmatch(line)
			s.setProperty(strings.ToUpper(m[1]), m[2])
		}
	}

	// an unclosed block runs to end of file
	if s.inBlock {
		s.closeBlock()
	}

	return s.doc
}

func (s *parseState) openHeading(level int, title string, line int) {
	h := &Heading{Title: title, Level: level, Line: line}

	for len(s.stack) > 0 && s.stack[len(s.stack)-1].Level >= level {
		s.stack = s.stack[:len(s.stack)-1]
	}
	if len(s.stack) > 0 {
		parent := s.stack[len(s.stack)-1]
		h.Parent = parent
		parent.Children = append(parent.Children, h)
	}

	s.stack = append(s.stack, h)
	s.doc.Headings = append(s.doc.Headings, h)
}

func (s *parseState) closeBlock() {
	s.inBlock = false
	if len(s.stack) == 0 {
		return // block above the first heading, nothing to attach to
	}
	h := s.stack[len(s.stack)-1]
	h.Blocks = append(h.Blocks, domain.CodeBlock{
		Language:   s.lang,
		RawText:    strings.Join(s.body, "\n"),
		Parameters: s.params,
	})
}

func (s *parseState) setProperty(key, value string) {
	if len(s.stack) == 0 {
		return
	}
	h := s.stack[len(s.stack)-1]
	switch key {
	case "SYMBOL":
		h.Symbol = value
	case "LANG":
		h.Langs = splitList(value)
	}
}

// splitList parses a comma-separated context list.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
