package domain

import "strings"

// HereDestination is the sentinel destination meaning the active insertion
// point, used whenever a block carries no :file key.
const HereDestination = "here"

// Directive is the parsed form of a code block's parameter string. Only the
// four recognized keys are retained; everything else is dropped.
type Directive struct {
	Destination string
	Ignore      bool
	PreRefs     []string
	PostRefs    []string
}

// ParseDirective parses a block parameter string such as
//
//	:file "out.py" :pre-recipe (imports helpers) :ignore t
//
// Parsing is total: malformed input degrades to the zero directive with the
// destination defaulted to HereDestination.
func ParseDirective(params string) Directive {
	d := Directive{Destination: HereDestination}

	tokens := tokenizeParams(params)
	for i := 0; i < len(tokens); i++ {
		key := tokens[i]
		if !strings.HasPrefix(key, ":") {
			continue
		}
		value := ""
		if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], ":") {
			value = tokens[i+1]
			i++
		}

		switch key {
		case ":file":
			if v := unquote(value); v != "" {
				d.Destination = v
			}
		case ":ignore":
			d.Ignore = truthy(value)
		case ":pre-recipe":
			d.PreRefs = symbolList(value)
		case ":post-recipe":
			d.PostRefs = symbolList(value)
		}
	}

	return d
}

// tokenizeParams splits a parameter string into tokens, keeping a quoted
// string or a parenthesized group together as a single token.
func tokenizeParams(s string) []string {
	var tokens []string
	i := 0
	for i < len(s) {
		switch {
		case s[i] == ' ' || s[i] == '\t':
			i++
		case s[i] == '"':
			j := i + 1
			for j < len(s) && s[j] != '"' {
				j++
			}
			if j < len(s) {
				j++ // include closing quote
			}
			tokens = append(tokens, s[i:j])
			i = j
		case s[i] == '(':
			depth := 0
			j := i
			for j < len(s) {
				if s[j] == '(' {
					depth++
				} else if s[j] == ')' {
					depth--
					if depth == 0 {
						j++
						break
					}
				}
				j++
			}
			tokens = append(tokens, s[i:j])
			i = j
		default:
			j := i
			for j < len(s) && s[j] != ' ' && s[j] != '\t' {
				j++
			}
			tokens = append(tokens, s[i:j])
			i = j
		}
	}
	return tokens
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s
}

// truthy follows the corpus convention: anything except an explicit
// nil/no/false/0 (or a missing value) enables the flag.
func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nil", "no", "false", "0":
		return false
	}
	return true
}

// symbolList parses a (a b c) group or a single bare symbol.
func symbolList(s string) []string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = s[1 : len(s)-1]
	}
	return strings.Fields(s)
}
