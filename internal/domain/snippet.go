package domain

// CodeBlock is a source block as authored under a heading: its language tag,
// its verbatim body, and the unparsed directive string from the block header.
type CodeBlock struct {
	Language   string
	RawText    string
	Parameters string
}

// Candidate represents one indexed heading carrying code blocks ("recipe").
type Candidate struct {
	Display string // human-readable label for the picker
	File    string // source document path
	Line    int    // 1-based line of the heading
	Symbol  string // SYMBOL property, empty if unnamed
	Blocks  []CodeBlock
}
