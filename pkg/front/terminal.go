package front

// Matcher reports whether s begins with an occurrence of the pattern it
// implements, returning the length of the match. A Matcher never matches
// the empty string: length 0 is reported as ok == false.
type Matcher func(s string) (length int, ok bool)

// TerminalPattern is one entry in a lexicon's priority-ordered terminal
// table. A pattern with Children is a parent pattern used for maximal-munch
// matching at the top level; once the longest top-level match is found, its
// Children are matched in turn against the full matched lexeme to
// reclassify it (e.g. the generic Identifier pattern reclassified into a
// specific reserved-word kind).
type TerminalPattern struct {
	Name     string
	Kind     Kind
	Match    Matcher
	Ignored  bool
	Children []*TerminalPattern
}

// SortTerminals fixes the declared priority order of a lexicon's terminal
// patterns: position in the returned slice is the tie-breaking priority the
// lexer uses when two patterns match the same length at the same offset,
// earliest wins. Authors are expected to list patterns in the priority they
// want; SortTerminals exists as the single call site that establishes this
// contract, mirroring the original lexicon's own sort-then-store idiom, and
// recurses the same fixing into every pattern's Children.
func SortTerminals(patterns []*TerminalPattern) []*TerminalPattern {
	for _, p := range patterns {
		if len(p.Children) > 0 {
			p.Children = SortTerminals(p.Children)
		}
	}
	return patterns
}

// KindTable records the parent kind of every child (reclassified) kind in a
// lexicon, so the parser can test whether a token of some specific kind
// also satisfies a reference to one of its ancestor kinds (e.g. a token
// kinded "public" satisfies a grammar rule written against "Identifier").
type KindTable map[Kind]Kind

// BuildKindTable derives a KindTable from a lexicon's terminal pattern
// table by walking every pattern's Children.
func BuildKindTable(patterns []*TerminalPattern) KindTable {
	kt := make(KindTable)
	var walk func(p *TerminalPattern)
	walk = func(p *TerminalPattern) {
		for _, c := range p.Children {
			kt[c.Kind] = p.Kind
			walk(c)
		}
	}
	for _, p := range patterns {
		walk(p)
	}
	return kt
}

// IsOrUnder reports whether actual is want, or a descendant of want in the
// kind hierarchy recorded by BuildKindTable.
func (kt KindTable) IsOrUnder(actual, want Kind) bool {
	for k := actual; ; {
		if k == want {
			return true
		}
		parent, ok := kt[k]
		if !ok {
			return false
		}
		k = parent
	}
}
