package calcium

import (
	"strings"

	"github.com/calcium-lang/front/pkg/front"
)

// NewParser wires the Calcium lexicon and grammar into a ready-to-use
// lexer/parser pair.
func NewParser(opts ...front.ParseOption) (*front.Lexer, *front.Parser, error) {
	lx := front.NewLexer(Lexicon())
	g, err := Grammar()
	if err != nil {
		return nil, nil, err
	}
	return lx, front.NewParser(g, lx.Kinds(), opts...), nil
}

// Parse lexes and parses a complete Calcium compilation unit, returning
// every accepting derivation (the grammar is ambiguous by construction:
// §4's non-deterministic engine keeps every path alive rather than
// picking one greedily).
func Parse(source string, opts ...front.ParseOption) (*front.ParseResult, error) {
	lx, p, err := NewParser(opts...)
	if err != nil {
		return nil, err
	}
	stream, err := lx.Lex(source)
	if err != nil {
		return nil, err
	}
	return p.Parse(StartProduction, stream)
}

// Render walks one accepting tail's parent chain back to the root and
// renders the consumed lexemes in source order, for tests and the CLI's
// plain-text dump: a flat token rendering, not a structured tree, since
// the path graph's parent edges are the only disambiguation-free view of
// a single derivation.
func Render(tail *front.Node) string {
	var lexemes []string
	n := tail
	for !n.IsRoot() {
		parent := n.Parents()[0]
		if n.IsTokenConsumed() {
			lexemes = append([]string{parent.Label}, lexemes...)
		}
		n = parent.From
	}
	return strings.Join(lexemes, " ")
}
