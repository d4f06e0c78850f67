package front

import (
	"fmt"
	"sort"
)

// defaultMaxPaths is the ambiguity ceiling's default value (§5): a grammar
// sanity check, not expected to bind on well-formed grammars.
const defaultMaxPaths = 10000

// ParseOption configures a Parser at construction time.
type ParseOption func(*parserConfig)

type parserConfig struct {
	maxPaths int
}

// WithMaxPathsPerPosition overrides the ambiguity ceiling: the maximum
// number of distinct live tails permitted at any single token position
// before parsing fails with AmbiguityOverflowError.
func WithMaxPathsPerPosition(n int) ParseOption {
	return func(c *parserConfig) { c.maxPaths = n }
}

// Parser is a grammar-agnostic interpreter of production combinators: it
// maintains no state of its own beyond the grammar and kind table it was
// built with, so one Parser is reusable across any number of Parse calls.
type Parser struct {
	grammar  *Grammar
	kinds    KindTable
	maxPaths int
}

// NewParser builds a Parser that interprets grammar, resolving TerminalRef
// subkinds against kinds (typically a Lexer's Kinds()).
func NewParser(grammar *Grammar, kinds KindTable, opts ...ParseOption) *Parser {
	cfg := parserConfig{maxPaths: defaultMaxPaths}
	for _, o := range opts {
		o(&cfg)
	}
	return &Parser{grammar: grammar, kinds: kinds, maxPaths: cfg.maxPaths}
}

// ParseResult is a successful parse: the path graph's root and its
// accepting set, the subset of tails whose next-token discriminator is the
// end-of-input sentinel after the start production completes.
type ParseResult struct {
	Root      *Node
	Accepting []*Node
}

// Parse evaluates start over tokens. On success it returns the accepting
// set; on failure it returns a SyntaxError, EndOfInputError, or
// AmbiguityOverflowError (or a plain error when start is not a production
// of the grammar), never a partial result.
func (p *Parser) Parse(start string, tokens *TokenStream) (*ParseResult, error) {
	if _, ok := p.grammar.productions[start]; !ok {
		return nil, fmt.Errorf("front: start production %q is not defined", start)
	}

	a := newArena()
	root := a.root()
	in := singlePath(0, root)

	ctx := newEvalContext(tokens, a, p.kinds, p.grammar, p.maxPaths)

	out, err := (prodRef{id: start}).eval(ctx, in)
	if err != nil {
		return nil, err
	}

	eofPos := tokens.EOFPosition()
	bucket, ok := out[eofPos]
	if !ok || len(bucket) == 0 {
		return nil, ctx.failureAt(ctx.furthest)
	}

	accepting := make([]*Node, 0, len(bucket))
	for n := range bucket {
		accepting = append(accepting, n)
	}
	sort.Slice(accepting, func(i, j int) bool { return accepting[i].id < accepting[j].id })

	return &ParseResult{Root: root, Accepting: accepting}, nil
}
