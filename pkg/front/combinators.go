package front

import (
	"fmt"
	"sort"
	"strings"
)

// Combinator is a primitive grammar operator, interpreted by eval as a
// transform on paths sets: Seq, Alt, Opt, Rep, TerminalRef, ProductionRef.
// Re-architected as data per §9's design note, rather than class-based
// polymorphism: a grammar is a vector of (production id, Combinator) pairs
// evaluated by this single interpreter, with Go's interface dispatch
// standing in for the tagged-variant switch.
type Combinator interface {
	eval(ctx *evalContext, in PathsSet) (PathsSet, error)
}

// evalContext threads the state a single Parse call shares across every
// combinator invocation: the token stream being consumed, the node arena,
// the kind hierarchy, the grammar being interpreted, the furthest-failure
// tracker, and the memoization cache.
type evalContext struct {
	tokens   *TokenStream
	arena    *arena
	kinds    KindTable
	grammar  *Grammar
	maxPaths int

	furthest int
	expected map[Kind]struct{}

	memo map[string]memoEntry
}

type memoEntry struct {
	out PathsSet
	err error
}

func newEvalContext(tokens *TokenStream, a *arena, kinds KindTable, g *Grammar, maxPaths int) *evalContext {
	return &evalContext{
		tokens:   tokens,
		arena:    a,
		kinds:    kinds,
		grammar:  g,
		maxPaths: maxPaths,
		expected: make(map[Kind]struct{}),
		memo:     make(map[string]memoEntry),
	}
}

// noteFailure records that a path failed at position expecting one of
// kinds, folding it into the furthest-failure diagnostic: only the
// expected sets of the single furthest position reached across the whole
// parse are retained.
func (c *evalContext) noteFailure(position int, kinds ...Kind) {
	if position > c.furthest {
		c.furthest = position
		c.expected = make(map[Kind]struct{})
	}
	if position == c.furthest {
		for _, k := range kinds {
			c.expected[k] = struct{}{}
		}
	}
}

func (c *evalContext) expectedKinds() []Kind {
	out := make([]Kind, 0, len(c.expected))
	for k := range c.expected {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// checkOverflow enforces the AmbiguityOverflow ceiling (§5): a grammar
// sanity check, not expected in well-formed grammars, so it is never
// caught by Alternative/Optional/Repeat.
func (c *evalContext) checkOverflow(p PathsSet) error {
	if n := p.maxBucket(); n > c.maxPaths {
		for _, pos := range p.positions() {
			if len(p[pos]) == n {
				return &AmbiguityOverflowError{Position: pos, Count: n, Ceiling: c.maxPaths}
			}
		}
	}
	return nil
}

// Term builds a TerminalRef(k) combinator: for each live tail, consume the
// next token if its kind equals k or is a subkind of k.
func Term(kind Kind) Combinator { return termRef{kind: kind} }

type termRef struct{ kind Kind }

func (t termRef) eval(ctx *evalContext, in PathsSet) (PathsSet, error) {
	out := newPathsSet()
	for _, pos := range in.positions() {
		tok := ctx.tokens.At(pos)
		if tok.Kind != KindEOF && ctx.kinds.IsOrUnder(tok.Kind, t.kind) {
			for tail := range in[pos] {
				next := ctx.arena.tokenConsumed(pos+1, tail, tok.Lexeme)
				out.add(pos+1, next)
			}
			continue
		}
		ctx.noteFailure(pos, t.kind)
	}
	if out.empty() {
		return nil, ctx.failureAt(ctx.furthest)
	}
	if err := ctx.checkOverflow(out); err != nil {
		return nil, err
	}
	return out, nil
}

// failureAt builds the appropriate taxonomy error for a failure localized
// at position: EndOfInputError if position is the stream's EOF sentinel,
// SyntaxError otherwise.
func (c *evalContext) failureAt(position int) error {
	expected := c.expectedKinds()
	if position == c.tokens.EOFPosition() {
		return &EndOfInputError{Position: position, Expected: expected}
	}
	return &SyntaxError{Position: position, Expected: expected}
}

// Prod builds a ProductionRef(id) combinator: evaluate the named
// production's body, wrapping each resulting tail in a ProductionCompleted
// node spanning from the position the reference started at to the
// position it ended at.
func Prod(id string) Combinator { return prodRef{id: id} }

type prodRef struct{ id string }

func (p prodRef) eval(ctx *evalContext, in PathsSet) (PathsSet, error) {
	body, ok := ctx.grammar.productions[p.id]
	if !ok {
		panic(fmt.Sprintf("front: production %q is not defined in this grammar", p.id))
	}

	result := newPathsSet()
	var anySuccess bool
	var lastErr error

	for _, start := range in.positions() {
		bucket := PathsSet{start: in[start]}
		key := p.id + "@" + memoKey(bucket)

		if entry, ok := ctx.memo[key]; ok {
			if entry.err != nil {
				lastErr = entry.err
				continue
			}
			result.merge(entry.out)
			anySuccess = true
			continue
		}

		out, err := body.eval(ctx, bucket)
		if err != nil {
			ctx.memo[key] = memoEntry{err: err}
			lastErr = err
			continue
		}

		stamped := newPathsSet()
		for _, end := range out.positions() {
			for tail := range out[end] {
				node := ctx.arena.productionCompleted(p.id, start, end, tail, p.id)
				stamped.add(end, node)
			}
		}
		ctx.memo[key] = memoEntry{out: stamped}
		result.merge(stamped)
		anySuccess = true
	}

	if !anySuccess {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, &NoPathError{Production: p.id}
	}
	return result, nil
}

// memoKey serializes a single-start-position PathsSet into a deterministic
// string keyed on node identity, per §9's "frozen representation of input
// paths set."
func memoKey(p PathsSet) string {
	var b strings.Builder
	for _, pos := range p.positions() {
		ids := make([]int, 0, len(p[pos]))
		for n := range p[pos] {
			ids = append(ids, n.id)
		}
		sort.Ints(ids)
		fmt.Fprintf(&b, "%d:%v;", pos, ids)
	}
	return b.String()
}

// Seq builds a Sequence combinator: thread the paths set through each
// child in order, each child's output becoming the next child's input.
func Seq(children ...Combinator) Combinator { return seq{children: children} }

type seq struct{ children []Combinator }

func (s seq) eval(ctx *evalContext, in PathsSet) (PathsSet, error) {
	cur := in
	for _, c := range s.children {
		out, err := c.eval(ctx, cur)
		if err != nil {
			return nil, err
		}
		cur = out
	}
	return cur, nil
}

// Alt builds an Alternative combinator: run every child against its own
// fresh copy of the input paths set, merge every arm that succeeds, and
// fail only if every arm fails. A total failure surfaces as NoPathError,
// wrapped into a SyntaxError at the parse's furthest failure position; when
// that position is the end-of-input sentinel, the SyntaxError's cause is an
// EndOfInputError instead.
func Alt(children ...Combinator) Combinator { return alt{children: children} }

type alt struct{ children []Combinator }

func (a alt) eval(ctx *evalContext, in PathsSet) (PathsSet, error) {
	result := newPathsSet()
	var anySuccess bool
	for _, c := range a.children {
		out, err := c.eval(ctx, in.clone())
		if err != nil {
			if backtrackable(err) {
				continue
			}
			return nil, err
		}
		anySuccess = true
		result.merge(out)
	}
	if !anySuccess {
		var cause error = &NoPathError{Production: "<alternative>"}
		if ctx.furthest == ctx.tokens.EOFPosition() {
			cause = &EndOfInputError{Position: ctx.furthest, Expected: ctx.expectedKinds()}
		}
		return nil, &SyntaxError{Position: ctx.furthest, Expected: ctx.expectedKinds(), Cause: cause}
	}
	if err := ctx.checkOverflow(result); err != nil {
		return nil, err
	}
	return result, nil
}

// Opt builds an Optional combinator: run child against a copy of the input;
// on success, the output is the union of the input paths (unchosen) and
// the child's output (chosen), which is the Optional preservation property
// of §8 — the result is always a superset of the input. On failure, the
// input passes through unchanged.
func Opt(child Combinator) Combinator { return opt{child: child} }

type opt struct{ child Combinator }

func (o opt) eval(ctx *evalContext, in PathsSet) (PathsSet, error) {
	out, err := o.child.eval(ctx, in.clone())
	if err != nil {
		if backtrackable(err) {
			return in, nil
		}
		return nil, err
	}
	result := in.clone()
	result.merge(out)
	if err := ctx.checkOverflow(result); err != nil {
		return nil, err
	}
	return result, nil
}

// Rep builds a Repeat combinator (zero-or-more, greedy with preservation):
// run child repeatedly, merging every iteration's output into an
// accumulator that starts as the input (the zero-iteration path), stopping
// at the first failing iteration or, per the explicit "did-advance" check
// from §9's open question, the first iteration whose output occupies the
// same set of token positions as its input.
func Rep(child Combinator) Combinator { return rep{child: child} }

type rep struct{ child Combinator }

func (r rep) eval(ctx *evalContext, in PathsSet) (PathsSet, error) {
	acc := in.clone()
	cur := in
	for {
		out, err := r.child.eval(ctx, cur.clone())
		if err != nil {
			if backtrackable(err) {
				break
			}
			return nil, err
		}
		if samePositions(out, cur) {
			break
		}
		acc.merge(out)
		if err := ctx.checkOverflow(acc); err != nil {
			return nil, err
		}
		cur = out
	}
	return acc, nil
}
