package front

import "fmt"

// Production pairs a production id with its combinator tree, the unit a
// Grammar is built from.
type Production struct {
	ID   string
	Body Combinator
}

// Grammar is a named collection of productions: the data-driven
// replacement for the source's one-class-per-production design (§9).
// NewGrammar validates every production against the two static invariants
// the parser engine depends on for termination and well-formedness: no
// production matches the empty input, and no production is directly
// left-recursive.
type Grammar struct {
	productions map[string]Combinator
	order       []string
}

// NewGrammar builds and validates a Grammar from its productions. It
// rejects duplicate ids, references to undefined productions, productions
// that can match the empty input, and direct left recursion (a bare
// ProductionRef(p), or a Sequence whose first element is ProductionRef(p),
// as the entire body of production p).
func NewGrammar(productions ...Production) (*Grammar, error) {
	g := &Grammar{productions: make(map[string]Combinator, len(productions))}
	for _, p := range productions {
		if _, dup := g.productions[p.ID]; dup {
			return nil, fmt.Errorf("front: duplicate production %q", p.ID)
		}
		g.productions[p.ID] = p.Body
		g.order = append(g.order, p.ID)
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grammar) validate() error {
	for _, id := range g.order {
		body := g.productions[id]

		refs := make(map[string]bool)
		collectProdRefs(body, refs)
		for ref := range refs {
			if _, ok := g.productions[ref]; !ok {
				return fmt.Errorf("front: production %q references undefined production %q", id, ref)
			}
		}

		for _, first := range firstProds(body) {
			if first == id {
				return fmt.Errorf("front: production %q is directly left-recursive", id)
			}
		}

		if !consumesAtLeastOne(body, g, map[string]bool{}) {
			return fmt.Errorf("front: production %q can match the empty input", id)
		}
	}
	return nil
}

// collectProdRefs gathers every production id referenced anywhere in c's
// tree, for the undefined-reference check.
func collectProdRefs(c Combinator, out map[string]bool) {
	switch t := c.(type) {
	case prodRef:
		out[t.id] = true
	case seq:
		for _, ch := range t.children {
			collectProdRefs(ch, out)
		}
	case alt:
		for _, ch := range t.children {
			collectProdRefs(ch, out)
		}
	case opt:
		collectProdRefs(t.child, out)
	case rep:
		collectProdRefs(t.child, out)
	}
}

// firstProds returns every production id that could be the very first
// thing c enters (a bare ProductionRef, the first element of a Sequence,
// any arm of an Alternative, or the child of an Optional/Repeat). Because
// productions are guaranteed to consume at least one token (the other
// static invariant), a Sequence's first element alone determines what
// production, if any, is entered first. This is deliberately a narrow,
// direct-left-recursion check, matching §4.3's explicit scope ("a sequence
// whose first element is itself"), not a full left-recursion closure.
func firstProds(c Combinator) []string {
	switch t := c.(type) {
	case prodRef:
		return []string{t.id}
	case seq:
		if len(t.children) == 0 {
			return nil
		}
		return firstProds(t.children[0])
	case alt:
		var out []string
		for _, ch := range t.children {
			out = append(out, firstProds(ch)...)
		}
		return out
	case opt:
		return firstProds(t.child)
	case rep:
		return firstProds(t.child)
	default:
		return nil
	}
}

// consumesAtLeastOne reports whether c is guaranteed to consume at least
// one token on every successful derivation. visiting guards against
// infinite recursion through production references: a production
// currently being analyzed is conservatively assumed to consume a token,
// since an actual zero-consumption cycle is instead caught by the
// direct-left-recursion check or by Repeat's did-advance guard at runtime.
func consumesAtLeastOne(c Combinator, g *Grammar, visiting map[string]bool) bool {
	switch t := c.(type) {
	case termRef:
		return true
	case prodRef:
		if visiting[t.id] {
			return true
		}
		visiting[t.id] = true
		defer delete(visiting, t.id)
		return consumesAtLeastOne(g.productions[t.id], g, visiting)
	case seq:
		for _, ch := range t.children {
			if consumesAtLeastOne(ch, g, visiting) {
				return true
			}
		}
		return false
	case alt:
		if len(t.children) == 0 {
			return false
		}
		for _, ch := range t.children {
			if !consumesAtLeastOne(ch, g, visiting) {
				return false
			}
		}
		return true
	case opt:
		return false
	case rep:
		return false
	default:
		return false
	}
}
