package front_test

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/calcium-lang/front/pkg/front"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Example lexes and parses a tiny if-statement grammar, then renders the
// accepting derivation's consumed lexemes as a flat string.
func Example() {
	const (
		kindIf front.Kind = iota + 1
		kindLParen
		kindRParen
		kindInteger
		kindWhitespace
	)

	terminals := front.SortTerminals([]*front.TerminalPattern{
		{Name: "If", Kind: kindIf, Match: front.MatchString("if")},
		{Name: "LParen", Kind: kindLParen, Match: front.MatchString("(")},
		{Name: "RParen", Kind: kindRParen, Match: front.MatchString(")")},
		{Name: "Integer", Kind: kindInteger, Match: front.MatchRegexp(regexp.MustCompile(`^[0-9]+`))},
		{Name: "Whitespace", Kind: kindWhitespace, Ignored: true, Match: front.MatchRegexp(regexp.MustCompile(`^\s+`))},
	})

	lx := front.NewLexer(terminals)
	stream, err := lx.Lex("if (42)")
	if err != nil {
		log.Fatalf("cannot lex: %v", err)
	}

	grammar, err := front.NewGrammar(
		front.Production{
			ID: "IfStmt",
			Body: front.Seq(
				front.Term(kindIf),
				front.Term(kindLParen),
				front.Term(kindInteger),
				front.Term(kindRParen),
			),
		},
	)
	if err != nil {
		log.Fatalf("cannot build grammar: %v", err)
	}

	p := front.NewParser(grammar, lx.Kinds())
	result, err := p.Parse("IfStmt", stream)
	if err != nil {
		log.Fatalf("cannot parse: %v", err)
	}

	var labels []string
	for _, tail := range result.Accepting {
		n := tail
		for !n.IsRoot() {
			parent := n.Parents()[0]
			if n.IsTokenConsumed() {
				labels = append([]string{parent.Label}, labels...)
			}
			n = parent.From
		}
	}
	got := strings.Join(labels, " ")

	want := "if ( 42 )"
	if got == want {
		fmt.Printf("success")
	} else {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(got, want, false)
		fmt.Println(diffs)
	}

	// Output: success
}
