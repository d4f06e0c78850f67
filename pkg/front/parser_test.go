package front_test

import (
	"testing"

	"github.com/calcium-lang/front/pkg/front"
	"github.com/stretchr/testify/require"
)

// buildArithmeticGrammar exercises Seq, Rep, Opt, Term and Prod: Expr is
// left-recursion free but repeats additions, and IfStmt wraps an Expr and
// optionally takes an else branch, so "if (1+2+3) else" and "if (1)" both
// parse from IfStmt.
func buildArithmeticGrammar(t *testing.T) *front.Grammar {
	t.Helper()
	g, err := front.NewGrammar(
		front.Production{
			ID: "Expr",
			Body: front.Seq(
				front.Term(kindInteger),
				front.Rep(front.Seq(front.Term(kindPlus), front.Term(kindInteger))),
			),
		},
		front.Production{
			ID: "IfStmt",
			Body: front.Seq(
				front.Term(kindIf),
				front.Term(kindLParen),
				front.Prod("Expr"),
				front.Term(kindRParen),
				front.Opt(front.Term(kindElse)),
			),
		},
	)
	require.NoError(t, err)
	return g
}

func lexAndParse(t *testing.T, g *front.Grammar, start, input string) (*front.ParseResult, error) {
	t.Helper()
	lx := front.NewLexer(testLexicon())
	stream, err := lx.Lex(input)
	require.NoError(t, err)
	p := front.NewParser(g, lx.Kinds())
	return p.Parse(start, stream)
}

func TestParserSequenceAndRepeat(t *testing.T) {
	g := buildArithmeticGrammar(t)

	result, err := lexAndParse(t, g, "Expr", "1 + 2 + 3")
	require.NoError(t, err)
	require.NotEmpty(t, result.Accepting)
}

func TestParserEmptyRepeatContributesZeroIterationPath(t *testing.T) {
	g := buildArithmeticGrammar(t)

	result, err := lexAndParse(t, g, "Expr", "1")
	require.NoError(t, err)
	require.NotEmpty(t, result.Accepting)
}

func TestParserOptionalWithAndWithoutElse(t *testing.T) {
	g := buildArithmeticGrammar(t)

	withElse, err := lexAndParse(t, g, "IfStmt", "if (1) else")
	require.NoError(t, err)
	require.NotEmpty(t, withElse.Accepting)

	withoutElse, err := lexAndParse(t, g, "IfStmt", "if (1)")
	require.NoError(t, err)
	require.NotEmpty(t, withoutElse.Accepting)
}

func TestParserEndOfInputReportsFurthestPosition(t *testing.T) {
	g := buildArithmeticGrammar(t)

	_, err := lexAndParse(t, g, "IfStmt", "if (1")

	var syn *front.EndOfInputError
	require.ErrorAs(t, err, &syn)
	require.Equal(t, 3, syn.Position)
	require.Contains(t, syn.Expected, kindRParen)
}

func TestParserSequenceFailureReportsSyntaxError(t *testing.T) {
	g := buildArithmeticGrammar(t)

	_, err := lexAndParse(t, g, "IfStmt", "if 1")

	var synErr *front.SyntaxError
	require.ErrorAs(t, err, &synErr)
	require.Equal(t, 1, synErr.Position)
	require.Contains(t, synErr.Expected, kindLParen)
}

func TestParserAlternativeExhaustionWrapsNoPathError(t *testing.T) {
	g, err := front.NewGrammar(
		front.Production{ID: "WantIf", Body: front.Term(kindIf)},
		front.Production{ID: "WantElse", Body: front.Term(kindElse)},
		front.Production{ID: "Start", Body: front.Alt(front.Prod("WantIf"), front.Prod("WantElse"))},
	)
	require.NoError(t, err)

	_, err = lexAndParse(t, g, "Start", "12")

	var synErr *front.SyntaxError
	require.ErrorAs(t, err, &synErr)
	require.Equal(t, 0, synErr.Position)

	var noPath *front.NoPathError
	require.ErrorAs(t, err, &noPath)
}

func TestParserAmbiguousGrammarProducesDistinctAcceptingTails(t *testing.T) {
	// Two productions that both accept a bare identifier: the accepting set
	// must retain both derivations, not collapse them (Acceptance
	// completeness, §8).
	g, err := front.NewGrammar(
		front.Production{ID: "A", Body: front.Term(kindIdentifier)},
		front.Production{ID: "B", Body: front.Term(kindIdentifier)},
		front.Production{ID: "Ambiguous", Body: front.Alt(front.Prod("A"), front.Prod("B"))},
	)
	require.NoError(t, err)

	result, err := lexAndParse(t, g, "Ambiguous", "x")
	require.NoError(t, err)
	require.Len(t, result.Accepting, 2)

	productions := map[string]bool{}
	for _, tail := range result.Accepting {
		for _, parent := range tail.Parents() {
			if parent.From.IsProductionCompleted() {
				productions[parent.From.Production()] = true
			}
		}
	}
	require.Contains(t, productions, "A")
	require.Contains(t, productions, "B")
}

func TestParserAmbiguityOverflow(t *testing.T) {
	// Build N alternative productions that all accept the same identifier;
	// with a ceiling of 1, the second alternative tips the bucket over.
	prods := []front.Production{
		{ID: "One", Body: front.Term(kindIdentifier)},
		{ID: "Two", Body: front.Term(kindIdentifier)},
		{ID: "Many", Body: front.Alt(front.Prod("One"), front.Prod("Two"))},
	}
	g, err := front.NewGrammar(prods...)
	require.NoError(t, err)

	lx := front.NewLexer(testLexicon())
	stream, err := lx.Lex("x")
	require.NoError(t, err)

	p := front.NewParser(g, lx.Kinds(), front.WithMaxPathsPerPosition(1))
	_, err = p.Parse("Many", stream)

	var overflow *front.AmbiguityOverflowError
	require.ErrorAs(t, err, &overflow)
	require.Equal(t, 1, overflow.Ceiling)
}

func TestParserDeterministicAcrossRuns(t *testing.T) {
	g := buildArithmeticGrammar(t)

	first, err := lexAndParse(t, g, "Expr", "1 + 2 + 3")
	require.NoError(t, err)
	second, err := lexAndParse(t, g, "Expr", "1 + 2 + 3")
	require.NoError(t, err)

	require.Equal(t, len(first.Accepting), len(second.Accepting))
}

func TestParserRejectsUndefinedStartProduction(t *testing.T) {
	g := buildArithmeticGrammar(t)
	lx := front.NewLexer(testLexicon())
	stream, err := lx.Lex("1")
	require.NoError(t, err)

	p := front.NewParser(g, lx.Kinds())
	_, err = p.Parse("NoSuchProduction", stream)
	require.Error(t, err)
}
