package front_test

import (
	"testing"

	"github.com/calcium-lang/front/pkg/front"
	"github.com/stretchr/testify/require"
)

func TestGrammarRejectsDuplicateProduction(t *testing.T) {
	_, err := front.NewGrammar(
		front.Production{ID: "A", Body: front.Term(kindIf)},
		front.Production{ID: "A", Body: front.Term(kindElse)},
	)
	require.Error(t, err)
}

func TestGrammarRejectsUndefinedReference(t *testing.T) {
	_, err := front.NewGrammar(
		front.Production{ID: "A", Body: front.Prod("NoSuchThing")},
	)
	require.Error(t, err)
}

func TestGrammarRejectsEmptyMatchingProduction(t *testing.T) {
	_, err := front.NewGrammar(
		front.Production{ID: "A", Body: front.Opt(front.Term(kindIf))},
	)
	require.Error(t, err)
}

func TestGrammarRejectsDirectLeftRecursionBare(t *testing.T) {
	_, err := front.NewGrammar(
		front.Production{ID: "A", Body: front.Prod("A")},
	)
	require.Error(t, err)
}

func TestGrammarRejectsDirectLeftRecursionInSequence(t *testing.T) {
	_, err := front.NewGrammar(
		front.Production{ID: "A", Body: front.Seq(front.Prod("A"), front.Term(kindIf))},
	)
	require.Error(t, err)
}

func TestGrammarAcceptsIndirectRecursionViaLaterSequencePosition(t *testing.T) {
	// A and B reference each other, but never as the first element of a
	// sequence, so this is not a direct left recursion under §4.3's narrow
	// definition.
	_, err := front.NewGrammar(
		front.Production{ID: "A", Body: front.Seq(front.Term(kindIf), front.Opt(front.Prod("B")))},
		front.Production{ID: "B", Body: front.Seq(front.Term(kindLParen), front.Prod("A"))},
	)
	require.NoError(t, err)
}

func TestGrammarAcceptsWellFormedProductions(t *testing.T) {
	_, err := front.NewGrammar(
		front.Production{ID: "A", Body: front.Term(kindIf)},
		front.Production{
			ID:   "B",
			Body: front.Seq(front.Prod("A"), front.Rep(front.Term(kindPlus))),
		},
	)
	require.NoError(t, err)
}
