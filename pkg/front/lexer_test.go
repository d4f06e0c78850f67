package front_test

import (
	"regexp"
	"testing"

	"github.com/calcium-lang/front/pkg/front"
	"github.com/stretchr/testify/require"
)

const (
	kindIdentifier front.Kind = iota + 1
	kindIf
	kindElse
	kindInteger
	kindPlus
	kindLParen
	kindRParen
	kindWhitespace
)

func testLexicon() []*front.TerminalPattern {
	identifier := &front.TerminalPattern{
		Name:  "Identifier",
		Kind:  kindIdentifier,
		Match: front.MatchRegexp(regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)),
		Children: []*front.TerminalPattern{
			{Name: "If", Kind: kindIf, Match: front.MatchString("if")},
			{Name: "Else", Kind: kindElse, Match: front.MatchString("else")},
		},
	}
	return front.SortTerminals([]*front.TerminalPattern{
		identifier,
		{Name: "Integer", Kind: kindInteger, Match: front.MatchRegexp(regexp.MustCompile(`^[0-9]+`))},
		{Name: "Plus", Kind: kindPlus, Match: front.MatchString("+")},
		{Name: "LParen", Kind: kindLParen, Match: front.MatchString("(")},
		{Name: "RParen", Kind: kindRParen, Match: front.MatchString(")")},
		{Name: "Whitespace", Kind: kindWhitespace, Ignored: true, Match: front.MatchRegexp(regexp.MustCompile(`^[ \t\r\n]+`))},
	})
}

func TestLexerMaximalMunchAndKeywordClassification(t *testing.T) {
	lx := front.NewLexer(testLexicon())

	stream, err := lx.Lex("if iffy else 12 + (3)")
	require.NoError(t, err)

	var kinds []front.Kind
	for i := 0; i < stream.Len(); i++ {
		tok := stream.At(i)
		if tok.Kind == front.KindEOF {
			break
		}
		kinds = append(kinds, tok.Kind)
	}

	require.Equal(t, []front.Kind{
		kindIf,         // "if" classified as the keyword, not a generic identifier
		kindIdentifier, // "iffy" is longer than "if" would match, stays an identifier
		kindElse,
		kindInteger,
		kindPlus,
		kindLParen,
		kindInteger,
		kindRParen,
	}, kinds)
}

func TestLexerIgnoredPatternsEmitNoToken(t *testing.T) {
	lx := front.NewLexer(testLexicon())
	stream, err := lx.Lex("  if   else")
	require.NoError(t, err)
	require.Equal(t, kindIf, stream.At(0).Kind)
	require.Equal(t, kindElse, stream.At(1).Kind)
	require.Equal(t, front.KindEOF, stream.At(2).Kind)
}

func TestLexerSentinelAlwaysPresent(t *testing.T) {
	lx := front.NewLexer(testLexicon())
	stream, err := lx.Lex("")
	require.NoError(t, err)
	require.Equal(t, 1, stream.Len())
	require.Equal(t, front.KindEOF, stream.At(0).Kind)
}

func TestLexerLineAndColumnTracking(t *testing.T) {
	lx := front.NewLexer(testLexicon())
	stream, err := lx.Lex("if\nelse")
	require.NoError(t, err)

	first := stream.At(0)
	require.Equal(t, 1, first.Line)
	require.Equal(t, 1, first.Column)

	second := stream.At(1)
	require.Equal(t, 2, second.Line)
	require.Equal(t, 1, second.Column)
}

func TestLexerErrorOnNoMatch(t *testing.T) {
	lx := front.NewLexer(testLexicon())
	_, err := lx.Lex("if $ else")

	var lexErr *front.LexError
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, 3, lexErr.Offset)
}

func TestLexerMonotonicOffsets(t *testing.T) {
	lx := front.NewLexer(testLexicon())
	stream, err := lx.Lex("if else 12")
	require.NoError(t, err)

	for i := 0; i < stream.Len()-1; i++ {
		require.LessOrEqual(t, stream.At(i).End, stream.At(i+1).Start)
		if stream.At(i).Kind != front.KindEOF {
			require.Greater(t, stream.At(i).End, stream.At(i).Start)
		}
	}
}
