// Package calcium is the external lexicon-and-grammar collaborator spec.md
// keeps outside the parser engine's CORE: a concrete terminal pattern table
// and a concrete production set for the Calcium programming language,
// built on top of github.com/calcium-lang/front/pkg/front.
package calcium

import (
	"regexp"

	"github.com/calcium-lang/front/pkg/front"
)

// Kind constants. Identifier and StringLiteral are parent kinds per §4.1;
// every reserved word is a child of Identifier, and StringIdentifier (a
// string literal that is also a valid identifier spelling, used for
// string-keyed struct member names) is a child of StringLiteral.
const (
	KindIdentifier front.Kind = iota + 1
	KindStringLiteral
	KindStringIdentifier
	KindInteger

	KindAbstract
	KindAliasable
	KindAs
	KindAtomic
	KindBare
	KindBool
	KindC
	KindConst
	KindEnum
	KindFinal
	KindFrom
	KindFunc
	KindImport
	KindLocal
	KindNoreturn
	KindOverride
	KindPackage
	KindPacked
	KindPlain
	KindPrivate
	KindProtected
	KindPublic
	KindPure
	KindRestrict
	KindSealed
	KindStable
	KindStatic
	KindStrict
	KindStruct
	KindThis
	KindTypedef
	KindUnion
	KindUnsafe
	KindUnused
	KindVar
	KindVoid
	KindVolatile
	KindWide
	KindByte
	KindChar
	KindDouble
	KindFloat
	KindInt
	KindLong
	KindShort
	KindUbyte
	KindUint
	KindUlong
	KindUshort
	KindBlockStatement
	KindExpression

	KindLeftSquareBracket
	KindRightSquareBracket
	KindLeftParenthesis
	KindRightParenthesis
	KindLeftCurlyBracket
	KindRightCurlyBracket
	KindFullStop
	KindHyphenGreaterThan
	KindAmpersand
	KindQuestion
	KindColon
	KindSemicolon
	KindTripleFullStop
	KindEquals
	KindComma
	KindAt
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)
var integerPattern = regexp.MustCompile(`^[0-9]+`)
var stringLiteralPattern = regexp.MustCompile(`^"(?:[^"\\]|\\.)*"`)
var whitespacePattern = regexp.MustCompile(`^[ \t\r\n]+`)
var singleLineCommentPattern = regexp.MustCompile(`^//[^\r\n]*`)
var multiLineCommentPattern = regexp.MustCompile(`(?s)^/\*.*?\*/`)

// reservedWord is one entry in the reserved-word table: its spelling and
// the kind it reclassifies an Identifier match into.
type reservedWord struct {
	spelling string
	kind     front.Kind
}

// reservedWords is the fixed set of reserved lexemes that win over the
// generic identifier kind via the parent/child mechanism, in the order the
// original lexicon declared them (declaration order doubles as priority,
// though no two of these spellings can both match the same whole lexeme).
// "block-statement" is the one spelling that is not identifier-shaped: the
// Identifier pattern stops at the hyphen, so this child never matches a
// whole Identifier lexeme and that spelling does not lex as
// KindBlockStatement.
var reservedWords = []reservedWord{
	{"abstract", KindAbstract},
	{"aliasable", KindAliasable},
	{"as", KindAs},
	{"atomic", KindAtomic},
	{"bare", KindBare},
	{"bool", KindBool},
	{"c", KindC},
	{"const", KindConst},
	{"enum", KindEnum},
	{"final", KindFinal},
	{"from", KindFrom},
	{"func", KindFunc},
	{"import", KindImport},
	{"local", KindLocal},
	{"noreturn", KindNoreturn},
	{"override", KindOverride},
	{"package", KindPackage},
	{"packed", KindPacked},
	{"plain", KindPlain},
	{"private", KindPrivate},
	{"protected", KindProtected},
	{"public", KindPublic},
	{"pure", KindPure},
	{"restrict", KindRestrict},
	{"sealed", KindSealed},
	{"stable", KindStable},
	{"static", KindStatic},
	{"strict", KindStrict},
	{"struct", KindStruct},
	{"this", KindThis},
	{"typedef", KindTypedef},
	{"union", KindUnion},
	{"unsafe", KindUnsafe},
	{"unused", KindUnused},
	{"var", KindVar},
	{"void", KindVoid},
	{"volatile", KindVolatile},
	{"wide", KindWide},
	{"_byte", KindByte},
	{"_char", KindChar},
	{"_double", KindDouble},
	{"_float", KindFloat},
	{"_int", KindInt},
	{"_long", KindLong},
	{"_short", KindShort},
	{"_ubyte", KindUbyte},
	{"_uint", KindUint},
	{"_ulong", KindUlong},
	{"_ushort", KindUshort},
	{"block-statement", KindBlockStatement},
	{"expression", KindExpression},
}

// punctuation is the fixed list of punctuation kinds (§6), each a literal
// match, longest literal declared first so that "..." beats ".".
var punctuation = []struct {
	spelling string
	kind     front.Kind
}{
	{"...", KindTripleFullStop},
	{"->", KindHyphenGreaterThan},
	{"[", KindLeftSquareBracket},
	{"]", KindRightSquareBracket},
	{"(", KindLeftParenthesis},
	{")", KindRightParenthesis},
	{"{", KindLeftCurlyBracket},
	{"}", KindRightCurlyBracket},
	{".", KindFullStop},
	{"&", KindAmpersand},
	{"?", KindQuestion},
	{":", KindColon},
	{";", KindSemicolon},
	{"=", KindEquals},
	{",", KindComma},
	{"@", KindAt},
}

// Lexicon builds the Calcium terminal pattern table: the Identifier parent
// with its reserved-word children, the StringLiteral parent with its
// StringIdentifier child, the Integer literal, punctuation, and the three
// ignored patterns (whitespace, single-line comments, multi-line
// comments), sorted once via front.SortTerminals to fix declared priority.
func Lexicon() []*front.TerminalPattern {
	children := make([]*front.TerminalPattern, 0, len(reservedWords))
	for _, w := range reservedWords {
		children = append(children, &front.TerminalPattern{
			Name:  w.spelling,
			Kind:  w.kind,
			Match: front.MatchString(w.spelling),
		})
	}

	patterns := []*front.TerminalPattern{
		{
			Name:     "Identifier",
			Kind:     KindIdentifier,
			Match:    front.MatchRegexp(identifierPattern),
			Children: children,
		},
		{
			Name:  "StringLiteral",
			Kind:  KindStringLiteral,
			Match: front.MatchRegexp(stringLiteralPattern),
			Children: []*front.TerminalPattern{
				{
					Name:  "StringIdentifier",
					Kind:  KindStringIdentifier,
					Match: front.MatchRegexp(regexp.MustCompile(`^"[A-Za-z_][A-Za-z0-9_]*"`)),
				},
			},
		},
		{Name: "Integer", Kind: KindInteger, Match: front.MatchRegexp(integerPattern)},
	}
	for _, p := range punctuation {
		patterns = append(patterns, &front.TerminalPattern{Name: p.spelling, Kind: p.kind, Match: front.MatchString(p.spelling)})
	}
	patterns = append(patterns,
		&front.TerminalPattern{Name: "Whitespace", Kind: 0, Ignored: true, Match: front.MatchRegexp(whitespacePattern)},
		&front.TerminalPattern{Name: "SingleLineComment", Kind: 0, Ignored: true, Match: front.MatchRegexp(singleLineCommentPattern)},
		&front.TerminalPattern{Name: "MultiLineComment", Kind: 0, Ignored: true, Match: front.MatchRegexp(multiLineCommentPattern)},
	)

	return front.SortTerminals(patterns)
}
