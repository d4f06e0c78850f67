package front

// Kind identifies the lexical or syntactic category of a token. The zero
// value is never produced by a lexer; concrete kinds are defined by whatever
// lexicon package builds the terminal pattern table (see internal/calcium
// for the Calcium lexicon).
type Kind int

// KindEOF is the sentinel kind of the synthetic token a TokenStream always
// carries as its last element, one past the final real token.
const KindEOF Kind = -1

// Token is one lexeme recognized by the lexer, tagged with its kind and its
// position in both the input stream (token index) and the original source
// text (byte offsets, line and column for diagnostics).
type Token struct {
	Kind   Kind
	Lexeme string
	Start  int
	End    int
	Line   int
	Column int
}

// TokenStream is the output of lexing: a finite sequence of tokens addressed
// by position, always terminated by a KindEOF sentinel so that every
// position from 0 to Len()-1 inclusive resolves to a token.
type TokenStream struct {
	tokens []Token
}

// NewTokenStream wraps an already-lexed token slice. The caller is
// responsible for appending the trailing KindEOF sentinel; Lexer.Lex does
// this automatically.
func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// At returns the token at position pos, or the trailing EOF sentinel if pos
// is at or past the end of the stream.
func (s *TokenStream) At(pos int) Token {
	if pos < 0 || pos >= len(s.tokens) {
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[pos]
}

// Len reports the number of positions in the stream, including the trailing
// EOF sentinel.
func (s *TokenStream) Len() int {
	return len(s.tokens)
}

// EOFPosition returns the position of the trailing EOF sentinel, i.e. the
// one position past the last real token.
func (s *TokenStream) EOFPosition() int {
	return len(s.tokens) - 1
}
