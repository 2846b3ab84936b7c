package lexer

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenIdentifier TokenKind = iota // [A-Za-z_][A-Za-z0-9_]*, or any unmapped symbol text
	TokenNumber                      // digits with an optional decimal point
	TokenLParen                      // (
	TokenRParen                      // )
	TokenLBracket                    // [
	TokenRBracket                    // ]
	TokenArrow                       // → or ->
	TokenForAll                      // ∀
	TokenExists                      // ∃
	TokenOpAdd                       // +
	TokenOpSub                       // -
	TokenOpMul                       // *
	TokenOpDiv                       // /
	TokenOpMod                       // %
	TokenOpLT                        // <
	TokenOpGT                        // >
	TokenOpAnd                       // ∧
	TokenOpOr                        // ∨
	TokenNegation                    // ¬
	TokenBottom                      // ⊥
	TokenComma                       // ,
	TokenColon                       // :
	TokenType                        // type keyword
	TokenTypeOf                      // typeof keyword
	TokenVal                         // val keyword
)

var tokenNames = map[TokenKind]string{
	TokenIdentifier: "identifier",
	TokenNumber:     "number",
	TokenLParen:     "'('",
	TokenRParen:     "')'",
	TokenLBracket:   "'['",
	TokenRBracket:   "']'",
	TokenArrow:      "'→'",
	TokenForAll:     "'∀'",
	TokenExists:     "'∃'",
	TokenOpAdd:      "'+'",
	TokenOpSub:      "'-'",
	TokenOpMul:      "'*'",
	TokenOpDiv:      "'/'",
	TokenOpMod:      "'%'",
	TokenOpLT:       "'<'",
	TokenOpGT:       "'>'",
	TokenOpAnd:      "'∧'",
	TokenOpOr:       "'∨'",
	TokenNegation:   "'¬'",
	TokenBottom:     "'⊥'",
	TokenComma:      "','",
	TokenColon:      "':'",
	TokenType:       "'type'",
	TokenTypeOf:     "'typeof'",
	TokenVal:        "'val'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by Tokenize. Kind determines which
// payload fields are populated.
type Token struct {
	Kind  TokenKind
	Text  string // populated when Kind == TokenIdentifier
	Whole int    // populated when Kind == TokenNumber: digits before the point
	Frac  int    // populated when Kind == TokenNumber: digits after the point, as an integer
}

// symbols maps completed token text to its kind. Anything absent resolves to
// an identifier; notably "=" is scannable but unmapped, so it falls through.
//
// The ASCII keyword aliases are the reversed spellings: the historical
// scanner accumulated text by prepending and matched keywords against the
// reversed string directly. Kept for compatibility with existing sources.
// Negation and bottom have no ASCII alias; only ¬ and ⊥ are accepted.
var symbols = map[string]TokenKind{
	"∀": TokenForAll,
	"∃": TokenExists,
	"→": TokenArrow,
	"∧": TokenOpAnd,
	"∨": TokenOpOr,
	"⊥": TokenBottom,
	"¬": TokenNegation,

	"->": TokenArrow,

	"(": TokenLParen,
	")": TokenRParen,
	"[": TokenLBracket,
	"]": TokenRBracket,
	"<": TokenOpLT,
	">": TokenOpGT,
	"+": TokenOpAdd,
	"-": TokenOpSub,
	"/": TokenOpDiv,
	"*": TokenOpMul,
	"%": TokenOpMod,
	":": TokenColon,
	",": TokenComma,

	"llarof": TokenForAll,
	"stsixe": TokenExists,
	"dna":    TokenOpAnd,
	"ro":     TokenOpOr,
	"epyt":   TokenType,
	"foepyt": TokenTypeOf,
	"lav":    TokenVal,
}
