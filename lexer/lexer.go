package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// scanState tracks the state machine's progress through a single token.
type scanState int

const (
	stateStart scanState = iota
	stateIdentifier
	stateNumeric
	stateNumericPoint
	stateSingle
	statePossibleArrow
)

// singleRunes is the fixed set of characters that form a complete token on
// their own. '=' is scannable but has no symbol-table entry (see token.go).
const singleRunes = "()[]<>+-,=%*/:∀∃→∧∨⊥¬"

func isSingleRune(r rune) bool {
	return strings.ContainsRune(singleRunes, r)
}

// isIdentRune reports whether r may appear inside an identifier.
func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// Tokenize converts source text into its full token sequence in one pass.
// Either the whole input lexes, or an error is returned and no tokens are.
// No end-of-input sentinel is appended; whitespace-only input yields an
// empty sequence.
func Tokenize(source string) ([]Token, error) {
	src := []rune(source)
	var tokens []Token
	for len(src) > 0 {
		tok, rest, ok, err := scanToken(src)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		tokens = append(tokens, tok)
		src = rest
	}
	return tokens, nil
}

// scanToken consumes exactly one token's worth of characters from the front
// of src and returns the token plus the unconsumed remainder. ok is false
// when src held only whitespace. Each iteration either consumes a character
// or finalizes, so the loop terminates in at most len(src) steps.
func scanToken(src []rune) (tok Token, rest []rune, ok bool, err error) {
	state := stateStart
	var acc []rune

	for {
		switch state {
		case stateStart:
			if len(src) == 0 {
				return Token{}, nil, false, nil
			}
			r := src[0]
			switch {
			case unicode.IsSpace(r):
				src = src[1:]
			case r == '.':
				// A bare point starts a numeric with a zero whole part.
				acc = append(acc, '0', '.')
				src = src[1:]
				state = stateNumericPoint
			case r == '-':
				acc = append(acc, r)
				src = src[1:]
				state = statePossibleArrow
			case isIdentStart(r):
				acc = append(acc, r)
				src = src[1:]
				state = stateIdentifier
			case unicode.IsDigit(r):
				acc = append(acc, r)
				src = src[1:]
				state = stateNumeric
			case isSingleRune(r):
				acc = append(acc, r)
				src = src[1:]
				state = stateSingle
			default:
				return Token{}, nil, false, &UnrecognizedCharError{ScanError{
					Message:   fmt.Sprintf("unrecognized character %q", r),
					Remaining: string(src),
				}}
			}

		case stateIdentifier:
			if len(src) > 0 && isIdentRune(src[0]) {
				acc = append(acc, src[0])
				src = src[1:]
				continue
			}
			return resolve(string(acc)), src, true, nil

		case stateNumeric:
			if len(src) > 0 && unicode.IsDigit(src[0]) {
				acc = append(acc, src[0])
				src = src[1:]
				continue
			}
			if len(src) > 0 && src[0] == '.' {
				acc = append(acc, '.')
				src = src[1:]
				state = stateNumericPoint
				continue
			}
			tok, err := finalizeNumber(string(acc), src)
			return tok, src, err == nil, err

		case stateNumericPoint:
			if len(src) > 0 && unicode.IsDigit(src[0]) {
				acc = append(acc, src[0])
				src = src[1:]
				continue
			}
			if len(src) > 0 && src[0] == '.' {
				return Token{}, nil, false, &MalformedNumberError{ScanError{
					Message:   fmt.Sprintf("malformed numeric literal %q: second decimal point", string(acc)),
					Remaining: string(src),
				}}
			}
			tok, err := finalizeNumber(string(acc), src)
			return tok, src, err == nil, err

		case statePossibleArrow:
			if len(src) > 0 && src[0] == '>' {
				acc = append(acc, '>')
				src = src[1:]
			}
			return resolve(string(acc)), src, true, nil

		case stateSingle:
			return resolve(string(acc)), src, true, nil
		}
	}
}

// resolve maps completed token text to a concrete token via the symbol
// table, falling back to an identifier for anything unmapped.
func resolve(text string) Token {
	if kind, ok := symbols[text]; ok {
		return Token{Kind: kind}
	}
	return Token{Kind: TokenIdentifier, Text: text}
}

// finalizeNumber splits accumulated numeric text at the decimal point and
// parses the whole and frac digit runs independently. Frac is the integer
// value of its run, so leading zeros after the point are lost: "3.05"
// yields Whole 3, Frac 5.
func finalizeNumber(text string, rest []rune) (Token, error) {
	wholeText, fracText, _ := strings.Cut(text, ".")
	whole, err := parseDigits(wholeText)
	if err == nil {
		var frac int
		frac, err = parseDigits(fracText)
		if err == nil {
			return Token{Kind: TokenNumber, Whole: whole, Frac: frac}, nil
		}
	}
	return Token{}, &MalformedNumberError{ScanError{
		Message:   fmt.Sprintf("malformed numeric literal %q", text),
		Remaining: string(rest),
		Cause:     err,
	}}
}

func parseDigits(digits string) (int, error) {
	if digits == "" {
		return 0, nil
	}
	return strconv.Atoi(digits)
}
