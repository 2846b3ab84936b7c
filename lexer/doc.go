// Package lexer tokenizes proof-language source text.
//
// The language is a small formal proof/type calculus: quantifiers (∀, ∃),
// connectives (∧, ∨, ¬, ⊥), arrows (→ or ->), bracketed application,
// decimal number literals, and the keywords type, typeof and val. The lexer
// converts a fully materialized source string into an ordered token
// sequence using maximal munch: the longest valid token at the current
// position always wins (so "->" lexes as a single arrow, never as minus
// followed by greater-than).
//
// The scanner is structured as three layers:
//
//   - Character classifier: predicates for identifier characters and the
//     fixed single-character symbol set.
//   - State machine: an explicit finite automaton that consumes one token's
//     worth of characters per invocation.
//   - Resolver: an exact-match table from accumulated text to token kind,
//     falling back to an identifier.
//
// Usage:
//
//	tokens, err := lexer.Tokenize("∀x:Nat → P(x)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Tokenization is all-or-nothing: either the whole input lexes and the full
// sequence is returned, or an error is returned and no tokens are. Tokens
// carry no source positions.
//
// Two compatibility quirks are kept deliberately. The ASCII keyword aliases
// match reversed spellings ("dna" is the AND connective, "and" is a plain
// identifier) because the historical scanner accumulated token text back to
// front and looked keywords up without restoring the order; sources written
// against that behavior still lex the same here. And "=" is a recognized
// symbol character with no resolver entry, so a lone "=" comes out as the
// identifier "=".
package lexer
