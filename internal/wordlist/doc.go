// Package wordlist builds the validated, normalized word lists the
// generators consume.
//
// A List can come from three places:
//   - an ad-hoc slice of (word, clue) pairs supplied by a caller (New)
//   - a word list file in YAML or JSONC format (LoadFile)
//   - one of the built-in themed banks (Builtin / RandomBuiltin)
//
// All three paths run the same normalization and validation: words are
// trimmed, ASCII case is folded to upper, and anything that is then not
// strictly A-Z of length >= 2 is rejected with an invalid-input error.
// Rejection is deliberate — digits, punctuation, and non-ASCII letters are
// never mapped to something placeable.
package wordlist
