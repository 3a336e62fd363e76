package match

import (
	"slices"
	"strings"
	"unicode"
)

// Accessor prefixes dropped by NormalizeIdentStripped, longest first.
var accessorPrefixes = []string{"get", "set", "has", "is"}

// Suffixes dropped by NormalizeIdentStripped, longest first.
var nameSuffixes = []string{"impl", "list", "map", "ids", "id"}

// NormalizeIdent folds an identifier for fuzzy matching: camel-case and
// separator boundaries are dropped and the result is lower case.
// "maxValue", "MAX_VALUE" and "max$value" all become "maxvalue".
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// NormalizeIdentStripped is NormalizeIdent with one leading accessor token
// and one trailing suffix token removed, when something is left afterwards.
func NormalizeIdentStripped(s string) string {
	tokens := TokenizeIdent(s)
	if len(tokens) > 1 && slices.Contains(accessorPrefixes, tokens[0]) {
		tokens = tokens[1:]
	}
	if n := len(tokens); n > 1 && slices.Contains(nameSuffixes, tokens[n-1]) {
		tokens = tokens[:n-1]
	}

	return strings.Join(tokens, "")
}

// TokenizeIdent splits an identifier into lower-case tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits on separators and case transitions:
//   - "maxValue" -> ["max", "Value"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "parseURL" -> ["parse", "URL"]
//   - "lambda$run$0" -> ["lambda", "run", "0"]
func tokenizeCamelCase(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}
		if i > 0 && startsToken(runes, i) {
			flush()
		}
		current.WriteRune(r)
	}
	flush()

	return tokens
}

// isSeparator reports characters that only delimit words in Java and
// synthetic member names.
func isSeparator(r rune) bool {
	return r == '_' || r == '$' || r == '-' || r == ' '
}

// startsToken reports a lower-to-upper transition or the last capital of an
// acronym followed by a lower-case letter.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}
	if !unicode.IsUpper(prev) {
		return !isSeparator(prev)
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
