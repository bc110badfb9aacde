package shell

import (
	"strings"

	"github.com/anmitsu/go-shlex"
)

// Tokenize splits a line into words using POSIX quoting rules, then breaks
// out control operators that weren't separated by whitespace and collapses
// command substitutions into single opaque tokens.
//
// An error is only returned for lines the base lexer can't handle at all,
// such as an unterminated quote.
func Tokenize(line string) ([]string, error) {
	raw, err := shlex.Split(line, true)
	if err != nil {
		return nil, err
	}

	var tokens []string
	var substitution []string
	closer := ""

	for _, token := range raw {
		if closer != "" {
			substitution = append(substitution, token)
			if strings.HasSuffix(token, closer) {
				tokens = append(tokens, strings.Join(substitution, ""))
				substitution = nil
				closer = ""
			}
			continue
		}

		opener, subCloser := substitutionDelimiters(token)
		if opener != "" {
			if len(token) > len(opener) && strings.HasSuffix(token, subCloser) {
				// Self-contained, e.g. "$(date)".
				tokens = append(tokens, token)
				continue
			}
			closer = subCloser
			substitution = append(substitution, token)
			continue
		}

		tokens = append(tokens, splitOperators(token)...)
	}

	if len(substitution) > 0 {
		// Unterminated substitution, emit what was captured.
		tokens = append(tokens, strings.Join(substitution, ""))
	}

	return tokens, nil
}

// substitutionDelimiters reports the opener/closer pair if the token starts a
// command substitution, empty strings otherwise. Operators inside a
// substitution must not be mistaken for chain separators, so the whole span
// is kept as one token.
func substitutionDelimiters(token string) (opener, closer string) {
	switch {
	case strings.HasPrefix(token, "$("):
		return "$(", ")"
	case strings.HasPrefix(token, "`"):
		return "`", "`"
	}
	return "", ""
}

// splitOperators re-scans a single word for embedded control operators,
// e.g. "path;ls" becomes ["path", ";", "ls"]. Two-character operators are
// matched before one-character ones. A single unescaped backslash before an
// operator suppresses the split.
func splitOperators(token string) []string {
	if len(token) <= 1 || isQuoted(token) {
		return []string{token}
	}

	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(token); i++ {
		c := token[i]

		var prev, next byte
		if i > 0 {
			prev = token[i-1]
		}
		if i+1 < len(token) {
			next = token[i+1]
		}

		// Escaping is only honored for exactly one unescaped backslash:
		// "\;" protects the ";" but "\\;" does not.
		if c == '\\' && prev != '\\' && next != '\\' {
			current.WriteByte(c)
			if i+1 < len(token) {
				current.WriteByte(next)
			}
			i++
			continue
		}

		var op Operator
		switch {
		case c == '&' && next == '&':
			op = OpAnd
			i++
		case c == '|' && next == '|':
			op = OpOr
			i++
		case c == ';':
			op = OpSeq
		case c == '|':
			op = OpPipe
		default:
			current.WriteByte(c)
			continue
		}

		flush()
		tokens = append(tokens, string(op))
	}

	flush()
	return tokens
}
