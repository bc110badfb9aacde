package shell

import (
	"strings"
	"unicode"
)

// LineKind is the classifier's verdict on a single line of input.
type LineKind int

const (
	// LineCommand is a line that can be parsed into a chain of commands.
	LineCommand LineKind = iota
	// LineBlank is empty or whitespace-only.
	LineBlank
	// LineComment starts with "#".
	LineComment
	// LineQuoted is a bare quoted literal, not a command.
	LineQuoted
	// LineScript starts a control-flow construct (for, while, if, ...).
	LineScript
	// LineBadQuoting couldn't be tokenized, e.g. an unterminated quote.
	LineBadQuoting
)

func (k LineKind) String() string {
	switch k {
	case LineCommand:
		return "command"
	case LineBlank:
		return "blank"
	case LineComment:
		return "comment"
	case LineQuoted:
		return "quoted"
	case LineScript:
		return "script"
	case LineBadQuoting:
		return "bad-quoting"
	}
	return "unknown"
}

// Classify reports why a line is or isn't parsable as a command.
//
// The script check is a heuristic on the first token, not a grammar check:
// it's better to reject a control-flow construct outright than to misparse
// it as a series of commands.
func Classify(line string) LineKind {
	stripped := strings.TrimSpace(line)
	switch {
	case stripped == "":
		return LineBlank
	case strings.HasPrefix(stripped, "#"):
		return LineComment
	case isQuoted(stripped):
		return LineQuoted
	}

	tokens, err := Tokenize(line)
	switch {
	case err != nil:
		return LineBadQuoting
	case len(tokens) == 0:
		return LineBlank
	case reservedWords[tokens[0]]:
		return LineScript
	}

	return LineCommand
}

// IsCommand reports whether the line can be parsed into a chain of commands.
func IsCommand(line string) bool {
	return Classify(line) == LineCommand
}

// isQuoted reports whether the string is wrapped in a matching pair of
// single or double quotes.
func isQuoted(s string) bool {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if len(s) < 2 {
		return false
	}
	return (strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)) ||
		(strings.HasPrefix(s, `'`) && strings.HasSuffix(s, `'`))
}

// stripQuotes removes one matching pair of surrounding quotes, if present.
func stripQuotes(s string) string {
	if len(s) >= 2 &&
		((strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)) ||
			(strings.HasPrefix(s, `'`) && strings.HasSuffix(s, `'`))) {
		return s[1 : len(s)-1]
	}
	return s
}
