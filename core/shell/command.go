package shell

import (
	"encoding/json"
	"errors"
	"strings"
)

// OptionValue is one inferred value for a command option: either text
// captured from the argument list or a marker that the flag was present
// with no value.
type OptionValue struct {
	text string
	flag bool
}

// StringValue builds an option value holding captured text.
func StringValue(text string) OptionValue {
	return OptionValue{text: text}
}

// FlagValue builds the "flag present, no value" sentinel.
func FlagValue() OptionValue {
	return OptionValue{flag: true}
}

// IsFlag reports whether the value is the bare-flag sentinel.
func (v OptionValue) IsFlag() bool { return v.flag }

// Text returns the captured text, empty for bare flags.
func (v OptionValue) Text() string { return v.text }

func (v OptionValue) String() string {
	if v.flag {
		return "true"
	}
	return v.text
}

// MarshalJSON emits the captured text, or true for bare flags.
func (v OptionValue) MarshalJSON() ([]byte, error) {
	if v.flag {
		return json.Marshal(true)
	}
	return json.Marshal(v.text)
}

// Command is a single non-chained invocation: a program, its arguments and
// whatever options and redirects can be inferred from them. Commands are
// immutable once built; options and redirects are derived deterministically
// from the arguments.
type Command struct {
	program   string
	arguments []string
	tokens    []string
	text      string
	options   map[string][]OptionValue
	redirects []Redirect
}

// NewCommand builds a command from its tokens. The first token is the
// program name and must be present.
func NewCommand(tokens []string) (*Command, error) {
	if len(tokens) == 0 || tokens[0] == "" {
		return nil, errors.New("command needs at least a program name")
	}

	cmd := &Command{
		program:   tokens[0],
		arguments: append([]string(nil), tokens[1:]...),
		tokens:    append([]string(nil), tokens...),
		text:      renderTokens(tokens),
	}
	cmd.options, cmd.redirects = inferArguments(cmd.arguments)
	return cmd, nil
}

// Program returns the program name, never empty.
func (c *Command) Program() string { return c.program }

// Arguments returns a copy of the arguments following the program name.
func (c *Command) Arguments() []string {
	return append([]string(nil), c.arguments...)
}

// Tokens returns a copy of the full token list including the program name.
func (c *Command) Tokens() []string {
	return append([]string(nil), c.tokens...)
}

// String returns the canonical text of the command. Tokens containing
// whitespace are re-quoted, so the result may normalize the original input.
func (c *Command) String() string { return c.text }

// Options returns a snapshot of the inferred options. Mutating the result
// has no effect on the command.
func (c *Command) Options() map[string][]OptionValue {
	snapshot := make(map[string][]OptionValue, len(c.options))
	for name, values := range c.options {
		snapshot[name] = append([]OptionValue(nil), values...)
	}
	return snapshot
}

// HasOption reports whether the option was seen at least once.
func (c *Command) HasOption(name string) bool {
	_, ok := c.options[name]
	return ok
}

// OptionValues returns the values recorded for the option in encounter
// order, nil if it was never seen.
func (c *Command) OptionValues(name string) []OptionValue {
	values, ok := c.options[name]
	if !ok {
		return nil
	}
	return append([]OptionValue(nil), values...)
}

// OptionCount returns how many times the option was seen.
func (c *Command) OptionCount(name string) int {
	return len(c.options[name])
}

// Redirects returns a copy of the redirects in encounter order.
func (c *Command) Redirects() []Redirect {
	return append([]Redirect(nil), c.redirects...)
}

// MarshalJSON emits the structured form of the command.
func (c *Command) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Program   string                   `json:"program"`
		Arguments []string                 `json:"arguments,omitempty"`
		Options   map[string][]OptionValue `json:"options,omitempty"`
		Redirects []Redirect               `json:"redirects,omitempty"`
	}{
		Program:   c.program,
		Arguments: c.arguments,
		Options:   c.options,
		Redirects: c.redirects,
	})
}

// inferArguments is the schema-less walk over the arguments that builds the
// option map and redirect list. It can't know whether a program's option
// really consumes the following token, so an option takes the next token as
// its value unless that token also looks like an option.
func inferArguments(arguments []string) (map[string][]OptionValue, []Redirect) {
	options := make(map[string][]OptionValue)
	var redirects []Redirect

	for i, token := range arguments {
		next := ""
		hasNext := i+1 < len(arguments)
		if hasNext {
			next = arguments[i+1]
		}

		if !strings.HasPrefix(token, "-") {
			if redirect, ok := extractRedirect(token, next, hasNext); ok {
				redirects = append(redirects, redirect)
			}
			continue
		}

		if strings.HasPrefix(token, "--") {
			name := token
			value := ""
			if eq := strings.Index(token, "="); eq != -1 {
				name, value = token[:eq], token[eq+1:]
			}
			if value != "" {
				options[name] = append(options[name], StringValue(stripQuotes(value)))
			} else {
				options[name] = append(options[name], lookaheadValue(next, hasNext))
			}
			continue
		}

		// Clustered short flags like -vvv or -abc: every letter is its own
		// option and all of them share the same lookahead token.
		for _, letter := range token[1:] {
			name := "-" + string(letter)
			options[name] = append(options[name], lookaheadValue(next, hasNext))
		}
	}

	return options, redirects
}

// lookaheadValue captures the following token as an option value unless it
// looks like another option.
func lookaheadValue(next string, hasNext bool) OptionValue {
	if hasNext && !strings.HasPrefix(next, "-") {
		return StringValue(stripQuotes(next))
	}
	return FlagValue()
}

// renderTokens joins tokens with spaces, re-quoting any that contain
// whitespace or quotes.
func renderTokens(tokens []string) string {
	var b strings.Builder
	for i, token := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(renderToken(token))
	}
	return b.String()
}

func renderToken(token string) string {
	if token != "" && !strings.ContainsAny(token, " \t\"") {
		return token
	}

	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(token); i++ {
		if token[i] == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(token[i])
	}
	b.WriteByte('"')
	return b.String()
}
