// Package shell parses single lines of shell-like input into a structured
// chain of commands. It is meant for analyzing input, e.g. summarizing shell
// history; nothing it parses is ever executed.
//
// Full shell script grammar (loops, conditionals, function definitions) is out
// of scope. Lines that look like scripts are rejected rather than misparsed.
package shell

// Operator joins two commands in a chain.
//
// Defined by
// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/V3_chap02.html#tag_18_04
type Operator string

const (
	// OpSeq runs commands in sequence regardless of status.
	OpSeq Operator = ";"
	// OpPipe connects stdout of one command to stdin of the next.
	OpPipe Operator = "|"
	// OpAnd runs the next command only on success.
	OpAnd Operator = "&&"
	// OpOr runs the next command only on failure.
	OpOr Operator = "||"
)

// Valid reports whether o is one of the four control operators.
func (o Operator) Valid() bool {
	switch o {
	case OpSeq, OpPipe, OpAnd, OpOr:
		return true
	}
	return false
}

// Standard file descriptors.
const (
	Stdin  = 0
	Stdout = 1
	Stderr = 2
)

// reservedWords signal the start of a shell control-flow construct. A line
// whose first token is one of these is treated as a script, not a command.
//
// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/V3_chap02.html#tag_18_04
var reservedWords = map[string]bool{
	"!": true, "{": true, "}": true, "case": true,
	"do": true, "done": true, "elif": true, "else": true,
	"esac": true, "fi": true, "for": true, "if": true,
	"in": true, "then": true, "until": true, "while": true,
}
