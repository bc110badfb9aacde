package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a command isn't in the chain.
	ErrNotFound = errors.New("command not found in chain")
	// ErrInvalidOperator is returned for a joining operator outside the
	// four-operator set.
	ErrInvalidOperator = errors.New("invalid chaining operator")
	// ErrOutOfRange is returned for an index outside the chain.
	ErrOutOfRange = errors.New("chain index out of range")
)

// CommandOrText selects between an already parsed command and raw text that
// is parsed on use. Text must contain exactly one command.
type CommandOrText struct {
	command *Command
	text    string
}

// Cmd wraps a parsed command.
func Cmd(command *Command) CommandOrText {
	return CommandOrText{command: command}
}

// Text wraps raw command text.
func Text(text string) CommandOrText {
	return CommandOrText{text: text}
}

// Chain is an ordered sequence of commands plus the operator that joins each
// command to its predecessor. The operator stored for the first command is a
// placeholder and never rendered.
//
// A chain may be freely mutated by its owner, but the commands inside it are
// immutable. Chains aren't safe for concurrent mutation.
type Chain struct {
	commands  []*Command
	texts     []string
	operators []Operator
}

// NewChain returns an empty chain.
func NewChain() *Chain {
	return &Chain{}
}

// Len returns the number of commands in the chain.
func (c *Chain) Len() int { return len(c.commands) }

// At returns the i'th command. It panics if i is out of range, like a slice.
func (c *Chain) At(i int) *Command { return c.commands[i] }

// Commands returns a copy of the command list for iteration.
func (c *Chain) Commands() []*Command {
	return append([]*Command(nil), c.commands...)
}

// Operators returns a copy of the joining operators. The entry for the first
// command is a placeholder.
func (c *Chain) Operators() []Operator {
	return append([]Operator(nil), c.operators...)
}

// Append adds a command to the end of the chain, joined by op. An empty op
// defaults to ";".
func (c *Chain) Append(target CommandOrText, op Operator) error {
	command, err := c.normalize(target)
	if err != nil {
		return err
	}
	op, err = normalizeOperator(op)
	if err != nil {
		return err
	}

	c.push(command, op)
	return nil
}

// Insert adds a command at index i, joined to its predecessor by op.
func (c *Chain) Insert(i int, target CommandOrText, op Operator) error {
	if i < 0 || i > len(c.commands) {
		return ErrOutOfRange
	}
	command, err := c.normalize(target)
	if err != nil {
		return err
	}
	op, err = normalizeOperator(op)
	if err != nil {
		return err
	}

	c.commands = append(c.commands, nil)
	copy(c.commands[i+1:], c.commands[i:])
	c.commands[i] = command

	c.texts = append(c.texts, "")
	copy(c.texts[i+1:], c.texts[i:])
	c.texts[i] = command.String()

	c.operators = append(c.operators, "")
	copy(c.operators[i+1:], c.operators[i:])
	c.operators[i] = op

	return nil
}

// Index returns the position of the first matching command: by identity for
// a wrapped command, by rendered text for text.
func (c *Chain) Index(target CommandOrText) (int, error) {
	if target.command != nil {
		for i, command := range c.commands {
			if command == target.command {
				return i, nil
			}
		}
		return 0, ErrNotFound
	}

	for i, text := range c.texts {
		if text == target.text {
			return i, nil
		}
	}
	return 0, ErrNotFound
}

// Contains reports whether the chain holds the command, by identity for a
// wrapped command, by rendered text for text.
func (c *Chain) Contains(target CommandOrText) bool {
	_, err := c.Index(target)
	return err == nil
}

// Pop removes and returns the last command.
func (c *Chain) Pop() (*Command, error) {
	return c.PopAt(len(c.commands) - 1)
}

// PopAt removes and returns the command at index i.
func (c *Chain) PopAt(i int) (*Command, error) {
	if i < 0 || i >= len(c.commands) {
		return nil, ErrOutOfRange
	}

	command := c.commands[i]
	c.commands = append(c.commands[:i], c.commands[i+1:]...)
	c.texts = append(c.texts[:i], c.texts[i+1:]...)
	c.operators = append(c.operators[:i], c.operators[i+1:]...)
	return command, nil
}

// Remove deletes the first matching command.
func (c *Chain) Remove(target CommandOrText) error {
	i, err := c.Index(target)
	if err != nil {
		return err
	}
	_, err = c.PopAt(i)
	return err
}

// Slice returns a new chain holding commands [i, j).
func (c *Chain) Slice(i, j int) *Chain {
	out := NewChain()
	out.commands = append(out.commands, c.commands[i:j]...)
	out.texts = append(out.texts, c.texts[i:j]...)
	out.operators = append(out.operators, c.operators[i:j]...)
	return out
}

// Concat returns a new chain holding the commands of both operands. The
// right operand's leading placeholder operator is replaced by the default
// ";" join.
func (c *Chain) Concat(other *Chain) *Chain {
	out := c.Slice(0, len(c.commands))
	out.Extend(other)
	return out
}

// Extend appends the other chain's commands in place.
func (c *Chain) Extend(other *Chain) {
	boundary := len(c.commands)
	c.commands = append(c.commands, other.commands...)
	c.texts = append(c.texts, other.texts...)
	c.operators = append(c.operators, other.operators...)
	if boundary > 0 && boundary < len(c.operators) {
		c.operators[boundary] = OpSeq
	}
}

// Equal compares the canonical text of both chains, so two independently
// parsed chains with the same logical content are equal.
func (c *Chain) Equal(other *Chain) bool {
	if other == nil {
		return false
	}
	return c.String() == other.String()
}

// String renders the chain back to text. ";" hugs the command before it,
// the other operators get a space on both sides.
func (c *Chain) String() string {
	var b strings.Builder
	for i, text := range c.texts {
		if i > 0 {
			if op := c.operators[i]; op == OpSeq {
				b.WriteString("; ")
			} else {
				b.WriteString(" " + string(op) + " ")
			}
		}
		b.WriteString(text)
	}
	return b.String()
}

// MarshalJSON emits the chain as a list of commands with their joining
// operators. The first command has no operator.
func (c *Chain) MarshalJSON() ([]byte, error) {
	type entry struct {
		Operator string   `json:"operator,omitempty"`
		Command  *Command `json:"command"`
	}

	entries := make([]entry, 0, len(c.commands))
	for i, command := range c.commands {
		e := entry{Command: command}
		if i > 0 {
			e.Operator = string(c.operators[i])
		}
		entries = append(entries, e)
	}
	return json.Marshal(entries)
}

// push appends without validation, keeping the three parallel slices in
// lockstep.
func (c *Chain) push(command *Command, op Operator) {
	c.commands = append(c.commands, command)
	c.texts = append(c.texts, command.String())
	c.operators = append(c.operators, op)
}

// normalize resolves the command-or-text union to a command, parsing text
// arguments. Text holding zero or multiple commands is invalid.
func (c *Chain) normalize(target CommandOrText) (*Command, error) {
	if target.command != nil {
		return target.command, nil
	}

	parsed := Parse(target.text)
	if parsed.Len() != 1 {
		return nil, fmt.Errorf("%q doesn't contain exactly one command", target.text)
	}
	return parsed.commands[0], nil
}

func normalizeOperator(op Operator) (Operator, error) {
	if op == "" {
		return OpSeq, nil
	}
	if !op.Valid() {
		return op, ErrInvalidOperator
	}
	return op, nil
}
