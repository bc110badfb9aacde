package shell

// Parse splits a line into a chain of commands. It is total: any input that
// can't be parsed (blank lines, comments, quoted literals, script fragments,
// broken quoting) yields an empty chain, never an error.
func Parse(line string) *Chain {
	chain := NewChain()

	if Classify(line) != LineCommand {
		return chain
	}

	tokens, err := Tokenize(line)
	if err != nil {
		return chain
	}

	// The trailing ";" forces the final group to flush.
	tokens = append(tokens, string(OpSeq))

	joiner := OpSeq // placeholder for the first command, never rendered
	var pending []string
	for _, token := range tokens {
		op := Operator(token)
		if !op.Valid() {
			pending = append(pending, token)
			continue
		}

		if len(pending) == 0 {
			// Stray operator, e.g. "ls ;; wc". Nothing to flush.
			joiner = op
			continue
		}

		if reservedWords[pending[0]] {
			// A script fragment anywhere invalidates the whole chain:
			// better to return nothing than to misparse control flow.
			return NewChain()
		}

		command, err := NewCommand(pending)
		if err != nil {
			return NewChain()
		}

		chain.push(command, joiner)
		joiner = op
		pending = nil
	}

	return chain
}
