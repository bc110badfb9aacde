package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pipeline(t *testing.T) *Chain {
	t.Helper()
	return Parse("cat foo.txt | grep python | wc -l")
}

func TestChain_lengthAndOrdering(t *testing.T) {
	chain := pipeline(t)

	assert.Equal(t, 3, chain.Len())
	assert.Equal(t, "cat", chain.At(0).Program())
	assert.Equal(t, "grep", chain.At(1).Program())
	assert.Equal(t, "wc", chain.At(2).Program())
}

func TestChain_append(t *testing.T) {
	chain := Parse("mv foo.txt bar.txt")

	assert.Nil(t, chain.Append(Text("cat bar.txt"), ""))
	assert.Equal(t, "mv foo.txt bar.txt; cat bar.txt", chain.String())

	assert.Nil(t, chain.Append(Text("wc -l"), OpPipe))
	assert.Equal(t, "mv foo.txt bar.txt; cat bar.txt | wc -l", chain.String())

	command, err := NewCommand([]string{"less"})
	assert.Nil(t, err)
	assert.Nil(t, chain.Append(Cmd(command), OpAnd))
	assert.Equal(t, "mv foo.txt bar.txt; cat bar.txt | wc -l && less", chain.String())
}

func TestChain_appendInvalid(t *testing.T) {
	chain := NewChain()

	assert.Equal(t, ErrInvalidOperator, chain.Append(Text("ls"), Operator("&")))
	// Multi-command text can't be normalized to a single command.
	assert.NotNil(t, chain.Append(Text("ls; wc"), ""))
	// Neither can text that doesn't parse at all.
	assert.NotNil(t, chain.Append(Text("# comment"), ""))
	assert.Equal(t, 0, chain.Len())
}

func TestChain_insert(t *testing.T) {
	chain := Parse("ls | wc -l")

	assert.Nil(t, chain.Insert(1, Text("grep go"), OpPipe))
	assert.Equal(t, "ls | grep go | wc -l", chain.String())

	assert.Equal(t, ErrOutOfRange, chain.Insert(1337, Text("ls"), ""))
	assert.Equal(t, ErrOutOfRange, chain.Insert(-1, Text("ls"), ""))
}

func TestChain_index(t *testing.T) {
	chain := pipeline(t)

	i, err := chain.Index(Text("grep python"))
	assert.Nil(t, err)
	assert.Equal(t, 1, i)

	i, err = chain.Index(Cmd(chain.At(2)))
	assert.Nil(t, err)
	assert.Equal(t, 2, i)

	_, err = chain.Index(Text(`echo "Hello"`))
	assert.Equal(t, ErrNotFound, err)

	other, err := NewCommand([]string{"mv", "foo.txt", "bar.txt"})
	assert.Nil(t, err)
	_, err = chain.Index(Cmd(other))
	assert.Equal(t, ErrNotFound, err)
}

func TestChain_pop(t *testing.T) {
	chain := Parse("mv foo.txt bar.txt; ls | wc -l")
	assert.Equal(t, 3, chain.Len())

	wc, err := chain.Pop()
	assert.Nil(t, err)
	assert.Equal(t, "wc", wc.Program())

	mv, err := chain.PopAt(0)
	assert.Nil(t, err)
	assert.Equal(t, "mv", mv.Program())

	assert.Equal(t, 1, chain.Len())
	assert.Equal(t, "ls", chain.At(0).Program())

	_, err = chain.PopAt(1337)
	assert.Equal(t, ErrOutOfRange, err)
}

func TestChain_remove(t *testing.T) {
	chain := Parse("mv foo.txt bar.txt; ls | wc -l")

	assert.Nil(t, chain.Remove(Text("wc -l")))
	assert.Equal(t, "mv foo.txt bar.txt; ls", chain.String())

	i, err := chain.Index(Text("ls"))
	assert.Nil(t, err)
	assert.Nil(t, chain.Remove(Cmd(chain.At(i))))
	assert.Equal(t, "mv foo.txt bar.txt", chain.String())

	assert.Equal(t, ErrNotFound, chain.Remove(Text("wc -l")))
}

func TestChain_contains(t *testing.T) {
	chain := pipeline(t)

	assert.True(t, chain.Contains(Cmd(chain.At(2))))
	assert.True(t, chain.Contains(Text("wc -l")))
	assert.False(t, chain.Contains(Text("mv foo.txt bar.txt")))
}

func TestChain_slice(t *testing.T) {
	chain := pipeline(t)

	tail := chain.Slice(1, chain.Len())
	assert.Equal(t, 2, tail.Len())
	assert.Equal(t, "grep python | wc -l", tail.String())

	// The slice is independent of the original.
	assert.Nil(t, tail.Append(Text("less"), ""))
	assert.Equal(t, 3, chain.Len())
}

func TestChain_concat(t *testing.T) {
	first := pipeline(t)
	second := Parse("mv foo.txt bar.txt")

	combined := first.Concat(second)

	assert.Equal(t, 3, first.Len())
	assert.Equal(t, 1, second.Len())
	assert.Equal(t, 4, combined.Len())
	assert.Equal(t, "cat foo.txt | grep python | wc -l; mv foo.txt bar.txt", combined.String())

	// (a+b)[i] == a[i] for i < len(a), == b[i-len(a)] after.
	for i := 0; i < first.Len(); i++ {
		assert.Equal(t, first.At(i), combined.At(i))
	}
	for i := 0; i < second.Len(); i++ {
		assert.Equal(t, second.At(i), combined.At(first.Len()+i))
	}
}

func TestChain_extend(t *testing.T) {
	first := Parse("mv foo.txt bar.txt")
	second := Parse("cat bar.txt")

	first.Extend(second)

	assert.Equal(t, 2, first.Len())
	assert.Equal(t, "mv foo.txt bar.txt; cat bar.txt", first.String())
	assert.Equal(t, 1, second.Len())
}

func TestChain_equal(t *testing.T) {
	chain := pipeline(t)

	copied := Parse(chain.String())
	assert.True(t, chain.Equal(copied))
	assert.True(t, copied.Equal(chain))

	assert.Nil(t, copied.Append(Text("less"), ""))
	assert.False(t, chain.Equal(copied))

	assert.False(t, chain.Equal(nil))
	assert.True(t, NewChain().Equal(NewChain()))
}

func TestChain_rendering(t *testing.T) {
	chain := Parse("cd /some/path;ls|wc -l")

	assert.Equal(t, 3, chain.Len())
	assert.Equal(t, "cd /some/path", chain.At(0).String())
	assert.Equal(t, "ls", chain.At(1).String())
	assert.Equal(t, "wc -l", chain.At(2).String())
	assert.Equal(t, "cd /some/path; ls | wc -l", chain.String())
}

func TestChain_operatorsLockstep(t *testing.T) {
	chain := Parse("a; b && c || d | e")

	assert.Equal(t, chain.Len(), len(chain.Operators()))
	assert.Equal(t, []Operator{OpSeq, OpSeq, OpAnd, OpOr, OpPipe}, chain.Operators())
}
