package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_singleCommand(t *testing.T) {
	chain := Parse("cat foo.txt")
	assert.Equal(t, 1, chain.Len())

	command := chain.At(0)
	assert.Equal(t, "cat", command.Program())
	assert.Equal(t, []string{"foo.txt"}, command.Arguments())
	assert.Equal(t, []string{"cat", "foo.txt"}, command.Tokens())
	assert.Equal(t, "cat foo.txt", command.String())
}

func TestParse_pipeline(t *testing.T) {
	chain := Parse("cat foo.txt | grep python | wc -l")

	assert.Equal(t, 3, chain.Len())
	assert.Equal(t, "grep", chain.At(1).Program())
}

func TestParse_rejections(t *testing.T) {
	rejected := []string{
		"",
		"   ",
		"#cat foo.txt",
		`"not a command"`,
		"for i in $(seq 10); do echo $i; done",
		"echo 'unterminated",
	}
	for _, line := range rejected {
		assert.Equal(t, 0, Parse(line).Len(), "%q", line)
	}
}

func TestParse_scriptFragmentAbortsChain(t *testing.T) {
	// A reserved word starting any segment invalidates the whole chain, not
	// just that segment.
	assert.Equal(t, 0, Parse("ls; while true; sleep 1").Len())
	assert.Equal(t, 0, Parse("echo hi && done").Len())
}

func TestParse_strayOperators(t *testing.T) {
	// Never an error, best effort instead.
	chain := Parse("ls ;; wc")
	assert.Equal(t, 2, chain.Len())
	assert.Equal(t, "ls", chain.At(0).Program())
	assert.Equal(t, "wc", chain.At(1).Program())
}

func TestParse_roundTrip(t *testing.T) {
	lines := []string{
		"cat foo.txt | grep python | wc -l",
		"mv foo.txt bar.txt; ls | wc -l",
		"make build && make test || echo failed",
		"rm -v -r some/path >> deleted.txt 2>> delete_err.txt",
	}
	for _, line := range lines {
		chain := Parse(line)
		again := Parse(chain.String())
		assert.True(t, chain.Equal(again), "%q", line)
		assert.Equal(t, chain.String(), again.String())
	}
}

func TestParse_substitutionStaysOpaque(t *testing.T) {
	chain := Parse(`grep $(echo $1 | sed "s/foo/bar/g")`)

	assert.Equal(t, 1, chain.Len())
	assert.Equal(t, 1, len(chain.At(0).Arguments()))
}
