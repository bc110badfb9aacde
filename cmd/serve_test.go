package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/josephlewis42/oyster/core/history"
)

func TestRenderPieChart(t *testing.T) {
	svg := renderPieChart([]history.Entry{
		{Name: "git", Count: 3},
		{Name: "ls", Count: 1},
	})

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, "git (3)")
	assert.Contains(t, svg, "ls (1)")
	// Two slices -> two arcs.
	assert.Equal(t, 2, strings.Count(svg, "<path"))
}

func TestRenderPieChart_singleProgram(t *testing.T) {
	// A single slice covers the whole pie; arcs degenerate so it's drawn as
	// a circle instead.
	svg := renderPieChart([]history.Entry{{Name: "vim", Count: 42}})
	assert.Contains(t, svg, "<circle")
}

func TestRenderPieChart_empty(t *testing.T) {
	svg := renderPieChart(nil)
	assert.Contains(t, svg, "no history")
}

func TestHTMLEscape(t *testing.T) {
	assert.Equal(t, "a &amp;&amp; b &lt;c&gt;", htmlEscape("a && b <c>"))
}
