// Package render turns rephrased tests into plain-text or markdown prose.
// Tree construction is left to the parser; rendering traverses each clause
// tree node-before-children, children in original order.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/sensorflo/testdox/internal/parser"
)

// Style selects the output markup.
type Style int

const (
	Plain Style = iota
	Markdown
)

// ParseStyle validates a --format flag value. Unknown values are a user
// error here; an unknown Style reaching the writer below is not.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "plain":
		return Plain, nil
	case "markdown":
		return Markdown, nil
	}
	return 0, fmt.Errorf("unknown format %q (want plain or markdown)", s)
}

// Options is the immutable render configuration for one input unit.
type Options struct {
	Brief             bool
	Style             Style
	OmitTrailingBlank bool
}

// Document renders one input unit's tests. A testcase heading is emitted
// whenever a test's testcase differs from the immediately preceding
// test's, so identical names separated by a different testcase re-emit.
func Document(w io.Writer, tests []parser.RephrasedTest, opts Options) {
	var prev parser.Field
	for i, rt := range tests {
		if rt.Testcase.Present && rt.Testcase != prev {
			heading(w, rt.Testcase.Text, opts)
		}
		prev = rt.Testcase
		test(w, rt, opts)
		if i < len(tests)-1 || !opts.OmitTrailingBlank {
			fmt.Fprintln(w)
		}
	}
}

// Summary renders one test as a single line, used by the catalog commands.
// Joiner words stay inline rather than becoming nested bullets.
func Summary(rt parser.RephrasedTest) string {
	if rt.InvalidName.Present {
		return "invalid test name: " + rt.InvalidName.Text
	}
	var parts []string
	if rt.Disabled {
		parts = append(parts, "(DISABLED)")
	}
	for _, c := range []struct{ tag, text string }{
		{"GIVEN", rt.Given},
		{"WHEN", rt.When},
		{"THEN", rt.Then},
	} {
		if c.text != "" {
			parts = append(parts, c.tag+" "+parser.Words(c.text))
		}
	}
	if rt.SoThat.Present {
		parts = append(parts, rt.SoThatKeyword+" "+parser.Words(rt.SoThat.Text))
	}
	return strings.Join(parts, " ")
}

func test(w io.Writer, rt parser.RephrasedTest, opts Options) {
	if rt.InvalidName.Present {
		line(w, 0, "invalid test name: "+rt.InvalidName.Text, opts)
		return
	}
	if rt.Disabled {
		line(w, 0, "(DISABLED)", opts)
	}
	clause(w, "GIVEN", rt.Given, opts)
	clause(w, "WHEN", rt.When, opts)
	clause(w, "THEN", rt.Then, opts)
	if rt.SoThat.Present {
		clause(w, rt.SoThatKeyword, rt.SoThat.Text, opts)
	}
}

func clause(w io.Writer, tag, text string, opts Options) {
	if text == "" {
		// brief mode suppresses unspecified clauses entirely
		return
	}
	node := parser.Split(text)
	node.Tag = tag
	writeNode(w, node, 0, opts)
}

func writeNode(w io.Writer, n parser.ClauseNode, depth int, opts Options) {
	line(w, depth, n.Tag+" "+n.Body, opts)
	for _, c := range n.Children {
		writeNode(w, c, depth+1, opts)
	}
}

func heading(w io.Writer, name string, opts Options) {
	switch opts.Style {
	case Plain:
		fmt.Fprintf(w, "%s:\n", name)
	case Markdown:
		fmt.Fprintf(w, "## %s\n\n", name)
	default:
		panic(fmt.Sprintf("render: unknown style %d", opts.Style))
	}
}

func line(w io.Writer, depth int, text string, opts Options) {
	switch opts.Style {
	case Plain:
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), text)
	case Markdown:
		fmt.Fprintf(w, "%s- %s\n", strings.Repeat("  ", depth), text)
	default:
		panic(fmt.Sprintf("render: unknown style %d", opts.Style))
	}
}
