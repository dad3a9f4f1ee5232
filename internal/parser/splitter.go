package parser

import (
	"regexp"
	"strings"
)

var joiner = regexp.MustCompile(`(?i)_(AND|WITH|BUT)_`)

// Words converts an underscore-joined fragment to space-separated words.
func Words(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// Split decomposes a rephrased clause body into its node tree. Joiners are
// matched against the still-underscored text; underscore-to-space
// conversion happens only on each segment's own text, never before the
// joiner match.
func Split(text string) ClauseNode {
	return splitTagged("", text)
}

func splitTagged(tag, text string) ClauseNode {
	node := ClauseNode{Tag: tag}
	locs := joiner.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		node.Body = Words(text)
		return node
	}
	node.Body = Words(text[:locs[0][0]])
	for i, loc := range locs {
		word := strings.ToUpper(text[loc[2]:loc[3]])
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		node.Children = append(node.Children, splitTagged(word, text[loc[1]:end]))
	}
	return node
}
