package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords_EachUnderscoreBecomesASpace(t *testing.T) {
	assert.Equal(t, "a b c", Words("a_b_c"))
	assert.Equal(t, "a  b", Words("a__b"))
}

func TestSplit_NoJoiners(t *testing.T) {
	node := Split("returns_the_new_value")
	assert.Equal(t, "", node.Tag)
	assert.Equal(t, "returns the new value", node.Body)
	assert.Empty(t, node.Children)
}

func TestSplit_AndWithSiblings(t *testing.T) {
	node := Split("A_AND_B_WITH_C")
	assert.Equal(t, "A", node.Body)
	require.Len(t, node.Children, 2)
	assert.Equal(t, "AND", node.Children[0].Tag)
	assert.Equal(t, "B", node.Children[0].Body)
	assert.Equal(t, "WITH", node.Children[1].Tag)
	assert.Equal(t, "C", node.Children[1].Body)
}

func TestSplit_But(t *testing.T) {
	node := Split("the_call_succeeds_BUT_the_cache_stays_cold")
	assert.Equal(t, "the call succeeds", node.Body)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "BUT", node.Children[0].Tag)
	assert.Equal(t, "the cache stays cold", node.Children[0].Body)
}

func TestSplit_CaseInsensitiveJoinersTagUppercased(t *testing.T) {
	node := Split("increments_the_count_and_returns_the_value")
	assert.Equal(t, "increments the count", node.Body)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "AND", node.Children[0].Tag)
	assert.Equal(t, "returns the value", node.Children[0].Body)
}

func TestSplit_JoinersMustBeUnderscoreBounded(t *testing.T) {
	node := Split("the_BRAND_is_visible")
	assert.Equal(t, "the BRAND is visible", node.Body)
	assert.Empty(t, node.Children)

	node = Split("commands_AND")
	assert.Equal(t, "commands AND", node.Body)
	assert.Empty(t, node.Children)
}

func TestSplit_ConversionOnlyOnLeafText(t *testing.T) {
	// the joiner is matched against underscored text; the leaf bodies
	// come out space-separated
	node := Split("a_b_AND_c_d")
	assert.Equal(t, "a b", node.Body)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "c d", node.Children[0].Body)
}

func TestSplit_ChildrenKeepOriginalOrder(t *testing.T) {
	node := Split("start_BUT_warn_AND_log_WITH_context")
	require.Len(t, node.Children, 3)
	assert.Equal(t, "BUT", node.Children[0].Tag)
	assert.Equal(t, "AND", node.Children[1].Tag)
	assert.Equal(t, "WITH", node.Children[2].Tag)
}
