package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_SingleTest(t *testing.T) {
	tests := Scan(`TEST(RefCounting, Test_AddRef__increments_the_count) {}`)
	require.Len(t, tests, 1)
	assert.Equal(t, "RefCounting", tests[0].Testcase)
	assert.Equal(t, "Test_AddRef__increments_the_count", tests[0].Name)
}

func TestScan_AllMacroKinds(t *testing.T) {
	src := `
TEST(A, first) {}
TEST_F(B, second) {}
TYPED_TEST(C, third) {}
TYPED_TEST_P(D, fourth) {}
`
	tests := Scan(src)
	require.Len(t, tests, 4)
	assert.Equal(t, RawTest{Testcase: "A", Name: "first"}, tests[0])
	assert.Equal(t, RawTest{Testcase: "B", Name: "second"}, tests[1])
	assert.Equal(t, RawTest{Testcase: "C", Name: "third"}, tests[2])
	assert.Equal(t, RawTest{Testcase: "D", Name: "fourth"}, tests[3])
}

func TestScan_NestedMacroName(t *testing.T) {
	tests := Scan(`TEST_F(IUnknownTests, MAKE_TEST_NAME3(Given_state, action, outcome)) {}`)
	require.Len(t, tests, 1)
	assert.Equal(t, "IUnknownTests", tests[0].Testcase)
	assert.Equal(t, "MAKE_TEST_NAME3(Given_state, action, outcome)", tests[0].Name)
}

func TestScan_MultilineInvocation(t *testing.T) {
	src := `TEST_F(
    IUnknownTests,
    MAKE_TEST_NAME(
        Given_state,
        action,
        outcome))`
	tests := Scan(src)
	require.Len(t, tests, 1)
	assert.Equal(t, "IUnknownTests", tests[0].Testcase)
	assert.Contains(t, tests[0].Name, "MAKE_TEST_NAME(")
	assert.Contains(t, tests[0].Name, "outcome)")
}

func TestScan_IgnoresLookalikes(t *testing.T) {
	src := `
MY_TEST(A, nope)
ATEST(B, nope)
TEST;
`
	assert.Empty(t, Scan(src))
}

func TestScan_PreservesSourceOrder(t *testing.T) {
	src := `
TEST(Suite, third__c) {}
TEST(Suite, first__a) {}
TEST(Other, second__b) {}
`
	tests := Scan(src)
	require.Len(t, tests, 3)
	assert.Equal(t, "third__c", tests[0].Name)
	assert.Equal(t, "first__a", tests[1].Name)
	assert.Equal(t, "second__b", tests[2].Name)
}

func TestScan_EmptySource(t *testing.T) {
	assert.Empty(t, Scan(""))
}
