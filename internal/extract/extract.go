// Package extract scans program source text for test macro invocations and
// yields the raw (testcase, name) pairs the parser consumes.
package extract

import "regexp"

// RawTest is one extracted (testcase, raw name) pair.
type RawTest struct {
	Testcase string
	Name     string
}

// testMacro matches TEST/TEST_F/TYPED_TEST/TYPED_TEST_P invocations. The
// name expression may contain one level of nested parentheses so that
// MAKE_TEST_NAME-style raw names survive extraction intact. Arguments may
// span lines.
var testMacro = regexp.MustCompile(`\b(TEST_F|TYPED_TEST_P|TYPED_TEST|TEST)\s*\(\s*([A-Za-z_][0-9A-Za-z_]*)\s*,\s*((?:[^()]|\([^()]*\))*?)\s*\)`)

// Scan returns the test definitions of one source unit in source order.
func Scan(src string) []RawTest {
	var tests []RawTest
	for _, m := range testMacro.FindAllStringSubmatch(src, -1) {
		tests = append(tests, RawTest{Testcase: m[2], Name: m[3]})
	}
	return tests
}
