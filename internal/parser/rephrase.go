package parser

import (
	"regexp"
	"strings"
)

const unspecified = "(unspecified)"

// methodAlts is the ordered, overlapping method-name alternation for WHEN
// clauses. The first alternative that matches wins, even when a later one
// would also match.
var methodAlts = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:cast|conversion)_operator_(?:to_)?[0-9A-Za-z]+`),
	regexp.MustCompile(`(?i)^[0-9A-Za-z]+_operator`),
	regexp.MustCompile(`(?i)^operator_[0-9A-Za-z]+`),
	regexp.MustCompile(`(?i)^[0-9A-Za-z]+`),
}

// Rephrase converts one raw test name into its display clauses. A raw name
// matching none of the grammar forms yields a RephrasedTest with InvalidName
// set and all clause fields empty. Clause texts stay underscore-joined;
// word separation happens per leaf when the clause is split.
func Rephrase(testcase Field, raw string, brief bool) RephrasedTest {
	cs, ok := ParseName(raw)
	if !ok {
		return RephrasedTest{
			Testcase:      testcase,
			InvalidName:   Present(Words(raw)),
			SoThatKeyword: "SO THAT",
		}
	}

	rt := RephrasedTest{
		Testcase: testcase,
		Disabled: cs.Disabled,
	}
	rt.Given = rephraseGiven(cs.Given, brief)
	var isCalled bool
	rt.When, isCalled = rephraseWhen(cs.When, brief)
	rt.Then = rephraseThen(cs.Then, isCalled, brief)
	rt.SoThat = cs.SoThat
	rt.SoThatKeyword = resolveSoThatKeyword(cs.SoThatKeyword)
	return rt
}

func placeholder(brief bool) string {
	if brief {
		return ""
	}
	return unspecified
}

func rephraseGiven(f Field, brief bool) string {
	if !f.Present || f.Text == "" {
		return placeholder(brief)
	}
	return f.Text
}

// rephraseWhen applies the method-name heuristic. A clause that is a bare
// method name, or a method name followed directly by a _WITH_ joiner, gets
// "is called" synthesized after the method; a clause already carrying
// _is_called is left alone. Anything else passes through untouched.
func rephraseWhen(f Field, brief bool) (string, bool) {
	if !f.Present || f.Text == "" {
		return placeholder(brief), false
	}
	method := findMethod(f.Text)
	rest := f.Text[len(method):]
	lower := strings.ToLower(rest)
	switch {
	case strings.HasPrefix(lower, "_is_called"):
		return f.Text, true
	case rest == "" || strings.HasPrefix(lower, "_with_"):
		return method + "_is_called" + rest, true
	}
	return f.Text, false
}

func findMethod(text string) string {
	for _, re := range methodAlts {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

func rephraseThen(f Field, isCalled, brief bool) string {
	if !f.Present || f.Text == "" {
		return placeholder(brief)
	}
	if isCalled && !strings.HasPrefix(strings.ToLower(f.Text), "it_") {
		return "it_" + f.Text
	}
	return f.Text
}

// resolveSoThatKeyword normalizes the raw so-that keyword: absent or the
// literal SoThat become "SO THAT", anything else is upper-cased verbatim.
func resolveSoThatKeyword(f Field) string {
	if !f.Present || strings.EqualFold(f.Text, "SoThat") {
		return "SO THAT"
	}
	return strings.ToUpper(f.Text)
}
