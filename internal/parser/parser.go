package parser

import (
	"regexp"
)

// tok matches one content token: alphanumeric runs joined by single
// underscores. Two consecutive underscores fail the alternative.
const (
	tok    = `[0-9A-Za-z]+(?:_[0-9A-Za-z]+)*`
	capTok = `(` + tok + `)`

	// optional prefix of the direct forms
	directPrefix = `(?:(DISABLED_)?Test_)?`

	// macro-form name; DISABLED sits inside the macro token
	macroName = `MAKE_(DISABLED_)?TEST_NAME`

	// macro arguments may carry their kind-specific keyword, which is
	// stripped; the so-that keyword is kept for later resolution
	givenArg  = `(?:Given_)?` + capTok
	whenArg   = `(?:When_)?` + capTok
	thenArg   = `(?:Then_)?` + capTok
	soThatArg = `(?:(SoThat|Because)_)?` + capTok
)

func anchored(body string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^` + body + `$`)
}

type form struct {
	re      *regexp.Regexp
	capture func(m []string) CaptureSet
}

// forms are tried strictly in order; the first match wins. The order encodes
// the grammar precedence: 4 clauses over 3 over 2 over 1, direct forms
// before macro forms, and within the 1-clause forms When over Then over
// Given over an unqualified token (which binds When).
var forms = []form{
	{anchored(directPrefix + capTok + `__` + capTok + `__` + capTok + `__` + soThatArg), captureFour},
	{anchored(directPrefix + capTok + `__` + capTok + `__` + capTok), captureThree},
	{anchored(directPrefix + capTok + `__` + capTok), captureTwo},
	{anchored(directPrefix + `When_` + capTok), captureWhen},
	{anchored(directPrefix + `Then_` + capTok), captureThen},
	{anchored(directPrefix + `Given_` + capTok), captureGiven},
	{anchored(directPrefix + capTok), captureWhen},
	{anchored(macroName + `4\s*\(\s*` + givenArg + `\s*,\s*` + whenArg + `\s*,\s*` + thenArg + `\s*,\s*` + soThatArg + `\s*\)`), captureFour},
	{anchored(macroName + `3?\s*\(\s*` + givenArg + `\s*,\s*` + whenArg + `\s*,\s*` + thenArg + `\s*\)`), captureThree},
	{anchored(macroName + `2\s*\(\s*` + whenArg + `\s*,\s*` + thenArg + `\s*\)`), captureTwo},
	{anchored(macroName + `1\s*\(\s*When_` + capTok + `\s*\)`), captureWhen},
	{anchored(macroName + `1\s*\(\s*Then_` + capTok + `\s*\)`), captureThen},
	{anchored(macroName + `1\s*\(\s*Given_` + capTok + `\s*\)`), captureGiven},
	{anchored(macroName + `1\s*\(\s*` + capTok + `\s*\)`), captureWhen},
}

// ParseName matches a raw test name against the ordered grammar forms.
// The second return value is false when no form matches; that is an
// expected outcome, not an error.
func ParseName(raw string) (CaptureSet, bool) {
	for _, f := range forms {
		if m := f.re.FindStringSubmatch(raw); m != nil {
			return f.capture(m), true
		}
	}
	return CaptureSet{}, false
}

func captureFour(m []string) CaptureSet {
	cs := CaptureSet{
		Disabled: m[1] != "",
		Given:    Present(m[2]),
		When:     Present(m[3]),
		Then:     Present(m[4]),
		SoThat:   Present(m[6]),
	}
	if m[5] != "" {
		cs.SoThatKeyword = Present(m[5])
	}
	return cs
}

func captureThree(m []string) CaptureSet {
	return CaptureSet{
		Disabled: m[1] != "",
		Given:    Present(m[2]),
		When:     Present(m[3]),
		Then:     Present(m[4]),
	}
}

func captureTwo(m []string) CaptureSet {
	// the optional given slot of the 2-clause form: present but empty,
	// treated as unspecified by the rephraser
	return CaptureSet{
		Disabled: m[1] != "",
		Given:    Present(""),
		When:     Present(m[2]),
		Then:     Present(m[3]),
	}
}

func captureWhen(m []string) CaptureSet {
	return CaptureSet{Disabled: m[1] != "", When: Present(m[2])}
}

func captureThen(m []string) CaptureSet {
	return CaptureSet{Disabled: m[1] != "", Then: Present(m[2])}
}

func captureGiven(m []string) CaptureSet {
	return CaptureSet{Disabled: m[1] != "", Given: Present(m[2])}
}
