package parser

// Layer 1: capture types produced by the name grammar

// Field is a capture slot that may be absent. Absent means the matched
// grammar form does not offer the slot at all. An empty Text with Present
// set occurs only for the optional given slot of the 2-clause direct form
// and behaves as absent during rephrasing.
type Field struct {
	Text    string
	Present bool
}

// Present wraps text in a present Field.
func Present(text string) Field {
	return Field{Text: text, Present: true}
}

// CaptureSet is the result of a successful name parse.
type CaptureSet struct {
	Disabled      bool
	Given         Field
	When          Field
	Then          Field
	SoThatKeyword Field // raw keyword as written, e.g. "SoThat", "Because"
	SoThat        Field
}

// RephrasedTest is the Layer 2 model: one test name converted to display
// clauses. InvalidName is set when no grammar form matched the raw name;
// it is mutually exclusive with the clause fields.
type RephrasedTest struct {
	Testcase      Field
	InvalidName   Field // raw name with underscores converted to spaces
	Disabled      bool
	Given         string
	When          string
	Then          string
	SoThat        Field
	SoThatKeyword string // always resolved: "SO THAT" or an upper-cased keyword
}

// ClauseNode is one node of a split clause. Body uses spaces instead of
// underscores; Children are the _AND_/_WITH_/_BUT_ continuations in their
// original left-to-right order.
type ClauseNode struct {
	Tag      string // "" for a clause root, otherwise AND, WITH or BUT
	Body     string
	Children []ClauseNode
}
