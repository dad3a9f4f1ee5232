package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sensorflo/testdox/internal/extract"
	"github.com/sensorflo/testdox/internal/parser"
	"github.com/sensorflo/testdox/internal/render"
)

// GenerateOptions is the immutable configuration of one generation run.
type GenerateOptions struct {
	Brief           bool
	Format          string
	NamesOnly       bool
	NoTrailingBlank bool
}

// RunGenerate converts each input unit (file, literal name, or stdin) to
// prose. An unreadable file is diagnosed on errw and skipped; the run
// continues with the remaining inputs.
func RunGenerate(w, errw io.Writer, stdin io.Reader, args []string, genOpts GenerateOptions) error {
	style, err := render.ParseStyle(genOpts.Format)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	for i, arg := range args {
		opts := render.Options{
			Brief:             genOpts.Brief,
			Style:             style,
			OmitTrailingBlank: genOpts.NoTrailingBlank && i == len(args)-1,
		}

		if genOpts.NamesOnly {
			rt := parser.Rephrase(parser.Field{}, arg, genOpts.Brief)
			render.Document(w, []parser.RephrasedTest{rt}, opts)
			continue
		}

		var src []byte
		if arg == "-" {
			src, err = io.ReadAll(stdin)
			if err != nil {
				fmt.Fprintf(errw, "testdox: reading stdin: %v\n", err)
				continue
			}
		} else {
			src, err = os.ReadFile(arg)
			if err != nil {
				fmt.Fprintf(errw, "testdox: %v\n", err)
				continue
			}
		}

		var tests []parser.RephrasedTest
		for _, raw := range extract.Scan(string(src)) {
			tests = append(tests, parser.Rephrase(parser.Present(raw.Testcase), raw.Name, genOpts.Brief))
		}
		render.Document(w, tests, opts)
	}

	return nil
}
