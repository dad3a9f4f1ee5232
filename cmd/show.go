package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sensorflo/testdox/internal/db"
	"github.com/sensorflo/testdox/internal/parser"
	"github.com/sensorflo/testdox/internal/render"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one catalogued test as verbose prose",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunShow(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func RunShow(w io.Writer, rawID string) error {
	rawID = strings.TrimPrefix(rawID, "#")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid test ID: %s", rawID)
	}

	if _, err := os.Stat(catalogDir); os.IsNotExist(err) {
		return fmt.Errorf("run `testdox init` first")
	}

	sqlDB, err := db.Open(catalogDB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	var testcase, rawName, filePath string
	err = sqlDB.QueryRow(`
		SELECT t.testcase, t.raw_name, f.file_path
		FROM tests t
		JOIN files f ON t.file_id = f.id
		WHERE t.id = ?
	`, id).Scan(&testcase, &rawName, &filePath)
	if err != nil {
		return fmt.Errorf("test %d not found", id)
	}

	fmt.Fprintf(w, "#%d %s\n\n", id, filePath)

	rt := parser.Rephrase(parser.Present(testcase), rawName, false)
	render.Document(w, []parser.RephrasedTest{rt}, render.Options{Style: render.Plain, OmitTrailingBlank: true})

	return nil
}
