package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sensorflo/testdox/internal/db"
	"github.com/sensorflo/testdox/internal/ui"
	"github.com/spf13/cobra"
)

var (
	invalidFlag  bool
	disabledFlag bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all catalogued tests",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout(), invalidFlag, disabledFlag)
	},
}

func init() {
	listCmd.Flags().BoolVar(&invalidFlag, "invalid", false, "Show only tests whose name matched no grammar form")
	listCmd.Flags().BoolVar(&disabledFlag, "disabled", false, "Show only disabled tests")
	rootCmd.AddCommand(listCmd)
}

type listRow struct {
	id       int64
	fileName string
	testcase string
	prose    string
}

func RunList(w io.Writer, invalidOnly, disabledOnly bool) error {
	if _, err := os.Stat(catalogDir); os.IsNotExist(err) {
		return fmt.Errorf("run `testdox init` first")
	}

	sqlDB, err := db.Open(catalogDB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`
		SELECT t.id, f.file_path, t.testcase, t.prose, t.valid, t.disabled
		FROM tests t
		JOIN files f ON t.file_id = f.id
		ORDER BY f.file_path, t.id
	`)
	if err != nil {
		return fmt.Errorf("querying tests: %w", err)
	}
	defer rows.Close()

	var results []listRow
	for rows.Next() {
		var r listRow
		var filePath string
		var valid, disabled int
		if err := rows.Scan(&r.id, &filePath, &r.testcase, &r.prose, &valid, &disabled); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}
		r.fileName = filepath.Base(filePath)

		if invalidOnly && valid != 0 {
			continue
		}
		if disabledOnly && disabled == 0 {
			continue
		}

		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	if len(results) == 0 {
		return nil
	}

	idWidth, fileWidth, tcWidth := 0, 0, 0
	for _, r := range results {
		tag := fmt.Sprintf("#%d", r.id)
		if len(tag) > idWidth {
			idWidth = len(tag)
		}
		if len(r.fileName) > fileWidth {
			fileWidth = len(r.fileName)
		}
		if len(r.testcase) > tcWidth {
			tcWidth = len(r.testcase)
		}
	}

	for _, r := range results {
		ui.ListRow(w, r.id, r.fileName, r.testcase, r.prose, idWidth, fileWidth, tcWidth)
	}

	return nil
}
