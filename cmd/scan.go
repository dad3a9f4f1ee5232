package cmd

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/sensorflo/testdox/internal/db"
	"github.com/sensorflo/testdox/internal/extract"
	"github.com/sensorflo/testdox/internal/parser"
	"github.com/sensorflo/testdox/internal/render"
	"github.com/sensorflo/testdox/internal/ui"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <file>...",
	Short: "Extract test names from source files into the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunScan(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func RunScan(w io.Writer, paths []string) error {
	if _, err := os.Stat(catalogDir); os.IsNotExist(err) {
		return fmt.Errorf("run `testdox init` first")
	}

	sqlDB, err := db.Open(catalogDB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	fileCount, testCount := 0, 0
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			ui.ErrLine(w, path, err)
			continue
		}

		var fileID int64
		err = sqlDB.QueryRow(`SELECT id FROM files WHERE file_path = ?`, path).Scan(&fileID)
		if err == sql.ErrNoRows {
			res, err := sqlDB.Exec(`INSERT INTO files (file_path) VALUES (?)`, path)
			if err != nil {
				return fmt.Errorf("inserting %s: %w", path, err)
			}
			fileID, err = res.LastInsertId()
			if err != nil {
				return fmt.Errorf("inserting %s: %w", path, err)
			}
			ui.NewLine(w, path)
		} else if err != nil {
			return fmt.Errorf("querying %s: %w", path, err)
		} else {
			if _, err := sqlDB.Exec(`UPDATE files SET updated_at = datetime('now') WHERE id = ?`, fileID); err != nil {
				return fmt.Errorf("touching %s: %w", path, err)
			}
			ui.TrkLine(w, path)
		}
		fileCount++

		// a re-scan replaces the file's previous tests
		if _, err := sqlDB.Exec(`DELETE FROM tests WHERE file_id = ?`, fileID); err != nil {
			return fmt.Errorf("clearing tests for %s: %w", path, err)
		}

		for _, raw := range extract.Scan(string(src)) {
			rt := parser.Rephrase(parser.Present(raw.Testcase), raw.Name, true)
			prose := render.Summary(rt)
			res, err := sqlDB.Exec(
				`INSERT INTO tests (file_id, testcase, raw_name, valid, disabled, prose) VALUES (?, ?, ?, ?, ?, ?)`,
				fileID, raw.Testcase, raw.Name, boolToInt(!rt.InvalidName.Present), boolToInt(rt.Disabled), prose,
			)
			if err != nil {
				return fmt.Errorf("inserting test %q: %w", raw.Name, err)
			}
			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("inserting test %q: %w", raw.Name, err)
			}
			ui.TestLine(w, id, prose)
			testCount++
		}
	}

	ui.SummaryLine(w, fileCount, testCount)
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
