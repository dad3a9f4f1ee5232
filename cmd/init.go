package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sensorflo/testdox/internal/db"
	"github.com/spf13/cobra"
)

const (
	catalogDir = ".testdox"
	catalogDB  = ".testdox/testdox.db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the test catalog in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func RunInit(w io.Writer) error {
	if err := ensureCatalogDir(w); err != nil {
		return err
	}
	if err := ensureCatalogDB(w); err != nil {
		return err
	}
	return ensureGitignore(w)
}

func ensureCatalogDir(w io.Writer) error {
	_, err := os.Stat(catalogDir)
	switch {
	case err == nil:
		fmt.Fprintf(w, "catalog directory %s/ already exists\n", catalogDir)
		return nil
	case os.IsNotExist(err):
		if err := os.Mkdir(catalogDir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", catalogDir, err)
		}
		fmt.Fprintf(w, "created catalog directory %s/\n", catalogDir)
		return nil
	}
	return fmt.Errorf("checking %s: %w", catalogDir, err)
}

func ensureCatalogDB(w io.Writer) error {
	_, statErr := os.Stat(catalogDB)
	sqlDB, err := db.Open(catalogDB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	sqlDB.Close()
	if statErr == nil {
		fmt.Fprintf(w, "catalog database %s already exists\n", catalogDB)
	} else {
		fmt.Fprintf(w, "created catalog database %s\n", catalogDB)
	}
	return nil
}

// ensureGitignore keeps the catalog database out of version control. A
// missing .gitignore is created; an existing one is appended to unless the
// entry is already listed.
func ensureGitignore(w io.Writer) error {
	data, err := os.ReadFile(".gitignore")
	if os.IsNotExist(err) {
		if err := os.WriteFile(".gitignore", []byte(catalogDB+"\n"), 0o644); err != nil {
			return fmt.Errorf("updating .gitignore: %w", err)
		}
		fmt.Fprintln(w, "created .gitignore")
		fmt.Fprintf(w, "added %s to .gitignore\n", catalogDB)
		return nil
	}
	if err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == catalogDB {
			fmt.Fprintf(w, "%s already listed in .gitignore\n", catalogDB)
			return nil
		}
	}

	content := string(data)
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += catalogDB + "\n"
	if err := os.WriteFile(".gitignore", []byte(content), 0o644); err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}
	fmt.Fprintf(w, "added %s to .gitignore\n", catalogDB)
	return nil
}
