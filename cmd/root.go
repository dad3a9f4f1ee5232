package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	briefFlag           bool
	formatFlag          string
	nameFlag            bool
	noTrailingBlankFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "testdox [file|name|-]...",
	Short: "Convert test names to Given/When/Then prose",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunGenerate(cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.InOrStdin(), args, GenerateOptions{
			Brief:           briefFlag,
			Format:          formatFlag,
			NamesOnly:       nameFlag,
			NoTrailingBlank: noTrailingBlankFlag,
		})
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&briefFlag, "brief", "b", false, "Suppress unspecified clauses")
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "plain", "Output format: plain or markdown")
	rootCmd.Flags().BoolVarP(&nameFlag, "name", "n", false, "Treat arguments as literal test names instead of files")
	rootCmd.Flags().BoolVar(&noTrailingBlankFlag, "no-trailing-blank", false, "Suppress the final trailing blank line")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
