package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/josephlewis42/oyster/core/shell"
)

// parseCmd parses one line and prints the structured result.
var parseCmd = &cobra.Command{
	Use:   "parse LINE...",
	Short: "Parse a shell line and print its structure as JSON.",
	Long: `Parse a shell line into its chain of commands with inferred options
and redirects. Unparsable input prints an empty list; parsing never fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		chain := shell.Parse(strings.Join(args, " "))
		out, err := json.MarshalIndent(chain, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
