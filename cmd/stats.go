package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/oyster/core/history"
)

var (
	statsJSON bool
	statsTop  int
)

// statsCmd summarizes a shell history file.
var statsCmd = &cobra.Command{
	Use:   "stats [HISTORY_FILE]",
	Short: "Summarize program usage from a shell history file.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		path := cfg.HistoryPath
		if len(args) > 0 {
			path = args[0]
		}

		report, err := history.LoadFile(afero.NewOsFs(), expandHome(path))
		if err != nil {
			return err
		}

		topN := cfg.TopN
		if statsTop > 0 {
			topN = statsTop
		}

		if statsJSON {
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		out := cmd.OutOrStdout()
		bold := color.New(color.Bold)

		fmt.Fprintln(out, bold.Sprintf("%d commands across %d lines", report.Commands, report.Lines))
		fmt.Fprintln(out)

		tw := tabwriter.NewWriter(out, 8, 8, 4, ' ', 0)
		fmt.Fprintf(tw, "%s\t%s\n", bold.Sprint("PROGRAM"), bold.Sprint("COUNT"))
		for _, entry := range report.TopPrograms(topN, cfg.IgnorePrograms) {
			fmt.Fprintf(tw, "%s\t%d\n", entry.Name, entry.Count)
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		if report.Skipped.Len() > 0 {
			fmt.Fprintln(out)
			for _, entry := range report.Skipped.Entries() {
				fmt.Fprintf(out, "skipped %d %s line(s)\n", entry.Count, entry.Name)
			}
		}
		return nil
	},
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "emit the full report as JSON")
	statsCmd.Flags().IntVar(&statsTop, "top", 0, "override how many programs to show")
	rootCmd.AddCommand(statsCmd)
}
