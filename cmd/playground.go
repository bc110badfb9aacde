package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/oyster/core/shell"
)

// playgroundCmd runs an interactive loop for exploring how lines parse.
var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Interactively explore how shell lines are parsed.",
	Long: `Reads lines from the terminal and prints how each one parses.
Nothing is executed. Exit with Ctrl-D.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		rl, err := readline.NewEx(&readline.Config{
			Prompt: "oyster> ",
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		out := cmd.OutOrStdout()
		for {
			line, err := rl.Readline()
			switch {
			case err == io.EOF:
				return nil
			case err == readline.ErrInterrupt:
				continue
			case err != nil:
				return err
			case strings.TrimSpace(line) == "":
				continue
			}

			chain := shell.Parse(line)
			if chain.Len() == 0 {
				fmt.Fprintf(out, "not a command: %s\n", shell.Classify(line))
				continue
			}

			operators := chain.Operators()
			for i, command := range chain.Commands() {
				prefix := "  "
				if i > 0 {
					prefix = fmt.Sprintf("%s ", operators[i])
				}
				fmt.Fprintf(out, "%s%s", prefix, command.Program())

				if arguments := command.Arguments(); len(arguments) > 0 {
					fmt.Fprintf(out, " %s", strings.Join(arguments, " "))
				}
				if options := command.Options(); len(options) > 0 {
					fmt.Fprintf(out, "  [%d option(s)]", len(options))
				}
				for _, redirect := range command.Redirects() {
					fmt.Fprintf(out, "  [redirect %s]", redirect)
				}
				fmt.Fprintln(out)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}
