package cmd

import (
	"io"
	"log"

	"github.com/abiosoft/readline"
	"github.com/spf13/cobra"

	"joblex.dev/joblex/core/present"
	"joblex.dev/joblex/core/shell"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively parse pipeline lines.",
	Long:  `Reads lines and prints the job each one parses to, until EOF.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		rl, err := readline.New("joblex> ")
		if err != nil {
			return err
		}
		defer rl.Close()

		for {
			line, err := rl.Readline()

			switch {
			case err == io.EOF:
				return nil // Input closed, quit.

			case err == readline.ErrInterrupt:
				continue // Drop the interrupted line.

			case err != nil:
				log.Printf("Error readline: %v", err)
				continue

			case len(line) == 0:
				continue // empty line

			default:
				present.Pretty(rl, shell.ParseJob(line))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
