package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/abiosoft/readline"
	"github.com/spf13/cobra"

	"joblex.dev/joblex/core/calc"
)

// calcCmd represents the calc command
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Interactive integer expression calculator.",
	Long: `Evaluates ';'-terminated integer expressions with +, -, *, / and
parentheses, printing the value of each statement. An error discards
the rest of the line; the calculator keeps running.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		rl, err := readline.New("Calc> ")
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
				continue

			case err != nil:
				log.Printf("Error readline: %v", err)
				continue

			case len(line) == 0:
				continue

			default:
				values, evalErr := calc.Eval(line)
				for _, v := range values {
					fmt.Fprintf(rl, "=> %d\n", v)
				}
				if evalErr != nil {
					fmt.Fprintln(rl, evalErr)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
}
