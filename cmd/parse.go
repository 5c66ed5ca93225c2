package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"joblex.dev/joblex/core/present"
	"joblex.dev/joblex/core/shell"
)

var parseFormat string

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse LINE...",
	Short: "Parse one pipeline line and print the job.",
	Long: `Joins the arguments into a single line, parses it and prints the
resulting job. Quote the line to keep your own shell from interpreting
the | and > operators.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		job := shell.ParseJob(strings.Join(args, " "))

		switch parseFormat {
		case "text":
			fmt.Fprint(cmd.OutOrStdout(), present.Text(job))
		case "pretty":
			present.Pretty(cmd.OutOrStdout(), job)
		case "yaml":
			out, err := present.Marshal(job)
			if err != nil {
				return err
			}
			cmd.OutOrStdout().Write(out)
		default:
			return fmt.Errorf("unknown format %q", parseFormat)
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "pretty", "output format: text, pretty or yaml")
	rootCmd.AddCommand(parseCmd)
}
