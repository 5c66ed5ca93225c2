package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "joblex",
	Short: "Parse shell-style pipeline lines into structured jobs",
	Long: `joblex parses one-line pipelines of the form

    cmd1 args | cmd2 | cmd3 > out.txt

into a structured job: the commands left to right, each with its
arguments, plus an optional output redirect target. The grammar knows
no quoting, escaping or multi-character operators, and it never fails:
malformed input degrades to a smaller job.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
