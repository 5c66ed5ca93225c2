package cmd

import (
	"errors"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"joblex.dev/joblex/core/verify"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [SUITE.yaml...]",
	Short: "Run parser verification suites.",
	Long: `Parses each suite case's input and compares the result against the
expected job. Without arguments the embedded conformance suite is run.
A mismatch is reported, not fatal: every case in every suite is always
evaluated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		var suites []*verify.Suite
		if len(args) == 0 {
			suites = append(suites, verify.DefaultSuite())
		} else {
			fs := afero.NewOsFs()
			for _, path := range args {
				suite, err := verify.Load(fs, path)
				if err != nil {
					return err
				}
				suites = append(suites, suite)
			}
		}

		failed := false
		for _, suite := range suites {
			report := suite.Run()
			report.Write(cmd.OutOrStdout())
			if !report.OK() {
				failed = true
			}
		}

		if failed {
			return errors.New("verification failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
