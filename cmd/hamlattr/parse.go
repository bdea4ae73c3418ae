package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <fragment>...",
	Short: "Parse attribute fragments given as arguments",
	Long:  "Parse each argument as an attribute fragment and print its attributes, or the first syntax error.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	f, err := outputFormat()
	if err != nil {
		return err
	}

	reports := make([]fragmentReport, 0, len(args))
	for _, fragment := range args {
		logrus.Debugf("parsing fragment %q", fragment)
		reports = append(reports, newFragmentReport("", 0, fragment))
	}

	if err := writeReports(cmd.OutOrStdout(), f, reports); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if n := countFailures(reports); n > 0 {
		return fmt.Errorf("%d of %d fragment(s) failed to parse", n, len(reports))
	}
	return nil
}
