package main

import (
	"fmt"

	"github.com/martinemde/hamlattr/viewsource"
	"github.com/spf13/cobra"
)

var classnameCmd = &cobra.Command{
	Use:   "classname <template-path>...",
	Short: "Print the generated class name for template paths",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range args {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), viewsource.ClassNameFor(p)); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classnameCmd)
}
