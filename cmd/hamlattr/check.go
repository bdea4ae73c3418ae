package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/martinemde/hamlattr/viewsource"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check fragment files",
	Long: "Read attribute fragments from files, one per line ('#' starts a comment line), " +
		"and report every fragment that fails to parse as file:line:col.",
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("quiet", false, "Only print failing fragments")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	f, err := outputFormat()
	if err != nil {
		return err
	}
	quiet, _ := cmd.Flags().GetBool("quiet")

	var reports []fragmentReport
	for _, file := range args {
		src, err := openSource(file)
		if err != nil {
			return err
		}
		fileReports, err := checkSource(src)
		if err != nil {
			return err
		}
		logrus.Infof("%s (%s): %d fragment(s), %d failed",
			src.FilePath(), src.ClassName(), len(fileReports), countFailures(fileReports))
		reports = append(reports, fileReports...)
	}

	out := reports
	if quiet {
		out = failuresOnly(reports)
	}
	if err := writeReports(cmd.OutOrStdout(), f, out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if n := countFailures(reports); n > 0 {
		return fmt.Errorf("%d of %d fragment(s) failed to parse", n, len(reports))
	}
	return nil
}

// openSource opens a file from the local file system as a view source.
// Paths below the working directory keep their relative form so reports
// and class names match what the user typed.
func openSource(file string) (*viewsource.FSSource, error) {
	rel := filepath.ToSlash(filepath.Clean(file))
	if fs.ValidPath(rel) {
		return viewsource.NewFSSource(os.DirFS("."), rel)
	}

	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", file, err)
	}
	dir, name := filepath.Split(abs)
	src, err := viewsource.NewFSSource(os.DirFS(dir), name)
	if err != nil {
		return nil, err
	}
	src.SetClassName(viewsource.ClassNameFor(filepath.ToSlash(file)))
	return src, nil
}

// checkSource parses every fragment of src.
func checkSource(src viewsource.Source) ([]fragmentReport, error) {
	frags, err := viewsource.ReadFragments(src)
	if err != nil {
		return nil, err
	}
	reports := make([]fragmentReport, 0, len(frags))
	for _, frag := range frags {
		r := newFragmentReport(src.FilePath(), frag.Line, frag.Text)
		if r.Error != nil {
			logrus.Debugf("%s: %s (%s)", r.location(), r.Error.Message, r.Error.Reason)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func failuresOnly(reports []fragmentReport) []fragmentReport {
	var out []fragmentReport
	for _, r := range reports {
		if r.Error != nil {
			out = append(out, r)
		}
	}
	return out
}
