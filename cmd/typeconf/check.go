// FILE: typeconf/cmd/typeconf/check.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/typeconf/typeconf"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a configuration file",
	Long: `Validate a configuration file against the option catalog and list every
problem found with its section and line. The command exits non-zero when the
file does not load; uses of deprecated options are reported but do not fail
the check.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, err := configFilePath(args)
	if err != nil {
		return err
	}

	file, err := typeconf.LoadFile(path)
	if err != nil {
		issues := typeconf.Issues(err)
		if len(issues) == 0 {
			return err
		}
		for _, issue := range issues {
			fmt.Println(issue)
		}
		return fmt.Errorf("%s: %d problem(s) found", path, len(issues))
	}

	zap.S().Debugw("configuration loaded", "path", path, "sections", len(file.Sections()))

	for _, adv := range file.Advisories() {
		fmt.Println(adv)
	}
	fmt.Printf("%s: OK (%d sections)\n", path, len(file.Sections()))
	return nil
}
