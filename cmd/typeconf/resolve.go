// FILE: typeconf/cmd/typeconf/resolve.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/typeconf/typeconf"
)

var (
	formatFlag  string
	originsFlag bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <module-path>",
	Short: "Show the effective options for a module path",
	Long: `Resolve the configuration for one dotted module path. Registered defaults
are layered under the global section and every pattern section matching the
path, and the winning value per option is printed. With --origins each line
names the section and line that supplied the value.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVarP(&formatFlag, "format", "f", "text", "Output format (text, ini, toml, yaml, json)")
	resolveCmd.Flags().BoolVar(&originsFlag, "origins", false, "Annotate each option with the section that supplied it")
}

func runResolve(cmd *cobra.Command, args []string) error {
	target := args[0]
	if !typeconf.IsValidModulePath(target) {
		return fmt.Errorf("%q is not a dotted module path", target)
	}

	path, err := configFilePath(nil)
	if err != nil {
		return err
	}
	file, err := typeconf.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load configuration from %s: %w", path, err)
	}

	zap.S().Debugw("resolving module", "path", path, "target", target)
	resolved := file.Resolve(target)

	if formatFlag == "text" {
		printResolved(file, resolved)
		return nil
	}

	format, err := typeconf.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	return resolved.Export(os.Stdout, format)
}

// printResolved writes one line per catalog option, in catalog order.
func printResolved(file *typeconf.File, resolved *typeconf.Resolved) {
	for _, spec := range file.Registry().Options() {
		value, _ := resolved.Value(spec.Name)
		line := fmt.Sprintf("%-24s = %s", spec.Name, renderValue(value))

		if originsFlag {
			origin, _ := resolved.Origin(spec.Name)
			if origin.Source == typeconf.SourceDefault {
				line += "  # default"
			} else {
				line += fmt.Sprintf("  # [%s] line %d", origin.Section, origin.Line)
			}
		}
		fmt.Println(line)
	}
}

// renderValue formats a resolved value the way the configuration syntax
// writes it, with list elements joined by commas.
func renderValue(value any) string {
	if list, ok := value.([]string); ok {
		return strings.Join(list, ", ")
	}
	return fmt.Sprintf("%v", value)
}
