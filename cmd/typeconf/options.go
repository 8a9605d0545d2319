// FILE: typeconf/cmd/typeconf/options.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typeconf/typeconf"
)

var optionsCmd = &cobra.Command{
	Use:   "options [name]",
	Short: "List the option catalog or describe one option",
	Long: `List every option the checker understands with its kind and default
value. Given a name, print that option's full description instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, args []string) error {
	engine := typeconf.New()

	if len(args) == 1 {
		spec, err := engine.Describe(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", spec.Name, spec.Kind)
		fmt.Printf("  default: %s\n", renderValue(spec.Default))
		if spec.Description != "" {
			fmt.Printf("  %s\n", spec.Description)
		}
		if spec.Deprecated {
			if spec.ReplacedBy != "" {
				fmt.Printf("  deprecated: use %s instead\n", spec.ReplacedBy)
			} else {
				fmt.Println("  deprecated")
			}
		}
		return nil
	}

	for _, spec := range engine.Registry().Options() {
		line := fmt.Sprintf("%-24s %-12s default: %s", spec.Name, spec.Kind, renderValue(spec.Default))
		if spec.Deprecated {
			if spec.ReplacedBy != "" {
				line += fmt.Sprintf("  (deprecated, use %s)", spec.ReplacedBy)
			} else {
				line += "  (deprecated)"
			}
		}
		fmt.Println(line)
	}
	return nil
}
