// FILE: typeconf/cmd/typeconf/root.go
package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/typeconf/typeconf"
)

var (
	configPath string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "typeconf",
	Short: "Inspect layered configuration for the typecheck analyzer",
	Long: `typeconf loads a typecheck configuration file, validates every section
against the built-in option catalog, and reports the effective options for
any module path, including which section supplied each value.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set up logger
		var level zapcore.Level
		if err := level.Set(logLevel); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}

		var cfg zap.Config
		if logFormat == "json" {
			cfg = zap.NewProductionConfig()
		} else {
			cfg = zap.NewDevelopmentConfig()
			// More human-readable time format for text logs
			cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
		}

		cfg.Level = zap.NewAtomicLevelAt(level)
		logger, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}

		zap.ReplaceGlobals(logger.With(zap.String("run", uuid.NewString())))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file (discovered when omitted)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}

// configFilePath picks the configuration file to operate on: a positional
// argument wins, then --config, then discovery.
func configFilePath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if configPath != "" {
		return configPath, nil
	}
	if path, ok := typeconf.Discover(typeconf.DefaultDiscoveryOptions()); ok {
		return path, nil
	}
	return "", fmt.Errorf("no configuration file found: pass --config or create %s", typeconf.DefaultFileNames[0])
}
