package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/sso/pkg/core/config"
	"github.com/msto63/sso/pkg/core/log"
	"github.com/msto63/sso/pkg/core/version"
)

const envPrefix = "SSO"

var (
	cfgFile   string
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sso",
	Short: "Small-string-optimized byte strings",
	Long: `sso checks the small-string-optimized byte string of
github.com/msto63/sso/pkg/sso against a plain byte slice reference.

Commands:
  check    - run the differential properties
  replay   - rerun one failing case by its seed
  inspect  - show the representation of a string
  corpus   - list stored runs and failures`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"check": map[string]interface{}{
			"iterations": 200,
			"seed":       0,
			"max_length": 96,
			"workers":    4,
			"properties": []string{},
		},
		"corpus": map[string]interface{}{
			"path": "",
		},
		"log": map[string]interface{}{
			"level":  "info",
			"format": "text",
		},
	}
}

// setup loads the configuration and builds the logger shared by all commands
func setup(cmd *cobra.Command, args []string) error {
	if cfgFile != "" {
		loaded, err := config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  defaults(),
		})
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = config.New(defaults(), envPrefix)
	}

	if logLevel == "" {
		logLevel = cfg.GetString("log.level")
	}
	if logFormat == "" {
		logFormat = cfg.GetString("log.format")
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	format, err := log.ParseFormat(logFormat)
	if err != nil {
		return err
	}

	logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "sso",
	})
	log.SetDefault(logger)
	logger.Debug("starting", log.Fields{"build": version.Info(), "config": cfg.FilePath()})
	return nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
