package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:          "hamlattr",
	Short:        "Haml attribute fragment parser",
	Long:         "hamlattr parses the attribute fragments of Haml-style tags and reports how each value is evaluated.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log messages above specified level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output (same as --log-level=debug)")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	viper.SetEnvPrefix("HAMLATTR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func setupLogging() error {
	logrus.SetOutput(os.Stderr)
	levelName := viper.GetString("log_level")
	if viper.GetBool("debug") {
		levelName = "debug"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	logrus.SetLevel(level)
	logrus.Debugf("log level set to %s", level)
	return nil
}

func outputFormat() (format, error) {
	f := format(strings.ToLower(viper.GetString("format")))
	switch f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", f)
	}
}
