// Package cmd provides the command-line interface for sitecheck with
// configuration management supporting multiple configuration sources.
//
// Configuration precedence, highest first:
//  1. Command-line flags (--config, --base, etc.)
//  2. SITECHECK_CONFIG_FILE environment variable (custom config file path)
//  3. Individual environment variables (SITECHECK_BUILD_OUTPUT_DIR, etc.)
//  4. Configuration file (.sitecheck.yml in the working directory)
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sitecheck/sitecheck/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sitecheck",
	Short: "Content validation and build verification for the portfolio site",
	Long: `sitecheck validates the site's structured content (YAML data files and
Markdown product entries with YAML frontmatter) against the content
schemas, tracks content changes between builds, and verifies that the
static build output satisfies cache-busting and minification
expectations.

Commands:
  sitecheck validate              Validate all content files
  sitecheck manifest              Snapshot or diff the content manifest
  sitecheck buildcheck [dir]      Verify build-output optimization
  sitecheck watch                 Re-validate content on every change

A failing validate or buildcheck exits non-zero so the enclosing build
aborts with every file-level error printed together.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .sitecheck.yml, can also use SITECHECK_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// newLogger builds the process logger from the --log-level flag.
func newLogger(component string) *logging.SiteLogger {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(viper.GetString("log-level"))
	cfg.Component = component
	return logging.NewLogger(cfg)
}

// initConfig initializes the configuration system.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("SITECHECK_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sitecheck")
	}

	// Enable automatic environment variable binding with SITECHECK_ prefix
	// Examples: SITECHECK_BUILD_OUTPUT_DIR, SITECHECK_CONTENT_DATA_DIR
	viper.SetEnvPrefix("SITECHECK")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing or malformed config files degrade to defaults without failing
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
