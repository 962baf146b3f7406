// Package cmd provides the CLI commands for sfctl.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sfctl",
	Short: "Resolve and mirror Service Fabric partitions",
	Long: `sfctl talks to a Service Fabric cluster through the native client library:
  - Resolve the partition that owns a key
  - List the partitions of a service
  - Mirror resolved partitions into a NATS JetStream bucket
  - Look up native error codes

On hosts without the native runtime, --catalog serves a simulated cluster
from a YAML file and --from-mirror serves one from a mirror bucket.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.sfctl.yaml)")
	rootCmd.PersistentFlags().String("settings", "", "client settings file (JSON or YAML)")
	rootCmd.PersistentFlags().StringSlice("library", nil, "native client library paths, tried in order")
	rootCmd.PersistentFlags().Duration("timeout", 0, "operation timeout (default 5s)")
	rootCmd.PersistentFlags().String("catalog", "", "serve a simulated cluster from this YAML catalog")
	rootCmd.PersistentFlags().Bool("from-mirror", false, "serve a simulated cluster from the mirror bucket")
	rootCmd.PersistentFlags().StringSliceP("nats", "n", nil, "NATS server URLs")
	rootCmd.PersistentFlags().String("bucket", "", "mirror bucket name")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format: table or json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Bind flags to viper
	for _, name := range []string{"settings", "library", "timeout", "catalog", "from-mirror", "nats", "bucket", "output"} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Warning: could not find home directory:", err)
		} else {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sfctl")
	}

	viper.SetEnvPrefix("SF")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// newLogger returns the logger for diagnostics on stderr.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
