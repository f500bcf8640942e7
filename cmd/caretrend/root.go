package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gyeh/caretrend/internal/config"
	"github.com/gyeh/caretrend/internal/exitcode"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "caretrend",
	Short: "CMS Timely and Effective Care aggregation toolkit",
	Long:  "Resolves facility names against CMS Timely and Effective Care CSV exports, aggregates the matching rows across sources, and writes the clean analytic table plus per-measure time series.",
}

func init() {
	cobra.OnInitialize(func() {
		// Optional .env next to the binary; absent is fine.
		_ = godotenv.Load()
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
