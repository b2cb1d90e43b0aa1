package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"illuminate/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	profile   string
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "illuminate",
	Short: "Recursive insight illumination over observation payloads",
	Long: "Illuminate runs observation payloads through a pluggable oracle pipeline,\n" +
		"scores and self-refines the resulting insights, audits them against guardrails,\n" +
		"and derives the follow-up question that seeds the next cycle.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := rootFlags.logLevel
		format := rootFlags.logFormat
		if p, err := loadProfile(); err == nil && p != nil {
			if level == "" {
				level = p.LogLevel
			}
			if format == "" {
				format = p.LogFormat
			}
		}
		logging.Init(logging.ParseLevel(level), format)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.profile, "profile", "", "Path to an engine profile file (YAML or JSON)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error (default info)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "", "Log format: text or json (default text)")

	rootCmd.AddCommand(cycleCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
