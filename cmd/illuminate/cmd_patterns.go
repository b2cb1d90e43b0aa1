package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the recognizable pattern vocabulary",
	RunE:  runPatterns,
}

func runPatterns(cmd *cobra.Command, _ []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, def := range p.PatternDefs() {
		fmt.Fprintf(out, "%-12s weight=%.2f  keywords: %s\n", def.Name, def.Weight, strings.Join(def.Keywords, ", "))
	}
	return nil
}
