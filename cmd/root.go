package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uh6654/plugdata/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "pddocs",
	Short: "Compile plugdata markdown documentation to ValueTree binary",
	Long: `pddocs converts the plugdata object documentation from its markdown
format into JUCE's ValueTree binary format (and optionally XML), so the
application can load all docs at startup without re-parsing them.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("pddocs %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
