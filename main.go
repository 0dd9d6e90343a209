package main

import (
	"os"

	"github.com/cottand/mcrl/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "mcrl [subcommand]",
	Short:        "mcrl\n rewrites mCRL2 data expressions, natively for machine words",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.WordCmd)
	rootCmd.AddCommand(cmd.SignatureCmd)
}
