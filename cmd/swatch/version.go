// Version command for the swatch CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/swatch/pkg/swatch"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the swatch version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "swatch", swatch.Version)
	},
}
