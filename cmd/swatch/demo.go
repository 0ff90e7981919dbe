// Demo command: walk through both copy strategies against the built-in
// palette, then wait for a single key-press.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dukaforge/swatch/internal/demo"
)

var flagNoPause bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Clone prototypes from the built-in palette",
	Long: `Demo shallow-copies the Red and Engineering prototypes and deep-copies
the Medical prototype, printing one trace line per copy. It then waits
for a single key-press before exiting.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().BoolVar(&flagNoPause, "no-pause", false, "exit without waiting for a key-press")
}

func runDemo(cmd *cobra.Command, args []string) error {
	if err := demo.Run(registry, cmd.OutOrStdout()); err != nil {
		return err
	}
	if flagNoPause {
		return nil
	}
	return demo.WaitKey(cmd.InOrStdin())
}
