// Show command: print one registered prototype.
package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/swatch/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Show a registered prototype",
	Long: `Show prints the channel values of the prototype registered under key.

Example:
  swatch show Medical
  swatch show Engineering --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	key := args[0]

	c, err := registry.Get(key)
	if err != nil {
		if errors.Is(err, types.ErrKeyNotFound) {
			return fmt.Errorf("prototype %q not registered: %w", key, err)
		}
		return fmt.Errorf("getting prototype: %w", err)
	}

	out := cmd.OutOrStdout()

	if flagJSON {
		enc, err := json.MarshalIndent(paletteEntry{Key: key, Color: *c}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal prototype: %w", err)
		}
		fmt.Fprintln(out, string(enc))
		return nil
	}

	fmt.Fprintf(out, "%s %s red=%d green=%d blue=%d\n", key, c.Hex(), c.Red, c.Green, c.Blue)
	return nil
}
