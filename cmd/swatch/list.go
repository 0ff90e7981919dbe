// List command: print the seeded palette.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dukaforge/swatch/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered prototypes",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

// paletteEntry is the JSON shape for one registered prototype.
type paletteEntry struct {
	Key   string      `json:"key"`
	Color types.Color `json:"color"`
}

func runList(cmd *cobra.Command, args []string) error {
	keys, err := registry.Keys()
	if err != nil {
		return fmt.Errorf("listing keys: %w", err)
	}

	out := cmd.OutOrStdout()

	if flagJSON {
		entries := make([]paletteEntry, 0, len(keys))
		for _, key := range keys {
			c, err := registry.Get(key)
			if err != nil {
				return fmt.Errorf("getting %s: %w", key, err)
			}
			entries = append(entries, paletteEntry{Key: key, Color: *c})
		}
		enc, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal palette: %w", err)
		}
		fmt.Fprintln(out, string(enc))
		return nil
	}

	for _, key := range keys {
		c, err := registry.Get(key)
		if err != nil {
			return fmt.Errorf("getting %s: %w", key, err)
		}
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Render("  ")
		fmt.Fprintf(out, "%s %-12s %3d %3d %3d\n", block, key, c.Red, c.Green, c.Blue)
	}
	return nil
}
