// Copy command: clone one registered prototype.
package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/swatch/internal/demo"
	"github.com/dukaforge/swatch/pkg/types"
)

var flagDeep bool

var copyCmd = &cobra.Command{
	Use:   "copy <key>",
	Short: "Clone a registered prototype",
	Long: `Copy fetches the prototype registered under key and clones it. The
default strategy is shallow; --deep duplicates nested owned data as well
(the two are indistinguishable for the scalar-only color record).

Example:
  swatch copy Red
  swatch copy Medical --deep`,
	Args: cobra.ExactArgs(1),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().BoolVar(&flagDeep, "deep", false, "produce a deep copy")
}

func runCopy(cmd *cobra.Command, args []string) error {
	key := args[0]
	out := cmd.OutOrStdout()

	if flagJSON {
		proto, err := registry.Get(key)
		if err != nil {
			if errors.Is(err, types.ErrKeyNotFound) {
				return fmt.Errorf("prototype %q not registered: %w", key, err)
			}
			return fmt.Errorf("getting prototype: %w", err)
		}
		copied, err := proto.Copy(!flagDeep)
		if err != nil {
			return fmt.Errorf("copying prototype: %w", err)
		}
		strategy := "shallow"
		if flagDeep {
			strategy = "deep"
		}
		enc, err := json.MarshalIndent(struct {
			Key      string      `json:"key"`
			Strategy string      `json:"strategy"`
			Color    types.Color `json:"color"`
		}{Key: key, Strategy: strategy, Color: *copied}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal copy: %w", err)
		}
		fmt.Fprintln(out, string(enc))
		return nil
	}

	if err := demo.CopyAndPrint(registry, key, !flagDeep, out); err != nil {
		if errors.Is(err, types.ErrKeyNotFound) {
			return fmt.Errorf("prototype %q not registered: %w", key, err)
		}
		return err
	}
	return nil
}
