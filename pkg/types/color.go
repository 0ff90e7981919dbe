package types

import (
	"fmt"
	"log/slog"
)

// Color is a prototype record of three 8-bit channel intensities. The channel
// range [0,255] is enforced by the field width; there is no separate
// validation step. Instances are created directly with explicit channel
// values or produced as copies of an existing instance.
type Color struct {
	Red   uint8 `json:"red"`
	Green uint8 `json:"green"`
	Blue  uint8 `json:"blue"`
}

// ShallowCopy returns a new Color whose scalar fields are copied by value
// from the receiver. The result is independent for scalar fields; a record
// carrying nested owned reference data would share that data with its source
// after a shallow copy, which is the contract's distinction from DeepCopy.
// Emits a debug trace of the copied values.
func (c *Color) ShallowCopy() *Color {
	out := *c
	slog.Debug("shallow copy", "rgb", c.Trace())
	return &out
}

// DeepCopy returns a new Color that shares no mutable state with the
// receiver. Each field is duplicated explicitly; any owned nested structure
// added to the record must be duplicated recursively here, while shared
// (non-owned) references keep the reference. Returns ErrCopyUnsupported if a
// field cannot be duplicated — impossible while the record holds only
// scalars, but the error path is the extension point for richer shapes.
// Emits a debug trace of the copied values.
func (c *Color) DeepCopy() (*Color, error) {
	out := &Color{
		Red:   c.Red,
		Green: c.Green,
		Blue:  c.Blue,
	}
	slog.Debug("deep copy", "rgb", c.Trace())
	return out, nil
}

// Copy dispatches to ShallowCopy or DeepCopy based on shallow.
func (c *Color) Copy(shallow bool) (*Color, error) {
	if shallow {
		return c.ShallowCopy(), nil
	}
	return c.DeepCopy()
}

// Trace returns the channel values as a comma-separated triple for
// human-readable copy traces. The order is red, blue, green — a long-standing
// quirk of the trace format that disagrees with the RGB name. Kept as is;
// consumers of the trace depend on the printed text, not the naming.
func (c *Color) Trace() string {
	return fmt.Sprintf("%d,%d,%d", c.Red, c.Blue, c.Green)
}

// Hex returns the channel values as a #rrggbb string, in the conventional
// red, green, blue order. Used for terminal previews, not for copy traces.
func (c *Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}
