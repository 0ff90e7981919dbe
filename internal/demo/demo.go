// Package demo seeds the built-in palette and walks through both copy
// strategies against it. This is the program's default behavior: every
// command in the CLI operates on the palette seeded here, since no backend
// outlives the process.
package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/dukaforge/swatch/pkg/types"
)

// Palette keys. Three base colors and three role colors.
const (
	KeyRed         = "Red"
	KeyGreen       = "Green"
	KeyBlue        = "Blue"
	KeyEngineering = "Engineering"
	KeyMedical     = "Medical"
	KeyLogistics   = "Logistics"
)

// palette lists the seeded prototypes in insertion order.
var palette = []struct {
	key   string
	color types.Color
}{
	{KeyRed, types.Color{Red: 255}},
	{KeyGreen, types.Color{Green: 255}},
	{KeyBlue, types.Color{Blue: 255}},
	{KeyEngineering, types.Color{Red: 128, Green: 128, Blue: 211}},
	{KeyMedical, types.Color{Red: 211, Green: 20, Blue: 34}},
	{KeyLogistics, types.Color{Red: 255, Green: 54}},
}

// Seed registers the six built-in prototypes.
func Seed(reg types.Registry) error {
	for _, p := range palette {
		c := p.color
		if _, err := reg.Set(p.key, &c); err != nil {
			return fmt.Errorf("seeding %s: %w", p.key, err)
		}
	}
	return nil
}

// Run demonstrates both copy strategies: shallow copies of Red and
// Engineering, then a deep copy of Medical. One line per copy goes to out.
func Run(reg types.Registry, out io.Writer) error {
	for _, key := range []string{KeyRed, KeyEngineering} {
		if err := CopyAndPrint(reg, key, true, out); err != nil {
			return err
		}
	}
	return CopyAndPrint(reg, KeyMedical, false, out)
}

// CopyAndPrint fetches the prototype under key, copies it with the chosen
// strategy, and prints the copy's trace line.
func CopyAndPrint(reg types.Registry, key string, shallow bool, out io.Writer) error {
	proto, err := reg.Get(key)
	if err != nil {
		return fmt.Errorf("getting prototype %s: %w", key, err)
	}

	copied, err := proto.Copy(shallow)
	if err != nil {
		return fmt.Errorf("copying prototype %s: %w", key, err)
	}

	kind := "Deep"
	if shallow {
		kind = "Shallow"
	}
	fmt.Fprintf(out, "%s copy of %s RGB: %s\n", kind, key, copied.Trace())
	return nil
}

// WaitKey blocks until a single byte arrives on in. A closed stream counts
// as a key-press so piped runs terminate cleanly.
func WaitKey(in io.Reader) error {
	var b [1]byte
	_, err := in.Read(b[:])
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("waiting for key-press: %w", err)
	}
	return nil
}
