// Package integration exercises the registry and copy operations together,
// across every backend, the way the demo drives them.
package integration

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/swatch/internal/demo"
	"github.com/dukaforge/swatch/internal/memory"
	"github.com/dukaforge/swatch/internal/sqlite"
	"github.com/dukaforge/swatch/pkg/types"
)

// backends enumerates every registry implementation under its config name.
func backends(t *testing.T) map[string]types.Registry {
	t.Helper()

	sq, err := sqlite.NewRegistry()
	require.NoError(t, err)

	return map[string]types.Registry{
		types.BackendMemory: memory.NewRegistry(),
		types.BackendSQLite: sq,
	}
}

func TestPrototypeScenario(t *testing.T) {
	for name, reg := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer reg.Close()

			_, err := reg.Set("Red", &types.Color{Red: 255})
			require.NoError(t, err)
			_, err = reg.Set("Engineering", &types.Color{Red: 128, Green: 128, Blue: 211})
			require.NoError(t, err)
			_, err = reg.Set("Medical", &types.Color{Red: 211, Green: 20, Blue: 34})
			require.NoError(t, err)

			red, err := reg.Get("Red")
			require.NoError(t, err)
			engineering, err := reg.Get("Engineering")
			require.NoError(t, err)
			medical, err := reg.Get("Medical")
			require.NoError(t, err)

			redCopy := red.ShallowCopy()
			engineeringCopy := engineering.ShallowCopy()
			medicalCopy, err := medical.DeepCopy()
			require.NoError(t, err)

			// Value equality, identity inequality.
			assert.Equal(t, *red, *redCopy)
			assert.NotSame(t, red, redCopy)
			assert.Equal(t, *engineering, *engineeringCopy)
			assert.NotSame(t, engineering, engineeringCopy)
			assert.Equal(t, *medical, *medicalCopy)
			assert.NotSame(t, medical, medicalCopy)

			// The trace prints red, blue, green.
			assert.Equal(t, "211,34,20", medicalCopy.Trace())

			// Mutating a copy never reaches the registered prototype.
			redCopy.Green = 99
			stored, err := reg.Get("Red")
			require.NoError(t, err)
			assert.Equal(t, types.Color{Red: 255}, *stored)
		})
	}
}

func TestDuplicateInsertLeavesEntryUntouched(t *testing.T) {
	for name, reg := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer reg.Close()

			_, err := reg.Set("Red", &types.Color{Red: 255})
			require.NoError(t, err)

			_, err = reg.Set("Red", &types.Color{Green: 255})
			assert.ErrorIs(t, err, types.ErrDuplicateKey)

			stored, err := reg.Get("Red")
			require.NoError(t, err)
			assert.Equal(t, types.Color{Red: 255}, *stored)
		})
	}
}

func TestDemoAgainstEveryBackend(t *testing.T) {
	for name, reg := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer reg.Close()

			require.NoError(t, demo.Seed(reg))

			var out bytes.Buffer
			require.NoError(t, demo.Run(reg, &out))

			want := "Shallow copy of Red RGB: 255,0,0\n" +
				"Shallow copy of Engineering RGB: 128,211,128\n" +
				"Deep copy of Medical RGB: 211,34,20\n"
			assert.Equal(t, want, out.String())
		})
	}
}
