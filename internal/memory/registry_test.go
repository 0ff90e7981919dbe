package memory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/swatch/pkg/types"
)

func TestRegistrySetGet(t *testing.T) {
	r := NewRegistry()
	defer r.Close()

	want := &types.Color{Red: 255}
	key, err := r.Set("red", want)
	require.NoError(t, err)
	assert.Equal(t, "red", key)

	got, err := r.Get("red")
	require.NoError(t, err)
	assert.Equal(t, *want, *got)
	assert.Same(t, want, got, "Get returns the stored instance, not a copy")
}

func TestRegistrySetDuplicateKey(t *testing.T) {
	r := NewRegistry()
	defer r.Close()

	original := &types.Color{Red: 255}
	_, err := r.Set("red", original)
	require.NoError(t, err)

	_, err = r.Set("red", &types.Color{Green: 255})
	assert.ErrorIs(t, err, types.ErrDuplicateKey)

	// The failed attempt must not disturb the original entry.
	got, err := r.Get("red")
	require.NoError(t, err)
	assert.Equal(t, *original, *got)
}

func TestRegistrySetGeneratesKey(t *testing.T) {
	r := NewRegistry()
	defer r.Close()

	key, err := r.Set("", &types.Color{Blue: 8})
	require.NoError(t, err)

	id, err := uuid.Parse(key)
	require.NoError(t, err, "generated key should be a UUID")
	assert.Equal(t, uuid.Version(7), id.Version())

	got, err := r.Get(key)
	require.NoError(t, err)
	assert.Equal(t, types.Color{Blue: 8}, *got)
}

func TestRegistrySetInvalidInput(t *testing.T) {
	r := NewRegistry()
	defer r.Close()

	_, err := r.Set("   ", &types.Color{})
	assert.ErrorIs(t, err, types.ErrInvalidKey)

	_, err = r.Set("red", nil)
	assert.ErrorIs(t, err, types.ErrInvalidColor)
}

func TestRegistryGetAbsentKey(t *testing.T) {
	r := NewRegistry()
	defer r.Close()

	_, err := r.Get("missing")
	assert.ErrorIs(t, err, types.ErrKeyNotFound)
}

func TestRegistryKeysSorted(t *testing.T) {
	r := NewRegistry()
	defer r.Close()

	for _, key := range []string{"medical", "blue", "engineering"} {
		_, err := r.Set(key, &types.Color{})
		require.NoError(t, err)
	}

	keys, err := r.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"blue", "engineering", "medical"}, keys)
}

func TestRegistryClose(t *testing.T) {
	r := NewRegistry()
	_, err := r.Set("red", &types.Color{Red: 255})
	require.NoError(t, err)

	require.NoError(t, r.Close())
	require.NoError(t, r.Close(), "Close is idempotent")

	_, err = r.Set("green", &types.Color{Green: 255})
	assert.ErrorIs(t, err, types.ErrRegistryClosed)
	_, err = r.Get("red")
	assert.ErrorIs(t, err, types.ErrRegistryClosed)
	_, err = r.Keys()
	assert.ErrorIs(t, err, types.ErrRegistryClosed)
}
