package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardboxhq/cardbox/pkg/types"
)

// setupBackend creates an attached Backend over a throwaway store.
func setupBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend(zerolog.Nop())
	config := types.Config{
		DataDir: t.TempDir(),
	}
	require.NoError(t, b.Attach(config))
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestBackend_Attach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend(zerolog.Nop())
	config := types.Config{DataDir: tmpDir}

	require.NoError(t, b.Attach(config))
	defer b.Detach()

	// Store file created under the default name.
	_, err := os.Stat(filepath.Join(tmpDir, types.DefaultDatabase))
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, types.DefaultDatabase), b.Path())

	// Double attach fails.
	assert.ErrorIs(t, b.Attach(config), types.ErrAlreadyAttached)
}

func TestBackend_AttachValidation(t *testing.T) {
	b := NewBackend(zerolog.Nop())
	assert.ErrorIs(t, b.Attach(types.Config{}), types.ErrDataDirEmpty)
}

func TestBackend_Detach(t *testing.T) {
	b := NewBackend(zerolog.Nop())
	require.NoError(t, b.Attach(types.Config{DataDir: t.TempDir()}))

	require.NoError(t, b.Detach())

	// Idempotent.
	assert.NoError(t, b.Detach())

	// Operations fail after detach.
	_, err := b.Cards().List()
	assert.ErrorIs(t, err, types.ErrStoreUnavailable)
	_, err = b.Cards().Get(1)
	assert.ErrorIs(t, err, types.ErrStoreUnavailable)
	_, err = b.Cards().Create(&types.Card{Content: "x"})
	assert.ErrorIs(t, err, types.ErrStoreUnavailable)
}

func TestBackend_Reconnect(t *testing.T) {
	tmpDir := t.TempDir()
	b := NewBackend(zerolog.Nop())
	require.NoError(t, b.Attach(types.Config{DataDir: tmpDir}))
	defer b.Detach()

	card, err := b.Cards().Create(&types.Card{Content: "in first store"})
	require.NoError(t, err)

	require.NoError(t, b.Reconnect("second"))
	assert.Equal(t, filepath.Join(tmpDir, "second.db"), b.Path())

	// The new store is empty and fully migrated.
	_, err = b.Cards().Get(card.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = b.Cards().Create(&types.Card{Content: "in second store"})
	require.NoError(t, err)

	// Switching back sees the original row again.
	require.NoError(t, b.Reconnect(types.DefaultDatabase))
	got, err := b.Cards().Get(card.ID)
	require.NoError(t, err)
	assert.Equal(t, "in first store", got.Content)
}

func TestBackend_ReconnectDetached(t *testing.T) {
	b := NewBackend(zerolog.Nop())
	assert.ErrorIs(t, b.Reconnect("other"), types.ErrStoreUnavailable)
}

func TestBackend_Settings(t *testing.T) {
	b := setupBackend(t)

	_, err := b.ReadSetting("theme")
	assert.ErrorIs(t, err, types.ErrNotFound)

	require.NoError(t, b.WriteSetting("theme", "dark"))
	got, err := b.ReadSetting("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", got)

	// Overwrite.
	require.NoError(t, b.WriteSetting("theme", "light"))
	got, err = b.ReadSetting("theme")
	require.NoError(t, err)
	assert.Equal(t, "light", got)
}
