package file

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store, err := NewSettingsStore(filepath.Join(t.TempDir(), "data", "settings.json"))
	require.NoError(t, err)

	// Nothing saved yet: empty, not an error.
	url, err := store.GetWebhookURL(ctx)
	require.NoError(t, err)
	assert.Empty(t, url)

	require.NoError(t, store.SaveWebhookURL(ctx, "https://hooks.example.com/intake"))

	url, err = store.GetWebhookURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://hooks.example.com/intake", url)
}

func TestSettingsStoreOverwrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store, err := NewSettingsStore(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)

	require.NoError(t, store.SaveWebhookURL(ctx, "https://old.example.com"))
	require.NoError(t, store.SaveWebhookURL(ctx, "https://new.example.com"))

	url, err := store.GetWebhookURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://new.example.com", url)
}
