package settings

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftsense/shiftsense-backend-go/internal/domain/settings"
	fileRepo "github.com/shiftsense/shiftsense-backend-go/internal/repository/file"
)

const defaultURL = "https://mock.n8n.io/webhook/shiftsense-intake"

func newTestService(t *testing.T) settings.SettingsService {
	store, err := fileRepo.NewSettingsStore(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	return NewSettingsService(store, defaultURL)
}

func TestGetWebhookFallsBackToDefault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(t)

	got, err := svc.GetWebhook(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaultURL, got.WebhookURL)
}

func TestSaveWebhookRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(t)

	saved, err := svc.SaveWebhook(ctx, settings.UpdateWebhookRequest{
		WebhookURL: "https://n8n.internal.example.com/webhook/intake",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://n8n.internal.example.com/webhook/intake", saved.WebhookURL)

	got, err := svc.GetWebhook(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.WebhookURL, got.WebhookURL)
}

func TestSaveWebhookRejectsInvalidURL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestService(t)

	for _, bad := range []string{"", "not a url", "example.com/webhook", "ftp://example.com"} {
		_, err := svc.SaveWebhook(ctx, settings.UpdateWebhookRequest{WebhookURL: bad})
		assert.ErrorIs(t, err, settings.ErrInvalidWebhookURL, "url %q", bad)
	}

	// Rejected saves leave no partial state: the default still applies.
	got, err := svc.GetWebhook(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaultURL, got.WebhookURL)
}
