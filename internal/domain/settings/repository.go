package settings

import "context"

type SettingsRepository interface {
	// GetWebhookURL returns the stored URL, or "" when none has been saved.
	GetWebhookURL(ctx context.Context) (string, error)

	// SaveWebhookURL persists the URL, replacing any previous value.
	SaveWebhookURL(ctx context.Context, url string) error
}
