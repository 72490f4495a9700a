package settings

import "context"

// SettingsService manages the automation-webhook configuration
type SettingsService interface {
	// GetWebhook returns the configured URL, falling back to the default
	GetWebhook(ctx context.Context) (WebhookSettingsResponse, error)

	// SaveWebhook validates and persists a new URL
	SaveWebhook(ctx context.Context, req UpdateWebhookRequest) (WebhookSettingsResponse, error)
}
