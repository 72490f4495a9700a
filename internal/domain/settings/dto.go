package settings

import "github.com/shiftsense/shiftsense-backend-go/internal/pkg/validator"

// WebhookSettingsResponse carries the configured automation-webhook URL.
// The field name matches the key the frontend has always used.
type WebhookSettingsResponse struct {
	WebhookURL string `json:"n8nWebhookUrl"`
}

type UpdateWebhookRequest struct {
	WebhookURL string `json:"n8nWebhookUrl"`
}

func (r *UpdateWebhookRequest) Validate() error {
	if !validator.IsValidURL(r.WebhookURL) {
		return ErrInvalidWebhookURL
	}
	return nil
}
