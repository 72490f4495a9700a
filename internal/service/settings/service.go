package settings

import (
	"context"
	"fmt"

	"github.com/shiftsense/shiftsense-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	repo       settings.SettingsRepository
	defaultURL string
}

func NewSettingsService(repo settings.SettingsRepository, defaultURL string) settings.SettingsService {
	return &SettingsServiceImpl{
		repo:       repo,
		defaultURL: defaultURL,
	}
}

// GetWebhook returns the stored URL, or the configured default when nothing
// has been saved yet
func (s *SettingsServiceImpl) GetWebhook(ctx context.Context) (settings.WebhookSettingsResponse, error) {
	url, err := s.repo.GetWebhookURL(ctx)
	if err != nil {
		return settings.WebhookSettingsResponse{}, fmt.Errorf("failed to load webhook settings: %w", err)
	}
	if url == "" {
		url = s.defaultURL
	}
	return settings.WebhookSettingsResponse{WebhookURL: url}, nil
}

// SaveWebhook validates and persists a new URL. Nothing is stored when
// validation fails.
func (s *SettingsServiceImpl) SaveWebhook(ctx context.Context, req settings.UpdateWebhookRequest) (settings.WebhookSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.WebhookSettingsResponse{}, err
	}

	if err := s.repo.SaveWebhookURL(ctx, req.WebhookURL); err != nil {
		return settings.WebhookSettingsResponse{}, fmt.Errorf("failed to save webhook settings: %w", err)
	}

	return settings.WebhookSettingsResponse{WebhookURL: req.WebhookURL}, nil
}
