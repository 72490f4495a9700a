package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// settingsDocument is the on-disk shape. The key name is kept for
// compatibility with the frontend's stored configuration.
type settingsDocument struct {
	WebhookURL string `json:"n8nWebhookUrl"`
}

// SettingsStore persists the single configuration setting as a small JSON
// file next to the application.
type SettingsStore struct {
	mu   sync.Mutex
	path string
}

func NewSettingsStore(path string) (*SettingsStore, error) {
	// Create parent directory if not exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}

	return &SettingsStore{path: path}, nil
}

// GetWebhookURL implements settings.SettingsRepository. A missing file means
// nothing has been saved yet and is not an error.
func (s *SettingsStore) GetWebhookURL(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read settings file: %w", err)
	}

	var doc settingsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("failed to parse settings file: %w", err)
	}

	return doc.WebhookURL, nil
}

// SaveWebhookURL implements settings.SettingsRepository.
func (s *SettingsStore) SaveWebhookURL(ctx context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(settingsDocument{WebhookURL: url}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
