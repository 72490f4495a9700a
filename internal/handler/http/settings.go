package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shiftsense/shiftsense-backend-go/internal/domain/settings"
	"github.com/shiftsense/shiftsense-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	// GetWebhook returns the configured automation-webhook URL
	GetWebhook(w http.ResponseWriter, r *http.Request)
	// SaveWebhook validates and stores a new webhook URL
	SaveWebhook(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{settingsService: settingsService}
}

// GetWebhook handles GET /settings/webhook
func (h *settingsHandlerImpl) GetWebhook(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetWebhook(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveWebhook handles PUT /settings/webhook
func (h *settingsHandlerImpl) SaveWebhook(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode webhook settings request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.SaveWebhook(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings saved successfully", result)
}
