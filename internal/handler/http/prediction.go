package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shiftsense/shiftsense-backend-go/internal/domain/prediction"
	"github.com/shiftsense/shiftsense-backend-go/internal/handler/http/response"
)

type PredictionHandler interface {
	// List returns the full prediction history
	List(w http.ResponseWriter, r *http.Request)
	// Save upserts a prediction into the history
	Save(w http.ResponseWriter, r *http.Request)
}

type predictionHandlerImpl struct {
	predictionService prediction.PredictionService
}

func NewPredictionHandler(predictionService prediction.PredictionService) PredictionHandler {
	return &predictionHandlerImpl{predictionService: predictionService}
}

// List handles GET /predictions
func (h *predictionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.predictionService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{TotalItems: int64(len(result))})
}

// Save handles POST /predictions
func (h *predictionHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req prediction.SavePredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode save prediction request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.predictionService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Prediction saved", result)
}
