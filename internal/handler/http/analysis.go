package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shiftsense/shiftsense-backend-go/internal/domain/prediction"
	"github.com/shiftsense/shiftsense-backend-go/internal/handler/http/response"
)

type AnalysisHandler interface {
	// Analyze scores one employee's metrics
	Analyze(w http.ResponseWriter, r *http.Request)
}

type analysisHandlerImpl struct {
	analysisService prediction.AnalysisService
}

func NewAnalysisHandler(analysisService prediction.AnalysisService) AnalysisHandler {
	return &analysisHandlerImpl{analysisService: analysisService}
}

// Analyze handles POST /analysis
func (h *analysisHandlerImpl) Analyze(w http.ResponseWriter, r *http.Request) {
	var req prediction.AnalyzeEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode analyze request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.analysisService.Analyze(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
