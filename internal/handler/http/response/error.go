package response

import (
	"errors"
	"net/http"

	"github.com/shiftsense/shiftsense-backend-go/internal/domain/batch"
	"github.com/shiftsense/shiftsense-backend-go/internal/domain/prediction"
	"github.com/shiftsense/shiftsense-backend-go/internal/domain/settings"
	"github.com/shiftsense/shiftsense-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Prediction domain errors
	case errors.Is(err, prediction.ErrPredictionNotFound):
		NotFound(w, "Prediction not found")

	// Settings domain errors
	case errors.Is(err, settings.ErrInvalidWebhookURL):
		BadRequest(w, "Invalid webhook URL provided", nil)

	// Batch domain errors
	case errors.Is(err, batch.ErrMalformedUpload):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, batch.ErrMissingHeader):
		BadRequest(w, "Uploaded file is empty or missing a header row", nil)
	case errors.Is(err, batch.ErrJobNotFound):
		NotFound(w, "Batch job not found")
	case errors.Is(err, batch.ErrJobAlreadyFinished):
		Conflict(w, "Batch job already finished")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
