package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftsense/shiftsense-backend-go/internal/domain/batch"
	"github.com/shiftsense/shiftsense-backend-go/internal/handler/http/response"
	"github.com/shiftsense/shiftsense-backend-go/internal/pkg/sse"
)

type BatchHandler interface {
	// Upload starts a batch run from an uploaded delimited-text file
	Upload(w http.ResponseWriter, r *http.Request)
	// Get returns a batch job snapshot
	Get(w http.ResponseWriter, r *http.Request)
	// Cancel aborts a running batch job
	Cancel(w http.ResponseWriter, r *http.Request)
	// Events streams per-row progress as server-sent events
	Events(w http.ResponseWriter, r *http.Request)
}

type batchHandlerImpl struct {
	batchService batch.BatchService
	hub          *sse.Hub
}

func NewBatchHandler(batchService batch.BatchService, hub *sse.Hub) BatchHandler {
	return &batchHandlerImpl{
		batchService: batchService,
		hub:          hub,
	}
}

// Upload handles POST /batch
func (h *batchHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Field 'file' is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	result, err := h.batchService.Start(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Accepted(w, "Batch processing started", result)
}

// Get handles GET /batch/{jobID}
func (h *batchHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	result, err := h.batchService.Get(r.Context(), jobID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Cancel handles POST /batch/{jobID}/cancel
func (h *batchHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	result, err := h.batchService.Cancel(r.Context(), jobID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Batch job cancelled", result)
}

// Events handles GET /batch/{jobID}/events
func (h *batchHandlerImpl) Events(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	snapshot, err := h.batchService.Get(r.Context(), jobID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	// Subscribe before emitting the snapshot so no event can fall between.
	ch, cleanup := h.hub.Subscribe(jobID)
	defer cleanup()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// Current state first; if the job already finished this is the only event.
	writeEvent(w, "snapshot", snapshot)
	flusher.Flush()
	if snapshot.State.Terminal() {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, open := <-ch:
			if !open {
				return
			}
			writeEvent(w, ev.Event, ev.Data)
			flusher.Flush()
			if ev.Event == "done" {
				return
			}
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		slog.Error("Failed to encode SSE payload", "event", event, "error", err)
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
}
