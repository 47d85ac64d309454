package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kaptiva-io/lead-listener/internal/extraction"
	"github.com/kaptiva-io/lead-listener/internal/observability/metrics"
	"github.com/kaptiva-io/lead-listener/pkg/logging"
)

// Extractor produces the three normalized lead fields from message text.
type Extractor interface {
	Extract(ctx context.Context, message string) extraction.Result
}

// Recorder persists an extraction result, reporting whether a row was
// written. An error means storage was unavailable for this attempt.
type Recorder interface {
	Persist(ctx context.Context, result extraction.Result, worksheetTitle string) (bool, error)
}

// Handler runs the validate-extract-persist pipeline for inbound webhooks.
type Handler struct {
	validator      *Validator
	extractor      Extractor
	recorder       Recorder
	worksheetTitle string
	metrics        *metrics.PipelineMetrics
	logger         *logging.Logger
}

// NewHandler creates a webhook handler.
func NewHandler(validator *Validator, extractor Extractor, recorder Recorder, worksheetTitle string, m *metrics.PipelineMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		validator:      validator,
		extractor:      extractor,
		recorder:       recorder,
		worksheetTitle: worksheetTitle,
		metrics:        m,
		logger:         logger,
	}
}

// response is the outbound contract: the three extraction fields are
// always present, null when unknown.
type response struct {
	Success        bool    `json:"success"`
	Error          string  `json:"error,omitempty"`
	MessageContent string  `json:"message_content,omitempty"`
	FullName       *string `json:"full_name"`
	PhoneNumber    *string `json:"phone_number"`
	IDDocument     *string `json:"id_document"`
	Saved          bool    `json:"saved"`
}

// Handle processes one inbound event. AI and storage failures degrade to
// default values in the response; they never fail the request.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	eventID := uuid.NewString()

	var evt Event
	if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
		h.logger.Warn("undecodable webhook payload", "event_id", eventID, "error", err)
		h.metrics.ObserveWebhook("invalid_payload")
		writeJSON(w, http.StatusBadRequest, response{
			Error: "invalid JSON payload",
		})
		return
	}

	text, ok := h.validator.Validate(&evt)
	if !ok {
		h.logger.Info("event does not meet processing criteria", "event_id", eventID)
		h.metrics.ObserveWebhook("ignored")
		h.metrics.ObservePipelineLatency("ignored", time.Since(start).Seconds())
		writeJSON(w, http.StatusOK, response{
			Error: "Message does not meet processing criteria",
		})
		return
	}

	result := h.extractor.Extract(r.Context(), text)
	if result.Empty() {
		h.metrics.ObserveExtraction("empty")
	} else {
		h.metrics.ObserveExtraction("ok")
	}

	resp := response{
		Success:        true,
		MessageContent: text,
		FullName:       nullable(result.FullName),
		PhoneNumber:    nullable(result.PhoneNumber),
		IDDocument:     nullable(result.IDDocument),
	}

	saved, err := h.recorder.Persist(r.Context(), result, h.worksheetTitle)
	switch {
	case err != nil:
		h.logger.Error("lead not saved, storage unavailable", "event_id", eventID, "error", err)
		h.metrics.ObservePersist("error")
		resp.Error = "lead extracted but not saved: storage unavailable"
	case saved:
		h.metrics.ObservePersist("saved")
	default:
		h.metrics.ObservePersist("skipped")
	}
	resp.Saved = saved

	h.logger.Info("event processed",
		"event_id", eventID,
		"saved", saved,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	h.metrics.ObserveWebhook("processed")
	h.metrics.ObservePipelineLatency("processed", time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, resp)
}

// HealthCheck returns a simple health check response.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func nullable(s string) *string {
	if s == extraction.Unknown {
		return nil
	}
	return &s
}
