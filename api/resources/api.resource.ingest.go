// FilePath: server/telemetry/api/resources/api.resource.ingest.go
package resources

import (
	"io"
	"net/http"

	"github.com/itsatony/w4b_v3/server/telemetry/internal/errors"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/ingest"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// IngestHandlers encapsulates the write endpoints. Every body is either a single
// object or an array of objects.
type IngestHandlers struct {
	telemetry    TelemetryService
	maxBodyBytes int64
}

// @Summary Store hive metrics
// @Description Store one metric sample or an array of samples; all are stored or none
// @Tags ingest
// @Accept json
// @Produce json
// @Param metrics body models.MetricInput true "Metric sample (or array of samples)"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /iot/v1/metrics [post]
// @Security BearerAuth
func (h *IngestHandlers) PostMetrics(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	items, err := decodeBody[models.MetricInput](w, r, h.maxBodyBytes)
	if err != nil {
		respondWithError(w, err, requestID)
		return
	}

	if len(items) == 1 {
		err = h.telemetry.AddMetric(r.Context(), items[0])
	} else {
		err = h.telemetry.AddMetricBatch(r.Context(), items)
	}
	if err != nil {
		respondWithError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, messageResponse{Message: "OK"})
}

// @Summary Store hive metrics (legacy format)
// @Description Snake_case variant of /iot/v1/metrics
// @Tags ingest
// @Accept json
// @Produce json
// @Param metrics body models.LegacyMetricInput true "Metric sample (or array of samples)"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /metric [post]
// @Security BearerAuth
func (h *IngestHandlers) PostLegacyMetric(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	legacy, err := decodeBody[models.LegacyMetricInput](w, r, h.maxBodyBytes)
	if err != nil {
		respondWithError(w, err, requestID)
		return
	}

	items := make([]models.MetricInput, len(legacy))
	for i, l := range legacy {
		items[i] = l.MetricInput()
	}

	if err := h.telemetry.AddMetricBatch(r.Context(), items); err != nil {
		respondWithError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, messageResponse{Message: "OK"})
}

// @Summary Store entrance movements
// @Description Store one entrance observation or an array of observations; all are stored or none
// @Tags ingest
// @Accept json
// @Produce json
// @Param movement body models.MovementInput true "Movement sample (or array of samples)"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /entrance/v1/movement [post]
// @Security BearerAuth
func (h *IngestHandlers) PostMovement(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	items, err := decodeBody[models.MovementInput](w, r, h.maxBodyBytes)
	if err != nil {
		respondWithError(w, err, requestID)
		return
	}

	if len(items) == 1 {
		err = h.telemetry.AddEntranceMovement(r.Context(), items[0])
	} else {
		err = h.telemetry.AddEntranceMovementBatch(r.Context(), items)
	}
	if err != nil {
		respondWithError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, messageResponse{Message: "OK"})
}

// @Summary Store population inspections
// @Description Store one population sample or an array of samples; all are stored or none
// @Tags ingest
// @Accept json
// @Produce json
// @Param population body models.PopulationInput true "Population sample (or array of samples)"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /population/v1/metrics [post]
// @Security BearerAuth
func (h *IngestHandlers) PostPopulation(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	items, err := decodeBody[models.PopulationInput](w, r, h.maxBodyBytes)
	if err != nil {
		respondWithError(w, err, requestID)
		return
	}

	if len(items) == 1 {
		err = h.telemetry.AddPopulationMetric(r.Context(), items[0])
	} else {
		err = h.telemetry.AddPopulationMetricBatch(r.Context(), items)
	}
	if err != nil {
		respondWithError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, messageResponse{Message: "OK"})
}

func decodeBody[T any](w http.ResponseWriter, r *http.Request, maxBytes int64) ([]T, error) {
	body := r.Body
	if maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, maxBytes)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.NewValidationError("Bad Request: invalid request body", err)
	}
	return ingest.DecodePayload[T](raw)
}
