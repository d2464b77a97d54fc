// FilePath: server/telemetry/api/resources/api.resource.hives.go
package resources

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/errors"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// HiveHandlers encapsulates the per-hive read endpoints
type HiveHandlers struct {
	telemetry TelemetryService
	decoder   *schema.Decoder
}

func newHiveHandlers(svc TelemetryService) *HiveHandlers {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &HiveHandlers{telemetry: svc, decoder: decoder}
}

// @Summary Read a raw series
// @Description Raw (t, v) pairs of one field over the last rangeMin minutes, oldest first
// @Tags hives
// @Produce json
// @Param hiveId path string true "Hive ID"
// @Param field path string true "Field" Enums(temperatureCelsius, humidityPercent, weightKg, beesIn, beesOut, beeCount, droneCount, varroaMiteCount)
// @Param rangeMin query int false "Window in minutes (default 60, max 10080)"
// @Success 200 {array} models.SeriesPoint
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /api/v1/hives/{hiveId}/series/{field} [get]
// @Security BearerAuth
func (h *HiveHandlers) GetSeries(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	var filters models.SeriesFilters
	if err := h.decodeQuery(&filters, r); err != nil {
		respondWithError(w, err, requestID)
		return
	}

	points, err := h.telemetry.ReadSeries(r.Context(), vars["hiveId"], vars["field"], filters.RangeMin)
	if err != nil {
		respondWithError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, points)
}

// @Summary Today's entrance traffic
// @Description Sums and averages of one box's movements for the current local day
// @Tags hives
// @Produce json
// @Param hiveId path string true "Hive ID"
// @Param boxId query string true "Box ID"
// @Success 200 {object} models.MovementAggregate
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /api/v1/hives/{hiveId}/movement/today [get]
// @Security BearerAuth
func (h *HiveHandlers) GetMovementToday(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	var filters models.MovementTodayFilters
	if err := h.decodeQuery(&filters, r); err != nil {
		respondWithError(w, err, requestID)
		return
	}

	agg, err := h.telemetry.ReadMovementToday(r.Context(), vars["hiveId"], filters.BoxID)
	if err != nil {
		respondWithError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, agg)
}

// @Summary Raw entrance movements
// @Description Movement rows between timeFrom and timeTo (epoch seconds), oldest first
// @Tags hives
// @Produce json
// @Param hiveId path string true "Hive ID"
// @Param boxId query string false "Box ID"
// @Param timeFrom query int false "Start, epoch seconds (default timeTo - 24h)"
// @Param timeTo query int false "End, epoch seconds (default now)"
// @Success 200 {array} models.MovementSample
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /api/v1/hives/{hiveId}/movement [get]
// @Security BearerAuth
func (h *HiveHandlers) GetMovementRange(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	var filters models.MovementRangeFilters
	if err := h.decodeQuery(&filters, r); err != nil {
		respondWithError(w, err, requestID)
		return
	}

	rows, err := h.telemetry.ReadMovementRange(r.Context(), vars["hiveId"], filters.BoxID, filters.TimeFrom, filters.TimeTo)
	if err != nil {
		respondWithError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, rows)
}

// @Summary Daily weight trend
// @Description One aggregated weight per local calendar day; empty days are omitted
// @Tags hives
// @Produce json
// @Param hiveId path string true "Hive ID"
// @Param days query int false "Number of days (default 90, max 730)"
// @Param aggregation query string false "Aggregation" Enums(DAILY_AVG, DAILY_MIN, DAILY_MAX)
// @Success 200 {array} models.DailyValue
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /api/v1/hives/{hiveId}/weight [get]
// @Security BearerAuth
func (h *HiveHandlers) GetWeightTrend(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	var filters models.WeightTrendFilters
	if err := h.decodeQuery(&filters, r); err != nil {
		respondWithError(w, err, requestID)
		return
	}

	values, err := h.telemetry.ReadWeightTrend(r.Context(), vars["hiveId"], filters.Days, filters.Aggregation)
	if err != nil {
		respondWithError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, values)
}

// @Summary Population inspections
// @Description Raw population samples over the last days, oldest first
// @Tags hives
// @Produce json
// @Param hiveId path string true "Hive ID"
// @Param days query int false "Number of days (default 90, max 730)"
// @Success 200 {array} models.PopulationSample
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /api/v1/hives/{hiveId}/population [get]
// @Security BearerAuth
func (h *HiveHandlers) GetPopulation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	var filters models.PopulationFilters
	if err := h.decodeQuery(&filters, r); err != nil {
		respondWithError(w, err, requestID)
		return
	}

	rows, err := h.telemetry.ReadPopulationSeries(r.Context(), vars["hiveId"], filters.Days)
	if err != nil {
		respondWithError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, rows)
}

func (h *HiveHandlers) decodeQuery(dst interface{}, r *http.Request) error {
	if err := h.decoder.Decode(dst, r.URL.Query()); err != nil {
		return errors.NewValidationError("Bad Request: invalid query parameters", err)
	}
	return nil
}
