// FilePath: server/telemetry/api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/itsatony/w4b_v3/server/telemetry/internal/errors"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/service"
	nuts "github.com/vaudience/go-nuts"
)

// TelemetryService is the service surface the handlers depend on
type TelemetryService interface {
	service.IngestService
	service.ReadService
}

// Resources holds all HTTP resource handlers
type Resources struct {
	Ingest      *IngestHandlers
	Hives       *HiveHandlers
	HealthCheck func(w http.ResponseWriter, r *http.Request)
	Metrics     http.Handler
}

// NewResources creates a new Resources instance
func NewResources(svc TelemetryService, maxBodyBytes int64) *Resources {
	return &Resources{
		Ingest: &IngestHandlers{telemetry: svc, maxBodyBytes: maxBodyBytes},
		Hives:  newHiveHandlers(svc),
	}
}

// SetHealthCheck sets the health check handler
func (r *Resources) SetHealthCheck(h func(w http.ResponseWriter, r *http.Request)) {
	r.HealthCheck = h
}

// SetMetrics sets the metrics handler
func (r *Resources) SetMetrics(h http.Handler) {
	r.Metrics = h
}

type errorResponse struct {
	Error     string `json:"error"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func respondWithError(w http.ResponseWriter, err error, requestID string) {
	apiErr := errors.AsAPIError(err).WithRequestID(requestID)
	if apiErr.Type == errors.ErrorTypeInternal {
		nuts.L.Errorf("[API] %s", apiErr.Error())
	} else {
		nuts.L.Warnf("[API] %s", apiErr.Error())
	}
	respondWithJSON(w, apiErr.Status, errorResponse{
		Error:     apiErr.Message,
		Code:      apiErr.Code,
		RequestID: requestID,
	})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
