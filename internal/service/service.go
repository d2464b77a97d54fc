package service

import (
	"context"
	"strings"
	"time"

	"github.com/itsatony/w4b_v3/server/telemetry/internal/errors"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/ingest"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/query"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// Sample kinds used as metric labels and in logs
const (
	KindMetric     = "metric"
	KindMovement   = "movement"
	KindPopulation = "population"
)

//go:generate moq -rm -stub -out recorder_mock.go . Recorder

// Recorder receives ingest and storage measurements
type Recorder interface {
	RecordAccepted(kind, strategy string, n int)
	RecordRejected(kind, reason string)
	ObserveStorage(operation string, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordAccepted(string, string, int)   {}
func (nopRecorder) RecordRejected(string, string)        {}
func (nopRecorder) ObserveStorage(string, time.Duration) {}

// Service exposes the telemetry write and read operations.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	store      repository.StoragePort
	normalizer *ingest.Normalizer
	router     *ingest.Router
	queries    *query.Builder
	recorder   Recorder
	now        ingest.Clock
}

// New creates a new service instance. A nil recorder disables measurements,
// a nil loc evaluates calendar days in UTC and a nil clock uses time.Now.
func New(store repository.StoragePort, loc *time.Location, recorder Recorder, now ingest.Clock) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:      store,
		normalizer: ingest.NewNormalizer(now),
		router:     ingest.NewRouter(store),
		queries:    query.NewBuilder(loc),
		recorder:   recorder,
		now:        now,
	}
}

// Validate checks if all required dependencies are initialized
func (s *Service) Validate() error {
	if s.store == nil {
		return ErrMissingRepository("store")
	}
	return nil
}

func ErrMissingRepository(name string) error {
	return errors.NewInternalError("missing repository: "+name, nil)
}

// query runs stmt and converts storage failures into internal errors
func (s *Service) query(ctx context.Context, operation, hiveID string, dest any, stmt repository.Statement) error {
	start := time.Now()
	err := s.store.Query(ctx, dest, stmt)
	s.recorder.ObserveStorage(operation, time.Since(start))
	if err != nil {
		nuts.L.Errorf("[TelemetryService] %s failed for hive %s: %v", operation, hiveID, err)
		return errors.NewInternalError("", err)
	}
	return nil
}

func requireHiveID(hiveID string) error {
	if strings.TrimSpace(hiveID) == "" {
		return errors.NewHiveIDMissing()
	}
	return nil
}

func rejectionReason(err error) string {
	return string(errors.AsAPIError(err).Kind)
}
