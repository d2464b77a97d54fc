package service

import (
	"context"
	"time"

	"github.com/itsatony/w4b_v3/server/telemetry/internal/errors"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/ingest"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// IngestService accepts telemetry samples
type IngestService interface {
	AddMetric(ctx context.Context, input models.MetricInput) error
	AddMetricBatch(ctx context.Context, inputs []models.MetricInput) error
	AddEntranceMovement(ctx context.Context, input models.MovementInput) error
	AddEntranceMovementBatch(ctx context.Context, inputs []models.MovementInput) error
	AddPopulationMetric(ctx context.Context, input models.PopulationInput) error
	AddPopulationMetricBatch(ctx context.Context, inputs []models.PopulationInput) error
}

func (s *Service) AddMetric(ctx context.Context, input models.MetricInput) error {
	return s.AddMetricBatch(ctx, []models.MetricInput{input})
}

// AddMetricBatch validates every input and persists all of them or none
func (s *Service) AddMetricBatch(ctx context.Context, inputs []models.MetricInput) error {
	samples, err := s.normalizer.Metrics(inputs)
	if err != nil {
		return s.rejected(KindMetric, len(inputs), err)
	}

	start := time.Now()
	strategy, err := s.router.WriteMetrics(ctx, samples)
	s.recorder.ObserveStorage("write_"+KindMetric, time.Since(start))
	if err != nil {
		return s.writeFailed(KindMetric, samples[0].HiveID, len(samples), strategy, err)
	}
	return s.accepted(KindMetric, samples[0].HiveID, len(samples), strategy)
}

func (s *Service) AddEntranceMovement(ctx context.Context, input models.MovementInput) error {
	return s.AddEntranceMovementBatch(ctx, []models.MovementInput{input})
}

// AddEntranceMovementBatch validates every input and persists all of them or none
func (s *Service) AddEntranceMovementBatch(ctx context.Context, inputs []models.MovementInput) error {
	samples, err := s.normalizer.Movements(inputs)
	if err != nil {
		return s.rejected(KindMovement, len(inputs), err)
	}

	start := time.Now()
	strategy, err := s.router.WriteMovements(ctx, samples)
	s.recorder.ObserveStorage("write_"+KindMovement, time.Since(start))
	if err != nil {
		return s.writeFailed(KindMovement, samples[0].HiveID, len(samples), strategy, err)
	}
	return s.accepted(KindMovement, samples[0].HiveID, len(samples), strategy)
}

func (s *Service) AddPopulationMetric(ctx context.Context, input models.PopulationInput) error {
	return s.AddPopulationMetricBatch(ctx, []models.PopulationInput{input})
}

// AddPopulationMetricBatch validates every input and persists all of them or none
func (s *Service) AddPopulationMetricBatch(ctx context.Context, inputs []models.PopulationInput) error {
	samples, err := s.normalizer.Population(inputs)
	if err != nil {
		return s.rejected(KindPopulation, len(inputs), err)
	}

	start := time.Now()
	strategy, err := s.router.WritePopulation(ctx, samples)
	s.recorder.ObserveStorage("write_"+KindPopulation, time.Since(start))
	if err != nil {
		return s.writeFailed(KindPopulation, samples[0].HiveID, len(samples), strategy, err)
	}
	return s.accepted(KindPopulation, samples[0].HiveID, len(samples), strategy)
}

func (s *Service) rejected(kind string, count int, err error) error {
	reason := rejectionReason(err)
	s.recorder.RecordRejected(kind, reason)
	nuts.L.Warnf("[TelemetryService] Rejected %d %s sample(s): %s", count, kind, reason)
	return err
}

func (s *Service) writeFailed(kind, hiveID string, count int, strategy ingest.Strategy, err error) error {
	nuts.L.Errorf("[TelemetryService] Failed to write %d %s sample(s) for hive %s (%s): %v", count, kind, hiveID, strategy, err)
	return errors.NewInternalError("", err)
}

func (s *Service) accepted(kind, hiveID string, count int, strategy ingest.Strategy) error {
	s.recorder.RecordAccepted(kind, string(strategy), count)
	nuts.L.Debugf("[TelemetryService] Stored %d %s sample(s) for hive %s (%s)", count, kind, hiveID, strategy)
	return nil
}
