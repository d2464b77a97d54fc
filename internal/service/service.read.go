package service

import (
	"context"
	"strings"

	"github.com/itsatony/w4b_v3/server/telemetry/internal/errors"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/models"
)

// ReadService answers bounded, ordered queries over stored samples
type ReadService interface {
	ReadSeries(ctx context.Context, hiveID, field string, rangeMin *int) ([]models.SeriesPoint, error)
	ReadMovementToday(ctx context.Context, hiveID, boxID string) (models.MovementAggregate, error)
	ReadMovementRange(ctx context.Context, hiveID, boxID string, timeFrom, timeTo *int64) ([]models.MovementSample, error)
	ReadWeightTrend(ctx context.Context, hiveID string, days *int, aggregation string) ([]models.DailyValue, error)
	ReadPopulationSeries(ctx context.Context, hiveID string, days *int) ([]models.PopulationSample, error)
}

// ReadSeries returns one field's raw values over the last rangeMin minutes (default 60)
func (s *Service) ReadSeries(ctx context.Context, hiveID, field string, rangeMin *int) ([]models.SeriesPoint, error) {
	if err := requireHiveID(hiveID); err != nil {
		return nil, err
	}
	stmt, err := s.queries.Series(hiveID, field, rangeMin, s.now())
	if err != nil {
		return nil, err
	}

	points := []models.SeriesPoint{}
	if err := s.query(ctx, "read_series", hiveID, &points, stmt); err != nil {
		return nil, err
	}
	return points, nil
}

// ReadMovementToday sums a box's traffic for the current local day; no rows yields zeros
func (s *Service) ReadMovementToday(ctx context.Context, hiveID, boxID string) (models.MovementAggregate, error) {
	var agg models.MovementAggregate
	if err := requireHiveID(hiveID); err != nil {
		return agg, err
	}
	if strings.TrimSpace(boxID) == "" {
		return agg, errors.NewBoxIDMissing()
	}

	stmt := s.queries.MovementToday(hiveID, boxID, s.now())
	if err := s.query(ctx, "read_movement_today", hiveID, &agg, stmt); err != nil {
		return models.MovementAggregate{}, err
	}
	return agg, nil
}

// ReadMovementRange returns raw entrance rows between two epoch-second bounds
func (s *Service) ReadMovementRange(ctx context.Context, hiveID, boxID string, timeFrom, timeTo *int64) ([]models.MovementSample, error) {
	if err := requireHiveID(hiveID); err != nil {
		return nil, err
	}
	stmt, err := s.queries.MovementRange(hiveID, strings.TrimSpace(boxID), timeFrom, timeTo, s.now())
	if err != nil {
		return nil, err
	}

	rows := []models.MovementSample{}
	if err := s.query(ctx, "read_movement_range", hiveID, &rows, stmt); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadWeightTrend returns one aggregated weight per local calendar day (default 90 days, DAILY_AVG)
func (s *Service) ReadWeightTrend(ctx context.Context, hiveID string, days *int, aggregation string) ([]models.DailyValue, error) {
	if err := requireHiveID(hiveID); err != nil {
		return nil, err
	}
	stmt, err := s.queries.WeightTrend(hiveID, days, aggregation, s.now())
	if err != nil {
		return nil, err
	}

	values := []models.DailyValue{}
	if err := s.query(ctx, "read_weight_trend", hiveID, &values, stmt); err != nil {
		return nil, err
	}
	return values, nil
}

// ReadPopulationSeries returns raw inspection results over the last days (default 90)
func (s *Service) ReadPopulationSeries(ctx context.Context, hiveID string, days *int) ([]models.PopulationSample, error) {
	if err := requireHiveID(hiveID); err != nil {
		return nil, err
	}
	stmt, err := s.queries.PopulationSeries(hiveID, days, s.now())
	if err != nil {
		return nil, err
	}

	rows := []models.PopulationSample{}
	if err := s.query(ctx, "read_population", hiveID, &rows, stmt); err != nil {
		return nil, err
	}
	return rows, nil
}
