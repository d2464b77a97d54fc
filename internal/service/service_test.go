package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/itsatony/w4b_v3/server/telemetry/internal/errors"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/models"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/repository"
	"github.com/matryer/is"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func newTestService(store repository.StoragePort) (*Service, *RecorderMock) {
	rec := &RecorderMock{}
	return New(store, time.UTC, rec, func() time.Time { return fixedNow }), rec
}

func okStore() *repository.StoragePortMock {
	return &repository.StoragePortMock{
		ExecuteFunc: func(ctx context.Context, stmt repository.Statement) error { return nil },
		QueryFunc:   func(ctx context.Context, dest any, stmt repository.Statement) error { return nil },
	}
}

func TestAddEntranceMovementStoresOneRow(t *testing.T) {
	is := is.New(t)
	store := okStore()
	svc, rec := newTestService(store)

	var hiveID, boxID models.ID
	is.NoErr(hiveID.UnmarshalJSON([]byte(`1`)))
	is.NoErr(boxID.UnmarshalJSON([]byte(`7`)))

	err := svc.AddEntranceMovement(context.Background(), models.MovementInput{
		HiveID:  hiveID,
		BoxID:   boxID,
		BeesIn:  ptr(int64(50)),
		BeesOut: ptr(int64(45)),
	})
	is.NoErr(err)

	calls := store.ExecuteCalls()
	is.Equal(len(calls), 1)
	is.True(strings.HasPrefix(calls[0].Stmt.Query, "INSERT INTO entrance_observer"))

	args := calls[0].Stmt.Args
	is.Equal(args[0], fixedNow) // time
	is.Equal(args[1], "1")      // hive_id
	is.Equal(args[2], "7")      // box_id
	is.Equal(args[3], int64(45))
	is.Equal(args[4], int64(50))

	accepted := rec.RecordAcceptedCalls()
	is.Equal(len(accepted), 1)
	is.Equal(accepted[0].Kind, KindMovement)
	is.Equal(accepted[0].Strategy, "single")
	is.Equal(accepted[0].N, 1)
}

func TestAddMetricWithEmptyFieldsFails(t *testing.T) {
	is := is.New(t)
	store := okStore()
	svc, rec := newTestService(store)

	err := svc.AddMetric(context.Background(), models.MetricInput{HiveID: "123", Fields: &models.MetricFields{}})

	apiErr := errors.AsAPIError(err)
	is.Equal(apiErr.Kind, errors.KindFieldsMissing)
	is.Equal(apiErr.Code, 4002)
	is.Equal(apiErr.Status, 400)
	is.Equal(len(store.ExecuteCalls()), 0)

	rejected := rec.RecordRejectedCalls()
	is.Equal(len(rejected), 1)
	is.Equal(rejected[0].Reason, string(errors.KindFieldsMissing))
}

func TestReadSeriesRejectsZeroRange(t *testing.T) {
	is := is.New(t)
	store := okStore()
	svc, _ := newTestService(store)

	_, err := svc.ReadSeries(context.Background(), "7", models.FieldTemperatureCelsius, ptr(0))

	is.True(stderrors.Is(err, errors.ErrInvalidTimeRange))
	is.Equal(errors.AsAPIError(err).Message, "Time range must be positive")
	is.Equal(len(store.QueryCalls()), 0)
}

func TestMovementBatchWithMissingBoxPersistsNothing(t *testing.T) {
	is := is.New(t)
	store := okStore()
	svc, _ := newTestService(store)

	err := svc.AddEntranceMovementBatch(context.Background(), []models.MovementInput{
		{HiveID: "1", BoxID: "7", BeesIn: ptr(int64(1)), BeesOut: ptr(int64(2))},
		{HiveID: "1", BeesIn: ptr(int64(3)), BeesOut: ptr(int64(4))},
		{HiveID: "1", BoxID: "7", BeesIn: ptr(int64(5)), BeesOut: ptr(int64(6))},
	})

	is.True(stderrors.Is(err, errors.ErrBoxIDMissing))
	is.Equal(len(store.ExecuteCalls()), 0)
}

func TestMetricBatchIsOneStatement(t *testing.T) {
	is := is.New(t)
	store := okStore()
	svc, rec := newTestService(store)

	inputs := make([]models.MetricInput, 12)
	for i := range inputs {
		ts := fixedNow.Add(-time.Duration(i) * time.Hour).Unix()
		inputs[i] = models.MetricInput{
			HiveID:    "42",
			Fields:    &models.MetricFields{TemperatureCelsius: ptr(20.0 + float64(i))},
			Timestamp: &ts,
		}
	}

	is.NoErr(svc.AddMetricBatch(context.Background(), inputs))
	is.Equal(len(store.ExecuteCalls()), 1)
	is.Equal(len(store.ExecuteCalls()[0].Stmt.Args), 12*5)
	is.Equal(rec.RecordAcceptedCalls()[0].Strategy, "batch")
	is.Equal(rec.RecordAcceptedCalls()[0].N, 12)
}

func TestStorageFailureBecomesInternalError(t *testing.T) {
	is := is.New(t)
	store := &repository.StoragePortMock{
		ExecuteFunc: func(ctx context.Context, stmt repository.Statement) error {
			return fmt.Errorf("pq: relation \"beehive_metrics\" does not exist")
		},
	}
	svc, rec := newTestService(store)

	err := svc.AddMetric(context.Background(), models.MetricInput{
		HiveID: "1",
		Fields: &models.MetricFields{WeightKg: ptr(41.2)},
	})

	apiErr := errors.AsAPIError(err)
	is.Equal(apiErr.Kind, errors.KindInternal)
	is.Equal(apiErr.Message, "Internal Server Error")
	is.True(!strings.Contains(apiErr.Message, "beehive_metrics"))
	is.Equal(len(rec.RecordAcceptedCalls()), 0)
	is.Equal(len(rec.ObserveStorageCalls()), 1)
}

func TestPopulationBatch(t *testing.T) {
	is := is.New(t)
	store := okStore()
	svc, _ := newTestService(store)

	err := svc.AddPopulationMetricBatch(context.Background(), []models.PopulationInput{
		{HiveID: "199", Fields: &models.PopulationFields{BeeCount: ptr(int64(40000))}, InspectionID: ptr("insp-1")},
		{HiveID: "199", Fields: &models.PopulationFields{VarroaMiteCount: ptr(int64(12))}},
	})
	is.NoErr(err)
	is.True(strings.HasPrefix(store.ExecuteCalls()[0].Stmt.Query, "INSERT INTO population_metrics"))
}

func TestReadSeriesReturnsStoredPoints(t *testing.T) {
	is := is.New(t)
	store := &repository.StoragePortMock{
		QueryFunc: func(ctx context.Context, dest any, stmt repository.Statement) error {
			points := dest.(*[]models.SeriesPoint)
			*points = append(*points,
				models.SeriesPoint{T: fixedNow.Add(-30 * time.Minute), V: 21.5},
				models.SeriesPoint{T: fixedNow.Add(-10 * time.Minute), V: 22.0},
			)
			return nil
		},
	}
	svc, _ := newTestService(store)

	points, err := svc.ReadSeries(context.Background(), "7", models.FieldTemperatureCelsius, nil)
	is.NoErr(err)
	is.Equal(len(points), 2)
	is.True(points[0].T.Before(points[1].T))
	is.Equal(store.QueryCalls()[0].Stmt.Args[1], fixedNow.Add(-60*time.Minute))
}

func TestReadSeriesEmptyIsNotNil(t *testing.T) {
	is := is.New(t)
	svc, _ := newTestService(okStore())

	points, err := svc.ReadSeries(context.Background(), "7", models.FieldWeightKg, ptr(10))
	is.NoErr(err)
	is.True(points != nil)
	is.Equal(len(points), 0)
}

func TestReadsRequireHiveID(t *testing.T) {
	is := is.New(t)
	store := okStore()
	svc, _ := newTestService(store)
	ctx := context.Background()

	_, err := svc.ReadSeries(ctx, " ", models.FieldWeightKg, nil)
	is.True(stderrors.Is(err, errors.ErrHiveIDMissing))
	_, err = svc.ReadMovementToday(ctx, "", "7")
	is.True(stderrors.Is(err, errors.ErrHiveIDMissing))
	_, err = svc.ReadMovementRange(ctx, "", "", nil, nil)
	is.True(stderrors.Is(err, errors.ErrHiveIDMissing))
	_, err = svc.ReadWeightTrend(ctx, "", nil, "")
	is.True(stderrors.Is(err, errors.ErrHiveIDMissing))
	_, err = svc.ReadPopulationSeries(ctx, "", nil)
	is.True(stderrors.Is(err, errors.ErrHiveIDMissing))

	_, err = svc.ReadMovementToday(ctx, "1", "")
	is.True(stderrors.Is(err, errors.ErrBoxIDMissing))

	is.Equal(len(store.QueryCalls()), 0)
}

func TestReadMovementTodayWithoutRowsIsZero(t *testing.T) {
	is := is.New(t)
	store := okStore()
	svc, _ := newTestService(store)

	agg, err := svc.ReadMovementToday(context.Background(), "1", "7")
	is.NoErr(err)
	is.Equal(agg, models.MovementAggregate{})

	args := store.QueryCalls()[0].Stmt.Args
	is.Equal(args[2], time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	is.Equal(args[3], time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC))
}

func TestReadFailureBecomesInternalError(t *testing.T) {
	is := is.New(t)
	store := &repository.StoragePortMock{
		QueryFunc: func(ctx context.Context, dest any, stmt repository.Statement) error {
			return fmt.Errorf("connection refused")
		},
	}
	svc, _ := newTestService(store)

	_, err := svc.ReadWeightTrend(context.Background(), "1", nil, "DAILY_MAX")
	is.True(stderrors.Is(err, errors.ErrInternal))
}

func TestValidate(t *testing.T) {
	is := is.New(t)

	is.NoErr(New(okStore(), nil, nil, nil).Validate())
	is.True(New(nil, nil, nil, nil).Validate() != nil)
}
