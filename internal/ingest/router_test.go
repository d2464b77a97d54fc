package ingest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/itsatony/w4b_v3/server/telemetry/internal/models"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/repository"
	"github.com/matryer/is"
)

func storeMock(err error) *repository.StoragePortMock {
	return &repository.StoragePortMock{
		ExecuteFunc: func(ctx context.Context, stmt repository.Statement) error {
			return err
		},
	}
}

func metricSamples(n int) []models.MetricSample {
	samples := make([]models.MetricSample, n)
	for i := range samples {
		samples[i] = models.MetricSample{
			Time:               fixedNow.Add(-time.Duration(i) * time.Hour),
			HiveID:             "7",
			TemperatureCelsius: ptr(20.0 + float64(i)),
		}
	}
	return samples
}

func TestSingleRecordUsesSingleRowInsert(t *testing.T) {
	is := is.New(t)
	store := storeMock(nil)

	strategy, err := NewRouter(store).WriteMetrics(context.Background(), metricSamples(1))
	is.NoErr(err)
	is.Equal(strategy, StrategySingle)

	calls := store.ExecuteCalls()
	is.Equal(len(calls), 1)
	is.Equal(calls[0].Stmt.String(),
		"INSERT INTO beehive_metrics (time, hive_id, temperature_celsius, humidity_percent, weight_kg) VALUES ($1, $2, $3, $4, $5)")
	is.Equal(len(calls[0].Stmt.Args), 5)
}

func TestManyRecordsUseOneBatchStatement(t *testing.T) {
	is := is.New(t)
	store := storeMock(nil)

	strategy, err := NewRouter(store).WriteMetrics(context.Background(), metricSamples(12))
	is.NoErr(err)
	is.Equal(strategy, StrategyBatch)

	calls := store.ExecuteCalls()
	is.Equal(len(calls), 1)
	is.Equal(len(calls[0].Stmt.Args), 12*5)
	is.Equal(strings.Count(calls[0].Stmt.Query, "("), 13)
	is.True(strings.HasSuffix(calls[0].Stmt.Query, "($56, $57, $58, $59, $60)"))
}

func TestBatchFailureIsNotRetriedRowByRow(t *testing.T) {
	is := is.New(t)
	cause := fmt.Errorf("connection reset")
	store := storeMock(cause)

	strategy, err := NewRouter(store).WriteMovements(context.Background(), []models.MovementSample{
		{Time: fixedNow, HiveID: "1", BoxID: "7", BeesIn: 1, BeesOut: 2},
		{Time: fixedNow, HiveID: "1", BoxID: "7", BeesIn: 3, BeesOut: 4},
		{Time: fixedNow, HiveID: "1", BoxID: "7", BeesIn: 5, BeesOut: 6},
	})
	is.Equal(err, cause)
	is.Equal(strategy, StrategyBatch)
	is.Equal(len(store.ExecuteCalls()), 1)
}

func TestBatchAndSingleProduceIdenticalRows(t *testing.T) {
	is := is.New(t)

	samples := []models.PopulationSample{
		{Time: fixedNow, HiveID: "199", BeeCount: ptr(int64(40000)), InspectionID: ptr("insp-1")},
		{Time: fixedNow.Add(time.Hour), HiveID: "199", DroneCount: ptr(int64(500))},
	}

	batch := storeMock(nil)
	_, err := NewRouter(batch).WritePopulation(context.Background(), samples)
	is.NoErr(err)

	single := storeMock(nil)
	for _, s := range samples {
		_, err := NewRouter(single).WritePopulation(context.Background(), []models.PopulationSample{s})
		is.NoErr(err)
	}

	var singleArgs []any
	for _, c := range single.ExecuteCalls() {
		singleArgs = append(singleArgs, c.Stmt.Args...)
	}
	is.Equal(batch.ExecuteCalls()[0].Stmt.Args, singleArgs)
}

func TestEmptyWriteTouchesNothing(t *testing.T) {
	is := is.New(t)
	store := storeMock(nil)

	_, err := NewRouter(store).WriteMetrics(context.Background(), nil)
	is.True(err != nil)
	is.Equal(len(store.ExecuteCalls()), 0)
}
