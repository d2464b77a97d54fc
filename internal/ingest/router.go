// FilePath: server/telemetry/internal/ingest/router.go
package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/itsatony/w4b_v3/server/telemetry/internal/errors"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/models"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/repository"
)

// Strategy names the insert path chosen for a write
type Strategy string

const (
	StrategySingle Strategy = "single"
	StrategyBatch  Strategy = "batch"
)

var (
	metricColumns = []string{"time", "hive_id", "temperature_celsius", "humidity_percent", "weight_kg"}

	movementColumns = []string{
		"time", "hive_id", "box_id", "bees_out", "bees_in", "net_flow",
		"avg_speed", "p95_speed", "stationary_bees", "detected_bees", "bee_interactions",
	}

	populationColumns = []string{"time", "hive_id", "bee_count", "drone_count", "varroa_mite_count", "inspection_id"}
)

// Router forwards normalized records to the store as exactly one statement per call.
// More than one record always goes out as a single multi-row INSERT, so a
// failure persists nothing. The router never retries.
type Router struct {
	store repository.StoragePort
}

func NewRouter(store repository.StoragePort) *Router {
	return &Router{store: store}
}

func (r *Router) WriteMetrics(ctx context.Context, samples []models.MetricSample) (Strategy, error) {
	rows := make([][]any, len(samples))
	for i, s := range samples {
		rows[i] = []any{s.Time, s.HiveID, s.TemperatureCelsius, s.HumidityPercent, s.WeightKg}
	}
	return r.write(ctx, models.TableMetrics, metricColumns, rows)
}

func (r *Router) WriteMovements(ctx context.Context, samples []models.MovementSample) (Strategy, error) {
	rows := make([][]any, len(samples))
	for i, s := range samples {
		rows[i] = []any{
			s.Time, s.HiveID, s.BoxID, s.BeesOut, s.BeesIn, s.NetFlow,
			s.AvgSpeed, s.P95Speed, s.StationaryBees, s.DetectedBees, s.BeeInteractions,
		}
	}
	return r.write(ctx, models.TableMovements, movementColumns, rows)
}

func (r *Router) WritePopulation(ctx context.Context, samples []models.PopulationSample) (Strategy, error) {
	rows := make([][]any, len(samples))
	for i, s := range samples {
		rows[i] = []any{s.Time, s.HiveID, s.BeeCount, s.DroneCount, s.VarroaMiteCount, s.InspectionID}
	}
	return r.write(ctx, models.TablePopulation, populationColumns, rows)
}

func (r *Router) write(ctx context.Context, table string, columns []string, rows [][]any) (Strategy, error) {
	if len(rows) == 0 {
		return "", errors.NewNoItemsProvided("")
	}

	strategy := StrategySingle
	if len(rows) > 1 {
		strategy = StrategyBatch
	}

	if err := r.store.Execute(ctx, InsertStatement(table, columns, rows)); err != nil {
		return strategy, err
	}
	return strategy, nil
}

// InsertStatement builds one INSERT covering every row, with positional placeholders
func InsertStatement(table string, columns []string, rows [][]any) repository.Statement {
	var sb strings.Builder
	args := make([]any, 0, len(rows)*len(columns))

	fmt.Fprintf(&sb, "INSERT INTO %s (%s) VALUES ", table, strings.Join(columns, ", "))
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			args = append(args, v)
			fmt.Fprintf(&sb, "$%d", len(args))
		}
		sb.WriteByte(')')
	}

	return repository.Statement{Query: sb.String(), Args: args}
}
