// FilePath: server/telemetry/internal/query/builder.go
package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/itsatony/w4b_v3/server/telemetry/internal/errors"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/models"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/repository"
)

// DefaultMovementRange is used when a movement range read names neither end
const DefaultMovementRange = 24 * time.Hour

// Builder turns validated read parameters into bounded, ordered statements.
// Calendar days are evaluated in loc.
type Builder struct {
	loc *time.Location
}

func NewBuilder(loc *time.Location) *Builder {
	if loc == nil {
		loc = time.UTC
	}
	return &Builder{loc: loc}
}

// Location returns the zone calendar days are evaluated in
func (b *Builder) Location() *time.Location {
	return b.loc
}

// Series selects (t, v) pairs of one field over the last rangeMin minutes, oldest first
func (b *Builder) Series(hiveID, field string, rangeMin *int, now time.Time) (repository.Statement, error) {
	minutes, err := ValidateRangeMin(rangeMin)
	if err != nil {
		return repository.Statement{}, err
	}
	f, ok := models.LookupField(field)
	if !ok {
		return repository.Statement{}, errors.NewInvalidField(field)
	}

	query := fmt.Sprintf(`
		SELECT time AS t, %[1]s AS v
		FROM %[2]s
		WHERE hive_id = $1
			AND time >= $2
			AND %[1]s IS NOT NULL
		ORDER BY time ASC`, f.Column, f.Table)

	since := now.Add(-time.Duration(minutes) * time.Minute)
	return repository.Statement{Query: query, Args: []any{hiveID, since}}, nil
}

// MovementToday aggregates a box's entrance traffic over the current local day.
// Every aggregate is coalesced so an empty day scans as zeros.
func (b *Builder) MovementToday(hiveID, boxID string, now time.Time) repository.Statement {
	start, end := b.DayBounds(now)

	query := `
		SELECT
			COALESCE(SUM(bees_in), 0)::BIGINT AS bees_in,
			COALESCE(SUM(bees_out), 0)::BIGINT AS bees_out,
			COALESCE(SUM(net_flow), 0)::BIGINT AS net_flow,
			COALESCE(SUM(detected_bees), 0)::BIGINT AS detected_bees,
			COALESCE(SUM(bee_interactions), 0)::BIGINT AS bee_interactions,
			COALESCE(AVG(avg_speed), 0)::DOUBLE PRECISION AS avg_speed,
			COALESCE(AVG(p95_speed), 0)::DOUBLE PRECISION AS p95_speed,
			COALESCE(AVG(stationary_bees), 0)::DOUBLE PRECISION AS stationary_bees
		FROM entrance_observer
		WHERE hive_id = $1
			AND box_id = $2
			AND time >= $3
			AND time < $4`

	return repository.Statement{Query: query, Args: []any{hiveID, boxID, start, end}}
}

// DayBounds returns [start of the local day containing now, start of the next local day)
func (b *Builder) DayBounds(now time.Time) (time.Time, time.Time) {
	local := now.In(b.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, b.loc)
	return start, start.AddDate(0, 0, 1)
}

// WeightTrend buckets weight readings by local calendar day. Days without
// readings produce no row.
func (b *Builder) WeightTrend(hiveID string, days *int, aggregation string, now time.Time) (repository.Statement, error) {
	n, err := ValidateDays(days)
	if err != nil {
		return repository.Statement{}, err
	}

	agg := models.DailyAvg
	if strings.TrimSpace(aggregation) != "" {
		parsed, ok := models.ParseAggregation(aggregation)
		if !ok {
			return repository.Statement{}, errors.New(errors.KindInvalidField, "Invalid aggregation: "+aggregation, nil)
		}
		agg = parsed
	}

	query := fmt.Sprintf(`
		SELECT date_trunc('day', time AT TIME ZONE $2) AS day, %s(weight_kg) AS v
		FROM beehive_metrics
		WHERE hive_id = $1
			AND time >= $3
			AND weight_kg IS NOT NULL
		GROUP BY day
		ORDER BY day ASC`, agg.SQLFunction())

	since := now.AddDate(0, 0, -n)
	return repository.Statement{Query: query, Args: []any{hiveID, b.loc.String(), since}}, nil
}

// MovementRange selects raw entrance rows between two epoch-second bounds, inclusive.
// An empty boxID matches every box of the hive. Missing bounds default to the last day.
func (b *Builder) MovementRange(hiveID, boxID string, timeFrom, timeTo *int64, now time.Time) (repository.Statement, error) {
	to := now
	if timeTo != nil {
		to = time.Unix(*timeTo, 0).UTC()
	}
	from := to.Add(-DefaultMovementRange)
	if timeFrom != nil {
		from = time.Unix(*timeFrom, 0).UTC()
	}
	if !from.Before(to) {
		return repository.Statement{}, errors.NewInvalidTimeRange("Time range end must be after start")
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT time, hive_id, box_id, bees_out, bees_in, net_flow,
			avg_speed, p95_speed, stationary_bees, detected_bees, bee_interactions
		FROM entrance_observer
		WHERE hive_id = $1
			AND time >= $2
			AND time <= $3`)
	args := []any{hiveID, from, to}

	if boxID != "" {
		args = append(args, boxID)
		fmt.Fprintf(&sb, "\n\t\t\tAND box_id = $%d", len(args))
	}
	sb.WriteString("\n\t\tORDER BY time ASC")

	return repository.Statement{Query: sb.String(), Args: args}, nil
}

// PopulationSeries selects raw inspection rows over the last days, oldest first
func (b *Builder) PopulationSeries(hiveID string, days *int, now time.Time) (repository.Statement, error) {
	n, err := ValidateDays(days)
	if err != nil {
		return repository.Statement{}, err
	}

	query := `
		SELECT time, hive_id, bee_count, drone_count, varroa_mite_count, inspection_id
		FROM population_metrics
		WHERE hive_id = $1
			AND time >= $2
		ORDER BY time ASC`

	return repository.Statement{Query: query, Args: []any{hiveID, now.AddDate(0, 0, -n)}}, nil
}
