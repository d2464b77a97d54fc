// FilePath: server/telemetry/internal/models/models.series.go
package models

import (
	"strings"
	"time"
)

// SeriesPoint is one raw (time, value) pair of a ranged series
type SeriesPoint struct {
	T time.Time `json:"t" db:"t"`
	V float64   `json:"v" db:"v"`
}

// DailyValue is one calendar-day bucket of an aggregated series
type DailyValue struct {
	Day   time.Time `json:"t" db:"day"`
	Value float64   `json:"v" db:"v"`
}

// Aggregation selects the function applied to each calendar-day bucket
type Aggregation string

const (
	DailyAvg Aggregation = "DAILY_AVG"
	DailyMin Aggregation = "DAILY_MIN"
	DailyMax Aggregation = "DAILY_MAX"
)

// ParseAggregation accepts the enum names case-insensitively
func ParseAggregation(s string) (Aggregation, bool) {
	switch Aggregation(strings.ToUpper(strings.TrimSpace(s))) {
	case DailyAvg:
		return DailyAvg, true
	case DailyMin:
		return DailyMin, true
	case DailyMax:
		return DailyMax, true
	}
	return "", false
}

// SQLFunction returns the SQL aggregate for a, or "" if a is not a known aggregation
func (a Aggregation) SQLFunction() string {
	switch a {
	case DailyAvg:
		return "AVG"
	case DailyMin:
		return "MIN"
	case DailyMax:
		return "MAX"
	}
	return ""
}
