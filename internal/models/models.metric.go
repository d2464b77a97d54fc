// FilePath: server/telemetry/internal/models/models.metric.go
package models

import "time"

// MetricFields holds the optional sensor readings of one metric sample
type MetricFields struct {
	TemperatureCelsius *float64 `json:"temperatureCelsius,omitempty"`
	HumidityPercent    *float64 `json:"humidityPercent,omitempty"`
	WeightKg           *float64 `json:"weightKg,omitempty"`
}

// IsEmpty reports whether no reading is present
func (f *MetricFields) IsEmpty() bool {
	return f == nil || (f.TemperatureCelsius == nil && f.HumidityPercent == nil && f.WeightKg == nil)
}

// MetricInput is the camelCase wire format (POST /iot/v1/metrics)
type MetricInput struct {
	HiveID    ID            `json:"hiveId"`
	Fields    *MetricFields `json:"fields"`
	Timestamp *int64        `json:"timestamp,omitempty"`
}

// LegacyMetricFields is the snake_case field set of the legacy endpoint
type LegacyMetricFields struct {
	TemperatureCelsius *float64 `json:"temperature_celsius,omitempty"`
	HumidityPercent    *float64 `json:"humidity_percent,omitempty"`
	WeightKg           *float64 `json:"weight_kg,omitempty"`
}

// LegacyMetricInput is the snake_case wire format (POST /metric)
type LegacyMetricInput struct {
	HiveID    ID                  `json:"hive_id"`
	Fields    *LegacyMetricFields `json:"fields"`
	Timestamp *int64              `json:"timestamp,omitempty"`
}

// MetricInput converts the legacy wire format into the canonical one
func (l LegacyMetricInput) MetricInput() MetricInput {
	in := MetricInput{HiveID: l.HiveID, Timestamp: l.Timestamp}
	if l.Fields != nil {
		in.Fields = &MetricFields{
			TemperatureCelsius: l.Fields.TemperatureCelsius,
			HumidityPercent:    l.Fields.HumidityPercent,
			WeightKg:           l.Fields.WeightKg,
		}
	}
	return in
}

// MetricSample is a normalized, storable metric row
type MetricSample struct {
	Time               time.Time `json:"time" db:"time"`
	HiveID             string    `json:"hiveId" db:"hive_id"`
	TemperatureCelsius *float64  `json:"temperatureCelsius" db:"temperature_celsius"`
	HumidityPercent    *float64  `json:"humidityPercent" db:"humidity_percent"`
	WeightKg           *float64  `json:"weightKg" db:"weight_kg"`
}
