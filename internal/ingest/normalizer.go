// FilePath: server/telemetry/internal/ingest/normalizer.go
package ingest

import (
	"strings"
	"time"

	"github.com/itsatony/w4b_v3/server/telemetry/internal/errors"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/models"
)

// Clock supplies "now" for samples that arrive without a timestamp
type Clock func() time.Time

// Normalizer validates incoming samples and converts them into storable rows.
// Validation is all-or-nothing: the first invalid item fails the whole call.
type Normalizer struct {
	now Clock
}

func NewNormalizer(now Clock) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{now: now}
}

// Metrics normalizes metric inputs, preserving their order
func (n *Normalizer) Metrics(items []models.MetricInput) ([]models.MetricSample, error) {
	if len(items) == 0 {
		return nil, errors.NewNoItemsProvided("metrics")
	}

	samples := make([]models.MetricSample, 0, len(items))
	for _, item := range items {
		if item.HiveID.IsEmpty() {
			return nil, errors.NewHiveIDMissing()
		}
		if item.Fields.IsEmpty() {
			return nil, errors.NewFieldsMissing("")
		}

		samples = append(samples, models.MetricSample{
			Time:               n.timestamp(item.Timestamp),
			HiveID:             item.HiveID.String(),
			TemperatureCelsius: item.Fields.TemperatureCelsius,
			HumidityPercent:    item.Fields.HumidityPercent,
			WeightKg:           item.Fields.WeightKg,
		})
	}
	return samples, nil
}

// Movements normalizes entrance observations, preserving their order
func (n *Normalizer) Movements(items []models.MovementInput) ([]models.MovementSample, error) {
	if len(items) == 0 {
		return nil, errors.NewNoItemsProvided("movements")
	}

	samples := make([]models.MovementSample, 0, len(items))
	for _, item := range items {
		if item.HiveID.IsEmpty() {
			return nil, errors.NewHiveIDMissing()
		}
		if item.BoxID.IsEmpty() {
			return nil, errors.NewBoxIDMissing()
		}
		if item.BeesOut == nil || item.BeesIn == nil {
			return nil, errors.NewFieldsMissing("Bad Request: beesOut or beesIn are not provided")
		}
		if *item.BeesOut < 0 || *item.BeesIn < 0 {
			return nil, errors.NewNegativeValuesNotAllowed()
		}

		samples = append(samples, models.MovementSample{
			Time:            n.timestamp(item.Timestamp),
			HiveID:          item.HiveID.String(),
			BoxID:           item.BoxID.String(),
			BeesOut:         *item.BeesOut,
			BeesIn:          *item.BeesIn,
			NetFlow:         item.NetFlow,
			AvgSpeed:        item.AvgSpeed,
			P95Speed:        item.P95Speed,
			StationaryBees:  item.StationaryBees,
			DetectedBees:    item.DetectedBees,
			BeeInteractions: item.BeeInteractions,
		})
	}
	return samples, nil
}

// Population normalizes inspection results, preserving their order
func (n *Normalizer) Population(items []models.PopulationInput) ([]models.PopulationSample, error) {
	if len(items) == 0 {
		return nil, errors.NewNoItemsProvided("population metrics")
	}

	samples := make([]models.PopulationSample, 0, len(items))
	for _, item := range items {
		if item.HiveID.IsEmpty() {
			return nil, errors.NewHiveIDMissing()
		}
		if item.Fields.IsEmpty() {
			return nil, errors.NewFieldsMissing("")
		}

		var inspectionID *string
		if item.InspectionID != nil && strings.TrimSpace(*item.InspectionID) != "" {
			id := *item.InspectionID
			inspectionID = &id
		}

		samples = append(samples, models.PopulationSample{
			Time:            n.timestamp(item.Timestamp),
			HiveID:          item.HiveID.String(),
			BeeCount:        item.Fields.BeeCount,
			DroneCount:      item.Fields.DroneCount,
			VarroaMiteCount: item.Fields.VarroaMiteCount,
			InspectionID:    inspectionID,
		})
	}
	return samples, nil
}

// timestamp converts epoch seconds to an instant, or captures now for this item
func (n *Normalizer) timestamp(epochSeconds *int64) time.Time {
	if epochSeconds != nil {
		return time.Unix(*epochSeconds, 0).UTC()
	}
	return n.now().UTC()
}
