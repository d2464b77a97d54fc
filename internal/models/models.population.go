// FilePath: server/telemetry/internal/models/models.population.go
package models

import "time"

// PopulationFields holds the counts of one hive inspection
type PopulationFields struct {
	BeeCount        *int64 `json:"beeCount,omitempty"`
	DroneCount      *int64 `json:"droneCount,omitempty"`
	VarroaMiteCount *int64 `json:"varroaMiteCount,omitempty"`
}

func (f *PopulationFields) IsEmpty() bool {
	return f == nil || (f.BeeCount == nil && f.DroneCount == nil && f.VarroaMiteCount == nil)
}

// PopulationInput is the wire format of one inspection result
type PopulationInput struct {
	HiveID       ID                `json:"hiveId"`
	Fields       *PopulationFields `json:"fields"`
	InspectionID *string           `json:"inspectionId,omitempty"`
	Timestamp    *int64            `json:"timestamp,omitempty"`
}

// PopulationSample is a normalized, storable population row
type PopulationSample struct {
	Time            time.Time `json:"t" db:"time"`
	HiveID          string    `json:"hiveId" db:"hive_id"`
	BeeCount        *int64    `json:"beeCount" db:"bee_count"`
	DroneCount      *int64    `json:"droneCount" db:"drone_count"`
	VarroaMiteCount *int64    `json:"varroaMiteCount" db:"varroa_mite_count"`
	InspectionID    *string   `json:"inspectionId" db:"inspection_id"`
}
