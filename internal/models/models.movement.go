// FilePath: server/telemetry/internal/models/models.movement.go
package models

import "time"

// MovementInput is the wire format of one entrance observation
type MovementInput struct {
	HiveID          ID       `json:"hiveId"`
	BoxID           ID       `json:"boxId"`
	BeesOut         *int64   `json:"beesOut"`
	BeesIn          *int64   `json:"beesIn"`
	NetFlow         *int64   `json:"netFlow,omitempty"`
	AvgSpeed        *float64 `json:"avgSpeed,omitempty"`
	P95Speed        *float64 `json:"p95Speed,omitempty"`
	StationaryBees  *int64   `json:"stationaryBees,omitempty"`
	DetectedBees    *int64   `json:"detectedBees,omitempty"`
	BeeInteractions *int64   `json:"beeInteractions,omitempty"`
	Timestamp       *int64   `json:"timestamp,omitempty"`
}

// MovementSample is a normalized, storable entrance observation row
type MovementSample struct {
	Time            time.Time `json:"time" db:"time"`
	HiveID          string    `json:"hiveId" db:"hive_id"`
	BoxID           string    `json:"boxId" db:"box_id"`
	BeesOut         int64     `json:"beesOut" db:"bees_out"`
	BeesIn          int64     `json:"beesIn" db:"bees_in"`
	NetFlow         *int64    `json:"netFlow" db:"net_flow"`
	AvgSpeed        *float64  `json:"avgSpeed" db:"avg_speed"`
	P95Speed        *float64  `json:"p95Speed" db:"p95_speed"`
	StationaryBees  *int64    `json:"stationaryBees" db:"stationary_bees"`
	DetectedBees    *int64    `json:"detectedBees" db:"detected_bees"`
	BeeInteractions *int64    `json:"beeInteractions" db:"bee_interactions"`
}

// MovementAggregate is the zero-filled daily entrance summary for one box
type MovementAggregate struct {
	BeesIn          int64   `json:"beesIn" db:"bees_in"`
	BeesOut         int64   `json:"beesOut" db:"bees_out"`
	NetFlow         int64   `json:"netFlow" db:"net_flow"`
	DetectedBees    int64   `json:"detectedBees" db:"detected_bees"`
	BeeInteractions int64   `json:"beeInteractions" db:"bee_interactions"`
	AvgSpeed        float64 `json:"avgSpeed" db:"avg_speed"`
	P95Speed        float64 `json:"p95Speed" db:"p95_speed"`
	StationaryBees  float64 `json:"stationaryBees" db:"stationary_bees"`
}
