// FilePath: server/telemetry/internal/models/models.fields.go
package models

// Physical table names
const (
	TableMetrics    = "beehive_metrics"
	TableMovements  = "entrance_observer"
	TablePopulation = "population_metrics"
)

// Field maps a logical (API) field name onto its physical column.
type Field struct {
	Name   string
	Column string
	Table  string
}

// Logical field names
const (
	FieldTemperatureCelsius = "temperatureCelsius"
	FieldHumidityPercent    = "humidityPercent"
	FieldWeightKg           = "weightKg"
	FieldBeesIn             = "beesIn"
	FieldBeesOut            = "beesOut"
	FieldBeeCount           = "beeCount"
	FieldDroneCount         = "droneCount"
	FieldVarroaMiteCount    = "varroaMiteCount"
)

var fieldTable = map[string]Field{
	FieldTemperatureCelsius: {FieldTemperatureCelsius, "temperature_celsius", TableMetrics},
	FieldHumidityPercent:    {FieldHumidityPercent, "humidity_percent", TableMetrics},
	FieldWeightKg:           {FieldWeightKg, "weight_kg", TableMetrics},
	FieldBeesIn:             {FieldBeesIn, "bees_in", TableMovements},
	FieldBeesOut:            {FieldBeesOut, "bees_out", TableMovements},
	FieldBeeCount:           {FieldBeeCount, "bee_count", TablePopulation},
	FieldDroneCount:         {FieldDroneCount, "drone_count", TablePopulation},
	FieldVarroaMiteCount:    {FieldVarroaMiteCount, "varroa_mite_count", TablePopulation},
}

// LookupField resolves a logical field name. Unknown names are never passed through.
func LookupField(name string) (Field, bool) {
	f, ok := fieldTable[name]
	return f, ok
}

// Fields returns a copy of the complete mapping table
func Fields() map[string]Field {
	out := make(map[string]Field, len(fieldTable))
	for k, v := range fieldTable {
		out[k] = v
	}
	return out
}
