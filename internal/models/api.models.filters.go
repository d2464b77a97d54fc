package models

// SeriesFilters are the query parameters of a ranged series read
type SeriesFilters struct {
	RangeMin *int `schema:"rangeMin"`
}

// MovementTodayFilters are the query parameters of the today aggregate
type MovementTodayFilters struct {
	BoxID string `schema:"boxId"`
}

// MovementRangeFilters selects raw movement rows; times are epoch seconds
type MovementRangeFilters struct {
	BoxID    string `schema:"boxId"`
	TimeFrom *int64 `schema:"timeFrom"`
	TimeTo   *int64 `schema:"timeTo"`
}

// WeightTrendFilters are the query parameters of the weight trend read
type WeightTrendFilters struct {
	Days        *int   `schema:"days"`
	Aggregation string `schema:"aggregation"`
}

// PopulationFilters are the query parameters of the population series read
type PopulationFilters struct {
	Days *int `schema:"days"`
}
