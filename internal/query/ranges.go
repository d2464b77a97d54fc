// FilePath: server/telemetry/internal/query/ranges.go
package query

import (
	"github.com/itsatony/w4b_v3/server/telemetry/internal/errors"
)

const (
	DefaultRangeMin = 60
	MaxRangeMin     = 7 * 24 * 60

	DefaultDays = 90
	MaxDays     = 730
)

// ValidateRangeMin applies the default and bounds of a ranged series window, in minutes
func ValidateRangeMin(rangeMin *int) (int, error) {
	if rangeMin == nil {
		return DefaultRangeMin, nil
	}
	switch {
	case *rangeMin <= 0:
		return 0, errors.NewInvalidTimeRange("Time range must be positive")
	case *rangeMin > MaxRangeMin:
		return 0, errors.NewInvalidTimeRange("Time range cannot exceed 7 days")
	}
	return *rangeMin, nil
}

// ValidateDays applies the default and bounds of a calendar-day window
func ValidateDays(days *int) (int, error) {
	if days == nil {
		return DefaultDays, nil
	}
	switch {
	case *days <= 0:
		return 0, errors.NewInvalidTimeRange("Days must be positive")
	case *days > MaxDays:
		return 0, errors.NewInvalidTimeRange("Days cannot exceed 730")
	}
	return *days, nil
}
