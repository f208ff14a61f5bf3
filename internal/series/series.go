// Package series defines the daily KPI records and includes functions for
// generating a synthetic series and selecting trailing windows of it.
package series

import (
	"fmt"
	"time"

	"github.com/iwvelando/kpi-dashboard/pkg/constants"
)

// Record holds the tracked metrics for one calendar day.
type Record struct {
	Date           time.Time
	Revenue        int
	Profit         int
	ConversionRate float64 // percent, two decimals
}

// Series is an ordered run of daily records. Dates are contiguous, unique and
// ascending when produced by Generate.
type Series []Record

// Len returns the number of records.
func (s Series) Len() int {
	return len(s)
}

// First returns the earliest record; ok is false for an empty series.
func (s Series) First() (Record, bool) {
	if len(s) == 0 {
		return Record{}, false
	}
	return s[0], true
}

// Last returns the latest record; ok is false for an empty series.
func (s Series) Last() (Record, bool) {
	if len(s) == 0 {
		return Record{}, false
	}
	return s[len(s)-1], true
}

// Clone returns a copy that shares no backing array with s.
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	copy(out, s)
	return out
}

// Equal reports whether both series hold the same records in the same order.
func (s Series) Equal(other Series) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		a, b := s[i], other[i]
		if !a.Date.Equal(b.Date) || a.Revenue != b.Revenue || a.Profit != b.Profit || a.ConversionRate != b.ConversionRate {
			return false
		}
	}
	return true
}

// IntRange is a half-open integer range [Min, Max).
type IntRange struct {
	Min int
	Max int
}

// FloatRange is a half-open real range [Min, Max). Values are rounded to two
// decimals after drawing, so Max itself can appear.
type FloatRange struct {
	Min float64
	Max float64
}

// Bounds holds the generation ranges per metric.
type Bounds struct {
	Revenue        IntRange
	Profit         IntRange
	ConversionRate FloatRange
}

// DefaultBounds returns the stock ranges: revenue [3000, 8000), profit
// [500, 2000) and conversion rate [2, 8).
func DefaultBounds() Bounds {
	return Bounds{
		Revenue:        IntRange{Min: constants.DefaultRevenueMin, Max: constants.DefaultRevenueMax},
		Profit:         IntRange{Min: constants.DefaultProfitMin, Max: constants.DefaultProfitMax},
		ConversionRate: FloatRange{Min: constants.DefaultConversionMin, Max: constants.DefaultConversionMax},
	}
}

// Validate checks that every range is non-empty and non-negative.
func (b Bounds) Validate() error {
	if err := validateIntRange(constants.MetricRevenue, b.Revenue); err != nil {
		return err
	}
	if err := validateIntRange(constants.MetricProfit, b.Profit); err != nil {
		return err
	}
	if b.ConversionRate.Min < 0 {
		return fmt.Errorf("%s minimum must not be negative, got %.2f", constants.MetricConversionRate, b.ConversionRate.Min)
	}
	if b.ConversionRate.Min >= b.ConversionRate.Max {
		return fmt.Errorf("%s range is empty: [%.2f, %.2f)", constants.MetricConversionRate, b.ConversionRate.Min, b.ConversionRate.Max)
	}
	return nil
}

func validateIntRange(name string, r IntRange) error {
	if r.Min < 0 {
		return fmt.Errorf("%s minimum must not be negative, got %d", name, r.Min)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("%s range is empty: [%d, %d)", name, r.Min, r.Max)
	}
	return nil
}
