// Package kpi computes latest-value and delta snapshots from a daily series.
package kpi

import (
	"time"

	"github.com/iwvelando/kpi-dashboard/internal/series"
	"github.com/iwvelando/kpi-dashboard/pkg/constants"
	"github.com/iwvelando/kpi-dashboard/pkg/mathutil"
)

// Unit describes how a metric and its delta are displayed.
type Unit string

const (
	// UnitAmount is a plain count or currency amount.
	UnitAmount Unit = "amount"
	// UnitPercent is a percentage; its delta is in percentage points.
	UnitPercent Unit = "percent"
)

// Metric is one tracked KPI with its latest value and signed change versus
// the preceding record.
type Metric struct {
	Name   string
	Unit   Unit
	Latest float64
	Delta  float64
}

// Snapshot holds one Metric per tracked KPI, ordered revenue, profit,
// conversion rate.
type Snapshot struct {
	LatestDate   time.Time
	PreviousDate time.Time
	Metrics      []Metric
}

// Metric returns the named metric.
func (s Snapshot) Metric(name string) (Metric, bool) {
	for _, m := range s.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return Metric{}, false
}

// Summarize compares the last two records of s. The previous record is the
// one adjacent in the series, not necessarily the previous calendar day. It
// returns false when s has fewer than two records.
func Summarize(s series.Series) (Snapshot, bool) {
	if s.Len() < 2 {
		return Snapshot{}, false
	}
	latest, previous := s[s.Len()-1], s[s.Len()-2]

	return Snapshot{
		LatestDate:   latest.Date,
		PreviousDate: previous.Date,
		Metrics: []Metric{
			{
				Name:   constants.MetricRevenue,
				Unit:   UnitAmount,
				Latest: float64(latest.Revenue),
				Delta:  float64(latest.Revenue - previous.Revenue),
			},
			{
				Name:   constants.MetricProfit,
				Unit:   UnitAmount,
				Latest: float64(latest.Profit),
				Delta:  float64(latest.Profit - previous.Profit),
			},
			{
				Name:   constants.MetricConversionRate,
				Unit:   UnitPercent,
				Latest: latest.ConversionRate,
				Delta:  mathutil.Round(latest.ConversionRate - previous.ConversionRate),
			},
		},
	}, true
}
