package dashboard

import (
	"github.com/iwvelando/kpi-dashboard/internal/series"
	"github.com/iwvelando/kpi-dashboard/pkg/constants"
	"github.com/iwvelando/kpi-dashboard/pkg/datetime"
)

// Chart titles as shown above each trend chart.
const (
	ChartRevenueProfit  = "Revenue & Profit (Trend)"
	ChartConversionRate = "Conversion Rate (Trend)"
)

var defaultColors = []string{"#4F46E5", "#10B981", "#F59E0B"}

// Chart is a line chart over the window's dates.
type Chart struct {
	Title  string        `json:"title"`
	XAxis  string        `json:"xAxis"`
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

// ChartSeries is one line of a chart, aligned with Chart.Labels.
type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Color  string    `json:"color"`
}

func buildCharts(s series.Series) []Chart {
	labels := make([]string, 0, s.Len())
	revenue := make([]float64, 0, s.Len())
	profit := make([]float64, 0, s.Len())
	conversion := make([]float64, 0, s.Len())
	for _, rec := range s {
		labels = append(labels, datetime.Format(rec.Date))
		revenue = append(revenue, float64(rec.Revenue))
		profit = append(profit, float64(rec.Profit))
		conversion = append(conversion, rec.ConversionRate)
	}

	return []Chart{
		{
			Title:  ChartRevenueProfit,
			XAxis:  constants.MetricDate,
			Labels: labels,
			Series: []ChartSeries{
				{Name: constants.MetricRevenue, Values: revenue, Color: defaultColors[0]},
				{Name: constants.MetricProfit, Values: profit, Color: defaultColors[1]},
			},
		},
		{
			Title:  ChartConversionRate,
			XAxis:  constants.MetricDate,
			Labels: labels,
			Series: []ChartSeries{
				{Name: constants.MetricConversionRate, Values: conversion, Color: defaultColors[2]},
			},
		},
	}
}
