package series

import (
	"math"
	"testing"

	"github.com/iwvelando/kpi-dashboard/pkg/datetime"
)

func october(t *testing.T, seed int64) Series {
	t.Helper()
	s, err := Generate(seed, datetime.MustParseDate("2025-10-01"), datetime.MustParseDate("2025-10-31"), DefaultBounds())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return s
}

func TestGenerateDeterministic(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, -7, math.MaxInt64} {
		a := october(t, seed)
		b := october(t, seed)
		if !a.Equal(b) {
			t.Errorf("seed %d produced different series on repeat", seed)
		}
	}
}

func TestGenerateDistinctSeeds(t *testing.T) {
	a := october(t, 42)
	b := october(t, 43)
	if a.Equal(b) {
		t.Error("seeds 42 and 43 produced identical series")
	}
}

func TestGenerateCoverage(t *testing.T) {
	s := october(t, 42)

	if s.Len() != 31 {
		t.Fatalf("expected 31 records, got %d", s.Len())
	}
	if got := datetime.Format(s[0].Date); got != "2025-10-01" {
		t.Errorf("first date = %s, expected 2025-10-01", got)
	}
	if got := datetime.Format(s[30].Date); got != "2025-10-31" {
		t.Errorf("last date = %s, expected 2025-10-31", got)
	}
	for i := 1; i < s.Len(); i++ {
		want := datetime.OffsetDays(s[i-1].Date, 1)
		if !s[i].Date.Equal(want) {
			t.Fatalf("record %d dated %s, expected %s", i, datetime.Format(s[i].Date), datetime.Format(want))
		}
	}
}

func TestGenerateBounds(t *testing.T) {
	for _, seed := range []int64{1, 42, 1000} {
		for _, rec := range october(t, seed) {
			if rec.Revenue < 3000 || rec.Revenue >= 8000 {
				t.Errorf("seed %d: revenue %d out of [3000, 8000)", seed, rec.Revenue)
			}
			if rec.Profit < 500 || rec.Profit >= 2000 {
				t.Errorf("seed %d: profit %d out of [500, 2000)", seed, rec.Profit)
			}
			if rec.ConversionRate < 2 || rec.ConversionRate > 8 {
				t.Errorf("seed %d: conversion rate %.4f out of [2, 8]", seed, rec.ConversionRate)
			}
			if scaled := rec.ConversionRate * 100; math.Abs(scaled-math.Round(scaled)) > 1e-6 {
				t.Errorf("seed %d: conversion rate %v has more than two decimals", seed, rec.ConversionRate)
			}
		}
	}
}

func TestGenerateSingleDay(t *testing.T) {
	day := datetime.MustParseDate("2025-10-15")
	s, err := Generate(42, day, day, DefaultBounds())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", s.Len())
	}
}

func TestGenerateMultiCenturyRange(t *testing.T) {
	s, err := Generate(1, datetime.MustParseDate("1700-01-01"), datetime.MustParseDate("2025-10-31"), DefaultBounds())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if s.Len() != 119008 {
		t.Fatalf("expected 119008 records, got %d", s.Len())
	}
	if got := datetime.Format(s[s.Len()-1].Date); got != "2025-10-31" {
		t.Errorf("last date = %s, expected 2025-10-31", got)
	}
}

func TestGenerateErrors(t *testing.T) {
	start := datetime.MustParseDate("2025-10-01")
	end := datetime.MustParseDate("2025-10-31")

	tests := []struct {
		name       string
		start, end string
		bounds     Bounds
	}{
		{
			name:   "Start after end",
			start:  "2025-10-31",
			end:    "2025-10-01",
			bounds: DefaultBounds(),
		},
		{
			name:   "Empty revenue range",
			start:  datetime.Format(start),
			end:    datetime.Format(end),
			bounds: Bounds{Revenue: IntRange{Min: 10, Max: 10}, Profit: IntRange{Min: 0, Max: 1}, ConversionRate: FloatRange{Min: 0, Max: 1}},
		},
		{
			name:   "Negative profit minimum",
			start:  datetime.Format(start),
			end:    datetime.Format(end),
			bounds: Bounds{Revenue: IntRange{Min: 0, Max: 10}, Profit: IntRange{Min: -1, Max: 1}, ConversionRate: FloatRange{Min: 0, Max: 1}},
		},
		{
			name:   "Inverted conversion range",
			start:  datetime.Format(start),
			end:    datetime.Format(end),
			bounds: Bounds{Revenue: IntRange{Min: 0, Max: 10}, Profit: IntRange{Min: 0, Max: 1}, ConversionRate: FloatRange{Min: 5, Max: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(1, datetime.MustParseDate(tt.start), datetime.MustParseDate(tt.end), tt.bounds)
			if err == nil {
				t.Error("Generate() expected error but got none")
			}
		})
	}
}
