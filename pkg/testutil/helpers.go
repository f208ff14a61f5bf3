// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/kpi-dashboard/internal/dashboard"
	"github.com/iwvelando/kpi-dashboard/internal/series"
	"github.com/iwvelando/kpi-dashboard/pkg/constants"
	"github.com/iwvelando/kpi-dashboard/pkg/datetime"
)

// OctoberRequest returns a pipeline request over the stock October 2025
// range with default bounds.
func OctoberRequest(seed int64, window series.Window) dashboard.Request {
	return dashboard.Request{
		Seed:   seed,
		Window: window,
		Start:  datetime.MustParseDate(constants.DefaultStartDate),
		End:    datetime.MustParseDate(constants.DefaultEndDate),
		Bounds: series.DefaultBounds(),
	}
}

// FindCard finds a card by title in the cards slice.
// Returns a pointer to the card if found, nil otherwise.
func FindCard(cards []dashboard.Card, title string) *dashboard.Card {
	for i := range cards {
		if cards[i].Title == title {
			return &cards[i]
		}
	}
	return nil
}
