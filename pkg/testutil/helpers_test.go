package testutil

import (
	"testing"

	"github.com/iwvelando/kpi-dashboard/internal/dashboard"
	"github.com/iwvelando/kpi-dashboard/internal/series"
)

func TestOctoberRequest(t *testing.T) {
	req := OctoberRequest(42, series.Last7Days)
	if req.Seed != 42 {
		t.Errorf("seed = %d, expected 42", req.Seed)
	}
	if req.Start.After(req.End) {
		t.Error("start after end")
	}
	if err := req.Bounds.Validate(); err != nil {
		t.Errorf("default bounds invalid: %v", err)
	}
}

func TestFindCard(t *testing.T) {
	cards := []dashboard.Card{{Title: "Revenue"}, {Title: "Profit"}}

	if card := FindCard(cards, "Profit"); card == nil || card.Title != "Profit" {
		t.Errorf("FindCard(Profit) = %v", card)
	}
	if card := FindCard(cards, "Churn"); card != nil {
		t.Errorf("FindCard(Churn) = %v, expected nil", card)
	}
}
