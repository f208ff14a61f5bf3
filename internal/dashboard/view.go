// Package dashboard runs the generate, filter and summarize pipeline and
// shapes its results into the cards, charts and table a presenter renders.
package dashboard

import (
	"fmt"
	"time"

	"github.com/iwvelando/kpi-dashboard/internal/kpi"
	"github.com/iwvelando/kpi-dashboard/internal/series"
	"github.com/iwvelando/kpi-dashboard/pkg/constants"
	"github.com/iwvelando/kpi-dashboard/pkg/datetime"
	"github.com/iwvelando/kpi-dashboard/pkg/format"
	"go.uber.org/zap"
)

// Request holds the inputs of one pipeline run. The seed belongs to the
// caller; nothing here remembers it between runs.
type Request struct {
	Seed   int64
	Window series.Window
	Start  time.Time
	End    time.Time
	Bounds series.Bounds
}

// View is everything a presenter needs for one render.
type View struct {
	Seed       int64         `json:"seed"`
	Window     string        `json:"window"`
	Caption    string        `json:"caption"`
	RangeStart string        `json:"rangeStart,omitempty"`
	RangeEnd   string        `json:"rangeEnd,omitempty"`
	Available  bool          `json:"available"`
	Cards      []Card        `json:"cards"`
	Charts     []Chart       `json:"charts"`
	Rows       []Row         `json:"rows"`
	Series     series.Series `json:"-"`
}

// Card is one KPI tile.
type Card struct {
	Title     string `json:"title"`
	Value     string `json:"value"`
	Delta     string `json:"delta"`
	Direction string `json:"direction,omitempty"` // up, down, flat
}

// Row is one line of the data table.
type Row struct {
	Date           string  `json:"date"`
	Revenue        int     `json:"revenue"`
	Profit         int     `json:"profit"`
	ConversionRate float64 `json:"conversionRate"`
}

// Build runs the pipeline for req.
func Build(logger *zap.Logger, req Request) (*View, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	full, err := series.Generate(req.Seed, req.Start, req.End, req.Bounds)
	if err != nil {
		return nil, fmt.Errorf("failed to generate series: %w", err)
	}

	filtered, err := series.Filter(full, req.Window)
	if err != nil {
		return nil, err
	}

	snapshot, ok := kpi.Summarize(filtered)
	if !ok {
		logger.Debug("fewer than two records in window, KPIs unavailable",
			zap.String("op", "dashboard.Build"),
			zap.String("window", req.Window.String()),
			zap.Int("records", filtered.Len()),
		)
	}

	view := &View{
		Seed:      req.Seed,
		Window:    req.Window.String(),
		Available: ok,
		Cards:     buildCards(snapshot, ok),
		Charts:    buildCharts(filtered),
		Rows:      buildRows(filtered),
		Series:    filtered,
	}
	view.Caption = caption(req.Window, filtered)
	if first, ok := filtered.First(); ok {
		last, _ := filtered.Last()
		view.RangeStart = datetime.Format(first.Date)
		view.RangeEnd = datetime.Format(last.Date)
	}

	logger.Debug("dashboard view built",
		zap.String("op", "dashboard.Build"),
		zap.Int64("seed", req.Seed),
		zap.String("window", req.Window.String()),
		zap.Int("rows", len(view.Rows)),
	)
	return view, nil
}

func caption(w series.Window, s series.Series) string {
	first, ok := s.First()
	if !ok {
		return fmt.Sprintf("Showing: %s — Range: n/a", w.Title())
	}
	last, _ := s.Last()
	return fmt.Sprintf("Showing: %s — Range: %s → %s",
		w.Title(), datetime.Format(first.Date), datetime.Format(last.Date))
}

func buildCards(snapshot kpi.Snapshot, ok bool) []Card {
	titles := []string{constants.MetricRevenue, constants.MetricProfit, constants.MetricConversionRate}
	cards := make([]Card, 0, len(titles))
	for _, title := range titles {
		m, found := snapshot.Metric(title)
		if !ok || !found {
			cards = append(cards, Card{Title: title, Value: constants.Placeholder, Delta: constants.Placeholder})
			continue
		}
		cards = append(cards, metricCard(m))
	}
	return cards
}

func metricCard(m kpi.Metric) Card {
	card := Card{Title: m.Name, Direction: direction(m.Delta)}
	switch m.Unit {
	case kpi.UnitPercent:
		card.Value = format.Percent(m.Latest)
		card.Delta = format.SignedPoints(m.Delta)
	default:
		card.Value = format.Amount(m.Latest)
		card.Delta = format.SignedAmount(m.Delta)
	}
	return card
}

func direction(delta float64) string {
	switch {
	case delta > 0:
		return "up"
	case delta < 0:
		return "down"
	default:
		return "flat"
	}
}

func buildRows(s series.Series) []Row {
	rows := make([]Row, 0, s.Len())
	for _, rec := range s {
		rows = append(rows, Row{
			Date:           datetime.Format(rec.Date),
			Revenue:        rec.Revenue,
			Profit:         rec.Profit,
			ConversionRate: rec.ConversionRate,
		})
	}
	return rows
}
