package integration

import (
	"testing"
	"time"

	"github.com/iwvelando/kpi-dashboard/internal/dashboard"
	"github.com/iwvelando/kpi-dashboard/internal/kpi"
	"github.com/iwvelando/kpi-dashboard/internal/series"
	"github.com/iwvelando/kpi-dashboard/pkg/datetime"
	"go.uber.org/zap"
)

// TestPerformance keeps a multi-year series well inside interactive latency.
func TestPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping performance test in short mode")
	}

	start := time.Now()
	s, err := series.Generate(1, datetime.MustParseDate("2015-01-01"), datetime.MustParseDate("2025-12-31"), series.DefaultBounds())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, w := range series.Windows() {
		filtered, err := series.Filter(s, w)
		if err != nil {
			t.Fatalf("Filter(%s) failed: %v", w, err)
		}
		kpi.Summarize(filtered)
	}
	elapsed := time.Since(start)

	t.Logf("generated and filtered %d records in %v", s.Len(), elapsed)
	if elapsed > 2*time.Second {
		t.Errorf("pipeline took %v, expected under 2s", elapsed)
	}
}

func BenchmarkBuild(b *testing.B) {
	req := loadBenchRequest()
	logger := zap.NewNop()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req.Seed = int64(i)
		if _, err := dashboard.Build(logger, req); err != nil {
			b.Fatal(err)
		}
	}
}

func loadBenchRequest() dashboard.Request {
	return dashboard.Request{
		Window: series.Last30Days,
		Start:  datetime.MustParseDate("2025-10-01"),
		End:    datetime.MustParseDate("2025-10-31"),
		Bounds: series.DefaultBounds(),
	}
}
