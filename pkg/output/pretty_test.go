package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iwvelando/kpi-dashboard/internal/dashboard"
)

func TestPrettyFormat(t *testing.T) {
	view := &dashboard.View{
		Seed:    42,
		Caption: "Showing: Last 7 days — Range: 2025-10-30 → 2025-10-31",
		Cards: []dashboard.Card{
			{Title: "Revenue", Value: "4,100", Delta: "-1,023"},
			{Title: "Conversion Rate", Value: "7.03%", Delta: "+2.53 pp"},
		},
		Rows: []dashboard.Row{
			{Date: "2025-10-30", Revenue: 5123, Profit: 900, ConversionRate: 4.5},
		},
	}

	var buf bytes.Buffer
	PrettyFormat(&buf, view)
	out := buf.String()

	for _, want := range []string{
		"--- Business KPI Dashboard (seed 42) ---",
		view.Caption,
		"-1,023",
		"+2.53 pp",
		"Date       | Revenue | Profit | Conversion Rate",
		"2025-10-30",
		"5,123",
		"4.50%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("PrettyFormat output missing %q:\n%s", want, out)
		}
	}
}
