package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/kpi-dashboard/internal/dashboard"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report:
// caption, KPI cards, then the data table.
func PrettyFormat(w io.Writer, view *dashboard.View) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "--- Business KPI Dashboard (seed %d) ---\n", view.Seed)
	fmt.Fprintln(w, view.Caption)
	fmt.Fprintln(w)

	for _, card := range view.Cards {
		fmt.Fprintf(w, "%-16s %12s  %s\n", card.Title, card.Value, card.Delta)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-10s | %7s | %6s | %s\n", "Date", "Revenue", "Profit", "Conversion Rate")
	fmt.Fprintf(w, "%s | %s | %s | %s\n",
		strings.Repeat("_", 10), strings.Repeat("_", 7), strings.Repeat("_", 6), strings.Repeat("_", 15))
	for _, row := range view.Rows {
		_, _ = p.Fprintf(w, "%-10s | %7d | %6d | %.2f%%\n", row.Date, row.Revenue, row.Profit, row.ConversionRate)
	}
}
