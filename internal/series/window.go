package series

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/kpi-dashboard/pkg/constants"
	"github.com/iwvelando/kpi-dashboard/pkg/datetime"
)

// ErrInvalidSelection is returned for window selections that are not
// recognized or carry a non-positive day count.
var ErrInvalidSelection = errors.New("invalid window selection")

// Window selects a trailing run of days ending at the latest record, or the
// whole series for AllDays.
type Window struct {
	Label string
	Days  int
}

var (
	Last7Days  = Window{Label: constants.Window7Days, Days: 7}
	Last14Days = Window{Label: constants.Window14Days, Days: 14}
	Last30Days = Window{Label: constants.Window30Days, Days: 30}
	AllDays    = Window{Label: constants.WindowAll}
)

// Windows lists the selectable windows in display order.
func Windows() []Window {
	return []Window{Last7Days, Last14Days, Last30Days, AllDays}
}

// Days returns an n-day window. Filter rejects it when n is not positive.
func Days(n int) Window {
	return Window{Label: fmt.Sprintf("%dd", n), Days: n}
}

// All reports whether the window covers the whole series.
func (w Window) All() bool {
	return w.Days == 0 && w.Label == constants.WindowAll
}

// String returns the short label, e.g. "7d".
func (w Window) String() string {
	return w.Label
}

// Title returns the long display label, e.g. "Last 7 days".
func (w Window) Title() string {
	if w.All() {
		return "All"
	}
	return fmt.Sprintf("Last %d days", w.Days)
}

// Validate returns ErrInvalidSelection for windows Filter cannot apply.
func (w Window) Validate() error {
	if w.All() {
		return nil
	}
	if w.Days <= 0 {
		return fmt.Errorf("%w: %q with %d days", ErrInvalidSelection, w.Label, w.Days)
	}
	return nil
}

// ParseWindow resolves a short label ("7d", "14d", "30d", "all") or its long
// form ("Last 7 days", "All"), case-insensitively.
func ParseWindow(label string) (Window, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	for _, w := range Windows() {
		if key == w.Label || key == strings.ToLower(w.Title()) {
			return w, nil
		}
	}
	return Window{}, fmt.Errorf("%w: %q", ErrInvalidSelection, label)
}

// Filter returns the records dated on or after last date - (Days-1). A series
// shorter than the window is returned whole. The result never shares storage
// with s.
func Filter(s Series, w Window) (Series, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if w.All() {
		return s.Clone(), nil
	}

	first, ok := s.First()
	if !ok {
		return Series{}, nil
	}
	last, _ := s.Last()
	if w.Days >= datetime.DaysInclusive(first.Date, last.Date) {
		return s.Clone(), nil
	}
	cutoff := datetime.OffsetDays(last.Date, -(w.Days - 1))

	out := make(Series, 0, min(w.Days, len(s)))
	for _, rec := range s {
		if !rec.Date.Before(cutoff) {
			out = append(out, rec)
		}
	}
	return out, nil
}
