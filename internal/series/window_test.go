package series

import (
	"errors"
	"math"
	"testing"

	"github.com/iwvelando/kpi-dashboard/pkg/datetime"
)

func TestFilterWindows(t *testing.T) {
	s := october(t, 42)

	tests := []struct {
		name      string
		window    Window
		wantLen   int
		wantFirst string
	}{
		{"Last 7 days", Last7Days, 7, "2025-10-25"},
		{"Last 14 days", Last14Days, 14, "2025-10-18"},
		{"Last 30 days", Last30Days, 30, "2025-10-02"},
		{"All", AllDays, 31, "2025-10-01"},
		{"Longer than series", Days(90), 31, "2025-10-01"},
		{"Single day", Days(1), 1, "2025-10-31"},
		{"Exactly the series span", Days(31), 31, "2025-10-01"},
		{"Largest int", Days(math.MaxInt), 31, "2025-10-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(s, tt.window)
			if err != nil {
				t.Fatalf("Filter() error = %v", err)
			}
			if got.Len() != tt.wantLen {
				t.Fatalf("Filter() returned %d records, expected %d", got.Len(), tt.wantLen)
			}
			if first := datetime.Format(got[0].Date); first != tt.wantFirst {
				t.Errorf("first date = %s, expected %s", first, tt.wantFirst)
			}
			if last := datetime.Format(got[got.Len()-1].Date); last != "2025-10-31" {
				t.Errorf("last date = %s, expected 2025-10-31", last)
			}
		})
	}
}

func TestFilterAllIdempotent(t *testing.T) {
	s := october(t, 7)

	once, err := Filter(s, AllDays)
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	twice, err := Filter(once, AllDays)
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if !once.Equal(twice) || !once.Equal(s) {
		t.Error("filtering with all twice changed the series")
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	s := october(t, 42)
	original := s.Clone()

	for _, w := range Windows() {
		got, err := Filter(s, w)
		if err != nil {
			t.Fatalf("Filter(%s) error = %v", w, err)
		}
		got[0].Revenue = -1
	}
	if !s.Equal(original) {
		t.Error("Filter() result shares storage with its input")
	}
}

func TestFilterEmptySeries(t *testing.T) {
	got, err := Filter(Series{}, Last7Days)
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("expected empty result, got %d records", got.Len())
	}
}

func TestFilterInvalidSelection(t *testing.T) {
	s := october(t, 42)

	for _, w := range []Window{Days(0), Days(-3), {}, {Label: "forever"}} {
		t.Run(w.String(), func(t *testing.T) {
			_, err := Filter(s, w)
			if !errors.Is(err, ErrInvalidSelection) {
				t.Errorf("Filter(%+v) error = %v, expected ErrInvalidSelection", w, err)
			}
		})
	}
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		label    string
		expected Window
	}{
		{"7d", Last7Days},
		{"14D", Last14Days},
		{" 30d ", Last30Days},
		{"all", AllDays},
		{"Last 7 days", Last7Days},
		{"last 30 days", Last30Days},
		{"All", AllDays},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseWindow(tt.label)
			if err != nil {
				t.Fatalf("ParseWindow() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParseWindow() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestParseWindowUnrecognized(t *testing.T) {
	for _, label := range []string{"", "1w", "90d", "everything"} {
		if _, err := ParseWindow(label); !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("ParseWindow(%q) error = %v, expected ErrInvalidSelection", label, err)
		}
	}
}

func TestWindowTitle(t *testing.T) {
	if got := Last14Days.Title(); got != "Last 14 days" {
		t.Errorf("Title() = %q", got)
	}
	if got := AllDays.Title(); got != "All" {
		t.Errorf("Title() = %q", got)
	}
}
