// Package output provides utilities for exporting and displaying KPI data.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/kpi-dashboard/internal/series"
	"github.com/iwvelando/kpi-dashboard/pkg/constants"
	"github.com/iwvelando/kpi-dashboard/pkg/datetime"
)

// Header is the column order of every export.
var Header = []string{
	constants.MetricDate,
	constants.MetricRevenue,
	constants.MetricProfit,
	constants.MetricConversionRate,
}

// CsvFormat writes s as UTF-8 CSV with a header row and one row per record
// in series order. There is no index column.
func CsvFormat(w io.Writer, s series.Series) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, rec := range s {
		if err := writer.Write(csvRecord(rec)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// CsvString returns the CSV export of s as a string.
func CsvString(s series.Series) (string, error) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func csvRecord(rec series.Record) []string {
	return []string{
		datetime.Format(rec.Date),
		strconv.Itoa(rec.Revenue),
		strconv.Itoa(rec.Profit),
		strconv.FormatFloat(rec.ConversionRate, 'f', 2, 64),
	}
}
