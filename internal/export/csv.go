// Package export turns an analysis into downloadable and plottable artifacts.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime"
	"strconv"
	"strings"

	"keywordlens/internal/models"
)

// CSVContentType is the MIME type of the CSV export.
const CSVContentType = "text/csv"

// ErrNoAnalysis is returned when there is nothing to export yet.
var ErrNoAnalysis = errors.New("no analysis to export")

// Filename returns the download name for an analysis of keyword.
// Path separators become underscores; everything else is kept as typed.
func Filename(keyword string) string {
	return "keyword_analysis_" + pathSeparators.Replace(keyword) + ".csv"
}

var pathSeparators = strings.NewReplacer("/", "_", "\\", "_")

// ContentDisposition returns the attachment header for an analysis of keyword.
// Names outside printable ASCII are encoded per RFC 2231.
func ContentDisposition(keyword string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": Filename(keyword)})
}

// WriteCSV writes the suggestions table with a header row and no index column.
func WriteCSV(w io.Writer, a *models.Analysis) error {
	if a == nil {
		return ErrNoAnalysis
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(models.Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range a.Rows {
		record := []string{
			row.Keyword,
			strconv.Itoa(row.MonthlyVolume),
			formatFloat(row.Competition),
			formatFloat(row.Difficulty),
			formatFloat(row.CPC),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row %q: %w", row.Keyword, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSV renders the table into memory.
func CSV(a *models.Analysis) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatFloat uses the shortest representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
