package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/crisvieira/satisfaction-server/models"
)

// ExportCSVHeader is the fixed column set of the tabular export.
var ExportCSVHeader = []string{"id", "instrument", "context", "score", "category", "comment", "submitted_at"}

// ExportCSV renders the record set as CSV, one row per record in the
// order given (insertion order from the store). The csv writer handles
// quoting, so comments containing commas, quotes or newlines round-trip
// through any conforming parser. Timestamps are RFC3339 UTC, never
// locale formatted.
func ExportCSV(records []models.SurveyResponse) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(ExportCSVHeader); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			string(r.Instrument),
			r.ContextTag,
			strconv.Itoa(r.Score),
			string(r.Category),
			r.Comment,
			r.SubmittedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
