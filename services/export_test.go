package services

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/crisvieira/satisfaction-server/models"
)

func TestExportCSVRoundTrip(t *testing.T) {
	submitted := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	records := []models.SurveyResponse{
		{
			ID:          1,
			Instrument:  models.InstrumentNPS,
			Score:       10,
			Category:    models.CategoryPromoter,
			ContextTag:  "itajai",
			Comment:     `ótimo atendimento, "nota 10", sem filas`,
			SubmittedAt: submitted,
		},
		{
			ID:          2,
			Instrument:  models.InstrumentCSAT,
			Score:       2,
			Category:    models.CategoryDissatisfied,
			ContextTag:  "return",
			Comment:     "demorou\nmuito",
			SubmittedAt: submitted.Add(time.Minute),
		},
	}

	data, err := ExportCSV(records)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("parse exported csv: %v", err)
	}
	if len(rows) != 1+len(records) {
		t.Fatalf("want %d rows, got %d", 1+len(records), len(rows))
	}
	if got := strings.Join(rows[0], ","); got != "id,instrument,context,score,category,comment,submitted_at" {
		t.Fatalf("bad header: %s", got)
	}

	// comma, quote and newline in comments must survive the round trip
	if rows[1][5] != records[0].Comment {
		t.Errorf("comment mangled: %q", rows[1][5])
	}
	if rows[2][5] != records[1].Comment {
		t.Errorf("multiline comment mangled: %q", rows[2][5])
	}

	// insertion order preserved
	if rows[1][0] != "1" || rows[2][0] != "2" {
		t.Errorf("rows out of order: %v %v", rows[1][0], rows[2][0])
	}

	// fixed, locale-stable timestamp format
	if rows[1][6] != "2026-08-31T14:30:00Z" {
		t.Errorf("timestamp = %q, want RFC3339 UTC", rows[1][6])
	}
}

func TestExportCSVEmpty(t *testing.T) {
	data, err := ExportCSV(nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("empty store should export header only, got %d rows", len(rows))
	}
}
