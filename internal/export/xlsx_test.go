package export_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/victornavas/unified-api/internal/domain"
	"github.com/victornavas/unified-api/internal/export"
)

func TestWriteGuestsXLSX_OneRowPerGuest(t *testing.T) {
	guests := []domain.Guest{
		{ID: 1, GroupID: 10, FirstName: "Ana", LastName: "Perez", Status: domain.StatusPending},
		{ID: 2, GroupID: 10, FirstName: "Luis", LastName: "Perez", Status: domain.StatusGoing, Hotel: true},
		{ID: 3, GroupID: 20, GroupIDList: []int64{20, 10}, FirstName: "Carla", LastName: "Reyes", Status: domain.StatusNotGoing},
	}

	var buf bytes.Buffer
	if err := export.WriteGuestsXLSX(&buf, guests); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Guests")
	if err != nil {
		t.Fatal(err)
	}

	// header row plus one row per guest
	if len(rows) != len(guests)+1 {
		t.Fatalf("expected %d rows, got %d", len(guests)+1, len(rows))
	}

	seen := map[string]bool{}
	for _, row := range rows[1:] {
		id := row[0]
		if seen[id] {
			t.Fatalf("guest id %s appears more than once", id)
		}
		seen[id] = true
	}

	if rows[3][2] != "20,10" {
		t.Fatalf("expected group id list 20,10, got %q", rows[3][2])
	}
}

func TestWriteGuestsXLSX_EmptyDirectory(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteGuestsXLSX(&buf, nil); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows("Guests")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected only the header row, got %d rows", len(rows))
	}
}
