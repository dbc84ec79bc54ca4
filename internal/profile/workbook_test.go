package profile

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for rowIdx, cells := range rows {
		for col, v := range cells {
			ref, err := excelize.CoordinatesToCellName(col+1, rowIdx+1)
			if err != nil {
				t.Fatalf("cell ref: %v", err)
			}
			if err := f.SetCellValue(sheet, ref, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestParseWorkbook(t *testing.T) {
	contents := buildWorkbook(t, [][]interface{}{
		{"profile title", "primary_phone", "city", "country", "ignored header"},
		{"Engineer", "111", "Pune", "India", "junk"},
		{"Designer", "222", "", " "}, // blank and whitespace-only cells
	})

	rows, err := ParseWorkbook(contents)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.ProfileTitle == nil || *first.ProfileTitle != "Engineer" {
		t.Errorf("profile title = %v", first.ProfileTitle)
	}
	if first.City == nil || *first.City != "Pune" {
		t.Errorf("city = %v", first.City)
	}
	if first.Email1 != nil {
		t.Errorf("absent column should parse as nil, got %v", *first.Email1)
	}

	second := rows[1]
	if second.City != nil {
		t.Errorf("blank cell should normalize to nil, got %q", *second.City)
	}
	if second.Country != nil {
		t.Errorf("whitespace-only cell should normalize to nil, got %q", *second.Country)
	}
}

func TestParseWorkbook_Garbage(t *testing.T) {
	if _, err := ParseWorkbook([]byte("not a workbook")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestExportWorkbook_RoundTrip(t *testing.T) {
	profiles := []Profile{
		{ProfileTitle: str("Engineer"), PrimaryPhone: str("111"), City: str("Pune"), Designation: str("Backend")},
		{ProfileTitle: str("Designer"), PrimaryPhone: str("222")},
	}

	contents, err := ExportWorkbook(profiles)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	rows, err := ParseWorkbook(contents)
	if err != nil {
		t.Fatalf("an exported sheet must re-import: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].ProfileTitle == nil || *rows[0].ProfileTitle != "Engineer" {
		t.Errorf("round-tripped title = %v", rows[0].ProfileTitle)
	}
	if rows[0].PrimaryPhone == nil || *rows[0].PrimaryPhone != "111" {
		t.Errorf("round-tripped phone = %v", rows[0].PrimaryPhone)
	}
	if rows[1].City != nil {
		t.Errorf("empty column should stay absent, got %q", *rows[1].City)
	}
}
