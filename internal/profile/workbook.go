package profile

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// importHeaders are the recognized column headers of the upload template.
// Export writes the same header row so a downloaded sheet can be re-uploaded.
var importHeaders = []string{
	"profile title",
	"primary_phone",
	"secondary_phone",
	"primary_email",
	"secondary_email",
	"address",
	"city",
	"pincode",
	"country",
}

// ParseWorkbook reads the first sheet of an xlsx file: row one is the header
// row, every following row is one profile. Unknown headers are ignored.
func ParseWorkbook(contents []byte) ([]ImportRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(contents))
	if err != nil {
		return nil, fmt.Errorf("could not read workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	index := map[string]int{}
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var parsed []ImportRow
	for _, cells := range rows[1:] {
		cell := func(header string) *string {
			i, ok := index[header]
			if !ok || i >= len(cells) {
				return nil
			}
			return cleanCell(cells[i])
		}
		parsed = append(parsed, ImportRow{
			ProfileTitle:   cell("profile title"),
			PrimaryPhone:   cell("primary_phone"),
			SecondaryPhone: cell("secondary_phone"),
			Email1:         cell("primary_email"),
			Email2:         cell("secondary_email"),
			Address1:       cell("address"),
			City:           cell("city"),
			Pincode:        cell("pincode"),
			Country:        cell("country"),
		})
	}
	return parsed, nil
}

// cleanCell normalizes a blank cell to an absent value.
func cleanCell(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// ExportWorkbook renders profiles as an xlsx whose header row mirrors the
// upload template, followed by designation and qualification.
func ExportWorkbook(profiles []Profile) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := append(append([]string{}, importHeaders...), "designation", "qualification")
	for i, h := range headers {
		ref, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, ref, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, p := range profiles {
		values := []*string{
			p.ProfileTitle, p.PrimaryPhone, p.SecondaryPhone,
			p.Email1, p.Email2, p.Address1, p.City, p.Pincode, p.Country,
			p.Designation, p.Qualification,
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, ref, *v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
