package agent

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	TemplateFilename = "Agent_v2_Template.xlsx"
	templateSheet    = "Template"
	titleHeader      = "Job Title"
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	xlsContentType   = "application/vnd.ms-excel"
)

var sampleTitles = []string{
	"UP Police Constable Online Form 2026",
	"Railway RRB Technician Exam Date 2026",
	"SSC GD Constable Result 2026",
}

// Template builds the bulk upload workbook: one "Job Title" column with
// sample rows.
func Template() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), templateSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetCellValue(templateSheet, "A1", titleHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, title := range sampleTitles {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(templateSheet, cell, title); err != nil {
			return nil, fmt.Errorf("write %s: %w", cell, err)
		}
	}
	if err := f.SetColWidth(templateSheet, "A", "A", 48); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Titles reads the "Job Title" column of the first sheet, skipping blanks.
func Titles(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	col := -1
	for i, h := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(h), titleHeader) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("missing %q column", titleHeader)
	}
	var titles []string
	for _, row := range rows[1:] {
		if col < len(row) {
			if t := strings.TrimSpace(row[col]); t != "" {
				titles = append(titles, t)
			}
		}
	}
	return titles, nil
}
