// Package export renders domain records as xlsx workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of every workbook produced here.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const cellTimeLayout = "2006-01-02 15:04:05"

// Workbook is a single-sheet spreadsheet ready to be streamed to a client.
type Workbook struct {
	file  *excelize.File
	sheet string
}

// Sheet returns the name of the data sheet.
func (w *Workbook) Sheet() string {
	return w.sheet
}

// File exposes the underlying excelize file.
func (w *Workbook) File() *excelize.File {
	return w.file
}

// WriteTo streams the workbook as xlsx bytes.
func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	return w.file.WriteTo(out)
}

// Close releases the workbook's temporary resources.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// newWorkbook creates a workbook whose only sheet is named sheet, with a bold header row.
func newWorkbook(sheet string, headers []string, widths []float64) (*Workbook, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write header row: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", style); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("style header row: %w", err)
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	return &Workbook{file: f, sheet: sheet}, nil
}

// appendRow writes values into the given 1-based data row (row 1 is the header).
func (w *Workbook) appendRow(index int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, index+1)
	if err != nil {
		return err
	}
	if err := w.file.SetSheetRow(w.sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", index, err)
	}
	return nil
}

func optionalString(s *string) any {
	if s == nil {
		return ""
	}
	return *s
}

func optionalInt(i *int64) any {
	if i == nil {
		return ""
	}
	return *i
}
