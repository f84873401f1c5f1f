package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/frherrer/go-testsheet/internal/domain"
)

// Columns of the report, in output order.
var Columns = []string{"File", "Function", "Description", "Precondition", "Step", "Expected Output"}

// Writer renders assembled records into a spreadsheet file.
type Writer interface {
	Write(records []domain.TestCaseRecord, outputPath string) error
}

// Options control the spreadsheet layout.
type Options struct {
	SheetName    string  // sheet title in single-sheet mode
	SheetPerFile bool    // one sheet per source file, File column dropped
	ColumnWidth  float64 // width applied to all columns
	HeaderFill   string  // RGB hex fill for the header row
}

// ExcelWriter implements Writer using excelize.
type ExcelWriter struct {
	opts Options
}

// NewExcelWriter creates a new ExcelWriter.
func NewExcelWriter(opts Options) *ExcelWriter {
	return &ExcelWriter{opts: opts}
}

// Write renders all records into one workbook at outputPath.
func (w *ExcelWriter) Write(records []domain.TestCaseRecord, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	var err error
	if w.opts.SheetPerFile {
		err = w.writePerFileSheets(f, records)
	} else {
		err = w.writeSingleSheet(f, records)
	}
	if err != nil {
		return err
	}

	if err := f.SaveAs(outputPath); err != nil {
		return domain.NewErrorWithSuggestion("write", outputPath, 0,
			"failed to save spreadsheet",
			"check write permissions for the output directory",
			err)
	}
	return nil
}

func (w *ExcelWriter) writeSingleSheet(f *excelize.File, records []domain.TestCaseRecord) error {
	sheet := w.opts.SheetName
	if sheet == "" {
		sheet = "Test Cases"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return domain.NewError("write", "", 0, "failed to rename sheet", err)
	}
	return w.fillSheet(f, sheet, records, true)
}

func (w *ExcelWriter) writePerFileSheets(f *excelize.File, records []domain.TestCaseRecord) error {
	var fileOrder []string
	byFile := make(map[string][]domain.TestCaseRecord)
	for _, rec := range records {
		if _, seen := byFile[rec.File]; !seen {
			fileOrder = append(fileOrder, rec.File)
		}
		byFile[rec.File] = append(byFile[rec.File], rec)
	}

	for _, file := range fileOrder {
		sheet := sheetName(f, file)
		if _, err := f.NewSheet(sheet); err != nil {
			return domain.NewError("write", file, 0, "failed to create sheet", err)
		}
		if err := w.fillSheet(f, sheet, byFile[file], false); err != nil {
			return err
		}
	}

	// Drop the workbook's default sheet now that the real ones exist.
	if len(fileOrder) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return domain.NewError("write", "", 0, "failed to remove default sheet", err)
		}
		f.SetActiveSheet(0)
	}
	return nil
}

// fillSheet writes the header and all record rows, then applies styling:
// bold header on a grey fill, wrapped text everywhere, fixed column widths.
func (w *ExcelWriter) fillSheet(f *excelize.File, sheet string, records []domain.TestCaseRecord, withFile bool) error {
	header := Columns
	if !withFile {
		header = Columns[1:]
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return domain.NewError("write", "", 0, "failed to write header row", err)
	}

	rowNum := 2
	for _, rec := range records {
		for _, row := range Rows(rec) {
			if !withFile {
				row = row[1:]
			}
			cell := fmt.Sprintf("A%d", rowNum)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return domain.NewError("write", rec.File, 0, "failed to write row", err)
			}
			rowNum++
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return domain.NewError("write", "", 0, "failed to resolve column name", err)
	}

	fill := w.opts.HeaderFill
	if fill == "" {
		fill = "D3D3D3"
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}},
		Alignment: &excelize.Alignment{WrapText: true},
	})
	if err != nil {
		return domain.NewError("write", "", 0, "failed to create header style", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return domain.NewError("write", "", 0, "failed to style header row", err)
	}

	if rowNum > 2 {
		bodyStyle, err := f.NewStyle(&excelize.Style{
			Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		})
		if err != nil {
			return domain.NewError("write", "", 0, "failed to create body style", err)
		}
		if err := f.SetCellStyle(sheet, "A2", fmt.Sprintf("%s%d", lastCol, rowNum-1), bodyStyle); err != nil {
			return domain.NewError("write", "", 0, "failed to style rows", err)
		}
	}

	width := w.opts.ColumnWidth
	if width <= 0 {
		width = 30
	}
	if err := f.SetColWidth(sheet, "A", lastCol, width); err != nil {
		return domain.NewError("write", "", 0, "failed to set column widths", err)
	}
	return nil
}

// Rows flattens a record into spreadsheet rows. The first row carries the
// file, function, description, and precondition; continuation rows leave all
// four blank, so row groups are recognizable by the blank Function column.
// A record without pairs still yields one row with blank step columns.
func Rows(rec domain.TestCaseRecord) [][]string {
	pairs := rec.Pairs
	if len(pairs) == 0 {
		pairs = []domain.StepPair{{}}
	}

	rows := make([][]string, 0, len(pairs))
	for i, p := range pairs {
		if i == 0 {
			rows = append(rows, []string{rec.File, rec.Function, rec.Description, rec.Precondition, p.Step, p.Expected})
			continue
		}
		rows = append(rows, []string{"", "", "", "", p.Step, p.Expected})
	}
	return rows
}

// sheetName derives a unique, Excel-safe sheet title from a file path.
// Excel rejects titles longer than 31 characters or containing :\/?*[].
func sheetName(f *excelize.File, file string) string {
	base := filepath.Base(file)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, name)
	if name == "" {
		name = "sheet"
	}
	if len(name) > 31 {
		name = name[:31]
	}

	candidate := name
	for n := 2; ; n++ {
		idx, _ := f.GetSheetIndex(candidate)
		if idx == -1 {
			return candidate
		}
		suffix := fmt.Sprintf("_%d", n)
		trimmed := name
		if len(trimmed)+len(suffix) > 31 {
			trimmed = trimmed[:31-len(suffix)]
		}
		candidate = trimmed + suffix
	}
}
