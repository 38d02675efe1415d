package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"NiftySnapshot/internal/calculator"
	"NiftySnapshot/internal/model"
)

const (
	SheetName  = "Stock Data"
	ChartTitle = "NIFTY 50 - % Change"
	chartCell  = "F2"
	// two-decimal number format
	numFmtFixed2 = 2
)

// Header is the first row of every snapshot sheet.
var Header = []string{"Stock", "Open", "Current", "Change (%)"}

// Writer overwrites a single spreadsheet file with the latest snapshot.
// The file is rewritten in place; a crash mid-save can leave it truncated.
type Writer struct {
	Path string
	Now  func() time.Time
}

// NewWriter creates a Writer for the given output path.
func NewWriter(path string) *Writer {
	return &Writer{Path: path, Now: time.Now}
}

// NewSnapshot computes the summary average for rows.
func NewSnapshot(rows []model.StockRow, takenAt time.Time) (*model.Snapshot, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	changes := make([]decimal.Decimal, len(rows))
	for i, r := range rows {
		changes[i] = r.ChangePercent
	}
	avg, err := calculator.AveragePercent(changes)
	if err != nil {
		return nil, fmt.Errorf("average change: %w", err)
	}
	return &model.Snapshot{Rows: rows, Average: avg, TakenAt: takenAt}, nil
}

// WriteSnapshot builds the snapshot for rows and overwrites the output file.
// On a WriteFault the computed snapshot is still returned.
func (w *Writer) WriteSnapshot(rows []model.StockRow) (*model.Snapshot, error) {
	snap, err := NewSnapshot(rows, w.Now())
	if err != nil {
		return nil, err
	}
	if err := w.Write(snap); err != nil {
		return snap, err
	}
	return snap, nil
}

// Write renders snap into a new workbook and saves it over the output file.
func (w *Writer) Write(snap *model.Snapshot) error {
	f, err := buildWorkbook(snap)
	if err != nil {
		return &WriteFault{Path: w.Path, Err: err}
	}
	defer f.Close()

	if err := f.SaveAs(w.Path); err != nil {
		return &WriteFault{Path: w.Path, Err: err}
	}
	return nil
}

func buildWorkbook(snap *model.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := fillSheet(f, snap); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.AddChart(SheetName, chartCell, changeChart(len(snap.Rows))); err != nil {
		f.Close()
		return nil, fmt.Errorf("add chart: %w", err)
	}
	return f, nil
}

func fillSheet(f *excelize.File, snap *model.Snapshot) error {
	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range snap.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			r.Symbol,
			r.Open.InexactFloat64(),
			r.Current.InexactFloat64(),
			r.ChangePercent.InexactFloat64(),
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %s: %w", r.Symbol, err)
		}
	}

	// Open and Current stay blank on the summary row.
	avgRow := len(snap.Rows) + 2
	if err := f.SetCellValue(SheetName, fmt.Sprintf("A%d", avgRow), "Average"); err != nil {
		return fmt.Errorf("write average: %w", err)
	}
	if err := f.SetCellValue(SheetName, fmt.Sprintf("D%d", avgRow), snap.Average.InexactFloat64()); err != nil {
		return fmt.Errorf("write average: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: numFmtFixed2})
	if err != nil {
		return fmt.Errorf("number style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "B2", fmt.Sprintf("D%d", avgRow), style); err != nil {
		return fmt.Errorf("apply number style: %w", err)
	}
	return nil
}

// changeChart plots the Change (%) column against the Stock column for the
// n data rows. The Average row is excluded.
func changeChart(n int) *excelize.Chart {
	ref := func(col string) string {
		return fmt.Sprintf("'%s'!$%s$2:$%s$%d", SheetName, col, col, n+1)
	}
	return &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$D$1", SheetName),
			Categories: ref("A"),
			Values:     ref("D"),
		}},
		Title:     []excelize.RichTextRun{{Text: ChartTitle}},
		Legend:    excelize.ChartLegend{Position: "none"},
		XAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Stock"}}},
		YAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Change (%)"}}},
		Dimension: excelize.ChartDimension{Width: 756, Height: 454},
	}
}
