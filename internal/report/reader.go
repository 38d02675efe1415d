package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadSnapshot returns the formatted cell values of a written snapshot sheet,
// header first and the Average row last.
func ReadSnapshot(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}
