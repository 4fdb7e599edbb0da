package Export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"TaskBoard/Tasks"
)

const (
	// FileName is the download name of the exported table.
	FileName  = "مهام_الهيئة.xlsx"
	SheetName = "المهام"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// TasksToExcel writes tasks as a single right-to-left sheet with one column
// per header, in header order.
func TasksToExcel(headers []string, tasks []Tasks.Record) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("error naming sheet: %v", err)
	}

	rightToLeft := true
	if err := f.SetSheetView(SheetName, -1, &excelize.ViewOptions{RightToLeft: &rightToLeft}); err != nil {
		return nil, fmt.Errorf("error setting sheet view: %v", err)
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("error writing header row: %v", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err == nil {
		f.SetRowStyle(SheetName, 1, 1, headerStyle)
	}

	for rowIndex, task := range tasks {
		values := make([]interface{}, len(headers))
		for colIndex, field := range headers {
			values[colIndex] = cellValue(field, task.Get(field))
		}

		cell, err := excelize.CoordinatesToCellName(1, rowIndex+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("error writing row %d: %v", rowIndex+2, err)
		}
	}

	if len(headers) > 0 {
		lastColumn, err := excelize.ColumnNumberToName(len(headers))
		if err != nil {
			return nil, err
		}
		f.SetColWidth(SheetName, "A", lastColumn, 22)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}

	return &buf, nil
}

// cellValue keeps ratio columns numeric and writes readable dates.
func cellValue(field, value string) interface{} {
	switch {
	case field == Tasks.FieldProgress || field == Tasks.FieldTarget:
		if ratio, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return ratio
		}
	case Tasks.IsDateField(field):
		if _, ok := Tasks.ParseDate(value); ok {
			return Tasks.FormatDate(value)
		}
	}
	return value
}
