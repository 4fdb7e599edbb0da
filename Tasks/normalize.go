package Tasks

import (
	"errors"
	"strings"
)

// ErrHeaderNotFound is returned when no row starts with the task title column.
var ErrHeaderNotFound = errors.New("header row not found")

// Normalize converts the raw grid of the first sheet into task records.
// Rows above the header row are discarded, and rows whose first two cells
// are both blank are treated as trailing filler and skipped.
func Normalize(grid [][]string) (Dataset, error) {
	headerIndex := findHeaderRow(grid)
	if headerIndex == -1 {
		return Dataset{}, ErrHeaderNotFound
	}

	headerRow := grid[headerIndex]
	headers := make([]string, 0, len(headerRow))
	columns := make([]int, 0, len(headerRow))
	for i, header := range headerRow {
		if isBlank(header) {
			continue
		}
		headers = append(headers, header)
		columns = append(columns, i)
	}

	tasks := make([]Record, 0, len(grid)-headerIndex-1)
	for _, row := range grid[headerIndex+1:] {
		if isBlankRow(row) {
			continue
		}

		task := make(Record, len(headers))
		for n, header := range headers {
			task[header] = cell(row, columns[n])
		}
		tasks = append(tasks, task)
	}

	return Dataset{
		Headers: headers,
		Tasks:   tasks,
		Summary: Summarize(tasks),
	}, nil
}

// findHeaderRow returns the index of the first row whose first cell is the
// task title column, or -1.
func findHeaderRow(grid [][]string) int {
	for i, row := range grid {
		if len(row) > 0 && row[0] == FieldTitle {
			return i
		}
	}
	return -1
}

func isBlankRow(row []string) bool {
	return isBlank(cell(row, 0)) && isBlank(cell(row, 1))
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// cell returns row[i], or "" for cells past the end of a short row.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
