package Tasks

import (
	"strconv"
	"strings"
)

// AllRows is the page size that puts every record on a single page.
const AllRows = 0

// DefaultPageSize is the table page size before the user picks one.
const DefaultPageSize = 25

// ParsePageSize reads a page size selection: "all" or a positive integer.
// ok is false for anything else.
func ParsePageSize(value string) (size int, ok bool) {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "all") {
		return AllRows, true
	}
	size, err := strconv.Atoi(value)
	if err != nil || size <= 0 {
		return 0, false
	}
	return size, true
}

// PageCount returns the number of pages needed for total records, never
// less than one.
func PageCount(total, size int) int {
	if size <= AllRows || total <= size {
		return 1
	}
	return (total + size - 1) / size
}

// Page returns the records of page n (1-based). Pages outside
// [1, PageCount] are empty.
func Page(tasks []Record, n, size int) []Record {
	if n < 1 || n > PageCount(len(tasks), size) {
		return []Record{}
	}
	if size <= AllRows {
		return tasks
	}

	startIndex := (n - 1) * size
	endIndex := startIndex + size
	if startIndex > len(tasks) {
		startIndex = len(tasks)
	}
	if endIndex > len(tasks) {
		endIndex = len(tasks)
	}
	return tasks[startIndex:endIndex]
}

// ShowControls reports whether pagination controls are needed at all.
func ShowControls(total, size int) bool {
	return size > AllRows && size < total
}

// Window is the range of page numbers offered around the current page.
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// PageWindow returns up to two pages either side of current.
func PageWindow(current, count int) Window {
	start := current - 2
	if start < 1 {
		start = 1
	}
	end := current + 2
	if end > count {
		end = count
	}
	return Window{Start: start, End: end}
}
