package Tasks

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Largest serial day number Excel can represent (9999-12-31).
const maxExcelSerial = 2958465

var dateLayouts = []string{
	defaultDateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/1/2",
	"2006/01/02",
}

// ParseRatio reads a progress or target ratio. Plain numbers are taken as
// ratios ("0.5"), percent text is scaled ("50%" -> 0.5). Anything else,
// including NaN and infinities, reads as 0. This is stricter than a
// JavaScript parseFloat, which would read "50%" as 50 and "0.5abc" as 0.5.
func ParseRatio(value string) float64 {
	value = strings.TrimSpace(value)
	scale := 1.0
	if strings.HasSuffix(value, "%") {
		value = strings.TrimSpace(strings.TrimSuffix(value, "%"))
		scale = 100
	}

	ratio, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0
	}
	return ratio / scale
}

// ParseDate reads ISO-style date text or an Excel serial day number.
// ok is false when the value matches none of them.
func ParseDate(value string) (t time.Time, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}

	serial, err := strconv.ParseFloat(value, 64)
	if err != nil || serial <= 0 || serial > maxExcelSerial {
		return time.Time{}, false
	}
	parsed, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// FormatDate renders a date cell as yyyy-mm-dd, falling back to the raw
// text when it cannot be parsed and to "-" when it is empty.
func FormatDate(value string) string {
	if isBlank(value) {
		return "-"
	}
	if parsed, ok := ParseDate(value); ok {
		return parsed.Format(defaultDateLayout)
	}
	return value
}

// ProgressPercent renders a ratio cell as a rounded whole percentage.
func ProgressPercent(value string) int {
	return roundHalfUp(ParseRatio(value) * 100)
}
