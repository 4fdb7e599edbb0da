package Ingest

import (
	"math"
	"strconv"
)

var sizeUnits = []string{"بايت", "كيلوبايت", "ميجابايت", "جيجابايت"}

// FormatFileSize renders a byte count in Arabic units with at most two
// decimals, e.g. "1.5 كيلوبايت".
func FormatFileSize(size int64) string {
	if size <= 0 {
		return "0 " + sizeUnits[0]
	}

	const k = 1024
	unit := int(math.Floor(math.Log(float64(size)) / math.Log(k)))
	if unit >= len(sizeUnits) {
		unit = len(sizeUnits) - 1
	}

	value := float64(size) / math.Pow(k, float64(unit))
	value = math.Round(value*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[unit]
}
