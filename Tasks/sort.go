package Tasks

import (
	"fmt"
	"sort"
	"strings"
)

// Direction is the sort order of a SortKey.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection reads "asc" or "desc"; anything else is Ascending.
func ParseDirection(value string) Direction {
	if strings.EqualFold(strings.TrimSpace(value), string(Descending)) {
		return Descending
	}
	return Ascending
}

// SortKey selects the table sort column. The zero value means unsorted.
type SortKey struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// IsZero reports whether no sort is active.
func (k SortKey) IsZero() bool {
	return k.Field == ""
}

// Toggle returns the key after the user picks field: the same field flips
// direction, a new field starts ascending.
func (k SortKey) Toggle(field string) SortKey {
	if k.Field == field && field != "" {
		if k.Direction == Descending {
			return SortKey{Field: field, Direction: Ascending}
		}
		return SortKey{Field: field, Direction: Descending}
	}
	return SortKey{Field: field, Direction: Ascending}
}

func (k SortKey) String() string {
	if k.IsZero() {
		return "unsorted"
	}
	return fmt.Sprintf("%s %s", k.Field, k.Direction)
}

// Sort returns a sorted copy of tasks. The sort is stable, so records that
// compare equal keep their input order in either direction.
func Sort(tasks []Record, key SortKey) []Record {
	sorted := make([]Record, len(tasks))
	copy(sorted, tasks)
	if key.IsZero() {
		return sorted
	}

	compare := comparatorFor(key.Field)
	sign := 1
	if key.Direction == Descending {
		sign = -1
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sign*compare(sorted[i].Get(key.Field), sorted[j].Get(key.Field)) < 0
	})
	return sorted
}

// comparatorFor picks date, numeric or text comparison from the field name.
func comparatorFor(field string) func(a, b string) int {
	switch {
	case IsDateField(field):
		return compareDates
	case field == FieldProgress:
		return compareRatios
	default:
		return strings.Compare
	}
}

// compareDates orders unparseable dates as the zero time, before every
// valid date.
func compareDates(a, b string) int {
	timeA, _ := ParseDate(a)
	timeB, _ := ParseDate(b)
	return timeA.Compare(timeB)
}

func compareRatios(a, b string) int {
	ratioA, ratioB := ParseRatio(a), ParseRatio(b)
	switch {
	case ratioA < ratioB:
		return -1
	case ratioA > ratioB:
		return 1
	default:
		return 0
	}
}
