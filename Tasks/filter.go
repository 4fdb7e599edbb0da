package Tasks

import (
	"strings"

	"golang.org/x/text/cases"
)

// Criteria is the compound table filter. Empty strings and a zero
// MinProgress mean "any".
type Criteria struct {
	Search      string  `json:"search"`
	Department  string  `json:"department"`
	Status      string  `json:"status"`
	Responsible string  `json:"responsible"`
	StartFrom   string  `json:"startFrom"`
	StartTo     string  `json:"startTo"`
	MinProgress float64 `json:"minProgress"`
}

// IsZero reports whether no criterion is active.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Filter returns the tasks matching every active criterion, in input order.
func Filter(tasks []Record, criteria Criteria) []Record {
	folder := cases.Fold()
	search := folder.String(criteria.Search)

	filtered := make([]Record, 0, len(tasks))
	for _, task := range tasks {
		if matches(task, criteria, search, folder) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// Matches reports whether a single task passes criteria.
func Matches(task Record, criteria Criteria) bool {
	folder := cases.Fold()
	return matches(task, criteria, folder.String(criteria.Search), folder)
}

func matches(task Record, criteria Criteria, search string, folder cases.Caser) bool {
	// Search on the title, case-insensitive
	if search != "" && !strings.Contains(folder.String(task.Title()), search) {
		return false
	}

	if criteria.Department != "" && task.Get(FieldDepartment) != criteria.Department {
		return false
	}

	// Status matches by substring, like classification
	if criteria.Status != "" && !strings.Contains(task.Get(FieldStatus), criteria.Status) {
		return false
	}

	if criteria.Responsible != "" && task.Get(FieldResponsible) != criteria.Responsible {
		return false
	}

	// Start date bounds compare as text, which only orders ISO dates correctly
	startDate := task.Get(FieldStartDate)
	if criteria.StartFrom != "" && startDate < criteria.StartFrom {
		return false
	}
	if criteria.StartTo != "" && startDate > criteria.StartTo {
		return false
	}

	if criteria.MinProgress > 0 && ParseRatio(task.Get(FieldProgress)) < criteria.MinProgress {
		return false
	}

	return true
}
