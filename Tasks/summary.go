package Tasks

import (
	"math"
	"strings"
)

// Category is the status bucket a task falls into.
type Category string

const (
	Completed    Category = "completed"
	Delayed      Category = "delayed"
	InProgress   Category = "in-progress"
	Unclassified Category = "unclassified"
)

// Status substrings as they appear in the status column.
const (
	StatusCompleted  = "مكتمل"
	StatusDelayed    = "متأخر"
	StatusInProgress = "جاري"
)

type classificationRule struct {
	substring string
	category  Category
}

// Rules are checked in order; the first match wins.
var classificationRules = []classificationRule{
	{StatusCompleted, Completed},
	{StatusDelayed, Delayed},
	{StatusInProgress, InProgress},
}

// Classify maps free status text to a Category. Text matching none of the
// known substrings is Unclassified.
func Classify(status string) Category {
	for _, rule := range classificationRules {
		if strings.Contains(status, rule.substring) {
			return rule.category
		}
	}
	return Unclassified
}

// Summary holds the aggregate counts shown on the dashboard.
type Summary struct {
	Total              int      `json:"totalTasks"`
	Completed          int      `json:"completedTasks"`
	Delayed            int      `json:"delayedTasks"`
	InProgress         int      `json:"inProgressTasks"`
	Unclassified       int      `json:"unclassifiedTasks"`
	Departments        []string `json:"departments"`
	ResponsiblePersons []string `json:"responsiblePersons"`
	CompletionRate     int      `json:"completionRate"`
}

// Count returns the number of tasks in category.
func (s Summary) Count(category Category) int {
	switch category {
	case Completed:
		return s.Completed
	case Delayed:
		return s.Delayed
	case InProgress:
		return s.InProgress
	default:
		return s.Unclassified
	}
}

// Summarize computes the dashboard summary in a single pass over tasks.
func Summarize(tasks []Record) Summary {
	summary := Summary{
		Total:              len(tasks),
		Departments:        []string{},
		ResponsiblePersons: []string{},
	}

	departments := newOrderedSet()
	persons := newOrderedSet()

	for _, task := range tasks {
		switch Classify(task.Get(FieldStatus)) {
		case Completed:
			summary.Completed++
		case Delayed:
			summary.Delayed++
		case InProgress:
			summary.InProgress++
		default:
			summary.Unclassified++
		}

		departments.add(task.Get(FieldDepartment))
		persons.add(task.Get(FieldResponsible))
	}

	summary.Departments = departments.values
	summary.ResponsiblePersons = persons.values
	summary.CompletionRate = Percent(summary.Completed, summary.Total)

	return summary
}

// Percent returns part/total as a whole percentage rounded half up,
// or 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return roundHalfUp(float64(part) / float64(total) * 100)
}

func roundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}

// orderedSet keeps distinct non-empty values in first-seen order.
type orderedSet struct {
	seen   map[string]struct{}
	values []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{}), values: []string{}}
}

func (s *orderedSet) add(value string) {
	if value == "" {
		return
	}
	if _, ok := s.seen[value]; ok {
		return
	}
	s.seen[value] = struct{}{}
	s.values = append(s.values, value)
}
