package Tasks

import (
	"strconv"

	"golang.org/x/text/cases"
)

// StatusShare is one status counter card with its share of all tasks.
type StatusShare struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Count    int      `json:"count"`
	Percent  int      `json:"percent"`
}

// Category labels as shown on the status chart.
var categoryLabels = map[Category]string{
	Completed:    "المكتملة",
	Delayed:      "المتأخرة",
	InProgress:   "قيد العمل",
	Unclassified: UnknownLabel,
}

// StatusBreakdown returns the counter cards in chart order. The
// unclassified card is only included when some task is unclassified.
func StatusBreakdown(summary Summary) []StatusShare {
	categories := []Category{Completed, Delayed, InProgress}
	if summary.Unclassified > 0 {
		categories = append(categories, Unclassified)
	}

	shares := make([]StatusShare, 0, len(categories))
	for _, category := range categories {
		count := summary.Count(category)
		shares = append(shares, StatusShare{
			Category: category,
			Label:    categoryLabels[category],
			Count:    count,
			Percent:  Percent(count, summary.Total),
		})
	}
	return shares
}

// ChartPoint is one bar or slice of a chart series.
type ChartPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DepartmentCounts counts tasks per department in first-seen order. Tasks
// without a department are grouped under UnknownLabel.
func DepartmentCounts(tasks []Record) []ChartPoint {
	index := make(map[string]int)
	points := []ChartPoint{}
	for _, task := range tasks {
		department := task.Get(FieldDepartment)
		if department == "" {
			department = UnknownLabel
		}
		if i, ok := index[department]; ok {
			points[i].Value++
			continue
		}
		index[department] = len(points)
		points = append(points, ChartPoint{Name: department, Value: 1})
	}
	return points
}

// NameList is a list truncated for display.
type NameList struct {
	Names     []string `json:"names"`
	Remaining int      `json:"remaining"`
	More      string   `json:"more,omitempty"`
}

// TruncateNames keeps the first limit names and reports how many were cut.
func TruncateNames(names []string, limit int) NameList {
	if limit < 0 || len(names) <= limit {
		return NameList{Names: names}
	}
	remaining := len(names) - limit
	return NameList{
		Names:     names[:limit],
		Remaining: remaining,
		More:      "... و " + strconv.Itoa(remaining) + " آخرين",
	}
}

// Preview returns at most limit leading tasks.
func Preview(tasks []Record, limit int) []Record {
	if len(tasks) <= limit {
		return tasks
	}
	return tasks[:limit]
}

// Badge is the status pill shown in table rows.
type Badge struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

// BadgeFor styles a status text. Anything that is neither completed nor
// delayed is drawn as in progress.
func BadgeFor(status string) Badge {
	badge := Badge{Label: status, Class: "status-badge"}
	if status == "" {
		badge.Label = UnknownLabel
		return badge
	}

	switch Classify(status) {
	case Completed:
		badge.Class += " status-completed"
	case Delayed:
		badge.Class += " status-delayed"
	default:
		badge.Class += " status-in-progress"
	}
	return badge
}

// Row is a table row prepared for display.
type Row struct {
	Index       int       `json:"index"`
	Title       string    `json:"title"`
	TitleParts  []Segment `json:"titleParts,omitempty"`
	Department  string    `json:"department"`
	Responsible string    `json:"responsible"`
	StartDate   string    `json:"startDate"`
	ExpectedEnd string    `json:"expectedEnd"`
	Badge       Badge     `json:"badge"`
	Progress    int       `json:"progress"`
}

// RowsFor prepares tasks for display. offset is the position of the first
// task within the filtered sequence, used to address task details.
func RowsFor(tasks []Record, offset int) []Row {
	rows := make([]Row, 0, len(tasks))
	for i, task := range tasks {
		rows = append(rows, Row{
			Index:       offset + i,
			Title:       orDash(task.Title()),
			Department:  orDash(task.Get(FieldDepartment)),
			Responsible: orDash(task.Get(FieldResponsible)),
			StartDate:   FormatDate(task.Get(FieldStartDate)),
			ExpectedEnd: FormatDate(task.Get(FieldExpectedEnd)),
			Badge:       BadgeFor(task.Get(FieldStatus)),
			Progress:    ProgressPercent(task.Get(FieldProgress)),
		})
	}
	return rows
}

// HighlightRows returns a copy of rows with term marked in every title.
func HighlightRows(rows []Row, term string) []Row {
	folder := cases.Fold()
	highlighted := make([]Row, len(rows))
	for i, row := range rows {
		row.TitleParts = highlight(row.Title, term, folder)
		highlighted[i] = row
	}
	return highlighted
}

// Detail is one labelled line of the task detail view.
type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Details lists every known field of task for the detail view.
func Details(task Record) []Detail {
	notes := task.Get(FieldNotes)
	if notes == "" {
		notes = NoNotesLabel
	}

	return []Detail{
		{Label: FieldTitle, Value: orDash(task.Title())},
		{Label: FieldDepartment, Value: orDash(task.Get(FieldDepartment))},
		{Label: FieldResponsible, Value: orDash(task.Get(FieldResponsible))},
		{Label: FieldStartDate, Value: FormatDate(task.Get(FieldStartDate))},
		{Label: FieldExpectedEnd, Value: FormatDate(task.Get(FieldExpectedEnd))},
		{Label: FieldActualEnd, Value: FormatDate(task.Get(FieldActualEnd))},
		{Label: FieldStatus, Value: BadgeFor(task.Get(FieldStatus)).Label},
		{Label: FieldProgress, Value: strconv.Itoa(ProgressPercent(task.Get(FieldProgress))) + "%"},
		{Label: FieldTarget, Value: strconv.Itoa(ProgressPercent(task.Get(FieldTarget))) + "%"},
		{Label: FieldNotes, Value: notes},
	}
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
