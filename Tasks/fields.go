package Tasks

import "strings"

// Column names of the source spreadsheet. They are matched byte for byte
// against the header row, including the double space in FieldStartDate.
const (
	FieldTitle        = "الموضوع/المهمة"
	FieldDepartment   = "الإدارة"
	FieldResponsible  = "المسؤول عن المهمه"
	FieldStartDate    = "تاريخ  بدء المهمه"
	FieldExpectedEnd  = "التاريخ المتوقع لانهاء المهمة"
	FieldActualEnd    = "التاريخ الفعلي لانتهاء المهمة"
	FieldStatus       = "الحالة"
	FieldProgress     = "نسبة التقدم"
	FieldTarget       = "النسبة المستهدفة"
	FieldNotes        = "ملاحظات (ان وجدت)"
	FieldDateMarker   = "تاريخ"
	UnknownLabel      = "غير محدد"
	NoNotesLabel      = "لا توجد ملاحظات"
	defaultDateLayout = "2006-01-02"
)

// Record is one normalized spreadsheet row keyed by header name.
// Every header of the dataset is present; blank cells hold "".
type Record map[string]string

// Get returns the value of field, or "" when the record has no such field.
func (r Record) Get(field string) string {
	if r == nil {
		return ""
	}
	return r[field]
}

// Title is a shortcut for the task title column.
func (r Record) Title() string {
	return r.Get(FieldTitle)
}

// Dataset is the normalized result handed from ingestion to the
// dashboard and table views.
type Dataset struct {
	Headers []string `json:"headers"`
	Tasks   []Record `json:"tasks"`
	Summary Summary  `json:"summary"`
}

// IsDateField reports whether values of field are compared as dates.
func IsDateField(field string) bool {
	return strings.Contains(field, FieldDateMarker)
}
