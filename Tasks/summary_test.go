package Tasks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TaskBoard/Tasks"
)

func task(title, department, responsible, status, progress string) Tasks.Record {
	return Tasks.Record{
		Tasks.FieldTitle:       title,
		Tasks.FieldDepartment:  department,
		Tasks.FieldResponsible: responsible,
		Tasks.FieldStatus:      status,
		Tasks.FieldProgress:    progress,
	}
}

func Test_Classify_Uses_First_Matching_Rule(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status string
		want   Tasks.Category
	}{
		{status: "مكتمل", want: Tasks.Completed},
		{status: "مكتمل بعد تأخير", want: Tasks.Completed},
		{status: "متأخر", want: Tasks.Delayed},
		{status: "جاري العمل", want: Tasks.InProgress},
		{status: "جاري ومتأخر", want: Tasks.Delayed},
		{status: "ملغى", want: Tasks.Unclassified},
		{status: "", want: Tasks.Unclassified},
	}

	for _, testCase := range testCases {
		testCase := testCase
		assert.Equal(t, testCase.want, Tasks.Classify(testCase.status), "status %q", testCase.status)
	}
}

func Test_Summarize_Counts_Statuses_And_Distinct_Names(t *testing.T) {
	t.Parallel()

	tasks := []Tasks.Record{
		task("A", "الموارد", "سارة", "مكتمل", "1"),
		task("B", "التقنية", "خالد", "جاري", "0.5"),
		task("C", "الموارد", "", "متأخر", "0.1"),
		task("D", "", "سارة", "ملغى", "0"),
		task("E", "المالية", "نورة", "مكتمل", "1"),
	}

	summary := Tasks.Summarize(tasks)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 2, summary.Completed)
	assert.Equal(t, 1, summary.Delayed)
	assert.Equal(t, 1, summary.InProgress)
	assert.Equal(t, 1, summary.Unclassified)
	assert.Equal(t, []string{"الموارد", "التقنية", "المالية"}, summary.Departments)
	assert.Equal(t, []string{"سارة", "خالد", "نورة"}, summary.ResponsiblePersons)
	assert.Equal(t, 40, summary.CompletionRate)
}

func Test_Summarize_Totals_Invariant(t *testing.T) {
	t.Parallel()

	statuses := [][]string{
		{},
		{"مكتمل", "متأخر", "جاري"},
		{"مكتمل", "ملغى", "", "جاري"},
		{"?", "?", "?"},
	}

	for _, list := range statuses {
		tasks := make([]Tasks.Record, 0, len(list))
		allKnown := true
		for _, status := range list {
			tasks = append(tasks, task("t", "", "", status, ""))
			if Tasks.Classify(status) == Tasks.Unclassified {
				allKnown = false
			}
		}

		summary := Tasks.Summarize(tasks)
		known := summary.Completed + summary.Delayed + summary.InProgress

		assert.LessOrEqual(t, known, summary.Total)
		assert.Equal(t, allKnown, known == summary.Total, "statuses %q", list)
		assert.Equal(t, summary.Total, known+summary.Unclassified)
	}
}

func Test_Summarize_Completion_Rate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{name: "Empty", completed: 0, total: 0, want: 0},
		{name: "None", completed: 0, total: 3, want: 0},
		{name: "All", completed: 4, total: 4, want: 100},
		{name: "HalfUp", completed: 1, total: 8, want: 13},
		{name: "RoundDown", completed: 1, total: 3, want: 33},
		{name: "RoundUp", completed: 2, total: 3, want: 67},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			tasks := make([]Tasks.Record, 0, testCase.total)
			for i := 0; i < testCase.total; i++ {
				status := "جاري"
				if i < testCase.completed {
					status = "مكتمل"
				}
				tasks = append(tasks, task("t", "", "", status, ""))
			}

			summary := Tasks.Summarize(tasks)
			assert.Equal(t, testCase.want, summary.CompletionRate)
			assert.GreaterOrEqual(t, summary.CompletionRate, 0)
			assert.LessOrEqual(t, summary.CompletionRate, 100)
		})
	}
}

func Test_Summarize_Empty_Input_Has_Empty_Lists(t *testing.T) {
	t.Parallel()

	summary := Tasks.Summarize(nil)

	require.NotNil(t, summary.Departments)
	require.NotNil(t, summary.ResponsiblePersons)
	assert.Equal(t, Tasks.Summary{Departments: []string{}, ResponsiblePersons: []string{}}, summary)
}

func Test_Summarize_Tolerates_Missing_Fields(t *testing.T) {
	t.Parallel()

	summary := Tasks.Summarize([]Tasks.Record{{}, nil, {Tasks.FieldStatus: "مكتمل"}})

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 2, summary.Unclassified)
	assert.Empty(t, summary.Departments)
}
