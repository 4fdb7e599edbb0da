package Tasks_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TaskBoard/Tasks"
)

func Test_StatusBreakdown(t *testing.T) {
	t.Parallel()

	summary := Tasks.Summary{Total: 8, Completed: 1, Delayed: 2, InProgress: 5}

	want := []Tasks.StatusShare{
		{Category: Tasks.Completed, Label: "المكتملة", Count: 1, Percent: 13},
		{Category: Tasks.Delayed, Label: "المتأخرة", Count: 2, Percent: 25},
		{Category: Tasks.InProgress, Label: "قيد العمل", Count: 5, Percent: 63},
	}
	if diff := cmp.Diff(want, Tasks.StatusBreakdown(summary)); diff != "" {
		t.Fatalf("breakdown mismatch (-want +got):\n%s", diff)
	}

	summary.InProgress, summary.Unclassified = 4, 1
	shares := Tasks.StatusBreakdown(summary)
	require.Len(t, shares, 4)
	assert.Equal(t, Tasks.StatusShare{Category: Tasks.Unclassified, Label: Tasks.UnknownLabel, Count: 1, Percent: 13}, shares[3])
}

func Test_StatusBreakdown_Empty_Dataset(t *testing.T) {
	t.Parallel()

	for _, share := range Tasks.StatusBreakdown(Tasks.Summary{}) {
		assert.Zero(t, share.Count)
		assert.Zero(t, share.Percent)
	}
}

func Test_DepartmentCounts_Groups_Blank_Departments(t *testing.T) {
	t.Parallel()

	tasks := []Tasks.Record{
		task("a", "التقنية", "", "", ""),
		task("b", "", "", "", ""),
		task("c", "المالية", "", "", ""),
		task("d", "التقنية", "", "", ""),
		{Tasks.FieldTitle: "e"},
	}

	want := []Tasks.ChartPoint{
		{Name: "التقنية", Value: 2},
		{Name: Tasks.UnknownLabel, Value: 2},
		{Name: "المالية", Value: 1},
	}
	if diff := cmp.Diff(want, Tasks.DepartmentCounts(tasks)); diff != "" {
		t.Fatalf("department counts mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, Tasks.DepartmentCounts(nil))
}

func Test_TruncateNames(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, 13)
	for i := 1; i <= 13; i++ {
		names = append(names, fmt.Sprintf("person-%d", i))
	}

	truncated := Tasks.TruncateNames(names, 10)
	assert.Len(t, truncated.Names, 10)
	assert.Equal(t, 3, truncated.Remaining)
	assert.Equal(t, "... و 3 آخرين", truncated.More)

	short := Tasks.TruncateNames(names[:10], 10)
	assert.Len(t, short.Names, 10)
	assert.Zero(t, short.Remaining)
	assert.Empty(t, short.More)
}

func Test_Preview(t *testing.T) {
	t.Parallel()

	assert.Equal(t, titles(numbered(5)), titles(Tasks.Preview(numbered(12), 5)))
	assert.Len(t, Tasks.Preview(numbered(3), 5), 3)
}

func Test_BadgeFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status string
		want   Tasks.Badge
	}{
		{status: "مكتمل", want: Tasks.Badge{Label: "مكتمل", Class: "status-badge status-completed"}},
		{status: "متأخر", want: Tasks.Badge{Label: "متأخر", Class: "status-badge status-delayed"}},
		{status: "جاري", want: Tasks.Badge{Label: "جاري", Class: "status-badge status-in-progress"}},
		{status: "معلق", want: Tasks.Badge{Label: "معلق", Class: "status-badge status-in-progress"}},
		{status: "", want: Tasks.Badge{Label: Tasks.UnknownLabel, Class: "status-badge"}},
	}

	for _, testCase := range testCases {
		testCase := testCase
		assert.Equal(t, testCase.want, Tasks.BadgeFor(testCase.status), "status %q", testCase.status)
	}
}

func Test_RowsFor_Formats_Cells(t *testing.T) {
	t.Parallel()

	record := task("Server migration", "", "خالد", "متأخر", "0.29")
	record[Tasks.FieldStartDate] = "45292"

	rows := Tasks.RowsFor([]Tasks.Record{record, {}}, 50)
	require.Len(t, rows, 2)

	assert.Equal(t, Tasks.Row{
		Index:       50,
		Title:       "Server migration",
		Department:  "-",
		Responsible: "خالد",
		StartDate:   "2024-01-01",
		ExpectedEnd: "-",
		Badge:       Tasks.Badge{Label: "متأخر", Class: "status-badge status-delayed"},
		Progress:    29,
	}, rows[0])
	assert.Equal(t, 51, rows[1].Index)
	assert.Equal(t, "-", rows[1].Title)
}

func Test_Details(t *testing.T) {
	t.Parallel()

	record := task("Budget Review", "المالية", "نورة", "مكتمل", "1")
	record[Tasks.FieldTarget] = "0.8"

	details := Tasks.Details(record)
	require.Len(t, details, 10)

	values := make(map[string]string, len(details))
	for _, detail := range details {
		values[detail.Label] = detail.Value
	}

	assert.Equal(t, "Budget Review", values[Tasks.FieldTitle])
	assert.Equal(t, "100%", values[Tasks.FieldProgress])
	assert.Equal(t, "80%", values[Tasks.FieldTarget])
	assert.Equal(t, "-", values[Tasks.FieldActualEnd])
	assert.Equal(t, Tasks.NoNotesLabel, values[Tasks.FieldNotes])
	assert.Equal(t, Tasks.UnknownLabel, Tasks.Details(Tasks.Record{})[6].Value)
}
