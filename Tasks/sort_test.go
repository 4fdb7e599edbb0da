package Tasks_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TaskBoard/Tasks"
)

func Test_Sort_Example_Descending_By_Progress(t *testing.T) {
	t.Parallel()

	dataset, err := Tasks.Normalize(exampleGrid())
	require.NoError(t, err)

	sorted := Tasks.Sort(dataset.Tasks, Tasks.SortKey{Field: Tasks.FieldProgress, Direction: Tasks.Descending})
	assert.Equal(t, []string{"Task A", "Task B"}, titles(sorted))
}

func sortFixture() []Tasks.Record {
	records := []Tasks.Record{
		task("Charlie", "ج", "", "", "0.5"),
		task("Alpha", "أ", "", "", "0.05"),
		task("Delta", "د", "", "", "1"),
		task("Bravo", "ب", "", "", "0.25"),
	}
	dates := []string{"2024-03-01", "2023-12-31", "45292", "2024-01-15"}
	for i, date := range dates {
		records[i][Tasks.FieldStartDate] = date
	}
	return records
}

func Test_Sort_By_Field_Type(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		field string
		want  []string
	}{
		{name: "Text", field: Tasks.FieldTitle, want: []string{"Alpha", "Bravo", "Charlie", "Delta"}},
		{name: "Numeric", field: Tasks.FieldProgress, want: []string{"Alpha", "Bravo", "Charlie", "Delta"}},
		// 45292 is the Excel serial for 2024-01-01
		{name: "Date", field: Tasks.FieldStartDate, want: []string{"Alpha", "Delta", "Bravo", "Charlie"}},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			sorted := Tasks.Sort(sortFixture(), Tasks.SortKey{Field: testCase.field, Direction: Tasks.Ascending})
			assert.Equal(t, testCase.want, titles(sorted))
		})
	}
}

func Test_Sort_Descending_Is_Reversed_Ascending(t *testing.T) {
	t.Parallel()

	fields := []string{Tasks.FieldTitle, Tasks.FieldDepartment, Tasks.FieldProgress, Tasks.FieldStartDate}
	for _, field := range fields {
		ascending := titles(Tasks.Sort(sortFixture(), Tasks.SortKey{Field: field, Direction: Tasks.Ascending}))
		descending := titles(Tasks.Sort(sortFixture(), Tasks.SortKey{Field: field, Direction: Tasks.Descending}))

		slices.Reverse(ascending)
		if diff := cmp.Diff(ascending, descending); diff != "" {
			t.Fatalf("field %q: reversed ascending != descending (-asc +desc):\n%s", field, diff)
		}
	}
}

func Test_Sort_Keeps_Input_Order_For_Ties(t *testing.T) {
	t.Parallel()

	records := []Tasks.Record{
		task("first", "المالية", "", "", "0.5"),
		task("second", "التقنية", "", "", "0.5"),
		task("third", "المالية", "", "", "0.1"),
		task("fourth", "المالية", "", "", "0.5"),
	}

	ascending := Tasks.Sort(records, Tasks.SortKey{Field: Tasks.FieldProgress, Direction: Tasks.Ascending})
	assert.Equal(t, []string{"third", "first", "second", "fourth"}, titles(ascending))

	descending := Tasks.Sort(records, Tasks.SortKey{Field: Tasks.FieldProgress, Direction: Tasks.Descending})
	assert.Equal(t, []string{"first", "second", "fourth", "third"}, titles(descending))
}

func Test_Sort_Unparseable_Dates_Sort_First(t *testing.T) {
	t.Parallel()

	records := []Tasks.Record{
		{Tasks.FieldTitle: "dated", Tasks.FieldExpectedEnd: "2024-05-01"},
		{Tasks.FieldTitle: "blank", Tasks.FieldExpectedEnd: ""},
		{Tasks.FieldTitle: "garbage", Tasks.FieldExpectedEnd: "soon"},
	}

	sorted := Tasks.Sort(records, Tasks.SortKey{Field: Tasks.FieldExpectedEnd, Direction: Tasks.Ascending})
	assert.Equal(t, []string{"blank", "garbage", "dated"}, titles(sorted))
}

func Test_Sort_Returns_Copy(t *testing.T) {
	t.Parallel()

	records := sortFixture()
	unsorted := Tasks.Sort(records, Tasks.SortKey{})
	assert.Equal(t, titles(records), titles(unsorted))

	_ = Tasks.Sort(records, Tasks.SortKey{Field: Tasks.FieldTitle, Direction: Tasks.Descending})
	assert.Equal(t, []string{"Charlie", "Alpha", "Delta", "Bravo"}, titles(records))
}

func Test_SortKey_Toggle(t *testing.T) {
	t.Parallel()

	var key Tasks.SortKey

	key = key.Toggle(Tasks.FieldTitle)
	assert.Equal(t, Tasks.SortKey{Field: Tasks.FieldTitle, Direction: Tasks.Ascending}, key)

	key = key.Toggle(Tasks.FieldTitle)
	assert.Equal(t, Tasks.SortKey{Field: Tasks.FieldTitle, Direction: Tasks.Descending}, key)

	key = key.Toggle(Tasks.FieldTitle)
	assert.Equal(t, Tasks.Ascending, key.Direction)

	key = key.Toggle(Tasks.FieldTitle).Toggle(Tasks.FieldStatus)
	assert.Equal(t, Tasks.SortKey{Field: Tasks.FieldStatus, Direction: Tasks.Ascending}, key)
}

func Test_SortKey_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unsorted", Tasks.SortKey{}.String())
	assert.Equal(t, Tasks.FieldProgress+" desc", Tasks.SortKey{Field: Tasks.FieldProgress, Direction: Tasks.Descending}.String())
}

func Test_ParseDate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		want  string
		ok    bool
	}{
		{input: "2024-02-29", want: "2024-02-29", ok: true},
		{input: "2024-02-29T10:30:00Z", want: "2024-02-29", ok: true},
		{input: "2024-02-29 10:30:00", want: "2024-02-29", ok: true},
		{input: "2024/2/9", want: "2024-02-09", ok: true},
		{input: "45292", want: "2024-01-01", ok: true},
		{input: "", ok: false},
		{input: "-3", ok: false},
		{input: "next week", ok: false},
	}

	for _, testCase := range testCases {
		testCase := testCase
		parsed, ok := Tasks.ParseDate(testCase.input)
		require.Equal(t, testCase.ok, ok, "input %q", testCase.input)
		if ok {
			assert.Equal(t, testCase.want, parsed.Format("2006-01-02"), "input %q", testCase.input)
		}
	}

	assert.Equal(t, "-", Tasks.FormatDate(""))
	assert.Equal(t, "next week", Tasks.FormatDate("next week"))
	assert.Equal(t, "2024-01-01", Tasks.FormatDate("45292"))
}
