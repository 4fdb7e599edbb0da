package Tasks_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"TaskBoard/Tasks"
)

func numbered(n int) []Tasks.Record {
	records := make([]Tasks.Record, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, Tasks.Record{Tasks.FieldTitle: fmt.Sprintf("task-%02d", i)})
	}
	return records
}

func Test_PageCount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		total int
		size  int
		want  int
	}{
		{total: 0, size: 25, want: 1},
		{total: 1, size: 25, want: 1},
		{total: 25, size: 25, want: 1},
		{total: 26, size: 25, want: 2},
		{total: 100, size: 10, want: 10},
		{total: 101, size: 10, want: 11},
		{total: 500, size: Tasks.AllRows, want: 1},
	}

	for _, testCase := range testCases {
		testCase := testCase
		assert.Equal(t, testCase.want, Tasks.PageCount(testCase.total, testCase.size),
			"total=%d size=%d", testCase.total, testCase.size)
	}
}

func Test_Page_Concatenation_Covers_Sequence(t *testing.T) {
	t.Parallel()

	for _, total := range []int{0, 1, 7, 25, 26, 53} {
		for _, size := range []int{1, 3, 10, 25, Tasks.AllRows} {
			records := numbered(total)

			var joined []Tasks.Record
			for n := 1; n <= Tasks.PageCount(total, size); n++ {
				joined = append(joined, Tasks.Page(records, n, size)...)
			}

			if diff := cmp.Diff(titles(records), titles(joined)); diff != "" {
				t.Fatalf("total=%d size=%d (-want +got):\n%s", total, size, diff)
			}
		}
	}
}

func Test_Page_Out_Of_Range_Is_Empty(t *testing.T) {
	t.Parallel()

	records := numbered(10)

	assert.Empty(t, Tasks.Page(records, 0, 5))
	assert.Empty(t, Tasks.Page(records, 3, 5))
	assert.Empty(t, Tasks.Page(records, -1, Tasks.AllRows))
	assert.Len(t, Tasks.Page(records, 2, 5), 5)
	assert.Len(t, Tasks.Page(records, 1, Tasks.AllRows), 10)
}

func Test_ParsePageSize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		size  int
		ok    bool
	}{
		{input: "25", size: 25, ok: true},
		{input: " 50 ", size: 50, ok: true},
		{input: "all", size: Tasks.AllRows, ok: true},
		{input: "ALL", size: Tasks.AllRows, ok: true},
		{input: "0", ok: false},
		{input: "-5", ok: false},
		{input: "many", ok: false},
		{input: "", ok: false},
	}

	for _, testCase := range testCases {
		testCase := testCase
		size, ok := Tasks.ParsePageSize(testCase.input)
		assert.Equal(t, testCase.ok, ok, "input %q", testCase.input)
		if testCase.ok {
			assert.Equal(t, testCase.size, size, "input %q", testCase.input)
		}
	}
}

func Test_ShowControls_And_PageWindow(t *testing.T) {
	t.Parallel()

	assert.False(t, Tasks.ShowControls(100, Tasks.AllRows))
	assert.False(t, Tasks.ShowControls(25, 25))
	assert.True(t, Tasks.ShowControls(26, 25))

	assert.Equal(t, Tasks.Window{Start: 1, End: 3}, Tasks.PageWindow(1, 10))
	assert.Equal(t, Tasks.Window{Start: 3, End: 7}, Tasks.PageWindow(5, 10))
	assert.Equal(t, Tasks.Window{Start: 8, End: 10}, Tasks.PageWindow(10, 10))
	assert.Equal(t, Tasks.Window{Start: 1, End: 1}, Tasks.PageWindow(1, 1))
}
