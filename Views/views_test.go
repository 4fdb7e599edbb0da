package Views_test

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TaskBoard/Tasks"
	"TaskBoard/Views"
)

func render(t *testing.T, page Views.PrintPage) *goquery.Document {
	t.Helper()

	engine := Views.Engine()
	require.NoError(t, engine.Load())

	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, Views.PrintTemplate, page))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func Test_Print_Renders_Rows(t *testing.T) {
	t.Parallel()

	records := []Tasks.Record{
		{Tasks.FieldTitle: "Budget <review>", Tasks.FieldStatus: "مكتمل", Tasks.FieldProgress: "1"},
		{Tasks.FieldTitle: "Hiring", Tasks.FieldStatus: "جاري", Tasks.FieldProgress: "0.4"},
	}
	rows := Tasks.HighlightRows(Tasks.RowsFor(records, 0), "review")

	doc := render(t, Views.PrintPage{
		Title:    "تقرير المهام",
		Search:   "review",
		Total:    5,
		Filtered: 2,
		Columns:  Views.PrintColumns,
		Rows:     rows,
	})

	assert.Equal(t, "rtl", doc.Find("html").AttrOr("dir", ""))
	assert.Equal(t, len(Views.PrintColumns), doc.Find("#tasks thead th").Length())
	assert.Equal(t, "2 / 5", doc.Find(".count").Text())

	body := doc.Find("#tasks tbody tr")
	require.Equal(t, 2, body.Length())

	first := body.First()
	assert.Equal(t, "Budget <review>", first.Find("td.title").Text())
	assert.Equal(t, "review", first.Find(".highlight").Text())
	assert.Equal(t, "100%", first.Find("td.progress").Text())
	assert.True(t, first.Find(".status-badge").HasClass("status-completed"))

	second := body.Eq(1)
	assert.Equal(t, "Hiring", second.Find("td.title").Text())
	assert.Equal(t, 0, second.Find(".highlight").Length())
	assert.Equal(t, "40%", second.Find("td.progress").Text())
}

func Test_Print_Empty_Table(t *testing.T) {
	t.Parallel()

	doc := render(t, Views.PrintPage{
		Title:        "تقرير المهام",
		Columns:      Views.PrintColumns,
		EmptyMessage: "لا توجد نتائج",
	})

	empty := doc.Find("#tasks td.empty")
	require.Equal(t, 1, empty.Length())
	assert.Equal(t, "لا توجد نتائج", empty.Text())
	assert.Equal(t, "7", empty.AttrOr("colspan", ""))
	assert.Equal(t, 0, doc.Find(".search").Length())
}
