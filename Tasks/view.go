package Tasks

// ViewState tells the presentation layer what to draw for a table view.
type ViewState string

const (
	StateRows      ViewState = "rows"
	StateNoResults ViewState = "no_results"
	// StateNoData is used by callers when there is no dataset at all.
	StateNoData ViewState = "no_data"
)

// View is the table view over a dataset: criteria, sort key and page
// window together with the derived filtered sequence. Every method returns
// a new View; the receiver is never modified.
type View struct {
	tasks    []Record
	filtered []Record
	criteria Criteria
	sortKey  SortKey
	page     int
	pageSize int
}

// NewView shows every task unsorted on page 1.
func NewView(tasks []Record, pageSize int) View {
	if pageSize < AllRows {
		pageSize = DefaultPageSize
	}
	v := View{tasks: tasks, page: 1, pageSize: pageSize}
	return v.recompute()
}

// WithCriteria applies a new filter and returns to page 1.
func (v View) WithCriteria(criteria Criteria) View {
	v.criteria = criteria
	v.page = 1
	return v.recompute()
}

// WithSort applies key and keeps the current page when it still exists.
func (v View) WithSort(key SortKey) View {
	v.sortKey = key
	return v.recompute()
}

// ToggleSort applies the key that results from selecting field.
func (v View) ToggleSort(field string) View {
	return v.WithSort(v.sortKey.Toggle(field))
}

// WithPageSize changes the page size and returns to page 1.
func (v View) WithPageSize(size int) View {
	if size < AllRows {
		return v
	}
	v.pageSize = size
	v.page = 1
	return v
}

// GoTo moves to page n. Pages outside [1, PageCount] leave the view as is.
func (v View) GoTo(n int) View {
	if n < 1 || n > v.PageCount() {
		return v
	}
	v.page = n
	return v
}

func (v View) recompute() View {
	v.filtered = Sort(Filter(v.tasks, v.criteria), v.sortKey)
	if v.page > v.PageCount() {
		v.page = v.PageCount()
	}
	return v
}

// Rows returns the records on the current page.
func (v View) Rows() []Record {
	return Page(v.filtered, v.page, v.pageSize)
}

// Filtered returns the whole filtered and sorted sequence.
func (v View) Filtered() []Record {
	return v.filtered
}

func (v View) Criteria() Criteria { return v.criteria }
func (v View) SortKey() SortKey   { return v.sortKey }
func (v View) CurrentPage() int   { return v.page }
func (v View) PageSize() int      { return v.pageSize }
func (v View) FilteredCount() int { return len(v.filtered) }
func (v View) TotalCount() int    { return len(v.tasks) }

// PageCount returns the number of pages of the filtered sequence.
func (v View) PageCount() int {
	return PageCount(len(v.filtered), v.pageSize)
}

// ShowControls reports whether pagination controls should be drawn.
func (v View) ShowControls() bool {
	return ShowControls(len(v.filtered), v.pageSize)
}

// Window returns the page numbers to offer around the current page.
func (v View) Window() Window {
	return PageWindow(v.page, v.PageCount())
}

// State is StateNoResults when the filter left nothing to show.
func (v View) State() ViewState {
	if len(v.filtered) == 0 {
		return StateNoResults
	}
	return StateRows
}

// Offset returns the position of the first row of the current page within
// the filtered sequence.
func (v View) Offset() int {
	if v.pageSize <= AllRows {
		return 0
	}
	return (v.page - 1) * v.pageSize
}
