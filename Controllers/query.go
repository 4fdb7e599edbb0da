package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"TaskBoard/Tasks"
	"TaskBoard/Validation"
)

// TaskQuery is the table state carried in the query string.
type TaskQuery struct {
	Search      string  `query:"search"`
	Department  string  `query:"department"`
	Status      string  `query:"status"`
	Responsible string  `query:"responsible"`
	StartFrom   string  `query:"start_from" validate:"omitempty,datetime=2006-01-02"`
	StartTo     string  `query:"start_to" validate:"omitempty,datetime=2006-01-02"`
	MinProgress float64 `query:"min_progress" validate:"gte=0,lte=100"`
	Sort        string  `query:"sort"`
	Dir         string  `query:"dir" validate:"omitempty,oneof=asc desc"`
	// Toggle is the column the user just clicked; it flips Sort/Dir.
	Toggle   string `query:"toggle"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PageSize string `query:"page_size" validate:"page_size"`
}

// parseTaskQuery reads and validates the query string.
func parseTaskQuery(ctx *fiber.Ctx) (TaskQuery, error) {
	var query TaskQuery
	if err := ctx.QueryParser(&query); err != nil {
		return query, err
	}
	if err := Validation.Struct(query); err != nil {
		return query, err
	}
	return query, nil
}

// Criteria converts the query into filter criteria. MinProgress arrives as a
// percentage and is compared as a ratio.
func (q TaskQuery) Criteria() Tasks.Criteria {
	return Tasks.Criteria{
		Search:      q.Search,
		Department:  q.Department,
		Status:      q.Status,
		Responsible: q.Responsible,
		StartFrom:   q.StartFrom,
		StartTo:     q.StartTo,
		MinProgress: q.MinProgress / 100,
	}
}

// SortKey is the requested sort after applying Toggle.
func (q TaskQuery) SortKey() Tasks.SortKey {
	key := Tasks.SortKey{}
	if q.Sort != "" {
		key = Tasks.SortKey{Field: q.Sort, Direction: Tasks.ParseDirection(q.Dir)}
	}
	if q.Toggle != "" {
		key = key.Toggle(q.Toggle)
	}
	return key
}

// View builds the table view of tasks this query describes.
func (q TaskQuery) View(tasks []Tasks.Record, defaultPageSize int) Tasks.View {
	pageSize := defaultPageSize
	if size, ok := Tasks.ParsePageSize(q.PageSize); ok {
		pageSize = size
	}

	view := Tasks.NewView(tasks, pageSize).
		WithCriteria(q.Criteria()).
		WithSort(q.SortKey())
	if q.Page > 0 {
		view = view.GoTo(q.Page)
	}
	return view
}
