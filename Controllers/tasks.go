package Controllers

import (
	"errors"
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"TaskBoard/Export"
	"TaskBoard/Models"
	"TaskBoard/Tasks"
	"TaskBoard/Validation"
	"TaskBoard/Views"
)

const printTitle = "تقرير المهام"

// TaskController serves the task table: listing, details, export and the
// printable page. Every request rebuilds the view from the stored dataset.
type TaskController struct {
	Store           Models.SnapshotStore
	DefaultPageSize int
}

// NewTaskController creates a new TaskController
func NewTaskController(store Models.SnapshotStore, defaultPageSize int) *TaskController {
	return &TaskController{Store: store, DefaultPageSize: defaultPageSize}
}

// FilterOptions are the choices offered by the filter dropdowns.
type FilterOptions struct {
	Departments        []string `json:"departments"`
	ResponsiblePersons []string `json:"responsiblePersons"`
}

// TaskListResponse is one page of the task table.
type TaskListResponse struct {
	HasData      bool            `json:"hasData"`
	State        Tasks.ViewState `json:"state"`
	Rows         []Tasks.Row     `json:"rows"`
	Total        int             `json:"total"`
	Filtered     int             `json:"filtered"`
	Page         int             `json:"page"`
	PageSize     int             `json:"pageSize"`
	PageCount    int             `json:"pageCount"`
	ShowControls bool            `json:"showControls"`
	Window       Tasks.Window    `json:"window"`
	Sort         Tasks.SortKey   `json:"sort"`
	Criteria     Tasks.Criteria  `json:"criteria"`
	Filtering    bool            `json:"filtering"`
	Options      FilterOptions   `json:"options"`
	Message      string          `json:"message,omitempty"`
}

// TaskDetailResponse lists the fields of one task.
type TaskDetailResponse struct {
	Index   int            `json:"index"`
	Title   string         `json:"title"`
	Details []Tasks.Detail `json:"details"`
}

// view loads the dataset and applies the query. found is false when the
// session has no dataset.
func (c *TaskController) view(ctx *fiber.Ctx) (query TaskQuery, dataset Tasks.Dataset, view Tasks.View, found bool, err error) {
	query, err = parseTaskQuery(ctx)
	if err != nil {
		if errors.Is(err, Validation.ErrInvalid) {
			return query, dataset, view, false, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return query, dataset, view, false, fiber.NewError(fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}

	_, dataset, found, err = loadSnapshot(ctx, c.Store)
	if err != nil {
		return query, dataset, view, false, fiber.NewError(fiber.StatusInternalServerError, msgStoreFailure)
	}
	if !found {
		return query, dataset, view, false, nil
	}
	return query, dataset, query.View(dataset.Tasks, c.DefaultPageSize), true, nil
}

// writeError sends a *fiber.Error as an ErrorResponse.
func writeError(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return errorJSON(ctx, fiberErr.Code, fiberErr.Message)
	}
	return errorJSON(ctx, fiber.StatusInternalServerError, err.Error())
}

// List returns the requested page of the filtered and sorted tasks.
func (c *TaskController) List(ctx *fiber.Ctx) error {
	query, dataset, view, found, err := c.view(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if !found {
		return ctx.JSON(TaskListResponse{
			HasData: false,
			State:   Tasks.StateNoData,
			Rows:    []Tasks.Row{},
			Message: msgNoData,
		})
	}

	response := TaskListResponse{
		HasData:      true,
		State:        view.State(),
		Rows:         Tasks.HighlightRows(Tasks.RowsFor(view.Rows(), view.Offset()), query.Search),
		Total:        view.TotalCount(),
		Filtered:     view.FilteredCount(),
		Page:         view.CurrentPage(),
		PageSize:     view.PageSize(),
		PageCount:    view.PageCount(),
		ShowControls: view.ShowControls(),
		Window:       view.Window(),
		Sort:         view.SortKey(),
		Criteria:     view.Criteria(),
		Filtering:    !view.Criteria().IsZero(),
		Options: FilterOptions{
			Departments:        dataset.Summary.Departments,
			ResponsiblePersons: dataset.Summary.ResponsiblePersons,
		},
	}
	if response.State == Tasks.StateNoResults {
		response.Message = msgNoResults
	}
	return ctx.JSON(response)
}

// Detail returns the fields of the task at position :index of the filtered
// and sorted sequence.
func (c *TaskController) Detail(ctx *fiber.Ctx) error {
	index, err := strconv.Atoi(ctx.Params("index"))
	if err != nil || index < 0 {
		return errorJSON(ctx, fiber.StatusBadRequest, "Invalid task index")
	}

	_, _, view, found, err := c.view(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if !found {
		return errorJSON(ctx, fiber.StatusNotFound, msgNoData)
	}

	filtered := view.Filtered()
	if index >= len(filtered) {
		return errorJSON(ctx, fiber.StatusNotFound, msgTaskNotFound)
	}

	task := filtered[index]
	return ctx.JSON(TaskDetailResponse{
		Index:   index,
		Title:   task.Title(),
		Details: Tasks.Details(task),
	})
}

// Export downloads the filtered and sorted tasks as a workbook.
func (c *TaskController) Export(ctx *fiber.Ctx) error {
	_, dataset, view, found, err := c.view(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if !found {
		return errorJSON(ctx, fiber.StatusNotFound, msgNoData)
	}

	buf, err := Export.TasksToExcel(dataset.Headers, view.Filtered())
	if err != nil {
		log.Printf("Error exporting tasks: %v\n", err)
		return errorJSON(ctx, fiber.StatusInternalServerError, "Failed to generate Excel file")
	}

	ctx.Set(fiber.HeaderContentType, Export.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, contentDisposition(Export.FileName))
	return ctx.Send(buf.Bytes())
}

// contentDisposition names an attachment with a non-ASCII file name.
func contentDisposition(name string) string {
	return `attachment; filename="tasks.xlsx"; filename*=UTF-8''` + url.PathEscape(name)
}

// Print renders the filtered and sorted tasks as a printable page.
func (c *TaskController) Print(ctx *fiber.Ctx) error {
	query, _, view, found, err := c.view(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	page := Views.PrintPage{
		Title:       printTitle,
		GeneratedAt: time.Now().Format("2006-01-02 15:04"),
		Search:      query.Search,
		Columns:     Views.PrintColumns,
	}
	if !found {
		page.EmptyMessage = msgNoData
		return ctx.Render(Views.PrintTemplate, page)
	}

	page.Total = view.TotalCount()
	page.Filtered = view.FilteredCount()
	page.Rows = Tasks.HighlightRows(Tasks.RowsFor(view.Filtered(), 0), query.Search)
	page.EmptyMessage = msgNoResults
	return ctx.Render(Views.PrintTemplate, page)
}
