package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"TaskBoard/Models"
	"TaskBoard/Tasks"
)

const (
	previewLimit     = 5
	responsibleLimit = 10
)

// DashboardController serves the summary dashboard of the session's dataset.
type DashboardController struct {
	Store Models.SnapshotStore
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(store Models.SnapshotStore) *DashboardController {
	return &DashboardController{Store: store}
}

// DashboardResponse holds everything the dashboard draws.
type DashboardResponse struct {
	HasData         bool                `json:"hasData"`
	FileName        string              `json:"fileName,omitempty"`
	Summary         *Tasks.Summary      `json:"summary,omitempty"`
	StatusChart     []Tasks.StatusShare `json:"statusChart,omitempty"`
	DepartmentChart []Tasks.ChartPoint  `json:"departmentChart,omitempty"`
	Departments     []string            `json:"departments,omitempty"`
	Responsible     *Tasks.NameList     `json:"responsible,omitempty"`
	Preview         []Tasks.Row         `json:"preview,omitempty"`
	CompletionRate  int                 `json:"completionRate"`
}

// Dashboard returns the counters, charts and preview rows.
func (c *DashboardController) Dashboard(ctx *fiber.Ctx) error {
	snapshot, dataset, found, err := loadSnapshot(ctx, c.Store)
	if err != nil {
		return errorJSON(ctx, fiber.StatusInternalServerError, msgStoreFailure)
	}
	if !found {
		return ctx.JSON(DashboardResponse{HasData: false})
	}

	summary := dataset.Summary
	responsible := Tasks.TruncateNames(summary.ResponsiblePersons, responsibleLimit)
	return ctx.JSON(DashboardResponse{
		HasData:         true,
		FileName:        snapshot.FileName,
		Summary:         &summary,
		StatusChart:     Tasks.StatusBreakdown(summary),
		DepartmentChart: Tasks.DepartmentCounts(dataset.Tasks),
		Departments:     summary.Departments,
		Responsible:     &responsible,
		Preview:         Tasks.RowsFor(Tasks.Preview(dataset.Tasks, previewLimit), 0),
		CompletionRate:  summary.CompletionRate,
	})
}
