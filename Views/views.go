package Views

import (
	"embed"
	"net/http"
	"strconv"

	"github.com/gofiber/template/html"

	"TaskBoard/Tasks"
)

//go:embed *.html
var templates embed.FS

// PrintTemplate renders the printable task table.
const PrintTemplate = "print"

// PrintPage is the data of PrintTemplate.
type PrintPage struct {
	Title        string
	GeneratedAt  string
	Search       string
	Total        int
	Filtered     int
	Columns      []string
	Rows         []Tasks.Row
	EmptyMessage string
}

// PrintColumns are the table columns shown on the print page.
var PrintColumns = []string{
	Tasks.FieldTitle,
	Tasks.FieldDepartment,
	Tasks.FieldResponsible,
	Tasks.FieldStartDate,
	Tasks.FieldExpectedEnd,
	Tasks.FieldStatus,
	Tasks.FieldProgress,
}

// Engine returns the template engine for the embedded views.
func Engine() *html.Engine {
	engine := html.NewFileSystem(http.FS(templates), ".html")
	engine.AddFunc("percent", func(value int) string {
		return strconv.Itoa(value) + "%"
	})
	return engine
}
