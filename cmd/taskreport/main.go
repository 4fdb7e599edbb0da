// Command taskreport summarizes a task spreadsheet on the terminal and can
// export the filtered table to a new workbook.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"

	"TaskBoard/Controllers"
	"TaskBoard/Export"
	"TaskBoard/Ingest"
	"TaskBoard/Tasks"
	"TaskBoard/Validation"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	query, exportPath, path, code := parseFlags(errOut, args)
	if code != 0 || path == "" {
		return code
	}

	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}
	defer file.Close()

	result, err := Ingest.Load(filepath.Base(path), "", file)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	dataset := result.Dataset
	view := query.View(dataset.Tasks, Tasks.DefaultPageSize)

	printSummary(out, result)
	printTable(out, view)

	if exportPath != "" {
		buf, err := Export.TasksToExcel(dataset.Headers, view.Filtered())
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)
			return 1
		}
		if err := atomic.WriteFile(exportPath, buf); err != nil {
			fmt.Fprintln(errOut, "error: writing export:", err)
			return 1
		}
		fmt.Fprintf(out, "\nexported %d tasks to %s\n", view.FilteredCount(), exportPath)
	}
	return 0
}

func parseFlags(errOut io.Writer, args []string) (Controllers.TaskQuery, string, string, int) {
	flagSet := flag.NewFlagSet("taskreport", flag.ContinueOnError)
	flagSet.SetOutput(errOut)
	flagSet.Usage = func() {
		fmt.Fprintln(errOut, "usage: taskreport [flags] FILE.xlsx")
		flagSet.PrintDefaults()
	}

	var query Controllers.TaskQuery
	flagSet.StringVar(&query.Search, "search", "", "Show tasks whose title contains this text")
	flagSet.StringVar(&query.Department, "department", "", "Show one department")
	flagSet.StringVar(&query.Status, "status", "", "Show tasks whose status contains this text")
	flagSet.StringVar(&query.Responsible, "responsible", "", "Show one responsible person")
	flagSet.StringVar(&query.StartFrom, "start-from", "", "Earliest start date (YYYY-MM-DD)")
	flagSet.StringVar(&query.StartTo, "start-to", "", "Latest start date (YYYY-MM-DD)")
	flagSet.Float64Var(&query.MinProgress, "min-progress", 0, "Minimum progress in percent (0-100)")
	flagSet.StringVar(&query.Sort, "sort", "", "Column to sort by")
	flagSet.StringVar(&query.Dir, "dir", "asc", "Sort direction: asc or desc")
	flagSet.IntVar(&query.Page, "page", 1, "Page to print")
	flagSet.StringVar(&query.PageSize, "page-size", strconv.Itoa(Tasks.DefaultPageSize), "Rows per page, or 'all'")
	exportPath := flagSet.String("export", "", "Write the filtered tasks to this xlsx file")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return query, "", "", 0
		}
		fmt.Fprintln(errOut, "error:", err)
		return query, "", "", 2
	}

	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return query, "", "", 2
	}

	if err := Validation.Struct(query); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return query, "", "", 2
	}

	return query, *exportPath, flagSet.Arg(0), 0
}

func printSummary(out io.Writer, result Ingest.Result) {
	summary := result.Dataset.Summary
	fmt.Fprintf(out, "%s (%s)\n", result.File.Name, result.File.SizeText)
	fmt.Fprintf(out, "tasks: %d  completed: %d  delayed: %d  in progress: %d",
		summary.Total, summary.Completed, summary.Delayed, summary.InProgress)
	if summary.Unclassified > 0 {
		fmt.Fprintf(out, "  unclassified: %d", summary.Unclassified)
	}
	fmt.Fprintf(out, "\ncompletion rate: %d%%\n\n", summary.CompletionRate)
}

func printTable(out io.Writer, view Tasks.View) {
	if view.State() == Tasks.StateNoResults {
		fmt.Fprintln(out, "no matching tasks")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTITLE\tDEPARTMENT\tRESPONSIBLE\tSTATUS\tPROGRESS")
	for _, row := range Tasks.RowsFor(view.Rows(), view.Offset()) {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d%%\n",
			row.Index+1, row.Title, row.Department, row.Responsible, row.Badge.Label, row.Progress)
	}
	w.Flush()

	fmt.Fprintf(out, "\npage %d of %d (%d of %d tasks)\n",
		view.CurrentPage(), view.PageCount(), view.FilteredCount(), view.TotalCount())
	fmt.Fprintf(out, "order: %s\n", view.SortKey())
}
