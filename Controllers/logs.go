package Controllers

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"TaskBoard/middleware"
)

// RequestLogController reports on the JSON request log written by the
// logging middleware.
type RequestLogController struct {
	Path string
}

// NewRequestLogController creates a new RequestLogController
func NewRequestLogController(path string) *RequestLogController {
	return &RequestLogController{Path: path}
}

// RouteStats summarizes the requests of one method and path
type RouteStats struct {
	Method      string  `json:"method"`
	Path        string  `json:"path"`
	Count       int     `json:"count"`
	AvgLatency  float64 `json:"avg_latency_ms"`
	MinLatency  float64 `json:"min_latency_ms"`
	MaxLatency  float64 `json:"max_latency_ms"`
	SuccessRate float64 `json:"success_rate"`
}

// LogStatsResponse represents the response structure for the log stats API
type LogStatsResponse struct {
	TotalRequests int          `json:"total_requests"`
	Errors        int          `json:"errors"`
	Routes        []RouteStats `json:"routes"`
	DateFrom      time.Time    `json:"date_from"`
	DateTo        time.Time    `json:"date_to"`
}

// Stats groups the logged requests by route. date_from and date_to
// (YYYY-MM-DD) default to today.
func (c *RequestLogController) Stats(ctx *fiber.Ctx) error {
	dateFrom, dateTo, err := logDateRange(ctx.Query("date_from"), ctx.Query("date_to"), time.Now())
	if err != nil {
		return errorJSON(ctx, fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
	}

	entries, err := readRequestLog(c.Path, dateFrom, dateTo)
	if err != nil {
		log.Printf("Error reading logs: %v", err)
		return errorJSON(ctx, fiber.StatusInternalServerError, "Failed to read logs")
	}

	response := LogStatsResponse{
		TotalRequests: len(entries),
		Routes:        routeStats(entries),
		DateFrom:      dateFrom,
		DateTo:        dateTo,
	}
	for _, entry := range entries {
		if entry.Status >= fiber.StatusBadRequest {
			response.Errors++
		}
	}
	return ctx.JSON(response)
}

func logDateRange(from, to string, now time.Time) (time.Time, time.Time, error) {
	if from == "" && to == "" {
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
	}

	dateFrom := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	if from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		dateFrom = parsed
	}

	dateTo := now
	if to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		// Set to end of day
		dateTo = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return dateFrom, dateTo, nil
}

// readRequestLog returns the entries logged within [dateFrom, dateTo]. A
// missing log file has no entries.
func readRequestLog(path string, dateFrom, dateTo time.Time) ([]middleware.LogData, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []middleware.LogData
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var entry middleware.LogData
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			// Skip invalid JSON lines
			continue
		}
		if entry.Timestamp.Before(dateFrom) || entry.Timestamp.After(dateTo) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// routeStats groups entries by method and path, busiest route first.
func routeStats(entries []middleware.LogData) []RouteStats {
	type accumulator struct {
		stats     RouteStats
		total     float64
		successes int
	}

	groups := make(map[string]*accumulator)
	for _, entry := range entries {
		key := entry.Method + " " + entry.Path
		latency := float64(entry.Latency) / float64(time.Millisecond)

		group, ok := groups[key]
		if !ok {
			group = &accumulator{stats: RouteStats{
				Method:     entry.Method,
				Path:       entry.Path,
				MinLatency: latency,
				MaxLatency: latency,
			}}
			groups[key] = group
		}

		group.stats.Count++
		group.total += latency
		if latency < group.stats.MinLatency {
			group.stats.MinLatency = latency
		}
		if latency > group.stats.MaxLatency {
			group.stats.MaxLatency = latency
		}
		if entry.Status < fiber.StatusBadRequest {
			group.successes++
		}
	}

	routes := make([]RouteStats, 0, len(groups))
	for _, group := range groups {
		group.stats.AvgLatency = group.total / float64(group.stats.Count)
		group.stats.SuccessRate = float64(group.successes) / float64(group.stats.Count) * 100
		routes = append(routes, group.stats)
	}

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Count != routes[j].Count {
			return routes[i].Count > routes[j].Count
		}
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return routes
}
