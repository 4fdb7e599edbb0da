package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LogConfig holds configuration for the logging middleware
type LogConfig struct {
	// Enable console logging
	Console bool
	// Enable file logging
	File bool
	// Log file path
	LogFilePath string
	// Console log format: "json" or "text"
	Format string
	// Skip logging for specific paths
	SkipPaths []string
	// Receives every entry in addition to console and file output
	CustomLogger func(data LogData)
	// Console output goes here instead of the standard logger when set
	ConsoleWriter io.Writer
}

// LogData contains all the information that will be logged
type LogData struct {
	Timestamp     time.Time     `json:"timestamp"`
	Method        string        `json:"method"`
	Path          string        `json:"path"`
	URL           string        `json:"url"`
	Status        int           `json:"status"`
	Latency       time.Duration `json:"latency"`
	IP            string        `json:"ip"`
	UserAgent     string        `json:"user_agent"`
	RequestID     string        `json:"request_id"`
	Error         string        `json:"error,omitempty"`
	Session       string        `json:"session,omitempty"`
	ContentLength int64         `json:"content_length"`
}

// DefaultLogConfig returns a default configuration for the logging middleware
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Console:     true,
		File:        true,
		LogFilePath: "logs/requests.log",
		Format:      "json",
		SkipPaths:   []string{"/api/health"},
	}
}

// LoggingMiddleware creates a new logging middleware with the given configuration
func LoggingMiddleware(config ...LogConfig) fiber.Handler {
	cfg := DefaultLogConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.File {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFilePath), 0755); err != nil {
			log.Printf("Error creating logs directory: %v\n", err)
		}
	}

	skip := make(map[string]bool, len(cfg.SkipPaths))
	for _, path := range cfg.SkipPaths {
		skip[path] = true
	}

	return func(c *fiber.Ctx) error {
		if skip[c.Path()] {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		logData := LogData{
			Timestamp:     start,
			Method:        c.Method(),
			Path:          c.Path(),
			URL:           c.OriginalURL(),
			Status:        c.Response().StatusCode(),
			Latency:       time.Since(start),
			IP:            c.IP(),
			UserAgent:     c.Get(fiber.HeaderUserAgent),
			RequestID:     c.Get(fiber.HeaderXRequestID),
			Session:       SessionKey(c),
			ContentLength: int64(len(c.Response().Body())),
		}

		// Errors are turned into responses by the error handler after this
		// middleware returns, so the final status is not known yet.
		if err != nil {
			logData.Error = err.Error()
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				logData.Status = fiberErr.Code
			} else {
				logData.Status = fiber.StatusInternalServerError
			}
		}

		logRequest(cfg, logData)

		return err
	}
}

// RequestLogger logs every request to the console in format ("json" or
// "text") and, when toFile is set, as JSON lines to path.
func RequestLogger(path string, toFile bool, format string) fiber.Handler {
	cfg := DefaultLogConfig()
	cfg.LogFilePath = path
	cfg.File = toFile && path != ""
	if format != "" {
		cfg.Format = format
	}
	return LoggingMiddleware(cfg)
}

// logRequest handles the actual logging based on configuration
func logRequest(cfg LogConfig, data LogData) {
	if cfg.CustomLogger != nil {
		cfg.CustomLogger(data)
	}

	jsonData, _ := json.Marshal(data)
	logMessage := string(jsonData)
	if cfg.Format == "text" {
		logMessage = formatTextLog(data)
	}

	if cfg.Console {
		if cfg.ConsoleWriter != nil {
			fmt.Fprintln(cfg.ConsoleWriter, logMessage)
		} else {
			log.Println(logMessage)
		}
	}

	// The file is read back by the log stats API, so it always holds JSON
	if cfg.File {
		logToFile(cfg.LogFilePath, string(jsonData))
	}
}

// formatTextLog formats the log data as human-readable text
func formatTextLog(data LogData) string {
	sessionStr := ""
	if data.Session != "" {
		sessionStr = " session:" + data.Session
	}

	return fmt.Sprintf(
		"[%s] %s %s %s %d %s %s %s%s",
		data.Timestamp.Format("2006-01-02 15:04:05"),
		data.Method,
		data.Path,
		getStatusColor(data.Status),
		data.Status,
		getLatencyColor(data.Latency),
		data.Latency,
		data.IP,
		sessionStr,
	)
}

// getStatusColor returns a color indicator for HTTP status codes
func getStatusColor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "✅"
	case status >= 300 && status < 400:
		return "🔄"
	case status >= 400 && status < 500:
		return "⚠️"
	case status >= 500:
		return "❌"
	default:
		return "❓"
	}
}

// getLatencyColor returns a color indicator for response latency
func getLatencyColor(latency time.Duration) string {
	switch {
	case latency < 100*time.Millisecond:
		return "🟢"
	case latency < 500*time.Millisecond:
		return "🟡"
	case latency < 1*time.Second:
		return "🟠"
	default:
		return "🔴"
	}
}

// logToFile appends one line to the log file
func logToFile(filePath, message string) {
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Error opening log file: %v\n", err)
		return
	}
	defer file.Close()

	if len(message) > 0 && message[len(message)-1] != '\n' {
		message += "\n"
	}

	if _, err := file.WriteString(message); err != nil {
		log.Printf("Error writing to log file: %v\n", err)
	}
}
