package Config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"TaskBoard/Tasks"
	"TaskBoard/Validation"
)

// Config holds the service settings. Each field is read from the
// environment variable named in its env tag.
type Config struct {
	Port            string        `env:"PORT" validate:"required,numeric"`
	DBDriver        string        `env:"DB_DRIVER" validate:"oneof=sqlite mysql postgres"`
	DBDSN           string        `env:"DB_DSN" validate:"required"`
	SessionSecret   string        `env:"SESSION_SECRET" validate:"required,min=16"`
	SessionTTL      time.Duration `env:"SESSION_TTL" validate:"gt=0"`
	SweepSchedule   string        `env:"SWEEP_SCHEDULE" validate:"required"`
	DefaultPageSize int           `env:"DEFAULT_PAGE_SIZE" validate:"gte=0"`
	MaxUploadMB     int           `env:"MAX_UPLOAD_MB" validate:"gt=0"`
	LogToFile       bool          `env:"LOG_TO_FILE"`
	LogFormat       string        `env:"LOG_FORMAT" validate:"oneof=json text"`
	RequestLogPath  string        `env:"REQUEST_LOG_PATH"`
	SessionSecure   bool          `env:"SESSION_SECURE"`
}

// Default returns the settings used when nothing is configured. The session
// secret is random, so sessions do not survive a restart.
func Default() Config {
	return Config{
		Port:            "3001",
		DBDriver:        "sqlite",
		DBDSN:           "database.db",
		SessionSecret:   uuid.NewString(),
		SessionTTL:      30 * 24 * time.Hour,
		SweepSchedule:   "0 0 * * * *",
		DefaultPageSize: Tasks.DefaultPageSize,
		MaxUploadMB:     20,
		LogFormat:       "json",
		RequestLogPath:  "logs/requests.log",
	}
}

// Load reads the optional env files (".env" when none are given) and then
// the process environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, falling back to Default for unset
// variables, and validates the result.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if _, ok := lookup("SESSION_SECRET"); !ok {
		log.Println("SESSION_SECRET not set, using a random secret")
	}

	stringVars := map[string]*string{
		"PORT":             &cfg.Port,
		"DB_DRIVER":        &cfg.DBDriver,
		"DB_DSN":           &cfg.DBDSN,
		"SESSION_SECRET":   &cfg.SessionSecret,
		"SWEEP_SCHEDULE":   &cfg.SweepSchedule,
		"REQUEST_LOG_PATH": &cfg.RequestLogPath,
		"LOG_FORMAT":       &cfg.LogFormat,
	}
	for name, target := range stringVars {
		if value, ok := lookup(name); ok {
			*target = value
		}
	}

	if value, ok := lookup("SESSION_TTL"); ok {
		ttl, err := time.ParseDuration(value)
		if err != nil {
			return Config{}, fmt.Errorf("SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = ttl
	}

	if value, ok := lookup("DEFAULT_PAGE_SIZE"); ok {
		size, valid := Tasks.ParsePageSize(value)
		if !valid {
			return Config{}, fmt.Errorf("DEFAULT_PAGE_SIZE: %q is not a page size", value)
		}
		cfg.DefaultPageSize = size
	}

	if value, ok := lookup("MAX_UPLOAD_MB"); ok {
		mb, err := strconv.Atoi(value)
		if err != nil {
			return Config{}, fmt.Errorf("MAX_UPLOAD_MB: %w", err)
		}
		cfg.MaxUploadMB = mb
	}

	boolVars := map[string]*bool{
		"LOG_TO_FILE":    &cfg.LogToFile,
		"SESSION_SECURE": &cfg.SessionSecure,
	}
	for name, target := range boolVars {
		value, ok := lookup(name)
		if !ok {
			continue
		}
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", name, err)
		}
		*target = enabled
	}

	if err := Validation.Struct(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BodyLimit is the request body limit in bytes for uploads.
func (c Config) BodyLimit() int {
	return c.MaxUploadMB * 1024 * 1024
}
