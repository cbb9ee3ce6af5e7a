package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shiftlens/shiftlens-backend-go/internal/domain/roster"
)

type Config struct {
	App    AppConfig
	Upload UploadConfig
	Grid   GridConfig
	Roster RosterConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port               int
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string
}

// UploadConfig bounds incoming roster files
type UploadConfig struct {
	MaxSizeMB int
}

// GridConfig locates the roster metadata inside uploaded grids; see
// roster.GridLayout. Kept configurable so exports with extra banner rows
// can still be processed.
type GridConfig struct {
	HeaderRow    int
	DateRow      int
	DataStartRow int
	NameColumn   int
}

// RosterConfig holds normalization settings. AnchorYear 0 means the
// year of the first roster column is derived from the current date.
type RosterConfig struct {
	AnchorYear int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Upload configuration
	maxSizeMB, err := strconv.Atoi(getEnv("MAX_UPLOAD_SIZE_MB", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE_MB: %w", err)
	}
	config.Upload = UploadConfig{
		MaxSizeMB: maxSizeMB,
	}

	// Grid layout configuration
	defaultLayout := roster.DefaultGridLayout()
	headerRow, err := strconv.Atoi(getEnv("GRID_HEADER_ROW", strconv.Itoa(defaultLayout.HeaderRow)))
	if err != nil {
		return nil, fmt.Errorf("invalid GRID_HEADER_ROW: %w", err)
	}
	dateRow, err := strconv.Atoi(getEnv("GRID_DATE_ROW", strconv.Itoa(defaultLayout.DateRow)))
	if err != nil {
		return nil, fmt.Errorf("invalid GRID_DATE_ROW: %w", err)
	}
	dataStartRow, err := strconv.Atoi(getEnv("GRID_DATA_START_ROW", strconv.Itoa(defaultLayout.DataStartRow)))
	if err != nil {
		return nil, fmt.Errorf("invalid GRID_DATA_START_ROW: %w", err)
	}
	nameColumn, err := strconv.Atoi(getEnv("GRID_NAME_COLUMN", strconv.Itoa(defaultLayout.NameColumn)))
	if err != nil {
		return nil, fmt.Errorf("invalid GRID_NAME_COLUMN: %w", err)
	}
	config.Grid = GridConfig{
		HeaderRow:    headerRow,
		DateRow:      dateRow,
		DataStartRow: dataStartRow,
		NameColumn:   nameColumn,
	}

	// Roster configuration
	anchorYear, err := strconv.Atoi(getEnv("ROSTER_ANCHOR_YEAR", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid ROSTER_ANCHOR_YEAR: %w", err)
	}
	config.Roster = RosterConfig{
		AnchorYear: anchorYear,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE_MB must be positive")
	}
	if c.Grid.HeaderRow < 0 || c.Grid.DateRow < 0 || c.Grid.NameColumn < 0 {
		return fmt.Errorf("grid row and column indexes must be non-negative")
	}
	if c.Grid.DataStartRow <= c.Grid.DateRow {
		return fmt.Errorf("GRID_DATA_START_ROW must be greater than GRID_DATE_ROW")
	}
	if c.Roster.AnchorYear != 0 && (c.Roster.AnchorYear < 2000 || c.Roster.AnchorYear > 2100) {
		return fmt.Errorf("ROSTER_ANCHOR_YEAR must be 0 or a plausible year")
	}
	return nil
}

// GridLayout returns the configured grid layout descriptor.
func (c *Config) GridLayout() roster.GridLayout {
	return roster.GridLayout{
		HeaderRow:    c.Grid.HeaderRow,
		DateRow:      c.Grid.DateRow,
		DataStartRow: c.Grid.DataStartRow,
		NameColumn:   c.Grid.NameColumn,
	}
}

// MaxUploadBytes returns the upload cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Upload.MaxSizeMB) << 20
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
