package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config is loaded once at process start and injected everywhere.
// RecruitingSeason is deliberately a plain value, not a reloadable flag:
// flipping it requires a restart.
type Config struct {
	HTTPPort    string
	PostgresDSN string

	// Google service account credentials, shared by Sheets and Drive.
	GoogleCredentialsPath string
	SpreadsheetID         string
	SheetRange            string
	DriveFolderID         string

	UploadsDir       string
	MaxResumeBytes   int64
	RecruitingSeason bool
	ExternalTimeout  time.Duration
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		PostgresDSN:           getEnv("DATABASE_URL", ""),
		GoogleCredentialsPath: getEnv("GOOGLE_CREDENTIALS_PATH", "credentials.json"),
		SpreadsheetID:         getEnv("SPREADSHEET_ID", ""),
		SheetRange:            getEnv("SHEET_RANGE", "Candidature!A:S"),
		DriveFolderID:         getEnv("DRIVE_FOLDER_ID", ""),
		UploadsDir:            getEnv("UPLOADS_DIR", "uploads"),
		MaxResumeBytes:        getInt64("MAX_RESUME_BYTES", 5<<20),
		RecruitingSeason:      getBool("RECRUITING_SEASON", true),
		ExternalTimeout:       getDuration("EXTERNAL_TIMEOUT", 10*time.Second),
	}

	if cfg.PostgresDSN == "" {
		log.Fatal("DATABASE_URL is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Fatalf("invalid %s value %q", key, value)
	}
	return parsed
}

func getInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Fatalf("invalid %s value %q", key, value)
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("invalid %s value %q", key, value)
	}
	return parsed
}
