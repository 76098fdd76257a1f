package common

import (
	"os"
	"strconv"
	"time"

	"github.com/danielokoye/invoicescan/internal/geometry"
)

// Config holds all application configuration. Every component receives
// its slice of this through its constructor; nothing reads the
// environment after startup.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Blob     BlobConfig
	OCR      OCRConfig
	Queue    QueueConfig
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	GRPCAddr string
}

// BlobConfig holds source-file store configuration.
type BlobConfig struct {
	RootDir string
}

// OCRConfig holds OCR backend configuration for both provider variants.
type OCRConfig struct {
	// Polling variant (textract-style).
	TextractEndpoint string
	TextractBucket   string
	PollInterval     time.Duration // fixed cadence between status queries
	MaxPolls         int           // poll budget before giving up

	// Batch variant (tesseract-style).
	Tesseract     string // binary name or absolute path
	Pdftoppm      string
	TesseractLang string
	TessdataDir   string
	DPI           int // rasterization DPI for PDF sources
	MaxPages      int // 0 = no limit
	PSM           int

	// Reference page used to project normalized polygon coordinates.
	PageWidth  int
	PageHeight int
}

// QueueConfig holds worker pool configuration.
type QueueConfig struct {
	Workers    int
	Size       int
	JobTimeout time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Blob: BlobConfig{
			RootDir: getEnv("BLOB_ROOT_DIR", "./data/blobs"),
		},
		OCR: OCRConfig{
			TextractEndpoint: getEnv("TEXTRACT_ENDPOINT", ""),
			TextractBucket:   getEnv("TEXTRACT_BUCKET", ""),
			PollInterval:     getEnvAsDuration("TEXTRACT_POLL_INTERVAL", 2*time.Second),
			MaxPolls:         getEnvAsInt("TEXTRACT_MAX_POLLS", 150),
			Tesseract:        getEnv("TESSERACT_BIN", "tesseract"),
			Pdftoppm:         getEnv("PDFTOPPM_BIN", "pdftoppm"),
			TesseractLang:    getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:      getEnv("TESSDATA_PREFIX", ""),
			DPI:              getEnvAsInt("OCR_DPI", 300),
			MaxPages:         getEnvAsInt("OCR_MAX_PAGES", 0),
			PSM:              getEnvAsInt("TESSERACT_PSM", 6),
			PageWidth:        getEnvAsInt("OCR_PAGE_WIDTH", geometry.ReferencePageWidth),
			PageHeight:       getEnvAsInt("OCR_PAGE_HEIGHT", geometry.ReferencePageHeight),
		},
		Queue: QueueConfig{
			Workers:    getEnvAsInt("QUEUE_WORKERS", 4),
			Size:       getEnvAsInt("QUEUE_SIZE", 256),
			JobTimeout: getEnvAsDuration("QUEUE_JOB_TIMEOUT", 10*time.Minute),
		},
	}
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.OCR.PollInterval <= 0 {
		return NewAppError("CONFIG_ERROR", "TEXTRACT_POLL_INTERVAL must be positive", ErrInvalidInput)
	}
	if c.OCR.MaxPolls <= 0 {
		return NewAppError("CONFIG_ERROR", "TEXTRACT_MAX_POLLS must be positive", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
