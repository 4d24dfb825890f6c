package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Source   SourceConfig
	BioTime  BioTimeConfig
	Database DatabaseConfig
	Report   ReportConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// SourceConfig selects where punches and the roster come from: the device
// REST API ("api") or the device database directly ("postgres").
type SourceConfig struct {
	Type string
}

// BioTimeConfig holds the device REST API endpoints and basic-auth
// credentials.
type BioTimeConfig struct {
	PunchURL    string
	EmployeeURL string
	Username    string
	Password    string
	Timeout     time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// ReportConfig holds artifact output settings and the branding printed on
// every sheet and page.
type ReportConfig struct {
	OutputDir      string
	CompanyName    string
	CompanyAddress string
	LogoPath       string
	Interval       time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.Source = SourceConfig{
		Type: getEnv("SOURCE_TYPE", "api"),
	}

	apiTimeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}

	config.BioTime = BioTimeConfig{
		PunchURL:    getEnv("PUNCH_API_URL", ""),
		EmployeeURL: getEnv("EMPLOYEE_API_URL", ""),
		Username:    getEnv("API_USERNAME", ""),
		Password:    getEnv("API_PASSWORD", ""),
		Timeout:     apiTimeout,
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "biotime"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	reportInterval, err := time.ParseDuration(getEnv("REPORT_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_INTERVAL: %w", err)
	}

	config.Report = ReportConfig{
		OutputDir:      getEnv("OUTPUT_DIR", "."),
		CompanyName:    getEnv("COMPANY_NAME", "Supreme Automobile SARL"),
		CompanyAddress: getEnv("COMPANY_ADDRESS", "No. 5406, 12eme Rue Industriel C/Limete, Kinshasa, DRC"),
		LogoPath:       getEnv("LOGO_PATH", ""),
		Interval:       reportInterval,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Source.Type {
	case "api":
		if c.BioTime.PunchURL == "" {
			return fmt.Errorf("PUNCH_API_URL is required")
		}
		if c.BioTime.EmployeeURL == "" {
			return fmt.Errorf("EMPLOYEE_API_URL is required")
		}
		if c.BioTime.Username == "" {
			return fmt.Errorf("API_USERNAME is required")
		}
		if c.BioTime.Password == "" {
			return fmt.Errorf("API_PASSWORD is required")
		}
	case "postgres":
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	default:
		return fmt.Errorf("unsupported SOURCE_TYPE: %s", c.Source.Type)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
