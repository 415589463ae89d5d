package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, data source, etc.)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Catalog CatalogConfig
	Search  SearchConfig
	Cookie  CookieConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// DBConfig is only read when CATALOG_SOURCE=postgres.
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

const (
	SourceJSON     = "json"
	SourceCSV      = "csv"
	SourceSheets   = "sheets"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

type CatalogConfig struct {
	Source string `envconfig:"CATALOG_SOURCE" default:"json"`
	// URL wins over Path for json; csv always needs it
	URL        string `envconfig:"CATALOG_URL"`
	Path       string `envconfig:"CATALOG_PATH" default:"data/studios.json"`
	SQLitePath string `envconfig:"CATALOG_SQLITE_PATH" default:"data/studios.db"`

	SheetsSpreadsheetID   string `envconfig:"CATALOG_SHEETS_SPREADSHEET_ID"`
	SheetsRange           string `envconfig:"CATALOG_SHEETS_RANGE" default:"rates!A1:N"`
	SheetsCredentialsFile string `envconfig:"CATALOG_SHEETS_CREDENTIALS_FILE"`

	FetchTimeout time.Duration `envconfig:"CATALOG_FETCH_TIMEOUT" default:"10s"`
	MaxRetries   uint64        `envconfig:"CATALOG_MAX_RETRIES" default:"3"`
	CacheTTL     time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"5m"`
	// empty means the built-in area list
	AreaFile string `envconfig:"CATALOG_AREA_FILE"`
}

type SearchConfig struct {
	AreaPerPerson    float64 `envconfig:"SEARCH_AREA_PER_PERSON" default:"5"`
	TimeZone         string  `envconfig:"SEARCH_TIMEZONE" default:"Asia/Tokyo"`
	DefaultStartTime string  `envconfig:"SEARCH_DEFAULT_START_TIME" default:"18:00"`
	DefaultEndTime   string  `envconfig:"SEARCH_DEFAULT_END_TIME" default:"20:00"`
	DefaultMaxPrice  int64   `envconfig:"SEARCH_DEFAULT_MAX_PRICE" default:"5000"`
	DefaultPeople    int     `envconfig:"SEARCH_DEFAULT_PEOPLE" default:"5"`
}

type CookieConfig struct {
	ConditionsName string        `envconfig:"SEARCH_CONDITIONS_COOKIE" default:"studio_search_conditions_v5"`
	MaxAge         time.Duration `envconfig:"COOKIE_MAX_AGE" default:"720h"`
	Domain         string        `envconfig:"COOKIE_DOMAIN"`
	Secure         bool          `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite       string        `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location falls back to a fixed JST zone when tzdata is unavailable.
func (c SearchConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.FixedZone(c.TimeZone, 9*60*60)
	}
	return loc
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Catalog: CatalogConfig{
			Source:       SourcePostgres,
			FetchTimeout: 5 * time.Second,
			MaxRetries:   1,
			CacheTTL:     0, // always reload in tests
		},
		Search: SearchConfig{
			AreaPerPerson:    5,
			TimeZone:         "Asia/Tokyo",
			DefaultStartTime: "18:00",
			DefaultEndTime:   "20:00",
			DefaultMaxPrice:  5000,
			DefaultPeople:    5,
		},
		Cookie: CookieConfig{
			ConditionsName: "studio_search_conditions_v5",
			MaxAge:         time.Hour,
			SameSite:       "Lax",
		},
	}
}

