package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Log    LogConfig
	CORS   CORSConfig
	S3     S3Config
	Email  EmailConfig
	Store  StoreConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// S3Config holds the invoice PDF archive bucket settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Enabled   bool   `mapstructure:"enabled"`
}

// EmailConfig holds invoice email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// StoreConfig identifies the store itself on printed documents, and supplies
// the home state code that sale entry compares against a customer's state to
// decide inter-state tax treatment.
type StoreConfig struct {
	Name      string `mapstructure:"name"`
	Address   string `mapstructure:"address"`
	Phone     string `mapstructure:"phone"`
	GSTIN     string `mapstructure:"gstin"`
	StateCode string `mapstructure:"state_code"`
}

// Load reads configuration from environment variables with the CITYPOS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CITYPOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "citypos")
	v.SetDefault("db.password", "citypos_secret")
	v.SetDefault("db.name", "citypos_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "citypos")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// S3 archive defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "citypos-invoices")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.enabled", false)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "billing@cityfashion.example")
	v.SetDefault("email.from_name", "City Fashion")

	// Store profile defaults
	v.SetDefault("store.name", "City Fashion")
	v.SetDefault("store.address", "")
	v.SetDefault("store.phone", "")
	v.SetDefault("store.gstin", "")
	v.SetDefault("store.state_code", "29")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "CITYPOS_SERVER_PORT",
		"server.read_timeout":  "CITYPOS_SERVER_READ_TIMEOUT",
		"server.write_timeout": "CITYPOS_SERVER_WRITE_TIMEOUT",
		"server.environment":   "CITYPOS_SERVER_ENVIRONMENT",
		"db.host":              "CITYPOS_DB_HOST",
		"db.port":              "CITYPOS_DB_PORT",
		"db.user":              "CITYPOS_DB_USER",
		"db.password":          "CITYPOS_DB_PASSWORD",
		"db.name":              "CITYPOS_DB_NAME",
		"db.sslmode":           "CITYPOS_DB_SSLMODE",
		"db.max_open":          "CITYPOS_DB_MAX_OPEN",
		"db.max_idle":          "CITYPOS_DB_MAX_IDLE",
		"jwt.secret":           "CITYPOS_JWT_SECRET",
		"jwt.access_expiry":    "CITYPOS_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "CITYPOS_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "CITYPOS_JWT_ISSUER",
		"log.level":            "CITYPOS_LOG_LEVEL",
		"log.format":           "CITYPOS_LOG_FORMAT",
		"cors.allowed_origins": "CITYPOS_CORS_ALLOWED_ORIGINS",
		"s3.region":            "CITYPOS_S3_REGION",
		"s3.bucket":            "CITYPOS_S3_BUCKET",
		"s3.endpoint":          "CITYPOS_S3_ENDPOINT",
		"s3.access_key":        "CITYPOS_S3_ACCESS_KEY",
		"s3.secret_key":        "CITYPOS_S3_SECRET_KEY",
		"s3.enabled":           "CITYPOS_S3_ENABLED",
		"email.provider":       "CITYPOS_EMAIL_PROVIDER",
		"email.region":         "CITYPOS_EMAIL_REGION",
		"email.from_address":   "CITYPOS_EMAIL_FROM_ADDRESS",
		"email.from_name":      "CITYPOS_EMAIL_FROM_NAME",
		"store.name":           "CITYPOS_STORE_NAME",
		"store.address":        "CITYPOS_STORE_ADDRESS",
		"store.phone":          "CITYPOS_STORE_PHONE",
		"store.gstin":          "CITYPOS_STORE_GSTIN",
		"store.state_code":     "CITYPOS_STORE_STATE_CODE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CITYPOS_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CITYPOS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
		Enabled:   v.GetBool("s3.enabled"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Store = StoreConfig{
		Name:      v.GetString("store.name"),
		Address:   v.GetString("store.address"),
		Phone:     v.GetString("store.phone"),
		GSTIN:     v.GetString("store.gstin"),
		StateCode: v.GetString("store.state_code"),
	}

	return cfg, nil
}
