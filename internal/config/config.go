package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It is read from a YAML file and every value can be overridden from the
// environment.
type Config struct {
	// Environment specifies the current running environment (development, production, test)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// It must cover the inline analysis a stale job poll may trigger.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxUploadBytes limits the size of an uploaded STEP file
		MaxUploadBytes int64 `env:"HTTP_MAX_UPLOAD_BYTES" env-default:"104857600" yaml:"maxUploadBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigins lists the browser origins allowed to call the API; "*" allows any
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-default:"*" yaml:"corsOrigins"`
		// Pprof exposes the profiling endpoints under /debug/pprof/
		Pprof bool `env:"HTTP_PPROF" env-default:"true" yaml:"pprof"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"cnc" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"cnc" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"cnc_cost" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Storage configures the S3 compatible object storage holding uploads and preview models
	Storage struct {
		Endpoint        string `env:"STORAGE_ENDPOINT" env-default:"localhost:9000" yaml:"endpoint"`
		Region          string `env:"STORAGE_REGION" env-default:"us-east-1" yaml:"region"`
		AccessKeyID     string `env:"STORAGE_ACCESS_KEY_ID" env-default:"minioadmin" yaml:"accessKeyID"`
		SecretAccessKey string `env:"STORAGE_SECRET_ACCESS_KEY" env-default:"minioadmin" yaml:"secretAccessKey"`
		UseSSL          bool   `env:"STORAGE_USE_SSL" env-default:"false" yaml:"useSSL"`
		RawBucket       string `env:"STORAGE_RAW_BUCKET" env-default:"step-raw" yaml:"rawBucket"`
		ModelBucket     string `env:"STORAGE_MODEL_BUCKET" env-default:"step-model" yaml:"modelBucket"`
		// Compress stores raw uploads zstd-compressed
		Compress bool `env:"STORAGE_COMPRESS" env-default:"true" yaml:"compress"`
	} `yaml:"storage"`

	// Analysis configures the background analysis of uploaded parts
	Analysis struct {
		// MaxAttempts is the number of times the worker tries a job before marking it failed
		MaxAttempts int `env:"ANALYSIS_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// Workers is the number of jobs processed concurrently
		Workers int `env:"ANALYSIS_WORKERS" env-default:"10" yaml:"workers"`
		// SyncFallbackAfter is how long a job may stay pending before a status poll runs it inline
		SyncFallbackAfter time.Duration `env:"ANALYSIS_SYNC_FALLBACK_AFTER" env-default:"20s" yaml:"syncFallbackAfter"`
		// DefaultMachineProfile is used when an upload names no machine profile
		DefaultMachineProfile string `env:"ANALYSIS_DEFAULT_MACHINE_PROFILE" env-default:"auto" yaml:"defaultMachineProfile"`
		// MachineProfilesPath optionally points at a JSONC file replacing the built-in profiles
		MachineProfilesPath string `env:"ANALYSIS_MACHINE_PROFILES_PATH" env-default:"" yaml:"machineProfilesPath"`
	} `yaml:"analysis"`

	// JWT configures bearer authentication of mutating endpoints
	JWT struct {
		// PublicKey verifies tokens; leaving it empty disables authentication
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
		// PrivateKey signs tokens issued by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Client configures the command line client of the API
	Client struct {
		// BaseURL is the API root, without the /api/v1 prefix
		BaseURL string `env:"CLIENT_BASE_URL" env-default:"http://localhost:8080" yaml:"baseURL"`
		// Timeout bounds every request
		Timeout time.Duration `env:"CLIENT_TIMEOUT" env-default:"60s" yaml:"timeout"`
		// PollInterval is the delay between job status polls
		PollInterval time.Duration `env:"CLIENT_POLL_INTERVAL" env-default:"1800ms" yaml:"pollInterval"`
		// LocalDBPath is the bbolt file holding the offline mock data
		LocalDBPath string `env:"CLIENT_LOCAL_DB_PATH" env-default:".estimator/client.db" yaml:"localDBPath"`
		// Token is sent as a bearer token when set
		Token string `env:"CLIENT_TOKEN" env-default:"" yaml:"token"`
	} `yaml:"client"`

	// Orders configures the document store behind the orders desk
	Orders struct {
		// Backend is either "local" (bbolt) or "postgres"
		Backend string `env:"ORDERS_BACKEND" env-default:"local" yaml:"backend"`
		// LocalDBPath is the bbolt file used by the local backend
		LocalDBPath string `env:"ORDERS_LOCAL_DB_PATH" env-default:".estimator/orders.db" yaml:"localDBPath"`
	} `yaml:"orders"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

const (
	OrdersBackendLocal    = "local"
	OrdersBackendPostgres = "postgres"
)

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv fills a Config from the environment and defaults only. The client
// commands use it when no config file exists.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from environment: %w", err)
	}

	return &cfg, nil
}
