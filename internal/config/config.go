package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// external data-source adapters and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
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
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"appraiser" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis configures the shared key-value store used by the result cache
	// and the rate limiter. An empty Addr selects the in-process store, which
	// is fine for a single instance but shares nothing between replicas.
	Redis struct {
		// Addr is the host:port of the Redis server; empty disables Redis
		Addr string `env:"REDIS_ADDR" env-default:"" yaml:"addr"`
		// Password for Redis authentication, empty when auth is disabled
		Password string `env:"REDIS_PASSWORD" env-default:"" yaml:"password"`
		// DB is the Redis logical database number
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
	} `yaml:"redis"`

	// Appraiser contains the evaluation pipeline settings
	Appraiser struct {
		// ResultCacheTTL is the duration during which a completed appraisal makes
		// new requests for the same domain and options reuse that result instead
		// of re-running the evaluation
		ResultCacheTTL time.Duration `env:"APPRAISER_RESULT_CACHE_TTL" env-default:"24h" yaml:"resultCacheTTL"`
		// ComparablesLimit is how many ranked comparable sales an evaluation
		// retrieves and attaches to the result
		ComparablesLimit int `env:"APPRAISER_COMPARABLES_LIMIT" env-default:"5" yaml:"comparablesLimit"`
		// CandidatePoolSize bounds how many recent sales the comparable
		// matcher pulls from storage before similarity ranking
		CandidatePoolSize uint `env:"APPRAISER_CANDIDATE_POOL_SIZE" env-default:"500" yaml:"candidatePoolSize"`
		// WorkerMaxWorkers caps how many background augmentation jobs run
		// concurrently on the default queue
		WorkerMaxWorkers int `env:"APPRAISER_WORKER_MAX_WORKERS" env-default:"100" yaml:"workerMaxWorkers"`
		// WhoisJobMaxAttempts is the maximum number of attempts the background
		// worker should make for a deferred WHOIS augmentation job before
		// marking it failed
		WhoisJobMaxAttempts int `env:"APPRAISER_WHOIS_JOB_MAX_ATTEMPTS" env-default:"5" yaml:"whoisJobMaxAttempts"`
	} `yaml:"appraiser"`

	// RateLimit contains the per-client request ceiling settings
	RateLimit struct {
		// Ceiling is the number of requests allowed per window per client
		Ceiling int64 `env:"RATE_LIMIT_CEILING" env-default:"60" yaml:"ceiling"`
		// Window is the fixed window length; the window is anchored at each
		// client's first request, not at wall-clock boundaries
		Window time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"1m" yaml:"window"`
	} `yaml:"rateLimit"`

	// Adapters contains credentials and deadlines for the external data
	// sources. A missing key disables the adapter; evaluation then uses the
	// local estimator for that signal.
	Adapters struct {
		// Whois configures the WhoisXML API client
		Whois struct {
			APIKey  string        `env:"WHOIS_API_KEY" env-default:"" yaml:"apiKey"`
			Timeout time.Duration `env:"WHOIS_TIMEOUT" env-default:"10s" yaml:"timeout"`
		} `yaml:"whois"`
		// Traffic configures the SimilarWeb client
		Traffic struct {
			APIKey  string        `env:"TRAFFIC_API_KEY" env-default:"" yaml:"apiKey"`
			Timeout time.Duration `env:"TRAFFIC_TIMEOUT" env-default:"8s" yaml:"timeout"`
		} `yaml:"traffic"`
		// Trademark configures the MarkerAPI client
		Trademark struct {
			Username string        `env:"TRADEMARK_USERNAME" env-default:"" yaml:"username"`
			Password string        `env:"TRADEMARK_PASSWORD" env-default:"" yaml:"password"`
			Timeout  time.Duration `env:"TRADEMARK_TIMEOUT" env-default:"8s" yaml:"timeout"`
		} `yaml:"trademark"`
		// Commentary configures the OpenAI client used for appraisal prose
		Commentary struct {
			APIKey  string        `env:"OPENAI_API_KEY" env-default:"" yaml:"apiKey"`
			Model   string        `env:"OPENAI_MODEL" env-default:"" yaml:"model"`
			Timeout time.Duration `env:"OPENAI_TIMEOUT" env-default:"10s" yaml:"timeout"`
		} `yaml:"commentary"`
	} `yaml:"adapters"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
