package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Executor ExecutorConfig
	Policy   PolicyDefaultsConfig
	Feed     FeedConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// ExecutorConfig contains execution backend configuration
type ExecutorConfig struct {
	BaseURL string
	APIKey  string
	Timeout int // in seconds, bounds the wait for a transfer result
}

// PolicyDefaultsConfig seeds the policy row created on first access
type PolicyDefaultsConfig struct {
	MaxTransactionAmount float64
	MonthlyBudget        float64
	AllowList            []string
}

// FeedConfig contains activity fan-out configuration
type FeedConfig struct {
	BufferSize int // per-subscriber queue size
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
