package models

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Accounts AccountsConfig
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string
	Environment string
	Version     string
	Debug       bool
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
	StoreTimeout    int
}

// DatabaseConfig holds PostgreSQL connection configuration
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

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig holds NSQ daemon and lookupd addresses
type NSQConfig struct {
	Address        string
	LookupdAddress string
	Channel        string
}

// JWTConfig holds token signing configuration
type JWTConfig struct {
	Secret     string
	Expiration int
	Issuer     string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// AccountsConfig holds staff provisioning settings
type AccountsConfig struct {
	EmailDomain string
}
