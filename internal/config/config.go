package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	App       AppConfig       `yaml:"app"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Emergency EmergencyConfig `yaml:"emergency"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Events    EventsConfig    `yaml:"events"`
	Finance   FinanceConfig   `yaml:"finance"`
	Assistant AssistantConfig `yaml:"assistant"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Swagger   SwaggerConfig   `yaml:"swagger"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"45s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds token and bootstrap admin settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"agewell"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
	AdminEmail       string        `yaml:"admin_email"      env:"AUTH_ADMIN_EMAIL"`
	AdminPassword    string        `yaml:"admin_password"   env:"AUTH_ADMIN_PASSWORD"`
	AdminName        string        `yaml:"admin_name"       env:"AUTH_ADMIN_NAME"       env-default:"Administrator"`
}

// HasAdmin reports whether a bootstrap admin account is configured.
func (c AuthConfig) HasAdmin() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
}

// AppConfig holds settings shared by all services.
type AppConfig struct {
	Timezone string `yaml:"timezone" env:"APP_TIMEZONE" env-default:"UTC"`

	// Location is parsed from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// ScheduleConfig holds medicine schedule generation settings.
type ScheduleConfig struct {
	WindowDays int `yaml:"window_days" env:"SCHEDULE_WINDOW_DAYS" env-default:"30"`
}

// EmergencyConfig holds emergency log settings.
type EmergencyConfig struct {
	Retention time.Duration `yaml:"retention" env:"EMERGENCY_RETENTION" env-default:"1h"`
}

// DashboardConfig holds dashboard look-ahead settings.
type DashboardConfig struct {
	ReminderDays           int `yaml:"reminder_days"            env:"DASHBOARD_REMINDER_DAYS"            env-default:"3"`
	BillDays               int `yaml:"bill_days"                env:"DASHBOARD_BILL_DAYS"                env-default:"7"`
	CaregiverReminderLimit int `yaml:"caregiver_reminder_limit" env:"DASHBOARD_CAREGIVER_REMINDER_LIMIT" env-default:"5"`
	RecentLimit            int `yaml:"recent_limit"             env:"DASHBOARD_RECENT_LIMIT"             env-default:"10"`
}

// EventsConfig holds event creation rules.
type EventsConfig struct {
	MinLeadDays  int    `yaml:"min_lead_days" env:"EVENTS_MIN_LEAD_DAYS" env-default:"2"`
	MaxLeadDays  int    `yaml:"max_lead_days" env:"EVENTS_MAX_LEAD_DAYS" env-default:"7"`
	EarliestTime string `yaml:"earliest_time" env:"EVENTS_EARLIEST_TIME" env-default:"05:00"`
	LatestTime   string `yaml:"latest_time"   env:"EVENTS_LATEST_TIME"   env-default:"22:00"`
}

// FinanceConfig holds bill tracking settings.
type FinanceConfig struct {
	DueSoonDays int `yaml:"due_soon_days" env:"FINANCE_DUE_SOON_DAYS" env-default:"3"`
}

// AssistantConfig holds settings for the OpenAI-compatible chat provider.
type AssistantConfig struct {
	BaseURL     string        `yaml:"base_url"    env:"ASSISTANT_BASE_URL"    env-default:"https://dashscope-intl.aliyuncs.com/compatible-mode/v1"`
	APIKey      string        `yaml:"api_key"     env:"ASSISTANT_API_KEY"`
	Model       string        `yaml:"model"       env:"ASSISTANT_MODEL"       env-default:"qwen3-next-80b-a3b-instruct"`
	Timeout     time.Duration `yaml:"timeout"     env:"ASSISTANT_TIMEOUT"     env-default:"30s"`
	Temperature float64       `yaml:"temperature" env:"ASSISTANT_TEMPERATURE" env-default:"0.3"`
	MaxTokens   int           `yaml:"max_tokens"  env:"ASSISTANT_MAX_TOKENS"  env-default:"1024"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits unauthenticated auth endpoints per client IP.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// SwaggerConfig toggles the API documentation UI.
type SwaggerConfig struct {
	Enabled bool `yaml:"enabled" env:"SWAGGER_ENABLED" env-default:"false"`
}
