package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Store       StoreConfig       `mapstructure:"store"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Templates   TemplatesConfig   `mapstructure:"templates"`
	ImageHost   ImageHostConfig   `mapstructure:"image_host"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
	Captions    []CaptionConfig   `mapstructure:"captions"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"`
	CORS CORSConfig `mapstructure:"cors"`
	// MaxUploadMB caps multipart bodies on the upload endpoint.
	MaxUploadMB int `mapstructure:"max_upload_mb"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
}

// StoreConfig selects the record store backend: memory, sqlite, postgres or redis.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
}

type DatabaseConfig struct {
	Path            string        `mapstructure:"path"`
	URL             string        `mapstructure:"url"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	LogQueries      bool          `mapstructure:"log_queries"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type TemplatesConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ImageHostConfig selects where uploads go: imgbb or s3.
type ImageHostConfig struct {
	Provider string        `mapstructure:"provider"`
	BaseURL  string        `mapstructure:"base_url"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type StorageConfig struct {
	Type      string `mapstructure:"type"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	PublicURL string `mapstructure:"public_url"`
	Prefix    string `mapstructure:"prefix"`
}

// CaptionConfig is one entry of the canned caption pool. Weight is relative;
// an empty pool uses the built-in captions.
type CaptionConfig struct {
	Text   string `mapstructure:"text"`
	Weight int    `mapstructure:"weight"`
}

type LeaderboardConfig struct {
	Limit int `mapstructure:"limit"`
}

// DSN returns the connection string for the configured SQL driver.
func (c *Config) DSN() string {
	if c.Store.Driver == "postgres" {
		return c.Database.URL
	}
	return c.Database.Path
}

// Validate checks the combinations Load cannot express as defaults.
// Parameters: none.
// Returns:
//   - error: non-nil describing the first invalid setting.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "memory", "sqlite", "redis":
	case "postgres":
		if c.Database.URL == "" {
			return fmt.Errorf("store.driver=postgres requires database.url")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	switch c.ImageHost.Provider {
	case "imgbb":
	case "s3":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("image_host.provider=s3 requires storage.bucket")
		}
	default:
		return fmt.Errorf("unknown image host provider %q", c.ImageHost.Provider)
	}

	for i, caption := range c.Captions {
		if caption.Text == "" || caption.Weight < 0 {
			return fmt.Errorf("captions[%d] needs text and a non-negative weight", i)
		}
	}

	if c.Leaderboard.Limit <= 0 {
		return fmt.Errorf("leaderboard.limit must be positive, got %d", c.Leaderboard.Limit)
	}
	return nil
}

func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables explicitly for sensitive data
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("database.url", "DATABASE_URL")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("image_host.api_key", "IMGBB_API_KEY")
	v.BindEnv("storage.endpoint", "S3_ENDPOINT")
	v.BindEnv("storage.access_key", "S3_ACCESS_KEY")
	v.BindEnv("storage.secret_key", "S3_SECRET_KEY")
	v.BindEnv("storage.bucket", "S3_BUCKET")
	v.BindEnv("storage.public_url", "S3_PUBLIC_URL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_upload_mb", 16)
	v.SetDefault("server.cors.allow_all_origins", true)
	v.SetDefault("server.cors.allowed_origins", []string{})
	v.SetDefault("store.driver", "memory")
	v.SetDefault("database.path", "./data/memeshare.db")
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.log_queries", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "memeshare:")
	v.SetDefault("templates.base_url", "https://api.imgflip.com")
	v.SetDefault("templates.timeout", 10*time.Second)
	v.SetDefault("image_host.provider", "imgbb")
	v.SetDefault("image_host.base_url", "https://api.imgbb.com")
	v.SetDefault("image_host.api_key", "YOUR_IMGBB_API_KEY")
	v.SetDefault("image_host.timeout", 30*time.Second)
	v.SetDefault("storage.use_ssl", true)
	v.SetDefault("storage.prefix", "uploads")
	v.SetDefault("leaderboard.limit", 10)
}
