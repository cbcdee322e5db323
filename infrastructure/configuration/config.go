package configuration

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"content-pipeline/infrastructure/logger"

	"github.com/spf13/viper"
)

var (
	ErrDatabasePathMissing = errors.New("DATABASE_PATH is not set")
	ErrDatabasePathInvalid = errors.New("DATABASE_PATH is not a usable file location")
)

// Config is read once at startup and handed to collaborators by pointer.
type Config struct {
	Database    Database    `json:"database"`
	App         App         `json:"app"`
	Credentials Credentials `json:"credentials"`
	Logger      Logger      `json:"logger"`
	RedisClient RedisClient `json:"redisClient"`
	TrendCache  TrendCache  `json:"trendCache"`
}

type Database struct {
	Path string `json:"path"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
	InitOnly  bool   `json:"initOnly"`
}

// Credentials are passed through to the generation and scraping stages; nothing here uses them.
type Credentials struct {
	OpenAIAPIKey       string `json:"openaiApiKey"`
	ElevenLabsAPIKey   string `json:"elevenLabsApiKey"`
	PexelsAPIKey       string `json:"pexelsApiKey"`
	RedditClientID     string `json:"redditClientId"`
	RedditClientSecret string `json:"redditClientSecret"`
	RedditUserAgent    string `json:"redditUserAgent"`
}

type Logger struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

type RedisClient struct {
	Addr     string `json:"addr"`
	Username string `json:"username"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

type TrendCache struct {
	TTL time.Duration `json:"ttl"`
}

// Load exports the given env files into the process environment (existing
// variables win), then reads the recognized variables into a Config.
func Load(envFiles ...string) (*Config, error) {
	LoadEnvFromFile(envFiles...)

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("app_port", 10001)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("trend_cache_ttl", 5*time.Minute)

	cfg := &Config{
		Database: Database{
			Path: strings.TrimSpace(v.GetString("database_path")),
		},
		App: App{
			Port:      v.GetInt("app_port"),
			SecretKey: v.GetString("secret_key"),
			InitOnly:  v.GetBool("init_only"),
		},
		Credentials: Credentials{
			OpenAIAPIKey:       v.GetString("openai_api_key"),
			ElevenLabsAPIKey:   v.GetString("elevenlabs_api_key"),
			PexelsAPIKey:       v.GetString("pexels_api_key"),
			RedditClientID:     v.GetString("reddit_client_id"),
			RedditClientSecret: v.GetString("reddit_client_secret"),
			RedditUserAgent:    v.GetString("reddit_user_agent"),
		},
		Logger: Logger{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
		RedisClient: RedisClient{
			Addr:     v.GetString("redis_addr"),
			Username: v.GetString("redis_username"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
		TrendCache: TrendCache{
			TTL: v.GetDuration("trend_cache_ttl"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"databasePath": cfg.Database.Path,
		"port":         cfg.App.Port,
		"initOnly":     cfg.App.InitOnly,
		"credentials":  cfg.Credentials.Presence(),
	}).Info("Config set up successfully")
	return cfg, nil
}

// Validate reports configuration errors that make the store unreachable.
func (c *Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid APP_PORT %d", c.App.Port)
	}
	return nil
}

// Validate checks that Path names a plain file location. URI filenames and query
// parameters are rejected since the driver options are appended by the store.
func (d Database) Validate() error {
	if d.Path == "" {
		return ErrDatabasePathMissing
	}
	if strings.HasPrefix(d.Path, "file:") || strings.ContainsRune(d.Path, '?') {
		return fmt.Errorf("%w: %s must be a plain file path", ErrDatabasePathInvalid, d.Path)
	}
	if info, err := os.Stat(d.Path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrDatabasePathInvalid, d.Path)
	}
	return nil
}

// Presence reports which credentials are set without exposing their values.
func (c Credentials) Presence() map[string]bool {
	return map[string]bool{
		"openai":       c.OpenAIAPIKey != "",
		"elevenlabs":   c.ElevenLabsAPIKey != "",
		"pexels":       c.PexelsAPIKey != "",
		"redditClient": c.RedditClientID != "" && c.RedditClientSecret != "",
		"redditAgent":  c.RedditUserAgent != "",
	}
}
