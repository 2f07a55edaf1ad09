// Package config 以 Viper 從 .env 與環境變數載入並驗證設定。
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dashboard-api/internal/database"

	"github.com/spf13/viper"
)

// Config 是啟動時載入一次、之後以參數注入各元件的設定
type Config struct {
	Port       int    `mapstructure:"PORT"`
	Env        string `mapstructure:"APP_ENV"`
	AppVersion string `mapstructure:"APP_VERSION"`

	// JWTSecret 為空時服務仍可啟動，但所有 token 操作回 500
	JWTSecret    string `mapstructure:"JWT_SECRET"`
	JWTExpiresIn string `mapstructure:"JWT_EXPIRES_IN"`
	JWTIssuer    string `mapstructure:"JWT_ISSUER"`
	BcryptCost   int    `mapstructure:"BCRYPT_COST"`

	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	DataFile      string `mapstructure:"DATA_FILE"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	S3Bucket      string `mapstructure:"S3_BUCKET"`
	S3Key         string `mapstructure:"S3_KEY"`
	S3Region      string `mapstructure:"S3_REGION"`
	S3Endpoint    string `mapstructure:"S3_ENDPOINT"`
	S3AccessKey   string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey   string `mapstructure:"S3_SECRET_KEY"`

	// RedisAddr 為空表示不啟用 stats 快取
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	StatsCacheTTL string `mapstructure:"STATS_CACHE_TTL"`

	CORSOrigin           string `mapstructure:"CORS_ORIGIN"`
	RateLimitWindowMS    int    `mapstructure:"RATE_LIMIT_WINDOW_MS"`
	RateLimitMaxRequests int    `mapstructure:"RATE_LIMIT_MAX_REQUESTS"`

	LogLevel       string `mapstructure:"LOG_LEVEL"`
	LogFormat      string `mapstructure:"LOG_FORMAT"`
	WorkerCount    int    `mapstructure:"WORKER_COUNT"`
	AuditQueueSize int    `mapstructure:"AUDIT_QUEUE_SIZE"`

	tokenTTL time.Duration
	cacheTTL time.Duration
}

// Load 讀取工作目錄下的 .env（不存在就略過）再讀環境變數，環境變數優先
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile 同 Load，但 .env 路徑由呼叫端指定
func LoadFile(envFile string) (*Config, error) {
	v := viper.New()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		_ = v.ReadInConfig() // 找不到檔案時忽略
	}

	v.AutomaticEnv()

	v.SetDefault("PORT", 4000)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRES_IN", "24h")
	v.SetDefault("JWT_ISSUER", "dashboard-api")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("STORAGE_DRIVER", database.DriverFile)
	v.SetDefault("DATA_FILE", "data/data.json")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_KEY", "data.json")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_ACCESS_KEY", "")
	v.SetDefault("S3_SECRET_KEY", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("STATS_CACHE_TTL", "1m")
	v.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_WINDOW_MS", 3600000) // 1h
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 500)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("WORKER_COUNT", 1)
	v.SetDefault("AUDIT_QUEUE_SIZE", 256)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.New("config: PORT must be between 1 and 65535")
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = 12
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return errors.New("config: BCRYPT_COST must be between 4 and 31")
	}

	ttl, err := ParseTTL(c.JWTExpiresIn)
	if err != nil {
		return fmt.Errorf("config: JWT_EXPIRES_IN: %w", err)
	}
	c.tokenTTL = ttl

	cacheTTL, err := ParseTTL(c.StatsCacheTTL)
	if err != nil {
		return fmt.Errorf("config: STATS_CACHE_TTL: %w", err)
	}
	c.cacheTTL = cacheTTL

	switch c.StorageDriver {
	case database.DriverFile:
		if c.DataFile == "" {
			return errors.New("config: DATA_FILE must be set for the file driver")
		}
	case database.DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL must be set for the postgres driver")
		}
	case database.DriverS3:
		if c.S3Bucket == "" {
			return errors.New("config: S3_BUCKET must be set for the s3 driver")
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.RateLimitWindowMS <= 0 || c.RateLimitMaxRequests <= 0 {
		return errors.New("config: RATE_LIMIT_WINDOW_MS and RATE_LIMIT_MAX_REQUESTS must be positive")
	}
	if c.WorkerCount <= 0 {
		c.WorkerCount = 1
	}
	if c.AuditQueueSize < 0 {
		return errors.New("config: AUDIT_QUEUE_SIZE must not be negative")
	}
	return nil
}

// ParseTTL 接受 Go duration（"15m"、"24h"）、天數（"7d"）或純秒數（"3600"）
func ParseTTL(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty duration")
	}

	var d time.Duration
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		d = time.Duration(n) * 24 * time.Hour
	} else if n, err := strconv.Atoi(s); err == nil {
		d = time.Duration(n) * time.Second
	} else {
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration %q must be positive", s)
	}
	return d, nil
}

// TokenTTL 是驗證過的 JWT_EXPIRES_IN
func (c *Config) TokenTTL() time.Duration { return c.tokenTTL }

// StatsCacheDuration 是驗證過的 STATS_CACHE_TTL
func (c *Config) StatsCacheDuration() time.Duration { return c.cacheTTL }

// RateLimitWindow 回傳 RATE_LIMIT_WINDOW_MS
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowMS) * time.Millisecond
}

// CORSOrigins 回傳以逗號分隔的來源清單
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSOrigin, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// StorageOptions 轉成 database.Open 的參數
func (c *Config) StorageOptions() database.Options {
	return database.Options{
		Driver:      c.StorageDriver,
		FilePath:    c.DataFile,
		DatabaseURL: c.DatabaseURL,
		S3: database.S3Options{
			Bucket:    c.S3Bucket,
			Key:       c.S3Key,
			Region:    c.S3Region,
			Endpoint:  c.S3Endpoint,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
		},
	}
}
