package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dashboard-api/internal/database"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)

	require.Equal(t, 4000, cfg.Port)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, "1.0.0", cfg.AppVersion)
	require.Equal(t, 12, cfg.BcryptCost)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL())
	require.Equal(t, time.Minute, cfg.StatsCacheDuration())
	require.Equal(t, time.Hour, cfg.RateLimitWindow())
	require.Equal(t, 500, cfg.RateLimitMaxRequests)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins())
	require.Equal(t, database.DriverFile, cfg.StorageOptions().Driver)
	require.Equal(t, "data/data.json", cfg.StorageOptions().FilePath)
	require.Equal(t, 1, cfg.WorkerCount)
	require.Equal(t, 256, cfg.AuditQueueSize)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=5000\nJWT_SECRET=from-file\nJWT_EXPIRES_IN=7d\n"), 0o600))
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("CORS_ORIGIN", "http://a.test, http://b.test")
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("S3_BUCKET", "dash")
	t.Setenv("S3_ENDPOINT", "http://minio:9000")

	cfg, err := LoadFile(envFile)
	require.NoError(t, err)
	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, "from-env", cfg.JWTSecret)
	require.Equal(t, 7*24*time.Hour, cfg.TokenTTL())
	require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())

	opts := cfg.StorageOptions()
	require.Equal(t, database.DriverS3, opts.Driver)
	require.Equal(t, "dash", opts.S3.Bucket)
	require.Equal(t, "data.json", opts.S3.Key)
	require.Equal(t, "us-east-1", opts.S3.Region)
	require.Equal(t, "http://minio:9000", opts.S3.Endpoint)
}

func TestLoadValidation(t *testing.T) {
	cases := map[string]map[string]string{
		"bcrypt low":      {"BCRYPT_COST": "3"},
		"bcrypt high":     {"BCRYPT_COST": "32"},
		"bad ttl":         {"JWT_EXPIRES_IN": "soon"},
		"negative ttl":    {"JWT_EXPIRES_IN": "-1h"},
		"bad cache ttl":   {"STATS_CACHE_TTL": "x"},
		"postgres no url": {"STORAGE_DRIVER": "postgres"},
		"s3 no bucket":    {"STORAGE_DRIVER": "s3"},
		"unknown driver":  {"STORAGE_DRIVER": "dynamo"},
		"bad port":        {"PORT": "70000"},
		"zero rate limit": {"RATE_LIMIT_MAX_REQUESTS": "0"},
		"negative queue":  {"AUDIT_QUEUE_SIZE": "-1"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := LoadFile("")
			require.Error(t, err)
		})
	}
}

func TestParseTTL(t *testing.T) {
	cases := map[string]time.Duration{
		"24h":  24 * time.Hour,
		"15m":  15 * time.Minute,
		"1d":   24 * time.Hour,
		"3600": time.Hour,
		" 2h ": 2 * time.Hour,
	}
	for in, want := range cases {
		got, err := ParseTTL(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "xd", "0", "0d", "abc"} {
		_, err := ParseTTL(in)
		require.Error(t, err, in)
	}
}
