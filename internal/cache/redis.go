package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 快取只是加速，連線或讀寫慢的時候要很快放棄並改讀 storage
const (
	pingTimeout = 5 * time.Second
	dialTimeout = 2 * time.Second
	ioTimeout   = 500 * time.Millisecond
	maxRetries  = 1
)

// redisClient 是 Cache 加上建立連線時需要的 Ping
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

func defaultRedisNewClient(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

var redisNewClient = defaultRedisNewClient

func redisOptions(addr, password string, db int) *redis.Options {
	return &redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
		MaxRetries:   maxRetries,
	}
}

// NewRedisClient 建立 stats 快取用的 Redis 連線，Ping 失敗時關閉連線
func NewRedisClient(ctx context.Context, addr string, password string, db int) (Cache, error) {
	if addr == "" {
		return nil, errors.New("redis: empty address")
	}
	client := redisNewClient(redisOptions(addr, password, db))

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}
