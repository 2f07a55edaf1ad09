package database

import (
	"context"
	"fmt"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

// Options 選擇並設定 storage 後端
type Options struct {
	Driver      string
	FilePath    string
	DatabaseURL string
	S3          S3Options
}

var (
	runMigrationsFn = RunMigrations
	newPgxPoolFn    = NewPgxPool
	newS3StoreFn    = NewS3Store
	newFileStoreFn  = NewFileStore
)

// Open 依 Options.Driver 建立對應的 Store；postgres 會先執行 migration
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case DriverFile, "":
		s, err := newFileStoreFn(opts.FilePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverPostgres:
		if err := runMigrationsFn(opts.DatabaseURL); err != nil {
			return nil, fmt.Errorf("Migration 執行失敗: %w", err)
		}
		db, err := newPgxPoolFn(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("DB 連線失敗: %w", err)
		}
		return NewPostgresStore(db), nil
	case DriverS3:
		s, err := newS3StoreFn(ctx, opts.S3)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
