package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// MigrationsTable 與其他服務共用同一個資料庫時避免撞名
const MigrationsTable = "dashboard_schema_migrations"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrateInstance 是 *migrate.Migrate 用到的方法
type migrateInstance interface {
	Up() error
	Down() error
}

func defaultMigrateNew(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
	m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
	if err != nil {
		return nil, err
	}
	return m, nil
}

var (
	sqlOpenDB              = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn              = iofs.New
	migrateNewWithInstance = defaultMigrateNew
)

func newMigrator(dbURL string) (migrateInstance, func(), error) {
	sqlDB, err := sqlOpenDB("pgx", dbURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open: %w", err)
	}
	closeFn := func() { sqlDB.Close() }

	driver, err := postgresWithInstanceFn(sqlDB, &postgres.Config{MigrationsTable: MigrationsTable})
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("postgres driver: %w", err)
	}

	sourceDriver, err := iofsNewFn(migrationsFS, "migrations")
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("embedded source: %w", err)
	}

	m, err := migrateNewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return m, closeFn, nil
}

// migrateStep 建立 migrator 執行 step，ErrNoChange 視為成功
func migrateStep(dbURL, name string, step func(m migrateInstance) error) error {
	m, closeFn, err := newMigrator(dbURL)
	if err != nil {
		return fmt.Errorf("migrate %s: %w", name, err)
	}
	defer closeFn()

	err = step(m)
	if err == nil || errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	var dirty migrate.ErrDirty
	if errors.As(err, &dirty) {
		return fmt.Errorf("migrate %s: database is dirty at version %d, fix it and force the version before retrying", name, dirty.Version)
	}
	return fmt.Errorf("migrate %s: %w", name, err)
}

// RunMigrations 套用所有尚未執行的 migration
func RunMigrations(dbURL string) error {
	return migrateStep(dbURL, "up", migrateInstance.Up)
}

// RollbackAll 退回所有 migration，會刪掉 dashboard_documents
func RollbackAll(dbURL string) error {
	return migrateStep(dbURL, "down", migrateInstance.Down)
}
