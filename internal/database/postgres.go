package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dashboard-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// documentName 是 dashboard_documents 中唯一一筆文件的主鍵
const documentName = "dashboard"

var pgxpoolNew = pgxpool.New

func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// PostgresStore 把整份文件存成 jsonb 的單一列。
// Update 在交易內以 SELECT ... FOR UPDATE 鎖住該列，多個實例同時寫入也不會互相覆蓋。
type PostgresStore struct {
	db DB
}

func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ReadAll(ctx context.Context) (*model.Dataset, error) {
	var body string
	err := s.db.QueryRow(ctx,
		`SELECT body FROM dashboard_documents WHERE name = $1`,
		documentName,
	).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return &model.Dataset{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("PostgresStore.ReadAll: %w", err)
	}
	return decodeDataset(body)
}

func (s *PostgresStore) WriteAll(ctx context.Context, d *model.Dataset) error {
	body, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("PostgresStore.WriteAll: %w", err)
	}
	_, err = s.db.Exec(ctx,
		`INSERT INTO dashboard_documents (name, body, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = now()`,
		documentName,
		string(body),
	)
	if err != nil {
		return fmt.Errorf("PostgresStore.WriteAll: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, fn func(d *model.Dataset) error) error {
	var fnErr error
	err := withTx(ctx, s.db, func(tx pgx.Tx) error {
		// 確保列存在，才能以 FOR UPDATE 鎖住
		if _, err := tx.Exec(ctx,
			`INSERT INTO dashboard_documents (name, body) VALUES ($1, '{}'::jsonb)
			 ON CONFLICT (name) DO NOTHING`,
			documentName,
		); err != nil {
			return err
		}

		var body string
		if err := tx.QueryRow(ctx,
			`SELECT body FROM dashboard_documents WHERE name = $1 FOR UPDATE`,
			documentName,
		).Scan(&body); err != nil {
			return err
		}

		d, err := decodeDataset(body)
		if err != nil {
			return err
		}
		if fnErr = fn(d); fnErr != nil {
			return fnErr
		}

		next, err := json.Marshal(d)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`UPDATE dashboard_documents SET body = $2, updated_at = now() WHERE name = $1`,
			documentName,
			string(next),
		)
		return err
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return fmt.Errorf("PostgresStore.Update: %w", err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}

func decodeDataset(body string) (*model.Dataset, error) {
	d := &model.Dataset{}
	if err := json.Unmarshal([]byte(body), d); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return d, nil
}
