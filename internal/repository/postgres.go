// Package repository содержит хранилища истории проверок номеров.
package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mmeshcher/luhn-system/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresRepository хранит историю проверок в PostgreSQL.
type PostgresRepository struct {
	pool   *pgxpool.Pool
	delays []time.Duration
}

// NewPostgresRepository создаёт новый репозиторий и инициализирует схему БД через миграции.
func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	r := &PostgresRepository{
		pool:   pool,
		delays: []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second},
	}

	if err := r.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return r, nil
}

func (r *PostgresRepository) runMigrations(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// withRetry повторяет fn при временных ошибках БД, выдерживая паузы из delays.
func withRetry(ctx context.Context, delays []time.Duration, fn func() error) error {
	var err error

	for i := 0; i <= len(delays); i++ {
		err = fn()
		if err == nil {
			return nil
		}

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		if !isRetryable(err) || i == len(delays) {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delays[i]):
		}
	}
	return err
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.SerializationFailure ||
			pgErr.Code == pgerrcode.DeadlockDetected ||
			pgerrcode.IsConnectionException(pgErr.Code)
	}
	return isConnectionError(err)
}

func isConnectionError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "connection reset by peer")
}

// Close закрывает пул соединений с БД.
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// SaveCheck сохраняет результат проверки и возвращает его идентификатор.
func (r *PostgresRepository) SaveCheck(ctx context.Context, c model.Check) (int64, error) {
	var id int64
	err := withRetry(ctx, r.delays, func() error {
		return r.pool.QueryRow(ctx,
			`INSERT INTO checks (kind, masked, total, valid, checked_at)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			string(c.Kind), c.Masked, c.Total, c.Valid, c.CheckedAt,
		).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("insert check: %w", err)
	}
	return id, nil
}

// ListChecks возвращает последние проверки, новые первыми.
func (r *PostgresRepository) ListChecks(ctx context.Context, limit int) ([]model.Check, error) {
	var checks []model.Check

	err := withRetry(ctx, r.delays, func() error {
		checks = checks[:0]

		rows, err := r.pool.Query(ctx,
			`SELECT id, kind, masked, total, valid, checked_at
			 FROM checks
			 ORDER BY checked_at DESC, id DESC
			 LIMIT $1`,
			limit,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				c    model.Check
				kind string
			)
			if err := rows.Scan(&c.ID, &kind, &c.Masked, &c.Total, &c.Valid, &c.CheckedAt); err != nil {
				return fmt.Errorf("scan check: %w", err)
			}
			c.Kind = model.CheckKind(kind)
			checks = append(checks, c)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("select checks: %w", err)
	}

	return checks, nil
}
