// Package xpgx adapts a pgx pool to squirrel statements and struct scanning.
package xpgx

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ougirez/rifmis/internal/pkg/logger"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// DB is satisfied by *pgxpool.Pool and by pgxmock pools.
type DB interface {
	Querier
	Ping(ctx context.Context) error
	Close()
}

type Pool interface {
	Querier
	Selectx(ctx context.Context, dst interface{}, query sq.Sqlizer) error
	Getx(ctx context.Context, dst interface{}, query sq.Sqlizer) error
	Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

type pool struct {
	DB
}

func Wrap(db DB) Pool {
	return &pool{DB: db}
}

func (p *pool) Selectx(ctx context.Context, dst interface{}, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("query.ToSql: %w", err)
	}
	logger.Debugf(ctx, "select: %s %v", sql, args)
	return pgxscan.Select(ctx, p.DB, dst, sql, args...)
}

func (p *pool) Getx(ctx context.Context, dst interface{}, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("query.ToSql: %w", err)
	}
	logger.Debugf(ctx, "get: %s %v", sql, args)
	return pgxscan.Get(ctx, p.DB, dst, sql, args...)
}

func (p *pool) Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("query.ToSql: %w", err)
	}
	logger.Debugf(ctx, "exec: %s %v", sql, args)
	return p.DB.Exec(ctx, sql, args...)
}

type Options struct {
	DSN            string
	MaxConns       int32
	ConnectTimeout time.Duration
}

// Connect builds the shared pool and waits, with exponential backoff bounded by
// ConnectTimeout, until the database answers a ping.
func Connect(ctx context.Context, opts Options) (Pool, error) {
	cfg, err := pgxpool.ParseConfig(opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}

	db, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = opts.ConnectTimeout

	err = backoff.RetryNotify(func() error {
		return db.Ping(ctx)
	}, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
		logger.Warnf(ctx, "database not ready, retrying in %s: %s", next, err.Error())
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("db.Ping: %w", err)
	}

	return Wrap(db), nil
}
