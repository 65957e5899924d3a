package store

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/zewedjobs/service-jobportal-go/pkg/database"
)

// Store is the shared query layer. Every read/write goes through it so the
// degrade-to-sentinel contract is applied uniformly: a failed Select returns
// nil, a failed Get reports not-found, a failed Exec returns false. Callers
// must treat every result as possibly absent.
type Store struct {
	mu  sync.Mutex
	db  *sqlx.DB
	cfg database.Config
	log *zap.SugaredLogger
}

// Open connects to Postgres and wraps the handle. The Store owns the
// connection lifecycle: callers Close it on shutdown.
func Open(cfg database.Config, log *zap.SugaredLogger) (*Store, error) {
	sqlDB, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	return &Store{db: sqlx.NewDb(sqlDB, "postgres"), cfg: cfg, log: log}, nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// handle returns the current connection, attempting one transparent reconnect
// when the connection no longer responds to a ping. On reconnect failure the
// stale handle is returned and the subsequent query fails into its sentinel.
func (s *Store) handle(ctx context.Context) *sqlx.DB {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.PingContext(ctx); err == nil {
		return s.db
	}
	s.log.Warnw("store connection lost, reconnecting once")
	sqlDB, err := database.Connect(s.cfg)
	if err != nil {
		s.log.Errorw("store reconnect failed", "err", err)
		return s.db
	}
	old := s.db
	s.db = sqlx.NewDb(sqlDB, "postgres")
	_ = old.Close()
	return s.db
}

// Select fills dest (a pointer to a slice) with all rows. On failure it logs
// and returns false, leaving dest empty.
func (s *Store) Select(ctx context.Context, dest any, query string, args ...any) bool {
	if err := s.handle(ctx).SelectContext(ctx, dest, query, args...); err != nil {
		s.log.Errorw("query failed", "query", firstLine(query), "err", err)
		return false
	}
	return true
}

// Get fills dest with a single row. It returns false both when the row is
// missing and when the query fails; only the latter is logged as an error.
func (s *Store) Get(ctx context.Context, dest any, query string, args ...any) bool {
	err := s.handle(ctx).GetContext(ctx, dest, query, args...)
	if err == nil {
		return true
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.log.Errorw("query failed", "query", firstLine(query), "err", err)
	}
	return false
}

// Exec runs a statement and reports success. Each call commits or fails on
// its own; there are no multi-statement transactions in this system.
func (s *Store) Exec(ctx context.Context, query string, args ...any) bool {
	if _, err := s.handle(ctx).ExecContext(ctx, query, args...); err != nil {
		s.log.Errorw("exec failed", "query", firstLine(query), "err", err)
		return false
	}
	return true
}

// ExecRows runs a statement and returns the affected row count, -1 on failure.
func (s *Store) ExecRows(ctx context.Context, query string, args ...any) int64 {
	res, err := s.handle(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		s.log.Errorw("exec failed", "query", firstLine(query), "err", err)
		return -1
	}
	n, err := res.RowsAffected()
	if err != nil {
		return -1
	}
	return n
}

func firstLine(q string) string {
	for i := 0; i < len(q); i++ {
		if q[i] == '\n' {
			return q[:i]
		}
	}
	return q
}
