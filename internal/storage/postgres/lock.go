package postgres

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/jmoiron/sqlx"
)

// AdvisoryLock serializes sync runs that target the same (job, scope) pair
// using Postgres session advisory locks. The session holding the lock is
// pinned to a dedicated connection so release always happens on the session
// that acquired it; if the process dies the server drops the session and
// the lock with it.
type AdvisoryLock struct {
	db *sqlx.DB
}

func NewAdvisoryLock(db *sqlx.DB) *AdvisoryLock {
	return &AdvisoryLock{db: db}
}

// LockHandle owns the pinned connection until Release.
type LockHandle struct {
	conn *sqlx.Conn
	key  int64
}

// TryAcquire attempts the lock without blocking. A false return means
// another run holds the same scope right now.
func (l *AdvisoryLock) TryAcquire(ctx context.Context, scope string) (*LockHandle, bool, error) {
	key := lockKey(scope)

	conn, err := l.db.Connx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("acquire lock connection: %w", err)
	}

	var acquired bool
	if err := conn.GetContext(ctx, &acquired, "SELECT pg_try_advisory_lock($1)", key); err != nil {
		_ = conn.Close()
		return nil, false, fmt.Errorf("try advisory lock: %w", err)
	}

	if !acquired {
		_ = conn.Close()
		return nil, false, nil
	}

	return &LockHandle{conn: conn, key: key}, true, nil
}

func (h *LockHandle) Release(ctx context.Context) error {
	defer h.conn.Close()

	var released bool
	if err := h.conn.GetContext(ctx, &released, "SELECT pg_advisory_unlock($1)", h.key); err != nil {
		return fmt.Errorf("advisory unlock: %w", err)
	}
	return nil
}

func lockKey(scope string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(scope))
	return int64(h.Sum64())
}
