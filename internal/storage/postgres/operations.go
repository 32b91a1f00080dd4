package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"matchsync/internal/domain"
)

// OperationStore persists the audit trail of sync runs.
type OperationStore struct {
	db *sqlx.DB
}

func NewOperationStore(db *sqlx.DB) *OperationStore {
	return &OperationStore{db: db}
}

func (s *OperationStore) Insert(ctx context.Context, op domain.Operation) error {
	query := `
		INSERT INTO operations (operation, success, api_calls, duration, details)
		VALUES ($1, $2, $3, $4, $5)`

	// The driver would encode []byte as bytea, which jsonb rejects.
	var details *string
	if len(op.Details) > 0 {
		v := string(op.Details)
		details = &v
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		op.Name, op.Success, op.APICalls, op.Duration, details,
	)
	if err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

func (s *OperationStore) Recent(ctx context.Context, limit int) ([]domain.Operation, error) {
	query := `
		SELECT id, operation, success, api_calls, duration, details, created_at
		FROM operations
		ORDER BY created_at DESC
		LIMIT $1`

	var ops []domain.Operation
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ops, query, limit); err != nil {
		return nil, fmt.Errorf("select operations: %w", err)
	}
	return ops, nil
}
