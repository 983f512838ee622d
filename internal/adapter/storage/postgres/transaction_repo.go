package postgres

import (
	"context"
	"fmt"

	"paywallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository. The ledger is
// append-only: there is no update or delete.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserts a ledger entry within a database transaction.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, wallet_id, service_name, beneficiary, type, amount, reference, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.WalletID, t.ServiceName, t.Beneficiary,
		t.Type, t.Amount, t.Reference, t.Status, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByReference fetches the entry of the given type carrying the reference,
// if any. Used by the funding flow to keep reference crediting idempotent;
// a partial unique index on (reference) WHERE type = 'CREDIT' backs it.
func (r *TransactionRepo) GetByReference(ctx context.Context, tx pgx.Tx, reference string, txType domain.TransactionType) (*domain.Transaction, error) {
	query := `SELECT id, wallet_id, service_name, beneficiary, type, amount, reference, status, created_at
		FROM transactions WHERE reference = $1 AND type = $2 LIMIT 1`

	t := domain.Transaction{}
	err := tx.QueryRow(ctx, query, reference, txType).Scan(
		&t.ID, &t.WalletID, &t.ServiceName, &t.Beneficiary,
		&t.Type, &t.Amount, &t.Reference, &t.Status, &t.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by reference: %w", err)
	}
	return &t, nil
}

// ListByWallet fetches ledger entries for a wallet, newest first.
func (r *TransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	query := `SELECT id, wallet_id, service_name, beneficiary, type, amount, reference, status, created_at
		FROM transactions WHERE wallet_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t := domain.Transaction{}
		err := rows.Scan(
			&t.ID, &t.WalletID, &t.ServiceName, &t.Beneficiary,
			&t.Type, &t.Amount, &t.Reference, &t.Status, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, nil
}
