package postgres

import (
	"context"
	"errors"
	"fmt"

	"paywallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet into the database.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, user_id, balance, pin_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.UserID, w.Balance, w.PinHash, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByUserEmail fetches a wallet by its owner's email (non-locking read).
// Returns nil, nil when absent.
func (r *WalletRepo) GetByUserEmail(ctx context.Context, email string) (*domain.Wallet, error) {
	query := `SELECT w.id, w.user_id, w.balance, w.pin_hash, w.created_at, w.updated_at
		FROM wallets w JOIN users u ON u.id = w.user_id WHERE u.email = $1`

	return scanWallet(r.pool.QueryRow(ctx, query, email))
}

// GetByUserEmailForUpdate fetches a wallet by its owner's email with a row
// lock. MUST be called within a transaction; a concurrent caller blocks here
// until the first transaction commits or rolls back.
func (r *WalletRepo) GetByUserEmailForUpdate(ctx context.Context, tx pgx.Tx, email string) (*domain.Wallet, error) {
	query := `SELECT w.id, w.user_id, w.balance, w.pin_hash, w.created_at, w.updated_at
		FROM wallets w JOIN users u ON u.id = w.user_id WHERE u.email = $1 FOR UPDATE OF w`

	return scanWallet(tx.QueryRow(ctx, query, email))
}

// UpdateBalance sets a wallet's balance within a transaction.
func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error {
	query := `UPDATE wallets SET balance = $1, updated_at = NOW() WHERE id = $2`

	tag, err := tx.Exec(ctx, query, balance, walletID)
	if err != nil {
		return fmt.Errorf("update wallet balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	return nil
}

// UpdatePin replaces a wallet's PIN hash unconditionally.
func (r *WalletRepo) UpdatePin(ctx context.Context, walletID uuid.UUID, pinHash string) error {
	query := `UPDATE wallets SET pin_hash = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, pinHash, walletID)
	if err != nil {
		return fmt.Errorf("update wallet pin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", walletID)
	}
	return nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(&w.ID, &w.UserID, &w.Balance, &w.PinHash, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan wallet: %w", err)
	}
	return w, nil
}
