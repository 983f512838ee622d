package ports

import (
	"context"

	"paywallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx run inside transaction blocks; GetByUserEmailForUpdate
// takes a row lock so concurrent balance mutations on the same wallet serialize.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByUserEmail(ctx context.Context, email string) (*domain.Wallet, error)
	GetByUserEmailForUpdate(ctx context.Context, tx pgx.Tx, email string) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error
	UpdatePin(ctx context.Context, walletID uuid.UUID, pinHash string) error
}

// TransactionRepository defines persistence for the append-only ledger.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	// GetByReference returns the ledger entry of the given type carrying
	// the reference, or nil when none exists. It runs inside the caller's
	// transaction so the funding flow can check and credit atomically.
	GetByReference(ctx context.Context, tx pgx.Tx, reference string, txType domain.TransactionType) (*domain.Transaction, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
