package postgres

import (
	"context"
	"testing"
	"time"

	"paywallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(walletID uuid.UUID) *domain.Transaction {
	return &domain.Transaction{
		ID:          uuid.New(),
		WalletID:    walletID,
		ServiceName: "mtn",
		Beneficiary: "08012345678",
		Type:        domain.TransactionTypeDebit,
		Amount:      decimal.RequireFromString("500"),
		Reference:   "req-001",
		Status:      domain.TransactionStatusSuccess,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
}

func transactionColumns() []string {
	return []string{"id", "wallet_id", "service_name", "beneficiary", "type", "amount", "reference", "status", "created_at"}
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	entry := newTestTransaction(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(entry.ID, entry.WalletID, entry.ServiceName, entry.Beneficiary,
			entry.Type, entry.Amount, entry.Reference, entry.Status, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByReference_Found(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	entry := newTestTransaction(uuid.New())
	entry.Type = domain.TransactionTypeCredit
	entry.Reference = "ref-paid-1"

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM transactions WHERE reference").
		WithArgs("ref-paid-1", domain.TransactionTypeCredit).
		WillReturnRows(pgxmock.NewRows(transactionColumns()).
			AddRow(entry.ID, entry.WalletID, entry.ServiceName, entry.Beneficiary,
				entry.Type, entry.Amount, entry.Reference, entry.Status, entry.CreatedAt))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByReference(context.Background(), tx, "ref-paid-1", domain.TransactionTypeCredit)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, entry.ID, result.ID)
	assert.Equal(t, domain.TransactionTypeCredit, result.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByReference_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM transactions WHERE reference").
		WithArgs("ref-unknown", domain.TransactionTypeCredit).
		WillReturnRows(pgxmock.NewRows(transactionColumns()))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByReference(context.Background(), tx, "ref-unknown", domain.TransactionTypeCredit)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	walletID := uuid.New()
	a := newTestTransaction(walletID)
	b := newTestTransaction(walletID)
	b.Type = domain.TransactionTypeCredit
	b.ServiceName = "wallet-funding"

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE wallet_id").
		WithArgs(walletID, 20, 0).
		WillReturnRows(pgxmock.NewRows(transactionColumns()).
			AddRow(a.ID, a.WalletID, a.ServiceName, a.Beneficiary, a.Type, a.Amount, a.Reference, a.Status, a.CreatedAt).
			AddRow(b.ID, b.WalletID, b.ServiceName, b.Beneficiary, b.Type, b.Amount, b.Reference, b.Status, b.CreatedAt))

	result, err := repo.ListByWallet(context.Background(), walletID, 20, 0)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, domain.TransactionTypeDebit, result[0].Type)
	assert.Equal(t, domain.TransactionTypeCredit, result[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByWallet_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	walletID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE wallet_id").
		WithArgs(walletID, 20, 0).
		WillReturnRows(pgxmock.NewRows(transactionColumns()))

	result, err := repo.ListByWallet(context.Background(), walletID, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
