package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of money movement.
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "DEBIT"
	TransactionTypeCredit TransactionType = "CREDIT"
)

// TransactionStatus represents the final state of a ledger entry.
type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// Transaction is an immutable ledger entry. A row is written if and only if
// the corresponding external call reported success, in the same database
// transaction as the balance change.
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	WalletID    uuid.UUID         `json:"wallet_id"`
	ServiceName string            `json:"service_name"`
	Beneficiary string            `json:"beneficiary"` // phone number or bank code
	Type        TransactionType   `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Reference   string            `json:"reference"` // provider transaction reference
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}
