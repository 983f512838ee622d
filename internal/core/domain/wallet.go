package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet holds a user's spendable balance and transaction PIN.
// Balance is an arbitrary-precision decimal (NUMERIC column) and is never
// allowed to go negative: every debit re-checks the balance under a row lock.
type Wallet struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
	PinHash   *string         `json:"-"` // nil until the user sets a PIN
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// HasPin reports whether a transaction PIN has been set.
func (w *Wallet) HasPin() bool {
	return w.PinHash != nil && *w.PinHash != ""
}

// CanDebit reports whether the balance covers the amount. The comparison is
// strictly greater-than: a purchase for the exact balance is rejected, which
// keeps a post-debit floor above zero.
func (w *Wallet) CanDebit(amount decimal.Decimal) bool {
	return w.Balance.GreaterThan(amount)
}
