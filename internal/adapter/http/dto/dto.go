package dto

import (
	"paywallet/internal/core/domain"
	"paywallet/internal/core/ports"

	"github.com/shopspring/decimal"
)

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=100"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	FirstName string `json:"first_name" binding:"required,min=1,max=50"`
	LastName  string `json:"last_name" binding:"required,min=1,max=50"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// BalanceResponse is the response for a wallet balance query. Balance is
// null when the lookup failed.
type BalanceResponse struct {
	UserName string           `json:"user_name"`
	Balance  *decimal.Decimal `json:"balance"`
}

// FundWalletRequest is the request body for starting a wallet funding flow.
type FundWalletRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// SetPinRequest is the request body for setting or replacing the wallet PIN.
type SetPinRequest struct {
	Pin string `json:"pin" binding:"required,len=4,numeric"`
}

// WithdrawalRequest is the request body for a wallet withdrawal.
type WithdrawalRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	AccountNumber string          `json:"account_number" binding:"required,len=10,numeric"`
	AccountName   string          `json:"account_name" binding:"required,min=1,max=100"`
	BankCode      string          `json:"bank_code" binding:"required"`
	Pin           string          `json:"pin" binding:"required,len=4,numeric"`
	Reason        string          `json:"reason,omitempty"`
}

// BuyDataRequest is the request body for a data bundle purchase.
type BuyDataRequest struct {
	RequestID     string          `json:"request_id" binding:"required,max=100"`
	ServiceID     string          `json:"service_id" binding:"required"`
	BillersCode   string          `json:"billers_code" binding:"required"`
	VariationCode string          `json:"variation_code" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Phone         string          `json:"phone" binding:"required,min=10,max=15"`
	Pin           string          `json:"pin" binding:"required,len=4,numeric"`
}

// BuyAirtimeRequest is the request body for an airtime purchase.
type BuyAirtimeRequest struct {
	RequestID string          `json:"request_id" binding:"required,max=100"`
	ServiceID string          `json:"service_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Phone     string          `json:"phone" binding:"required,min=10,max=15"`
	Pin       string          `json:"pin" binding:"required,len=4,numeric"`
}

// VendResultResponse is the response body for a purchase attempt. The
// provider's description is passed through verbatim.
type VendResultResponse struct {
	Status      string `json:"status"`
	Description string `json:"description"`
	Reference   string `json:"reference,omitempty"`
}

// TransactionResponse is a single ledger entry.
type TransactionResponse struct {
	ID          string          `json:"id"`
	ServiceName string          `json:"service_name"`
	Beneficiary string          `json:"beneficiary"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"reference"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
}

// ToVendResultResponse maps a vend outcome to its response body.
func ToVendResultResponse(r *domain.VendResult) VendResultResponse {
	return VendResultResponse{
		Status:      string(r.Status),
		Description: r.Description,
		Reference:   r.RequestID,
	}
}

// ToTransactionResponse maps a ledger entry to its response body.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		ServiceName: t.ServiceName,
		Beneficiary: t.Beneficiary,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Reference:   t.Reference,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToWithdrawalRequest maps the request body to the service input.
func (r WithdrawalRequest) ToWithdrawalRequest() ports.WithdrawalRequest {
	return ports.WithdrawalRequest{
		Amount:        r.Amount,
		AccountNumber: r.AccountNumber,
		AccountName:   r.AccountName,
		BankCode:      r.BankCode,
		Pin:           r.Pin,
		Reason:        r.Reason,
	}
}
