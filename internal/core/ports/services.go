package ports

import (
	"context"
	"time"

	"paywallet/internal/core/domain"

	"github.com/shopspring/decimal"
)

// WalletService is the orchestration layer between the authenticated caller,
// the wallet/ledger store and the two external providers. The caller's email
// is passed explicitly into every operation.
type WalletService interface {
	// GetWalletBalance never returns a non-nil error: any internal failure
	// yields a result with a nil Balance.
	GetWalletBalance(ctx context.Context, email string) (*WalletBalance, error)

	FundWallet(ctx context.Context, email string, amount decimal.Decimal) (*domain.FundingResponse, error)
	VerifyPayment(ctx context.Context, email string, reference string) (*domain.PaymentVerification, error)

	UpdateWalletPin(ctx context.Context, email string, pin string) error

	GetAllBanks(ctx context.Context) ([]domain.Bank, error)
	VerifyAccountNumber(ctx context.Context, accountNumber, bankCode string) (*domain.AccountDetail, error)
	WalletWithdrawal(ctx context.Context, email string, req WithdrawalRequest) (*domain.TransferResult, error)

	GetDataServices(ctx context.Context) ([]domain.VendService, error)
	GetDataPlans(ctx context.Context, dataType string) ([]domain.DataPlan, error)
	GetAirtimeServices(ctx context.Context) ([]domain.VendService, error)
	BuyDataPlan(ctx context.Context, email string, req domain.BuyDataRequest, pin string) (*domain.VendResult, error)
	BuyAirtime(ctx context.Context, email string, req domain.BuyAirtimeRequest, pin string) (*domain.VendResult, error)

	ListTransactions(ctx context.Context, email string, limit, offset int) ([]domain.Transaction, error)
}

// WalletBalance is the balance lookup result. Balance is nil when the
// lookup failed for any reason.
type WalletBalance struct {
	UserName string
	Balance  *decimal.Decimal
}

// WithdrawalRequest holds validated input for a wallet withdrawal.
type WithdrawalRequest struct {
	Amount        decimal.Decimal
	AccountNumber string
	AccountName   string
	BankCode      string
	Pin           string
	Reason        string
}

// AuthService defines registration and login.
type AuthService interface {
	// Register creates a user together with a zero-balance wallet.
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	// Login verifies credentials and mints a session token.
	Login(ctx context.Context, email, password string) (string, time.Time, error)
}

// RegisterRequest holds input for user registration.
type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}
