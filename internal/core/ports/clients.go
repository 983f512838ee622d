package ports

import (
	"context"
	"time"

	"paywallet/internal/core/domain"

	"github.com/shopspring/decimal"
)

// PaymentGateway is the fiat funding/withdrawal provider (Paystack).
type PaymentGateway interface {
	// InitializeTransaction starts a card/bank funding flow for the given
	// customer email and returns the checkout authorization URL.
	InitializeTransaction(ctx context.Context, email string, amount decimal.Decimal) (*domain.FundingResponse, error)
	// VerifyTransaction asks the gateway whether a funding reference was paid.
	VerifyTransaction(ctx context.Context, reference string) (*domain.PaymentVerification, error)
	ListBanks(ctx context.Context) ([]domain.Bank, error)
	ResolveAccountNumber(ctx context.Context, accountNumber, bankCode string) (*domain.AccountDetail, error)
	// Transfer sends money to an external bank account.
	Transfer(ctx context.Context, req domain.TransferRequest) (*domain.TransferResult, error)
}

// VendingClient is the airtime/data provider (VTPass). Purchase outcomes are
// translated to domain.VendStatus inside the adapter; a non-nil error means
// the provider could not be reached at all.
type VendingClient interface {
	DataServices(ctx context.Context) ([]domain.VendService, error)
	DataPlans(ctx context.Context, dataType string) ([]domain.DataPlan, error)
	AirtimeServices(ctx context.Context) ([]domain.VendService, error)
	BuyData(ctx context.Context, req domain.BuyDataRequest) (*domain.VendResult, error)
	BuyAirtime(ctx context.Context, req domain.BuyAirtimeRequest) (*domain.VendResult, error)
}

// PinHasher handles one-way hashing of passwords and transaction PINs.
type PinHasher interface {
	Hash(plain string) (string, error)
	// Verify returns true when plain matches the stored hash. Comparison is
	// constant-time (bcrypt contract).
	Verify(plain string, hash string) bool
}

// TokenService handles session token operations. The subject is the
// caller's email, which every service operation takes explicitly.
type TokenService interface {
	Generate(email string) (string, time.Time, error)
	Validate(tokenString string) (string, error) // returns the email
}

// CatalogCache caches vending catalog responses (fast path for browsing).
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil on miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
