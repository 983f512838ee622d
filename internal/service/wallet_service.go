package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"paywallet/internal/core/domain"
	"paywallet/internal/core/ports"
	"paywallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletServiceImpl implements ports.WalletService. Every balance mutation
// runs inside a database transaction holding a FOR UPDATE lock on the wallet
// row, so concurrent requests against the same wallet serialize. For purchase
// and withdrawal flows the lock is held across the provider call; the
// provider clients carry request timeouts that bound the lock window.
type WalletServiceImpl struct {
	userRepo   ports.UserRepository
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	transactor ports.DBTransactor
	gateway    ports.PaymentGateway
	vending    ports.VendingClient
	catalog    ports.CatalogCache
	catalogTTL time.Duration
	pinHasher  ports.PinHasher
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	userRepo ports.UserRepository,
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	gateway ports.PaymentGateway,
	vending ports.VendingClient,
	catalog ports.CatalogCache,
	catalogTTL time.Duration,
	pinHasher ports.PinHasher,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		txRepo:     txRepo,
		transactor: transactor,
		gateway:    gateway,
		vending:    vending,
		catalog:    catalog,
		catalogTTL: catalogTTL,
		pinHasher:  pinHasher,
		log:        log,
	}
}

// GetWalletBalance returns the caller's display name and balance. It always
// returns a nil error: any internal failure is logged and yields a result
// with a nil Balance, which the handler renders as an error envelope.
func (s *WalletServiceImpl) GetWalletBalance(ctx context.Context, email string) (*ports.WalletBalance, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil || user == nil {
		s.log.Error().Err(err).Str("email", email).Msg("wallet balance: user lookup failed")
		return &ports.WalletBalance{}, nil
	}

	wallet, err := s.walletRepo.GetByUserEmail(ctx, email)
	if err != nil || wallet == nil {
		s.log.Error().Err(err).Str("email", email).Msg("wallet balance: wallet lookup failed")
		return &ports.WalletBalance{UserName: user.DisplayName()}, nil
	}

	balance := wallet.Balance
	return &ports.WalletBalance{
		UserName: user.DisplayName(),
		Balance:  &balance,
	}, nil
}

// FundWallet starts a funding checkout with the payment gateway and returns
// its response unmodified. The wallet is credited later, when VerifyPayment
// confirms the reference.
func (s *WalletServiceImpl) FundWallet(ctx context.Context, email string, amount decimal.Decimal) (*domain.FundingResponse, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperror.ErrInvalidAmount()
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrNotFound("user")
	}

	resp, err := s.gateway.InitializeTransaction(ctx, email, amount)
	if err != nil {
		return nil, apperror.ErrUpstream("payment gateway", err)
	}
	return resp, nil
}

// VerifyPayment asks the gateway whether a funding reference was paid and,
// when confirmed, credits the wallet and appends a CREDIT ledger entry. The
// gateway verdict is returned to the caller either way. Crediting is
// idempotent per reference: a reference that already has a CREDIT entry on
// the ledger is never applied again, so repeated verification calls (or a
// second caller claiming someone else's reference) cannot mint money.
func (s *WalletServiceImpl) VerifyPayment(ctx context.Context, email string, reference string) (*domain.PaymentVerification, error) {
	verification, err := s.gateway.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, apperror.ErrUpstream("payment gateway", err)
	}
	if !verification.Verified() {
		return verification, nil
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByUserEmailForUpdate(ctx, dbTx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	applied, err := s.txRepo.GetByReference(ctx, dbTx, verification.Reference, domain.TransactionTypeCredit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check funding reference: %w", err))
	}
	if applied != nil {
		s.log.Warn().
			Str("wallet_id", wallet.ID.String()).
			Str("reference", verification.Reference).
			Msg("funding reference already credited, skipping")
		return verification, nil
	}

	newBalance := wallet.Balance.Add(verification.Amount)
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, wallet.ID, newBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	entry := &domain.Transaction{
		ID:          uuid.New(),
		WalletID:    wallet.ID,
		ServiceName: "wallet-funding",
		Beneficiary: verification.Channel,
		Type:        domain.TransactionTypeCredit,
		Amount:      verification.Amount,
		Reference:   verification.Reference,
		Status:      domain.TransactionStatusSuccess,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.txRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create credit entry: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("reference", reference).
		Str("amount", verification.Amount.String()).
		Msg("wallet funded")

	return verification, nil
}

// UpdateWalletPin hashes the new PIN and persists it. The PIN is replaced
// unconditionally; no existing-PIN confirmation is required.
func (s *WalletServiceImpl) UpdateWalletPin(ctx context.Context, email string, pin string) error {
	wallet, err := s.walletRepo.GetByUserEmail(ctx, email)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return apperror.ErrNotFound("wallet")
	}

	pinHash, err := s.pinHasher.Hash(pin)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("hash pin: %w", err))
	}

	if err := s.walletRepo.UpdatePin(ctx, wallet.ID, pinHash); err != nil {
		return apperror.InternalError(fmt.Errorf("update pin: %w", err))
	}

	s.log.Info().Str("wallet_id", wallet.ID.String()).Msg("wallet pin changed")
	return nil
}

// GetAllBanks lists the banks supported for withdrawals, cached.
func (s *WalletServiceImpl) GetAllBanks(ctx context.Context) ([]domain.Bank, error) {
	var banks []domain.Bank
	if s.fromCache(ctx, "banks", &banks) {
		return banks, nil
	}

	banks, err := s.gateway.ListBanks(ctx)
	if err != nil {
		return nil, apperror.ErrUpstream("payment gateway", err)
	}
	s.toCache(ctx, "banks", banks)
	return banks, nil
}

// VerifyAccountNumber resolves a bank account's owner name.
func (s *WalletServiceImpl) VerifyAccountNumber(ctx context.Context, accountNumber, bankCode string) (*domain.AccountDetail, error) {
	detail, err := s.gateway.ResolveAccountNumber(ctx, accountNumber, bankCode)
	if err != nil {
		return nil, apperror.ErrUpstream("payment gateway", err)
	}
	return detail, nil
}

// WalletWithdrawal moves money from the wallet to an external bank account.
// The PIN and balance checks mirror the purchase flow; the wallet is debited
// only when the gateway accepts the transfer.
func (s *WalletServiceImpl) WalletWithdrawal(ctx context.Context, email string, req ports.WithdrawalRequest) (*domain.TransferResult, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByUserEmailForUpdate(ctx, dbTx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if err := s.checkPinAndBalance(wallet, req.Pin, req.Amount); err != nil {
		return nil, err
	}

	result, err := s.gateway.Transfer(ctx, domain.TransferRequest{
		Amount:        req.Amount,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		BankCode:      req.BankCode,
		Reason:        req.Reason,
	})
	if err != nil {
		return nil, apperror.ErrUpstream("payment gateway", err)
	}
	if !result.Accepted() {
		s.log.Warn().
			Str("wallet_id", wallet.ID.String()).
			Str("status", result.Status).
			Msg("withdrawal not accepted by gateway")
		return result, nil
	}

	if err := s.debit(ctx, dbTx, wallet, req.Amount, "withdrawal", req.BankCode, result.Reference); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("reference", result.Reference).
		Str("amount", req.Amount.String()).
		Msg("withdrawal processed")

	return result, nil
}

// GetDataServices lists data service categories, cached.
func (s *WalletServiceImpl) GetDataServices(ctx context.Context) ([]domain.VendService, error) {
	var services []domain.VendService
	if s.fromCache(ctx, "data-services", &services) {
		return services, nil
	}

	services, err := s.vending.DataServices(ctx)
	if err != nil {
		return nil, apperror.ErrUpstream("vending", err)
	}
	s.toCache(ctx, "data-services", services)
	return services, nil
}

// GetDataPlans lists bundle variations for a data service, cached per service.
func (s *WalletServiceImpl) GetDataPlans(ctx context.Context, dataType string) ([]domain.DataPlan, error) {
	key := "data-plans:" + dataType
	var plans []domain.DataPlan
	if s.fromCache(ctx, key, &plans) {
		return plans, nil
	}

	plans, err := s.vending.DataPlans(ctx, dataType)
	if err != nil {
		return nil, apperror.ErrUpstream("vending", err)
	}
	s.toCache(ctx, key, plans)
	return plans, nil
}

// GetAirtimeServices lists airtime service categories, cached.
func (s *WalletServiceImpl) GetAirtimeServices(ctx context.Context) ([]domain.VendService, error) {
	var services []domain.VendService
	if s.fromCache(ctx, "airtime-services", &services) {
		return services, nil
	}

	services, err := s.vending.AirtimeServices(ctx)
	if err != nil {
		return nil, apperror.ErrUpstream("vending", err)
	}
	s.toCache(ctx, "airtime-services", services)
	return services, nil
}

// BuyDataPlan purchases a data bundle and debits the wallet on success.
func (s *WalletServiceImpl) BuyDataPlan(ctx context.Context, email string, req domain.BuyDataRequest, pin string) (*domain.VendResult, error) {
	return s.purchase(ctx, email, pin, req.Amount, req.ServiceID, req.Phone,
		func(ctx context.Context) (*domain.VendResult, error) {
			return s.vending.BuyData(ctx, req)
		})
}

// BuyAirtime purchases airtime and debits the wallet on success.
func (s *WalletServiceImpl) BuyAirtime(ctx context.Context, email string, req domain.BuyAirtimeRequest, pin string) (*domain.VendResult, error) {
	return s.purchase(ctx, email, pin, req.Amount, req.ServiceID, req.Phone,
		func(ctx context.Context) (*domain.VendResult, error) {
			return s.vending.BuyAirtime(ctx, req)
		})
}

// ListTransactions returns the caller's ledger entries, newest first.
func (s *WalletServiceImpl) ListTransactions(ctx context.Context, email string, limit, offset int) ([]domain.Transaction, error) {
	wallet, err := s.walletRepo.GetByUserEmail(ctx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	txns, err := s.txRepo.ListByWallet(ctx, wallet.ID, limit, offset)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return txns, nil
}

// purchase is the shared buy flow: lock wallet, check PIN and balance, vend,
// debit on success. The vendor response is returned to the caller regardless
// of outcome; the wallet is only touched when the vendor confirmed delivery.
func (s *WalletServiceImpl) purchase(
	ctx context.Context,
	email, pin string,
	amount decimal.Decimal,
	serviceName, beneficiary string,
	vend func(context.Context) (*domain.VendResult, error),
) (*domain.VendResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByUserEmailForUpdate(ctx, dbTx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if err := s.checkPinAndBalance(wallet, pin, amount); err != nil {
		return nil, err
	}

	// Vend while holding the row lock: a second request for this wallet
	// cannot pass the balance check until this one commits or rolls back.
	result, err := vend(ctx)
	if err != nil {
		return nil, apperror.ErrUpstream("vending", err)
	}
	if result.Status != domain.VendStatusSuccess {
		s.log.Warn().
			Str("wallet_id", wallet.ID.String()).
			Str("status", string(result.Status)).
			Str("description", result.Description).
			Msg("vend not successful, wallet untouched")
		return result, nil
	}

	if err := s.debit(ctx, dbTx, wallet, amount, serviceName, beneficiary, result.RequestID); err != nil {
		return nil, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("service", serviceName).
		Str("reference", result.RequestID).
		Str("amount", amount.String()).
		Msg("purchase processed")

	return result, nil
}

// checkPinAndBalance validates the transaction PIN and the balance. The
// balance comparison is strictly greater-than: a request for the exact
// balance is rejected as insufficient.
func (s *WalletServiceImpl) checkPinAndBalance(wallet *domain.Wallet, pin string, amount decimal.Decimal) error {
	if !wallet.HasPin() {
		return apperror.ErrPinNotSet()
	}
	if !s.pinHasher.Verify(pin, *wallet.PinHash) {
		return apperror.ErrWrongPin()
	}
	if !wallet.CanDebit(amount) {
		return apperror.ErrInsufficientBalance()
	}
	return nil
}

// debit subtracts the amount and appends the SUCCESS ledger entry inside
// the caller's transaction. Both writes commit or roll back together.
func (s *WalletServiceImpl) debit(
	ctx context.Context,
	dbTx pgx.Tx,
	wallet *domain.Wallet,
	amount decimal.Decimal,
	serviceName, beneficiary, reference string,
) error {
	newBalance := wallet.Balance.Sub(amount)
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, wallet.ID, newBalance); err != nil {
		return apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	entry := &domain.Transaction{
		ID:          uuid.New(),
		WalletID:    wallet.ID,
		ServiceName: serviceName,
		Beneficiary: beneficiary,
		Type:        domain.TransactionTypeDebit,
		Amount:      amount,
		Reference:   reference,
		Status:      domain.TransactionStatusSuccess,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.txRepo.Create(ctx, dbTx, entry); err != nil {
		return apperror.InternalError(fmt.Errorf("create debit entry: %w", err))
	}
	return nil
}

// fromCache loads a catalog payload, reporting whether it was present.
// Cache failures degrade to a provider call.
func (s *WalletServiceImpl) fromCache(ctx context.Context, key string, out any) bool {
	cached, err := s.catalog.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
		return false
	}
	if cached == nil {
		return false
	}
	if err := json.Unmarshal(cached, out); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("catalog cache entry corrupt")
		return false
	}
	return true
}

// toCache stores a catalog payload, best-effort.
func (s *WalletServiceImpl) toCache(ctx context.Context, key string, val any) {
	buf, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := s.catalog.Set(ctx, key, buf, s.catalogTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
}
