package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"paywallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *inMemoryUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return fmt.Errorf("email already exists")
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *inMemoryUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	users   *inMemoryUserRepo
	wallets map[uuid.UUID]*domain.Wallet
}

func newInMemoryWalletRepo(users *inMemoryUserRepo) *inMemoryWalletRepo {
	return &inMemoryWalletRepo{
		users:   users,
		wallets: make(map[uuid.UUID]*domain.Wallet),
	}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wallets[w.ID] = w
	return nil
}

func (r *inMemoryWalletRepo) GetByUserEmail(ctx context.Context, email string) (*domain.Wallet, error) {
	user, err := r.users.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.UserID == user.ID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) GetByUserEmailForUpdate(ctx context.Context, tx pgx.Tx, email string) (*domain.Wallet, error) {
	// The row lock is emulated by the transactor's mutex, which the caller
	// already holds at this point.
	return r.GetByUserEmail(ctx, email)
}

func (r *inMemoryWalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	w.Balance = balance
	w.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryWalletRepo) UpdatePin(ctx context.Context, walletID uuid.UUID, pinHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	w.PinHash = &pinHash
	w.UpdatedAt = time.Now().UTC()
	return nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu      sync.RWMutex
	entries []domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *t)
	return nil
}

func (r *inMemoryTransactionRepo) GetByReference(ctx context.Context, tx pgx.Tx, reference string, txType domain.TransactionType) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.entries {
		if t.Reference == reference && t.Type == txType {
			cp := t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryTransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Transaction
	for _, t := range r.entries {
		if t.WalletID == walletID {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if offset >= len(result) {
		return []domain.Transaction{}, nil
	}
	end := offset + limit
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end], nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes transaction blocks with a mutex, standing in
// for the FOR UPDATE row lock: a second Begin blocks until the first
// transaction commits or rolls back.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &memTx{release: t.mu.Unlock}, nil
}

// memTx is a pgx.Tx that releases the transactor mutex on first
// Commit or Rollback.
type memTx struct {
	once    sync.Once
	release func()
}

func (t *memTx) Commit(ctx context.Context) error   { t.once.Do(t.release); return nil }
func (t *memTx) Rollback(ctx context.Context) error { t.once.Do(t.release); return nil }

func (t *memTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *memTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *memTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *memTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *memTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *memTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *memTx) Conn() *pgx.Conn { return nil }

// --- Fake Payment Gateway ---

// fakeGateway is a controllable stand-in for the fiat provider. Funding
// references marked as paid via markPaid verify as successful.
type fakeGateway struct {
	mu        sync.Mutex
	paid      map[string]decimal.Decimal
	bankCalls int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{paid: make(map[string]decimal.Decimal)}
}

func (g *fakeGateway) markPaid(reference string, amount decimal.Decimal) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.paid[reference] = amount
}

func (g *fakeGateway) listBankCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.bankCalls
}

func (g *fakeGateway) InitializeTransaction(ctx context.Context, email string, amount decimal.Decimal) (*domain.FundingResponse, error) {
	ref := "ref-" + uuid.NewString()
	return &domain.FundingResponse{
		AuthorizationURL: "https://checkout.example.com/" + ref,
		AccessCode:       "ac_test",
		Reference:        ref,
	}, nil
}

func (g *fakeGateway) VerifyTransaction(ctx context.Context, reference string) (*domain.PaymentVerification, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	amount, ok := g.paid[reference]
	if !ok {
		return &domain.PaymentVerification{Reference: reference, Status: "abandoned"}, nil
	}
	return &domain.PaymentVerification{
		Reference: reference,
		Status:    "success",
		Amount:    amount,
		Channel:   "card",
	}, nil
}

func (g *fakeGateway) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	g.mu.Lock()
	g.bankCalls++
	g.mu.Unlock()
	return []domain.Bank{
		{Name: "First Bank of Nigeria", Code: "011", Slug: "first-bank-of-nigeria"},
		{Name: "Guaranty Trust Bank", Code: "058", Slug: "guaranty-trust-bank"},
	}, nil
}

func (g *fakeGateway) ResolveAccountNumber(ctx context.Context, accountNumber, bankCode string) (*domain.AccountDetail, error) {
	return &domain.AccountDetail{AccountNumber: accountNumber, AccountName: "ADA OBI"}, nil
}

func (g *fakeGateway) Transfer(ctx context.Context, req domain.TransferRequest) (*domain.TransferResult, error) {
	return &domain.TransferResult{Reference: "trf-" + uuid.NewString(), Status: "pending"}, nil
}

// --- Fake Vending Client ---

// fakeVending is a controllable stand-in for the airtime/data provider.
// outcome defaults to SUCCESS; delay widens the window between balance check
// and debit so the concurrency tests actually interleave.
type fakeVending struct {
	outcome   domain.VendStatus
	delay     time.Duration
	vendCalls atomic.Int32
}

func newFakeVending() *fakeVending {
	return &fakeVending{outcome: domain.VendStatusSuccess}
}

func (v *fakeVending) DataServices(ctx context.Context) ([]domain.VendService, error) {
	return []domain.VendService{
		{ServiceID: "mtn-data", Name: "MTN Data"},
		{ServiceID: "airtel-data", Name: "Airtel Data"},
	}, nil
}

func (v *fakeVending) DataPlans(ctx context.Context, dataType string) ([]domain.DataPlan, error) {
	return []domain.DataPlan{
		{VariationCode: "mtn-1gb", Name: "1GB - 30 Days", Amount: decimal.NewFromInt(300)},
		{VariationCode: "mtn-2gb", Name: "2GB - 30 Days", Amount: decimal.NewFromInt(500)},
	}, nil
}

func (v *fakeVending) AirtimeServices(ctx context.Context) ([]domain.VendService, error) {
	return []domain.VendService{
		{ServiceID: "mtn", Name: "MTN Airtime"},
		{ServiceID: "glo", Name: "Glo Airtime"},
	}, nil
}

func (v *fakeVending) BuyData(ctx context.Context, req domain.BuyDataRequest) (*domain.VendResult, error) {
	return v.vend(req.RequestID)
}

func (v *fakeVending) BuyAirtime(ctx context.Context, req domain.BuyAirtimeRequest) (*domain.VendResult, error) {
	return v.vend(req.RequestID)
}

func (v *fakeVending) vend(requestID string) (*domain.VendResult, error) {
	v.vendCalls.Add(1)
	if v.delay > 0 {
		time.Sleep(v.delay)
	}
	desc := "TRANSACTION SUCCESSFUL"
	if v.outcome != domain.VendStatusSuccess {
		desc = "TRANSACTION FAILED"
	}
	return &domain.VendResult{
		Status:      v.outcome,
		Description: desc,
		RequestID:   requestID,
	}, nil
}
