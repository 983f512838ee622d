package handler

import (
	"strconv"

	"paywallet/internal/adapter/http/dto"
	"paywallet/internal/adapter/http/middleware"
	"paywallet/internal/core/ports"
	"paywallet/pkg/apperror"
	"paywallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles balance, funding, PIN and withdrawal endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// callerEmail reads the authenticated email set by the JWT middleware.
func callerEmail(c *gin.Context) (string, bool) {
	email := c.GetString(middleware.CtxEmail)
	if email == "" {
		response.Error(c, apperror.ErrInvalidToken())
		return "", false
	}
	return email, true
}

// GetBalance handles GET /api/v1/wallet/balance. The lookup never fails
// hard; a missing balance renders as a not-found envelope.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	balance, _ := h.walletSvc.GetWalletBalance(c.Request.Context(), email)
	if balance.Balance == nil {
		response.Error(c, apperror.ErrNotFound("wallet"))
		return
	}

	response.OK(c, "Wallet balance retrieved", dto.BalanceResponse{
		UserName: balance.UserName,
		Balance:  balance.Balance,
	})
}

// FundWallet handles POST /api/v1/wallet/fund.
func (h *WalletHandler) FundWallet(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req dto.FundWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.walletSvc.FundWallet(c.Request.Context(), email, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Funding initialized", result)
}

// VerifyPayment handles GET /api/v1/wallet/fund/verify?reference=.
func (h *WalletHandler) VerifyPayment(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	reference := c.Query("reference")
	if reference == "" {
		response.Error(c, apperror.Validation("reference is required"))
		return
	}

	result, err := h.walletSvc.VerifyPayment(c.Request.Context(), email, reference)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment verification completed", result)
}

// SetPin handles PUT /api/v1/wallet/pin. The PIN is replaced
// unconditionally.
func (h *WalletHandler) SetPin(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req dto.SetPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.walletSvc.UpdateWalletPin(c.Request.Context(), email, req.Pin); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Wallet pin updated", nil)
}

// ListBanks handles GET /api/v1/wallet/banks.
func (h *WalletHandler) ListBanks(c *gin.Context) {
	banks, err := h.walletSvc.GetAllBanks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Banks retrieved", banks)
}

// ResolveAccount handles GET /api/v1/wallet/banks/resolve?account_number=&bank_code=.
func (h *WalletHandler) ResolveAccount(c *gin.Context) {
	accountNumber := c.Query("account_number")
	bankCode := c.Query("bank_code")
	if accountNumber == "" || bankCode == "" {
		response.Error(c, apperror.Validation("account_number and bank_code are required"))
		return
	}

	detail, err := h.walletSvc.VerifyAccountNumber(c.Request.Context(), accountNumber, bankCode)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Account resolved", detail)
}

// Withdraw handles POST /api/v1/wallet/withdraw.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.walletSvc.WalletWithdrawal(c.Request.Context(), email, req.ToWithdrawalRequest())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Withdrawal processed", result)
}

// ListTransactions handles GET /api/v1/wallet/transactions?limit=&offset=.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	txns, err := h.walletSvc.ListTransactions(c.Request.Context(), email, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		items = append(items, dto.ToTransactionResponse(t))
	}
	response.OK(c, "Transactions retrieved", items)
}
