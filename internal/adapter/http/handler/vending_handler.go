package handler

import (
	"paywallet/internal/adapter/http/dto"
	"paywallet/internal/core/domain"
	"paywallet/internal/core/ports"
	"paywallet/pkg/apperror"
	"paywallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// VendingHandler handles airtime and data endpoints.
type VendingHandler struct {
	walletSvc ports.WalletService
}

// NewVendingHandler creates a new VendingHandler.
func NewVendingHandler(walletSvc ports.WalletService) *VendingHandler {
	return &VendingHandler{walletSvc: walletSvc}
}

// DataServices handles GET /api/v1/vending/data/services.
func (h *VendingHandler) DataServices(c *gin.Context) {
	services, err := h.walletSvc.GetDataServices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Data services retrieved", services)
}

// DataPlans handles GET /api/v1/vending/data/plans?service=.
func (h *VendingHandler) DataPlans(c *gin.Context) {
	service := c.Query("service")
	if service == "" {
		response.Error(c, apperror.Validation("service is required"))
		return
	}

	plans, err := h.walletSvc.GetDataPlans(c.Request.Context(), service)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Data plans retrieved", plans)
}

// AirtimeServices handles GET /api/v1/vending/airtime/services.
func (h *VendingHandler) AirtimeServices(c *gin.Context) {
	services, err := h.walletSvc.GetAirtimeServices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Airtime services retrieved", services)
}

// BuyData handles POST /api/v1/vending/data. The provider's verdict is
// returned in the envelope whether the vend succeeded or not.
func (h *VendingHandler) BuyData(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req dto.BuyDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.walletSvc.BuyDataPlan(c.Request.Context(), email, domain.BuyDataRequest{
		RequestID:     req.RequestID,
		ServiceID:     req.ServiceID,
		BillersCode:   req.BillersCode,
		VariationCode: req.VariationCode,
		Amount:        req.Amount,
		Phone:         req.Phone,
	}, req.Pin)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Data purchase completed", dto.ToVendResultResponse(result))
}

// BuyAirtime handles POST /api/v1/vending/airtime.
func (h *VendingHandler) BuyAirtime(c *gin.Context) {
	email, ok := callerEmail(c)
	if !ok {
		return
	}

	var req dto.BuyAirtimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.walletSvc.BuyAirtime(c.Request.Context(), email, domain.BuyAirtimeRequest{
		RequestID: req.RequestID,
		ServiceID: req.ServiceID,
		Amount:    req.Amount,
		Phone:     req.Phone,
	}, req.Pin)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Airtime purchase completed", dto.ToVendResultResponse(result))
}
