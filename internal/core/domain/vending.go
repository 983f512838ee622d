package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// VendStatus is the structured outcome of a vending purchase. The provider
// reports outcomes as free text; the vending adapter translates that text
// exactly once, at the boundary, so the rest of the system never matches
// strings.
type VendStatus string

const (
	// VendStatusSuccess means the provider confirmed delivery. Only this
	// status triggers a wallet debit.
	VendStatusSuccess VendStatus = "SUCCESS"
	// VendStatusDeclined means the provider processed the request and
	// rejected it (bad phone number, unavailable plan, provider-side
	// validation).
	VendStatusDeclined VendStatus = "DECLINED"
	// VendStatusProviderError means the provider answered outside its
	// documented contract (5xx, unparseable body).
	VendStatusProviderError VendStatus = "PROVIDER_ERROR"
)

// VendResult carries the translated status plus the provider's response,
// which is returned to the caller regardless of outcome.
type VendResult struct {
	Status      VendStatus      `json:"status"`
	Description string          `json:"description"` // provider's response_description, verbatim
	RequestID   string          `json:"request_id"`  // provider transaction reference
	Raw         json.RawMessage `json:"raw,omitempty"`
}

// VendService is a purchasable service category (e.g. mtn-data, airtel-airtime).
type VendService struct {
	ServiceID string `json:"service_id"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
}

// DataPlan is a single data bundle variation within a service.
type DataPlan struct {
	VariationCode string          `json:"variation_code"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
}

// BuyDataRequest is the input for a data bundle purchase.
type BuyDataRequest struct {
	RequestID     string          `json:"request_id"`
	ServiceID     string          `json:"service_id"`
	BillersCode   string          `json:"billers_code"`
	VariationCode string          `json:"variation_code"`
	Amount        decimal.Decimal `json:"amount"`
	Phone         string          `json:"phone"`
}

// BuyAirtimeRequest is the input for an airtime purchase.
type BuyAirtimeRequest struct {
	RequestID string          `json:"request_id"`
	ServiceID string          `json:"service_id"`
	Amount    decimal.Decimal `json:"amount"`
	Phone     string          `json:"phone"`
}
