package domain

import "github.com/shopspring/decimal"

// Bank is a bank supported for withdrawals.
type Bank struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Slug string `json:"slug,omitempty"`
}

// FundingResponse is the gateway's answer to a funding initialization.
// The caller completes the payment on the authorization URL.
type FundingResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// PaymentVerification is the gateway's verdict on a funding reference.
type PaymentVerification struct {
	Reference string          `json:"reference"`
	Status    string          `json:"status"` // gateway status: success, failed, abandoned
	Amount    decimal.Decimal `json:"amount"`
	Channel   string          `json:"channel,omitempty"`
	PaidAt    string          `json:"paid_at,omitempty"`
}

// Verified reports whether the gateway confirmed the payment.
func (v *PaymentVerification) Verified() bool {
	return v.Status == "success"
}

// AccountDetail is the resolved owner of a bank account number.
type AccountDetail struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

// TransferRequest is the input for a withdrawal transfer.
type TransferRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	AccountNumber string          `json:"account_number"`
	AccountName   string          `json:"account_name"`
	BankCode      string          `json:"bank_code"`
	Reason        string          `json:"reason,omitempty"`
}

// TransferResult is the gateway's answer to an initiated transfer.
type TransferResult struct {
	Reference string `json:"reference"`
	Status    string `json:"status"` // gateway status: success, pending, failed
}

// Accepted reports whether the gateway accepted the transfer for processing.
func (t *TransferResult) Accepted() bool {
	return t.Status == "success" || t.Status == "pending"
}
