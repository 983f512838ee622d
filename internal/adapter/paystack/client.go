// Package paystack is a thin HTTP client for the Paystack REST API,
// covering the funding and withdrawal calls the wallet service needs.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"paywallet/config"
	"paywallet/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Client talks to the Paystack API. Amounts are NGN; Paystack wants the
// smallest unit (kobo), so decimal amounts are scaled by 100 on the wire.
type Client struct {
	baseURL   string
	secretKey string
	http      *http.Client
	log       zerolog.Logger
}

// New creates a Paystack client.
func New(cfg config.PaystackConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		secretKey: cfg.SecretKey,
		http:      &http.Client{Timeout: cfg.Timeout},
		log:       log,
	}
}

// envelope is Paystack's uniform response wrapper.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// InitializeTransaction starts a funding checkout for the customer.
func (c *Client) InitializeTransaction(ctx context.Context, email string, amount decimal.Decimal) (*domain.FundingResponse, error) {
	body := map[string]string{
		"email":  email,
		"amount": toKobo(amount),
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	}
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", body, &data); err != nil {
		return nil, err
	}

	return &domain.FundingResponse{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

// VerifyTransaction checks whether a funding reference was paid.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*domain.PaymentVerification, error) {
	var data struct {
		Reference string          `json:"reference"`
		Status    string          `json:"status"`
		Amount    decimal.Decimal `json:"amount"` // kobo
		Channel   string          `json:"channel"`
		PaidAt    string          `json:"paid_at"`
	}
	path := "/transaction/verify/" + url.PathEscape(reference)
	if err := c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}

	return &domain.PaymentVerification{
		Reference: data.Reference,
		Status:    data.Status,
		Amount:    data.Amount.Div(decimal.NewFromInt(100)),
		Channel:   data.Channel,
		PaidAt:    data.PaidAt,
	}, nil
}

// ListBanks fetches the banks supported for transfers.
func (c *Client) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	var data []struct {
		Name string `json:"name"`
		Code string `json:"code"`
		Slug string `json:"slug"`
	}
	if err := c.do(ctx, http.MethodGet, "/bank?country=nigeria", nil, &data); err != nil {
		return nil, err
	}

	banks := make([]domain.Bank, 0, len(data))
	for _, b := range data {
		banks = append(banks, domain.Bank{Name: b.Name, Code: b.Code, Slug: b.Slug})
	}
	return banks, nil
}

// ResolveAccountNumber resolves the owner name of a bank account.
func (c *Client) ResolveAccountNumber(ctx context.Context, accountNumber, bankCode string) (*domain.AccountDetail, error) {
	var data struct {
		AccountNumber string `json:"account_number"`
		AccountName   string `json:"account_name"`
	}
	path := fmt.Sprintf("/bank/resolve?account_number=%s&bank_code=%s",
		url.QueryEscape(accountNumber), url.QueryEscape(bankCode))
	if err := c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}

	return &domain.AccountDetail{
		AccountNumber: data.AccountNumber,
		AccountName:   data.AccountName,
	}, nil
}

// Transfer sends money to an external bank account. Paystack requires a
// transfer recipient first; the two calls are combined here.
func (c *Client) Transfer(ctx context.Context, req domain.TransferRequest) (*domain.TransferResult, error) {
	recipientBody := map[string]string{
		"type":           "nuban",
		"name":           req.AccountName,
		"account_number": req.AccountNumber,
		"bank_code":      req.BankCode,
		"currency":       "NGN",
	}
	var recipient struct {
		RecipientCode string `json:"recipient_code"`
	}
	if err := c.do(ctx, http.MethodPost, "/transferrecipient", recipientBody, &recipient); err != nil {
		return nil, err
	}

	transferBody := map[string]string{
		"source":    "balance",
		"amount":    toKobo(req.Amount),
		"recipient": recipient.RecipientCode,
		"reason":    req.Reason,
	}
	var transfer struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
	}
	if err := c.do(ctx, http.MethodPost, "/transfer", transferBody, &transfer); err != nil {
		return nil, err
	}

	return &domain.TransferResult{
		Reference: transfer.Reference,
		Status:    transfer.Status,
	}, nil
}

// do performs a request and decodes the envelope's data field into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("paystack %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("paystack %s %s: status %d: decode: %w", method, path, resp.StatusCode, err)
	}
	if resp.StatusCode >= http.StatusBadRequest || !env.Status {
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("path", path).
			Str("message", env.Message).
			Msg("paystack request rejected")
		return fmt.Errorf("paystack %s %s: %s (status %d)", method, path, env.Message, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// toKobo converts an NGN decimal amount to Paystack's integer kobo string.
func toKobo(amount decimal.Decimal) string {
	return amount.Mul(decimal.NewFromInt(100)).Truncate(0).String()
}
