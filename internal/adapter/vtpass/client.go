// Package vtpass is a thin HTTP client for the VTPass vending API
// (airtime and data bundles). Purchase outcomes are translated from the
// provider's free-text response_description into domain.VendStatus here,
// and nowhere else.
package vtpass

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

// successMarker is the provider's literal success string. Exact match only:
// anything else is a decline.
const successMarker = "TRANSACTION SUCCESSFUL"

// Client talks to the VTPass API.
type Client struct {
	baseURL   string
	apiKey    string
	secretKey string
	publicKey string
	http      *http.Client
	log       zerolog.Logger
}

// New creates a VTPass client.
func New(cfg config.VTPassConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		secretKey: cfg.SecretKey,
		publicKey: cfg.PublicKey,
		http:      &http.Client{Timeout: cfg.Timeout},
		log:       log,
	}
}

// DataServices lists the purchasable data service categories.
func (c *Client) DataServices(ctx context.Context) ([]domain.VendService, error) {
	return c.services(ctx, "data")
}

// AirtimeServices lists the purchasable airtime service categories.
func (c *Client) AirtimeServices(ctx context.Context) ([]domain.VendService, error) {
	return c.services(ctx, "airtime")
}

func (c *Client) services(ctx context.Context, identifier string) ([]domain.VendService, error) {
	var out struct {
		Content []struct {
			ServiceID string `json:"serviceID"`
			Name      string `json:"name"`
			Image     string `json:"image"`
		} `json:"content"`
	}
	path := "/services?identifier=" + url.QueryEscape(identifier)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}

	services := make([]domain.VendService, 0, len(out.Content))
	for _, s := range out.Content {
		services = append(services, domain.VendService{
			ServiceID: s.ServiceID,
			Name:      s.Name,
			Image:     s.Image,
		})
	}
	return services, nil
}

// DataPlans lists the bundle variations for a data service.
func (c *Client) DataPlans(ctx context.Context, dataType string) ([]domain.DataPlan, error) {
	var out struct {
		Content struct {
			Variations []struct {
				VariationCode   string          `json:"variation_code"`
				Name            string          `json:"name"`
				VariationAmount decimal.Decimal `json:"variation_amount"`
			} `json:"varations"` // sic: provider spells it this way
		} `json:"content"`
	}
	path := "/service-variations?serviceID=" + url.QueryEscape(dataType)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}

	plans := make([]domain.DataPlan, 0, len(out.Content.Variations))
	for _, v := range out.Content.Variations {
		plans = append(plans, domain.DataPlan{
			VariationCode: v.VariationCode,
			Name:          v.Name,
			Amount:        v.VariationAmount,
		})
	}
	return plans, nil
}

// BuyData purchases a data bundle.
func (c *Client) BuyData(ctx context.Context, req domain.BuyDataRequest) (*domain.VendResult, error) {
	body := map[string]string{
		"request_id":     req.RequestID,
		"serviceID":      req.ServiceID,
		"billersCode":    req.BillersCode,
		"variation_code": req.VariationCode,
		"amount":         req.Amount.String(),
		"phone":          req.Phone,
	}
	return c.pay(ctx, body)
}

// BuyAirtime purchases airtime.
func (c *Client) BuyAirtime(ctx context.Context, req domain.BuyAirtimeRequest) (*domain.VendResult, error) {
	body := map[string]string{
		"request_id": req.RequestID,
		"serviceID":  req.ServiceID,
		"amount":     req.Amount.String(),
		"phone":      req.Phone,
	}
	return c.pay(ctx, body)
}

// payResponse is the subset of the provider's /pay response we read.
type payResponse struct {
	Code                string `json:"code"`
	ResponseDescription string `json:"response_description"`
	RequestID           string `json:"requestId"`
}

// pay posts a purchase and translates the outcome.
func (c *Client) pay(ctx context.Context, body map[string]string) (*domain.VendResult, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal pay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/pay", bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("build pay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("secret-key", c.secretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vtpass pay: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read pay response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.log.Error().Int("status", resp.StatusCode).Msg("vtpass provider error")
		return &domain.VendResult{
			Status:      domain.VendStatusProviderError,
			Description: http.StatusText(resp.StatusCode),
			Raw:         raw,
		}, nil
	}

	var pr payResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return &domain.VendResult{
			Status:      domain.VendStatusProviderError,
			Description: "unparseable provider response",
			Raw:         raw,
		}, nil
	}

	return &domain.VendResult{
		Status:      translate(pr.ResponseDescription),
		Description: pr.ResponseDescription,
		RequestID:   pr.RequestID,
		Raw:         raw,
	}, nil
}

// get performs a catalog GET request.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("public-key", c.publicKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("vtpass %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("vtpass %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("vtpass %s: decode: %w", path, err)
	}
	return nil
}

func translate(description string) domain.VendStatus {
	if description == successMarker {
		return domain.VendStatusSuccess
	}
	return domain.VendStatusDeclined
}
