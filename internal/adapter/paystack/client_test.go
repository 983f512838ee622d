package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paywallet/config"
	"paywallet/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.PaystackConfig{
		BaseURL:   srv.URL,
		SecretKey: "sk_test_abc",
		Timeout:   5 * time.Second,
	}, zerolog.Nop())
}

func TestClient_InitializeTransaction(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_abc", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body["email"])
		assert.Equal(t, "250000", body["amount"]) // 2500 NGN in kobo

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{
			"authorization_url":"https://checkout.paystack.com/abc",
			"access_code":"abc",
			"reference":"ref-001"}}`))
	})

	result, err := client.InitializeTransaction(context.Background(), "ada@example.com", decimal.RequireFromString("2500"))
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paystack.com/abc", result.AuthorizationURL)
	assert.Equal(t, "ref-001", result.Reference)
}

func TestClient_VerifyTransaction_ConvertsKobo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/ref-001", r.URL.Path)
		w.Write([]byte(`{"status":true,"message":"Verification successful","data":{
			"reference":"ref-001","status":"success","amount":250000,"channel":"card"}}`))
	})

	result, err := client.VerifyTransaction(context.Background(), "ref-001")
	require.NoError(t, err)
	assert.True(t, result.Verified())
	assert.True(t, result.Amount.Equal(decimal.RequireFromString("2500")))
	assert.Equal(t, "card", result.Channel)
}

func TestClient_VerifyTransaction_Abandoned(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"message":"Verification successful","data":{
			"reference":"ref-002","status":"abandoned","amount":0}}`))
	})

	result, err := client.VerifyTransaction(context.Background(), "ref-002")
	require.NoError(t, err)
	assert.False(t, result.Verified())
}

func TestClient_ListBanks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bank", r.URL.Path)
		assert.Equal(t, "nigeria", r.URL.Query().Get("country"))
		w.Write([]byte(`{"status":true,"message":"Banks retrieved","data":[
			{"name":"GTBank","code":"058","slug":"gtbank"},
			{"name":"Access Bank","code":"044","slug":"access-bank"}]}`))
	})

	banks, err := client.ListBanks(context.Background())
	require.NoError(t, err)
	require.Len(t, banks, 2)
	assert.Equal(t, "058", banks[0].Code)
}

func TestClient_ResolveAccountNumber(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bank/resolve", r.URL.Path)
		assert.Equal(t, "0123456789", r.URL.Query().Get("account_number"))
		assert.Equal(t, "058", r.URL.Query().Get("bank_code"))
		w.Write([]byte(`{"status":true,"message":"Account resolved","data":{
			"account_number":"0123456789","account_name":"ADA OBI"}}`))
	})

	detail, err := client.ResolveAccountNumber(context.Background(), "0123456789", "058")
	require.NoError(t, err)
	assert.Equal(t, "ADA OBI", detail.AccountName)
}

func TestClient_Transfer_CreatesRecipientFirst(t *testing.T) {
	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/transferrecipient":
			w.Write([]byte(`{"status":true,"message":"Recipient created","data":{"recipient_code":"RCP_001"}}`))
		case "/transfer":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "RCP_001", body["recipient"])
			assert.Equal(t, "400000", body["amount"])
			w.Write([]byte(`{"status":true,"message":"Transfer queued","data":{"reference":"trf-001","status":"pending"}}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	result, err := client.Transfer(context.Background(), domain.TransferRequest{
		Amount:        decimal.RequireFromString("4000"),
		AccountNumber: "0123456789",
		AccountName:   "Ada Obi",
		BankCode:      "058",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/transferrecipient", "/transfer"}, paths)
	assert.Equal(t, "trf-001", result.Reference)
	assert.True(t, result.Accepted())
}

func TestClient_RejectedEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
	})

	_, err := client.ListBanks(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid key")
}
