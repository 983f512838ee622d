package vtpass

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
	return New(config.VTPassConfig{
		BaseURL:   srv.URL,
		APIKey:    "api-key-123",
		SecretKey: "secret-key-456",
		PublicKey: "public-key-789",
		Timeout:   5 * time.Second,
	}, zerolog.Nop())
}

func buyReq() domain.BuyAirtimeRequest {
	return domain.BuyAirtimeRequest{
		RequestID: "req-001",
		ServiceID: "mtn",
		Amount:    decimal.RequireFromString("500"),
		Phone:     "08012345678",
	}
}

func TestClient_BuyAirtime_ExactSuccessMarker(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pay", r.URL.Path)
		assert.Equal(t, "api-key-123", r.Header.Get("api-key"))
		assert.Equal(t, "secret-key-456", r.Header.Get("secret-key"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "req-001", body["request_id"])
		assert.Equal(t, "500", body["amount"])

		w.Write([]byte(`{"code":"000","response_description":"TRANSACTION SUCCESSFUL","requestId":"req-001"}`))
	})

	result, err := client.BuyAirtime(context.Background(), buyReq())
	require.NoError(t, err)
	assert.Equal(t, domain.VendStatusSuccess, result.Status)
	assert.Equal(t, "req-001", result.RequestID)
}

func TestClient_BuyAirtime_NearMissIsDeclined(t *testing.T) {
	// Anything other than the exact marker is a decline, including case
	// and whitespace variants.
	for _, desc := range []string{
		"TRANSACTION SUCCESSFUL.",
		"transaction successful",
		"TRANSACTION SUCCESSFUL ",
		"TRANSACTION PROCESSED",
	} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			resp := map[string]string{"code": "016", "response_description": desc}
			json.NewEncoder(w).Encode(resp)
		})

		result, err := client.BuyAirtime(context.Background(), buyReq())
		require.NoError(t, err)
		assert.Equal(t, domain.VendStatusDeclined, result.Status, "description %q", desc)
		assert.Equal(t, desc, result.Description)
	}
}

func TestClient_BuyAirtime_ServerErrorIsProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream timeout"))
	})

	result, err := client.BuyAirtime(context.Background(), buyReq())
	require.NoError(t, err)
	assert.Equal(t, domain.VendStatusProviderError, result.Status)
}

func TestClient_BuyAirtime_UnparseableBodyIsProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>maintenance</html>"))
	})

	result, err := client.BuyAirtime(context.Background(), buyReq())
	require.NoError(t, err)
	assert.Equal(t, domain.VendStatusProviderError, result.Status)
}

func TestClient_BuyAirtime_TransportError(t *testing.T) {
	client := New(config.VTPassConfig{
		BaseURL: "http://127.0.0.1:1", // nothing listens here
		Timeout: 500 * time.Millisecond,
	}, zerolog.Nop())

	result, err := client.BuyAirtime(context.Background(), buyReq())
	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestClient_DataServices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services", r.URL.Path)
		assert.Equal(t, "data", r.URL.Query().Get("identifier"))
		assert.Equal(t, "public-key-789", r.Header.Get("public-key"))
		w.Write([]byte(`{"content":[
			{"serviceID":"mtn-data","name":"MTN Data","image":"https://img/mtn.png"},
			{"serviceID":"glo-data","name":"GLO Data","image":""}]}`))
	})

	services, err := client.DataServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "mtn-data", services[0].ServiceID)
}

func TestClient_DataPlans_ProviderSpelling(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/service-variations", r.URL.Path)
		assert.Equal(t, "mtn-data", r.URL.Query().Get("serviceID"))
		// The provider misspells the field as "varations".
		w.Write([]byte(`{"content":{"varations":[
			{"variation_code":"mtn-1gb","name":"1GB - 30 Days","variation_amount":"1200.00"}]}}`))
	})

	plans, err := client.DataPlans(context.Background(), "mtn-data")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "mtn-1gb", plans[0].VariationCode)
	assert.True(t, plans[0].Amount.Equal(decimal.RequireFromString("1200")))
}

func TestClient_AirtimeServices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "airtime", r.URL.Query().Get("identifier"))
		w.Write([]byte(`{"content":[{"serviceID":"mtn","name":"MTN Airtime"}]}`))
	})

	services, err := client.AirtimeServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "mtn", services[0].ServiceID)
}
