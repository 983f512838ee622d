package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// TestConcurrentPurchases_AllSucceed verifies the locked debit path under
// concurrent load. The wallet is funded with one naira more than the total
// of all purchases (the balance check is strictly greater-than), then 40
// purchases of 100 each are fired at once. The wallet lock must serialize
// them so every one succeeds and the final balance is exactly 1.
func TestConcurrentPurchases_AllSucceed(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.vending.delay = 2 * time.Millisecond

	token := registerAndLogin(t, app, "concurrent@example.com")
	creditWallet(t, app, token, "ref-big-topup", "4001")
	setPin(t, app, token, "4321")

	concurrency := 40

	var wg sync.WaitGroup
	var successCount, failCount atomic.Int32

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			resp := doRequest(t, app, http.MethodPost, "/api/v1/vending/airtime", token, map[string]interface{}{
				"request_id": fmt.Sprintf("conc-req-%03d", n),
				"service_id": "mtn",
				"amount":     100,
				"phone":      "08031234567",
				"pin":        "4321",
			})
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()

			if resp.StatusCode == http.StatusOK {
				successCount.Add(1)
			} else {
				failCount.Add(1)
				t.Errorf("purchase %d failed with %d: %s", n, resp.StatusCode, string(body))
			}
		}(i)
	}
	wg.Wait()

	if successCount.Load() != int32(concurrency) {
		t.Fatalf("expected all %d purchases to succeed, got %d successes and %d failures",
			concurrency, successCount.Load(), failCount.Load())
	}

	data := getJSON(t, app, token, "/api/v1/wallet/balance")
	if data["balance"] != "1" {
		t.Fatalf("expected final balance 1, got %v", data["balance"])
	}

	assertLedgerDebits(t, app, token, concurrency)
}

// TestConcurrentPurchases_Overdraw fires more purchases than the balance
// covers. Without the lock, concurrent requests could each pass the balance
// check and overdraw the wallet; with it, exactly the affordable number
// succeed and the rest are rejected with WAL_001.
func TestConcurrentPurchases_Overdraw(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.vending.delay = 2 * time.Millisecond

	token := registerAndLogin(t, app, "overdraw@example.com")

	// Balance 2001 and 50 purchases of 100: after 20 debits the balance is 1,
	// which no longer covers a purchase. Exactly 20 must succeed.
	creditWallet(t, app, token, "ref-topup", "2001")
	setPin(t, app, token, "4321")

	concurrency := 50
	wantSuccesses := 20

	var wg sync.WaitGroup
	var successCount, insufficientCount atomic.Int32

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			resp := doRequest(t, app, http.MethodPost, "/api/v1/vending/airtime", token, map[string]interface{}{
				"request_id": fmt.Sprintf("over-req-%03d", n),
				"service_id": "mtn",
				"amount":     100,
				"phone":      "08031234567",
				"pin":        "4321",
			})
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()

			switch resp.StatusCode {
			case http.StatusOK:
				successCount.Add(1)
			case http.StatusUnprocessableEntity:
				var envelope map[string]interface{}
				if err := json.Unmarshal(body, &envelope); err == nil && envelope["code"] == "WAL_001" {
					insufficientCount.Add(1)
				} else {
					t.Errorf("purchase %d: unexpected 422 body %s", n, string(body))
				}
			default:
				t.Errorf("purchase %d: unexpected status %d: %s", n, resp.StatusCode, string(body))
			}
		}(i)
	}
	wg.Wait()

	if got := int(successCount.Load()); got != wantSuccesses {
		t.Fatalf("expected exactly %d successful purchases, got %d (%d rejected)",
			wantSuccesses, got, insufficientCount.Load())
	}
	if got := int(insufficientCount.Load()); got != concurrency-wantSuccesses {
		t.Fatalf("expected %d insufficient-balance rejections, got %d",
			concurrency-wantSuccesses, got)
	}

	data := getJSON(t, app, token, "/api/v1/wallet/balance")
	if data["balance"] != "1" {
		t.Fatalf("expected final balance 1, got %v", data["balance"])
	}

	assertLedgerDebits(t, app, token, wantSuccesses)
}

// assertLedgerDebits checks the ledger holds exactly wantDebits DEBIT entries
// (plus the single funding CREDIT).
func assertLedgerDebits(t *testing.T, app *testApp, token string, wantDebits int) {
	t.Helper()

	resp := doRequest(t, app, http.MethodGet, "/api/v1/wallet/transactions?limit=100", token, nil)
	defer resp.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode transactions: %v", err)
	}
	items, _ := body["data"].([]interface{})

	debits, credits := 0, 0
	for _, item := range items {
		entry := item.(map[string]interface{})
		switch entry["type"] {
		case "DEBIT":
			debits++
		case "CREDIT":
			credits++
		}
	}
	if debits != wantDebits {
		t.Fatalf("expected %d debit entries, got %d", wantDebits, debits)
	}
	if credits != 1 {
		t.Fatalf("expected 1 credit entry, got %d", credits)
	}
}
