package bistro

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

// TestHandleCreatePaymentIntent はチャージ意図作成ハンドラのテスト。
func TestHandleCreatePaymentIntent(t *testing.T) {
	t.Parallel()

	t.Run("金額を最小通貨単位に変換してゲートウェイへ渡すこと", func(t *testing.T) {
		t.Parallel()

		gateway := &stubPaymentGateway{clientSecret: "pi_abc_secret"}
		s := newTestServerWithGateway(t, gateway)

		token := issueTestToken(t, "payer@example.com")
		w := doRequest(t, s, http.MethodPost, "/create-payment-intent", token, `{"price":99.99}`)
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード: got %d, want %d", w.Code, http.StatusOK)
		}

		if gateway.lastAmount != 9999 {
			t.Errorf("amount: got %d, want %d", gateway.lastAmount, 9999)
		}
		if gateway.lastCurrency != "usd" {
			t.Errorf("currency: got %q, want %q", gateway.lastCurrency, "usd")
		}

		result := parseJSON(t, w)
		if result["clientSecret"] != "pi_abc_secret" {
			t.Errorf("clientSecret: got %q, want %q", result["clientSecret"], "pi_abc_secret")
		}
	})

	t.Run("ゲートウェイ障害時は整形された500を返すこと", func(t *testing.T) {
		t.Parallel()

		gateway := &stubPaymentGateway{err: errors.New("gateway down")}
		s := newTestServerWithGateway(t, gateway)

		token := issueTestToken(t, "payer@example.com")
		w := doRequest(t, s, http.MethodPost, "/create-payment-intent", token, `{"price":10.0}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("ステータスコード: got %d, want %d", w.Code, http.StatusInternalServerError)
		}

		result := parseJSON(t, w)
		if result["error"] != true {
			t.Error("errorフィールドがtrueでない")
		}
		if result["message"] != "failed to create payment intent" {
			t.Errorf("message: got %q, want %q", result["message"], "failed to create payment intent")
		}
	})

	t.Run("priceが無い場合は400を返すこと", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		token := issueTestToken(t, "payer@example.com")
		w := doRequest(t, s, http.MethodPost, "/create-payment-intent", token, `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("認証なしでは401を返すこと", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		w := doRequest(t, s, http.MethodPost, "/create-payment-intent", "", `{"price":10.0}`)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})
}

// TestHandleCreatePayment は決済記録ハンドラのテスト。
func TestHandleCreatePayment(t *testing.T) {
	t.Parallel()

	t.Run("決済を記録しinserted_idを返すこと", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		token := issueTestToken(t, "payer@example.com")
		body := `{"price":25.5,"transaction_id":"txn_123","cart_item_ids":["cart-1","cart-2"]}`
		w := doRequest(t, s, http.MethodPost, "/payment", token, body)
		if w.Code != http.StatusCreated {
			t.Fatalf("ステータスコード: got %d, want %d", w.Code, http.StatusCreated)
		}

		result := parseJSON(t, w)
		id, ok := result["inserted_id"].(string)
		if !ok || id == "" {
			t.Fatal("inserted_idフィールドが空")
		}

		count, err := s.queries.CountPayments(context.Background())
		if err != nil {
			t.Fatalf("決済数の取得に失敗: %v", err)
		}
		if count != 1 {
			t.Errorf("決済数: got %d, want %d", count, 1)
		}

		revenue, err := s.queries.SumPaymentPrices(context.Background())
		if err != nil {
			t.Fatalf("収益の取得に失敗: %v", err)
		}
		if revenue != 25.5 {
			t.Errorf("収益: got %v, want %v", revenue, 25.5)
		}
	})

	t.Run("priceが無い場合は400を返すこと", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		token := issueTestToken(t, "payer@example.com")
		w := doRequest(t, s, http.MethodPost, "/payment", token, `{"transaction_id":"txn_123"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("認証なしでは401を返すこと", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)

		w := doRequest(t, s, http.MethodPost, "/payment", "", `{"price":25.5}`)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})
}
