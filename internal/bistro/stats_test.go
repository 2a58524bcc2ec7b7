package bistro

import (
	"net/http"
	"testing"
)

// TestHandleAdminStats は管理ダッシュボード統計ハンドラのテスト。
func TestHandleAdminStats(t *testing.T) {
	t.Parallel()

	t.Run("収益が全決済金額の正確な合計になること", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		seedUser(t, s, "admin-1", "admin@example.com", "管理者", "admin")
		seedPayment(t, s, "pay-1", "a@x.com", 10)
		seedPayment(t, s, "pay-2", "b@x.com", 25.5)
		seedPayment(t, s, "pay-3", "c@x.com", 4.5)

		token := issueTestToken(t, "admin@example.com")
		w := doRequest(t, s, http.MethodGet, "/admin-stats", token, "")
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード: got %d, want %d", w.Code, http.StatusOK)
		}

		result := parseJSON(t, w)
		if result["revenue"] != float64(40) {
			t.Errorf("revenue: got %v, want 40", result["revenue"])
		}
		if result["orders"] != float64(3) {
			t.Errorf("orders: got %v, want 3", result["orders"])
		}
	})

	t.Run("ユーザー数とメニュー数と注文数を返すこと", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		seedUser(t, s, "admin-1", "admin@example.com", "管理者", "admin")
		seedUser(t, s, "user-1", "a@x.com", "利用者A", "")
		seedMenuItem(t, s, "menu-1", "マルゲリータ", "pizza", 12.0)
		seedPayment(t, s, "pay-1", "a@x.com", 12.0)

		token := issueTestToken(t, "admin@example.com")
		w := doRequest(t, s, http.MethodGet, "/admin-stats", token, "")
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード: got %d, want %d", w.Code, http.StatusOK)
		}

		result := parseJSON(t, w)
		if result["users"] != float64(2) {
			t.Errorf("users: got %v, want 2", result["users"])
		}
		if result["menuItems"] != float64(1) {
			t.Errorf("menuItems: got %v, want 1", result["menuItems"])
		}
		if result["orders"] != float64(1) {
			t.Errorf("orders: got %v, want 1", result["orders"])
		}
	})

	t.Run("決済が存在しない場合は収益が0になること", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		seedUser(t, s, "admin-1", "admin@example.com", "管理者", "admin")

		token := issueTestToken(t, "admin@example.com")
		w := doRequest(t, s, http.MethodGet, "/admin-stats", token, "")
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード: got %d, want %d", w.Code, http.StatusOK)
		}

		result := parseJSON(t, w)
		if result["revenue"] != float64(0) {
			t.Errorf("revenue: got %v, want 0", result["revenue"])
		}
	})

	t.Run("一般ユーザーは403を返すこと", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		seedUser(t, s, "user-1", "member@example.com", "一般", "")

		token := issueTestToken(t, "member@example.com")
		w := doRequest(t, s, http.MethodGet, "/admin-stats", token, "")
		if w.Code != http.StatusForbidden {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusForbidden)
		}
	})
}
