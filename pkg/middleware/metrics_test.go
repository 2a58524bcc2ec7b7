package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// TestMetricsCollector はメトリクス収集ミドルウェアのテスト。
func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	t.Run("リクエスト数と処理時間が記録されること", func(t *testing.T) {
		t.Parallel()

		reg := prometheus.NewRegistry()
		m := NewMetricsCollector(reg)

		router := gin.New()
		router.Use(m.Middleware())
		router.GET("/menu", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})
		router.GET("/metrics", gin.WrapH(MetricsHandler(reg)))

		req := httptest.NewRequest(http.MethodGet, "/menu", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		req2 := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		w2 := httptest.NewRecorder()
		router.ServeHTTP(w2, req2)
		if w2.Code != http.StatusOK {
			t.Fatalf("ステータスコード: got %d, want %d", w2.Code, http.StatusOK)
		}

		body := w2.Body.String()
		if !strings.Contains(body, `bistro_http_requests_total{method="GET",path="/menu",status_code="200"} 1`) {
			t.Errorf("リクエスト数のメトリクスが見つからない: %s", body)
		}
		if !strings.Contains(body, "bistro_http_request_duration_seconds_count 1") {
			t.Errorf("処理時間のメトリクスが見つからない: %s", body)
		}
	})

	t.Run("未定義ルートはunmatchedとして記録されること", func(t *testing.T) {
		t.Parallel()

		reg := prometheus.NewRegistry()
		m := NewMetricsCollector(reg)

		router := gin.New()
		router.Use(m.Middleware())
		router.GET("/metrics", gin.WrapH(MetricsHandler(reg)))

		req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		req2 := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		w2 := httptest.NewRecorder()
		router.ServeHTTP(w2, req2)

		if !strings.Contains(w2.Body.String(), `path="unmatched"`) {
			t.Error("unmatchedラベルのメトリクスが見つからない")
		}
	})
}
