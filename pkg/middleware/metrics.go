package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はHTTPリクエストのPrometheusメトリクスを収集する。
type MetricsCollector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration prometheus.Histogram
}

// NewMetricsCollector は新しいMetricsCollectorを生成し、
// 指定されたレジストリにメトリクスを登録する。
func NewMetricsCollector(reg prometheus.Registerer) *MetricsCollector {
	m := &MetricsCollector{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bistro_http_requests_total",
			Help: "HTTPリクエストの合計数（メソッド・パス・ステータスコード別）",
		}, []string{"method", "path", "status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bistro_http_request_duration_seconds",
			Help:    "HTTPリクエスト処理のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(m.requestsTotal, m.requestDuration)

	return m
}

// Middleware はリクエストごとにメトリクスを記録するGinミドルウェアを返す。
// パスラベルにはルートテンプレート（例: /users/admin/:email）を使用し、
// カーディナリティの爆発を防ぐ。
func (m *MetricsCollector) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.requestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.requestDuration.Observe(time.Since(start).Seconds())
	}
}

// MetricsHandler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func MetricsHandler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
