// Package bistro はレストラン注文アプリ「Bistro Boss」のバックエンドAPIを提供する。
//
// ユーザー・メニュー・レビュー・カート・決済の各リソースをHTTPで公開し、
// 特権操作はJWT認証ゲートとロール認可ゲートの連鎖で保護する。
package bistro

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
	_ "modernc.org/sqlite"

	bistrodb "github.com/nao1215/bistro/internal/bistro/db"
	"github.com/nao1215/bistro/pkg/middleware"
)

// Server はBistro APIのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *bistrodb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
	// jwtSecret はIDトークン署名用の秘密鍵。
	jwtSecret string
	// payments は外部決済ゲートウェイへのブリッジ。
	payments PaymentIntentCreator
	// limiter はトークン発行エンドポイントのレートリミッター。
	limiter *middleware.RateLimiter
}

// NewServer は新しいBistroサーバーを生成する。
// SQLiteデータベースの初期化とマイグレーション適用を行う。
func NewServer(port string) (*Server, error) {
	dbPath := getEnvOr("BISTRO_DB_PATH", "/data/bistro.db")
	sqlDB, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	if err := initSchema(sqlDB); err != nil {
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}

	jwtSecret := os.Getenv("ACCESS_TOKEN_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret-key"
	}

	frontendURL := getEnvOr("FRONTEND_URL", "http://localhost:5173")

	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetricsCollector(registry)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS([]string{frontendURL}))
	router.Use(metrics.Middleware())

	s := &Server{
		router:    router,
		port:      port,
		queries:   bistrodb.New(sqlDB),
		db:        sqlDB,
		jwtSecret: jwtSecret,
		payments:  newStripeGateway(os.Getenv("STRIPE_SECRET_KEY")),
		// トークン発行は10回/分まで
		limiter: middleware.NewRateLimiter(rate.Limit(10.0/60.0), 10),
	}
	s.setupRoutes(registry)

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
// 各ルートには必要なゲート（認証・認可）を順に連鎖させる。
// ゲートは先頭から評価され、いずれかが失敗した時点でハンドラには到達しない。
func (s *Server) setupRoutes(gatherer prometheus.Gatherer) {
	auth := middleware.JWTAuth(s.jwtSecret)
	admin := s.requireAdmin()

	// トークン発行（公開・レート制限のみ）
	s.router.POST("/jwt", s.limiter.Middleware(), s.handleIssueToken())

	// ユーザー関連API
	s.router.GET("/users", auth, admin, s.handleListUsers())
	s.router.POST("/users", s.handleCreateUser())
	s.router.GET("/users/admin/:email", auth, s.handleCheckAdmin())
	s.router.PATCH("/users/admin/:id", auth, admin, s.handlePromoteAdmin())

	// メニュー関連API（一覧は公開、作成・削除は管理者のみ）
	s.router.GET("/menu", s.handleListMenu())
	s.router.POST("/menu", auth, admin, s.handleCreateMenuItem())
	s.router.DELETE("/menu/:id", auth, admin, s.handleDeleteMenuItem())

	// レビュー関連API（読み取り専用）
	s.router.GET("/reviews", s.handleListReviews())

	// カート関連API
	s.router.GET("/carts", auth, s.handleListCarts())
	s.router.POST("/carts", s.handleCreateCartItem())
	s.router.DELETE("/carts/:id", s.handleDeleteCartItem())

	// 決済関連API
	s.router.POST("/create-payment-intent", auth, s.handleCreatePaymentIntent())
	s.router.POST("/payment", auth, s.handleCreatePayment())

	// 管理ダッシュボード
	s.router.GET("/admin-stats", auth, admin, s.handleAdminStats())

	// 死活監視
	s.router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bistro boss server is running")
	})
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "bistro"})
	})

	// Prometheusスクレイプ
	s.router.GET("/metrics", gin.WrapH(middleware.MetricsHandler(gatherer)))
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
