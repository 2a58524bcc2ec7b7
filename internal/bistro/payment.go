package bistro

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	bistrodb "github.com/nao1215/bistro/internal/bistro/db"
	"github.com/nao1215/bistro/pkg/middleware"
)

// PaymentIntentCreator は外部決済ゲートウェイへの橋渡しを抽象化する。
// このAPIは台帳ではなく、チャージ意図の作成だけをゲートウェイに委譲する。
type PaymentIntentCreator interface {
	// CreateIntent は最小通貨単位の金額でチャージ意図を作成し、
	// フロントエンドが決済を完了するためのclient secretを返す。
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// stripeGateway はStripe APIを用いたPaymentIntentCreatorの実装。
type stripeGateway struct {
	client *client.API
}

// newStripeGateway は新しいstripeGatewayを生成する。
func newStripeGateway(secretKey string) *stripeGateway {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &stripeGateway{client: sc}
}

// CreateIntent はStripeのPaymentIntentを作成してclient secretを返す。
func (g *stripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.client.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("PaymentIntentの作成に失敗: %w", err)
	}
	return pi.ClientSecret, nil
}

// createPaymentIntentRequest はチャージ意図作成リクエストのJSON構造。
type createPaymentIntentRequest struct {
	// Price は10進表記の決済金額。
	Price float64 `json:"price" binding:"required"`
}

// handleCreatePaymentIntent は外部ゲートウェイへのチャージ意図作成を処理するハンドラを返す。
func (s *Server) handleCreatePaymentIntent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPaymentIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, middleware.ErrorBody("price is required"))
			return
		}

		// 10進の金額を最小通貨単位（セント）の整数に変換する
		amount := int64(math.Round(req.Price * 100))

		clientSecret, err := s.payments.CreateIntent(c.Request.Context(), amount, "usd")
		if err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to create payment intent"))
			log.Printf("PaymentIntent作成エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
	}
}

// createPaymentRequest は決済記録リクエストのJSON構造。
// 所有者はトークンのクレームから決定し、ボディのメールアドレスは使用しない。
type createPaymentRequest struct {
	// Price は決済金額。
	Price float64 `json:"price" binding:"required"`
	// TransactionID はゲートウェイが発行したトランザクションID。
	TransactionID string `json:"transaction_id"`
	// CartItemIDs は決済対象となったカート項目のID一覧。
	CartItemIDs []string `json:"cart_item_ids"`
}

// handleCreatePayment は外部チャージ成功後の決済記録を処理するハンドラを返す。
// チャージ意図の作成とは独立した呼び出しであり、両者の整合はとらない。
// 照合用にトランザクションIDを保存する。
func (s *Server) handleCreatePayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, middleware.ErrorBody("price is required"))
			return
		}

		cartItemIDs, err := json.Marshal(req.CartItemIDs)
		if err != nil {
			c.JSON(http.StatusBadRequest, middleware.ErrorBody("invalid cart item ids"))
			return
		}

		id := uuid.New().String()
		if err := s.queries.CreatePayment(c.Request.Context(), bistrodb.CreatePaymentParams{
			ID:            id,
			Email:         middleware.GetEmail(c),
			Price:         req.Price,
			TransactionID: req.TransactionID,
			CartItemIds:   string(cartItemIDs),
			CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		}); err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to record payment"))
			log.Printf("決済記録エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"inserted_id": id})
	}
}
