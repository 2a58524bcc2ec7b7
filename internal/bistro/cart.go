package bistro

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bistrodb "github.com/nao1215/bistro/internal/bistro/db"
	"github.com/nao1215/bistro/pkg/middleware"
)

// createCartItemRequest はカート追加リクエストのJSON構造。
// 所有者メールアドレスは送信された値をそのまま信頼する（互換挙動）。
type createCartItemRequest struct {
	// Email はカート項目の所有者メールアドレス。
	Email string `json:"email" binding:"required"`
	// MenuItemID は参照するメニュー項目のID。
	MenuItemID string `json:"menu_item_id"`
	// Name は料理名のスナップショット。
	Name string `json:"name"`
	// Image は画像URLのスナップショット。
	Image string `json:"image"`
	// Price は追加時点の価格。
	Price float64 `json:"price"`
}

// cartItemResponse はカート項目のJSONレスポンス構造。
type cartItemResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
}

// toCartItemResponse はDB行をJSONレスポンスに変換する。
func toCartItemResponse(i bistrodb.CartItem) cartItemResponse {
	return cartItemResponse{
		ID:         i.ID,
		Email:      i.Email,
		MenuItemID: i.MenuItemID,
		Name:       i.Name,
		Image:      i.Image,
		Price:      i.Price,
	}
}

// handleListCarts は所有者メールアドレスによるカート一覧取得を処理するハンドラを返す。
// トークンのクレームに含まれるメールアドレスと問い合わせ対象が一致しない場合は403を返す。
// emailクエリパラメータが無い場合はエラーではなく空配列を返す（互換挙動）。
func (s *Server) handleListCarts() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusOK, []cartItemResponse{})
			return
		}

		if middleware.GetEmail(c) != email {
			c.JSON(http.StatusForbidden, middleware.ErrorBody("forbidden access"))
			return
		}

		items, err := s.queries.ListCartItemsByEmail(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to list cart items"))
			log.Printf("カート一覧取得エラー: %v", err)
			return
		}

		responses := make([]cartItemResponse, 0, len(items))
		for _, i := range items {
			responses = append(responses, toCartItemResponse(i))
		}

		c.JSON(http.StatusOK, responses)
	}
}

// handleCreateCartItem はカート項目追加を処理するハンドラを返す。
func (s *Server) handleCreateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, middleware.ErrorBody("email is required"))
			return
		}

		id := uuid.New().String()
		if err := s.queries.CreateCartItem(c.Request.Context(), bistrodb.CreateCartItemParams{
			ID:         id,
			Email:      req.Email,
			MenuItemID: req.MenuItemID,
			Name:       req.Name,
			Image:      req.Image,
			Price:      req.Price,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to create cart item"))
			log.Printf("カート追加エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, cartItemResponse{
			ID:         id,
			Email:      req.Email,
			MenuItemID: req.MenuItemID,
			Name:       req.Name,
			Image:      req.Image,
			Price:      req.Price,
		})
	}
}

// handleDeleteCartItem はカート項目削除を処理するハンドラを返す。
// 存在しないIDの場合は deleted_count が0になるだけでエラーにはしない。
func (s *Server) handleDeleteCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		rows, err := s.queries.DeleteCartItem(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to delete cart item"))
			log.Printf("カート削除エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"deleted_count": rows})
	}
}
