package bistro

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bistrodb "github.com/nao1215/bistro/internal/bistro/db"
	"github.com/nao1215/bistro/pkg/middleware"
)

// createMenuItemRequest はメニュー項目作成リクエストのJSON構造。
type createMenuItemRequest struct {
	// Name は料理名。
	Name string `json:"name" binding:"required"`
	// Category はカテゴリ（salad, pizza, dessert等）。
	Category string `json:"category"`
	// Price は価格。
	Price float64 `json:"price"`
	// Recipe は料理の説明。
	Recipe string `json:"recipe"`
	// Image は画像URL。
	Image string `json:"image"`
}

// menuItemResponse はメニュー項目のJSONレスポンス構造。
type menuItemResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
}

// toMenuItemResponse はDB行をJSONレスポンスに変換する。
func toMenuItemResponse(m bistrodb.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:       m.ID,
		Name:     m.Name,
		Category: m.Category,
		Price:    m.Price,
		Recipe:   m.Recipe,
		Image:    m.Image,
	}
}

// handleListMenu はメニュー一覧取得を処理するハンドラを返す。認証不要。
func (s *Server) handleListMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := s.queries.ListMenuItems(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to list menu"))
			log.Printf("メニュー一覧取得エラー: %v", err)
			return
		}

		responses := make([]menuItemResponse, 0, len(items))
		for _, m := range items {
			responses = append(responses, toMenuItemResponse(m))
		}

		c.JSON(http.StatusOK, responses)
	}
}

// handleCreateMenuItem はメニュー項目作成を処理するハンドラを返す。管理者専用。
func (s *Server) handleCreateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createMenuItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, middleware.ErrorBody("name is required"))
			return
		}

		id := uuid.New().String()
		if err := s.queries.CreateMenuItem(c.Request.Context(), bistrodb.CreateMenuItemParams{
			ID:       id,
			Name:     req.Name,
			Category: req.Category,
			Price:    req.Price,
			Recipe:   req.Recipe,
			Image:    req.Image,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to create menu item"))
			log.Printf("メニュー作成エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, menuItemResponse{
			ID:       id,
			Name:     req.Name,
			Category: req.Category,
			Price:    req.Price,
			Recipe:   req.Recipe,
			Image:    req.Image,
		})
	}
}

// handleDeleteMenuItem はメニュー項目削除を処理するハンドラを返す。管理者専用。
// 存在しないIDの場合は deleted_count が0になるだけでエラーにはしない。
func (s *Server) handleDeleteMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		rows, err := s.queries.DeleteMenuItem(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to delete menu item"))
			log.Printf("メニュー削除エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"deleted_count": rows})
	}
}
