package bistro

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/bistro/pkg/middleware"
)

// adminStatsResponse は管理ダッシュボード統計のJSONレスポンス構造。
type adminStatsResponse struct {
	// Revenue は全決済金額の合計。概算ではなく毎回の正確な集計。
	Revenue float64 `json:"revenue"`
	// Users はユーザー数。
	Users int64 `json:"users"`
	// MenuItems はメニュー項目数。
	MenuItems int64 `json:"menuItems"`
	// Orders は決済（注文）数。
	Orders int64 `json:"orders"`
}

// handleAdminStats は管理ダッシュボード用の統計取得を処理するハンドラを返す。管理者専用。
// 収益は決済レコード全体の合計をリクエストごとに同期的に計算する。
// キャッシュや増分集計は行わないため、コストは決済数に比例する。
func (s *Server) handleAdminStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		users, err := s.queries.CountUsers(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to compute stats"))
			log.Printf("ユーザー数集計エラー: %v", err)
			return
		}

		menuItems, err := s.queries.CountMenuItems(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to compute stats"))
			log.Printf("メニュー数集計エラー: %v", err)
			return
		}

		orders, err := s.queries.CountPayments(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to compute stats"))
			log.Printf("注文数集計エラー: %v", err)
			return
		}

		revenue, err := s.queries.SumPaymentPrices(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to compute stats"))
			log.Printf("収益集計エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, adminStatsResponse{
			Revenue:   revenue,
			Users:     users,
			MenuItems: menuItems,
			Orders:    orders,
		})
	}
}
