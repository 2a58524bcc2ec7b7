package bistro

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/bistro/pkg/middleware"
)

// reviewResponse はレビューのJSONレスポンス構造。
// このAPIにレビューの書き込み経路はなく、読み取り専用のリソースとして公開する。
type reviewResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}

// handleListReviews はレビュー一覧取得を処理するハンドラを返す。認証不要。
func (s *Server) handleListReviews() gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews, err := s.queries.ListReviews(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to list reviews"))
			log.Printf("レビュー一覧取得エラー: %v", err)
			return
		}

		responses := make([]reviewResponse, 0, len(reviews))
		for _, r := range reviews {
			responses = append(responses, reviewResponse{
				ID:      r.ID,
				Name:    r.Name,
				Details: r.Details,
				Rating:  r.Rating,
			})
		}

		c.JSON(http.StatusOK, responses)
	}
}
