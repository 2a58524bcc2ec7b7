package bistro

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/bistro/pkg/middleware"
)

// accessTokenTTL は通常サインイン時のトークン有効期間。
const accessTokenTTL = time.Hour

// sessionTokenTTL は「ログイン状態を維持する」選択時のトークン有効期間。
const sessionTokenTTL = 30 * 24 * time.Hour

// roleAdmin は管理者ロールの値。ユーザー作成時は空文字列（ロール未設定）で始まり、
// 昇格操作によってのみこの値へ遷移する。
const roleAdmin = "admin"

// issueTokenRequest はトークン発行リクエストのJSON構造。
type issueTokenRequest struct {
	// Email はトークンに埋め込むメールアドレス。内容の検証は行わない。
	Email string `json:"email" binding:"required"`
	// RememberMe がtrueの場合、長期セッション用の有効期間でトークンを発行する。
	RememberMe bool `json:"remember_me"`
}

// handleIssueToken はIDトークン発行を処理するハンドラを返す。
// サインイン済みフロントエンドが後続リクエストのBearerトークンを得るために呼び出す。
func (s *Server) handleIssueToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req issueTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, middleware.ErrorBody("email is required"))
			return
		}

		ttl := accessTokenTTL
		if req.RememberMe {
			ttl = sessionTokenTTL
		}

		token, err := middleware.GenerateJWT(s.jwtSecret, req.Email, ttl)
		if err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to issue token"))
			log.Printf("トークン発行エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// requireAdmin は認証済みメールアドレスのロールを参照し、
// admin以外を403で遮断する認可ゲートを返す。
//
// JWTAuthの後に配置すること。ロール変更が次のリクエストから反映されるよう、
// キャッシュせず毎回ストレージを参照する。
func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.GetEmail(c)

		user, err := s.queries.GetUserByEmail(c.Request.Context(), email)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, middleware.ErrorBody("failed to look up user role"))
			log.Printf("ロール参照エラー: %v", err)
			return
		}
		if errors.Is(err, sql.ErrNoRows) || user.Role != roleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, middleware.ErrorBody("forbidden access"))
			return
		}

		c.Next()
	}
}
