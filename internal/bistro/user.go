package bistro

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bistrodb "github.com/nao1215/bistro/internal/bistro/db"
	"github.com/nao1215/bistro/pkg/middleware"
)

// createUserRequest はユーザー作成リクエストのJSON構造。
type createUserRequest struct {
	// Email はユーザーの一意キーとなるメールアドレス。
	Email string `json:"email" binding:"required"`
	// Name は表示名。
	Name string `json:"name"`
}

// userResponse はユーザーのJSONレスポンス構造。
type userResponse struct {
	// ID はユーザーの一意識別子。
	ID string `json:"id"`
	// Email はメールアドレス。
	Email string `json:"email"`
	// Name は表示名。
	Name string `json:"name"`
	// Role は認可ロール。未設定の場合は空文字列。
	Role string `json:"role"`
	// CreatedAt は作成日時。
	CreatedAt string `json:"created_at"`
}

// toUserResponse はDB行をJSONレスポンスに変換する。
func toUserResponse(u bistrodb.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// handleListUsers は全ユーザー一覧取得を処理するハンドラを返す。管理者専用。
func (s *Server) handleListUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := s.queries.ListUsers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to list users"))
			log.Printf("ユーザー一覧取得エラー: %v", err)
			return
		}

		responses := make([]userResponse, 0, len(users))
		for _, u := range users {
			responses = append(responses, toUserResponse(u))
		}

		c.JSON(http.StatusOK, responses)
	}
}

// handleCreateUser はユーザー作成を処理するハンドラを返す。
// 初回サインイン時に呼ばれるため冪等であり、同じメールアドレスの
// レコードが既に存在する場合は何も変更せず既存を知らせるだけとする。
// 存在チェックと挿入の競合を避けるため、ストレージ側のユニーク制約による
// アトミックなupsertを使用する。
func (s *Server) handleCreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, middleware.ErrorBody("email is required"))
			return
		}

		rows, err := s.queries.CreateUser(c.Request.Context(), bistrodb.CreateUserParams{
			ID:    uuid.New().String(),
			Email: req.Email,
			Name:  req.Name,
			Role:  "",
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to create user"))
			log.Printf("ユーザー作成エラー: %v", err)
			return
		}

		if rows == 0 {
			c.JSON(http.StatusOK, gin.H{"message": "user already exist"})
			return
		}

		created, err := s.queries.GetUserByEmail(c.Request.Context(), req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to fetch created user"))
			log.Printf("ユーザー取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, toUserResponse(created))
	}
}

// handleCheckAdmin は指定メールアドレスのユーザーが管理者かどうかを返すハンドラを返す。
// 認証済みの呼び出し元自身のメールアドレス以外への問い合わせは、
// ロールを照会せず admin:false を即座に返す。
func (s *Server) handleCheckAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		if middleware.GetEmail(c) != email {
			c.JSON(http.StatusOK, gin.H{"admin": false})
			return
		}

		user, err := s.queries.GetUserByEmail(c.Request.Context(), email)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to look up user"))
			log.Printf("ユーザー取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"admin": err == nil && user.Role == roleAdmin})
	}
}

// handlePromoteAdmin は指定IDのユーザーを管理者へ昇格させるハンドラを返す。管理者専用。
// 存在しないIDの場合は modified_count が0になるだけでエラーにはしない。
func (s *Server) handlePromoteAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		rows, err := s.queries.PromoteUserToAdmin(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, middleware.ErrorBody("failed to promote user"))
			log.Printf("管理者昇格エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"modified_count": rows})
	}
}
