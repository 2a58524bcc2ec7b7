package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims はIDトークンのクレーム（ペイロード）を表す。
// 所有権チェックではこのEmailが唯一の根拠となり、
// リクエストボディ等で別のメールアドレスを名乗っても信用しない。
type JWTClaims struct {
	jwt.RegisteredClaims
	// Email は認証済み利用者のメールアドレス。
	Email string `json:"email"`
}

// tokenIssuer はIDトークンのiss（発行者）クレーム値。
const tokenIssuer = "bistro-api"

// contextKeyEmail はGinコンテキストに検証済みメールアドレスを格納するキー。
const contextKeyEmail = "email"

// ErrorBody は全エンドポイント共通のエラーレスポンス形式を返す。
// フロントエンドが {error:true, message} 形式に依存しているため変更しないこと。
func ErrorBody(message string) gin.H {
	return gin.H{"error": true, "message": message}
}

// GenerateJWT は指定された有効期間を持つIDトークンを生成する。
// 通常のサインインでは短い有効期間、継続セッションでは長い有効期間を
// 呼び出し側が選択する。ペイロードの内容検証は行わない。
func GenerateJWT(secret, email string, ttl time.Duration) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    tokenIssuer,
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("JWTトークンの署名に失敗: %w", err)
	}
	return signed, nil
}

// VerifyJWT はトークン文字列を検証し、デコード済みクレームを返す。
// 署名不一致・形式不正・期限切れはすべてエラーとなる。ストレージは参照しない。
func VerifyJWT(secret, tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("JWTトークンの検証に失敗: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("JWTトークンが無効")
	}
	return claims, nil
}

// JWTAuth はAuthorizationヘッダーのBearerトークンを検証するGinミドルウェアを返す。
// 検証に成功した場合、コンテキストに検証済みメールアドレスを設定する。
//
// エラーメッセージ（"unauthorized access" / "Unauthorized token"）は
// 既存フロントエンドとの互換性のため固定文言とする。
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorBody("unauthorized access"))
			return
		}

		// スキーム語は検証せず、空白区切りの2番目の要素をトークンとして扱う
		var tokenString string
		if parts := strings.Fields(authHeader); len(parts) >= 2 {
			tokenString = parts[1]
		}

		claims, err := VerifyJWT(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorBody("Unauthorized token"))
			return
		}

		c.Set(contextKeyEmail, claims.Email)
		c.Next()
	}
}

// GetEmail はGinコンテキストから検証済みメールアドレスを取得する。
// JWTAuthミドルウェアが事前に適用されている必要がある。
func GetEmail(c *gin.Context) string {
	email, _ := c.Get(contextKeyEmail)
	if e, ok := email.(string); ok {
		return e
	}
	return ""
}
