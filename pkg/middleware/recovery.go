package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery はパニックからの回復を行うGinミドルウェアを返す。
// パニック発生時にログへ出力し、共通エラー形式の500レスポンスを返す。
// コラボレータ障害がプロセス境界まで漏れないための最終防壁となる。
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[PANIC] %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorBody("internal server error"))
			}
		}()
		c.Next()
	}
}
