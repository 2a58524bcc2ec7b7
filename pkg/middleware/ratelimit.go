package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter はクライアントIPごとのトークンバケット式レート制限を管理する。
// トークン発行エンドポイントの乱用防止に使用する。
type RateLimiter struct {
	// limit は1秒あたりの許可リクエスト数。
	limit rate.Limit
	// burst はバーストサイズ。
	burst int

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopCh chan struct{}
}

// clientLimiter はクライアントごとのリミッターと最終アクセス時刻を保持する。
type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// cleanupInterval は期限切れエントリのクリーンアップ間隔。
const cleanupInterval = 5 * time.Minute

// NewRateLimiter は新しいRateLimiterを生成する。
// バックグラウンドで期限切れエントリのクリーンアップを開始する。
func NewRateLimiter(limit rate.Limit, burst int) *RateLimiter {
	rl := &RateLimiter{
		limit:    limit,
		burst:    burst,
		limiters: make(map[string]*clientLimiter),
		stopCh:   make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop はクリーンアップのバックグラウンドゴルーチンを停止する。
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// Middleware はクライアントIPごとにレート制限を適用するGinミドルウェアを返す。
// 超過時は429 Too Many RequestsとRetry-Afterヘッダーを返す。
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.getOrCreate(c.ClientIP())

		if !limiter.Allow() {
			retryAfterSec := int(1.0 / float64(rl.limit))
			if retryAfterSec < 1 {
				retryAfterSec = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfterSec))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorBody("too many requests"))
			return
		}

		c.Next()
	}
}

// EntryCount は現在管理されているリミッターのエントリ数を返す。テスト用。
func (rl *RateLimiter) EntryCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

// getOrCreate はクライアントのリミッターを取得または作成する。
func (rl *RateLimiter) getOrCreate(clientIP string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if cl, exists := rl.limiters[clientIP]; exists {
		cl.lastAccess = time.Now()
		return cl.limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters[clientIP] = &clientLimiter{
		limiter:    limiter,
		lastAccess: time.Now(),
	}
	return limiter
}

// cleanupLoop はバックグラウンドで期限切れエントリを定期的にクリーンアップする。
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup は最終アクセス時刻がクリーンアップ間隔の2倍を超えたエントリを削除する。
func (rl *RateLimiter) cleanup() {
	ttl := cleanupInterval * 2
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, ip)
		}
	}
}
