// Package middleware はGinベースのBistro APIで使用する共通ミドルウェアを提供する。
//
// JWT認証トークンの検証、パニックリカバリ、CORS設定、レート制限、
// Prometheusメトリクス収集など、ハンドラの前段で動作するゲートを含む。
package middleware
