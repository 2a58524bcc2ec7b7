// Bistro APIサーバーのエントリポイント。
// ユーザー・メニュー・レビュー・カート・決済のリソースAPIと、
// JWT認証/ロール認可による特権操作の保護を提供する。
package main

import (
	"log"
	"os"

	"github.com/nao1215/bistro/internal/bistro"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	server, err := bistro.NewServer(port)
	if err != nil {
		log.Fatalf("Bistroサーバーの初期化に失敗: %v", err)
	}

	log.Printf("Bistroサーバーを起動します: :%s", port)
	if err := server.Run(); err != nil {
		log.Fatalf("Bistroサーバーの起動に失敗: %v", err)
	}
}
