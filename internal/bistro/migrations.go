package bistro

import (
	"database/sql"
	"embed"

	"github.com/nao1215/bistro/pkg/migration"
)

//go:embed migrations/*.up.sql
var migrationFS embed.FS

// initSchema は埋め込まれたマイグレーションを適用してスキーマを初期化する。
func initSchema(db *sql.DB) error {
	return migration.Run(db, migrationFS, "migrations")
}
