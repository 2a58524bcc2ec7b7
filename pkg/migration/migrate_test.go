package migration

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

// newTestDB はテスト用のインメモリSQLiteデータベースを生成する。
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("インメモリDB接続に失敗: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// TestRun はマイグレーション適用のテスト。
func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("マイグレーションをバージョン順に適用できること", func(t *testing.T) {
		t.Parallel()

		db := newTestDB(t)
		fsys := fstest.MapFS{
			// 辞書順とバージョン順が一致しないファイル名でも正しく適用される
			"migrations/000002_add_column.up.sql": &fstest.MapFile{
				Data: []byte("ALTER TABLE items ADD COLUMN price REAL NOT NULL DEFAULT 0"),
			},
			"migrations/000001_create_items.up.sql": &fstest.MapFile{
				Data: []byte("CREATE TABLE items (id TEXT PRIMARY KEY)"),
			},
		}

		if err := Run(db, fsys, "migrations"); err != nil {
			t.Fatalf("マイグレーション適用に失敗: %v", err)
		}

		if _, err := db.Exec("INSERT INTO items (id, price) VALUES ('a', 1.5)"); err != nil {
			t.Errorf("マイグレーション後のスキーマが期待と異なる: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
			t.Fatalf("適用済みバージョン数の取得に失敗: %v", err)
		}
		if count != 2 {
			t.Errorf("適用済みバージョン数: got %d, want %d", count, 2)
		}
	})

	t.Run("再実行しても適用済みマイグレーションはスキップされること", func(t *testing.T) {
		t.Parallel()

		db := newTestDB(t)
		fsys := fstest.MapFS{
			"migrations/000001_create_items.up.sql": &fstest.MapFile{
				Data: []byte("CREATE TABLE items (id TEXT PRIMARY KEY)"),
			},
		}

		if err := Run(db, fsys, "migrations"); err != nil {
			t.Fatalf("1回目の適用に失敗: %v", err)
		}

		// CREATE TABLEが再実行されればエラーになる
		if err := Run(db, fsys, "migrations"); err != nil {
			t.Errorf("2回目の適用でエラー: %v", err)
		}
	})

	t.Run("不正なSQLの場合はエラーを返し記録されないこと", func(t *testing.T) {
		t.Parallel()

		db := newTestDB(t)
		fsys := fstest.MapFS{
			"migrations/000001_broken.up.sql": &fstest.MapFile{
				Data: []byte("THIS IS NOT SQL"),
			},
		}

		if err := Run(db, fsys, "migrations"); err == nil {
			t.Fatal("不正なSQLの適用が成功してしまった")
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
			t.Fatalf("適用済みバージョン数の取得に失敗: %v", err)
		}
		if count != 0 {
			t.Errorf("失敗したマイグレーションが記録されている: count=%d", count)
		}
	})

	t.Run("up.sql以外のファイルは無視されること", func(t *testing.T) {
		t.Parallel()

		db := newTestDB(t)
		fsys := fstest.MapFS{
			"migrations/000001_create_items.up.sql": &fstest.MapFile{
				Data: []byte("CREATE TABLE items (id TEXT PRIMARY KEY)"),
			},
			"migrations/000001_create_items.down.sql": &fstest.MapFile{
				Data: []byte("DROP TABLE items"),
			},
			"migrations/README.md": &fstest.MapFile{
				Data: []byte("マイグレーションの説明"),
			},
		}

		if err := Run(db, fsys, "migrations"); err != nil {
			t.Fatalf("マイグレーション適用に失敗: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
			t.Fatalf("適用済みバージョン数の取得に失敗: %v", err)
		}
		if count != 1 {
			t.Errorf("適用済みバージョン数: got %d, want %d", count, 1)
		}
	})
}
