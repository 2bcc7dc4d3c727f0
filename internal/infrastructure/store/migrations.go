package store

import "database/sql"

// schema 建立資料表的 SQL。啟動時執行，確保資料表存在。
// 列表欄位（食材、步驟、標籤）以 JSON 文字保存，比對查詢走 LIKE。
const schema = `
CREATE TABLE IF NOT EXISTS recipes (
    recipe_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    ingredients TEXT NOT NULL,
    ingredient_quantities TEXT,
    calories INTEGER NOT NULL,
    steps TEXT NOT NULL,
    estimated_time INTEGER NOT NULL,
    difficulty TEXT NOT NULL,
    cuisine TEXT NOT NULL,
    is_veg INTEGER NOT NULL,
    tags TEXT,
    rating REAL NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_recipes_title ON recipes(title);
CREATE INDEX IF NOT EXISTS idx_recipes_difficulty ON recipes(difficulty);
CREATE INDEX IF NOT EXISTS idx_recipes_cuisine ON recipes(cuisine);
CREATE INDEX IF NOT EXISTS idx_recipes_calories ON recipes(calories);
CREATE INDEX IF NOT EXISTS idx_recipes_estimated_time ON recipes(estimated_time);
`

// runMigrations 執行資料表初始化
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
