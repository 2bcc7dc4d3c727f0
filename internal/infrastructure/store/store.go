// Package store 提供以 SQLite 為後端的食譜資料庫。
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // 純 Go SQLite 驅動，不需 CGO

	"recipe-analyzer/internal/pkg/common"

	"go.uber.org/zap"
)

// RecipeStore SQLite 食譜儲存
type RecipeStore struct {
	db *sql.DB
}

// sortColumns 列表查詢允許的排序欄位白名單
var sortColumns = map[string]string{
	"title":          "title",
	"calories":       "calories",
	"estimated_time": "estimated_time",
	"difficulty":     "difficulty",
	"cuisine":        "cuisine",
	"rating":         "rating",
	"created_at":     "created_at",
}

// New 建立食譜儲存，自動建立父目錄並執行資料表初始化
func New(dbPath string) (*RecipeStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	common.LogInfo("食譜資料庫已開啟", zap.String("路徑", dbPath))
	return &RecipeStore{db: db}, nil
}

// Close 關閉資料庫連線
func (s *RecipeStore) Close() error {
	return s.db.Close()
}

// Ping 檢查資料庫連線
func (s *RecipeStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Count 回傳食譜總數
func (s *RecipeStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipes").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}

// DeleteAll 清空所有食譜，匯入端在取代模式下使用
func (s *RecipeStore) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM recipes"); err != nil {
		return fmt.Errorf("failed to delete recipes: %w", err)
	}
	return nil
}

// InsertBatch 在單一交易內批次寫入食譜
func (s *RecipeStore) InsertBatch(ctx context.Context, recipes []common.StoredRecipe) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO recipes
		(recipe_id, title, ingredients, ingredient_quantities, calories, steps,
		 estimated_time, difficulty, cuisine, is_veg, tags, rating, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range recipes {
		ingredients, err := json.Marshal(r.Ingredients)
		if err != nil {
			return fmt.Errorf("failed to marshal ingredients: %w", err)
		}
		quantities, err := json.Marshal(r.IngredientQuantities)
		if err != nil {
			return fmt.Errorf("failed to marshal quantities: %w", err)
		}
		steps, err := json.Marshal(r.Steps)
		if err != nil {
			return fmt.Errorf("failed to marshal steps: %w", err)
		}
		tags, err := json.Marshal(r.Tags)
		if err != nil {
			return fmt.Errorf("failed to marshal tags: %w", err)
		}

		isVeg := 0
		if r.IsVeg {
			isVeg = 1
		}

		if _, err := stmt.ExecContext(ctx,
			r.RecipeID, r.Title, string(ingredients), string(quantities), r.Calories,
			string(steps), r.EstimatedTime, r.Difficulty, r.Cuisine, isVeg,
			string(tags), r.Rating, r.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert recipe %s: %w", r.RecipeID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

const recipeColumns = `recipe_id, title, ingredients, ingredient_quantities, calories,
	steps, estimated_time, difficulty, cuisine, is_veg, tags, rating, created_at`

// scanRecipe 從單列結果還原食譜，JSON 欄位一併解開
func scanRecipe(row interface{ Scan(...interface{}) error }) (common.StoredRecipe, error) {
	var r common.StoredRecipe
	var ingredients, quantities, steps, tags sql.NullString
	var isVeg int

	err := row.Scan(&r.RecipeID, &r.Title, &ingredients, &quantities, &r.Calories,
		&steps, &r.EstimatedTime, &r.Difficulty, &r.Cuisine, &isVeg,
		&tags, &r.Rating, &r.CreatedAt)
	if err != nil {
		return r, err
	}

	r.IsVeg = isVeg != 0
	if ingredients.Valid {
		if err := json.Unmarshal([]byte(ingredients.String), &r.Ingredients); err != nil {
			return r, fmt.Errorf("failed to unmarshal ingredients: %w", err)
		}
	}
	if quantities.Valid && quantities.String != "null" {
		if err := json.Unmarshal([]byte(quantities.String), &r.IngredientQuantities); err != nil {
			return r, fmt.Errorf("failed to unmarshal quantities: %w", err)
		}
	}
	if steps.Valid {
		if err := json.Unmarshal([]byte(steps.String), &r.Steps); err != nil {
			return r, fmt.Errorf("failed to unmarshal steps: %w", err)
		}
	}
	if tags.Valid && tags.String != "null" {
		if err := json.Unmarshal([]byte(tags.String), &r.Tags); err != nil {
			return r, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}
	return r, nil
}

// collectRecipes 讀取多列結果
func collectRecipes(rows *sql.Rows) ([]common.StoredRecipe, error) {
	defer rows.Close()

	recipes := []common.StoredRecipe{}
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	return recipes, nil
}

// List 分頁列出食譜
func (s *RecipeStore) List(ctx context.Context, page, limit int, sortBy, order string) (common.RecipePage, error) {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if strings.EqualFold(order, "desc") {
		direction = "DESC"
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	total, err := s.Count(ctx)
	if err != nil {
		return common.RecipePage{}, err
	}

	query := fmt.Sprintf("SELECT %s FROM recipes ORDER BY %s %s LIMIT ? OFFSET ?",
		recipeColumns, column, direction)
	rows, err := s.db.QueryContext(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return common.RecipePage{}, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes, err := collectRecipes(rows)
	if err != nil {
		return common.RecipePage{}, err
	}

	return common.RecipePage{
		Recipes: recipes,
		Total:   total,
		Page:    page,
		Pages:   (total + limit - 1) / limit,
		Limit:   limit,
	}, nil
}

// Random 隨機取一份食譜
func (s *RecipeStore) Random(ctx context.Context) (*common.StoredRecipe, error) {
	query := fmt.Sprintf("SELECT %s FROM recipes ORDER BY RANDOM() LIMIT 1", recipeColumns)
	r, err := scanRecipe(s.db.QueryRowContext(ctx, query))
	if err == sql.ErrNoRows {
		return nil, common.ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get random recipe: %w", err)
	}
	return &r, nil
}

// ByID 以 recipe_id 查詢
func (s *RecipeStore) ByID(ctx context.Context, id string) (*common.StoredRecipe, error) {
	query := fmt.Sprintf("SELECT %s FROM recipes WHERE recipe_id = ?", recipeColumns)
	r, err := scanRecipe(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, common.ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe by id: %w", err)
	}
	return &r, nil
}

// ByTitle 以標題查詢，不分大小寫
func (s *RecipeStore) ByTitle(ctx context.Context, title string) (*common.StoredRecipe, error) {
	query := fmt.Sprintf("SELECT %s FROM recipes WHERE title = ? COLLATE NOCASE LIMIT 1", recipeColumns)
	r, err := scanRecipe(s.db.QueryRowContext(ctx, query, title))
	if err == sql.ErrNoRows {
		return nil, common.ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe by title: %w", err)
	}
	return &r, nil
}

// Search 以關鍵字搜尋標題與食材
func (s *RecipeStore) Search(ctx context.Context, q string, limit int) ([]common.StoredRecipe, error) {
	if limit < 1 {
		limit = 20
	}
	pattern := "%" + q + "%"
	query := fmt.Sprintf(
		"SELECT %s FROM recipes WHERE title LIKE ? OR ingredients LIKE ? ORDER BY title LIMIT ?",
		recipeColumns)
	rows, err := s.db.QueryContext(ctx, query, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	return collectRecipes(rows)
}

// SearchByIngredient 搜尋含特定食材的食譜
func (s *RecipeStore) SearchByIngredient(ctx context.Context, ingredient string, limit int) ([]common.StoredRecipe, error) {
	if limit < 1 {
		limit = 20
	}
	query := fmt.Sprintf(
		"SELECT %s FROM recipes WHERE ingredients LIKE ? ORDER BY title LIMIT ?",
		recipeColumns)
	rows, err := s.db.QueryContext(ctx, query, "%"+ingredient+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search by ingredient: %w", err)
	}
	return collectRecipes(rows)
}

// Filter 多條件過濾，分頁回傳
func (s *RecipeStore) Filter(ctx context.Context, f common.RecipeFilter, page, limit int) (common.RecipePage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	conditions := []string{}
	args := []interface{}{}

	if f.Difficulty != "" {
		conditions = append(conditions, "difficulty = ? COLLATE NOCASE")
		args = append(args, f.Difficulty)
	}
	if f.Cuisine != "" {
		conditions = append(conditions, "cuisine = ? COLLATE NOCASE")
		args = append(args, f.Cuisine)
	}
	if f.MaxTime > 0 {
		conditions = append(conditions, "estimated_time <= ?")
		args = append(args, f.MaxTime)
	}
	if f.MinCalories > 0 {
		conditions = append(conditions, "calories >= ?")
		args = append(args, f.MinCalories)
	}
	if f.MaxCalories > 0 {
		conditions = append(conditions, "calories <= ?")
		args = append(args, f.MaxCalories)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countArgs := append([]interface{}{}, args...)
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipes"+where, countArgs...).Scan(&total); err != nil {
		return common.RecipePage{}, fmt.Errorf("failed to count filtered recipes: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM recipes%s ORDER BY title LIMIT ? OFFSET ?",
		recipeColumns, where)
	args = append(args, limit, (page-1)*limit)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return common.RecipePage{}, fmt.Errorf("failed to filter recipes: %w", err)
	}

	recipes, err := collectRecipes(rows)
	if err != nil {
		return common.RecipePage{}, err
	}

	return common.RecipePage{
		Recipes: recipes,
		Total:   total,
		Page:    page,
		Pages:   (total + limit - 1) / limit,
		Limit:   limit,
	}, nil
}

// Statistics 彙整資料庫統計
func (s *RecipeStore) Statistics(ctx context.Context) (common.Statistics, error) {
	stats := common.Statistics{
		DifficultyDistribution: map[string]int{},
		CuisineDistribution:    map[string]int{},
	}

	total, err := s.Count(ctx)
	if err != nil {
		return stats, err
	}
	stats.TotalRecipes = total
	if total == 0 {
		return stats, nil
	}

	if err := s.distribution(ctx, "difficulty", stats.DifficultyDistribution); err != nil {
		return stats, err
	}
	if err := s.distribution(ctx, "cuisine", stats.CuisineDistribution); err != nil {
		return stats, err
	}

	if err := s.db.QueryRowContext(ctx,
		"SELECT AVG(calories), MIN(calories), MAX(calories) FROM recipes",
	).Scan(&stats.CalorieStats.Avg, &stats.CalorieStats.Min, &stats.CalorieStats.Max); err != nil {
		return stats, fmt.Errorf("failed to get calorie stats: %w", err)
	}

	if err := s.db.QueryRowContext(ctx,
		"SELECT AVG(estimated_time), MIN(estimated_time), MAX(estimated_time) FROM recipes",
	).Scan(&stats.TimeStats.Avg, &stats.TimeStats.Min, &stats.TimeStats.Max); err != nil {
		return stats, fmt.Errorf("failed to get time stats: %w", err)
	}

	return stats, nil
}

// distribution 統計單一欄位的分布
func (s *RecipeStore) distribution(ctx context.Context, column string, out map[string]int) error {
	query := fmt.Sprintf("SELECT %s, COUNT(*) FROM recipes GROUP BY %s", column, column)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to get %s distribution: %w", column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var value string
		var count int
		if err := rows.Scan(&value, &count); err != nil {
			return fmt.Errorf("failed to scan %s distribution: %w", column, err)
		}
		out[value] = count
	}
	return rows.Err()
}

// Cuisines 列出所有菜系
func (s *RecipeStore) Cuisines(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "cuisine")
}

// Difficulties 列出所有難度等級
func (s *RecipeStore) Difficulties(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "difficulty")
}

// distinct 列出欄位的相異值
func (s *RecipeStore) distinct(ctx context.Context, column string) ([]string, error) {
	query := fmt.Sprintf("SELECT DISTINCT %s FROM recipes ORDER BY %s", column, column)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct %s: %w", column, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", column, err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
