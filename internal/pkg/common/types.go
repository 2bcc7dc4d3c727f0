package common

import (
	"strings"
)

// CalorieBreakdownItem 單一食材的熱量明細
type CalorieBreakdownItem struct {
	Ingredient     string  `json:"ingredient"`      // 原始輸入行（去除前後空白）
	EstimatedGrams float64 `json:"estimated_grams"` // 估算公克數，保留一位小數
	Calories       float64 `json:"calories"`        // 估算熱量，保留一位小數
}

// CalorieAnalysis 熱量分析結果
type CalorieAnalysis struct {
	TotalCalories    int                    `json:"total_calories"`
	Breakdown        []CalorieBreakdownItem `json:"breakdown"`
	ServingsEstimate int                    `json:"servings_estimate"`
}

// DifficultyAnalysis 難度分析結果
type DifficultyAnalysis struct {
	Difficulty      string   `json:"difficulty"` // Beginner / Intermediate / Advanced
	Score           int      `json:"score"`
	Description     string   `json:"description"`
	Factors         []string `json:"factors"`
	TechniquesFound []string `json:"techniques_found"` // 最多 5 項
	IngredientCount int      `json:"ingredient_count"`
	StepCount       int      `json:"step_count"`
}

// TimeAnalysis 時間預測結果
type TimeAnalysis struct {
	Category          string   `json:"category"` // Quick / Medium / Long
	TotalMinutes      int      `json:"total_minutes"`
	TimeDisplay       string   `json:"time_display"`
	Description       string   `json:"description"`
	ExplicitTimeFound bool     `json:"explicit_time_found"`
	MethodsDetected   []string `json:"methods_detected"` // 最多 3 項
}

// SuggestionSet 烹飪建議結果
type SuggestionSet struct {
	DietType            string   `json:"diet_type"`            // Vegan / Vegetarian / Non-Vegetarian
	MealType            string   `json:"meal_type"`            // Breakfast / Lunch / Dinner / Any time
	HealthyAlternatives []string `json:"healthy_alternatives"` // 最多 3 項
	SpiceSuggestions    []string `json:"spice_suggestions"`    // 最多 4 項
	ServingTips         []string `json:"serving_tips"`         // 最多 3 項
	QuickTip            string   `json:"quick_tip"`
}

// RecipeAnalysis 完整分析結果（四個分析器的組合輸出）
type RecipeAnalysis struct {
	Calories    CalorieAnalysis    `json:"calories"`
	Difficulty  DifficultyAnalysis `json:"difficulty"`
	Time        TimeAnalysis       `json:"time"`
	Suggestions SuggestionSet      `json:"suggestions"`
}

// StoredRecipe 資料庫中的食譜紀錄
// 欄位對應資料集產生器的輸出格式；分析一律以原始文字重新計算，不讀取衍生欄位
type StoredRecipe struct {
	RecipeID             string             `json:"recipe_id"`
	Title                string             `json:"title"`
	Ingredients          []string           `json:"ingredients"`
	IngredientQuantities map[string]float64 `json:"ingredient_quantities,omitempty"`
	Calories             int                `json:"calories"`
	Steps                []string           `json:"steps"`
	EstimatedTime        int                `json:"estimated_time"`
	Difficulty           string             `json:"difficulty"`
	Cuisine              string             `json:"cuisine"`
	IsVeg                bool               `json:"is_veg"`
	Tags                 []string           `json:"tags"`
	Rating               float64            `json:"rating"`
	CreatedAt            string             `json:"created_at"`
}

// RecipePage 分頁查詢結果
type RecipePage struct {
	Recipes []StoredRecipe `json:"recipes"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	Pages   int            `json:"pages"`
	Limit   int            `json:"limit"`
}

// RecipeFilter 多條件過濾
type RecipeFilter struct {
	Difficulty  string
	Cuisine     string
	MaxTime     int
	MinCalories int
	MaxCalories int
}

// RangeStats 數值欄位的統計摘要
type RangeStats struct {
	Avg float64 `json:"avg"`
	Min int     `json:"min"`
	Max int     `json:"max"`
}

// Statistics 資料庫統計
type Statistics struct {
	TotalRecipes           int            `json:"total_recipes"`
	DifficultyDistribution map[string]int `json:"difficulty_distribution"`
	CuisineDistribution    map[string]int `json:"cuisine_distribution"`
	CalorieStats           RangeStats     `json:"calorie_stats"`
	TimeStats              RangeStats     `json:"time_stats"`
}

// JoinSteps 將步驟列表組合成分析器的輸入文字
func JoinSteps(steps []string) string {
	return strings.Join(steps, "\n")
}

// CountNonBlank 計算非空白字串數量
func CountNonBlank(items []string) int {
	n := 0
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}
