package analysis

import (
	"context"
	"strings"
	"time"

	"recipe-analyzer/internal/infrastructure/cache"
	"recipe-analyzer/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 分析服務，組合五個分析元件並處理結果快取。
// 元件本身是純函式；快取只存在於這一層。
type Service struct {
	cache cache.Cache
}

// NewService 創建分析服務
func NewService(c cache.Cache) *Service {
	return &Service{cache: c}
}

// AnalyzeCalories 熱量分析
func (s *Service) AnalyzeCalories(ctx context.Context, ingredients []string) common.CalorieAnalysis {
	var result common.CalorieAnalysis
	key := cache.Key("calories", strings.Join(ingredients, "\n"))
	if s.lookup(ctx, key, &result) {
		return result
	}

	result = EstimateCalories(ingredients)
	s.store(ctx, key, result)
	return result
}

// AnalyzeDifficulty 難度分析
func (s *Service) AnalyzeDifficulty(ctx context.Context, ingredients []string, stepsText string) common.DifficultyAnalysis {
	var result common.DifficultyAnalysis
	key := cache.Key("difficulty", strings.Join(ingredients, "\n"), stepsText)
	if s.lookup(ctx, key, &result) {
		return result
	}

	result = AnalyzeDifficulty(ingredients, stepsText)
	s.store(ctx, key, result)
	return result
}

// AnalyzeTime 時間預測，步驟數由步驟文字推算
func (s *Service) AnalyzeTime(ctx context.Context, stepsText string) common.TimeAnalysis {
	var result common.TimeAnalysis
	key := cache.Key("time", stepsText)
	if s.lookup(ctx, key, &result) {
		return result
	}

	result = PredictTime(stepsText, CountSteps(stepsText))
	s.store(ctx, key, result)
	return result
}

// Suggest 烹飪建議，內部先跑難度與熱量分析取得輸入因子
func (s *Service) Suggest(ctx context.Context, ingredients []string, stepsText string) common.SuggestionSet {
	var result common.SuggestionSet
	key := cache.Key("suggestions", strings.Join(ingredients, "\n"), stepsText)
	if s.lookup(ctx, key, &result) {
		return result
	}

	calories := EstimateCalories(ingredients)
	difficulty := AnalyzeDifficulty(ingredients, stepsText)
	result = GenerateSuggestions(ingredients, stepsText, difficulty.Difficulty, calories.TotalCalories, calories.ServingsEstimate)
	s.store(ctx, key, result)
	return result
}

// AnalyzeFull 完整分析，四個分析器的組合輸出
func (s *Service) AnalyzeFull(ctx context.Context, ingredients []string, stepsText string) common.RecipeAnalysis {
	var result common.RecipeAnalysis
	key := cache.Key("full", strings.Join(ingredients, "\n"), stepsText)
	if s.lookup(ctx, key, &result) {
		return result
	}

	start := time.Now()

	calories := EstimateCalories(ingredients)
	difficulty := AnalyzeDifficulty(ingredients, stepsText)
	timing := PredictTime(stepsText, difficulty.StepCount)
	suggestions := GenerateSuggestions(ingredients, stepsText, difficulty.Difficulty, calories.TotalCalories, calories.ServingsEstimate)

	result = common.RecipeAnalysis{
		Calories:    calories,
		Difficulty:  difficulty,
		Time:        timing,
		Suggestions: suggestions,
	}

	common.LogDebug("完整分析完成",
		zap.Int("食材數", difficulty.IngredientCount),
		zap.Int("步驟數", difficulty.StepCount),
		zap.Duration("耗時", time.Since(start)),
	)

	s.store(ctx, key, result)
	return result
}

// CacheStats 回報快取統計；快取停用時回傳 nil
func (s *Service) CacheStats() map[string]interface{} {
	if s.cache == nil {
		return nil
	}
	return s.cache.Stats()
}

// lookup 查詢快取並反序列化到 v，命中回傳 true
func (s *Service) lookup(ctx context.Context, key string, v interface{}) bool {
	if s.cache == nil {
		return false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false
	}
	if err := common.ParseJSON(data, v); err != nil {
		common.LogWarn("快取內容解析失敗", zap.Error(err))
		return false
	}
	return true
}

// store 序列化結果並寫入快取，失敗只記錄不影響回應
func (s *Service) store(ctx context.Context, key string, v interface{}) {
	if s.cache == nil {
		return
	}
	data, err := common.ToJSON(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data); err != nil {
		common.LogWarn("快取寫入失敗", zap.Error(err))
	}
}
