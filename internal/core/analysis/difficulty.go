package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"recipe-analyzer/internal/pkg/common"
)

// complexTechniques 高難度技法關鍵字（每項 +3 分）
var complexTechniques = []string{
	"fold", "temper", "caramelize", "julienne", "deglaze", "braise",
	"sous vide", "emulsify", "flambe", "reduce", "blanch", "poach",
	"sear", "sauté", "roast", "confit", "marinate overnight",
	"knead", "proof", "ferment", "clarify", "strain", "rest dough",
}

// moderateTechniques 中等技法關鍵字（每項 +1 分）
var moderateTechniques = []string{
	"simmer", "whisk", "brown", "season", "coat", "toss",
	"marinate", "chill", "grill", "bake", "steam", "drain",
}

// numberedStepPattern 編號步驟標記，如 "1. " 或 "2) "
var numberedStepPattern = regexp.MustCompile(`\d+[.)]\s+`)

// CountSteps 計算步驟數
//
// 取非空白行數與編號標記數兩者的較大值。
func CountSteps(stepsText string) int {
	if stepsText == "" {
		return 0
	}

	lines := 0
	for _, line := range strings.Split(stepsText, "\n") {
		if strings.TrimSpace(line) != "" {
			lines++
		}
	}

	numbered := len(numberedStepPattern.FindAllString(stepsText, -1))

	if numbered > lines {
		return numbered
	}
	return lines
}

// AnalyzeComplexity 分析步驟文字中的烹飪技法複雜度
//
// 回傳複雜度分數與依宣告順序去重後的技法列表。
func AnalyzeComplexity(stepsText string) (int, []string) {
	if stepsText == "" {
		return 0, []string{}
	}

	stepsLower := strings.ToLower(stepsText)
	score := 0
	seen := map[string]bool{}
	techniques := []string{}

	for _, technique := range complexTechniques {
		if strings.Contains(stepsLower, technique) {
			score += 3
			if !seen[technique] {
				seen[technique] = true
				techniques = append(techniques, technique)
			}
		}
	}

	for _, technique := range moderateTechniques {
		if strings.Contains(stepsLower, technique) {
			score += 1
			if !seen[technique] {
				seen[technique] = true
				techniques = append(techniques, technique)
			}
		}
	}

	return score, techniques
}

// AnalyzeDifficulty 綜合食材數、步驟數與技法複雜度判定難度
func AnalyzeDifficulty(ingredients []string, stepsText string) common.DifficultyAnalysis {
	// 因素一：食材數量
	ingredientCount := common.CountNonBlank(ingredients)
	ingredientScore := 3
	if ingredientCount <= 5 {
		ingredientScore = 1
	} else if ingredientCount <= 10 {
		ingredientScore = 2
	}

	// 因素二：步驟數量
	stepCount := CountSteps(stepsText)
	stepScore := 3
	if stepCount <= 3 {
		stepScore = 1
	} else if stepCount <= 6 {
		stepScore = 2
	}

	// 因素三：技法複雜度，正規化到 0-3
	complexityScore, techniques := AnalyzeComplexity(stepsText)
	techniqueScore := complexityScore / 2
	if techniqueScore > 3 {
		techniqueScore = 3
	}

	totalScore := ingredientScore + stepScore + techniqueScore

	var difficulty, description string
	switch {
	case totalScore <= 4:
		difficulty = "Beginner"
		description = "Simple recipe perfect for cooking beginners"
	case totalScore <= 7:
		difficulty = "Intermediate"
		description = "Moderate difficulty, some cooking experience helpful"
	default:
		difficulty = "Advanced"
		description = "Complex recipe requiring culinary skills and patience"
	}

	factors := []string{
		fmt.Sprintf("%d ingredients", ingredientCount),
		fmt.Sprintf("%d steps", stepCount),
	}
	if len(techniques) > 0 {
		factors = append(factors, fmt.Sprintf("requires %d cooking technique(s)", len(techniques)))
	}

	top := techniques
	if len(top) > 5 {
		top = top[:5]
	}

	return common.DifficultyAnalysis{
		Difficulty:      difficulty,
		Score:           totalScore,
		Description:     description,
		Factors:         factors,
		TechniquesFound: top,
		IngredientCount: ingredientCount,
		StepCount:       stepCount,
	}
}
