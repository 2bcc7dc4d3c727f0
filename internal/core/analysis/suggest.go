package analysis

import (
	"fmt"
	"strings"

	"recipe-analyzer/internal/pkg/common"
)

// meatIngredients 肉類關鍵字，命中即判定為葷食
var meatIngredients = []string{
	"chicken", "beef", "pork", "lamb", "turkey", "duck",
	"fish", "salmon", "tuna", "shrimp", "prawn", "crab",
	"bacon", "ham", "sausage", "meat",
}

// dairyIngredients 乳蛋類關鍵字，區分蛋奶素與全素
var dairyIngredients = []string{
	"milk", "cheese", "butter", "cream", "yogurt", "ghee", "egg",
}

// alternative 高熱量食材的替代建議
type alternative struct {
	ingredient  string
	replacement string
}

// healthyAlternatives 替代建議表，依宣告順序套用
var healthyAlternatives = []alternative{
	{"butter", "olive oil or avocado"},
	{"cream", "Greek yogurt or coconut cream"},
	{"white rice", "brown rice or quinoa"},
	{"pasta", "whole wheat pasta or zucchini noodles"},
	{"sugar", "honey or maple syrup"},
	{"oil", "cooking spray or broth"},
	{"mayonnaise", "Greek yogurt or avocado"},
	{"sour cream", "Greek yogurt"},
	{"ground beef", "ground turkey or lean beef"},
	{"bacon", "turkey bacon"},
	{"cheese", "reduced-fat cheese"},
	{"bread", "whole grain bread"},
}

// spicePairing 主食材對應的香料建議
type spicePairing struct {
	ingredient string
	spices     []string
}

// spicePairings 香料搭配表，依宣告順序聯集
var spicePairings = []spicePairing{
	{"chicken", []string{"paprika", "thyme", "rosemary", "garlic powder"}},
	{"beef", []string{"black pepper", "garlic", "rosemary", "oregano"}},
	{"fish", []string{"lemon", "dill", "parsley", "caper"}},
	{"pasta", []string{"basil", "oregano", "garlic", "parmesan"}},
	{"rice", []string{"cumin", "turmeric", "bay leaf", "cardamom"}},
	{"vegetables", []string{"garlic", "onion", "herbs", "chili flakes"}},
	{"soup", []string{"bay leaf", "thyme", "black pepper", "parsley"}},
}

// defaultSpices 沒有命中任何主食材時的預設香料
var defaultSpices = []string{"salt", "black pepper", "garlic", "herbs"}

// DetectDietType 判定食譜為葷食、蛋奶素或全素
//
// 先檢查肉類再檢查乳蛋類，順序不可對調。
func DetectDietType(ingredients []string) string {
	joined := strings.ToLower(strings.Join(ingredients, " "))

	for _, meat := range meatIngredients {
		if strings.Contains(joined, meat) {
			return "Non-Vegetarian"
		}
	}
	for _, dairy := range dairyIngredients {
		if strings.Contains(joined, dairy) {
			return "Vegetarian"
		}
	}
	return "Vegan"
}

// HealthyAlternatives 為高熱量食材建議較健康的替代品，最多三項
func HealthyAlternatives(ingredients []string) []string {
	joined := strings.ToLower(strings.Join(ingredients, " "))
	alternatives := []string{}

	for _, a := range healthyAlternatives {
		if strings.Contains(joined, a.ingredient) {
			alternatives = append(alternatives, fmt.Sprintf("Replace %s with %s", a.ingredient, a.replacement))
		}
	}

	if len(alternatives) > 3 {
		alternatives = alternatives[:3]
	}
	return alternatives
}

// SuggestSpices 依主食材建議搭配的香料，最多四項
func SuggestSpices(ingredients []string) []string {
	joined := strings.ToLower(strings.Join(ingredients, " "))
	seen := map[string]bool{}
	suggested := []string{}

	for _, p := range spicePairings {
		if strings.Contains(joined, p.ingredient) {
			for _, spice := range p.spices {
				if !seen[spice] {
					seen[spice] = true
					suggested = append(suggested, spice)
				}
			}
		}
	}

	if len(suggested) == 0 {
		suggested = append(suggested, defaultSpices...)
	}
	if len(suggested) > 4 {
		suggested = suggested[:4]
	}
	return suggested
}

// ServingTips 產生上菜與擺盤建議，最多三項
func ServingTips(difficulty string, totalCalories, servings int) []string {
	tips := []string{}

	switch difficulty {
	case "Beginner":
		tips = append(tips, "Great recipe to start your cooking journey!")
	case "Advanced":
		tips = append(tips, "Take your time and follow each step carefully")
	}

	caloriesPerServing := float64(totalCalories)
	if servings > 0 {
		caloriesPerServing = float64(totalCalories) / float64(servings)
	}
	if caloriesPerServing > 600 {
		tips = append(tips, "This is a hearty meal - consider serving smaller portions")
	} else if caloriesPerServing < 300 {
		tips = append(tips, "Light meal - perfect for lunch or as a side dish")
	}

	tips = append(tips,
		"Taste and adjust seasoning before serving",
		"Prepare ingredients (mise en place) before cooking",
		"Let the dish rest for a few minutes before serving",
	)

	if len(tips) > 3 {
		tips = tips[:3]
	}
	return tips
}

// MealType 依食材推測適合的餐別
func MealType(ingredients []string) string {
	joined := strings.ToLower(strings.Join(ingredients, " "))

	containsAny := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(joined, w) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny("egg", "pancake", "cereal", "toast"):
		return "Breakfast"
	case containsAny("salad", "sandwich", "soup"):
		return "Lunch"
	case containsAny("steak", "roast", "casserole"):
		return "Dinner"
	default:
		return "Any time"
	}
}

// GenerateSuggestions 彙整所有建議
func GenerateSuggestions(ingredients []string, stepsText, difficulty string, totalCalories, servings int) common.SuggestionSet {
	dietType := DetectDietType(ingredients)
	alternatives := HealthyAlternatives(ingredients)
	if len(alternatives) == 0 {
		alternatives = []string{"Recipe looks healthy!"}
	}
	mealType := MealType(ingredients)

	return common.SuggestionSet{
		DietType:            dietType,
		MealType:            mealType,
		HealthyAlternatives: alternatives,
		SpiceSuggestions:    SuggestSpices(ingredients),
		ServingTips:         ServingTips(difficulty, totalCalories, servings),
		QuickTip:            fmt.Sprintf("This is a %s %s recipe", strings.ToLower(dietType), strings.ToLower(mealType)),
	}
}
