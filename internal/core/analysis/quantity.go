package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// 數量行格式：數字 + 可選單位 + 食材名稱
// 例如 "2 cups rice"、"3 tablespoons butter"、"500g chicken"
var quantityPattern = regexp.MustCompile(`^(\d+\.?\d*)\s*([a-z]+)?\s+(.+)`)

// unitGrams 常見計量單位換算為公克（近似值）
var unitGrams = map[string]float64{
	"cup": 240, "cups": 240,
	"tablespoon": 15, "tablespoons": 15, "tbsp": 15,
	"teaspoon": 5, "teaspoons": 5, "tsp": 5,
	"ounce": 28, "ounces": 28, "oz": 28,
	"pound": 454, "pounds": 454, "lb": 454, "lbs": 454,
	"gram": 1, "grams": 1, "g": 1,
	"kilogram": 1000, "kilograms": 1000, "kg": 1000,
	"piece": 100, "pieces": 100, // 每件以 100g 計
	"clove": 3, "cloves": 3, // 蒜瓣
}

// ParseQuantity 從食材行解析出公克數與清理後的食材名稱
//
// 行首沒有數字時視為標準份量 100g，整行當作名稱。
// 有數字但沒有單位時以公克計；數字後接未知單字時以 100g/單位估算。
func ParseQuantity(ingredientLine string) (float64, string) {
	line := strings.ToLower(strings.TrimSpace(ingredientLine))

	match := quantityPattern.FindStringSubmatch(line)
	if match == nil {
		// 沒有數量，假設標準份量 100g
		return 100, line
	}

	quantity, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 100, line
	}

	measurement := match[2]
	if measurement == "" {
		measurement = "gram"
	}
	name := strings.TrimSpace(match[3])

	factor, ok := unitGrams[measurement]
	if !ok {
		factor = 100 // 未知單位，預設 100g
	}

	return quantity * factor, name
}
