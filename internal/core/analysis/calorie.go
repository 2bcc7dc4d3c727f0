package analysis

import (
	"math"
	"strings"

	"recipe-analyzer/internal/pkg/common"
)

// calorieEntry 食材熱量表項目（每 100g 的大卡）
type calorieEntry struct {
	name string
	kcal float64
}

// calorieTable 食材熱量表。
// 以切片而非 map 保存：部分比對採宣告順序的先到先贏，結果必須是確定性的。
var calorieTable = []calorieEntry{
	// 蛋白質
	{"chicken", 165}, {"chicken breast", 165}, {"chicken thigh", 209},
	{"beef", 250}, {"ground beef", 250}, {"steak", 271},
	{"pork", 242}, {"bacon", 541}, {"ham", 145},
	{"fish", 206}, {"salmon", 208}, {"tuna", 132}, {"shrimp", 99},
	{"egg", 155}, {"eggs", 155}, {"tofu", 76},

	// 乳製品
	{"milk", 42}, {"cream", 340}, {"heavy cream", 340}, {"cheese", 402},
	{"cheddar", 403}, {"mozzarella", 280}, {"parmesan", 431},
	{"butter", 717}, {"yogurt", 59}, {"greek yogurt", 59},

	// 穀物與澱粉
	{"rice", 130}, {"white rice", 130}, {"brown rice", 111},
	{"pasta", 131}, {"spaghetti", 131}, {"noodles", 138},
	{"bread", 265}, {"flour", 364}, {"wheat flour", 364},
	{"oats", 389}, {"quinoa", 120}, {"couscous", 112},

	// 蔬菜
	{"potato", 77}, {"potatoes", 77}, {"sweet potato", 86},
	{"tomato", 18}, {"tomatoes", 18}, {"onion", 40}, {"onions", 40},
	{"garlic", 149}, {"carrot", 41}, {"carrots", 41},
	{"broccoli", 34}, {"spinach", 23}, {"lettuce", 15},
	{"bell pepper", 31}, {"mushroom", 22}, {"mushrooms", 22},
	{"cucumber", 15}, {"zucchini", 17}, {"eggplant", 25},
	{"cauliflower", 25}, {"cabbage", 25}, {"kale", 49},

	// 水果
	{"apple", 52}, {"banana", 89}, {"orange", 47},
	{"strawberry", 32}, {"blueberry", 57}, {"mango", 60},
	{"avocado", 160}, {"lemon", 29}, {"lime", 30},

	// 油脂
	{"oil", 884}, {"olive oil", 884}, {"vegetable oil", 884},
	{"coconut oil", 862}, {"ghee", 900},

	// 堅果與種子
	{"almond", 579}, {"almonds", 579}, {"peanut", 567},
	{"cashew", 553}, {"walnut", 654}, {"sesame", 573},

	// 調味料與香料
	{"salt", 0}, {"pepper", 251}, {"sugar", 387},
	{"honey", 304}, {"soy sauce", 53}, {"vinegar", 18},
	{"ketchup", 112}, {"mayonnaise", 680}, {"mustard", 66},

	// 豆類
	{"beans", 127}, {"black beans", 132}, {"kidney beans", 127},
	{"lentils", 116}, {"chickpeas", 164}, {"peas", 81},

	// 常見基底
	{"water", 0}, {"stock", 10}, {"broth", 10},
	{"wine", 85}, {"beer", 43}, {"coconut milk", 230},
}

// calorieExact 精確比對用的索引，鍵與 calorieTable 相同
var calorieExact = func() map[string]float64 {
	m := make(map[string]float64, len(calorieTable))
	for _, e := range calorieTable {
		m[e.name] = e.kcal
	}
	return m
}()

// unknownIngredientKcal 查無食材時的預設值（常見食材的平均）
const unknownIngredientKcal = 150

// FindCalories 查詢食材每 100g 的熱量
//
// 先做精確比對，再依宣告順序做雙向子字串比對；都沒有命中時回傳預設值。
func FindCalories(ingredientName string) float64 {
	name := strings.ToLower(ingredientName)

	if kcal, ok := calorieExact[name]; ok {
		return kcal
	}

	for _, e := range calorieTable {
		if strings.Contains(name, e.name) || strings.Contains(e.name, name) {
			return e.kcal
		}
	}

	return unknownIngredientKcal
}

// EstimateCalories 估算整份食材列表的總熱量
//
// 空白行略過不計，但份量估算以原始列表長度為準。
func EstimateCalories(ingredients []string) common.CalorieAnalysis {
	totalCalories := 0.0
	breakdown := []common.CalorieBreakdownItem{}

	for _, ingredient := range ingredients {
		if strings.TrimSpace(ingredient) == "" {
			continue
		}

		grams, name := ParseQuantity(ingredient)
		kcalPer100 := FindCalories(name)
		calories := kcalPer100 * grams / 100
		totalCalories += calories

		breakdown = append(breakdown, common.CalorieBreakdownItem{
			Ingredient:     strings.TrimSpace(ingredient),
			EstimatedGrams: roundTo1(grams),
			Calories:       roundTo1(calories),
		})
	}

	servings := len(ingredients) / 3
	if servings < 1 {
		servings = 1
	}

	return common.CalorieAnalysis{
		TotalCalories:    int(math.Round(totalCalories)),
		Breakdown:        breakdown,
		ServingsEstimate: servings,
	}
}

// roundTo1 四捨五入到一位小數
func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
