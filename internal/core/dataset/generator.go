// Package dataset 產生與匯入合成的印度食譜資料集。
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"recipe-analyzer/internal/pkg/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// weightedItem 加權選項
type weightedItem struct {
	name   string
	weight float64
}

// cuisineWeights 菜系出現機率
var cuisineWeights = []weightedItem{
	{"North Indian", 0.25},
	{"South Indian", 0.20},
	{"Punjabi", 0.15},
	{"Bengali", 0.10},
	{"Gujarati", 0.10},
	{"Maharashtrian", 0.08},
	{"Rajasthani", 0.05},
	{"Hyderabadi", 0.04},
	{"Goan", 0.03},
}

// difficultyWeights 難度出現機率
var difficultyWeights = []weightedItem{
	{"Beginner", 0.40},
	{"Intermediate", 0.45},
	{"Advanced", 0.15},
}

// ingredientKcal 印度食材熱量表（每 100g）
var ingredientKcal = map[string]float64{
	// 蛋白質
	"paneer": 265, "chicken": 165, "mutton": 294, "fish": 96,
	"eggs": 155, "prawns": 99, "dal": 116, "chickpeas": 164,
	"kidney beans": 127, "black lentils": 116, "green moong dal": 105,
	"toor dal": 335, "chana dal": 357, "masoor dal": 116,

	// 乳製品
	"milk": 42, "yogurt": 59, "ghee": 900, "butter": 717,
	"cream": 340, "khoya": 400, "curd": 60, "buttermilk": 40,

	// 穀物與澱粉
	"rice": 130, "basmati rice": 130, "wheat flour": 340, "roti": 260,
	"naan": 260, "paratha": 290, "puri": 325, "dosa": 112,
	"idli": 65, "upma": 85, "poha": 130, "semolina": 360,

	// 蔬菜
	"potatoes": 77, "tomatoes": 18, "onions": 40, "garlic": 149,
	"ginger": 80, "green chillies": 40, "cauliflower": 25,
	"peas": 81, "carrots": 41, "beans": 31, "cabbage": 25,
	"spinach": 23, "fenugreek leaves": 49, "bottle gourd": 14,
	"bitter gourd": 17, "brinjal": 25, "okra": 33, "capsicum": 31,
	"drumsticks": 26, "ridge gourd": 20, "pumpkin": 26,

	// 香料
	"turmeric": 0, "red chilli powder": 0, "coriander powder": 0,
	"cumin seeds": 0, "mustard seeds": 0, "fenugreek seeds": 0,
	"garam masala": 0, "curry leaves": 0, "bay leaves": 0,
	"cardamom": 0, "cinnamon": 0, "cloves": 0, "black pepper": 0,
	"asafoetida": 0, "carom seeds": 0, "fennel seeds": 0,
	"coriander leaves": 23, "mint leaves": 44, "kasuri methi": 0,

	// 油脂
	"mustard oil": 884, "coconut oil": 862, "sunflower oil": 884,
	"sesame oil": 884, "groundnut oil": 884,

	// 豆類
	"rajma": 127, "kabuli chana": 164, "black chana": 164,
	"green gram": 105, "horse gram": 321,

	// 堅果與種子
	"cashews": 553, "almonds": 579, "peanuts": 567,
	"sesame seeds": 573, "poppy seeds": 525, "coconut": 354,

	// 調味與其他
	"tamarind": 239, "jaggery": 383, "sugar": 387, "salt": 0,
	"lemon juice": 22, "coconut milk": 230, "tomato puree": 38,
	"ginger-garlic paste": 100, "green chutney": 50, "pickle": 60,

	// 特殊材料
	"besan": 387, "cornflour": 381, "rice flour": 366,
	"vermicelli": 348, "sago": 358, "dry fruits": 500,
}

// ingredientNames ingredientKcal 的鍵，啟動時排序一次以便確定性抽樣
var ingredientNames = func() []string {
	names := make([]string, 0, len(ingredientKcal))
	for name := range ingredientKcal {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

var vegetarianIngredients = []string{
	"paneer", "dal", "chickpeas", "kidney beans", "black lentils",
	"green moong dal", "toor dal", "chana dal", "masoor dal",
	"milk", "yogurt", "ghee", "curd", "khoya",
	"rice", "basmati rice", "wheat flour", "roti", "besan",
	"potatoes", "tomatoes", "onions", "cauliflower", "peas",
	"spinach", "fenugreek leaves", "brinjal", "okra", "capsicum",
	"cashews", "almonds", "coconut", "tamarind", "jaggery",
}

var nonVegIngredients = []string{
	"chicken", "mutton", "fish", "prawns", "eggs",
}

var vegDishes = []string{
	"Paneer Butter Masala", "Dal Makhani", "Chole Masala", "Palak Paneer",
	"Aloo Gobi", "Baingan Bharta", "Bhindi Masala", "Malai Kofta",
	"Vegetable Biryani", "Veg Pulao", "Jeera Rice", "Lemon Rice",
	"Sambar", "Rasam", "Dosa", "Idli", "Vada", "Uttapam",
	"Poha", "Upma", "Pav Bhaji", "Misal Pav", "Vada Pav",
	"Dhokla", "Khandvi", "Thepla", "Paratha", "Aloo Paratha",
	"Rajma Masala", "Kadhi Pakora", "Dal Tadka", "Chana Masala",
	"Mixed Veg Curry", "Paneer Tikka", "Veg Korma", "Navratan Korma",
}

var nonVegDishes = []string{
	"Butter Chicken", "Chicken Tikka Masala", "Tandoori Chicken",
	"Chicken Biryani", "Mutton Rogan Josh", "Keema Curry",
	"Fish Curry", "Prawn Curry", "Egg Curry", "Chicken Korma",
	"Mutton Biryani", "Chicken Kadai", "Fish Fry", "Chicken 65",
	"Mutton Curry", "Chicken Chettinad", "Goan Fish Curry",
	"Hyderabadi Mutton", "Bengali Fish Curry", "Egg Biryani",
}

var titleAdjectives = []string{
	"Authentic", "Traditional", "Homestyle", "Restaurant Style",
	"Classic", "Delicious", "Easy", "Quick", "Spicy", "Creamy",
	"Dhaba Style", "Punjabi", "Mumbai Style", "South Indian",
	"North Indian", "Bengali Style", "Hyderabadi",
}

var tagsPool = []string{
	"spicy", "mild", "tangy", "sweet", "savory", "healthy", "comfort food",
	"quick meal", "meal prep", "protein-rich", "low-calorie", "high-fiber",
	"gluten-free", "vegan", "vegetarian", "non-vegetarian", "breakfast",
	"lunch", "dinner", "snack", "appetizer", "main course", "side dish",
	"curry", "dal", "rice dish", "bread", "street food", "festive",
	"traditional", "authentic", "home-style", "restaurant-style",
	"one-pot", "pressure cooker", "grilled", "fried", "steamed", "baked",
}

// 香料、油脂等食材類別，決定抽樣的克數範圍
var (
	spiceClass = map[string]bool{
		"turmeric": true, "red chilli powder": true, "coriander powder": true,
		"garam masala": true, "cumin seeds": true, "mustard seeds": true,
		"asafoetida": true,
	}
	oilClass = map[string]bool{
		"ghee": true, "mustard oil": true, "coconut oil": true, "sunflower oil": true,
	}
	proteinClass = map[string]bool{
		"paneer": true, "chicken": true, "mutton": true, "fish": true, "prawns": true,
	}
	legumeClass = map[string]bool{
		"chickpeas": true, "kidney beans": true, "rajma": true,
	}
	grainClass = map[string]bool{
		"rice": true, "basmati rice": true, "wheat flour": true,
	}
	mainVegClass = map[string]bool{
		"potatoes": true, "tomatoes": true, "onions": true,
		"cauliflower": true, "spinach": true,
	}
	herbClass = map[string]bool{
		"coriander leaves": true, "mint leaves": true, "curry leaves": true,
	}
)

// Generator 合成食譜產生器
type Generator struct {
	rng *rand.Rand
}

// NewGenerator 建立產生器；seed 為 0 時以目前時間為種子
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// weightedChoice 依權重抽一個選項
func (g *Generator) weightedChoice(items []weightedItem) string {
	total := 0.0
	for _, it := range items {
		total += it.weight
	}
	r := g.rng.Float64() * total
	for _, it := range items {
		r -= it.weight
		if r < 0 {
			return it.name
		}
	}
	return items[len(items)-1].name
}

// sample 不重複抽 n 個元素
func (g *Generator) sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	perm := g.rng.Perm(len(pool))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = pool[perm[i]]
	}
	return out
}

// uniform 在 [min, max) 間抽一個值並取一位小數
func (g *Generator) uniform(min, max float64) float64 {
	return math.Round((min+g.rng.Float64()*(max-min))*10) / 10
}

// triangular 三角分布抽樣，評分偏向高分
func (g *Generator) triangular(low, high, mode float64) float64 {
	u := g.rng.Float64()
	f := (mode - low) / (high - low)
	if u < f {
		return low + math.Sqrt(u*(high-low)*(mode-low))
	}
	return high - math.Sqrt((1-u)*(high-low)*(high-mode))
}

// title 產生食譜標題
func (g *Generator) title(cuisine string, isVeg bool) string {
	dishes := nonVegDishes
	if isVeg {
		dishes = vegDishes
	}
	dish := dishes[g.rng.Intn(len(dishes))]

	if g.rng.Float64() < 0.6 {
		return titleAdjectives[g.rng.Intn(len(titleAdjectives))] + " " + dish
	}
	return cuisine + " " + dish
}

// selectIngredients 依素食偏好抽選食材
func (g *Generator) selectIngredients(isVeg bool, count int) []string {
	available := append([]string{}, vegetarianIngredients...)
	if !isVeg {
		available = append(available, nonVegIngredients...)
	}
	available = append(available, g.sample(ingredientNames, 30)...)

	// 去重
	seen := map[string]bool{}
	unique := []string{}
	for _, name := range available {
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}

	return g.sample(unique, count)
}

// quantities 依食材類別產生合理的克數
func (g *Generator) quantities(ingredients []string) map[string]float64 {
	out := make(map[string]float64, len(ingredients))
	for _, ing := range ingredients {
		switch {
		case spiceClass[ing]:
			out[ing] = g.uniform(1, 10)
		case oilClass[ing]:
			out[ing] = g.uniform(15, 40)
		case proteinClass[ing]:
			out[ing] = g.uniform(250, 500)
		case strings.Contains(ing, "dal") || legumeClass[ing]:
			out[ing] = g.uniform(150, 300)
		case grainClass[ing]:
			out[ing] = g.uniform(200, 400)
		case mainVegClass[ing]:
			out[ing] = g.uniform(100, 250)
		case herbClass[ing]:
			out[ing] = g.uniform(10, 30)
		default:
			out[ing] = g.uniform(30, 150)
		}
	}
	return out
}

// totalCalories 依食材與克數加總熱量
func totalCalories(quantities map[string]float64) int {
	total := 0.0
	for ing, grams := range quantities {
		if kcal, ok := ingredientKcal[ing]; ok {
			total += kcal * grams / 100
		}
	}
	return int(total)
}

// steps 產生烹飪步驟
func (g *Generator) steps(numSteps int, ingredients []string) []string {
	vessels := []string{"kadhai", "pan", "pressure cooker"}
	fats := []string{"ghee", "oil"}
	sides := []string{"roti", "naan", "rice", "paratha"}

	templates := func() string {
		switch g.rng.Intn(12) {
		case 0:
			return fmt.Sprintf("Heat %s in a %s.", fats[g.rng.Intn(len(fats))], vessels[g.rng.Intn(len(vessels))])
		case 1:
			return "Add cumin seeds and let them splutter."
		case 2:
			return "Add finely chopped onions and sauté until golden brown."
		case 3:
			return "Add ginger-garlic paste and cook for 1-2 minutes."
		case 4:
			return "Add chopped tomatoes and cook until they turn mushy."
		case 5:
			return "Add turmeric, red chilli powder, and coriander powder. Mix well."
		case 6:
			return fmt.Sprintf("Add %s and cook for %d minutes.",
				ingredients[g.rng.Intn(len(ingredients))], 5+g.rng.Intn(11))
		case 7:
			return "Add salt to taste and mix thoroughly."
		case 8:
			return fmt.Sprintf("Simmer on low heat for %d minutes.", 10+g.rng.Intn(11))
		case 9:
			return "Garnish with fresh coriander leaves and serve hot."
		case 10:
			return "Add garam masala and give it a final stir."
		default:
			return fmt.Sprintf("Serve hot with %s.", sides[g.rng.Intn(len(sides))])
		}
	}

	out := make([]string, 0, numSteps)
	for i := 0; i < numSteps; i++ {
		switch i {
		case 0:
			out = append(out, "Wash and prepare all ingredients. Chop vegetables as needed.")
		case numSteps - 1:
			out = append(out, "Garnish with fresh coriander leaves and serve hot with roti or rice.")
		default:
			out = append(out, templates())
		}
	}
	return out
}

// cookingTime 依難度與步驟數估算耗時，上限 150 分鐘
func (g *Generator) cookingTime(difficulty string, numSteps int) int {
	var base int
	switch difficulty {
	case "Beginner":
		base = 20 + g.rng.Intn(16)
	case "Intermediate":
		base = 35 + g.rng.Intn(26)
	default:
		base = 60 + g.rng.Intn(31)
	}

	total := base + numSteps*(3+g.rng.Intn(4))
	if total > 150 {
		total = 150
	}
	return total
}

// tags 產生標籤，最多七個
func (g *Generator) tags(isVeg bool, difficulty string) []string {
	tags := []string{}
	if isVeg {
		tags = append(tags, "vegetarian")
	} else {
		tags = append(tags, "non-vegetarian")
	}
	tags = append(tags, "indian")

	switch difficulty {
	case "Beginner":
		tags = append(tags, "easy", "quick meal")
	case "Advanced":
		tags = append(tags, "traditional")
	}

	chosen := map[string]bool{}
	for _, t := range tags {
		chosen[t] = true
	}
	available := []string{}
	for _, t := range tagsPool {
		if !chosen[t] {
			available = append(available, t)
		}
	}
	tags = append(tags, g.sample(available, 2+g.rng.Intn(3))...)

	if len(tags) > 7 {
		tags = tags[:7]
	}
	return tags
}

// randomDate 在 2020 年至今之間抽一個時間戳
func (g *Generator) randomDate() string {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	days := int(time.Since(start).Hours() / 24)
	d := start.AddDate(0, 0, g.rng.Intn(days+1)).
		Add(time.Duration(g.rng.Intn(86400)) * time.Second)
	return d.Format(time.RFC3339)
}

// Recipe 產生一筆合成食譜
func (g *Generator) Recipe() common.StoredRecipe {
	// 八成素食
	isVeg := g.rng.Float64() < 0.80

	cuisine := g.weightedChoice(cuisineWeights)
	difficulty := g.weightedChoice(difficultyWeights)

	numIngredients := 6 + g.rng.Intn(13)
	ingredients := g.selectIngredients(isVeg, numIngredients)
	quantities := g.quantities(ingredients)

	numSteps := 4 + g.rng.Intn(9)
	steps := g.steps(numSteps, ingredients)

	return common.StoredRecipe{
		RecipeID:             uuid.New().String(),
		Title:                g.title(cuisine, isVeg),
		Ingredients:          ingredients,
		IngredientQuantities: quantities,
		Calories:             totalCalories(quantities),
		Steps:                steps,
		EstimatedTime:        g.cookingTime(difficulty, numSteps),
		Difficulty:           difficulty,
		Cuisine:              cuisine,
		IsVeg:                isVeg,
		Tags:                 g.tags(isVeg, difficulty),
		Rating:               math.Round(g.triangular(3.5, 5.0, 4.5)*10) / 10,
		CreatedAt:            g.randomDate(),
	}
}

// WriteFiles 分批產生食譜並寫出 JSON-Lines 與 CSV 兩種格式
func (g *Generator) WriteFiles(dir string, total, batchSize int) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	jsonPath := filepath.Join(dir, "recipes.jsonl")
	csvPath := filepath.Join(dir, "recipes.csv")

	jsonFile, err := os.Create(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to create json file: %w", err)
	}
	defer jsonFile.Close()

	csvFile, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer csvFile.Close()

	csvWriter := csv.NewWriter(csvFile)
	if err := csvWriter.Write([]string{
		"recipe_id", "title", "ingredients", "ingredient_quantities",
		"calories", "steps", "estimated_time", "difficulty",
		"cuisine", "is_veg", "tags", "rating", "created_at",
	}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	enc := json.NewEncoder(jsonFile)
	batches := (total + batchSize - 1) / batchSize

	for batch := 0; batch < batches; batch++ {
		count := batchSize
		if remaining := total - batch*batchSize; remaining < count {
			count = remaining
		}

		for i := 0; i < count; i++ {
			r := g.Recipe()
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("failed to encode recipe: %w", err)
			}

			quantities, err := json.Marshal(r.IngredientQuantities)
			if err != nil {
				return fmt.Errorf("failed to marshal quantities: %w", err)
			}
			if err := csvWriter.Write([]string{
				r.RecipeID, r.Title,
				strings.Join(r.Ingredients, "|"), string(quantities),
				fmt.Sprintf("%d", r.Calories), strings.Join(r.Steps, "|"),
				fmt.Sprintf("%d", r.EstimatedTime), r.Difficulty,
				r.Cuisine, fmt.Sprintf("%t", r.IsVeg),
				strings.Join(r.Tags, "|"), fmt.Sprintf("%.1f", r.Rating),
				r.CreatedAt,
			}); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}

		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			return fmt.Errorf("failed to flush csv: %w", err)
		}

		common.LogInfo("資料集批次完成",
			zap.Int("批次", batch+1),
			zap.Int("總批次", batches),
			zap.Int("筆數", count),
		)
	}

	common.LogInfo("資料集產生完成",
		zap.Int("總筆數", total),
		zap.String("JSON", jsonPath),
		zap.String("CSV", csvPath),
	)
	return nil
}
