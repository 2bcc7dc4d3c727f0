package analysis

import (
	"reflect"
	"testing"
)

func TestDetectDietType(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []string
		want        string
	}{
		{"meat", []string{"chicken", "rice"}, "Non-Vegetarian"},
		{"dairy", []string{"milk", "rice"}, "Vegetarian"},
		{"plant only", []string{"rice", "beans"}, "Vegan"},
		{"egg counts as vegetarian", []string{"egg", "flour"}, "Vegetarian"},
		{"meat wins over dairy", []string{"chicken", "cream"}, "Non-Vegetarian"},
		{"empty", nil, "Vegan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDietType(tt.ingredients); got != tt.want {
				t.Errorf("DetectDietType(%v) = %q, want %q", tt.ingredients, got, tt.want)
			}
		})
	}
}

func TestHealthyAlternatives(t *testing.T) {
	got := HealthyAlternatives([]string{"2 tbsp butter", "1 cup cream", "white rice", "sugar"})

	want := []string{
		"Replace butter with olive oil or avocado",
		"Replace cream with Greek yogurt or coconut cream",
		"Replace white rice with brown rice or quinoa",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HealthyAlternatives = %v, want %v", got, want)
	}
}

func TestHealthyAlternativesNoneFound(t *testing.T) {
	got := HealthyAlternatives([]string{"spinach", "carrots"})
	if len(got) != 0 {
		t.Errorf("HealthyAlternatives = %v, want empty", got)
	}
}

func TestSuggestSpices(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []string
		want        []string
	}{
		{
			name:        "chicken",
			ingredients: []string{"500g chicken"},
			want:        []string{"paprika", "thyme", "rosemary", "garlic powder"},
		},
		{
			name:        "default",
			ingredients: []string{"water"},
			want:        []string{"salt", "black pepper", "garlic", "herbs"},
		},
		{
			name:        "union capped at four",
			ingredients: []string{"chicken", "rice"},
			want:        []string{"paprika", "thyme", "rosemary", "garlic powder"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestSpices(tt.ingredients)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SuggestSpices(%v) = %v, want %v", tt.ingredients, got, tt.want)
			}
		})
	}
}

func TestServingTips(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		calories   int
		servings   int
		wantFirst  string
	}{
		{"beginner tip first", "Beginner", 400, 1, "Great recipe to start your cooking journey!"},
		{"advanced tip first", "Advanced", 400, 1, "Take your time and follow each step carefully"},
		{"hearty meal", "Intermediate", 1400, 2, "This is a hearty meal - consider serving smaller portions"},
		{"light meal", "Intermediate", 500, 2, "Light meal - perfect for lunch or as a side dish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ServingTips(tt.difficulty, tt.calories, tt.servings)
			if len(got) != 3 {
				t.Fatalf("ServingTips returned %d tips, want 3", len(got))
			}
			if got[0] != tt.wantFirst {
				t.Errorf("first tip = %q, want %q", got[0], tt.wantFirst)
			}
		})
	}
}

func TestMealType(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []string
		want        string
	}{
		{"breakfast", []string{"2 eggs", "toast"}, "Breakfast"},
		{"lunch", []string{"chicken soup"}, "Lunch"},
		{"dinner", []string{"steak", "potatoes"}, "Dinner"},
		{"any time", []string{"rice", "beans"}, "Any time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MealType(tt.ingredients); got != tt.want {
				t.Errorf("MealType(%v) = %q, want %q", tt.ingredients, got, tt.want)
			}
		})
	}
}

func TestGenerateSuggestions(t *testing.T) {
	got := GenerateSuggestions([]string{"chicken", "rice"}, "Cook it.", "Beginner", 900, 3)

	if got.DietType != "Non-Vegetarian" {
		t.Errorf("DietType = %q", got.DietType)
	}
	if got.MealType != "Any time" {
		t.Errorf("MealType = %q", got.MealType)
	}
	if len(got.HealthyAlternatives) != 1 || got.HealthyAlternatives[0] != "Recipe looks healthy!" {
		t.Errorf("HealthyAlternatives = %v", got.HealthyAlternatives)
	}
	if got.QuickTip != "This is a non-vegetarian any time recipe" {
		t.Errorf("QuickTip = %q", got.QuickTip)
	}
}

func TestAnalysisIdempotence(t *testing.T) {
	ingredients := []string{"2 cups rice", "500g chicken", "1 onion"}
	steps := "1. Simmer the rice.\n2. Grill the chicken for 20 minutes.\n3. Serve."

	first := GenerateSuggestions(ingredients, steps, "Beginner", 1500, 1)
	second := GenerateSuggestions(ingredients, steps, "Beginner", 1500, 1)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("GenerateSuggestions not idempotent: %v vs %v", first, second)
	}

	c1 := EstimateCalories(ingredients)
	c2 := EstimateCalories(ingredients)
	if !reflect.DeepEqual(c1, c2) {
		t.Errorf("EstimateCalories not idempotent")
	}

	d1 := AnalyzeDifficulty(ingredients, steps)
	d2 := AnalyzeDifficulty(ingredients, steps)
	if !reflect.DeepEqual(d1, d2) {
		t.Errorf("AnalyzeDifficulty not idempotent")
	}

	t1 := PredictTime(steps, d1.StepCount)
	t2 := PredictTime(steps, d2.StepCount)
	if !reflect.DeepEqual(t1, t2) {
		t.Errorf("PredictTime not idempotent")
	}
}
