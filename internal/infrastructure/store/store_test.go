package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"recipe-analyzer/internal/pkg/common"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func newTestStore(t *testing.T) *RecipeStore {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "recipes.db"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRecipes() []common.StoredRecipe {
	return []common.StoredRecipe{
		{
			RecipeID:      "r1",
			Title:         "Paneer Butter Masala",
			Ingredients:   []string{"250g paneer", "2 tbsp butter", "1 cup cream"},
			Calories:      850,
			Steps:         []string{"Melt the butter.", "Simmer the gravy for 20 minutes.", "Add paneer and serve."},
			EstimatedTime: 40,
			Difficulty:    "Intermediate",
			Cuisine:       "North Indian",
			IsVeg:         true,
			Tags:          []string{"curry", "dinner"},
			Rating:        4.3,
			CreatedAt:     "2026-08-01T10:00:00Z",
		},
		{
			RecipeID:      "r2",
			Title:         "Chicken Biryani",
			Ingredients:   []string{"500g chicken", "2 cups rice", "1 onion"},
			Calories:      1200,
			Steps:         []string{"Marinate the chicken.", "Layer with rice.", "Cook for 1 hour."},
			EstimatedTime: 90,
			Difficulty:    "Advanced",
			Cuisine:       "Hyderabadi",
			IsVeg:         false,
			Tags:          []string{"rice", "festive"},
			Rating:        4.7,
			CreatedAt:     "2026-08-02T10:00:00Z",
		},
		{
			RecipeID:      "r3",
			Title:         "Masala Chai",
			Ingredients:   []string{"1 cup milk", "1 tsp sugar", "ginger"},
			Calories:      120,
			Steps:         []string{"Boil everything together."},
			EstimatedTime: 10,
			Difficulty:    "Beginner",
			Cuisine:       "North Indian",
			IsVeg:         true,
			Tags:          []string{"drink"},
			Rating:        4.1,
			CreatedAt:     "2026-08-03T10:00:00Z",
		},
	}
}

func seed(t *testing.T, s *RecipeStore) {
	t.Helper()
	if err := s.InsertBatch(context.Background(), sampleRecipes()); err != nil {
		t.Fatalf("InsertBatch() error: %v", err)
	}
}

func TestInsertAndCount(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	count, err := s.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}
}

func TestInsertBatchReplaces(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)
	seed(t, s) // 相同 recipe_id 再插一次應取代而非報錯

	count, err := s.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}
}

func TestByID(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	r, err := s.ByID(context.Background(), "r2")
	if err != nil {
		t.Fatalf("ByID() error: %v", err)
	}
	if r.Title != "Chicken Biryani" {
		t.Errorf("Title = %q", r.Title)
	}
	if len(r.Ingredients) != 3 || r.Ingredients[0] != "500g chicken" {
		t.Errorf("Ingredients = %v", r.Ingredients)
	}
	if r.IsVeg {
		t.Errorf("IsVeg = true, want false")
	}

	if _, err := s.ByID(context.Background(), "missing"); err != common.ErrRecipeNotFound {
		t.Errorf("ByID(missing) error = %v, want ErrRecipeNotFound", err)
	}
}

func TestByTitleCaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	r, err := s.ByTitle(context.Background(), "masala chai")
	if err != nil {
		t.Fatalf("ByTitle() error: %v", err)
	}
	if r.RecipeID != "r3" {
		t.Errorf("RecipeID = %q, want r3", r.RecipeID)
	}
}

func TestListPagination(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	page, err := s.List(context.Background(), 1, 2, "title", "asc")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if page.Total != 3 || page.Pages != 2 || len(page.Recipes) != 2 {
		t.Errorf("page = total %d pages %d len %d", page.Total, page.Pages, len(page.Recipes))
	}
	if page.Recipes[0].Title != "Chicken Biryani" {
		t.Errorf("first title = %q", page.Recipes[0].Title)
	}

	page2, err := s.List(context.Background(), 2, 2, "title", "asc")
	if err != nil {
		t.Fatalf("List() page 2 error: %v", err)
	}
	if len(page2.Recipes) != 1 {
		t.Errorf("page 2 len = %d, want 1", len(page2.Recipes))
	}
}

func TestListUnknownSortFallsBack(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	if _, err := s.List(context.Background(), 1, 10, "evil; DROP TABLE recipes", "asc"); err != nil {
		t.Fatalf("List() with unknown sort error: %v", err)
	}
	count, _ := s.Count(context.Background())
	if count != 3 {
		t.Errorf("Count() = %d after unknown sort, want 3", count)
	}
}

func TestSearch(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	results, err := s.Search(context.Background(), "masala", 10)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("Search(masala) len = %d, want 2", len(results))
	}

	results, err = s.Search(context.Background(), "chicken", 10)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(results) != 1 || results[0].RecipeID != "r2" {
		t.Errorf("Search(chicken) = %v", results)
	}
}

func TestSearchByIngredient(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	results, err := s.SearchByIngredient(context.Background(), "milk", 10)
	if err != nil {
		t.Fatalf("SearchByIngredient() error: %v", err)
	}
	if len(results) != 1 || results[0].RecipeID != "r3" {
		t.Errorf("SearchByIngredient(milk) = %v", results)
	}
}

func TestFilter(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	page, err := s.Filter(context.Background(), common.RecipeFilter{Cuisine: "north indian"}, 1, 10)
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("Filter(cuisine) total = %d, want 2", page.Total)
	}

	page, err = s.Filter(context.Background(), common.RecipeFilter{MaxTime: 45, MaxCalories: 900}, 1, 10)
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("Filter(max_time, max_calories) total = %d, want 2", page.Total)
	}

	page, err = s.Filter(context.Background(), common.RecipeFilter{Difficulty: "Advanced", MinCalories: 1000}, 1, 10)
	if err != nil {
		t.Fatalf("Filter() error: %v", err)
	}
	if page.Total != 1 || page.Recipes[0].RecipeID != "r2" {
		t.Errorf("Filter(difficulty, min_calories) = %v", page.Recipes)
	}
}

func TestRandom(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Random(context.Background()); err != common.ErrRecipeNotFound {
		t.Errorf("Random() on empty store error = %v, want ErrRecipeNotFound", err)
	}

	seed(t, s)
	r, err := s.Random(context.Background())
	if err != nil {
		t.Fatalf("Random() error: %v", err)
	}
	if r.RecipeID == "" {
		t.Errorf("Random() returned empty recipe")
	}
}

func TestStatistics(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	stats, err := s.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics() error: %v", err)
	}
	if stats.TotalRecipes != 3 {
		t.Errorf("TotalRecipes = %d, want 3", stats.TotalRecipes)
	}
	if stats.DifficultyDistribution["Beginner"] != 1 {
		t.Errorf("DifficultyDistribution = %v", stats.DifficultyDistribution)
	}
	if stats.CuisineDistribution["North Indian"] != 2 {
		t.Errorf("CuisineDistribution = %v", stats.CuisineDistribution)
	}
	if stats.CalorieStats.Min != 120 || stats.CalorieStats.Max != 1200 {
		t.Errorf("CalorieStats = %+v", stats.CalorieStats)
	}
	if stats.TimeStats.Min != 10 || stats.TimeStats.Max != 90 {
		t.Errorf("TimeStats = %+v", stats.TimeStats)
	}
}

func TestDistinctValues(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	cuisines, err := s.Cuisines(context.Background())
	if err != nil {
		t.Fatalf("Cuisines() error: %v", err)
	}
	if len(cuisines) != 2 {
		t.Errorf("Cuisines() = %v, want 2 entries", cuisines)
	}

	difficulties, err := s.Difficulties(context.Background())
	if err != nil {
		t.Fatalf("Difficulties() error: %v", err)
	}
	if len(difficulties) != 3 {
		t.Errorf("Difficulties() = %v, want 3 entries", difficulties)
	}
}

func TestDeleteAll(t *testing.T) {
	s := newTestStore(t)
	seed(t, s)

	if err := s.DeleteAll(context.Background()); err != nil {
		t.Fatalf("DeleteAll() error: %v", err)
	}
	count, _ := s.Count(context.Background())
	if count != 0 {
		t.Errorf("Count() = %d after DeleteAll, want 0", count)
	}
}
