package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"recipe-analyzer/internal/infrastructure/store"
	"recipe-analyzer/internal/pkg/common"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func TestGenerateRecipeShape(t *testing.T) {
	g := NewGenerator(42)

	for i := 0; i < 50; i++ {
		r := g.Recipe()

		if r.RecipeID == "" {
			t.Fatal("RecipeID is empty")
		}
		if r.Title == "" {
			t.Fatal("Title is empty")
		}
		if n := len(r.Ingredients); n < 6 || n > 18 {
			t.Errorf("ingredient count = %d, want 6-18", n)
		}
		if n := len(r.Steps); n < 4 || n > 12 {
			t.Errorf("step count = %d, want 4-12", n)
		}
		if len(r.IngredientQuantities) != len(r.Ingredients) {
			t.Errorf("quantities len = %d, ingredients len = %d",
				len(r.IngredientQuantities), len(r.Ingredients))
		}
		if r.EstimatedTime < 1 || r.EstimatedTime > 150 {
			t.Errorf("EstimatedTime = %d, want 1-150", r.EstimatedTime)
		}
		if r.Rating < 3.5 || r.Rating > 5.0 {
			t.Errorf("Rating = %v, want 3.5-5.0", r.Rating)
		}
		if r.Calories < 0 {
			t.Errorf("Calories = %d", r.Calories)
		}
		switch r.Difficulty {
		case "Beginner", "Intermediate", "Advanced":
		default:
			t.Errorf("Difficulty = %q", r.Difficulty)
		}
		if r.Steps[0] != "Wash and prepare all ingredients. Chop vegetables as needed." {
			t.Errorf("first step = %q", r.Steps[0])
		}
		if !strings.HasPrefix(r.Steps[len(r.Steps)-1], "Garnish") {
			t.Errorf("last step = %q", r.Steps[len(r.Steps)-1])
		}
	}
}

func TestGenerateVegetarianHasNoMeat(t *testing.T) {
	g := NewGenerator(7)

	meat := map[string]bool{}
	for _, m := range nonVegIngredients {
		meat[m] = true
	}

	for i := 0; i < 100; i++ {
		r := g.Recipe()
		if !r.IsVeg {
			continue
		}
		for _, ing := range r.Ingredients {
			if meat[ing] {
				t.Fatalf("vegetarian recipe %q contains %q", r.Title, ing)
			}
		}
		if r.Tags[0] != "vegetarian" {
			t.Errorf("first tag = %q, want vegetarian", r.Tags[0])
		}
	}
}

func TestGenerateTagsCapped(t *testing.T) {
	g := NewGenerator(99)
	for i := 0; i < 50; i++ {
		r := g.Recipe()
		if len(r.Tags) > 7 {
			t.Errorf("tags = %v, more than 7", r.Tags)
		}
	}
}

func TestWriteFilesAndImport(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(1)

	if err := g.WriteFiles(dir, 25, 10); err != nil {
		t.Fatalf("WriteFiles() error: %v", err)
	}

	for _, name := range []string{"recipes.jsonl", "recipes.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected output file %s: %v", name, err)
		}
	}

	st, err := store.New(filepath.Join(dir, "recipes.db"))
	if err != nil {
		t.Fatalf("store.New() error: %v", err)
	}
	defer st.Close()

	im := NewImporter(st, 10)
	imported, err := im.ImportFile(context.Background(), filepath.Join(dir, "recipes.jsonl"), true)
	if err != nil {
		t.Fatalf("ImportFile() error: %v", err)
	}
	if imported != 25 {
		t.Errorf("imported = %d, want 25", imported)
	}

	count, err := st.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 25 {
		t.Errorf("Count() = %d, want 25", count)
	}
}

func TestImportReplaceMode(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(2)

	if err := g.WriteFiles(dir, 10, 5); err != nil {
		t.Fatalf("WriteFiles() error: %v", err)
	}

	st, err := store.New(filepath.Join(dir, "recipes.db"))
	if err != nil {
		t.Fatalf("store.New() error: %v", err)
	}
	defer st.Close()

	im := NewImporter(st, 5)
	path := filepath.Join(dir, "recipes.jsonl")

	if _, err := im.ImportFile(context.Background(), path, true); err != nil {
		t.Fatalf("first import error: %v", err)
	}
	if _, err := im.ImportFile(context.Background(), path, true); err != nil {
		t.Fatalf("second import error: %v", err)
	}

	count, _ := st.Count(context.Background())
	if count != 10 {
		t.Errorf("Count() = %d after replace import, want 10", count)
	}
}

func TestImportSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.jsonl")

	content := `{"recipe_id":"a1","title":"Dal Tadka","ingredients":["dal"],"calories":300,"steps":["Cook."],"estimated_time":30,"difficulty":"Beginner","cuisine":"North Indian","is_veg":true,"tags":["dal"],"rating":4.2,"created_at":"2026-01-01T00:00:00Z"}
not json at all
{"recipe_id":"","title":"missing id"}
{"recipe_id":"a2","title":"Jeera Rice","ingredients":["rice"],"calories":400,"steps":["Cook."],"estimated_time":20,"difficulty":"Beginner","cuisine":"North Indian","is_veg":true,"tags":["rice dish"],"rating":4.0,"created_at":"2026-01-02T00:00:00Z"}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	st, err := store.New(filepath.Join(dir, "recipes.db"))
	if err != nil {
		t.Fatalf("store.New() error: %v", err)
	}
	defer st.Close()

	imported, err := NewImporter(st, 100).ImportFile(context.Background(), path, false)
	if err != nil {
		t.Fatalf("ImportFile() error: %v", err)
	}
	if imported != 2 {
		t.Errorf("imported = %d, want 2", imported)
	}
}
