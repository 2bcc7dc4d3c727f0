package analysis

import (
	"strings"
	"testing"
)

func TestCountSteps(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"plain lines", "step one\nstep two", 2},
		{"blank lines ignored", "step one\n\n  \nstep two", 2},
		{"numbered single line", "1. Mix 2. Bake 3. Serve", 3},
		{"numbered with parens", "1) Mix\n2) Bake", 2},
		{"numbered beats lines", "1. Mix everything well 2. Bake it", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountSteps(tt.text); got != tt.want {
				t.Errorf("CountSteps(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnalyzeComplexity(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantScore      int
		wantTechniques []string
	}{
		{"empty", "", 0, []string{}},
		{"no techniques", "Mix everything together.", 0, []string{}},
		{"one complex", "Braise the beef slowly.", 3, []string{"braise"}},
		{"one moderate", "Simmer for ten minutes.", 1, []string{"simmer"}},
		{"mixed", "Braise the beef, then simmer the sauce.", 4, []string{"braise", "simmer"}},
		{"two complex", "Braise, then finish sous vide.", 6, []string{"braise", "sous vide"}},
		{"case insensitive", "BRAISE the meat.", 3, []string{"braise"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotScore, gotTechniques := AnalyzeComplexity(tt.text)
			if gotScore != tt.wantScore {
				t.Errorf("score = %d, want %d", gotScore, tt.wantScore)
			}
			if len(gotTechniques) != len(tt.wantTechniques) {
				t.Fatalf("techniques = %v, want %v", gotTechniques, tt.wantTechniques)
			}
			for i := range gotTechniques {
				if gotTechniques[i] != tt.wantTechniques[i] {
					t.Errorf("techniques = %v, want %v", gotTechniques, tt.wantTechniques)
				}
			}
		})
	}
}

func TestAnalyzeDifficulty(t *testing.T) {
	tests := []struct {
		name           string
		ingredients    []string
		steps          string
		wantDifficulty string
		wantScore      int
	}{
		{
			name:           "beginner",
			ingredients:    []string{"a", "a", "a"},
			steps:          "step1\nstep2",
			wantDifficulty: "Beginner",
			wantScore:      2,
		},
		{
			name:           "advanced",
			ingredients:    manyIngredients(12),
			steps:          strings.Repeat("do something\n", 7) + "braise then sous vide",
			wantDifficulty: "Advanced",
			wantScore:      9,
		},
		{
			name:           "intermediate",
			ingredients:    manyIngredients(7),
			steps:          "1. Chop\n2. Simmer\n3. Season\n4. Serve",
			wantDifficulty: "Intermediate",
			wantScore:      5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeDifficulty(tt.ingredients, tt.steps)
			if got.Difficulty != tt.wantDifficulty {
				t.Errorf("Difficulty = %q, want %q", got.Difficulty, tt.wantDifficulty)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
		})
	}
}

func TestAnalyzeDifficultyFactors(t *testing.T) {
	got := AnalyzeDifficulty([]string{"rice", "chicken", ""}, "Simmer the rice.\nServe.")

	if got.IngredientCount != 2 {
		t.Errorf("IngredientCount = %d, want 2", got.IngredientCount)
	}
	if got.StepCount != 2 {
		t.Errorf("StepCount = %d, want 2", got.StepCount)
	}
	if len(got.Factors) != 3 {
		t.Fatalf("Factors = %v, want 3 entries", got.Factors)
	}
	if got.Factors[0] != "2 ingredients" {
		t.Errorf("Factors[0] = %q", got.Factors[0])
	}
	if got.Factors[1] != "2 steps" {
		t.Errorf("Factors[1] = %q", got.Factors[1])
	}
	if got.Factors[2] != "requires 1 cooking technique(s)" {
		t.Errorf("Factors[2] = %q", got.Factors[2])
	}
}

func TestAnalyzeDifficultyTechniquesCap(t *testing.T) {
	steps := "fold temper caramelize julienne deglaze braise poach"
	got := AnalyzeDifficulty([]string{"a"}, steps)
	if len(got.TechniquesFound) != 5 {
		t.Errorf("TechniquesFound = %v, want 5 entries", got.TechniquesFound)
	}
}

func manyIngredients(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "ingredient"
	}
	return out
}
