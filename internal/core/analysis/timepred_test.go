package analysis

import "testing"

func TestExtractExplicitTime(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"no time", "Mix everything together.", 0},
		{"hours and minutes", "Bake for 2 hours and 30 minutes", 150},
		{"minutes only", "Simmer for 20 minutes", 20},
		{"mins abbreviation", "Cook for 15 mins", 15},
		{"seconds", "Microwave for 90 seconds", 2},
		{"single hour", "Roast for 1 hour", 60},
		{"multiple mentions", "Bake 10 minutes, rest 5 minutes", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractExplicitTime(tt.text); got != tt.want {
				t.Errorf("ExtractExplicitTime(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestEstimateFromMethods(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantMinutes int
		wantMethods []string
	}{
		{"empty", "", 0, []string{}},
		{"none", "Mix and serve.", 0, []string{}},
		{"bake", "Bake until golden.", 30, []string{"bake"}},
		{"roasting matches both forms", "Roasting the vegetables.", 90, []string{"roast", "roasting"}},
		{"marinate overnight stacks", "Marinate overnight in the fridge.", 510, []string{"marinate overnight", "marinate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMinutes, gotMethods := EstimateFromMethods(tt.text)
			if gotMinutes != tt.wantMinutes {
				t.Errorf("minutes = %d, want %d", gotMinutes, tt.wantMinutes)
			}
			if len(gotMethods) != len(tt.wantMethods) {
				t.Fatalf("methods = %v, want %v", gotMethods, tt.wantMethods)
			}
			for i := range gotMethods {
				if gotMethods[i] != tt.wantMethods[i] {
					t.Errorf("methods = %v, want %v", gotMethods, tt.wantMethods)
				}
			}
		})
	}
}

func TestPredictTime(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		stepCount    int
		wantMinutes  int
		wantCategory string
		wantDisplay  string
		wantExplicit bool
	}{
		{
			name:         "explicit long",
			text:         "Bake for 2 hours and 30 minutes",
			stepCount:    5,
			wantMinutes:  150,
			wantCategory: "Long",
			wantDisplay:  "2h 30m",
			wantExplicit: true,
		},
		{
			name:         "quick from steps",
			text:         "Mix ingredients.",
			stepCount:    4,
			wantMinutes:  20,
			wantCategory: "Quick",
			wantDisplay:  "20m",
			wantExplicit: false,
		},
		{
			name:         "minimum clamp",
			text:         "Serve.",
			stepCount:    1,
			wantMinutes:  10,
			wantCategory: "Quick",
			wantDisplay:  "10m",
			wantExplicit: false,
		},
		{
			name:         "medium from methods",
			text:         "Chop everything then simmer gently.",
			stepCount:    3,
			wantMinutes:  45,
			wantCategory: "Medium",
			wantDisplay:  "45m",
			wantExplicit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictTime(tt.text, tt.stepCount)
			if got.TotalMinutes != tt.wantMinutes {
				t.Errorf("TotalMinutes = %d, want %d", got.TotalMinutes, tt.wantMinutes)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCategory)
			}
			if got.TimeDisplay != tt.wantDisplay {
				t.Errorf("TimeDisplay = %q, want %q", got.TimeDisplay, tt.wantDisplay)
			}
			if got.ExplicitTimeFound != tt.wantExplicit {
				t.Errorf("ExplicitTimeFound = %v, want %v", got.ExplicitTimeFound, tt.wantExplicit)
			}
		})
	}
}

func TestPredictTimeLongDescription(t *testing.T) {
	got := PredictTime("Braise for 90 minutes", 2)
	if got.Category != "Long" {
		t.Fatalf("Category = %q, want Long", got.Category)
	}
	if got.Description != "Takes over an hour (about 1h 30m)" {
		t.Errorf("Description = %q", got.Description)
	}
}

func TestPredictTimeMethodsCap(t *testing.T) {
	got := PredictTime("bake roast braise simmer boil", 1)
	if len(got.MethodsDetected) != 3 {
		t.Errorf("MethodsDetected = %v, want 3 entries", got.MethodsDetected)
	}
}
