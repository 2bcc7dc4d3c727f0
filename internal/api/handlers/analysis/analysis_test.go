package analysis

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	coreanalysis "recipe-analyzer/internal/core/analysis"
	"recipe-analyzer/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter() *gin.Engine {
	h := NewHandler(coreanalysis.NewService(nil))
	r := gin.New()
	r.POST("/analysis/calories", h.Calories)
	r.POST("/analysis/difficulty", h.Difficulty)
	r.POST("/analysis/time", h.Time)
	r.POST("/analysis/full", h.Full)
	r.POST("/suggestions", h.Suggestions)
	return r
}

func doPost(t *testing.T, r *gin.Engine, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return w.Code, resp
}

func TestCaloriesEndpoint(t *testing.T) {
	r := newTestRouter()
	code, resp := doPost(t, r, "/analysis/calories", map[string]interface{}{
		"ingredients": []string{"2 cups rice", "500g chicken"},
	})
	if code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	if resp["status"] != "success" {
		t.Fatalf("status field = %v, want success", resp["status"])
	}
	analysis, ok := resp["analysis"].(map[string]interface{})
	if !ok {
		t.Fatalf("analysis field missing: %v", resp)
	}
	if got := analysis["total_calories"].(float64); got != 1449 {
		t.Errorf("total_calories = %v, want 1449", got)
	}
	if got := analysis["servings_estimate"].(float64); got != 1 {
		t.Errorf("servings_estimate = %v, want 1", got)
	}
}

func TestCaloriesEndpointEmptyIngredients(t *testing.T) {
	r := newTestRouter()
	for _, payload := range []map[string]interface{}{
		{"ingredients": []string{}},
		{"ingredients": []string{"  ", ""}},
		{},
	} {
		code, resp := doPost(t, r, "/analysis/calories", payload)
		if code != http.StatusBadRequest {
			t.Errorf("payload %v: status = %d, want %d", payload, code, http.StatusBadRequest)
		}
		if resp["status"] != "error" {
			t.Errorf("payload %v: status field = %v, want error", payload, resp["status"])
		}
	}
}

func TestDifficultyEndpoint(t *testing.T) {
	r := newTestRouter()
	code, resp := doPost(t, r, "/analysis/difficulty", map[string]interface{}{
		"ingredients": []string{"rice", "water", "salt"},
		"steps":       "1. Boil water.\n2. Add rice.",
	})
	if code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	analysis := resp["analysis"].(map[string]interface{})
	if got := analysis["difficulty"]; got != "Beginner" {
		t.Errorf("difficulty = %v, want Beginner", got)
	}
}

func TestTimeEndpoint(t *testing.T) {
	r := newTestRouter()
	code, resp := doPost(t, r, "/analysis/time", map[string]interface{}{
		"steps": "Bake for 2 hours and 30 minutes",
	})
	if code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	analysis := resp["analysis"].(map[string]interface{})
	if got := analysis["total_minutes"].(float64); got != 150 {
		t.Errorf("total_minutes = %v, want 150", got)
	}
	if got := analysis["time_display"]; got != "2h 30m" {
		t.Errorf("time_display = %v, want 2h 30m", got)
	}
}

func TestTimeEndpointMissingSteps(t *testing.T) {
	r := newTestRouter()
	code, _ := doPost(t, r, "/analysis/time", map[string]interface{}{})
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", code, http.StatusBadRequest)
	}
}

func TestStepsAcceptsStringOrArray(t *testing.T) {
	r := newTestRouter()
	asString := map[string]interface{}{
		"ingredients": []string{"flour", "water"},
		"steps":       "Mix flour.\nKnead dough.",
	}
	asArray := map[string]interface{}{
		"ingredients": []string{"flour", "water"},
		"steps":       []string{"Mix flour.", "Knead dough."},
	}

	_, respString := doPost(t, r, "/analysis/difficulty", asString)
	_, respArray := doPost(t, r, "/analysis/difficulty", asArray)

	gotString := respString["analysis"].(map[string]interface{})
	gotArray := respArray["analysis"].(map[string]interface{})
	if gotString["step_count"] != gotArray["step_count"] {
		t.Errorf("step_count differs: string form %v, array form %v",
			gotString["step_count"], gotArray["step_count"])
	}
}

func TestSuggestionsEndpoint(t *testing.T) {
	r := newTestRouter()
	code, resp := doPost(t, r, "/suggestions", map[string]interface{}{
		"ingredients": []string{"chicken", "cream", "butter"},
	})
	if code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	suggestions, ok := resp["suggestions"].(map[string]interface{})
	if !ok {
		t.Fatalf("suggestions field missing: %v", resp)
	}
	if got := suggestions["diet_type"]; got != "Non-Vegetarian" {
		t.Errorf("diet_type = %v, want Non-Vegetarian", got)
	}
}

func TestFullEndpoint(t *testing.T) {
	r := newTestRouter()
	code, resp := doPost(t, r, "/analysis/full", map[string]interface{}{
		"ingredients": []string{"2 cups rice", "500g chicken", "1 tbsp oil"},
		"steps":       "1. Marinate chicken.\n2. Fry with oil.\n3. Serve with rice.",
	})
	if code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	analysis := resp["analysis"].(map[string]interface{})
	for _, key := range []string{"calories", "difficulty", "time", "suggestions"} {
		if _, ok := analysis[key]; !ok {
			t.Errorf("analysis missing section %q", key)
		}
	}
}

func TestInvalidJSONBody(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/analysis/calories", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
