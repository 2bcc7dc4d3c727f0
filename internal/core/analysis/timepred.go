package analysis

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"recipe-analyzer/internal/pkg/common"
)

// 步驟文字中的明確時間標記
var (
	hourPattern   = regexp.MustCompile(`(\d+)\s*hours?`)
	minutePattern = regexp.MustCompile(`(\d+)\s*(?:minutes?|mins?)`)
	secondPattern = regexp.MustCompile(`(\d+)\s*(?:seconds?|secs?)`)
)

// methodDuration 烹飪方式的典型耗時（分鐘）
type methodDuration struct {
	method  string
	minutes int
}

// methodDurations 烹飪方式耗時表。
// 以切片保存以固定掃描順序；比對不互斥，"marinate overnight" 與 "marinate"
// 可以同時命中並各自累加。
var methodDurations = []methodDuration{
	{"bake", 30}, {"baking", 30},
	{"roast", 45}, {"roasting", 45},
	{"braise", 120}, {"braising", 120},
	{"simmer", 30}, {"simmering", 30},
	{"boil", 15}, {"boiling", 15},
	{"fry", 10}, {"frying", 10},
	{"sauté", 10}, {"sautéing", 10},
	{"grill", 20}, {"grilling", 20},
	{"steam", 15}, {"steaming", 15},
	{"marinate overnight", 480},
	{"marinate", 30},
	{"chill", 60}, {"refrigerate", 60},
	{"freeze", 120},
	{"rest", 10}, {"proof", 60},
}

// ExtractExplicitTime 擷取步驟中明確提到的時間，加總為分鐘數
func ExtractExplicitTime(stepsText string) int {
	if stepsText == "" {
		return 0
	}

	total := 0.0
	stepsLower := strings.ToLower(stepsText)

	for _, m := range hourPattern.FindAllStringSubmatch(stepsLower, -1) {
		hours, _ := strconv.Atoi(m[1])
		total += float64(hours * 60)
	}
	for _, m := range minutePattern.FindAllStringSubmatch(stepsLower, -1) {
		minutes, _ := strconv.Atoi(m[1])
		total += float64(minutes)
	}
	for _, m := range secondPattern.FindAllStringSubmatch(stepsLower, -1) {
		seconds, _ := strconv.Atoi(m[1])
		total += float64(seconds) / 60
	}

	return int(math.Round(total))
}

// EstimateFromMethods 依提及的烹飪方式估算耗時
func EstimateFromMethods(stepsText string) (int, []string) {
	if stepsText == "" {
		return 0, []string{}
	}

	stepsLower := strings.ToLower(stepsText)
	estimated := 0
	methods := []string{}

	for _, md := range methodDurations {
		if strings.Contains(stepsLower, md.method) {
			estimated += md.minutes
			methods = append(methods, md.method)
		}
	}

	return estimated, methods
}

// EstimateFromSteps 依步驟數估算備料時間，每步約 5 分鐘
func EstimateFromSteps(stepCount int) int {
	return stepCount * 5
}

// PredictTime 預測總烹飪時間並分類
//
// 有明確時間時以明確時間為準，否則取備料加方式估算；下限 10 分鐘。
func PredictTime(stepsText string, stepCount int) common.TimeAnalysis {
	explicitTime := ExtractExplicitTime(stepsText)
	methodTime, methods := EstimateFromMethods(stepsText)
	prepTime := EstimateFromSteps(stepCount)

	totalMinutes := prepTime + methodTime
	if explicitTime > 0 {
		totalMinutes = explicitTime
	}
	if totalMinutes < 10 {
		totalMinutes = 10
	}

	var category, description string
	switch {
	case totalMinutes <= 30:
		category = "Quick"
		description = "Ready in 30 minutes or less"
	case totalMinutes <= 60:
		category = "Medium"
		description = "Takes about 30-60 minutes"
	default:
		category = "Long"
		description = fmt.Sprintf("Takes over an hour (about %dh %dm)", totalMinutes/60, totalMinutes%60)
	}

	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	timeDisplay := fmt.Sprintf("%dm", minutes)
	if hours > 0 {
		timeDisplay = fmt.Sprintf("%dh %dm", hours, minutes)
	}

	top := methods
	if len(top) > 3 {
		top = top[:3]
	}

	return common.TimeAnalysis{
		Category:          category,
		TotalMinutes:      totalMinutes,
		TimeDisplay:       timeDisplay,
		Description:       description,
		ExplicitTimeFound: explicitTime > 0,
		MethodsDetected:   top,
	}
}
