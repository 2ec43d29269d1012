package food

import (
	"time"

	"github.com/heartmarshall/yuhuh-backend/internal/domain"
)

// Metric names used in the read aggregation.
const (
	MetricCalories = "calories"
	MetricCarbs    = "carbs"
	MetricProtein  = "protein"
	MetricFats     = "fats"
)

var metrics = []domain.Metric[domain.FoodEntry]{
	{Name: MetricCalories, Value: func(e domain.FoodEntry) *float64 { return e.Calories }},
	{Name: MetricCarbs, Value: func(e domain.FoodEntry) *float64 { return e.Carbs }},
	{Name: MetricProtein, Value: func(e domain.FoodEntry) *float64 { return e.Protein }},
	{Name: MetricFats, Value: func(e domain.FoodEntry) *float64 { return e.Fats }},
}

// FoundEntry is the projection of a food entry returned to clients.
type FoundEntry struct {
	Description string
	Calories    *float64
	Carbs       *float64
	Protein     *float64
	Fats        *float64
	LoggedAt    time.Time
}

// CaloriesResult totals calories over the returned entries.
type CaloriesResult struct {
	TotalCalories          float64
	EntriesWithoutCalories int
}

// MacrosResult totals macronutrients over the returned entries.
type MacrosResult struct {
	TotalCarbs            float64
	TotalProtein          float64
	TotalFats             float64
	EntriesWithoutCarbs   int
	EntriesWithoutProtein int
	EntriesWithoutFats    int
}

// ReadEntriesResult is the output of ReadEntries.
type ReadEntriesResult struct {
	Entries  []FoundEntry
	Calories CaloriesResult
	Macros   MacrosResult
}

func project(e domain.FoodEntry) FoundEntry {
	return FoundEntry{
		Description: e.Description,
		Calories:    e.Calories,
		Carbs:       e.Carbs,
		Protein:     e.Protein,
		Fats:        e.Fats,
		LoggedAt:    e.LoggedAt,
	}
}

func aggregate(entries []domain.FoodEntry) ReadEntriesResult {
	found, totals := domain.Fold(entries, metrics, project)
	return ReadEntriesResult{
		Entries: found,
		Calories: CaloriesResult{
			TotalCalories:          totals.Sum(MetricCalories),
			EntriesWithoutCalories: totals.MissingCount(MetricCalories),
		},
		Macros: MacrosResult{
			TotalCarbs:            totals.Sum(MetricCarbs),
			TotalProtein:          totals.Sum(MetricProtein),
			TotalFats:             totals.Sum(MetricFats),
			EntriesWithoutCarbs:   totals.MissingCount(MetricCarbs),
			EntriesWithoutProtein: totals.MissingCount(MetricProtein),
			EntriesWithoutFats:    totals.MissingCount(MetricFats),
		},
	}
}
