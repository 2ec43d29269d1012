package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/service/food"
)

type foodService interface {
	CreateEntries(ctx context.Context, input food.CreateEntriesInput) error
	ReadEntries(ctx context.Context, input food.ReadEntriesInput) (*food.ReadEntriesResult, error)
}

// FoodHandler serves the food ledger endpoints.
type FoodHandler struct {
	svc foodService
	log *slog.Logger
}

// NewFoodHandler creates a FoodHandler.
func NewFoodHandler(svc foodService, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{svc: svc, log: logger.With("handler", "food")}
}

type createFoodRequest struct {
	UserID      uuid.UUID      `json:"user_id"`
	FoodEntries []newFoodEntry `json:"food_entries"`
}

type newFoodEntry struct {
	Description    string          `json:"description"`
	Calories       *float64        `json:"calories"`
	Carbs          *float64        `json:"carbs"`
	Protein        *float64        `json:"protein"`
	Fats           *float64        `json:"fats"`
	Micronutrients json.RawMessage `json:"micronutrients,omitempty"`
	LoggedAt       *time.Time      `json:"logged_at"`
}

type foundFoodEntry struct {
	Description string    `json:"description"`
	Calories    *float64  `json:"calories"`
	Carbs       *float64  `json:"carbs"`
	Protein     *float64  `json:"protein"`
	Fats        *float64  `json:"fats"`
	LoggedAt    time.Time `json:"logged_at"`
}

type caloriesResult struct {
	TotalCalories              float64 `json:"total_calories"`
	FoodEntriesWithoutCalories int     `json:"food_entries_without_calories"`
}

type macrosResult struct {
	TotalCarbs                float64 `json:"total_carbs"`
	TotalProtein              float64 `json:"total_protein"`
	TotalFats                 float64 `json:"total_fats"`
	FoodEntriesWithoutCarbs   int     `json:"food_entries_without_carbs"`
	FoodEntriesWithoutProtein int     `json:"food_entries_without_protein"`
	FoodEntriesWithoutFats    int     `json:"food_entries_without_fats"`
}

type readFoodResponse struct {
	FoundFoodEntries int              `json:"found_food_entries"`
	FoodEntries      []foundFoodEntry `json:"food_entries"`
	CaloriesResult   caloriesResult   `json:"calories_result"`
	MacrosResult     macrosResult     `json:"macros_result"`
}

type createdResponse struct {
	Created int `json:"created"`
}

// Create handles POST /food.
func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFoodRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := food.CreateEntriesInput{UserID: req.UserID, Entries: make([]food.NewEntry, len(req.FoodEntries))}
	for i, e := range req.FoodEntries {
		input.Entries[i] = food.NewEntry{
			Description:    e.Description,
			Calories:       e.Calories,
			Carbs:          e.Carbs,
			Protein:        e.Protein,
			Fats:           e.Fats,
			Micronutrients: e.Micronutrients,
			LoggedAt:       e.LoggedAt,
		}
	}

	if err := h.svc.CreateEntries(r.Context(), input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{Created: len(input.Entries)})
}

// Read handles GET /food.
func (h *FoodHandler) Read(w http.ResponseWriter, r *http.Request) {
	q, err := parseRangeQuery(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ReadEntries(r.Context(), food.ReadEntriesInput{
		UserID:       q.UserID,
		LoggedBefore: q.LoggedBefore,
		LoggedAfter:  q.LoggedAfter,
		Limit:        q.Limit,
		Offset:       q.Offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries := make([]foundFoodEntry, len(res.Entries))
	for i, e := range res.Entries {
		entries[i] = foundFoodEntry{
			Description: e.Description,
			Calories:    e.Calories,
			Carbs:       e.Carbs,
			Protein:     e.Protein,
			Fats:        e.Fats,
			LoggedAt:    e.LoggedAt,
		}
	}

	writeJSON(w, http.StatusOK, readFoodResponse{
		FoundFoodEntries: len(entries),
		FoodEntries:      entries,
		CaloriesResult: caloriesResult{
			TotalCalories:              res.Calories.TotalCalories,
			FoodEntriesWithoutCalories: res.Calories.EntriesWithoutCalories,
		},
		MacrosResult: macrosResult{
			TotalCarbs:                res.Macros.TotalCarbs,
			TotalProtein:              res.Macros.TotalProtein,
			TotalFats:                 res.Macros.TotalFats,
			FoodEntriesWithoutCarbs:   res.Macros.EntriesWithoutCarbs,
			FoodEntriesWithoutProtein: res.Macros.EntriesWithoutProtein,
			FoodEntriesWithoutFats:    res.Macros.EntriesWithoutFats,
		},
	})
}
