package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
	"github.com/heartmarshall/yuhuh-backend/internal/service/activity"
)

type activityService interface {
	CreateEntries(ctx context.Context, input activity.CreateEntriesInput) error
	ReadEntries(ctx context.Context, input activity.ReadEntriesInput) ([]activity.FoundEntry, error)
}

// ActivityHandler serves the activity ledger endpoints.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

type activityEntryDTO struct {
	Activity     string              `json:"activity"`
	ActivityType domain.ActivityType `json:"activity_type"`
	ActivityInfo json.RawMessage     `json:"activity_info,omitempty"`
	LoggedAt     *time.Time          `json:"logged_at"`
}

type createActivityRequest struct {
	UserID          uuid.UUID          `json:"user_id"`
	ActivityEntries []activityEntryDTO `json:"activity_entries"`
}

type readActivityResponse struct {
	FoundActivityEntries int                `json:"found_activity_entries"`
	ActivityEntries      []activityEntryDTO `json:"activity_entries"`
}

// Create handles POST /activity.
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := activity.CreateEntriesInput{UserID: req.UserID, Entries: make([]activity.NewEntry, len(req.ActivityEntries))}
	for i, e := range req.ActivityEntries {
		input.Entries[i] = activity.NewEntry{
			Activity:     e.Activity,
			ActivityType: e.ActivityType,
			ActivityInfo: e.ActivityInfo,
			LoggedAt:     e.LoggedAt,
		}
	}

	if err := h.svc.CreateEntries(r.Context(), input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{Created: len(input.Entries)})
}

// Read handles GET /activity.
func (h *ActivityHandler) Read(w http.ResponseWriter, r *http.Request) {
	q, err := parseRangeQuery(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	found, err := h.svc.ReadEntries(r.Context(), activity.ReadEntriesInput{
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

	entries := make([]activityEntryDTO, len(found))
	for i, e := range found {
		loggedAt := e.LoggedAt
		entries[i] = activityEntryDTO{
			Activity:     e.Activity,
			ActivityType: e.ActivityType,
			ActivityInfo: e.ActivityInfo,
			LoggedAt:     &loggedAt,
		}
	}

	writeJSON(w, http.StatusOK, readActivityResponse{
		FoundActivityEntries: len(entries),
		ActivityEntries:      entries,
	})
}
