package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
	"github.com/heartmarshall/yuhuh-backend/internal/service/mood"
)

type moodService interface {
	CreateEntries(ctx context.Context, input mood.CreateEntriesInput) error
	ReadEntries(ctx context.Context, input mood.ReadEntriesInput) (*mood.ReadEntriesResult, error)
	CreateAssignments(ctx context.Context, input mood.CreateAssignmentsInput) error
	ListAssignments(ctx context.Context, userID uuid.UUID) (*mood.AssignmentsResult, error)
}

// MoodHandler serves mood entries and rating assignments.
type MoodHandler struct {
	svc moodService
	log *slog.Logger
}

// NewMoodHandler creates a MoodHandler.
func NewMoodHandler(svc moodService, logger *slog.Logger) *MoodHandler {
	return &MoodHandler{svc: svc, log: logger.With("handler", "mood")}
}

type createMoodRequest struct {
	UserID      uuid.UUID      `json:"user_id"`
	MoodEntries []moodEntryDTO `json:"mood_entries"`
}

type moodEntryDTO struct {
	Mood     *domain.Rating `json:"mood"`
	Energy   *domain.Rating `json:"energy"`
	Sleep    *domain.Rating `json:"sleep"`
	Notes    *string        `json:"notes"`
	LoggedAt *time.Time     `json:"logged_at"`
}

type ratingsResult struct {
	TotalMood            uint `json:"total_mood"`
	TotalEnergy          uint `json:"total_energy"`
	TotalSleep           uint `json:"total_sleep"`
	EntriesWithoutMood   int  `json:"entries_without_mood"`
	EntriesWithoutEnergy int  `json:"entries_without_energy"`
	EntriesWithoutSleep  int  `json:"entries_without_sleep"`
}

type readMoodResponse struct {
	FoundEntries  int            `json:"found_entries"`
	MoodEntries   []moodEntryDTO `json:"mood_entries"`
	RatingsResult ratingsResult  `json:"ratings_result"`
}

// assignmentIndex accepts any JSON integer. Values beyond int64 saturate
// so that the bounds check reports them as out of range.
type assignmentIndex int64

func (a *assignmentIndex) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	n, err := strconv.ParseInt(s, 10, 64)
	switch {
	case err == nil:
	case errors.Is(err, strconv.ErrRange) && strings.HasPrefix(s, "-"):
		n = math.MinInt64
	case errors.Is(err, strconv.ErrRange):
		n = math.MaxInt64
	default:
		return domain.NewValidationError("index", "expected an integer, got "+s)
	}
	*a = assignmentIndex(n)
	return nil
}

type assignmentDTO struct {
	Value string           `json:"value"`
	Index *assignmentIndex `json:"index"`
}

type createAssignmentsRequest struct {
	UserID            uuid.UUID       `json:"user_id"`
	MoodAssignments   []assignmentDTO `json:"mood_assignments"`
	EnergyAssignments []assignmentDTO `json:"energy_assignments"`
	SleepAssignments  []assignmentDTO `json:"sleep_assignments"`
}

type assignmentView struct {
	ID        *uuid.UUID `json:"id"`
	Value     string     `json:"value"`
	Index     uint       `json:"index"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type listAssignmentsResponse struct {
	MoodAssignments   []assignmentView `json:"mood_assignments"`
	EnergyAssignments []assignmentView `json:"energy_assignments"`
	SleepAssignments  []assignmentView `json:"sleep_assignments"`
}

// Create handles POST /mood.
func (h *MoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMoodRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := mood.CreateEntriesInput{UserID: req.UserID, Entries: make([]mood.NewEntry, len(req.MoodEntries))}
	for i, e := range req.MoodEntries {
		input.Entries[i] = mood.NewEntry{
			Mood:     e.Mood,
			Energy:   e.Energy,
			Sleep:    e.Sleep,
			Notes:    e.Notes,
			LoggedAt: e.LoggedAt,
		}
	}

	if err := h.svc.CreateEntries(r.Context(), input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{Created: len(input.Entries)})
}

// Read handles GET /mood.
func (h *MoodHandler) Read(w http.ResponseWriter, r *http.Request) {
	q, err := parseRangeQuery(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ReadEntries(r.Context(), mood.ReadEntriesInput{
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

	entries := make([]moodEntryDTO, len(res.Entries))
	for i, e := range res.Entries {
		loggedAt := e.LoggedAt
		entries[i] = moodEntryDTO{
			Mood:     e.Mood,
			Energy:   e.Energy,
			Sleep:    e.Sleep,
			Notes:    e.Notes,
			LoggedAt: &loggedAt,
		}
	}

	writeJSON(w, http.StatusOK, readMoodResponse{
		FoundEntries: len(entries),
		MoodEntries:  entries,
		RatingsResult: ratingsResult{
			TotalMood:            res.Ratings.TotalMood,
			TotalEnergy:          res.Ratings.TotalEnergy,
			TotalSleep:           res.Ratings.TotalSleep,
			EntriesWithoutMood:   res.Ratings.EntriesWithoutMood,
			EntriesWithoutEnergy: res.Ratings.EntriesWithoutEnergy,
			EntriesWithoutSleep:  res.Ratings.EntriesWithoutSleep,
		},
	})
}

// CreateAssignments handles POST /mood/assignments.
func (h *MoodHandler) CreateAssignments(w http.ResponseWriter, r *http.Request) {
	var req createAssignmentsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var missing []domain.FieldError
	input := mood.CreateAssignmentsInput{
		UserID: req.UserID,
		Mood:   toAssignmentItems(domain.AssignmentKindMood, req.MoodAssignments, &missing),
		Energy: toAssignmentItems(domain.AssignmentKindEnergy, req.EnergyAssignments, &missing),
		Sleep:  toAssignmentItems(domain.AssignmentKindSleep, req.SleepAssignments, &missing),
	}
	if len(missing) > 0 {
		handleError(h.log, w, r, &domain.ValidationError{Errors: missing})
		return
	}

	if err := h.svc.CreateAssignments(r.Context(), input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createdResponse{
		Created: len(input.Mood) + len(input.Energy) + len(input.Sleep),
	})
}

// ListAssignments handles GET /mood/assignments.
func (h *MoodHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUUID(r.URL.Query().Get("user_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "user_id: must be a UUID")
		return
	}

	res, err := h.svc.ListAssignments(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listAssignmentsResponse{
		MoodAssignments:   toAssignmentViews(res.Mood),
		EnergyAssignments: toAssignmentViews(res.Energy),
		SleepAssignments:  toAssignmentViews(res.Sleep),
	})
}

// toAssignmentItems converts submitted labels and records every item that
// omits its index. A missing index must not default to zero.
func toAssignmentItems(kind domain.AssignmentKind, in []assignmentDTO, missing *[]domain.FieldError) []mood.AssignmentItem {
	out := make([]mood.AssignmentItem, len(in))
	for i, a := range in {
		if a.Index == nil {
			*missing = append(*missing, domain.FieldError{
				Field:   fmt.Sprintf("%s_assignments[%d].index", kind, i),
				Message: "required",
			})
			continue
		}
		out[i] = mood.AssignmentItem{Value: a.Value, Index: int64(*a.Index)}
	}
	return out
}

func toAssignmentViews(in []domain.Assignment) []assignmentView {
	out := make([]assignmentView, len(in))
	for i, a := range in {
		out[i] = assignmentView{ID: a.ID, Value: a.Value, Index: a.Index.Uint(), UpdatedAt: a.UpdatedAt}
	}
	return out
}
