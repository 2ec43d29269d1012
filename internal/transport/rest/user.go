package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/heartmarshall/yuhuh-backend/internal/domain"
	"github.com/heartmarshall/yuhuh-backend/internal/service/user"
)

type userService interface {
	CreateDiscordUser(ctx context.Context, input user.CreateDiscordUserInput) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByDiscordID(ctx context.Context, discordID int64) (*domain.User, error)
}

// UserHandler serves user registration and lookup.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type createUserRequest struct {
	DiscordID       int64   `json:"discord_id"`
	DiscordUsername string  `json:"discord_username"`
	Personalisation *string `json:"personalisation"`
	ContactName     *string `json:"contact_name"`
	ContactEmail    *string `json:"contact_email"`
	Timezone        *string `json:"timezone"`
}

type createUserResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type userView struct {
	ID              uuid.UUID `json:"id"`
	Personalisation *string   `json:"personalisation"`
	ContactName     *string   `json:"contact_name"`
	ContactEmail    *string   `json:"contact_email"`
	Timezone        *string   `json:"timezone"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toUserView(u *domain.User) userView {
	return userView{
		ID:              u.ID,
		Personalisation: u.Personalisation,
		ContactName:     u.ContactName,
		ContactEmail:    u.ContactEmail,
		Timezone:        u.Timezone,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := h.svc.CreateDiscordUser(r.Context(), user.CreateDiscordUserInput{
		DiscordID:       req.DiscordID,
		DiscordUsername: req.DiscordUsername,
		Personalisation: req.Personalisation,
		ContactName:     req.ContactName,
		ContactEmail:    req.ContactEmail,
		Timezone:        req.Timezone,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createUserResponse{UserID: id})
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "id: must be a UUID")
		return
	}

	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserView(u))
}

// FindByDiscord handles GET /users?discord_id=.
func (h *UserHandler) FindByDiscord(w http.ResponseWriter, r *http.Request) {
	discordID, err := strconv.ParseInt(r.URL.Query().Get("discord_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "discord_id: must be an integer")
		return
	}

	u, err := h.svc.FindByDiscordID(r.Context(), discordID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserView(u))
}
