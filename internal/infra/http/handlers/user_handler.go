package handlers

import (
	"net/http"

	"github.com/pipetrack/pipetrack/internal/infra/http/middleware"
	"github.com/pipetrack/pipetrack/internal/usecase"
)

type UserHandler struct {
	Users usecase.UserRepository
}

func NewUserHandler(users usecase.UserRepository) *UserHandler {
	return &UserHandler{Users: users}
}

// HandleGetUser (GET /api/user) returns the session user's profile.
func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.FindByID(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserPayload(user))
}
