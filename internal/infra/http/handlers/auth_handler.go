package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pipetrack/pipetrack/internal/entity"
	"github.com/pipetrack/pipetrack/internal/infra/http/middleware"
	"github.com/pipetrack/pipetrack/internal/infra/session"
	"github.com/pipetrack/pipetrack/internal/usecase"
)

type AuthHandler struct {
	LoginUC  *usecase.LoginUseCase
	Sessions *session.Store
}

func NewAuthHandler(loginUC *usecase.LoginUseCase, sessions *session.Store) *AuthHandler {
	return &AuthHandler{
		LoginUC:  loginUC,
		Sessions: sessions,
	}
}

// userPayload is the wire shape of an account, everywhere a user is returned.
type userPayload struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Avatar         string `json:"avatar"`
	GithubUsername string `json:"githubUsername"`
}

func toUserPayload(u *entity.User) userPayload {
	return userPayload{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Avatar:         u.AvatarURL,
		GithubUsername: u.GitHubLogin,
	}
}

// HandleGitHubLogin (POST /auth/github) simulates the GitHub handshake: the
// body carries only a username, everything else is derived server-side.
func (h *AuthHandler) HandleGitHubLogin(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	out, err := h.LoginUC.Execute(r.Context(), input.Username)
	if err != nil {
		middleware.RecordLogin("failure")
		writeError(w, err)
		return
	}

	middleware.RecordLogin("success")
	if out.Created {
		if out.Seeded {
			middleware.RecordSeededUser()
		} else {
			middleware.RecordSeedFailure()
		}
	}

	token := h.Sessions.Issue(out.User.ID)
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    toUserPayload(out.User),
	})
}

// HandleLogout (POST /auth/logout) revokes the session and expires the cookie.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		h.Sessions.Revoke(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
