package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrUserNotFound  = errors.New("user not found")
)

type User struct {
	ID          string    `json:"id"`
	GitHubLogin string    `json:"githubUsername"`
	Username    string    `json:"username"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	AvatarURL   string    `json:"avatar"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewUser builds an account from a GitHub login. Profile fields are derived
// because the simulated handshake only carries the username.
func NewUser(githubLogin string) (*User, error) {
	u := &User{
		ID:          uuid.New().String(),
		GitHubLogin: githubLogin,
		Username:    githubLogin,
		Name:        githubLogin,
		Email:       fmt.Sprintf("%s@users.noreply.github.com", githubLogin),
		AvatarURL:   fmt.Sprintf("https://github.com/%s.png", githubLogin),
		CreatedAt:   time.Now(),
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u.Username == "" {
		return errors.New("username is required")
	}
	return nil
}
