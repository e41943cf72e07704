package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/pipetrack/pipetrack/internal/entity"
)

type LoginUseCase struct {
	Users  UserRepository
	Seeder *Seeder
	Email  EmailService
}

func NewLoginUseCase(users UserRepository, seeder *Seeder, email EmailService) *LoginUseCase {
	return &LoginUseCase{
		Users:  users,
		Seeder: seeder,
		Email:  email,
	}
}

type LoginOutput struct {
	User    *entity.User
	Created bool // account did not exist before this login
	Seeded  bool // sample data was written for the new account
}

// Execute resolves a simulated GitHub login to an account, creating and
// seeding it on first sight. Seeding and the welcome mail are non-fatal: by
// the time they run the login has already succeeded.
func (uc *LoginUseCase) Execute(ctx context.Context, username string) (*LoginOutput, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &AuthError{Message: "username is required"}
	}

	user, err := uc.Users.FindByUsername(ctx, username)
	if err == nil {
		return &LoginOutput{User: user}, nil
	}
	if !errors.Is(err, entity.ErrUserNotFound) {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to look up user: " + err.Error(),
		}
	}

	user, err = entity.NewUser(username)
	if err != nil {
		return nil, &AuthError{Message: err.Error()}
	}

	if err := uc.Users.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrUsernameTaken) {
			// Lost a race with a concurrent first login for the same name.
			user, err = uc.Users.FindByUsername(ctx, username)
			if err != nil {
				return nil, &TechnicalError{
					Code:    "DATABASE_ERROR",
					Message: "failed to look up user: " + err.Error(),
				}
			}
			return &LoginOutput{User: user}, nil
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to create user: " + err.Error(),
		}
	}

	out := &LoginOutput{User: user, Created: true}

	if err := uc.Seeder.Run(ctx, user.ID); err != nil {
		log.Printf("sample data seeding failed for user %s: %v", user.ID, err)
	} else {
		out.Seeded = true
	}

	if uc.Email != nil {
		go func(to, name string) {
			if err := uc.Email.SendWelcome(to, name); err != nil {
				log.Printf("welcome email to %s failed: %v", to, err)
			}
		}(user.Email, user.Name)
	}

	return out, nil
}
