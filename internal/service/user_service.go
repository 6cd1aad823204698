package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/justjelku/wordle-clone/internal/generator"
	"github.com/justjelku/wordle-clone/internal/models"
	"github.com/justjelku/wordle-clone/internal/repository"
	"github.com/justjelku/wordle-clone/internal/security"
	"github.com/justjelku/wordle-clone/internal/validation"
)

// UsernameGenerator produces username suggestions; satisfied by ai.Client.
type UsernameGenerator interface {
	GenerateUsername(ctx context.Context) (string, error)
}

// UserService manages the username-only account model: signup, lookup and
// username suggestion with an AI generator plus a local fallback.
type UserService struct {
	users     repository.UserStore
	generator UsernameGenerator
	tokens    *security.TokenManager
}

// NewUserService creates a new user service. generator may be nil, in which
// case suggestions always come from the local fallback.
func NewUserService(users repository.UserStore, gen UsernameGenerator, tokens *security.TokenManager) *UserService {
	return &UserService{users: users, generator: gen, tokens: tokens}
}

// Signup creates an account for the given username and returns the user with
// a signed player token.
func (s *UserService) Signup(username string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	if err := validation.ValidateUsername(username); err != nil {
		return nil, "", err
	}

	existing, err := s.users.GetUserByUsername(username)
	if err != nil {
		return nil, "", fmt.Errorf("looking up username: %w", err)
	}
	if existing != nil {
		return nil, "", ErrUsernameTaken
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrUsernameTaken
		}
		return nil, "", fmt.Errorf("creating user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("issuing player token: %w", err)
	}
	return user, token, nil
}

// GetByUsername returns the user with the given username.
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	user, err := s.users.GetUserByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("looking up username: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// GetByID returns the user with the given ID.
func (s *UserService) GetByID(id string) (*models.User, error) {
	user, err := s.users.GetUserByID(id)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// SuggestUsername returns a username that is not yet taken, preferring the AI
// generator and falling back to the local one. Suggestions that collide with
// existing accounts are retried a few times.
func (s *UserService) SuggestUsername(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 3; attempt++ {
		candidate, err := s.suggestOnce(ctx)
		if err != nil {
			return "", err
		}
		if validation.ValidateUsername(candidate) != nil {
			continue
		}
		existing, err := s.users.GetUserByUsername(candidate)
		if err != nil {
			return "", fmt.Errorf("checking suggestion: %w", err)
		}
		if existing == nil {
			return candidate, nil
		}
	}
	return "", ErrUsernameTaken
}

func (s *UserService) suggestOnce(ctx context.Context) (string, error) {
	if s.generator != nil {
		candidate, err := s.generator.GenerateUsername(ctx)
		if err == nil {
			return candidate, nil
		}
		log.Printf("AI username generation failed, using local fallback: %v", err)
	}
	return generator.Username()
}
