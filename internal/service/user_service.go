package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/applenx/shop-api/internal/model"
	"github.com/applenx/shop-api/internal/repository"
	"github.com/applenx/shop-api/internal/token"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListAdmins(ctx context.Context) ([]model.User, error)
}

// UserService handles registration, login, and user lookups.
type UserService struct {
	store  UserStore
	tokens *token.Manager
}

func NewUserService(store UserStore, tokens *token.Manager) *UserService {
	return &UserService{store: store, tokens: tokens}
}

// Register hashes the password, stores the user, and issues a token.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	u := &model.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsAdmin:      req.IsAdmin,
		Phone:        req.Phone,
		Address:      req.Address,
	}
	if err := s.store.Create(ctx, u); err != nil {
		return nil, "", err
	}

	t, err := s.tokens.Issue(u.ID, u.IsAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return u, t, nil
}

// Login checks credentials and issues a token. A missing user and a wrong
// password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	u, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	t, err := s.tokens.Issue(u.ID, u.IsAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return u, t, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.store.GetByID(ctx, id)
}

func (s *UserService) ListAdmins(ctx context.Context) ([]model.User, error) {
	return s.store.ListAdmins(ctx)
}
