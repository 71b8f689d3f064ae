package services

import (
	"context"
	"fmt"

	"event-media-backend/internal/models"
	"event-media-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the persistence surface the user and auth services need.
// *repository.UserRepository implements it.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, update repository.UserUpdate) (*models.User, error)
}

// CreateUserInput carries the fields accepted on signup
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserInput carries the fields accepted on update. Nil fields
// are left unchanged.
type UpdateUserInput struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// UserService handles user-related business logic
type UserService struct {
	users UserStore
}

// NewUserService creates a new user service
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Create persists a new user with a hashed password. The role defaults
// to "user" when absent.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = models.DefaultRole
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns all users
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

// Get returns the user with the given hex id
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return s.users.GetByID(ctx, oid)
}

// Update replaces the provided fields of a user. A provided password
// is re-hashed before storage.
func (s *UserService) Update(ctx context.Context, input UpdateUserInput) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	update := repository.UserUpdate{
		Name:  input.Name,
		Email: input.Email,
		Role:  input.Role,
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		update.Password = &hashed
	}

	return s.users.Update(ctx, oid, update)
}
