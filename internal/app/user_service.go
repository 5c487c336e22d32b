package app

import (
	"fmt"
	"net/mail"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dino-explorer/internal/model"
	"dino-explorer/internal/repository"
)

type UserService struct {
	*Resource[model.User]
	store *repository.Resource[model.User]
	users *repository.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	store := repository.NewResource[model.User](db, "user_id")
	rules := RuleSet{
		{Field: "username", Required: true, MaxLen: 100},
		{Field: "email", Required: true, Email: true, MaxLen: 128},
		{Field: "password", Required: true, MinLen: 6},
		{Field: "role", Enum: []string{model.RoleAdmin, model.RoleUser, ""}},
	}

	svc := &UserService{
		Resource: NewResource(store, rules, "user"),
		store:    store,
		users:    repository.NewUserRepository(db),
	}
	// Raw passwords never reach the store; the change-set carries the
	// bcrypt hash under the password column.
	svc.Resource.beforeSave = func(changeset map[string]any, creating bool) error {
		if raw, ok := changeset["password"].(string); ok {
			hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password failed: %w", err)
			}
			changeset["password"] = string(hash)
		}
		return nil
	}
	return svc
}

// Create shadows the generic path: the password hash and registration date
// live on fields the JSON change-set decoder cannot reach.
func (s *UserService) Create(data map[string]any) (*model.User, error) {
	changeset, err := s.rules.Validate(data, false)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(changeset["password"].(string)), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	role, _ := changeset["role"].(string)
	if role == "" {
		role = model.RoleUser
	}

	user := &model.User{
		Username:         changeset["username"].(string),
		Email:            changeset["email"].(string),
		PasswordHash:     string(hash),
		Role:             role,
		RegistrationDate: time.Now(),
	}
	if err := s.store.Insert(user); err != nil {
		if repository.IsDuplicateEntry(err) {
			return nil, fmt.Errorf("username or email %w", ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByEmail(email string) (*model.User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}
	return user, nil
}

func (s *UserService) GetByUsername(username string) (*model.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	user, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %w", ErrNotFound)
	}
	return user, nil
}
