package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/andrewouko/umoja-informatics/internal/logger"
	"github.com/andrewouko/umoja-informatics/internal/model"
	"github.com/andrewouko/umoja-informatics/internal/query"
	"github.com/andrewouko/umoja-informatics/internal/validator"
)

// UserStore executes built statements against the users table.
type UserStore interface {
	Query(ctx context.Context, stmt query.Statement) ([]model.User, error)
	Exec(ctx context.Context, stmt query.Statement) (int64, error)
}

// User implements the user CRUD operations.
type User struct {
	store  UserStore
	logger *logger.Logger
}

func NewUser(store UserStore, logger *logger.Logger) *User {
	return &User{
		store:  store,
		logger: logger,
	}
}

// FindUsers selects users by id, by filter, or all of them.
// Supplying both an id and a filter fails before any statement runs.
func (s *User) FindUsers(ctx context.Context, params query.SelectParams) ([]model.User, error) {
	stmt, err := query.Select(params)
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	users, err := s.store.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}

	return users, nil
}

func (s *User) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.FindUsers(ctx, query.SelectParams{})
}

func (s *User) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	users, err := s.FindUsers(ctx, query.SelectParams{ID: &id})
	if err != nil {
		return model.User{}, err
	}
	if len(users) == 0 {
		return model.User{}, model.ErrUserNotFound()
	}

	return users[0], nil
}

func (s *User) CreateUser(ctx context.Context, payload model.UserPayload) (model.User, error) {
	if msg := validator.ValidateUserPayload(payload); msg != "" {
		return model.User{}, model.NewValidationError(msg)
	}

	taken, err := s.emailTaken(ctx, payload.EmailValue(), uuid.Nil)
	if err != nil {
		return model.User{}, err
	}
	if taken {
		s.logger.Info("User service: email already registered", "email", payload.EmailValue())
		return model.User{}, model.ErrEmailTaken(nil)
	}

	user := model.User{
		ID:    uuid.New(),
		Name:  payload.NameValue(),
		Email: payload.EmailValue(),
		Role:  model.Role(payload.RoleValue()),
	}

	created, err := s.writeOne(ctx, query.Insert(user))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created", "user_id", created.ID)

	return created, nil
}

func (s *User) UpdateUser(ctx context.Context, id uuid.UUID, payload model.UserPayload) (model.User, error) {
	if msg := validator.ValidateRole(payload.RoleValue()); msg != "" {
		return model.User{}, model.NewValidationError(msg)
	}

	if email := payload.EmailValue(); email != "" {
		taken, err := s.emailTaken(ctx, email, id)
		if err != nil {
			return model.User{}, err
		}
		if taken {
			s.logger.Info("User service: email already registered", "email", email, "user_id", id)
			return model.User{}, model.ErrEmailTaken(nil)
		}
	}

	stmt, err := query.Update(id, query.Assignments(payload))
	if errors.Is(err, query.ErrNoAssignments) {
		return model.User{}, model.NewValidationError(model.MsgNoFieldsToUpdate)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to build update: %w", err)
	}

	updated, err := s.writeOne(ctx, stmt)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated", "user_id", id)

	return updated, nil
}

func (s *User) DeleteUser(ctx context.Context, id uuid.UUID) error {
	n, err := s.store.Exec(ctx, query.Delete(id))
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n == 0 {
		return model.ErrUserNotFound()
	}

	s.logger.Info("User service: user deleted", "user_id", id)

	return nil
}

// emailTaken reports whether a user other than self already holds email.
func (s *User) emailTaken(ctx context.Context, email string, self uuid.UUID) (bool, error) {
	existing, err := s.FindUsers(ctx, query.SelectParams{Filter: &model.UserFilter{Email: email}})
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	for _, u := range existing {
		if u.ID != self {
			return true, nil
		}
	}
	return false, nil
}

// writeOne runs a RETURNING statement that affects at most one row.
func (s *User) writeOne(ctx context.Context, stmt query.Statement) (model.User, error) {
	rows, err := s.store.Query(ctx, stmt)
	if errors.Is(err, model.ErrDuplicate) {
		return model.User{}, model.ErrEmailTaken(err)
	}
	if err != nil {
		return model.User{}, err
	}
	if len(rows) == 0 {
		return model.User{}, model.ErrUserNotFound()
	}

	return rows[0], nil
}
