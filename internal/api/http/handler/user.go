package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/andrewouko/umoja-informatics/internal/logger"
	"github.com/andrewouko/umoja-informatics/internal/model"
)

// UserService defines business operations for user management.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (model.User, error)
	CreateUser(ctx context.Context, payload model.UserPayload) (model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, payload model.UserPayload) (model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type listUsersResponse struct {
	Status int          `json:"status"`
	Count  int          `json:"count"`
	Data   []model.User `json:"data"`
}

type getUserResponse struct {
	Status int        `json:"status"`
	Data   model.User `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// User handles HTTP endpoints for users. Failures are returned to the
// app's error handler.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers handles GET /users.
func (h *User) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	if users == nil {
		users = []model.User{}
	}

	return c.Status(fiber.StatusOK).JSON(listUsersResponse{
		Status: fiber.StatusOK,
		Count:  len(users),
		Data:   users,
	})
}

// GetUser handles GET /users/:id.
func (h *User) GetUser(c *fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(getUserResponse{
		Status: fiber.StatusOK,
		Data:   user,
	})
}

// CreateUser handles POST /users.
func (h *User) CreateUser(c *fiber.Ctx) error {
	payload, err := decodePayload(c)
	if err != nil {
		return err
	}

	user, err := h.userService.CreateUser(c.UserContext(), payload)
	if err != nil {
		return err
	}

	h.logger.Debug("User handler: user created", "user_id", user.ID)

	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser handles PUT and PATCH /users/:id.
func (h *User) UpdateUser(c *fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	payload, err := decodePayload(c)
	if err != nil {
		return err
	}

	user, err := h.userService.UpdateUser(c.UserContext(), id, payload)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// DeleteUser handles DELETE /users/:id.
func (h *User) DeleteUser(c *fiber.Ctx) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.UserContext(), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(messageResponse{Message: model.MsgUserDeleted})
}

// userID reads the :id path parameter. A value that is not a UUID cannot
// name any user and is reported as not found.
func userID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Params("id")
	if raw == "" {
		return uuid.Nil, model.NewValidationError(model.MsgMissingID)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.ErrUserNotFound()
	}

	return id, nil
}

// decodePayload decodes the JSON body. An empty body is an empty payload.
func decodePayload(c *fiber.Ctx) (model.UserPayload, error) {
	var payload model.UserPayload

	body := c.Body()
	if len(body) == 0 {
		return payload, nil
	}

	if err := c.App().Config().JSONDecoder(body, &payload); err != nil {
		return model.UserPayload{}, &model.Error{
			Kind:    model.KindValidation,
			Message: model.MsgInvalidPayload,
			Err:     err,
		}
	}

	return payload, nil
}
