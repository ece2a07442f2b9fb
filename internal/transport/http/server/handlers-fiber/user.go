package handlers_fiber

import (
	"net/http"

	"project-board-service/internal/entities"
	"project-board-service/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostUserCreate registers a new user.
func (h *Handler) PostUserCreate(c *fiber.Ctx) error {
	var body struct {
		Name         string `json:"name"`
		DisplayName  string `json:"display_name"`
		CreationTime string `json:"creation_time"`
	}
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.CreateUser(c.Context(), body.Name, body.DisplayName, body.CreationTime)
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		ID string `json:"id"`
	}{ID: id})
}

// GetUserList returns every user record.
func (h *Handler) GetUserList(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToUserList(users))
}

// GetUserDescribe returns one user record.
func (h *Handler) GetUserDescribe(c *fiber.Ctx) error {
	user, err := h.uc.DescribeUser(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToUserDetail(*user))
}

// PatchUserUpdate overwrites the user's display name.
func (h *Handler) PatchUserUpdate(c *fiber.Ctx) error {
	var body struct {
		User *entities.UserUpdate `json:"user"`
	}
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid body"})
	}

	user, err := h.uc.UpdateUser(c.Context(), c.Params("id"), body.User)
	if err != nil {
		h.log.Errorw("failed to update user", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		DisplayName  string `json:"display_name"`
		CreationTime string `json:"creation_time"`
	}{ID: user.ID, Name: user.Name, DisplayName: user.DisplayName, CreationTime: user.CreationTime})
}
