package handlers_fiber

import (
	"net/http"

	"project-board-service/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// PostTaskAdd creates a task on an open board.
func (h *Handler) PostTaskAdd(c *fiber.Ctx) error {
	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		UserID      string `json:"user_id"`
		BoardID     string `json:"board_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.AddTask(c.Context(), body.Title, body.Description, body.UserID, body.BoardID)
	if err != nil {
		h.log.Errorw("failed to add task", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		ID string `json:"id"`
	}{ID: id})
}

// PatchTaskStatus overwrites the task status.
func (h *Handler) PatchTaskStatus(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.UpdateTaskStatus(c.Context(), c.Params("id"), entities.TaskStatus(body.Status)); err != nil {
		h.log.Errorw("failed to update task status", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(statusResponse{Status: "Task status updated successfully"})
}
