package handlers_fiber

import (
	"errors"
	"net/http"

	"project-board-service/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the single error shape every operation returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound):
		status = http.StatusNotFound
		msg = "User not found"
	case errors.Is(err, entities.ErrTeamNotFound):
		status = http.StatusNotFound
		msg = "Team not found"
	case errors.Is(err, entities.ErrBoardNotFound):
		status = http.StatusNotFound
		msg = "Board not found"
	case errors.Is(err, entities.ErrTaskNotFound):
		status = http.StatusNotFound
		msg = "Task not found"
	case errors.Is(err, entities.ErrUserExists):
		status = http.StatusConflict
		msg = "User name must be unique"
	case errors.Is(err, entities.ErrTeamExists):
		status = http.StatusConflict
		msg = "Team name must be unique"
	case errors.Is(err, entities.ErrBoardExists):
		status = http.StatusConflict
		msg = "Board name must be unique for the team"
	case errors.Is(err, entities.ErrTaskExists):
		status = http.StatusConflict
		msg = "Task title must be unique for the board"
	case errors.Is(err, entities.ErrNotTeamMember):
		status = http.StatusForbidden
		msg = "User is not a member of the board's team"
	case errors.Is(err, entities.ErrAdminRemoval):
		status = http.StatusConflict
		msg = "Admin cannot be removed from the team"
	case errors.Is(err, entities.ErrBoardClosed):
		status = http.StatusConflict
		msg = "Can only add tasks to an open board"
	case errors.Is(err, entities.ErrIncompleteTasks):
		status = http.StatusConflict
		msg = "Cannot close board with incomplete tasks"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(ErrorResponse{Error: msg})
}
