package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-board-service/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorValidation(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "invalid argument: title is required", body.Error)
}

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{
			name:     "user_not_found",
			err:      entities.ErrUserNotFound,
			status:   http.StatusNotFound,
			expected: "User not found",
		},
		{
			name:     "team_not_found",
			err:      entities.ErrTeamNotFound,
			status:   http.StatusNotFound,
			expected: "Team not found",
		},
		{
			name:     "board_not_found",
			err:      entities.ErrBoardNotFound,
			status:   http.StatusNotFound,
			expected: "Board not found",
		},
		{
			name:     "task_not_found",
			err:      entities.ErrTaskNotFound,
			status:   http.StatusNotFound,
			expected: "Task not found",
		},
		{
			name:     "user_conflict",
			err:      entities.ErrUserExists,
			status:   http.StatusConflict,
			expected: "User name must be unique",
		},
		{
			name:     "team_conflict",
			err:      entities.ErrTeamExists,
			status:   http.StatusConflict,
			expected: "Team name must be unique",
		},
		{
			name:     "board_conflict",
			err:      entities.ErrBoardExists,
			status:   http.StatusConflict,
			expected: "Board name must be unique for the team",
		},
		{
			name:     "task_conflict",
			err:      entities.ErrTaskExists,
			status:   http.StatusConflict,
			expected: "Task title must be unique for the board",
		},
		{
			name:     "not_member",
			err:      entities.ErrNotTeamMember,
			status:   http.StatusForbidden,
			expected: "User is not a member of the board's team",
		},
		{
			name:     "admin_removal",
			err:      entities.ErrAdminRemoval,
			status:   http.StatusConflict,
			expected: "Admin cannot be removed from the team",
		},
		{
			name:     "board_closed",
			err:      entities.ErrBoardClosed,
			status:   http.StatusConflict,
			expected: "Can only add tasks to an open board",
		},
		{
			name:     "incomplete_tasks",
			err:      entities.ErrIncompleteTasks,
			status:   http.StatusConflict,
			expected: "Cannot close board with incomplete tasks",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.expected, body.Error)
		})
	}
}
