package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// PostBoardCreate creates an open board for a team.
func (h *Handler) PostBoardCreate(c *fiber.Ctx) error {
	var body struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
		TeamID       string `json:"team_id"`
		CreationTime string `json:"creation_time"`
	}
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.CreateBoard(c.Context(), body.Name, body.Description, body.TeamID, body.CreationTime)
	if err != nil {
		h.log.Errorw("failed to create board", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		ID string `json:"id"`
	}{ID: id})
}

// GetBoardList returns the open boards of a team.
func (h *Handler) GetBoardList(c *fiber.Ctx) error {
	boards, err := h.uc.ListBoards(c.Context(), c.Query("team_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(boards)
}

// PostBoardClose closes a board once all of its tasks are complete.
func (h *Handler) PostBoardClose(c *fiber.Ctx) error {
	if err := h.uc.CloseBoard(c.Context(), c.Params("id")); err != nil {
		h.log.Errorw("failed to close board", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(statusResponse{Status: "Board closed successfully"})
}

// GetBoardExport writes the board's text rendering and returns its location.
func (h *Handler) GetBoardExport(c *fiber.Ctx) error {
	outFile, err := h.uc.ExportBoard(c.Context(), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to export board", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		OutFile string `json:"out_file"`
	}{OutFile: outFile})
}
