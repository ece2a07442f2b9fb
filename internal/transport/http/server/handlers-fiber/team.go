package handlers_fiber

import (
	"net/http"

	"project-board-service/internal/entities"
	"project-board-service/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

type statusResponse struct {
	Status string `json:"status"`
}

// PostTeamCreate creates a team with the admin as its only member.
func (h *Handler) PostTeamCreate(c *fiber.Ctx) error {
	var body struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
		Admin        string `json:"admin"`
		CreationTime string `json:"creation_time"`
	}
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.CreateTeam(c.Context(), body.Name, body.Description, body.Admin, body.CreationTime)
	if err != nil {
		h.log.Errorw("failed to create team", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		ID string `json:"id"`
	}{ID: id})
}

// GetTeamList returns every team. The listing deliberately omits team ids.
func (h *Handler) GetTeamList(c *fiber.Ctx) error {
	teams, err := h.uc.ListTeams(c.Context())
	if err != nil {
		h.log.Errorw("failed to list teams", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToTeamList(teams))
}

// GetTeamDescribe returns one team record.
func (h *Handler) GetTeamDescribe(c *fiber.Ctx) error {
	team, err := h.uc.DescribeTeam(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToTeamView(*team))
}

// PatchTeamUpdate applies optional name/description/admin changes.
func (h *Handler) PatchTeamUpdate(c *fiber.Ctx) error {
	var body struct {
		Team *entities.TeamUpdate `json:"team"`
	}
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.UpdateTeam(c.Context(), c.Params("id"), body.Team); err != nil {
		h.log.Errorw("failed to update team", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(statusResponse{Status: "Team updated successfully"})
}

// PostTeamAddUsers unions a batch of user ids into the member set.
func (h *Handler) PostTeamAddUsers(c *fiber.Ctx) error {
	var body struct {
		Users []string `json:"users"`
	}
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.AddUsersToTeam(c.Context(), c.Params("id"), body.Users); err != nil {
		h.log.Errorw("failed to add team users", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(statusResponse{Status: "Users added successfully"})
}

// PostTeamRemoveUsers removes a batch of user ids from the member set.
func (h *Handler) PostTeamRemoveUsers(c *fiber.Ctx) error {
	var body struct {
		Users []string `json:"users"`
	}
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.RemoveUsersFromTeam(c.Context(), c.Params("id"), body.Users); err != nil {
		h.log.Errorw("failed to remove team users", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(statusResponse{Status: "Users removed successfully"})
}

// GetTeamUsers resolves the team's members against the user registry.
func (h *Handler) GetTeamUsers(c *fiber.Ctx) error {
	members, err := h.uc.ListTeamUsers(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(members)
}
