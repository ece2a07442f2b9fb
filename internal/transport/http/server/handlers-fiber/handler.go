// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"project-board-service/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the registry operations over HTTP using the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}

// Register binds every route on the fiber app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/users", h.PostUserCreate)
	app.Get("/users", h.GetUserList)
	app.Get("/users/:id", h.GetUserDescribe)
	app.Patch("/users/:id", h.PatchUserUpdate)

	app.Post("/teams", h.PostTeamCreate)
	app.Get("/teams", h.GetTeamList)
	app.Get("/teams/:id", h.GetTeamDescribe)
	app.Patch("/teams/:id", h.PatchTeamUpdate)
	app.Post("/teams/:id/users/add", h.PostTeamAddUsers)
	app.Post("/teams/:id/users/remove", h.PostTeamRemoveUsers)
	app.Get("/teams/:id/users", h.GetTeamUsers)

	app.Post("/boards", h.PostBoardCreate)
	app.Get("/boards", h.GetBoardList)
	app.Post("/boards/:id/close", h.PostBoardClose)
	app.Get("/boards/:id/export", h.GetBoardExport)

	app.Post("/tasks", h.PostTaskAdd)
	app.Patch("/tasks/:id/status", h.PatchTaskStatus)
}
