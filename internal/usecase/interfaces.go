package usecase

import (
	"context"

	"project-board-service/internal/entities"
)

// UserUsecaseInterface abstracts user registry operations for the delivery layer.
type UserUsecaseInterface interface {
	CreateUser(ctx context.Context, name, displayName, creationTime string) (string, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	DescribeUser(ctx context.Context, id string) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, update *entities.UserUpdate) (*entities.User, error)
}

// TeamUsecaseInterface abstracts team registry operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, name, description, admin, creationTime string) (string, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
	DescribeTeam(ctx context.Context, id string) (*entities.Team, error)
	UpdateTeam(ctx context.Context, id string, update *entities.TeamUpdate) error
	AddUsersToTeam(ctx context.Context, id string, userIDs []string) error
	RemoveUsersFromTeam(ctx context.Context, id string, userIDs []string) error
	ListTeamUsers(ctx context.Context, id string) ([]entities.TeamMember, error)
}

// BoardUsecaseInterface abstracts board registry operations.
type BoardUsecaseInterface interface {
	CreateBoard(ctx context.Context, name, description, teamID, creationTime string) (string, error)
	CloseBoard(ctx context.Context, id string) error
	ListBoards(ctx context.Context, teamID string) ([]entities.BoardSummary, error)
	ExportBoard(ctx context.Context, id string) (string, error)
}

// TaskUsecaseInterface abstracts task registry operations.
type TaskUsecaseInterface interface {
	AddTask(ctx context.Context, title, description, userID, boardID string) (string, error)
	UpdateTaskStatus(ctx context.Context, id string, status entities.TaskStatus) error
}
