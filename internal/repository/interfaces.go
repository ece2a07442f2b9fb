// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"project-board-service/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes the user record store.
type UserInterface interface {
	PutUser(ctx context.Context, user entities.User) error
	User(ctx context.Context, id string) (*entities.User, error)
	Users(ctx context.Context) ([]entities.User, error)
}

// TeamInterface exposes the team record store.
type TeamInterface interface {
	PutTeam(ctx context.Context, team entities.Team) error
	Team(ctx context.Context, id string) (*entities.Team, error)
	Teams(ctx context.Context) ([]entities.Team, error)
}

// BoardInterface exposes the board record store.
type BoardInterface interface {
	PutBoard(ctx context.Context, board entities.Board) error
	Board(ctx context.Context, id string) (*entities.Board, error)
	Boards(ctx context.Context) ([]entities.Board, error)
}

// TaskInterface exposes the task record store.
type TaskInterface interface {
	PutTask(ctx context.Context, task entities.Task) error
	Task(ctx context.Context, id string) (*entities.Task, error)
	Tasks(ctx context.Context) ([]entities.Task, error)
}

// MembershipInterface exposes the derived user→teams index. The index is
// rebuilt wholesale by membership-changing operations and read as a
// non-authoritative authorization lookup.
type MembershipInterface interface {
	ReplaceUserTeams(ctx context.Context, mapping map[string][]string) error
	UserTeams(ctx context.Context, userID string) ([]string, error)
}
