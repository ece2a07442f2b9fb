// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"project-board-service/config"
	"project-board-service/internal/repository/file"
	"project-board-service/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	UserInterface
	TeamInterface
	BoardInterface
	TaskInterface
	MembershipInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "file":
		return file.New(log, cfg), nil
	case "postgres":
		return postgres.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
