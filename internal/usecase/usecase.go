package usecase

import (
	"context"
	"time"

	"project-board-service/internal/repository"
	"project-board-service/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	TeamUsecaseInterface
	BoardUsecaseInterface
	TaskUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, exp domain.Exporter, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, exp, timeout)
}
