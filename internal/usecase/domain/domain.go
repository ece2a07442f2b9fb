package domain

import (
	"context"
	"sync"
	"time"

	"project-board-service/internal/repository"

	"go.uber.org/zap"
)

// Exporter writes board export artifacts and returns their location.
type Exporter interface {
	Write(name string, data []byte) (string, error)
}

// Usecase struct implements all registry interfaces. The mutex is shared by
// every registry: team and board operations cross-read each other's records,
// so a single boundary keeps read-compute-persist atomic per operation.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	exp     Exporter
	timeout time.Duration
	mu      sync.Mutex
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	exp Exporter,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		exp:     exp,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
