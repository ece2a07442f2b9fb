// Package domain contains the registries orchestrating domain logic by user.
package domain

import (
	"context"
	"fmt"

	"project-board-service/internal/entities"

	"github.com/google/uuid"
)

// CreateUser registers a user with a globally unique name.
func (u *Usecase) CreateUser(ctx context.Context, name, displayName, creationTime string) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	if name == "" || len(name) > entities.MaxNameLen {
		return "", fmt.Errorf("%w: user name must be provided and be at most 64 characters", entities.ErrInvalidArgument)
	}
	if displayName == "" || len(displayName) > entities.MaxNameLen {
		return "", fmt.Errorf("%w: display name must be provided and be at most 64 characters", entities.ErrInvalidArgument)
	}
	if creationTime == "" {
		return "", fmt.Errorf("%w: creation time must be provided", entities.ErrInvalidArgument)
	}

	users, err := u.repo.Users(ctx)
	if err != nil {
		return "", err
	}
	for _, existing := range users {
		if existing.Name == name {
			return "", entities.ErrUserExists
		}
	}

	id := uuid.NewString()
	if err := u.repo.PutUser(ctx, entities.User{
		ID:           id,
		Name:         name,
		DisplayName:  displayName,
		CreationTime: creationTime,
	}); err != nil {
		return "", err
	}

	u.log.Infow("user created", "user_id", id, "name", name)
	return id, nil
}

// ListUsers returns every user record in store order.
func (u *Usecase) ListUsers(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.repo.Users(ctx)
}

// DescribeUser returns a single user record.
func (u *Usecase) DescribeUser(ctx context.Context, id string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	if id == "" {
		return nil, fmt.Errorf("%w: user id must be provided", entities.ErrInvalidArgument)
	}
	return u.repo.User(ctx, id)
}

// UpdateUser overwrites the display name. The name field is immutable and
// any attempt to change it is rejected. An absent or empty display name in
// the update clears the stored field; that matches the historical behavior
// of this operation and callers depend on it.
func (u *Usecase) UpdateUser(ctx context.Context, id string, update *entities.UserUpdate) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	if id == "" {
		return nil, fmt.Errorf("%w: user id must be provided", entities.ErrInvalidArgument)
	}
	if update == nil || (update.Name == nil && update.DisplayName == nil) {
		return nil, fmt.Errorf("%w: user data must be provided", entities.ErrInvalidArgument)
	}

	user, err := u.repo.User(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		return nil, fmt.Errorf("%w: user name cannot be updated", entities.ErrInvalidArgument)
	}

	displayName := ""
	if update.DisplayName != nil {
		displayName = *update.DisplayName
	}
	if len(displayName) > entities.MaxNameLen {
		return nil, fmt.Errorf("%w: display name must be at most 64 characters", entities.ErrInvalidArgument)
	}

	user.DisplayName = displayName
	if err := u.repo.PutUser(ctx, *user); err != nil {
		return nil, err
	}

	u.log.Infow("user updated", "user_id", id)
	return user, nil
}
