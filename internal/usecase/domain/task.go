// Package domain contains the registries orchestrating domain logic by task.
package domain

import (
	"context"
	"fmt"
	"time"

	"project-board-service/internal/entities"

	"github.com/google/uuid"
)

// AddTask creates a task on an open board. The creator must belong to the
// board's team according to the derived membership index; a missing or stale
// index entry fails the check rather than letting the write through. Task
// creation time is stamped by the server, unlike boards where callers supply
// it.
func (u *Usecase) AddTask(ctx context.Context, title, description, userID, boardID string) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	if title == "" {
		return "", fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	if userID == "" {
		return "", fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	if boardID == "" {
		return "", fmt.Errorf("%w: board id is required", entities.ErrInvalidArgument)
	}
	if len(title) > entities.MaxNameLen {
		return "", fmt.Errorf("%w: title exceeds character limit of 64", entities.ErrInvalidArgument)
	}
	if len(description) > entities.MaxDescriptionLen {
		return "", fmt.Errorf("%w: description exceeds character limit of 128", entities.ErrInvalidArgument)
	}

	board, err := u.repo.Board(ctx, boardID)
	if err != nil {
		return "", err
	}

	teamIDs, err := u.repo.UserTeams(ctx, userID)
	if err != nil {
		return "", err
	}
	member := false
	for _, teamID := range teamIDs {
		if teamID == board.TeamID {
			member = true
			break
		}
	}
	if !member {
		return "", entities.ErrNotTeamMember
	}

	if board.Status != entities.BoardOpen {
		return "", entities.ErrBoardClosed
	}

	tasks, err := u.repo.Tasks(ctx)
	if err != nil {
		return "", err
	}
	for _, existing := range tasks {
		if existing.BoardID == boardID && existing.Title == title {
			return "", entities.ErrTaskExists
		}
	}

	id := uuid.NewString()
	if err := u.repo.PutTask(ctx, entities.Task{
		ID:           id,
		Title:        title,
		Description:  description,
		UserID:       userID,
		BoardID:      boardID,
		CreationTime: time.Now().Format(time.RFC3339),
		Status:       entities.TaskOpen,
	}); err != nil {
		return "", err
	}

	board.TaskIDs = append(board.TaskIDs, id)
	if err := u.repo.PutBoard(ctx, *board); err != nil {
		return "", err
	}

	u.log.Infow("task added", "task_id", id, "board_id", boardID, "user_id", userID)
	return id, nil
}

// UpdateTaskStatus overwrites the task status. Any of the three states may
// be set from any other.
func (u *Usecase) UpdateTaskStatus(ctx context.Context, id string, status entities.TaskStatus) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	if id == "" {
		return fmt.Errorf("%w: task id is required", entities.ErrInvalidArgument)
	}

	task, err := u.repo.Task(ctx, id)
	if err != nil {
		return err
	}

	if !entities.ValidTaskStatus(status) {
		return fmt.Errorf("%w: invalid status", entities.ErrInvalidArgument)
	}

	task.Status = status
	if err := u.repo.PutTask(ctx, *task); err != nil {
		return err
	}

	u.log.Infow("task status updated", "task_id", id, "status", status)
	return nil
}
