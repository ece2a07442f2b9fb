// Package domain contains the registries orchestrating domain logic by board.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"project-board-service/internal/entities"

	"github.com/google/uuid"
)

// CreateBoard creates an open board for a team. The board name must be
// unique among the team's boards.
func (u *Usecase) CreateBoard(ctx context.Context, name, description, teamID, creationTime string) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	if name == "" {
		return "", fmt.Errorf("%w: board name is required", entities.ErrInvalidArgument)
	}
	if teamID == "" {
		return "", fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	if creationTime == "" {
		return "", fmt.Errorf("%w: creation time is required", entities.ErrInvalidArgument)
	}
	if len(name) > entities.MaxNameLen || len(description) > entities.MaxDescriptionLen {
		return "", fmt.Errorf("%w: name or description exceeds character limit", entities.ErrInvalidArgument)
	}

	if _, err := u.repo.Team(ctx, teamID); err != nil {
		return "", err
	}

	boards, err := u.repo.Boards(ctx)
	if err != nil {
		return "", err
	}
	for _, existing := range boards {
		if existing.TeamID == teamID && existing.Name == name {
			return "", entities.ErrBoardExists
		}
	}

	id := uuid.NewString()
	if err := u.repo.PutBoard(ctx, entities.Board{
		ID:           id,
		Name:         name,
		Description:  description,
		TeamID:       teamID,
		CreationTime: creationTime,
		Status:       entities.BoardOpen,
		TaskIDs:      []string{},
	}); err != nil {
		return "", err
	}

	u.log.Infow("board created", "board_id", id, "team_id", teamID)
	return id, nil
}

// CloseBoard transitions a board to CLOSED and stamps its end time. The
// transition is refused while any task of the board is not COMPLETE, and it
// is irreversible.
func (u *Usecase) CloseBoard(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	if id == "" {
		return fmt.Errorf("%w: board id is required", entities.ErrInvalidArgument)
	}

	board, err := u.repo.Board(ctx, id)
	if err != nil {
		return err
	}

	tasks, err := u.repo.Tasks(ctx)
	if err != nil {
		return err
	}
	for _, task := range tasks {
		if task.BoardID == id && task.Status != entities.TaskComplete {
			return entities.ErrIncompleteTasks
		}
	}

	board.Status = entities.BoardClosed
	board.EndTime = time.Now().Format(time.RFC3339)
	if err := u.repo.PutBoard(ctx, *board); err != nil {
		return err
	}

	u.log.Infow("board closed", "board_id", id)
	return nil
}

// ListBoards returns the open boards of a team. Closed boards are excluded
// even when the team matches.
func (u *Usecase) ListBoards(ctx context.Context, teamID string) ([]entities.BoardSummary, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}

	boards, err := u.repo.Boards(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.BoardSummary, 0)
	for _, board := range boards {
		if board.TeamID == teamID && board.Status == entities.BoardOpen {
			out = append(out, entities.BoardSummary{ID: board.ID, Name: board.Name})
		}
	}
	return out, nil
}

// ExportBoard renders the board and its tasks as text and writes the
// artifact under a name derived from the board id. Re-exporting an unchanged
// board overwrites the artifact with identical bytes. Task ids that no
// longer resolve are skipped.
func (u *Usecase) ExportBoard(ctx context.Context, id string) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	if id == "" {
		return "", fmt.Errorf("%w: board id is required", entities.ErrInvalidArgument)
	}

	board, err := u.repo.Board(ctx, id)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Board Name: %s\nDescription: %s\nCreation Time: %s\nStatus: %s\n\nTasks:\n",
		board.Name, board.Description, board.CreationTime, board.Status)

	for _, taskID := range board.TaskIDs {
		task, err := u.repo.Task(ctx, taskID)
		if err != nil {
			if errors.Is(err, entities.ErrTaskNotFound) {
				continue
			}
			return "", err
		}
		fmt.Fprintf(&b, "- Title: %s\n  Description: %s\n  User: %s\n  Status: %s\n\n",
			task.Title, task.Description, task.UserID, task.Status)
	}

	outFile, err := u.exp.Write(fmt.Sprintf("board_%s.txt", id), []byte(b.String()))
	if err != nil {
		return "", err
	}

	u.log.Infow("board exported", "board_id", id, "out_file", outFile)
	return outFile, nil
}
