// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUserExists signals user name conflict.
	ErrUserExists = errors.New("user exists")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrTeamExists signals team name conflict.
	ErrTeamExists = errors.New("team exists")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrBoardExists signals board name conflict within a team.
	ErrBoardExists = errors.New("board exists")
	// ErrBoardNotFound signals missing board.
	ErrBoardNotFound = errors.New("board not found")
	// ErrTaskExists signals task title conflict within a board.
	ErrTaskExists = errors.New("task exists")
	// ErrTaskNotFound signals missing task.
	ErrTaskNotFound = errors.New("task not found")
	// ErrNotTeamMember signals the acting user does not belong to the board's team.
	ErrNotTeamMember = errors.New("not a team member")
	// ErrAdminRemoval signals an attempt to remove the team admin.
	ErrAdminRemoval = errors.New("admin removal forbidden")
	// ErrBoardClosed signals a write attempt against a non-open board.
	ErrBoardClosed = errors.New("board not open")
	// ErrIncompleteTasks signals board closure while tasks are unfinished.
	ErrIncompleteTasks = errors.New("incomplete tasks")
)
