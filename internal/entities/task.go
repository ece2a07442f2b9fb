// Package entities contains core business entities.
package entities

// TaskStatus enumerates task states; transitions between them are free.
type TaskStatus string

const (
	// TaskOpen marks a task as not started.
	TaskOpen TaskStatus = "OPEN"
	// TaskInProgress marks a task as being worked on.
	TaskInProgress TaskStatus = "IN_PROGRESS"
	// TaskComplete marks a task as done.
	TaskComplete TaskStatus = "COMPLETE"
)

// ValidTaskStatus reports whether s is one of the known task states.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskOpen, TaskInProgress, TaskComplete:
		return true
	}
	return false
}

// Task belongs to a board; the title is unique within that board and the
// creator must be a member of the board's team. CreationTime is stamped by
// the server, unlike boards where callers supply it.
type Task struct {
	ID           string     `json:"-"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	UserID       string     `json:"user_id"`
	BoardID      string     `json:"board_id"`
	CreationTime string     `json:"creation_time"`
	Status       TaskStatus `json:"status"`
}
