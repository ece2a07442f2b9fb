// Package entities contains core business entities.
package entities

// BoardStatus enumerates board lifecycle states.
type BoardStatus string

const (
	// BoardOpen marks a board as accepting tasks.
	BoardOpen BoardStatus = "OPEN"
	// BoardClosed marks a board as closed; the transition is one-way.
	BoardClosed BoardStatus = "CLOSED"
)

// Board is a project board owned by a team. Name is unique within the team,
// TaskIDs is append-only, and EndTime is stamped only on close.
type Board struct {
	ID           string      `json:"-"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	TeamID       string      `json:"team_id"`
	CreationTime string      `json:"creation_time"`
	Status       BoardStatus `json:"status"`
	TaskIDs      []string    `json:"tasks"`
	EndTime      string      `json:"end_time,omitempty"`
}

// BoardSummary is the compact projection returned by board listings.
type BoardSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
