// Package mapper converts between domain models and transport views.
package mapper

import (
	"project-board-service/internal/entities"
)

// UserView is the user listing projection, id included.
type UserView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	CreationTime string `json:"creation_time"`
}

// UserDetail is the describe projection without the id.
type UserDetail struct {
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	CreationTime string `json:"creation_time"`
}

// ToUserList maps user records to listing views.
func ToUserList(users []entities.User) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, UserView{
			ID:           u.ID,
			Name:         u.Name,
			DisplayName:  u.DisplayName,
			CreationTime: u.CreationTime,
		})
	}
	return out
}

// ToUserDetail maps a user record to its describe view.
func ToUserDetail(u entities.User) UserDetail {
	return UserDetail{
		Name:         u.Name,
		DisplayName:  u.DisplayName,
		CreationTime: u.CreationTime,
	}
}

// TeamView is the team projection used by both list and describe. The id is
// omitted from it; the listing has historically never carried ids and the
// describe endpoint addresses the team by id already.
type TeamView struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	CreationTime string `json:"creation_time"`
	Admin        string `json:"admin"`
}

// ToTeamView maps a team record to its view.
func ToTeamView(t entities.Team) TeamView {
	return TeamView{
		Name:         t.Name,
		Description:  t.Description,
		CreationTime: t.CreationTime,
		Admin:        t.Admin,
	}
}

// ToTeamList maps team records to listing views.
func ToTeamList(teams []entities.Team) []TeamView {
	out := make([]TeamView, 0, len(teams))
	for _, t := range teams {
		out = append(out, ToTeamView(t))
	}
	return out
}
