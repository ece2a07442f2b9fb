// Package entities contains core business entities.
package entities

// MaxTeamUsers caps team membership, counting the admin.
const MaxTeamUsers = 50

// Team aggregates members under a unique team name. The admin is always a
// member of Users.
type Team struct {
	ID           string   `json:"-"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	CreationTime string   `json:"creation_time"`
	Admin        string   `json:"admin"`
	Users        []string `json:"users"`
}

// HasUser reports whether the user id is a member of the team.
func (t Team) HasUser(userID string) bool {
	for _, id := range t.Users {
		if id == userID {
			return true
		}
	}
	return false
}

// TeamUpdate carries optional team mutations; nil fields are left untouched.
type TeamUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Admin       *string `json:"admin"`
}

// TeamMember is the projection returned by the team member listing.
type TeamMember struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}
