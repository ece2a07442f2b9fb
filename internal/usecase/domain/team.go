// Package domain contains the registries orchestrating domain logic by team.
package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"project-board-service/internal/entities"

	"github.com/google/uuid"
)

// CreateTeam creates a team with the admin as its only member. The derived
// user→teams index is not rebuilt here; it refreshes on the next membership
// change, so a just-created team's admin is briefly absent from it.
func (u *Usecase) CreateTeam(ctx context.Context, name, description, admin, creationTime string) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	if name == "" {
		return "", fmt.Errorf("%w: team name is required", entities.ErrInvalidArgument)
	}
	if description == "" {
		return "", fmt.Errorf("%w: team description is required", entities.ErrInvalidArgument)
	}
	if admin == "" {
		return "", fmt.Errorf("%w: admin user id is required", entities.ErrInvalidArgument)
	}
	if creationTime == "" {
		return "", fmt.Errorf("%w: creation time is required", entities.ErrInvalidArgument)
	}

	if _, err := u.repo.User(ctx, admin); err != nil {
		return "", err
	}

	if len(name) > entities.MaxNameLen || len(description) > entities.MaxDescriptionLen {
		return "", fmt.Errorf("%w: name or description exceeds character limit", entities.ErrInvalidArgument)
	}

	teams, err := u.repo.Teams(ctx)
	if err != nil {
		return "", err
	}
	for _, existing := range teams {
		if existing.Name == name {
			return "", entities.ErrTeamExists
		}
	}

	id := uuid.NewString()
	if err := u.repo.PutTeam(ctx, entities.Team{
		ID:           id,
		Name:         name,
		Description:  description,
		CreationTime: creationTime,
		Admin:        admin,
		Users:        []string{admin},
	}); err != nil {
		return "", err
	}

	u.log.Infow("team created", "team_id", id, "name", name, "admin", admin)
	return id, nil
}

// ListTeams returns every team record in store order.
func (u *Usecase) ListTeams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.repo.Teams(ctx)
}

// DescribeTeam returns a single team record.
func (u *Usecase) DescribeTeam(ctx context.Context, id string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	if id == "" {
		return nil, fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.Team(ctx, id)
}

// UpdateTeam applies optional name/description/admin changes. An oversized
// name is rejected while an oversized description is silently dropped; the
// asymmetry is inherited behavior and kept on purpose. Promoting a new admin
// joins them to the member set but does not rebuild the derived index.
func (u *Usecase) UpdateTeam(ctx context.Context, id string, update *entities.TeamUpdate) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	if id == "" {
		return fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	if update == nil || (update.Name == nil && update.Description == nil && update.Admin == nil) {
		return fmt.Errorf("%w: team details are required", entities.ErrInvalidArgument)
	}

	team, err := u.repo.Team(ctx, id)
	if err != nil {
		return err
	}

	if update.Name != nil {
		if len(*update.Name) > entities.MaxNameLen {
			return fmt.Errorf("%w: name exceeds character limit", entities.ErrInvalidArgument)
		}
		teams, err := u.repo.Teams(ctx)
		if err != nil {
			return err
		}
		for _, other := range teams {
			if other.ID != id && other.Name == *update.Name {
				return entities.ErrTeamExists
			}
		}
		team.Name = *update.Name
	}

	if update.Description != nil && len(*update.Description) <= entities.MaxDescriptionLen {
		team.Description = *update.Description
	}

	if update.Admin != nil {
		team.Admin = *update.Admin
		if !team.HasUser(*update.Admin) {
			team.Users = append(team.Users, *update.Admin)
		}
	}

	if err := u.repo.PutTeam(ctx, *team); err != nil {
		return err
	}

	u.log.Infow("team updated", "team_id", id)
	return nil
}

// AddUsersToTeam unions the batch into the member set. The batch and the
// resulting membership are both capped at 50; a breach rejects the whole
// call with no partial add.
func (u *Usecase) AddUsersToTeam(ctx context.Context, id string, userIDs []string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	if id == "" {
		return fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	if len(userIDs) == 0 {
		return fmt.Errorf("%w: user ids are required", entities.ErrInvalidArgument)
	}

	team, err := u.repo.Team(ctx, id)
	if err != nil {
		return err
	}

	if len(userIDs) > entities.MaxTeamUsers {
		return fmt.Errorf("%w: cannot add more than 50 users to a team", entities.ErrInvalidArgument)
	}

	members := make(map[string]struct{}, len(team.Users)+len(userIDs))
	for _, uid := range team.Users {
		members[uid] = struct{}{}
	}
	for _, uid := range userIDs {
		members[uid] = struct{}{}
	}
	if len(members) > entities.MaxTeamUsers {
		return fmt.Errorf("%w: total number of users in a team cannot exceed 50", entities.ErrInvalidArgument)
	}

	team.Users = sortedSet(members)
	if err := u.repo.PutTeam(ctx, *team); err != nil {
		return err
	}

	u.log.Infow("team members added", "team_id", id, "members", len(team.Users))
	return u.rebuildMembershipIndex(ctx)
}

// RemoveUsersFromTeam removes the batch from the member set. The admin may
// never be removed; if the admin id appears anywhere in the batch the whole
// call fails and nothing is removed.
func (u *Usecase) RemoveUsersFromTeam(ctx context.Context, id string, userIDs []string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	if id == "" {
		return fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	if len(userIDs) == 0 {
		return fmt.Errorf("%w: user ids are required", entities.ErrInvalidArgument)
	}

	team, err := u.repo.Team(ctx, id)
	if err != nil {
		return err
	}

	remove := make(map[string]struct{}, len(userIDs))
	for _, uid := range userIDs {
		remove[uid] = struct{}{}
	}
	if _, ok := remove[team.Admin]; ok {
		return entities.ErrAdminRemoval
	}

	members := make(map[string]struct{}, len(team.Users))
	for _, uid := range team.Users {
		if _, ok := remove[uid]; !ok {
			members[uid] = struct{}{}
		}
	}

	team.Users = sortedSet(members)
	if err := u.repo.PutTeam(ctx, *team); err != nil {
		return err
	}

	u.log.Infow("team members removed", "team_id", id, "members", len(team.Users))
	return u.rebuildMembershipIndex(ctx)
}

// ListTeamUsers resolves each member against the user registry. Member ids
// that no longer resolve are skipped rather than failing the listing.
func (u *Usecase) ListTeamUsers(ctx context.Context, id string) ([]entities.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	u.mu.Lock()
	defer u.mu.Unlock()

	if id == "" {
		return nil, fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}

	team, err := u.repo.Team(ctx, id)
	if err != nil {
		return nil, err
	}

	members := make([]entities.TeamMember, 0, len(team.Users))
	for _, uid := range team.Users {
		user, err := u.repo.User(ctx, uid)
		if err != nil {
			if errors.Is(err, entities.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		members = append(members, entities.TeamMember{
			ID:          user.ID,
			Name:        user.Name,
			DisplayName: user.DisplayName,
		})
	}
	return members, nil
}

// rebuildMembershipIndex recomputes the derived user→teams mapping from the
// authoritative team records and overwrites the index wholesale.
func (u *Usecase) rebuildMembershipIndex(ctx context.Context) error {
	teams, err := u.repo.Teams(ctx)
	if err != nil {
		return err
	}

	mapping := make(map[string][]string)
	for _, team := range teams {
		for _, uid := range team.Users {
			mapping[uid] = append(mapping[uid], team.ID)
		}
	}
	return u.repo.ReplaceUserTeams(ctx, mapping)
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
