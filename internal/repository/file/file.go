// Package file implements the repository against JSON files on disk.
//
// Each entity family lives in one document (users.json, teams.json,
// boards.json, tasks.json, user_teams.json) shaped as a mapping from id to
// record. Documents are loaded wholesale at startup and rewritten after every
// mutation.
package file

import (
	"context"
	"path/filepath"
	"sort"

	"project-board-service/config"
	"project-board-service/internal/entities"

	"go.uber.org/zap"
)

type collection[T any] struct {
	path string
	recs map[string]T
}

func (c *collection[T]) load() error {
	c.recs = make(map[string]T)
	return readJSONFile(c.path, &c.recs)
}

func (c *collection[T]) put(id string, v T) error {
	c.recs[id] = v
	return writeJSONFile(c.path, c.recs)
}

func sortedIDs[T any](recs map[string]T) []string {
	ids := make([]string, 0, len(recs))
	for id := range recs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// File wraps the on-disk record stores.
type File struct {
	log    *zap.SugaredLogger
	dir    string
	users  collection[entities.User]
	teams  collection[entities.Team]
	boards collection[entities.Board]
	tasks  collection[entities.Task]
	index  collection[[]string]
}

// New creates a file repository instance rooted at the configured data dir.
func New(log *zap.SugaredLogger, cfg *config.Config) *File {
	dir := cfg.Storage.DataDir
	return &File{
		log:    log.Named("repo.file"),
		dir:    dir,
		users:  collection[entities.User]{path: filepath.Join(dir, "users.json")},
		teams:  collection[entities.Team]{path: filepath.Join(dir, "teams.json")},
		boards: collection[entities.Board]{path: filepath.Join(dir, "boards.json")},
		tasks:  collection[entities.Task]{path: filepath.Join(dir, "tasks.json")},
		index:  collection[[]string]{path: filepath.Join(dir, "user_teams.json")},
	}
}

// OnStart loads every record store into memory. Missing files load as empty.
func (f *File) OnStart(_ context.Context) error {
	if err := f.users.load(); err != nil {
		return err
	}
	if err := f.teams.load(); err != nil {
		return err
	}
	if err := f.boards.load(); err != nil {
		return err
	}
	if err := f.tasks.load(); err != nil {
		return err
	}
	if err := f.index.load(); err != nil {
		return err
	}
	f.log.Infow("file stores ready", "dir", f.dir, "users", len(f.users.recs), "teams", len(f.teams.recs), "boards", len(f.boards.recs), "tasks", len(f.tasks.recs))
	return nil
}

// OnStop is a no-op; every mutation is already persisted.
func (f *File) OnStop(_ context.Context) error { return nil }

// PutUser stores a user record and rewrites users.json.
func (f *File) PutUser(_ context.Context, user entities.User) error {
	return f.users.put(user.ID, user)
}

// User fetches a user by id.
func (f *File) User(_ context.Context, id string) (*entities.User, error) {
	u, ok := f.users.recs[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	u.ID = id
	return &u, nil
}

// Users returns all user records ordered by id.
func (f *File) Users(_ context.Context) ([]entities.User, error) {
	out := make([]entities.User, 0, len(f.users.recs))
	for _, id := range sortedIDs(f.users.recs) {
		u := f.users.recs[id]
		u.ID = id
		out = append(out, u)
	}
	return out, nil
}

// PutTeam stores a team record and rewrites teams.json.
func (f *File) PutTeam(_ context.Context, team entities.Team) error {
	return f.teams.put(team.ID, team)
}

// Team fetches a team by id.
func (f *File) Team(_ context.Context, id string) (*entities.Team, error) {
	t, ok := f.teams.recs[id]
	if !ok {
		return nil, entities.ErrTeamNotFound
	}
	t.ID = id
	return &t, nil
}

// Teams returns all team records ordered by id.
func (f *File) Teams(_ context.Context) ([]entities.Team, error) {
	out := make([]entities.Team, 0, len(f.teams.recs))
	for _, id := range sortedIDs(f.teams.recs) {
		t := f.teams.recs[id]
		t.ID = id
		out = append(out, t)
	}
	return out, nil
}

// PutBoard stores a board record and rewrites boards.json.
func (f *File) PutBoard(_ context.Context, board entities.Board) error {
	return f.boards.put(board.ID, board)
}

// Board fetches a board by id.
func (f *File) Board(_ context.Context, id string) (*entities.Board, error) {
	b, ok := f.boards.recs[id]
	if !ok {
		return nil, entities.ErrBoardNotFound
	}
	b.ID = id
	return &b, nil
}

// Boards returns all board records ordered by id.
func (f *File) Boards(_ context.Context) ([]entities.Board, error) {
	out := make([]entities.Board, 0, len(f.boards.recs))
	for _, id := range sortedIDs(f.boards.recs) {
		b := f.boards.recs[id]
		b.ID = id
		out = append(out, b)
	}
	return out, nil
}

// PutTask stores a task record and rewrites tasks.json.
func (f *File) PutTask(_ context.Context, task entities.Task) error {
	return f.tasks.put(task.ID, task)
}

// Task fetches a task by id.
func (f *File) Task(_ context.Context, id string) (*entities.Task, error) {
	t, ok := f.tasks.recs[id]
	if !ok {
		return nil, entities.ErrTaskNotFound
	}
	t.ID = id
	return &t, nil
}

// Tasks returns all task records ordered by id.
func (f *File) Tasks(_ context.Context) ([]entities.Task, error) {
	out := make([]entities.Task, 0, len(f.tasks.recs))
	for _, id := range sortedIDs(f.tasks.recs) {
		t := f.tasks.recs[id]
		t.ID = id
		out = append(out, t)
	}
	return out, nil
}

// ReplaceUserTeams overwrites the derived user→teams index wholesale.
func (f *File) ReplaceUserTeams(_ context.Context, mapping map[string][]string) error {
	f.index.recs = mapping
	return writeJSONFile(f.index.path, f.index.recs)
}

// UserTeams returns the team ids recorded for a user in the derived index.
// An unknown user resolves to an empty list, which fails membership checks.
func (f *File) UserTeams(_ context.Context, userID string) ([]string, error) {
	return f.index.recs[userID], nil
}
