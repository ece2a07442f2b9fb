package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"project-board-service/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	upsertDocQuery = `INSERT INTO %s(id, doc) VALUES($1, $2) ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc`
	selectDocQuery = `SELECT doc FROM %s WHERE id=$1`
	listDocsQuery  = `SELECT id, doc FROM %s ORDER BY id`

	replaceIndexDelete = `DELETE FROM user_teams`
	replaceIndexInsert = `INSERT INTO user_teams(user_id, team_ids) VALUES($1, $2)`
	selectIndexQuery   = `SELECT team_ids FROM user_teams WHERE user_id=$1`
)

func (p *Postgres) putDoc(ctx context.Context, table, id string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s doc: %w", table, err)
	}
	if _, err := p.db.Exec(ctx, fmt.Sprintf(upsertDocQuery, table), id, doc); err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	return nil
}

func (p *Postgres) getDoc(ctx context.Context, table, id string, out any, notFound error) error {
	var doc []byte
	if err := p.db.QueryRow(ctx, fmt.Sprintf(selectDocQuery, table), id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notFound
		}
		return fmt.Errorf("get %s: %w", table, err)
	}
	if err := json.Unmarshal(doc, out); err != nil {
		return fmt.Errorf("decode %s doc: %w", table, err)
	}
	return nil
}

func listDocs[T any](ctx context.Context, p *Postgres, table string, setID func(*T, string)) ([]T, error) {
	rows, err := p.db.Query(ctx, fmt.Sprintf(listDocsQuery, table))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var (
			id  string
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		var v T
		if err := json.Unmarshal(doc, &v); err != nil {
			return nil, fmt.Errorf("decode %s doc: %w", table, err)
		}
		setID(&v, id)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return out, nil
}

// PutUser upserts a user document.
func (p *Postgres) PutUser(ctx context.Context, user entities.User) error {
	return p.putDoc(ctx, "users", user.ID, user)
}

// User fetches a user by id.
func (p *Postgres) User(ctx context.Context, id string) (*entities.User, error) {
	var u entities.User
	if err := p.getDoc(ctx, "users", id, &u, entities.ErrUserNotFound); err != nil {
		return nil, err
	}
	u.ID = id
	return &u, nil
}

// Users returns all user records ordered by id.
func (p *Postgres) Users(ctx context.Context) ([]entities.User, error) {
	return listDocs(ctx, p, "users", func(u *entities.User, id string) { u.ID = id })
}

// PutTeam upserts a team document.
func (p *Postgres) PutTeam(ctx context.Context, team entities.Team) error {
	return p.putDoc(ctx, "teams", team.ID, team)
}

// Team fetches a team by id.
func (p *Postgres) Team(ctx context.Context, id string) (*entities.Team, error) {
	var t entities.Team
	if err := p.getDoc(ctx, "teams", id, &t, entities.ErrTeamNotFound); err != nil {
		return nil, err
	}
	t.ID = id
	return &t, nil
}

// Teams returns all team records ordered by id.
func (p *Postgres) Teams(ctx context.Context) ([]entities.Team, error) {
	return listDocs(ctx, p, "teams", func(t *entities.Team, id string) { t.ID = id })
}

// PutBoard upserts a board document.
func (p *Postgres) PutBoard(ctx context.Context, board entities.Board) error {
	return p.putDoc(ctx, "boards", board.ID, board)
}

// Board fetches a board by id.
func (p *Postgres) Board(ctx context.Context, id string) (*entities.Board, error) {
	var b entities.Board
	if err := p.getDoc(ctx, "boards", id, &b, entities.ErrBoardNotFound); err != nil {
		return nil, err
	}
	b.ID = id
	return &b, nil
}

// Boards returns all board records ordered by id.
func (p *Postgres) Boards(ctx context.Context) ([]entities.Board, error) {
	return listDocs(ctx, p, "boards", func(b *entities.Board, id string) { b.ID = id })
}

// PutTask upserts a task document.
func (p *Postgres) PutTask(ctx context.Context, task entities.Task) error {
	return p.putDoc(ctx, "tasks", task.ID, task)
}

// Task fetches a task by id.
func (p *Postgres) Task(ctx context.Context, id string) (*entities.Task, error) {
	var t entities.Task
	if err := p.getDoc(ctx, "tasks", id, &t, entities.ErrTaskNotFound); err != nil {
		return nil, err
	}
	t.ID = id
	return &t, nil
}

// Tasks returns all task records ordered by id.
func (p *Postgres) Tasks(ctx context.Context) ([]entities.Task, error) {
	return listDocs(ctx, p, "tasks", func(t *entities.Task, id string) { t.ID = id })
}

// ReplaceUserTeams rewrites the derived index in one transaction so readers
// never observe a partial rebuild.
func (p *Postgres) ReplaceUserTeams(ctx context.Context, mapping map[string][]string) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, replaceIndexDelete); err != nil {
		return fmt.Errorf("clear index: %w", err)
	}
	for userID, teamIDs := range mapping {
		doc, err := json.Marshal(teamIDs)
		if err != nil {
			return fmt.Errorf("encode index entry: %w", err)
		}
		if _, err := tx.Exec(ctx, replaceIndexInsert, userID, doc); err != nil {
			return fmt.Errorf("insert index entry: %w", err)
		}
	}
	return tx.Commit(ctx)
}

// UserTeams returns the team ids recorded for a user in the derived index.
// An unknown user resolves to an empty list, which fails membership checks.
func (p *Postgres) UserTeams(ctx context.Context, userID string) ([]string, error) {
	var doc []byte
	if err := p.db.QueryRow(ctx, selectIndexQuery, userID).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user_teams: %w", err)
	}
	var teamIDs []string
	if err := json.Unmarshal(doc, &teamIDs); err != nil {
		return nil, fmt.Errorf("decode user_teams: %w", err)
	}
	return teamIDs, nil
}
