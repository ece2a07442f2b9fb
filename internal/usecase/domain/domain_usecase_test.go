package domain

import (
	"context"
	"testing"
	"time"

	"project-board-service/internal/entities"
	"project-board-service/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) PutUser(ctx context.Context, user entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *repoMock) User(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) Users(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) PutTeam(ctx context.Context, team entities.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *repoMock) Team(ctx context.Context, id string) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *repoMock) Teams(ctx context.Context) ([]entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Team), args.Error(1)
}

func (m *repoMock) PutBoard(ctx context.Context, board entities.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *repoMock) Board(ctx context.Context, id string) (*entities.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Board), args.Error(1)
}

func (m *repoMock) Boards(ctx context.Context) ([]entities.Board, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Board), args.Error(1)
}

func (m *repoMock) PutTask(ctx context.Context, task entities.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *repoMock) Task(ctx context.Context, id string) (*entities.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) Tasks(ctx context.Context) ([]entities.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *repoMock) ReplaceUserTeams(ctx context.Context, mapping map[string][]string) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

func (m *repoMock) UserTeams(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type exporterStub struct{}

func (exporterStub) Write(name string, _ []byte) (string, error) { return name, nil }

func newMockedUsecase(repo *repoMock) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), repo, exporterStub{}, time.Second)
}

func TestUsecase_CreateUserValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newMockedUsecase(repo)

	_, err := uc.CreateUser(context.Background(), "", "Alice", "2024-01-01")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateUser(context.Background(), "alice", "", "2024-01-01")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateUser(context.Background(), "alice", "Alice", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "PutUser", mock.Anything, mock.Anything)
}

func TestUsecase_CreateUserDelegates(t *testing.T) {
	repo := &repoMock{}
	uc := newMockedUsecase(repo)

	repo.On("Users", mock.Anything).Return([]entities.User{}, nil)
	repo.On("PutUser", mock.Anything, mock.MatchedBy(func(u entities.User) bool {
		return u.Name == "alice" && u.DisplayName == "Alice" && u.ID != ""
	})).Return(nil)

	id, err := uc.CreateUser(context.Background(), "alice", "Alice", "2024-01-01")
	require.NoError(t, err)
	require.NotEmpty(t, id)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateUserRejectsRename(t *testing.T) {
	repo := &repoMock{}
	uc := newMockedUsecase(repo)

	repo.On("User", mock.Anything, "u1").Return(&entities.User{ID: "u1", Name: "alice"}, nil)

	name := "bob"
	_, err := uc.UpdateUser(context.Background(), "u1", &entities.UserUpdate{Name: &name})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "PutUser", mock.Anything, mock.Anything)
}

func TestUsecase_UpdateUserRequiresPayload(t *testing.T) {
	repo := &repoMock{}
	uc := newMockedUsecase(repo)

	_, err := uc.UpdateUser(context.Background(), "u1", nil)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "User", mock.Anything, mock.Anything)
}

func TestUsecase_CreateTeamValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newMockedUsecase(repo)

	_, err := uc.CreateTeam(context.Background(), "core", "", "u1", "2024-01-01")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.CreateTeam(context.Background(), "core", "platform team", "", "2024-01-01")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "PutTeam", mock.Anything, mock.Anything)
}

func TestUsecase_CreateTeamAdminMustExist(t *testing.T) {
	repo := &repoMock{}
	uc := newMockedUsecase(repo)

	repo.On("User", mock.Anything, "ghost").Return(nil, entities.ErrUserNotFound)

	_, err := uc.CreateTeam(context.Background(), "core", "platform team", "ghost", "2024-01-01")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	repo.AssertNotCalled(t, "PutTeam", mock.Anything, mock.Anything)
}

func TestUsecase_AddUsersValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newMockedUsecase(repo)

	err := uc.AddUsersToTeam(context.Background(), "t1", nil)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	err = uc.AddUsersToTeam(context.Background(), "", []string{"u1"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "Team", mock.Anything, mock.Anything)
}

func TestUsecase_CloseBoardValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newMockedUsecase(repo)

	err := uc.CloseBoard(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "Board", mock.Anything, mock.Anything)
}

func TestUsecase_AddTaskValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newMockedUsecase(repo)

	_, err := uc.AddTask(context.Background(), "", "desc", "u1", "b1")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.AddTask(context.Background(), "t", "desc", "", "b1")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = uc.AddTask(context.Background(), "t", "desc", "u1", "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "Board", mock.Anything, mock.Anything)
}

func TestUsecase_UpdateTaskStatusInvalid(t *testing.T) {
	repo := &repoMock{}
	uc := newMockedUsecase(repo)

	repo.On("Task", mock.Anything, "task1").Return(&entities.Task{ID: "task1", Status: entities.TaskOpen}, nil)

	err := uc.UpdateTaskStatus(context.Background(), "task1", "DONE")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "PutTask", mock.Anything, mock.Anything)
}

func TestUsecase_ListBoardsRequiresTeam(t *testing.T) {
	repo := &repoMock{}
	uc := newMockedUsecase(repo)

	_, err := uc.ListBoards(context.Background(), "")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "Boards", mock.Anything)
}
