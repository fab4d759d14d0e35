package service

import (
	"context"
	"testing"

	"github.com/bawadev/dhaana/internal/domain"
	"github.com/bawadev/dhaana/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_DefaultsToDonor(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "alice"})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, []domain.Role{domain.RoleDonor}, user.Roles)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_WithRoles(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateUserInput{
		Username: "abbot",
		Roles:    []domain.Role{domain.RoleDonor, domain.RoleMonasteryAdmin},
	}

	user, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Len(t, user.Roles, 2)
}

func TestUserService_Create_EmptyUsername(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	input := domain.CreateUserInput{
		Username: "alice",
		Roles:    []domain.Role{"abbot"},
	}

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_GetByUsername(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	user := &domain.User{ID: "u1", Username: "alice"}

	repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(user, nil)

	got, err := svc.GetByUsername(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestUserService_GetByUsername_NotFound(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByUsername(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetByUsername(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
