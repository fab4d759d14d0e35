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

func TestMonasteryService_Create(t *testing.T) {
	repo := mocks.NewMockMonasteryRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewMonasteryService(repo, userRepo)

	admin := &domain.User{
		ID:       "admin1",
		Username: "abbot",
		Roles:    []domain.Role{domain.RoleMonasteryAdmin},
	}

	userRepo.EXPECT().GetByID(mock.Anything, "admin1").Return(admin, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	maxCap := 100
	input := domain.CreateMonasteryInput{
		Name:        "Forest Hermitage",
		AdminID:     "admin1",
		MaxCapacity: &maxCap,
	}

	monastery, err := svc.Create(context.Background(), input, superActor("root"))

	require.NoError(t, err)
	assert.Equal(t, "Forest Hermitage", monastery.Name)
	assert.Equal(t, "admin1", monastery.AdminID)
	require.NotNil(t, monastery.MaxCapacity)
	assert.Equal(t, 100, *monastery.MaxCapacity)
	assert.NotEmpty(t, monastery.ID)
}

func TestMonasteryService_Create_NotSuperAdmin(t *testing.T) {
	repo := mocks.NewMockMonasteryRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewMonasteryService(repo, userRepo)

	input := domain.CreateMonasteryInput{Name: "Forest Hermitage", AdminID: "admin1"}

	_, err := svc.Create(context.Background(), input, adminActor("admin1"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMonasteryService_Create_Validation(t *testing.T) {
	badCap := -5

	tests := []struct {
		name  string
		input domain.CreateMonasteryInput
	}{
		{
			name:  "missing name",
			input: domain.CreateMonasteryInput{AdminID: "admin1"},
		},
		{
			name: "non-positive max capacity",
			input: domain.CreateMonasteryInput{
				Name: "Forest Hermitage", AdminID: "admin1", MaxCapacity: &badCap,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockMonasteryRepo(t)
			userRepo := mocks.NewMockUserRepo(t)

			svc := NewMonasteryService(repo, userRepo)

			_, err := svc.Create(context.Background(), tt.input, superActor("root"))

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestMonasteryService_Create_AdminLacksRole(t *testing.T) {
	repo := mocks.NewMockMonasteryRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewMonasteryService(repo, userRepo)

	donorOnly := &domain.User{
		ID:       "u1",
		Username: "alice",
		Roles:    []domain.Role{domain.RoleDonor},
	}

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(donorOnly, nil)

	input := domain.CreateMonasteryInput{Name: "Forest Hermitage", AdminID: "u1"}

	_, err := svc.Create(context.Background(), input, superActor("root"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMonasteryService_Create_AdminNotFound(t *testing.T) {
	repo := mocks.NewMockMonasteryRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewMonasteryService(repo, userRepo)

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	input := domain.CreateMonasteryInput{Name: "Forest Hermitage", AdminID: "missing"}

	_, err := svc.Create(context.Background(), input, superActor("root"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMonasteryService_List(t *testing.T) {
	repo := mocks.NewMockMonasteryRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewMonasteryService(repo, userRepo)

	repo.EXPECT().List(mock.Anything).Return([]*domain.Monastery{testMonastery()}, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
