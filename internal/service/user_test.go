package service

import (
	"context"
	"errors"
	"testing"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByEmail(mock.Anything, "a@x.io").Return(nil, domain.ErrUserNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{Name: "Ann", Email: "a@x.io"})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleMember, user.Role)
	assert.Equal(t, "Ann", user.Name)
}

func TestUserService_Create_EmptyEmail(t *testing.T) {
	svc := NewUserService(nil)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Name: "Ann"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_Existing(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	existing := &domain.User{ID: "u1", Email: "a@x.io", Role: domain.RoleAdmin}
	repo.EXPECT().GetByEmail(mock.Anything, "a@x.io").Return(existing, nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{Email: "a@x.io"})

	assert.ErrorIs(t, err, domain.ErrUserExists)
	assert.Equal(t, existing, user)
}

func TestUserService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repoErr := errors.New("db error")
	repo.EXPECT().GetByEmail(mock.Anything, "a@x.io").Return(nil, domain.ErrUserNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Email: "a@x.io"})

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestUserService_List(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	users := []*domain.User{{ID: "1"}, {ID: "2"}}
	repo.EXPECT().List(mock.Anything).Return(users, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestUserService_UpdateRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().UpdateRole(mock.Anything, "u1", domain.RoleManager).Return(nil)

	require.NoError(t, svc.UpdateRole(context.Background(), "u1", domain.RoleManager))
}

func TestUserService_UpdateRole_Unknown(t *testing.T) {
	svc := NewUserService(nil)

	err := svc.UpdateRole(context.Background(), "u1", domain.Role("owner"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Role_DefaultsToMember(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByEmail(mock.Anything, "new@x.io").Return(nil, domain.ErrUserNotFound)

	role, err := svc.Role(context.Background(), "new@x.io")

	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, role)
}

func TestUserService_Role_Stored(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByEmail(mock.Anything, "a@x.io").Return(&domain.User{Role: domain.RoleAdmin}, nil)

	role, err := svc.Role(context.Background(), "a@x.io")

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)
}
