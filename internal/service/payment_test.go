package service

import (
	"context"
	"testing"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_List_OwnEmail(t *testing.T) {
	repo := mocks.NewMockPaymentRepo(t)
	svc := NewPaymentService(repo)

	payments := []*domain.Payment{{ID: "p2"}, {ID: "p1"}}
	repo.EXPECT().ListByEmail(mock.Anything, "a@x.io").Return(payments, nil)

	got, err := svc.List(context.Background(), "a@x.io", "a@x.io")

	require.NoError(t, err)
	assert.Equal(t, payments, got)
}

func TestPaymentService_List_OtherEmailForbidden(t *testing.T) {
	svc := NewPaymentService(nil)

	_, err := svc.List(context.Background(), "b@x.io", "a@x.io")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPaymentService_List_AllWithoutEmail(t *testing.T) {
	repo := mocks.NewMockPaymentRepo(t)
	svc := NewPaymentService(repo)

	repo.EXPECT().ListByEmail(mock.Anything, "").Return([]*domain.Payment{}, nil)

	got, err := svc.List(context.Background(), "", "a@x.io")

	require.NoError(t, err)
	assert.Empty(t, got)
}
