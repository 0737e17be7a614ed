package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectCascade(mock sqlmock.Sqlmock, id string, eventRows *sqlmock.Rows) {
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM memberships`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM payments`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM event_registrations`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery(`DELETE FROM events .* RETURNING id`).WithArgs(id).WillReturnRows(eventRows)
}

func TestClubRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClubRepo(db)

	expectCascade(mock, "c1", sqlmock.NewRows([]string{"id"}).AddRow("e1").AddRow("e2"))
	mock.ExpectExec(`DELETE FROM clubs`).WithArgs("c1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := repo.Delete(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, 1, res.DeletedCount)
	assert.Equal(t, []string{"e1", "e2"}, res.EventIDs)
}

func TestClubRepository_Delete_NotFoundRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClubRepo(db)

	expectCascade(mock, "c1", sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`DELETE FROM clubs`).WithArgs("c1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Delete(context.Background(), "c1")

	assert.ErrorIs(t, err, domain.ErrClubNotFound)
}
