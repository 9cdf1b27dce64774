package mysql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/adiwangsa/forum-api/domain"
	mysqlRepo "github.com/adiwangsa/forum-api/internal/repository/mysql"
)

func TestThreadRepositoryAddThread(t *testing.T) {
	db, mock := setupDB(t)
	repo := mysqlRepo.NewThreadRepository(db, fixedIDGen())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `threads`").
		WithArgs("thread-123", "sebuah thread", "sebuah body", "user-123", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	added, err := repo.AddThread(context.Background(), domain.NewThread{
		Title: "sebuah thread",
		Body:  "sebuah body",
	}, "user-123")

	require.NoError(t, err)
	assert.Equal(t, domain.AddedThread{
		ID:    "thread-123",
		Title: "sebuah thread",
		Owner: "user-123",
	}, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestThreadRepositoryVerifyThreadExists(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewThreadRepository(db, fixedIDGen())

		mock.ExpectQuery("SELECT count(.+) FROM `threads`").
			WithArgs("thread-123").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err := repo.VerifyThreadExists(context.Background(), "thread-123")
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewThreadRepository(db, fixedIDGen())

		mock.ExpectQuery("SELECT count(.+) FROM `threads`").
			WithArgs("thread-999").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := repo.VerifyThreadExists(context.Background(), "thread-999")
		assert.ErrorIs(t, err, domain.ErrThreadNotFound)
	})
}

func TestThreadRepositoryGetThreadByID(t *testing.T) {
	date := time.Date(2021, 8, 8, 7, 19, 9, 775_000_000, time.UTC)

	t.Run("joins the owner username", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewThreadRepository(db, fixedIDGen())

		rows := sqlmock.NewRows([]string{"id", "title", "body", "owner", "date", "username"}).
			AddRow("thread-123", "sebuah thread", "sebuah body", "user-123", date, "dicoding")
		mock.ExpectQuery("SELECT threads.id(.+)FROM `threads` JOIN users").
			WillReturnRows(rows)

		thread, err := repo.GetThreadByID(context.Background(), "thread-123")

		require.NoError(t, err)
		assert.Equal(t, "thread-123", thread.ID)
		assert.Equal(t, "dicoding", thread.Username)
		assert.True(t, thread.Date.Equal(date))
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewThreadRepository(db, fixedIDGen())

		mock.ExpectQuery("SELECT threads.id(.+)FROM `threads` JOIN users").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "owner", "date", "username"}))

		_, err := repo.GetThreadByID(context.Background(), "thread-999")
		assert.ErrorIs(t, err, domain.ErrThreadNotFound)
	})
}
