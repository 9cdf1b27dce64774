package mysql_test

import (
	"context"
	"testing"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/adiwangsa/forum-api/domain"
	mysqlRepo "github.com/adiwangsa/forum-api/internal/repository/mysql"
)

func TestCommentRepositoryAddComment(t *testing.T) {
	db, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(db, fixedIDGen())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `comments`").
		WithArgs("comment-123", "sebuah komentar", "user-123", "thread-123", sqlmock.AnyArg(), false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	added, err := repo.AddComment(context.Background(), domain.NewComment{
		Content: "sebuah komentar",
	}, "thread-123", "user-123")

	require.NoError(t, err)
	assert.Equal(t, domain.AddedComment{
		ID:      "comment-123",
		Content: "sebuah komentar",
		Owner:   "user-123",
	}, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepositoryDeleteComment(t *testing.T) {
	t.Run("soft deletes the row", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewCommentRepository(db, fixedIDGen())

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `comments` SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.DeleteComment(context.Background(), "comment-123")
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero affected rows means the comment is gone", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewCommentRepository(db, fixedIDGen())

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `comments` SET").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.DeleteComment(context.Background(), "comment-999")
		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	})
}

func TestCommentRepositoryVerifyCommentOwner(t *testing.T) {
	t.Run("owner passes", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewCommentRepository(db, fixedIDGen())

		mock.ExpectQuery("SELECT count(.+) FROM `comments`").
			WithArgs("comment-123", "user-123", false).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err := repo.VerifyCommentOwner(context.Background(), "comment-123", "user-123")
		require.NoError(t, err)
	})

	t.Run("someone else is rejected", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewCommentRepository(db, fixedIDGen())

		mock.ExpectQuery("SELECT count(.+) FROM `comments`").
			WithArgs("comment-123", "user-456", false).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := repo.VerifyCommentOwner(context.Background(), "comment-123", "user-456")
		assert.ErrorIs(t, err, domain.ErrCommentForbidden)
	})
}

func TestCommentRepositoryGetCommentsByThreadID(t *testing.T) {
	db, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(db, fixedIDGen())

	date := time.Date(2021, 8, 8, 7, 22, 33, 555_000_000, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "content", "owner", "thread_id", "date", "is_deleted", "username"}).
		AddRow("comment-123", "sebuah komentar", "user-456", "thread-123", date, false, "johndoe").
		AddRow("comment-456", "komentar lain", "user-123", "thread-123", date.Add(time.Minute), true, "dicoding")
	mock.ExpectQuery("SELECT comments.id(.+)FROM `comments` JOIN users").
		WillReturnRows(rows)

	comments, err := repo.GetCommentsByThreadID(context.Background(), "thread-123")

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "johndoe", comments[0].Username)
	assert.False(t, comments[0].IsDeleted)
	assert.True(t, comments[1].IsDeleted, "deleted comments stay listed")
}

func TestCommentRepositoryAddCommentLike(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewCommentRepository(db, fixedIDGen())

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `comment_likes`").
			WithArgs("like-123", "comment-123", "user-123", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.AddCommentLike(context.Background(), "comment-123", "user-123")
		require.NoError(t, err)
	})

	t.Run("duplicate like surfaces as conflict", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewCommentRepository(db, fixedIDGen())

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `comment_likes`").
			WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
		mock.ExpectRollback()

		err := repo.AddCommentLike(context.Background(), "comment-123", "user-123")
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestCommentRepositoryVerifyCommentLikeExists(t *testing.T) {
	db, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(db, fixedIDGen())

	mock.ExpectQuery("SELECT count(.+) FROM `comment_likes`").
		WithArgs("comment-123", "user-123").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	liked, err := repo.VerifyCommentLikeExists(context.Background(), "comment-123", "user-123")
	require.NoError(t, err)
	assert.True(t, liked)
}
