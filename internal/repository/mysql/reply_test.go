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

func TestReplyRepositoryAddReply(t *testing.T) {
	db, mock := setupDB(t)
	repo := mysqlRepo.NewReplyRepository(db, fixedIDGen())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `replies`").
		WithArgs("reply-123", "sebuah balasan", "user-123", "comment-123", sqlmock.AnyArg(), false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	added, err := repo.AddReply(context.Background(), domain.NewReply{
		Content: "sebuah balasan",
	}, "comment-123", "user-123")

	require.NoError(t, err)
	assert.Equal(t, domain.AddedReply{
		ID:      "reply-123",
		Content: "sebuah balasan",
		Owner:   "user-123",
	}, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplyRepositoryVerifyReplyExists(t *testing.T) {
	t.Run("reachable through comment and thread", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewReplyRepository(db, fixedIDGen())

		mock.ExpectQuery("SELECT count(.+) FROM `replies` JOIN comments").
			WithArgs("reply-123", "comment-123", "thread-123", false).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err := repo.VerifyReplyExists(context.Background(), "reply-123", "comment-123", "thread-123")
		require.NoError(t, err)
	})

	t.Run("wrong thread means not found", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewReplyRepository(db, fixedIDGen())

		mock.ExpectQuery("SELECT count(.+) FROM `replies` JOIN comments").
			WithArgs("reply-123", "comment-123", "thread-999", false).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := repo.VerifyReplyExists(context.Background(), "reply-123", "comment-123", "thread-999")
		assert.ErrorIs(t, err, domain.ErrReplyNotFound)
	})
}

func TestReplyRepositoryVerifyReplyAccess(t *testing.T) {
	t.Run("owner passes", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewReplyRepository(db, fixedIDGen())

		mock.ExpectQuery("SELECT (.+) FROM `replies`").
			WillReturnRows(sqlmock.NewRows([]string{"owner"}).AddRow("user-123"))

		err := repo.VerifyReplyAccess(context.Background(), "reply-123", "user-123")
		require.NoError(t, err)
	})

	t.Run("someone else is forbidden", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewReplyRepository(db, fixedIDGen())

		mock.ExpectQuery("SELECT (.+) FROM `replies`").
			WillReturnRows(sqlmock.NewRows([]string{"owner"}).AddRow("user-123"))

		err := repo.VerifyReplyAccess(context.Background(), "reply-123", "user-456")
		assert.ErrorIs(t, err, domain.ErrReplyForbidden)
	})

	t.Run("gone reply is not found", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewReplyRepository(db, fixedIDGen())

		mock.ExpectQuery("SELECT (.+) FROM `replies`").
			WillReturnRows(sqlmock.NewRows([]string{"owner"}))

		err := repo.VerifyReplyAccess(context.Background(), "reply-999", "user-123")
		assert.ErrorIs(t, err, domain.ErrReplyNotFound)
	})
}

func TestReplyRepositoryDeleteReplyByID(t *testing.T) {
	db, mock := setupDB(t)
	repo := mysqlRepo.NewReplyRepository(db, fixedIDGen())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `replies` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.DeleteReplyByID(context.Background(), "reply-999")
	assert.ErrorIs(t, err, domain.ErrReplyNotFound)
}

func TestReplyRepositoryGetRepliesByCommentIDs(t *testing.T) {
	t.Run("empty input never touches the database", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewReplyRepository(db, fixedIDGen())

		replies, err := repo.GetRepliesByCommentIDs(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, []domain.Reply{}, replies)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fetches replies of all comments in one query", func(t *testing.T) {
		db, mock := setupDB(t)
		repo := mysqlRepo.NewReplyRepository(db, fixedIDGen())

		date := time.Date(2021, 8, 8, 7, 59, 48, 766_000_000, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "content", "owner", "comment_id", "date", "is_deleted", "username"}).
			AddRow("reply-123", "sebuah balasan", "user-123", "comment-123", date, false, "dicoding").
			AddRow("reply-456", "balasan lain", "user-456", "comment-456", date.Add(time.Minute), true, "johndoe")
		mock.ExpectQuery("SELECT replies.id(.+)FROM `replies` JOIN users").
			WillReturnRows(rows)

		replies, err := repo.GetRepliesByCommentIDs(context.Background(), []string{"comment-123", "comment-456"})

		require.NoError(t, err)
		require.Len(t, replies, 2)
		assert.Equal(t, "comment-123", replies[0].CommentID)
		assert.Equal(t, "dicoding", replies[0].Username)
		assert.True(t, replies[1].IsDeleted, "deleted replies stay listed")
	})
}
