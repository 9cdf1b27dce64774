package mysql_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/adiwangsa/forum-api/domain"
)

// setupDB wires gorm onto a sqlmock connection with the same config the
// application uses, TranslateError included.
func setupDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return gdb, mock
}

func fixedIDGen() domain.IDGenerator {
	return func() string { return "123" }
}
