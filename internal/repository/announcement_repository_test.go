package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupMockAnnouncementRepo(t *testing.T) (sqlmock.Sqlmock, AnnouncementRepository) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return mock, NewAnnouncementRepository(gdb)
}

func TestAnnouncementRepository_List_Ordering(t *testing.T) {
	mock, repo := setupMockAnnouncementRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "announcements" ORDER BY pinned DESC,created_at DESC,id DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "pinned", "author_id"}))

	announcements, err := repo.List()
	require.NoError(t, err)
	require.Empty(t, announcements)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnnouncementRepository_Delete(t *testing.T) {
	mock, repo := setupMockAnnouncementRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "announcements" WHERE`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnnouncementRepository_Delete_NoRows(t *testing.T) {
	mock, repo := setupMockAnnouncementRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "announcements" WHERE`).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(9)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
