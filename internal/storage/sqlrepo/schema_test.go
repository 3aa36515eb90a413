package sqlrepo_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_api/internal/storage/sqlrepo"
)

func TestEnsureSchema(t *testing.T) {
	mock, repo := setupMockDB(t, sqlrepo.Postgres)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS hotels")).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitSchema_FailureIsNotFatal(t *testing.T) {
	mock, repo := setupMockDB(t, sqlrepo.MySQL)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS hotels").WillReturnError(errors.New("access denied"))

	repo.InitSchema(context.Background()) // must return normally
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestCreateDatabase_MySQL(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE DATABASE IF NOT EXISTS `hotel_db`")).WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := sqlrepo.CreateDatabase(context.Background(), db, sqlrepo.MySQL, "hotel_db")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDatabase_PostgresAlreadyExists(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM pg_database WHERE datname = $1")).
		WithArgs("hotel_db").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	created, err := sqlrepo.CreateDatabase(context.Background(), db, sqlrepo.Postgres, "hotel_db")
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDatabase_PostgresCreates(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("pg_database").WithArgs("hotel_db").WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
	mock.ExpectExec(regexp.QuoteMeta(`CREATE DATABASE "hotel_db"`)).WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := sqlrepo.CreateDatabase(context.Background(), db, sqlrepo.Postgres, "hotel_db")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDatabase_EmptyName(t *testing.T) {
	db, _ := newMock(t)
	_, err := sqlrepo.CreateDatabase(context.Background(), db, sqlrepo.MySQL, "")
	assert.Error(t, err)
}
