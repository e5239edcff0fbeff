package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_Load(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"body"}).AddRow("model User {\n}")
	mock.ExpectQuery(`SELECT body FROM schema_documents WHERE id = 1`).
		WillReturnRows(rows)

	s := NewPostgresStore(mockDB)
	text, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "model User {\n}", text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadEmpty(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT body FROM schema_documents WHERE id = 1`).
		WillReturnRows(sqlmock.NewRows([]string{"body"}))

	s := NewPostgresStore(mockDB)
	text, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Save(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO schema_documents (id, body, updated_at) VALUES (1, $1, now())`)).
		WithArgs("enum Role {\n  ADMIN\n}").
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := NewPostgresStore(mockDB)
	err = s.Save(context.Background(), "enum Role {\n  ADMIN\n}")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnect_EmptyDSN(t *testing.T) {
	_, err := Connect("")
	require.Error(t, err)
}
