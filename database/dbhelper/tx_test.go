package dbhelper

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	sqlxDB := sqlx.NewDb(db, "postgres")

	t.Run("commits on success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()
		assert.NoError(t, WithTx(context.Background(), sqlxDB, func(*sqlx.Tx) error { return nil }))
	})

	t.Run("rolls back on error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()
		err := WithTx(context.Background(), sqlxDB, func(*sqlx.Tx) error { return errors.New("boom") })
		assert.EqualError(t, err, "boom")
	})

	t.Run("rolls back and repanics", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()
		assert.Panics(t, func() {
			_ = WithTx(context.Background(), sqlxDB, func(*sqlx.Tx) error { panic("bad") })
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
