package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"eventconnect/internal/domain"
)

func newMockStore(t *testing.T) (*KeyStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewKeyStore(sqlx.NewDb(db, "sqlmock")), mock
}

func TestKeyStore_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		key     string
		mock    func(mock sqlmock.Sqlmock)
		want    string
		wantErr error
	}{
		{
			name: "success",
			key:  "token",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value FROM kv`).
					WithArgs("token").
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("tok-1"))
			},
			want: "tok-1",
		},
		{
			name: "missing key",
			key:  "user",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value FROM kv`).
					WithArgs("user").
					WillReturnRows(sqlmock.NewRows([]string{"value"}))
			},
			wantErr: domain.ErrKeyNotFound,
		},
		{
			name: "db error",
			key:  "token",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value FROM kv`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			tt.mock(mock)

			got, err := store.Get(ctx, tt.key)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestKeyStore_SetMany(t *testing.T) {
	ctx := context.Background()

	t.Run("writes all keys in one transaction", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.MatchExpectationsInOrder(false)
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO kv`).
			WithArgs("token", "tok-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO kv`).
			WithArgs("user", `{"id":7}`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := store.SetMany(ctx, map[string]string{
			"token": "tok-1",
			"user":  `{"id":7}`,
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on write failure", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO kv`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := store.SetMany(ctx, map[string]string{"token": "tok-1"})
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestKeyStore_DeleteMany(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes given keys", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM kv`).
			WithArgs("token").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM kv`).
			WithArgs("user").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := store.DeleteMany(ctx, "token", "user")
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on delete failure", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM kv`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := store.DeleteMany(ctx, "token")
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
