package blacklist

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO black_list_tokens`).
		WithArgs("tok-abc").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	r := NewRepository(mock)
	require.NoError(t, r.Add(context.Background(), "tok-abc"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdd_DuplicateIsNoOp(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// ON CONFLICT DO NOTHING reports zero rows affected, not an error.
	mock.ExpectExec(`INSERT INTO black_list_tokens`).
		WithArgs("tok-abc").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	r := NewRepository(mock)
	require.NoError(t, r.Add(context.Background(), "tok-abc"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("tok-present").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("tok-absent").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	r := NewRepository(mock)

	got, err := r.Exists(context.Background(), "tok-present")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = r.Exists(context.Background(), "tok-absent")
	require.NoError(t, err)
	assert.False(t, got)

	require.NoError(t, mock.ExpectationsWereMet())
}
