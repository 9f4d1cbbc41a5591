package user

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "fileshare-api/internal/domain/user"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, domain.Repository) {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewRepository(mock)
}

func userRowColumns() []string {
	return []string{
		"id", "open_id", "name", "email", "login_method", "role",
		"created_at", "updated_at", "last_signed_in",
	}
}

func TestRepository_UpsertByOpenID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("empty open id is rejected before touching the db", func(t *testing.T) {
		_, repo := newMockRepo(t)

		_, err := repo.UpsertByOpenID(ctx, domain.UpsertRecord{}, "owner-oid")
		require.ErrorIs(t, err, ErrOpenIDRequired)
	})

	t.Run("upsert returns the reconciled row", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		name := "Jane"
		mock.ExpectQuery(UpsertUserByOpenID).
			WithArgs("oid-42", &name, (*string)(nil), (*string)(nil), (*string)(nil), "owner-oid").
			WillReturnRows(pgxmock.NewRows(userRowColumns()).AddRow(
				uint64(42), "oid-42", &name, (*string)(nil), (*string)(nil), "user",
				now, now, now,
			))

		u, err := repo.UpsertByOpenID(ctx, domain.UpsertRecord{
			OpenID: "oid-42",
			Name:   &name,
		}, "owner-oid")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, domain.ID(42), u.ID)
		assert.Equal(t, "oid-42", u.OpenID)
		assert.Equal(t, domain.RoleUser, u.Role)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("owner open id rides along for the role case", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(UpsertUserByOpenID).
			WithArgs("owner-oid", (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil), "owner-oid").
			WillReturnRows(pgxmock.NewRows(userRowColumns()).AddRow(
				uint64(1), "owner-oid", (*string)(nil), (*string)(nil), (*string)(nil), "admin",
				now, now, now,
			))

		u, err := repo.UpsertByOpenID(ctx, domain.UpsertRecord{OpenID: "owner-oid"}, "owner-oid")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, u.Role)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FetchByOpenID(t *testing.T) {
	ctx := context.Background()

	t.Run("missing user reads as nil without error", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery(SelectUserByOpenID).
			WithArgs("nobody").
			WillReturnRows(pgxmock.NewRows(userRowColumns()))

		u, err := repo.FetchByOpenID(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FetchByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	mock, repo := newMockRepo(t)

	name := "Jane"
	mock.ExpectQuery(SelectUserByID).
		WithArgs(domain.ID(42)).
		WillReturnRows(pgxmock.NewRows(userRowColumns()).AddRow(
			uint64(42), "oid-42", &name, (*string)(nil), (*string)(nil), "user",
			now, now, now,
		))

	u, err := repo.FetchByID(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, domain.ID(42), u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
