package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/db/postgres"
)

var ErrOpenIDRequired = errors.New("open id is required for upsert")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) UpsertByOpenID(ctx context.Context, rec user.UpsertRecord, ownerOpenID string) (*user.User, error) {
	if rec.OpenID == "" {
		return nil, ErrOpenIDRequired
	}

	u := new(User)
	err := r.db.QueryRow(
		ctx,
		UpsertUserByOpenID,
		rec.OpenID, rec.Name, rec.Email, rec.LoginMethod, rec.Role, ownerOpenID,
	).Scan(
		&u.ID,
		&u.OpenID,
		&u.Name,
		&u.Email,
		&u.LoginMethod,
		&u.Role,

		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastSignedIn,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert user %s: %w", rec.OpenID, err)
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchByOpenID(ctx context.Context, openID string) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByOpenID, openID).Scan(
		&u.ID,
		&u.OpenID,
		&u.Name,
		&u.Email,
		&u.LoginMethod,
		&u.Role,

		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastSignedIn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchByID(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, id).Scan(
		&u.ID,
		&u.OpenID,
		&u.Name,
		&u.Email,
		&u.LoginMethod,
		&u.Role,

		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastSignedIn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}
