package user

import (
	"context"
)

type Repository interface {
	UpsertByOpenID(ctx context.Context, rec UpsertRecord, ownerOpenID string) (*User, error)
	FetchByOpenID(ctx context.Context, openID string) (*User, error)
	FetchByID(ctx context.Context, id ID) (*User, error)
}
