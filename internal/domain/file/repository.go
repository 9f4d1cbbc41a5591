package file

import (
	"context"

	"fileshare-api/internal/domain/user"
)

type Repository interface {
	CreateFile(ctx context.Context, req *File) (*File, error)
	FetchAll(ctx context.Context) (FilesWithUploader, error)
	FetchByType(ctx context.Context, t Type) (FilesWithUploader, error)
	FetchByID(ctx context.Context, id ID) (*FileWithUploader, error)
	FetchUserFiles(ctx context.Context, userID user.ID) (Files, error)
	DeleteFile(ctx context.Context, id ID, userID user.ID) error

	// ToggleLike flips the (file, user) like state and keeps files.likes
	// in accord with the file_likes relation inside one transaction.
	ToggleLike(ctx context.Context, id ID, userID user.ID) (bool, error)
	CheckUserLiked(ctx context.Context, id ID, userID user.ID) (bool, error)
	IncrementViews(ctx context.Context, id ID) error
}
