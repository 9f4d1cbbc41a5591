package comment

import (
	"context"

	"fileshare-api/internal/domain/file"
)

type Repository interface {
	CreateComment(ctx context.Context, req *Comment) (*Comment, error)
	FetchFileComments(ctx context.Context, fileID file.ID) (CommentsWithAuthor, error)
}
