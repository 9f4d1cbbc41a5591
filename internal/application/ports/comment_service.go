package ports

import (
	"context"

	"fileshare-api/internal/domain/comment"
	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
)

type CommentService interface {
	CreateComment(ctx context.Context, fileID file.ID, userID user.ID, content string) (*comment.Comment, error)
	FindFileComments(ctx context.Context, fileID file.ID) (comment.CommentsWithAuthor, error)
}
