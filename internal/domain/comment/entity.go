package comment

import (
	"time"

	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
)

type (
	ID      uint64
	Comment struct {
		ID      ID
		FileID  file.ID
		UserID  user.ID
		Content string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Comments []*Comment

	Author struct {
		ID   user.ID
		Name *string
	}
	CommentWithAuthor struct {
		Comment *Comment
		Author  *Author
	}
	CommentsWithAuthor []*CommentWithAuthor
)
