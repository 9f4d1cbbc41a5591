package comment

import (
	"time"
)

type (
	Comment struct {
		ID      uint64
		FileID  uint64
		UserID  uint64
		Content string

		CreatedAt time.Time
		UpdatedAt time.Time
	}

	Author struct {
		ID   *uint64
		Name *string
	}
	CommentWithAuthor struct {
		Comment *Comment
		Author  *Author
	}
	CommentsWithAuthor []*CommentWithAuthor
)
