package comment

import (
	"time"
)

type (
	Author struct {
		ID   uint64  `json:"id"`
		Name *string `json:"name"`
	}

	Comment struct {
		ID        uint64    `json:"id"`
		FileID    uint64    `json:"file_id"`
		UserID    uint64    `json:"user_id"`
		Content   string    `json:"content"`
		CreatedAt time.Time `json:"created_at"`
		Author    *Author   `json:"author,omitempty"`
	}
	Comments     []Comment
	ResponseData struct {
		Data Comments `json:"data"`
	}
)
