package file

import (
	"time"
)

type (
	Uploader struct {
		ID    uint64  `json:"id"`
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}

	File struct {
		ID          uint64    `json:"id"`
		UserID      uint64    `json:"user_id"`
		Title       string    `json:"title"`
		Description *string   `json:"description"`
		FileURL     string    `json:"file_url"`
		FileKey     string    `json:"file_key"`
		FileName    string    `json:"file_name"`
		FileSize    uint64    `json:"file_size"`
		MimeType    string    `json:"mime_type"`
		FileType    string    `json:"file_type"`
		Category    *string   `json:"category"`
		Likes       int64     `json:"likes"`
		Views       int64     `json:"views"`
		CreatedAt   time.Time `json:"created_at"`
		Uploader    *Uploader `json:"uploader,omitempty"`
	}
	Files        []File
	ResponseData struct {
		Data Files `json:"data"`
	}
)
