package file

import (
	"time"
)

type (
	File struct {
		ID     uint64
		UserID uint64

		Title       string
		Description *string
		FileURL     string
		FileKey     string
		FileName    string
		FileSize    uint64
		MimeType    string
		FileType    string
		Category    *string

		Likes int64
		Views int64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Files []*File

	// Uploader columns come from a LEFT JOIN, so everything is nullable.
	Uploader struct {
		ID    *uint64
		Name  *string
		Email *string
	}
	FileWithUploader struct {
		File     *File
		Uploader *Uploader
	}
	FilesWithUploader []*FileWithUploader
)
