package file

import (
	"time"

	"fileshare-api/internal/domain/user"
)

type Type string

const (
	TypeImage    Type = "image"
	TypeVideo    Type = "video"
	TypeDocument Type = "document"
)

func (t Type) Valid() bool {
	switch t {
	case TypeImage, TypeVideo, TypeDocument:
		return true
	}
	return false
}

type (
	ID   uint64
	File struct {
		ID     ID
		UserID user.ID

		Title       string
		Description *string
		FileURL     string
		FileKey     string
		FileName    string
		FileSize    uint64
		MimeType    string
		FileType    Type
		Category    *string

		Likes int64
		Views int64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Files []*File

	// Uploader carries the public attributes of the owning user that
	// list and detail reads join in for display. Never more than that.
	Uploader struct {
		ID    user.ID
		Name  *string
		Email *string
	}
	FileWithUploader struct {
		File     *File
		Uploader *Uploader
	}
	FilesWithUploader []*FileWithUploader
)
