package ports

import (
	"context"

	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
)

type (
	// FileCreateInput carries metadata for a file whose bytes the client
	// already pushed to object storage under FileKey.
	FileCreateInput struct {
		Title       string
		Description *string
		FileURL     string
		FileKey     string
		FileName    string
		FileSize    uint64
		MimeType    string
		FileType    file.Type
		Category    *string
	}

	// DirectUploadInput is the small-file path: bytes come in the request
	// body and the service stores them itself.
	DirectUploadInput struct {
		FileName    string
		Data        []byte
		MimeType    string
		Title       string
		Description *string
		FileType    file.Type
		Category    *string
	}
)

type FileService interface {
	// FindFiles lists files newest first; a zero Type means no filter.
	FindFiles(ctx context.Context, t file.Type) (file.FilesWithUploader, error)
	// FindFileByID returns the file detail and counts the view.
	FindFileByID(ctx context.Context, id file.ID) (*file.FileWithUploader, error)
	FindUserFiles(ctx context.Context, userID user.ID) (file.Files, error)
	CreateFile(ctx context.Context, userID user.ID, in FileCreateInput) (*file.File, error)
	GenerateUploadKey(userID user.ID, fileName string) string
	UploadDirect(ctx context.Context, userID user.ID, in DirectUploadInput) (*file.File, error)
	DeleteFile(ctx context.Context, id file.ID, userID user.ID) error
	ToggleLike(ctx context.Context, id file.ID, userID user.ID) (bool, error)
	CheckUserLiked(ctx context.Context, id file.ID, userID user.ID) bool
}
