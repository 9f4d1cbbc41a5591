package file

import (
	domain "fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		ID:     domain.ID(model.ID),
		UserID: user.ID(model.UserID),

		Title:       model.Title,
		Description: model.Description,
		FileURL:     model.FileURL,
		FileKey:     model.FileKey,
		FileName:    model.FileName,
		FileSize:    model.FileSize,
		MimeType:    model.MimeType,
		FileType:    domain.Type(model.FileType),
		Category:    model.Category,

		Likes: model.Likes,
		Views: model.Views,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return f
}

func fromDBModels(models *Files) domain.Files {
	fs := make(domain.Files, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}

func fromDBModelWithUploader(model *FileWithUploader) *domain.FileWithUploader {
	fu := &domain.FileWithUploader{
		File: fromDBModel(model.File),
	}
	if model.Uploader != nil && model.Uploader.ID != nil {
		fu.Uploader = &domain.Uploader{
			ID:    user.ID(*model.Uploader.ID),
			Name:  model.Uploader.Name,
			Email: model.Uploader.Email,
		}
	}

	return fu
}

func fromDBModelsWithUploader(models *FilesWithUploader) domain.FilesWithUploader {
	fus := make(domain.FilesWithUploader, len(*models))
	for idx, f := range *models {
		fus[idx] = fromDBModelWithUploader(f)
	}

	return fus
}
