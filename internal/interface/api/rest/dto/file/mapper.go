package file

import (
	domain "fileshare-api/internal/domain/file"
)

func ToResponseFile(fDomain *domain.File) File {
	var f = File{
		ID:          uint64(fDomain.ID),
		UserID:      uint64(fDomain.UserID),
		Title:       fDomain.Title,
		Description: fDomain.Description,
		FileURL:     fDomain.FileURL,
		FileKey:     fDomain.FileKey,
		FileName:    fDomain.FileName,
		FileSize:    fDomain.FileSize,
		MimeType:    fDomain.MimeType,
		FileType:    string(fDomain.FileType),
		Category:    fDomain.Category,
		Likes:       fDomain.Likes,
		Views:       fDomain.Views,
		CreatedAt:   fDomain.CreatedAt,
	}

	return f
}

func ToResponseFiles(fDomains domain.Files) Files {
	fs := make(Files, len(fDomains))
	for idx, f := range fDomains {
		fs[idx] = ToResponseFile(f)
	}

	return fs
}

func ToResponseFileWithUploader(fuDomain *domain.FileWithUploader) File {
	f := ToResponseFile(fuDomain.File)
	if fuDomain.Uploader != nil {
		f.Uploader = &Uploader{
			ID:    uint64(fuDomain.Uploader.ID),
			Name:  fuDomain.Uploader.Name,
			Email: fuDomain.Uploader.Email,
		}
	}

	return f
}

func ToResponseFilesWithUploader(fuDomains domain.FilesWithUploader) Files {
	fs := make(Files, len(fuDomains))
	for idx, fu := range fuDomains {
		fs[idx] = ToResponseFileWithUploader(fu)
	}

	return fs
}
