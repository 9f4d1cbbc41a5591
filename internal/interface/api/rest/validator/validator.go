package validator

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"fileshare-api/internal/domain/file"
	commentDTO "fileshare-api/internal/interface/api/rest/dto/comment"
	fileDTO "fileshare-api/internal/interface/api/rest/dto/file"
)

const (
	maxTitleLen    = 255
	maxFileNameLen = 255
	maxCategoryLen = 100
	maxContentLen  = 2000
)

func ParseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("must be a positive integer id")
	}
	return id, nil
}

// ValidateListType maps the optional ?type= filter; "" and "all" mean
// no filter.
func ValidateListType(s string) (file.Type, error) {
	switch s {
	case "", "all":
		return "", nil
	}
	t := file.Type(s)
	if !t.Valid() {
		return "", errors.New("type must be one of: image, video, document, all")
	}
	return t, nil
}

func ValidateCreateFile(r fileDTO.CreateRequest) map[string]string {
	errs := make(map[string]string)

	validateTitle(r.Title, errs)
	validateFileName(r.FileName, errs)
	validateFileType(r.FileType, errs)
	validateCategory(r.Category, errs)

	if strings.TrimSpace(r.FileURL) == "" {
		errs["file_url"] = "file_url is required"
	}
	if strings.TrimSpace(r.FileKey) == "" {
		errs["file_key"] = "file_key is required"
	}
	if r.FileSize == 0 {
		errs["file_size"] = "file_size must be positive"
	}
	if strings.TrimSpace(r.MimeType) == "" {
		errs["mime_type"] = "mime_type is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateUploadURL(r fileDTO.UploadURLRequest) map[string]string {
	errs := make(map[string]string)

	validateFileName(r.FileName, errs)
	if strings.TrimSpace(r.MimeType) == "" {
		errs["mime_type"] = "mime_type is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateUploadDirect(r fileDTO.UploadDirectRequest) map[string]string {
	errs := make(map[string]string)

	validateTitle(r.Title, errs)
	validateFileName(r.FileName, errs)
	validateFileType(r.FileType, errs)
	validateCategory(r.Category, errs)

	if r.FileData == "" {
		errs["file_data"] = "file_data is required"
	}
	if strings.TrimSpace(r.MimeType) == "" {
		errs["mime_type"] = "mime_type is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateComment(r commentDTO.Request) map[string]string {
	errs := make(map[string]string)

	content := strings.TrimSpace(r.Content)
	if content == "" {
		errs["content"] = "content is required"
	} else if utf8.RuneCountInString(content) > maxContentLen {
		errs["content"] = "content length must be at most 2000 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateTitle(title string, errs map[string]string) {
	t := strings.TrimSpace(title)
	if t == "" {
		errs["title"] = "title is required"
	} else if utf8.RuneCountInString(t) > maxTitleLen {
		errs["title"] = "title length must be at most 255 characters"
	}
}

func validateFileName(name string, errs map[string]string) {
	n := strings.TrimSpace(name)
	if n == "" {
		errs["file_name"] = "file_name is required"
	} else if utf8.RuneCountInString(n) > maxFileNameLen {
		errs["file_name"] = "file_name length must be at most 255 characters"
	}
}

func validateFileType(t string, errs map[string]string) {
	if !file.Type(t).Valid() {
		errs["file_type"] = "file_type must be one of: image, video, document"
	}
}

func validateCategory(category *string, errs map[string]string) {
	if category != nil && utf8.RuneCountInString(*category) > maxCategoryLen {
		errs["category"] = "category length must be at most 100 characters"
	}
}
