package file

type (
	CreateRequest struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
		FileURL     string  `json:"file_url"`
		FileKey     string  `json:"file_key"`
		FileName    string  `json:"file_name"`
		FileSize    uint64  `json:"file_size"`
		MimeType    string  `json:"mime_type"`
		FileType    string  `json:"file_type"`
		Category    *string `json:"category"`
	}

	UploadURLRequest struct {
		FileName string `json:"file_name"`
		MimeType string `json:"mime_type"`
	}

	UploadDirectRequest struct {
		FileName    string  `json:"file_name"`
		FileData    string  `json:"file_data"` // base64
		MimeType    string  `json:"mime_type"`
		Title       string  `json:"title"`
		Description *string `json:"description"`
		FileType    string  `json:"file_type"`
		Category    *string `json:"category"`
	}
)
