package dto

// UploadResponse resposta de POST /api/upload.
type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
