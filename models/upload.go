package models

// UploadRequest model for image uploads. The payload travels as base64 in
// the JSON body rather than multipart form data.
type UploadRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Base64      string `json:"base64"`
}

// UploadResult carries the stored object key and its public URL
type UploadResult struct {
	BlobKey  string `json:"blobKey"`
	ImageURL string `json:"imageUrl"`
}

// UploadResponse model for upload responses
type UploadResponse struct {
	Status  int           `json:"status"`
	Message string        `json:"message"`
	Data    *UploadResult `json:"data,omitempty"`
}
