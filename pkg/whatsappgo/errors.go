package whatsappgo

import "fmt"

// FileNotFoundError is raised by UploadMedia before any network call when the
// source path does not reference an existing regular file.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("local file does not exist or is not a regular file: %s", e.Path)
}

// InvalidMediaTypeError marks a media type outside the documented table. Defined
// for callers that want strict validation; DownloadMedia deliberately never raises
// it because the provider accepts types beyond the documented list.
type InvalidMediaTypeError struct {
	MediaType string
}

func (e *InvalidMediaTypeError) Error() string {
	return fmt.Sprintf("unsupported media type: %s", e.MediaType)
}
