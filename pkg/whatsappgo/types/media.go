package types

// MediaType is a canonical MIME type accepted by the provider's media endpoints.
type MediaType string

const (
	MediaTypeAudioAAC  MediaType = "audio/aac"
	MediaTypeAudioMP4  MediaType = "audio/mp4"
	MediaTypeAudioMPEG MediaType = "audio/mpeg"
	MediaTypeAudioAMR  MediaType = "audio/amr"
	MediaTypeAudioOGG  MediaType = "audio/ogg"

	MediaTypeText MediaType = "text/plain"
	MediaTypePDF  MediaType = "application/pdf"
	MediaTypePPT  MediaType = "application/vnd.ms-powerpoint"
	MediaTypeDOC  MediaType = "application/msword"
	MediaTypeXLS  MediaType = "application/vnd.ms-excel"
	MediaTypeDOCX MediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypePPTX MediaType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	MediaTypeXLSX MediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	MediaTypeImageJPEG MediaType = "image/jpeg"
	MediaTypeImagePNG  MediaType = "image/png"

	MediaTypeSticker MediaType = "image/webp"

	MediaTypeVideoMP4 MediaType = "video/mp4"
	MediaTypeVideo3GP MediaType = "video/3gp"
)

var supportedMediaTypes = map[MediaType]struct{}{
	MediaTypeAudioAAC:  {},
	MediaTypeAudioMP4:  {},
	MediaTypeAudioMPEG: {},
	MediaTypeAudioAMR:  {},
	MediaTypeAudioOGG:  {},
	MediaTypeText:      {},
	MediaTypePDF:       {},
	MediaTypePPT:       {},
	MediaTypeDOC:       {},
	MediaTypeXLS:       {},
	MediaTypeDOCX:      {},
	MediaTypePPTX:      {},
	MediaTypeXLSX:      {},
	MediaTypeImageJPEG: {},
	MediaTypeImagePNG:  {},
	MediaTypeSticker:   {},
	MediaTypeVideoMP4:  {},
	MediaTypeVideo3GP:  {},
}

// IsSupportedMediaType reports whether mediaType is in the provider's documented table.
// The media endpoints may accept types beyond this table, so callers should treat a
// negative answer as advisory.
func IsSupportedMediaType(mediaType string) bool {
	_, ok := supportedMediaTypes[MediaType(mediaType)]
	return ok
}

// ContentTypeHeader maps a media type to the content-type header used on transfer
// requests. Currently the identity mapping, kept as a seam in case the provider ever
// diverges the two.
func ContentTypeHeader(mediaType string) string {
	return mediaType
}
