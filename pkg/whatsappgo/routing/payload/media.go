package payload

// MessagingProduct is the product tag every payload and form body must carry.
const MessagingProduct = "whatsapp"

// Multipart field names for media uploads.
const (
	FieldMessagingProduct = "messaging_product"
	FieldFile             = "file"
	FieldType             = "type"
)

// MediaDescriptor describes a local file staged for upload: who sends it, where it
// lives on disk, and its declared MIME type. The path must reference an existing
// regular file at call time.
type MediaDescriptor struct {
	SenderID  string
	FilePath  string
	MediaType string
}
