package response

// MediaMetadata is the provider's description of an uploaded media object. Fetch
// returns every field; Upload echoes only the id.
type MediaMetadata struct {
	ID               string `json:"id,omitempty"`
	URL              string `json:"url,omitempty"`
	MimeType         string `json:"mime_type,omitempty"`
	SHA256           string `json:"sha256,omitempty"`
	FileSize         int64  `json:"file_size,omitempty"`
	MessagingProduct string `json:"messaging_product,omitempty"`
}

// SuccessAck is the generic `{"success": true}` acknowledgment shape.
type SuccessAck struct {
	Success bool `json:"success,omitempty"`
}

// TransferAck echoes the outcome of a binary download rather than provider metadata,
// which is why downloads use it instead of the generic classifier shapes.
type TransferAck struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Body    []byte `json:"body,omitempty"`
}
