package response

type MessageContact struct {
	Input string `json:"input,omitempty"`
	WaID  string `json:"wa_id,omitempty"`
}

type MessageIdentifier struct {
	ID string `json:"id,omitempty"`
}

type MessageSentResponse struct {
	MessagingProduct string              `json:"messaging_product,omitempty"`
	Contacts         []MessageContact    `json:"contacts,omitempty"`
	Messages         []MessageIdentifier `json:"messages,omitempty"`
}
