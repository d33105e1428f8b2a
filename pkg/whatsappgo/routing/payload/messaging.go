package payload

import "encoding/json"

type MessageKind string

const (
	MessageKindText     MessageKind = "text"
	MessageKindImage    MessageKind = "image"
	MessageKindAudio    MessageKind = "audio"
	MessageKindDocument MessageKind = "document"
	MessageKindSticker  MessageKind = "sticker"
	MessageKindVideo    MessageKind = "video"
)

type Text struct {
	Body       string `json:"body"`
	PreviewURL bool   `json:"preview_url,omitempty"`
}

// Media references an already-uploaded media object by id, or an external link.
// Exactly one of ID and Link should be set.
type Media struct {
	ID       string `json:"id,omitempty"`
	Link     string `json:"link,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

type SendMessagePayload struct {
	MessagingProduct string      `json:"messaging_product"`
	RecipientType    string      `json:"recipient_type,omitempty"`
	To               string      `json:"to"`
	Type             MessageKind `json:"type"`
	Text             *Text       `json:"text,omitempty"`
	Image            *Media      `json:"image,omitempty"`
	Audio            *Media      `json:"audio,omitempty"`
	Document         *Media      `json:"document,omitempty"`
	Sticker          *Media      `json:"sticker,omitempty"`
	Video            *Media      `json:"video,omitempty"`
}

func (p SendMessagePayload) Encode() ([]byte, error) {
	return json.Marshal(p)
}
