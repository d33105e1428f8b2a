package payload

import (
	"encoding/json"

	"github.com/chatbridge/whatsapp/pkg/whatsappgo/types"
)

type CreateTemplatePayload struct {
	Name     string                 `json:"name"`
	Language string                 `json:"language"`
	Category types.TemplateCategory `json:"category"`
	// Components is passed through as-is; the provider validates the structure.
	Components json.RawMessage `json:"components,omitempty"`
}

func (p CreateTemplatePayload) Encode() ([]byte, error) {
	return json.Marshal(p)
}
