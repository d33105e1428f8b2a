package response

import (
	"encoding/json"

	"github.com/chatbridge/whatsapp/pkg/whatsappgo/types"
)

type Template struct {
	ID       string                 `json:"id,omitempty"`
	Name     string                 `json:"name,omitempty"`
	Language string                 `json:"language,omitempty"`
	Status   types.TemplateStatus   `json:"status,omitempty"`
	Category types.TemplateCategory `json:"category,omitempty"`
	// Components keeps the provider's nested component structure intact; callers
	// that need it decode it themselves.
	Components json.RawMessage `json:"components,omitempty"`
}

type PagingCursors struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

type Paging struct {
	Cursors  PagingCursors `json:"cursors,omitempty"`
	Next     string        `json:"next,omitempty"`
	Previous string        `json:"previous,omitempty"`
}

type TemplatesResponse struct {
	Data   []Template `json:"data,omitempty"`
	Paging Paging     `json:"paging,omitempty"`
}

type TemplateCreatedResponse struct {
	ID       string                 `json:"id,omitempty"`
	Status   types.TemplateStatus   `json:"status,omitempty"`
	Category types.TemplateCategory `json:"category,omitempty"`
}
