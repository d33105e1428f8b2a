package query

import (
	"github.com/google/go-querystring/query"

	"github.com/chatbridge/whatsapp/pkg/whatsappgo/types"
)

type GetTemplatesVariables struct {
	Fields string               `url:"fields,omitempty"`
	Limit  int                  `url:"limit,omitempty"`
	Status types.TemplateStatus `url:"status,omitempty"`
	After  string               `url:"after,omitempty"`
	Before string               `url:"before,omitempty"`
}

func (q GetTemplatesVariables) Encode() ([]byte, error) {
	values, err := query.Values(q)
	if err != nil {
		return nil, err
	}
	return []byte(values.Encode()), nil
}

// DeleteTemplateQuery deletes every language variant of the named template.
type DeleteTemplateQuery struct {
	Name string `url:"name"`
}

func (q DeleteTemplateQuery) Encode() ([]byte, error) {
	values, err := query.Values(q)
	if err != nil {
		return nil, err
	}
	return []byte(values.Encode()), nil
}
