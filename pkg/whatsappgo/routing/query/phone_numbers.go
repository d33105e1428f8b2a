package query

import (
	"github.com/google/go-querystring/query"
)

type GetPhoneNumbersVariables struct {
	Fields string `url:"fields,omitempty"`
	Limit  int    `url:"limit,omitempty"`
}

func (q GetPhoneNumbersVariables) Encode() ([]byte, error) {
	values, err := query.Values(q)
	if err != nil {
		return nil, err
	}
	return []byte(values.Encode()), nil
}
