package whatsappgo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chatbridge/whatsapp/pkg/whatsappgo/routing"
	"github.com/chatbridge/whatsapp/pkg/whatsappgo/routing/query"
	"github.com/chatbridge/whatsapp/pkg/whatsappgo/routing/response"
	"github.com/chatbridge/whatsapp/pkg/whatsappgo/types"
)

// GetPhoneNumbers lists the phone numbers registered to the configured business
// account.
func (c *Client) GetPhoneNumbers(ctx context.Context, variables query.GetPhoneNumbersVariables) (*response.Envelope[response.PhoneNumbersResponse], error) {
	encodedQuery, err := variables.Encode()
	if err != nil {
		return nil, err
	}

	numbersURL := routing.PhoneNumbersURL(c.config.BaseURL, c.config.APIVersion, c.config.BusinessAccountID)
	if len(encodedQuery) > 0 {
		numbersURL = fmt.Sprintf("%s?%s", numbersURL, string(encodedQuery))
	}

	headers := c.buildHeaders(types.HeaderOpts{
		WithAuthToken: true,
		Accept:        types.ContentTypeJSON,
	})

	resp, respBody, err := c.MakeRequest(ctx, http.MethodGet, numbersURL, headers, nil)
	if err != nil {
		return nil, err
	}

	return response.Classify[response.PhoneNumbersResponse](response.NewRaw(resp, respBody))
}

// GetPhoneNumber fetches a single registered phone number by id.
func (c *Client) GetPhoneNumber(ctx context.Context, phoneNumberID string) (*response.Envelope[response.PhoneNumber], error) {
	headers := c.buildHeaders(types.HeaderOpts{
		WithAuthToken: true,
		Accept:        types.ContentTypeJSON,
	})

	numberURL := routing.PhoneNumberURL(c.config.BaseURL, c.config.APIVersion, phoneNumberID)
	resp, respBody, err := c.MakeRequest(ctx, http.MethodGet, numberURL, headers, nil)
	if err != nil {
		return nil, err
	}

	return response.Classify[response.PhoneNumber](response.NewRaw(resp, respBody))
}
